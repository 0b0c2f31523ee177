package random_test

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"semihosting/src/cstr"
	"semihosting/src/experimental/random"
	"semihosting/src/fd"
	"semihosting/src/host"
	"semihosting/src/shio"
	"semihosting/src/sys/abi"
	"semihosting/src/sys/mips"
)

func newDevice(t *testing.T, pool []byte) (*random.Device, *host.Host) {
	t.Helper()
	dir := t.TempDir()
	if pool != nil {
		os.Mkdir(filepath.Join(dir, "dev"), 0o755)
		if err := os.WriteFile(filepath.Join(dir, "dev", "urandom"), pool, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	h, err := host.New(host.Config{
		Root:    dir,
		Console: &host.StreamConsole{},
		Logger:  log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	t.Cleanup(func() { h.Close() })
	return random.NewDevice(mips.New(h.MIPS())), h
}

func TestFill(t *testing.T) {
	pool := bytes.Repeat([]byte{0xa5, 0x5a}, 64)
	d, _ := newDevice(t, pool)
	buf := make([]byte, 16)
	if err := d.Fill(buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf, pool[:16]) {
		t.Errorf("got %x", buf)
	}
	if err := d.Fill(buf); err != nil || !bytes.Equal(buf, pool[16:32]) {
		t.Errorf("second fill continues the stream: %x %v", buf, err)
	}
}

func TestFillShortDevice(t *testing.T) {
	d, _ := newDevice(t, []byte{1, 2, 3})
	err := d.Fill(make([]byte, 8))
	if err != shio.ErrReadExactEOF {
		t.Errorf("expected ErrReadExactEOF, got %v", err)
	}
}

func TestMissingDevice(t *testing.T) {
	d, h := newDevice(t, nil)
	err := d.Fill(make([]byte, 4))
	if shio.Kind(err) != shio.NotFound {
		t.Errorf("expected NotFound, got %v", err)
	}
	if n := h.OpenFiles(); n != 3 {
		t.Errorf("failed open left %d descriptors", n)
	}
}

func TestConcurrentGetKeepsOneDescriptor(t *testing.T) {
	d, h := newDevice(t, make([]byte, 4096))
	var wg sync.WaitGroup
	fds := make([]int32, 16)
	for i := range fds {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			raw, err := d.Get()
			if err != nil {
				t.Errorf("get: %v", err)
			}
			fds[i] = int32(raw)
		}(i)
	}
	wg.Wait()
	for _, f := range fds {
		if f != fds[0] {
			t.Errorf("callers disagree on the descriptor: %v", fds)
			break
		}
	}
	if n := h.OpenFiles(); n != 4 {
		t.Errorf("expected one device descriptor beside stdio, %d open", n)
	}
	if err := d.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
	if n := h.OpenFiles(); n != 3 {
		t.Errorf("close left %d open", n)
	}
	if err := d.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}
}

// interleaved replays, on one goroutine, a second caller that wins the
// race to install the descriptor and a Close that lands before the loser
// looks again.
type interleaved struct {
	abi.Backend
	d       *random.Device
	opens   int
	closing bool
}

func (b *interleaved) Open(path cstr.CStr, o *abi.OpenOptions) (*fd.Owned, error) {
	b.opens++
	if b.opens == 1 {
		if _, err := b.d.Get(); err != nil {
			return nil, err
		}
	}
	return b.Backend.Open(path, o)
}

func (b *interleaved) CloseFd(raw fd.RawFd) error {
	if !b.closing {
		b.closing = true
		b.d.Close()
	}
	return b.Backend.CloseFd(raw)
}

func TestGetReopensAfterLostRaceAndClose(t *testing.T) {
	dir := t.TempDir()
	os.Mkdir(filepath.Join(dir, "dev"), 0o755)
	pool := bytes.Repeat([]byte{7}, 64)
	os.WriteFile(filepath.Join(dir, "dev", "urandom"), pool, 0o644)
	h, err := host.New(host.Config{
		Root:    dir,
		Console: &host.StreamConsole{},
		Logger:  log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	defer h.Close()

	b := &interleaved{Backend: mips.New(h.MIPS())}
	d := random.NewDevice(b)
	b.d = d

	raw, err := d.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if raw == fd.Invalid {
		t.Fatalf("get returned the uninitialised descriptor")
	}
	if b.opens != 3 {
		t.Errorf("expected a reopen after the winner was closed, %d opens", b.opens)
	}
	buf := make([]byte, 8)
	if err := d.Fill(buf); err != nil || !bytes.Equal(buf, pool[:8]) {
		t.Errorf("fill: %x %v", buf, err)
	}
	if n := h.OpenFiles(); n != 4 {
		t.Errorf("expected one device descriptor beside stdio, %d open", n)
	}
	d.Close()
}
