package m68k_test

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"semihosting/src/cstr"
	"semihosting/src/fd"
	"semihosting/src/host"
	"semihosting/src/shio"
	"semihosting/src/sys/abi"
	"semihosting/src/sys/m68k"
)

type fixture struct {
	c   *m68k.Client
	dir string
	out bytes.Buffer
	err bytes.Buffer
}

var epoch = time.Date(2024, 2, 29, 12, 0, 0, 250_000_000, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{dir: t.TempDir()}
	h, err := host.New(host.Config{
		Root:    f.dir,
		Console: &host.StreamConsole{Out: &f.out, Err: &f.err},
		Logger:  log.New(&bytes.Buffer{}, "", 0),
		Now:     func() time.Time { return epoch },
	})
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	t.Cleanup(func() { h.Close() })
	f.c = m68k.New(h.M68k())
	return f
}

func checkKind(t *testing.T, what string, err error, k shio.ErrorKind) {
	t.Helper()
	if got := shio.Kind(err); err == nil || got != k {
		t.Errorf("%s: expected %v, got %v", what, k, err)
	}
}

func TestHostedFileCalls(t *testing.T) {
	f := newFixture(t)
	o, err := f.c.HostedOpen(cstr.Must("data"), m68k.O_RDWR|m68k.O_CREAT|m68k.O_TRUNC, 0o600)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if n, err := f.c.HostedWrite(o.Borrow(), []byte("0123456789")); err != nil || n != 10 {
		t.Fatalf("write: %d %v", n, err)
	}
	pos, err := f.c.HostedLseek(o.Borrow(), -3, m68k.SEEK_END)
	if err != nil || pos != 7 {
		t.Errorf("lseek from end: %d %v", pos, err)
	}
	buf := make([]byte, 8)
	if n, err := f.c.HostedRead(o.Borrow(), buf); err != nil || string(buf[:n]) != "789" {
		t.Errorf("read: %q %v", buf[:n], err)
	}
	_, err = f.c.HostedLseek(o.Borrow(), -20, m68k.SEEK_SET)
	checkKind(t, "negative lseek", err, shio.InvalidInput)

	st, err := f.c.HostedFstat(o.Borrow())
	if err != nil || st.Size != 10 || st.Mode&m68k.S_IFREG == 0 || st.Mode&0o777 != 0o600 {
		t.Errorf("fstat: %+v %v", st, err)
	}
	if err := o.Close(); err != nil {
		t.Errorf("close: %v", err)
	}

	if err := f.c.HostedRename(cstr.Must("data"), cstr.Must("moved")); err != nil {
		t.Errorf("rename: %v", err)
	}
	if _, err := os.Stat(filepath.Join(f.dir, "moved")); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}
	if st, err := f.c.HostedStat(cstr.Must("moved")); err != nil || st.Size != 10 {
		t.Errorf("stat: %+v %v", st, err)
	}
	if err := f.c.HostedUnlink(cstr.Must("moved")); err != nil {
		t.Errorf("unlink: %v", err)
	}
	_, err = f.c.HostedStat(cstr.Must("moved"))
	checkKind(t, "stat after unlink", err, shio.NotFound)
}

func TestLseekBeyond4GiB(t *testing.T) {
	f := newFixture(t)
	o, err := f.c.HostedOpen(cstr.Must("sparse"), m68k.O_RDWR|m68k.O_CREAT, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	defer o.Close()
	const far = 5<<30 + 3
	pos, err := f.c.HostedLseek(o.Borrow(), far, m68k.SEEK_SET)
	if err != nil || pos != far {
		t.Errorf("expected %d, got %d %v", uint64(far), pos, err)
	}
}

func TestConsoleDevices(t *testing.T) {
	f := newFixture(t)
	out, err := f.c.Stdout()
	if err != nil || out.Raw() != 1 {
		t.Fatalf("stdout: %v %v", out, err)
	}
	stderr, err := f.c.Stderr()
	if err != nil || stderr.Raw() != 2 {
		t.Fatalf("stderr: %v %v", stderr, err)
	}
	f.c.Write(out.Borrow(), []byte("out"))
	f.c.Write(stderr.Borrow(), []byte("err"))
	if f.out.String() != "out" || f.err.String() != "err" {
		t.Errorf("console got %q and %q", f.out.String(), f.err.String())
	}
	if f.c.IsTerminal(out.Borrow()) {
		t.Errorf("buffers are not terminals")
	}
	st, err := f.c.HostedFstat(out.Borrow())
	if err != nil || st.Mode&m68k.S_IFCHR == 0 {
		t.Errorf("console fstat: %+v %v", st, err)
	}
	out.Close()
	stderr.Close()
	if _, err := f.c.HostedIsatty(fd.BorrowRaw(1)); err != nil {
		t.Errorf("stdio descriptors stay open: %v", err)
	}
}

func TestSystemTime(t *testing.T) {
	f := newFixture(t)
	sec, nsec, err := f.c.SystemTime()
	if err != nil {
		t.Fatal(err)
	}
	if sec != epoch.Unix() || nsec != 250_000_000 {
		t.Errorf("expected %d.250000000, got %d.%09d", epoch.Unix(), sec, nsec)
	}
	if _, err := f.c.Monotonic(); err == nil {
		t.Errorf("no monotonic clock over the GDB protocol")
	}
	if _, err := f.c.Args(128); err == nil {
		t.Errorf("no command line over the GDB protocol")
	}
}

func TestSeekThroughBackend(t *testing.T) {
	f := newFixture(t)
	os.WriteFile(filepath.Join(f.dir, "five"), []byte("abcde"), 0o644)
	o := abi.DefaultOpenOptions()
	o.Read = true
	file, err := f.c.Open(cstr.Must("five"), &o)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	if pos, err := f.c.Seek(file.Borrow(), shio.End(-1)); err != nil || pos != 4 {
		t.Errorf("End(-1): %d %v", pos, err)
	}
	_, err = f.c.Seek(file.Borrow(), shio.End(-200))
	checkKind(t, "End(-200)", err, shio.InvalidInput)
	_, err = f.c.Seek(file.Borrow(), shio.Current(1))
	checkKind(t, "Current", err, shio.Unsupported)
}

func TestExit(t *testing.T) {
	f := newFixture(t)
	if st := host.Run(func() { f.c.Exit(-3) }); st == nil || st.Code != -3 {
		t.Errorf("exit: %v", st)
	}
}

func TestSystemRefused(t *testing.T) {
	f := newFixture(t)
	_, err := f.c.HostedSystem(cstr.Must("true"))
	checkKind(t, "system", err, shio.PermissionDenied)
}
