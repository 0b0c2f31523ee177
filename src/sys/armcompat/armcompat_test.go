package armcompat_test

import (
	"bytes"
	"errors"
	iofs "io/fs"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"semihosting/src/cstr"
	"semihosting/src/host"
	"semihosting/src/shio"
	"semihosting/src/sys/abi"
	"semihosting/src/sys/armcompat"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	c    *armcompat.Client
	h    *host.Host
	dir  string
	out  bytes.Buffer
	errs bytes.Buffer
	now  time.Time
}

func newFixture(t *testing.T, args ...string) *fixture {
	t.Helper()
	f := &fixture{dir: t.TempDir(), now: epoch}
	h, err := host.New(host.Config{
		Root:     f.dir,
		Args:     args,
		Console:  &host.StreamConsole{In: bytes.NewBufferString("k"), Out: &f.out, Err: &f.errs},
		Logger:   log.New(&bytes.Buffer{}, "", 0),
		TickFreq: 1000,
		Now:      func() time.Time { return f.now },
	})
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	t.Cleanup(func() { h.Close() })
	f.h = h
	f.c = armcompat.New(h.ArmCompat())
	return f
}

func checkKind(t *testing.T, what string, err error, k shio.ErrorKind) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected %v, got no error", what, k)
		return
	}
	if got := shio.Kind(err); got != k {
		t.Errorf("%s: expected %v, got %v (%v)", what, k, got, err)
	}
}

func TestOpenWriteReadSeek(t *testing.T) {
	f := newFixture(t)
	path := cstr.Must("data.bin")
	w, err := f.c.SysOpen(path, armcompat.WRONLY_TRUNC)
	if err != nil {
		t.Fatalf("open for write: %v", err)
	}
	if n, err := f.c.SysWrite(w.Borrow(), []byte("hello world")); err != nil || n != 11 {
		t.Fatalf("write: %d %v", n, err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	r, err := f.c.SysOpen(path, armcompat.RDONLY_BINARY)
	if err != nil {
		t.Fatalf("open for read: %v", err)
	}
	defer r.Close()
	if n, err := f.c.SysFlen(r.Borrow()); err != nil || n != 11 {
		t.Errorf("flen: %d %v", n, err)
	}
	if err := f.c.SysSeek(r.Borrow(), 6); err != nil {
		t.Fatalf("seek: %v", err)
	}
	buf := make([]byte, 16)
	n, err := f.c.SysRead(r.Borrow(), buf)
	if err != nil || string(buf[:n]) != "world" {
		t.Errorf("read after seek: %q %v", buf[:n], err)
	}
	if n, err := f.c.SysRead(r.Borrow(), buf); err != nil || n != 0 {
		t.Errorf("read at end: expected 0, got %d %v", n, err)
	}
	if tty, err := f.c.SysIsTTY(r.Borrow()); err != nil || tty {
		t.Errorf("a file is not a tty: %v %v", tty, err)
	}
}

func TestErrnoAfterFailure(t *testing.T) {
	f := newFixture(t)
	_, err := f.c.SysOpen(cstr.Must("missing"), armcompat.RDONLY)
	checkKind(t, "open missing", err, shio.NotFound)
	if !errors.Is(err, iofs.ErrNotExist) {
		t.Errorf("expected errors.Is(err, fs.ErrNotExist)")
	}
	var e *shio.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *shio.Error, got %T", err)
	}
	if code, ok := e.RawOSError(); !ok || code != int32(armcompat.ENOENT) {
		t.Errorf("expected ENOENT, got %d", code)
	}
	checkKind(t, "remove missing", f.c.SysRemove(cstr.Must("missing")), shio.NotFound)
}

func TestRemoveAndRename(t *testing.T) {
	f := newFixture(t)
	os.WriteFile(filepath.Join(f.dir, "a"), []byte("1"), 0o644)
	if err := f.c.SysRename(cstr.Must("a"), cstr.Must("b")); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if _, err := os.Stat(filepath.Join(f.dir, "b")); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}
	if err := f.c.SysRemove(cstr.Must("b")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(f.dir, "b")); !os.IsNotExist(err) {
		t.Errorf("removed file still present")
	}
}

func TestConsole(t *testing.T) {
	f := newFixture(t)
	out, err := f.c.Stdout()
	if err != nil {
		t.Fatalf("stdout: %v", err)
	}
	f.c.Write(out.Borrow(), []byte("out "))
	errs, err := f.c.Stderr()
	if err != nil {
		t.Fatalf("stderr: %v", err)
	}
	f.c.Write(errs.Borrow(), []byte("err"))
	f.c.SysWriteC('!')
	f.c.SysWrite0(cstr.Must("zero"))
	if f.out.String() != "out !zero" || f.errs.String() != "err" {
		t.Errorf("console: out %q err %q", f.out.String(), f.errs.String())
	}
	if b := f.c.SysReadC(); b != 'k' {
		t.Errorf("readc: expected 'k', got %q", b)
	}
	out.Close()
	errs.Close()
	if n := f.h.OpenFiles(); n != 3 {
		t.Errorf("console descriptors leaked: %d open", n)
	}
}

func TestCmdline(t *testing.T) {
	f := newFixture(t, "prog", "-v", "x")
	line, err := f.c.GetCmdline(make([]byte, 64))
	if err != nil || string(line) != "prog -v x" {
		t.Errorf("cmdline: %q %v", line, err)
	}
	_, err = f.c.GetCmdline(make([]byte, 5))
	checkKind(t, "short buffer", err, shio.ArgumentListTooLong)
	ab, err := f.c.Args(64)
	if err != nil || ab.Split || string(ab.Buf) != "prog -v x" {
		t.Errorf("args: %+v %v", ab, err)
	}
}

func TestClocks(t *testing.T) {
	f := newFixture(t)
	f.now = epoch.Add(2500 * time.Millisecond)
	if cs, err := f.c.SysClock(); err != nil || cs != 250 {
		t.Errorf("clock: expected 250cs, got %d %v", cs, err)
	}
	if d, err := f.c.Monotonic(); err != nil || d != 2500*time.Millisecond {
		t.Errorf("monotonic: %v %v", d, err)
	}
	if s, err := f.c.SysTime(); err != nil || int64(s) != f.now.Unix() {
		t.Errorf("time: %d %v", s, err)
	}
	sec, nsec, err := f.c.SystemTime()
	if err != nil || sec != f.now.Unix() || nsec != 0 {
		t.Errorf("system time: %d.%d %v", sec, nsec, err)
	}
	if hz, err := f.c.SysTickfreq(); err != nil || hz != 1000 {
		t.Errorf("tickfreq: %d %v", hz, err)
	}
	if ticks, err := f.c.SysElapsed(); err != nil || ticks != 2500 {
		t.Errorf("elapsed: %d %v", ticks, err)
	}
}

func TestExit(t *testing.T) {
	f := newFixture(t)
	st := host.Run(func() { f.c.Exit(7) })
	if st == nil || st.Code != 7 {
		t.Fatalf("expected exit 7, got %v", st)
	}
	st = host.Run(func() { f.c.SysExit(armcompat.ADP_Stopped_ApplicationExit) })
	if st == nil || st.Code != 0 || st.Reason != uint32(armcompat.ADP_Stopped_ApplicationExit) {
		t.Errorf("expected a clean exit, got %v", st)
	}
	st = host.Run(func() { f.c.SysExit(armcompat.ADP_Stopped_RunTimeErrorUnknown) })
	if st == nil || st.Code == 0 {
		t.Errorf("a runtime error must not exit 0, got %v", st)
	}
}

func TestMiscCalls(t *testing.T) {
	f := newFixture(t)
	if !f.c.SysIsError(-1) || f.c.SysIsError(0) {
		t.Errorf("iserror disagrees with the sign of the status")
	}
	if hi := f.c.SysHeapinfo(); hi != (armcompat.HeapInfo{}) {
		t.Errorf("expected the host to leave the heap to the target, got %+v", hi)
	}
	name, err := f.c.SysTmpnam(make([]byte, 64), 3)
	if err != nil || name.Len() == 0 {
		t.Errorf("tmpnam: %q %v", name, err)
	}
	if st := f.c.SysSystem(cstr.Must("true")); int(st) != -1 {
		t.Errorf("system must be refused by default, got %d", st)
	}
}

func TestOpenModeFor(t *testing.T) {
	type opts struct{ read, write, append, create, truncate, createNew bool }
	cases := []struct {
		o        opts
		expected armcompat.OpenMode
		ok       bool
	}{
		{opts{read: true}, armcompat.RDONLY, true},
		{opts{read: true, write: true}, armcompat.RDWR, true},
		{opts{write: true, create: true, truncate: true}, armcompat.WRONLY_TRUNC, true},
		{opts{read: true, write: true, create: true, truncate: true}, armcompat.RDWR_TRUNC, true},
		{opts{write: true, append: true, create: true}, armcompat.WRONLY_APPEND, true},
		{opts{append: true, create: true}, armcompat.WRONLY_APPEND, false},
		{opts{read: true, write: true, append: true, create: true}, armcompat.RDWR_APPEND, true},
		{opts{write: true}, 0, false},
		{opts{truncate: true}, 0, false},
		{opts{read: true, create: true}, 0, false},
		{opts{write: true, createNew: true}, 0, false},
		{opts{write: true, create: true, truncate: true, createNew: true}, 0, false},
		{opts{read: true, write: true, append: true, create: true, createNew: true}, 0, false},
		{opts{}, 0, false},
	}
	for _, c := range cases {
		o := abi.DefaultOpenOptions()
		o.Read, o.Write, o.Append = c.o.read, c.o.write, c.o.append
		o.Create, o.Truncate, o.CreateNew = c.o.create, c.o.truncate, c.o.createNew
		for i := 0; i < 2; i++ {
			mode, err := armcompat.OpenModeFor(&o)
			if c.ok && (err != nil || mode != c.expected) {
				t.Errorf("%+v: expected %v, got %v %v", c.o, c.expected, mode, err)
			}
			if !c.ok {
				checkKind(t, "invalid combination", err, shio.InvalidInput)
			}
		}
	}
}

func TestSeekValidation(t *testing.T) {
	f := newFixture(t)
	os.WriteFile(filepath.Join(f.dir, "five"), []byte("12345"), 0o644)
	file, err := f.c.SysOpen(cstr.Must("five"), armcompat.RDWR)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	_, err = f.c.Seek(file.Borrow(), shio.End(-200))
	checkKind(t, "End(-200)", err, shio.InvalidInput)
	_, err = f.c.Seek(file.Borrow(), shio.Start(^uint64(0)))
	checkKind(t, "Start(max)", err, shio.InvalidInput)
	_, err = f.c.Seek(file.Borrow(), shio.Current(1))
	checkKind(t, "Current", err, shio.Unsupported)
	if pos, err := f.c.Seek(file.Borrow(), shio.End(-1)); err != nil || pos != 4 {
		t.Errorf("End(-1): %d %v", pos, err)
	}
}
