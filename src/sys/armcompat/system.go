package armcompat

import (
	"math"
	"time"

	"semihosting/src/cstr"
	"semihosting/src/fd"
	"semihosting/src/shio"
	"semihosting/src/sys/abi"
)

var _ abi.Backend = (*Client)(nil)

// CloseFd is SysClose.
func (c *Client) CloseFd(f fd.RawFd) error { return c.SysClose(f) }

// ShouldClose is always true: stdio streams are ordinary descriptors here.
func (c *Client) ShouldClose(fd.RawFd) bool { return true }

func (c *Client) Read(f fd.Borrowed, buf []byte) (int, error)  { return c.SysRead(f, buf) }
func (c *Client) Write(f fd.Borrowed, buf []byte) (int, error) { return c.SysWrite(f, buf) }

// OpenModeFor maps OpenOptions onto the fopen modes the host understands.
// Combinations without an fopen equivalent are EINVAL, CreateNew among
// them: no fopen mode fails on an existing file.
func OpenModeFor(o *abi.OpenOptions) (OpenMode, error) {
	if !o.Valid() || o.CreateNew {
		return 0, einval()
	}
	type key struct{ read, write, append, create, truncate bool }
	switch (key{o.Read, o.Write, o.Append, o.Create, o.Truncate}) {
	case key{true, false, false, false, false}:
		return RDONLY, nil
	case key{true, true, false, false, false}:
		return RDWR, nil
	case key{false, true, false, true, true}:
		return WRONLY_TRUNC, nil
	case key{true, true, false, true, true}:
		return RDWR_TRUNC, nil
	case key{false, true, true, true, false}:
		return WRONLY_APPEND, nil
	case key{true, true, true, true, false}:
		return RDWR_APPEND, nil
	}
	return 0, einval()
}

func (c *Client) Open(path cstr.CStr, o *abi.OpenOptions) (*fd.Owned, error) {
	mode, err := OpenModeFor(o)
	if err != nil {
		return nil, err
	}
	return c.SysOpen(path, mode)
}

// Seek only supports absolute targets.  End is resolved against SYS_FLEN and
// Current has no protocol equivalent.
func (c *Client) Seek(f fd.Borrowed, pos shio.SeekFrom) (uint64, error) {
	var abs uint64
	switch pos.Whence() {
	case shio.FromStart:
		abs = pos.Pos()
	case shio.FromEnd:
		n, err := c.SysFlen(f)
		if err != nil {
			return 0, err
		}
		var ok bool
		if abs, ok = shio.ResolveEnd(uint64(n), pos.Offset()); !ok {
			return 0, einval()
		}
	default:
		return 0, shio.New(shio.Unsupported)
	}
	// the host might accept more, but other conventions cannot
	if abs > math.MaxInt {
		return 0, einval()
	}
	if err := c.SysSeek(f, uintptr(abs)); err != nil {
		return 0, err
	}
	return abs, nil
}

// Metadata only knows the size; SYS_FLEN is the only query the protocol has.
func (c *Client) Metadata(f fd.Borrowed) (abi.Metadata, error) {
	n, err := c.SysFlen(f)
	if err != nil {
		return abi.Metadata{}, err
	}
	return abi.Metadata{Size: uint64(n), Mode: 0o666}, nil
}

func (c *Client) Unlink(path cstr.CStr) error     { return c.SysRemove(path) }
func (c *Client) Rename(from, to cstr.CStr) error { return c.SysRename(from, to) }

var tt = cstr.Must(":tt")

// Stdin opens the console for reading.
func (c *Client) Stdin() (*fd.Owned, error) { return c.SysOpen(tt, RDONLY) }

// Stdout opens the console with a write mode.
func (c *Client) Stdout() (*fd.Owned, error) { return c.SysOpen(tt, WRONLY_TRUNC) }

// Stderr opens the console with an append mode, which hosts supporting
// SH_EXT_STDOUT_STDERR route to stderr.  Others get stdout.
func (c *Client) Stderr() (*fd.Owned, error) {
	f, err := c.SysOpen(tt, WRONLY_APPEND)
	if err != nil {
		return c.Stdout()
	}
	return f, nil
}

func (c *Client) IsTerminal(f fd.Borrowed) bool {
	ok, err := c.SysIsTTY(f)
	return err == nil && ok
}

// Args returns the single command line the host keeps for the program.
func (c *Client) Args(bufSize int) (abi.ArgsBytes, error) {
	line, err := c.GetCmdline(make([]byte, bufSize))
	if err != nil {
		return abi.ArgsBytes{}, err
	}
	return abi.ArgsBytes{Buf: line}, nil
}

func (c *Client) SystemTime() (int64, int64, error) {
	secs, err := c.SysTime()
	if err != nil {
		return 0, 0, err
	}
	return int64(uint64(secs)), 0, nil
}

const nanosPerCentisecond = 10_000_000

// Monotonic is SYS_CLOCK, which only has centisecond resolution.
func (c *Client) Monotonic() (time.Duration, error) {
	cs, err := c.SysClock()
	if err != nil {
		return 0, err
	}
	return time.Duration(uint64(cs)) * nanosPerCentisecond, nil
}

func (c *Client) DecodeErrorKind(code int32) shio.ErrorKind { return DecodeErrorKind(code) }
func (c *Client) IsInterrupted(code int32) bool             { return IsInterrupted(code) }
