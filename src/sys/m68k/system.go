package m68k

import (
	iofs "io/fs"
	"math"
	"time"

	"semihosting/src/cstr"
	"semihosting/src/fd"
	"semihosting/src/shio"
	"semihosting/src/sys/abi"
)

var _ abi.Backend = (*Client)(nil)

var (
	devStdin  = cstr.Must("/dev/stdin")
	devStdout = cstr.Must("/dev/stdout")
	devStderr = cstr.Must("/dev/stderr")
)

func (c *Client) CloseFd(f fd.RawFd) error { return c.HostedClose(f) }

// ShouldClose leaves GDB's console descriptors open.
func (c *Client) ShouldClose(f fd.RawFd) bool { return uint32(f) > 2 }

func (c *Client) Read(f fd.Borrowed, buf []byte) (int, error)  { return c.HostedRead(f, buf) }
func (c *Client) Write(f fd.Borrowed, buf []byte) (int, error) { return c.HostedWrite(f, buf) }

// OpenFlagsFor maps OpenOptions onto GDB File-I/O flags.
func OpenFlagsFor(o *abi.OpenOptions) (int32, error) {
	if !o.Valid() {
		return 0, einval()
	}
	var access int32
	switch {
	case o.Append && o.Read:
		access = O_RDWR | O_APPEND
	case o.Append:
		access = O_WRONLY | O_APPEND
	case o.Read && o.Write:
		access = O_RDWR
	case o.Write:
		access = O_WRONLY
	case o.Read:
		access = O_RDONLY
	default:
		return 0, einval()
	}
	var creation int32
	switch {
	case o.CreateNew:
		creation = O_CREAT | O_EXCL
	case o.Create && o.Truncate:
		creation = O_CREAT | O_TRUNC
	case o.Create:
		creation = O_CREAT
	case o.Truncate:
		creation = O_TRUNC
	}
	return access | creation, nil
}

func (c *Client) Open(path cstr.CStr, o *abi.OpenOptions) (*fd.Owned, error) {
	flags, err := OpenFlagsFor(o)
	if err != nil {
		return nil, err
	}
	return c.HostedOpen(path, flags, int32(o.Mode))
}

func (c *Client) Seek(f fd.Borrowed, pos shio.SeekFrom) (uint64, error) {
	var abs uint64
	switch pos.Whence() {
	case shio.FromStart:
		abs = pos.Pos()
	case shio.FromEnd:
		st, err := c.HostedFstat(f)
		if err != nil {
			return 0, err
		}
		var ok bool
		if abs, ok = shio.ResolveEnd(st.Size, pos.Offset()); !ok {
			return 0, einval()
		}
	default:
		return 0, shio.New(shio.Unsupported)
	}
	if abs > math.MaxInt {
		return 0, einval()
	}
	return c.HostedLseek(f, int64(abs), SEEK_SET)
}

func (c *Client) Metadata(f fd.Borrowed) (abi.Metadata, error) {
	st, err := c.HostedFstat(f)
	if err != nil {
		return abi.Metadata{}, err
	}
	return abi.Metadata{
		Size:    st.Size,
		Mode:    fileMode(st.Mode),
		ModTime: time.Unix(int64(st.Mtime), 0),
	}, nil
}

func fileMode(m uint32) iofs.FileMode {
	mode := iofs.FileMode(m & 0o777)
	if m&S_IFDIR != 0 {
		mode |= iofs.ModeDir
	}
	return mode
}

func (c *Client) Unlink(path cstr.CStr) error     { return c.HostedUnlink(path) }
func (c *Client) Rename(from, to cstr.CStr) error { return c.HostedRename(from, to) }

func (c *Client) Stdin() (*fd.Owned, error) {
	return c.HostedOpen(devStdin, O_RDONLY, abi.DefaultMode)
}

func (c *Client) Stdout() (*fd.Owned, error) {
	return c.HostedOpen(devStdout, O_WRONLY|O_APPEND, abi.DefaultMode)
}

func (c *Client) Stderr() (*fd.Owned, error) {
	return c.HostedOpen(devStderr, O_WRONLY|O_APPEND, abi.DefaultMode)
}

func (c *Client) IsTerminal(f fd.Borrowed) bool {
	tty, err := c.HostedIsatty(f)
	return err == nil && tty
}

func (c *Client) Exit(code int32) { c.HostedExit(code) }

// Args is not part of the GDB File-I/O protocol.
func (c *Client) Args(bufSize int) (abi.ArgsBytes, error) {
	return abi.ArgsBytes{}, shio.ErrUnsupportedPlatform
}

func (c *Client) SystemTime() (int64, int64, error) {
	tv, err := c.HostedGettimeofday()
	if err != nil {
		return 0, 0, err
	}
	return int64(tv.Sec), tv.Usec * int64(time.Microsecond), nil
}

func (c *Client) Monotonic() (time.Duration, error) {
	return 0, shio.ErrUnsupportedPlatform
}

func (c *Client) DecodeErrorKind(code int32) shio.ErrorKind { return DecodeErrorKind(code) }
func (c *Client) IsInterrupted(code int32) bool             { return IsInterrupted(code) }
