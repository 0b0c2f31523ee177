package mips

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

// stdio descriptors are fixed and always open
const (
	stdinFileno  fd.RawFd = 0
	stdoutFileno fd.RawFd = 1
	stderrFileno fd.RawFd = 2
)

func (c *Client) CloseFd(f fd.RawFd) error { return c.Close(f) }

// ShouldClose protects the stdio descriptors.
func (c *Client) ShouldClose(f fd.RawFd) bool { return uint32(f) > uint32(stderrFileno) }

// OpenFlagsFor maps OpenOptions onto UHI's O_* flags.
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
	return c.OpenFlags(path, flags, int32(o.Mode))
}

// Seek resolves End against fstat, because SEEK_END on the host does not
// reject positions before the start of the file.
func (c *Client) Seek(f fd.Borrowed, pos shio.SeekFrom) (uint64, error) {
	var abs uint64
	switch pos.Whence() {
	case shio.FromStart:
		abs = pos.Pos()
	case shio.FromEnd:
		st, err := c.Fstat(f)
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
	n, err := c.Lseek(f, int(abs), SEEK_SET)
	return uint64(n), err
}

func (c *Client) Metadata(f fd.Borrowed) (abi.Metadata, error) {
	st, err := c.Fstat(f)
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
	switch {
	case m&S_IFDIR != 0:
		mode |= iofs.ModeDir
	case m&S_IFCHR != 0:
		mode |= iofs.ModeDevice | iofs.ModeCharDevice
	}
	return mode
}

// Rename has no UHI operation and never reaches the host.
func (c *Client) Rename(from, to cstr.CStr) error {
	return shio.New(shio.Unsupported)
}

func (c *Client) Stdin() (*fd.Owned, error)  { return fd.NewOwned(stdinFileno, c), nil }
func (c *Client) Stdout() (*fd.Owned, error) { return fd.NewOwned(stdoutFileno, c), nil }
func (c *Client) Stderr() (*fd.Owned, error) { return fd.NewOwned(stderrFileno, c), nil }

func (c *Client) IsTerminal(f fd.Borrowed) bool {
	st, err := c.Fstat(f)
	return err == nil && st.Mode&S_IFCHR != 0
}

// Args collects the arguments with UHI_argn, one NUL terminated string each.
func (c *Client) Args(bufSize int) (abi.ArgsBytes, error) {
	buf := make([]byte, bufSize)
	argc := c.Argc()
	start := 0
	for i := 0; i < argc; i++ {
		n, err := c.Argnlen(i)
		if err != nil {
			return abi.ArgsBytes{}, err
		}
		n++
		if start+n > bufSize {
			return abi.ArgsBytes{}, shio.New(shio.ArgumentListTooLong)
		}
		if err := c.Argn(i, buf[start:start+n]); err != nil {
			return abi.ArgsBytes{}, err
		}
		start += n
	}
	// a lone argument is usually the whole command line
	if argc == 1 {
		return abi.ArgsBytes{Buf: buf[:start-1]}, nil
	}
	return abi.ArgsBytes{Buf: buf[:start], Split: true}, nil
}

func (c *Client) SystemTime() (int64, int64, error) {
	return 0, 0, shio.ErrUnsupportedPlatform
}

func (c *Client) Monotonic() (time.Duration, error) {
	return 0, shio.ErrUnsupportedPlatform
}

func (c *Client) DecodeErrorKind(code int32) shio.ErrorKind { return DecodeErrorKind(code) }
func (c *Client) IsInterrupted(code int32) bool             { return IsInterrupted(code) }
