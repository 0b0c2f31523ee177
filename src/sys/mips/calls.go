package mips

import (
	"semihosting/src/cstr"
	"semihosting/src/fd"
	"semihosting/src/shio"
	"semihosting/src/sys/reg"
)

// Exit is UHI_exit.  If a debugger resumes the program anyway, Exit spins.
func (c *Client) Exit(code int32) {
	c.syscallNoReturnReadonly(UHI_EXIT, reg.Isize(int(code)))
}

// OpenFlags is UHI_open with raw O_* flags and mode bits.
func (c *Client) OpenFlags(path cstr.CStr, flags int32, mode int32) (*fd.Owned, error) {
	ret, errno := c.syscallReadonly(UHI_OPEN, reg.CStr(path), reg.Isize(int(flags)), reg.Isize(int(mode)))
	f, ok := ret.RawFd()
	if !ok {
		return nil, fromErrno(errno)
	}
	return fd.NewOwned(f, c), nil
}

func (c *Client) Close(f fd.RawFd) error {
	ret, errno := c.syscallReadonly(UHI_CLOSE, reg.RawFd(f))
	if ret.Unsigned() == 0 {
		return nil
	}
	return fromErrno(errno)
}

// checkCount turns a host count larger than the request into an error
// rather than a slice panic further up.
func checkCount(ret reg.Ret, n int) (int, error) {
	if ret.Unsigned() > uintptr(n) {
		return 0, shio.ErrProtocol
	}
	return int(ret.Unsigned()), nil
}

func (c *Client) Read(f fd.Borrowed, buf []byte) (int, error) {
	ret, errno := c.syscall(UHI_READ, reg.Fd(f), reg.Buf(buf), reg.Usize(uintptr(len(buf))))
	if ret.Signed() == -1 {
		return 0, fromErrno(errno)
	}
	return checkCount(ret, len(buf))
}

func (c *Client) Write(f fd.Borrowed, buf []byte) (int, error) {
	ret, errno := c.syscallReadonly(UHI_WRITE, reg.Fd(f), reg.Buf(buf), reg.Usize(uintptr(len(buf))))
	if ret.Signed() == -1 {
		return 0, fromErrno(errno)
	}
	return checkCount(ret, len(buf))
}

// Lseek offsets are one register wide, so 32-bit targets cannot address
// past 2GiB.
func (c *Client) Lseek(f fd.Borrowed, offset int, whence Whence) (uintptr, error) {
	ret, errno := c.syscallReadonly(UHI_LSEEK, reg.Fd(f), reg.Isize(offset), reg.Isize(int(whence)))
	if ret.Signed() == -1 {
		return 0, fromErrno(errno)
	}
	return ret.Unsigned(), nil
}

func (c *Client) Unlink(path cstr.CStr) error {
	ret, errno := c.syscallReadonly(UHI_UNLINK, reg.CStr(path))
	if ret.Unsigned() == 0 {
		return nil
	}
	return fromErrno(errno)
}

func (c *Client) Fstat(f fd.Borrowed) (Stat, error) {
	var st Stat
	ret, errno := c.syscall(UHI_FSTAT, reg.Fd(f), reg.Ref(&st))
	if ret.Unsigned() == 0 {
		return st, nil
	}
	return Stat{}, fromErrno(errno)
}

func (c *Client) Argc() int {
	ret, _ := c.syscall(UHI_ARGC)
	return ret.Signed()
}

func (c *Client) Argnlen(n int) (int, error) {
	ret, errno := c.syscallReadonly(UHI_ARGNLEN, reg.Usize(uintptr(n)))
	if ret.Signed() == -1 {
		return 0, fromErrno(errno)
	}
	return ret.Signed(), nil
}

// Argn copies argument n with its terminator into buf, which must hold
// Argnlen(n)+1 bytes.
func (c *Client) Argn(n int, buf []byte) error {
	ret, errno := c.syscall(UHI_ARGN, reg.Usize(uintptr(n)), reg.Buf(buf))
	if ret.Unsigned() == 0 {
		return nil
	}
	return fromErrno(errno)
}

// Plog prints msg on the host's log and returns its length.
func (c *Client) Plog(msg cstr.CStr) (int, error) {
	ret, errno := c.syscallReadonly(UHI_PLOG, reg.CStr(msg))
	if ret.Signed() == -1 {
		return 0, fromErrno(errno)
	}
	return ret.Signed(), nil
}

// Assert reports a failed assertion; the host normally stops the program.
func (c *Client) Assert(msg, file cstr.CStr, line int) {
	c.syscallReadonly(UHI_ASSERT, reg.CStr(msg), reg.CStr(file), reg.Usize(uintptr(line)))
}

func (c *Client) Pread(f fd.Borrowed, buf []byte, offset uintptr) (int, error) {
	ret, errno := c.syscall(UHI_PREAD, reg.Fd(f), reg.Buf(buf), reg.Usize(uintptr(len(buf))), reg.Usize(offset))
	if ret.Signed() == -1 {
		return 0, fromErrno(errno)
	}
	return checkCount(ret, len(buf))
}

func (c *Client) Pwrite(f fd.Borrowed, buf []byte, offset uintptr) (int, error) {
	ret, errno := c.syscallReadonly(UHI_PWRITE, reg.Fd(f), reg.Buf(buf), reg.Usize(uintptr(len(buf))), reg.Usize(offset))
	if ret.Signed() == -1 {
		return 0, fromErrno(errno)
	}
	return checkCount(ret, len(buf))
}

func (c *Client) Link(oldPath, newPath cstr.CStr) error {
	ret, errno := c.syscallReadonly(UHI_LINK, reg.CStr(oldPath), reg.CStr(newPath))
	if ret.Unsigned() == 0 {
		return nil
	}
	return fromErrno(errno)
}
