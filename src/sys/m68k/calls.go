package m68k

import (
	"semihosting/src/cstr"
	"semihosting/src/fd"
	"semihosting/src/shio"
	"semihosting/src/sys/reg"
)

// HostedExit stops the program.  The status goes in d1 directly rather than
// in a block.
func (c *Client) HostedExit(code int32) {
	c.syscallNoReturnReadonly(HOSTED_EXIT, reg.Isize(int(code)))
}

// HostedInitSim is issued by crt0 before main; it carries no payload.
func (c *Client) HostedInitSim() {
	c.syscallReadonly(HOSTED_INIT_SIM, reg.Block(reg.Uninit(), reg.Uninit()))
}

func (c *Client) HostedOpen(path cstr.CStr, flags, mode int32) (*fd.Owned, error) {
	b := reg.Block(reg.CStr(path), reg.Usize(uintptr(len(path))), reg.Isize(int(flags)), reg.Isize(int(mode)))
	c.syscallReadonly(HOSTED_OPEN, b)
	ret, errno := result(b)
	f, ok := ret.RawFd()
	if !ok {
		return nil, fromErrno(errno)
	}
	return fd.NewOwned(f, c), nil
}

func (c *Client) HostedClose(f fd.RawFd) error {
	b := reg.Block(reg.RawFd(f), reg.Uninit())
	c.syscallReadonly(HOSTED_CLOSE, b)
	ret, errno := result(b)
	if ret.Int() == 0 {
		return nil
	}
	return fromErrno(errno)
}

func checkCount(ret reg.Ret, n int) (int, error) {
	if uint32(ret.Int()) > uint32(n) {
		return 0, shio.ErrProtocol
	}
	return int(ret.Int()), nil
}

func (c *Client) HostedRead(f fd.Borrowed, buf []byte) (int, error) {
	b := reg.Block(reg.Fd(f), reg.Buf(buf), reg.Usize(uintptr(len(buf))))
	c.syscall(HOSTED_READ, b)
	ret, errno := result(b)
	if ret.Int() == -1 {
		return 0, fromErrno(errno)
	}
	return checkCount(ret, len(buf))
}

func (c *Client) HostedWrite(f fd.Borrowed, buf []byte) (int, error) {
	b := reg.Block(reg.Fd(f), reg.Buf(buf), reg.Usize(uintptr(len(buf))))
	c.syscallReadonly(HOSTED_WRITE, b)
	ret, errno := result(b)
	if ret.Int() == -1 {
		return 0, fromErrno(errno)
	}
	return checkCount(ret, len(buf))
}

// HostedLseek passes the 64-bit offset as two 32-bit halves and receives the
// new position the same way, with errno in the third slot.
func (c *Client) HostedLseek(f fd.Borrowed, offset int64, whence Whence) (uint64, error) {
	b := reg.Block(
		reg.Fd(f),
		reg.Usize(uintptr(uint32(uint64(offset)>>32))),
		reg.Usize(uintptr(uint32(offset))),
		reg.Isize(int(whence)),
	)
	c.syscallReadonly(HOSTED_LSEEK, b)
	hi := uint32(b.At(0).Ret().Unsigned())
	lo := uint32(b.At(1).Ret().Unsigned())
	pos := uint64(hi)<<32 | uint64(lo)
	if int64(pos) == -1 {
		return 0, fromErrno(b.At(2).Ret())
	}
	return pos, nil
}

func (c *Client) HostedRename(from, to cstr.CStr) error {
	b := reg.Block(
		reg.CStr(from), reg.Usize(uintptr(len(from))),
		reg.CStr(to), reg.Usize(uintptr(len(to))),
	)
	c.syscallReadonly(HOSTED_RENAME, b)
	ret, errno := result(b)
	if ret.Int() == 0 {
		return nil
	}
	return fromErrno(errno)
}

func (c *Client) HostedUnlink(path cstr.CStr) error {
	b := reg.Block(reg.CStr(path), reg.Usize(uintptr(len(path))))
	c.syscallReadonly(HOSTED_UNLINK, b)
	ret, errno := result(b)
	if ret.Int() == 0 {
		return nil
	}
	return fromErrno(errno)
}

func (c *Client) HostedStat(path cstr.CStr) (Stat, error) {
	var st Stat
	b := reg.Block(reg.CStr(path), reg.Usize(uintptr(len(path))), reg.Ref(&st))
	c.syscall(HOSTED_STAT, b)
	ret, errno := result(b)
	if ret.Int() == 0 {
		return st, nil
	}
	return Stat{}, fromErrno(errno)
}

func (c *Client) HostedFstat(f fd.Borrowed) (Stat, error) {
	var st Stat
	b := reg.Block(reg.Fd(f), reg.Ref(&st))
	c.syscall(HOSTED_FSTAT, b)
	ret, errno := result(b)
	if ret.Int() == 0 {
		return st, nil
	}
	return Stat{}, fromErrno(errno)
}

func (c *Client) HostedGettimeofday() (Timeval, error) {
	var tv Timeval
	b := reg.Block(reg.Ref(&tv), reg.Uninit())
	c.syscall(HOSTED_GETTIMEOFDAY, b)
	ret, errno := result(b)
	if ret.Int() == 0 {
		return tv, nil
	}
	return Timeval{}, fromErrno(errno)
}

// HostedIsatty answers 1 for a terminal and 0 otherwise; anything else is
// an error.
func (c *Client) HostedIsatty(f fd.Borrowed) (bool, error) {
	b := reg.Block(reg.Fd(f), reg.Uninit())
	c.syscallReadonly(HOSTED_ISATTY, b)
	ret, errno := result(b)
	switch ret.Int() {
	case 1:
		return true, nil
	case 0:
		return false, nil
	}
	return false, fromErrno(errno)
}

// HostedSystem runs cmd on the host and returns its exit status.  GDB only
// permits this after "set remote system-call-allowed 1".
func (c *Client) HostedSystem(cmd cstr.CStr) (int32, error) {
	b := reg.Block(reg.CStr(cmd), reg.Usize(uintptr(len(cmd))))
	c.syscallReadonly(HOSTED_SYSTEM, b)
	ret, errno := result(b)
	if ret.Int() == -1 {
		return 0, fromErrno(errno)
	}
	return ret.Int(), nil
}
