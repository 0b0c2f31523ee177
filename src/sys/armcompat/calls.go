package armcompat

import (
	"unsafe"

	"semihosting/src/cstr"
	"semihosting/src/fd"
	"semihosting/src/shio"
	"semihosting/src/sys/reg"
)

const ptrSize = unsafe.Sizeof(uintptr(0))

// fromErrno fetches the errno for a failure just observed.  It must run
// before any other call that could overwrite the host's errno.
func (c *Client) fromErrno() error {
	return fromErrno(c.SysErrno())
}

/////////////////////////////////////////////////////////////////////
// files
/////////////////////////////////////////////////////////////////////

// SysOpen returns a descriptor owned by c.
func (c *Client) SysOpen(path cstr.CStr, mode OpenMode) (*fd.Owned, error) {
	ret := c.syscallReadonly(SYS_OPEN, reg.Block(
		reg.CStr(path),
		reg.Usize(uintptr(mode)),
		reg.CStrLen(path),
	))
	f, ok := ret.RawFd()
	if !ok {
		return nil, c.fromErrno()
	}
	return fd.NewOwned(f, c), nil
}

// SysClose does not consult ShouldClose; use Owned.Close for that.
func (c *Client) SysClose(f fd.RawFd) error {
	ret := c.syscallReadonly(SYS_CLOSE, reg.Block(reg.RawFd(f)))
	if ret.Unsigned() == 0 {
		return nil
	}
	return c.fromErrno()
}

// SysRead returns the number of bytes read.  The host reports the number of
// bytes it did not read, so a zero count means end of file.
func (c *Client) SysRead(f fd.Borrowed, buf []byte) (int, error) {
	n := uintptr(len(buf))
	ret := c.syscall(SYS_READ, reg.Block(reg.Fd(f), reg.Buf(buf), reg.Usize(n)))
	if ret.Unsigned() <= n {
		return int(n - ret.Unsigned()), nil
	}
	return 0, c.fromErrno()
}

// SysWrite returns the number of bytes written, computed from the host's
// count of bytes not written.
func (c *Client) SysWrite(f fd.Borrowed, buf []byte) (int, error) {
	n := uintptr(len(buf))
	ret := c.syscallReadonly(SYS_WRITE, reg.Block(reg.Fd(f), reg.Buf(buf), reg.Usize(n)))
	notWritten := ret.Unsigned()
	switch {
	case notWritten == 0:
		return len(buf), nil
	case notWritten > n:
		return 0, c.fromErrno()
	case notWritten == n && c.Quirks.UnwrittenIsError:
		return 0, c.fromErrno()
	}
	return int(n - notWritten), nil
}

// SysSeek moves to an absolute position; the protocol has no relative seek.
func (c *Client) SysSeek(f fd.Borrowed, abs uintptr) error {
	ret := c.syscallReadonly(SYS_SEEK, reg.Block(reg.Fd(f), reg.Usize(abs)))
	if ret.Unsigned() == 0 {
		return nil
	}
	return c.fromErrno()
}

func (c *Client) SysFlen(f fd.Borrowed) (uintptr, error) {
	ret := c.syscallReadonly(SYS_FLEN, reg.Block(reg.Fd(f)))
	if ret.Int() == -1 {
		return 0, c.fromErrno()
	}
	return ret.Unsigned(), nil
}

// SysIsTTY reports whether f is an interactive device.
func (c *Client) SysIsTTY(f fd.Borrowed) (bool, error) {
	ret := c.syscallReadonly(SYS_ISTTY, reg.Block(reg.Fd(f)))
	switch ret.Unsigned() {
	case 1:
		return true, nil
	case 0:
		return false, nil
	}
	// some hosts do not set errno here
	return false, c.fromErrno()
}

func (c *Client) SysRemove(path cstr.CStr) error {
	ret := c.syscallReadonly(SYS_REMOVE, reg.Block(reg.CStr(path), reg.CStrLen(path)))
	if ret.Unsigned() == 0 {
		return nil
	}
	return c.fromErrno()
}

func (c *Client) SysRename(from, to cstr.CStr) error {
	ret := c.syscallReadonly(SYS_RENAME, reg.Block(
		reg.CStr(from), reg.CStrLen(from),
		reg.CStr(to), reg.CStrLen(to),
	))
	if ret.Unsigned() == 0 {
		return nil
	}
	return c.fromErrno()
}

// SysTmpnam asks the host for a temporary file name.  id must be 0-255 and
// buf receives the NUL terminated name.
//
// Deprecated: tmpnam is not safe on most host systems.
func (c *Client) SysTmpnam(buf []byte, id uint8) (cstr.CStr, error) {
	ret := c.syscall(SYS_TMPNAM, reg.Block(reg.Buf(buf), reg.Usize(uintptr(id)), reg.Usize(uintptr(len(buf)))))
	if ret.Unsigned() != 0 {
		return nil, c.fromErrno()
	}
	return cstr.FromBytes(buf)
}

/////////////////////////////////////////////////////////////////////
// console
/////////////////////////////////////////////////////////////////////

func (c *Client) SysWriteC(b byte) {
	c.syscallReadonly(SYS_WRITEC, reg.Ref(&b))
}

func (c *Client) SysWrite0(s cstr.CStr) {
	c.syscallReadonly(SYS_WRITE0, reg.CStr(s))
}

// SysReadC blocks until the host console delivers a byte.
func (c *Client) SysReadC() byte {
	return c.syscall0(SYS_READC).U8()
}

/////////////////////////////////////////////////////////////////////
// time
/////////////////////////////////////////////////////////////////////

// SysClock is centiseconds since the program started.
func (c *Client) SysClock() (uintptr, error) {
	ret := c.syscall0(SYS_CLOCK)
	if ret.Int() == -1 {
		return 0, c.fromErrno()
	}
	return ret.Unsigned(), nil
}

// SysTime is seconds since the Unix epoch.
func (c *Client) SysTime() (uintptr, error) {
	return c.syscall0(SYS_TIME).Unsigned(), nil
}

// SysElapsed is ticks since an arbitrary point, see SysTickfreq.  On 32-bit
// targets the host fills two words, on 64-bit targets one; a uint64 covers
// both layouts.
func (c *Client) SysElapsed() (uint64, error) {
	var ticks uint64
	ret := c.syscall(SYS_ELAPSED, reg.Ref(&ticks))
	if ret.Unsigned() == 0 {
		return ticks, nil
	}
	return 0, c.fromErrno()
}

func (c *Client) SysTickfreq() (uintptr, error) {
	ret := c.syscall0(SYS_TICKFREQ)
	if ret.Int() == -1 {
		return 0, c.fromErrno()
	}
	return ret.Unsigned(), nil
}

/////////////////////////////////////////////////////////////////////
// misc
/////////////////////////////////////////////////////////////////////

// SysErrno is the host's errno from the last failed call.
func (c *Client) SysErrno() int32 {
	return c.syscall0(SYS_ERRNO).Errno()
}

// SysIsError asks the host whether a status value indicates an error.
func (c *Client) SysIsError(status int) bool {
	return c.syscallReadonly(SYS_ISERROR, reg.Block(reg.Isize(status))).Unsigned() != 0
}

// SysSystem runs cmd on the host and returns its status.
func (c *Client) SysSystem(cmd cstr.CStr) uintptr {
	return c.syscallReadonly(SYS_SYSTEM, reg.Block(reg.CStr(cmd), reg.CStrLen(cmd))).Unsigned()
}

// SysGetCmdline fills cmdline.Ptr; on return cmdline.Size is the length of
// the command line, excluding the terminator.
func (c *Client) SysGetCmdline(cmdline *CommandLine) error {
	ret := c.syscall(SYS_GET_CMDLINE, reg.Ref(cmdline))
	if ret.Unsigned() == 0 {
		return nil
	}
	return c.fromErrno()
}

// GetCmdline reads the command line into buf.  The last byte of buf is kept
// for the terminator; a longer command line is ArgumentListTooLong.
func (c *Client) GetCmdline(buf []byte) ([]byte, error) {
	if len(buf) < 2 {
		return nil, shio.New(shio.ArgumentListTooLong)
	}
	for i := range buf {
		buf[i] = 0
	}
	capacity := uintptr(len(buf) - 1)
	cl := CommandLine{Ptr: &buf[0], Size: capacity}
	if err := c.SysGetCmdline(&cl); err != nil {
		return nil, err
	}
	if cl.Size > capacity || buf[len(buf)-1] != 0 {
		return nil, shio.New(shio.ArgumentListTooLong)
	}
	return buf[:cl.Size], nil
}

func (c *Client) SysHeapinfo() HeapInfo {
	var hi HeapInfo
	c.syscall(SYS_HEAPINFO, reg.Ref(&hi))
	return hi
}

/////////////////////////////////////////////////////////////////////
// exit
/////////////////////////////////////////////////////////////////////

// SysExit reports an exception or application exit to the debugger.  64-bit
// targets always pass a [reason, subcode] block.
func (c *Client) SysExit(reason ExitReason) {
	var p reg.Param
	if ptrSize == 8 {
		p = reg.Block(reg.Usize(uintptr(reason)), reg.Usize(0))
	} else {
		p = reg.Usize(uintptr(reason))
	}
	c.syscallReadonly(SYS_EXIT, p)
}

// SysExitExtended is SYS_EXIT with a subcode.  On 64-bit targets plain
// SYS_EXIT already behaves this way and is what gets issued.
func (c *Client) SysExitExtended(reason ExitReason, subcode uintptr) {
	op := SYS_EXIT_EXTENDED
	if ptrSize == 8 {
		op = SYS_EXIT
	}
	c.syscallReadonly(op, reg.Block(reg.Usize(uintptr(reason)), reg.Usize(subcode)))
}

// Exit terminates with status code.  A host without SYS_EXIT_EXTENDED
// returns from the first call and gets a plain SYS_EXIT with a reason
// derived from code.
func (c *Client) Exit(code int32) {
	c.SysExitExtended(ADP_Stopped_ApplicationExit, uintptr(int(code)))
	reason := ADP_Stopped_RunTimeErrorUnknown
	if code == 0 {
		reason = ADP_Stopped_ApplicationExit
	}
	var p reg.Param
	if ptrSize == 8 {
		p = reg.Block(reg.Usize(uintptr(reason)), reg.Usize(0))
	} else {
		p = reg.Usize(uintptr(reason))
	}
	c.syscallNoReturnReadonly(SYS_EXIT, p)
}
