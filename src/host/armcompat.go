package host

import (
	"os"
	"time"
	"unsafe"

	"semihosting/src/sys/armcompat"
	"semihosting/src/sys/reg"
)

// ArmCompat serves the Arm-compatible convention used by AArch64, Arm,
// RISC-V and LoongArch targets.
type ArmCompat struct{ h *Host }

var _ armcompat.Host = ArmCompat{}

func (h *Host) ArmCompat() ArmCompat { return ArmCompat{h} }

// Call never clobbers the parameter register.
func (a ArmCompat) Call(op armcompat.OperationNumber, p reg.Param, mutable bool) (reg.Ret, bool) {
	h := a.h
	h.mu.Lock()
	defer h.mu.Unlock()
	ret := a.serve(op, p, mutable)
	h.tracef("%v = %#x", op, uintptr(ret))
	return ret, false
}

func (a ArmCompat) fail(c condition) reg.Ret {
	a.h.errno = c.arm()
	return reg.SignedRet(-1)
}

func (a ArmCompat) status(c condition) reg.Ret {
	if c != condOK {
		return a.fail(c)
	}
	return 0
}

// fopen modes in the order of armcompat.OpenMode, binary variants folded
var armOpenFlags = [...]int{
	os.O_RDONLY,
	os.O_RDWR,
	os.O_WRONLY | os.O_CREATE | os.O_TRUNC,
	os.O_RDWR | os.O_CREATE | os.O_TRUNC,
	os.O_WRONLY | os.O_CREATE | os.O_APPEND,
	os.O_RDWR | os.O_CREATE | os.O_APPEND,
}

func (a ArmCompat) serve(op armcompat.OperationNumber, p reg.Param, mutable bool) reg.Ret {
	h := a.h
	switch op {
	case armcompat.SYS_OPEN:
		name := cString(arg(p, 0).Pointer())
		mode := armcompat.OpenMode(arg(p, 1).Word())
		if mode > armcompat.RDWR_APPEND_BINARY {
			return a.fail(condInval)
		}
		if name == ":tt" {
			switch {
			case mode < armcompat.WRONLY_TRUNC:
				return reg.Ret(h.openConsole(streamStdin, name))
			case mode < armcompat.WRONLY_APPEND:
				return reg.Ret(h.openConsole(streamStdout, name))
			}
			return reg.Ret(h.openConsole(streamStderr, name))
		}
		n, c := h.open(name, armOpenFlags[mode/2], 0o666)
		if c != condOK {
			return a.fail(c)
		}
		return reg.Ret(n)

	case armcompat.SYS_CLOSE:
		return a.status(h.close(int32(arg(p, 0).Word())))

	case armcompat.SYS_WRITEC:
		h.consoleWrite([]byte{*(*byte)(p.Pointer())})
		return 0

	case armcompat.SYS_WRITE0:
		h.consoleWrite([]byte(cString(p.Pointer())))
		return 0

	case armcompat.SYS_WRITE:
		n := arg(p, 2).Word()
		put, c := h.write(int32(arg(p, 0).Word()), guestBytes(arg(p, 1).Pointer(), n))
		if c != condOK {
			return a.fail(c)
		}
		return reg.Ret(n - uintptr(put))

	case armcompat.SYS_READ:
		guard(op, mutable)
		n := arg(p, 2).Word()
		got, c := h.read(int32(arg(p, 0).Word()), guestBytes(arg(p, 1).Pointer(), n))
		if c != condOK {
			return a.fail(c)
		}
		return reg.Ret(n - uintptr(got))

	case armcompat.SYS_READC:
		b, ok := h.consoleReadByte()
		if !ok {
			return a.fail(condIO)
		}
		return reg.Ret(b)

	case armcompat.SYS_ISERROR:
		if int(arg(p, 0).Word()) < 0 {
			return 1
		}
		return 0

	case armcompat.SYS_ISTTY:
		tty, c := h.isatty(int32(arg(p, 0).Word()))
		if c != condOK {
			return a.fail(c)
		}
		if tty {
			return 1
		}
		return 0

	case armcompat.SYS_SEEK:
		_, c := h.seek(int32(arg(p, 0).Word()), int64(arg(p, 1).Word()), 0)
		return a.status(c)

	case armcompat.SYS_FLEN:
		fi, c := h.fstat(int32(arg(p, 0).Word()))
		if c != condOK {
			return a.fail(c)
		}
		return reg.Ret(fi.size)

	case armcompat.SYS_TMPNAM:
		guard(op, mutable)
		buf := guestBytes(arg(p, 0).Pointer(), arg(p, 2).Word())
		name := h.tmpnam(int(arg(p, 1).Word()))
		if len(name)+1 > len(buf) {
			return a.fail(condNameTooLong)
		}
		buf[copy(buf, name)] = 0
		return 0

	case armcompat.SYS_REMOVE:
		return a.status(h.remove(cString(arg(p, 0).Pointer())))

	case armcompat.SYS_RENAME:
		return a.status(h.rename(cString(arg(p, 0).Pointer()), cString(arg(p, 2).Pointer())))

	case armcompat.SYS_CLOCK:
		return reg.Ret(h.elapsed() / (10 * time.Millisecond))

	case armcompat.SYS_TIME:
		return reg.Ret(h.cfg.Now().Unix())

	case armcompat.SYS_SYSTEM:
		st, c := h.system(cString(arg(p, 0).Pointer()))
		if c != condOK {
			return a.fail(c)
		}
		return reg.SignedRet(st)

	case armcompat.SYS_ERRNO:
		return reg.Ret(h.errno)

	case armcompat.SYS_GET_CMDLINE:
		guard(op, mutable)
		cl := (*armcompat.CommandLine)(p.Pointer())
		line := h.cfg.cmdline()
		if uintptr(len(line))+1 > cl.Size {
			h.errno = int32(armcompat.E2BIG)
			return reg.SignedRet(-1)
		}
		buf := guestBytes(unsafe.Pointer(cl.Ptr), cl.Size)
		buf[copy(buf, line)] = 0
		cl.Size = uintptr(len(line))
		return 0

	case armcompat.SYS_HEAPINFO:
		guard(op, mutable)
		*(*armcompat.HeapInfo)(p.Pointer()) = armcompat.HeapInfo{}
		return 0

	case armcompat.SYS_EXIT, armcompat.SYS_EXIT_EXTENDED:
		var reason, sub uintptr
		if p.Kind() == reg.KindBlock {
			reason, sub = arg(p, 0).Word(), arg(p, 1).Word()
		} else {
			reason = p.Word()
		}
		code := 1
		if armcompat.ExitReason(reason) == armcompat.ADP_Stopped_ApplicationExit {
			code = int(int32(sub))
		}
		h.exit(&ExitStatus{Code: code, Reason: uint32(reason)})

	case armcompat.SYS_ELAPSED:
		guard(op, mutable)
		*(*uint64)(p.Pointer()) = ticks(h.elapsed(), h.cfg.TickFreq)
		return 0

	case armcompat.SYS_TICKFREQ:
		return reg.Ret(h.cfg.TickFreq)
	}
	return a.fail(condNoSys)
}

func ticks(d time.Duration, freq uint64) uint64 {
	ns := uint64(d.Nanoseconds())
	return ns/1e9*freq + ns%1e9*freq/1e9
}
