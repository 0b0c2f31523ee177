package host

import (
	"fmt"
	"os"

	"semihosting/src/sys/mips"
	"semihosting/src/sys/reg"
)

// MIPS serves the UHI convention.
type MIPS struct{ h *Host }

var _ mips.Host = MIPS{}

func (h *Host) MIPS() MIPS { return MIPS{h} }

func (m MIPS) Call(op mips.OperationCode, args []reg.Param, mutable bool) (reg.Ret, reg.Ret) {
	h := m.h
	h.mu.Lock()
	defer h.mu.Unlock()
	ret, c := m.serve(op, args, mutable)
	h.tracef("%v = %d (errno %d)", op, int(ret), c.mips())
	if c != condOK {
		return reg.SignedRet(-1), reg.Ret(c.mips())
	}
	return ret, 0
}

func mipsOpenFlags(flags uintptr) int {
	var f int
	switch flags & 3 {
	case mips.O_WRONLY:
		f = os.O_WRONLY
	case mips.O_RDWR:
		f = os.O_RDWR
	default:
		f = os.O_RDONLY
	}
	if flags&mips.O_APPEND != 0 {
		f |= os.O_APPEND
	}
	if flags&mips.O_CREAT != 0 {
		f |= os.O_CREATE
	}
	if flags&mips.O_TRUNC != 0 {
		f |= os.O_TRUNC
	}
	if flags&mips.O_EXCL != 0 {
		f |= os.O_EXCL
	}
	return f
}

func (m MIPS) serve(op mips.OperationCode, args []reg.Param, mutable bool) (reg.Ret, condition) {
	h := m.h
	a := func(i int) reg.Param {
		if i < len(args) {
			return args[i]
		}
		return reg.Uninit()
	}
	fdArg := func() int32 { return int32(a(0).Word()) }

	switch op {
	case mips.UHI_EXIT:
		h.exit(&ExitStatus{Code: int(int32(a(0).Word()))})

	case mips.UHI_OPEN:
		n, c := h.open(cString(a(0).Pointer()), mipsOpenFlags(a(1).Word()), os.FileMode(a(2).Word()&0o777))
		return reg.Ret(n), c

	case mips.UHI_CLOSE:
		return 0, h.close(fdArg())

	case mips.UHI_READ:
		guard(op, mutable)
		got, c := h.read(fdArg(), guestBytes(a(1).Pointer(), a(2).Word()))
		return reg.Ret(got), c

	case mips.UHI_WRITE:
		put, c := h.write(fdArg(), guestBytes(a(1).Pointer(), a(2).Word()))
		return reg.Ret(put), c

	case mips.UHI_LSEEK:
		pos, c := h.seek(fdArg(), int64(int(a(1).Word())), int(a(2).Word()))
		return reg.Ret(pos), c

	case mips.UHI_UNLINK:
		return 0, h.remove(cString(a(0).Pointer()))

	case mips.UHI_FSTAT:
		guard(op, mutable)
		fi, c := h.fstat(fdArg())
		if c != condOK {
			return 0, c
		}
		*(*mips.Stat)(a(1).Pointer()) = mipsStat(fi)
		return 0, condOK

	case mips.UHI_ARGC:
		return reg.Ret(len(h.cfg.Args)), condOK

	case mips.UHI_ARGNLEN:
		n := int(a(0).Word())
		if n < 0 || n >= len(h.cfg.Args) {
			return 0, condInval
		}
		return reg.Ret(len(h.cfg.Args[n])), condOK

	case mips.UHI_ARGN:
		guard(op, mutable)
		n := int(a(0).Word())
		if n < 0 || n >= len(h.cfg.Args) {
			return 0, condInval
		}
		s := h.cfg.Args[n]
		buf := guestBytes(a(1).Pointer(), uintptr(len(s)+1))
		buf[copy(buf, s)] = 0
		return 0, condOK

	case mips.UHI_PLOG:
		s := cString(a(0).Pointer())
		h.consoleWrite([]byte(s))
		return reg.Ret(len(s)), condOK

	case mips.UHI_ASSERT:
		msg := fmt.Sprintf("%s:%d: assertion failed: %s",
			cString(a(1).Pointer()), int(a(2).Word()), cString(a(0).Pointer()))
		h.log.Print(msg)
		h.exit(&ExitStatus{Code: 1, Message: msg})

	case mips.UHI_PREAD:
		guard(op, mutable)
		got, c := h.pread(fdArg(), guestBytes(a(1).Pointer(), a(2).Word()), int64(a(3).Word()))
		return reg.Ret(got), c

	case mips.UHI_PWRITE:
		put, c := h.pwrite(fdArg(), guestBytes(a(1).Pointer(), a(2).Word()), int64(a(3).Word()))
		return reg.Ret(put), c

	case mips.UHI_LINK:
		return 0, h.link(cString(a(0).Pointer()), cString(a(1).Pointer()))
	}
	return 0, condNoSys
}

func mipsStat(fi fileInfo) mips.Stat {
	mode := uint32(fi.perm)
	switch {
	case fi.console:
		mode |= mips.S_IFCHR
	case fi.dir:
		mode |= mips.S_IFDIR
	default:
		mode |= mips.S_IFREG
	}
	return mips.Stat{
		Mode:    mode,
		Nlink:   1,
		Size:    fi.size,
		Atime:   uint64(fi.atime.Unix()),
		Mtime:   uint64(fi.mtime.Unix()),
		Ctime:   uint64(fi.mtime.Unix()),
		Blksize: 512,
		Blocks:  (fi.size + 511) / 512,
	}
}
