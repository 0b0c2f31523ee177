package host

import (
	"os"

	"semihosting/src/sys/m68k"
	"semihosting/src/sys/reg"
)

// M68k serves the GDB File-I/O convention of QEMU's m68k and ColdFire
// machines.  Results are written into the parameter block.
type M68k struct{ h *Host }

var _ m68k.Host = M68k{}

func (h *Host) M68k() M68k { return M68k{h} }

func (m M68k) Call(op m68k.OperationCode, p reg.Param, mutable bool) {
	h := m.h
	h.mu.Lock()
	defer h.mu.Unlock()
	m.serve(op, p, mutable)
	h.tracef("%v", op)
}

// reply stores the conventional result and errno in slots 0 and 1.
func reply(p reg.Param, ret int64, c condition) {
	if c != condOK {
		p.Set(0, uintptr(reg.SignedRet(-1)))
		p.Set(1, uintptr(c.m68k()))
		return
	}
	p.Set(0, uintptr(ret))
	p.Set(1, 0)
}

func gdbOpenFlags(flags uintptr) int {
	var f int
	switch flags & 3 {
	case m68k.O_WRONLY:
		f = os.O_WRONLY
	case m68k.O_RDWR:
		f = os.O_RDWR
	default:
		f = os.O_RDONLY
	}
	if flags&m68k.O_APPEND != 0 {
		f |= os.O_APPEND
	}
	if flags&m68k.O_CREAT != 0 {
		f |= os.O_CREATE
	}
	if flags&m68k.O_TRUNC != 0 {
		f |= os.O_TRUNC
	}
	if flags&m68k.O_EXCL != 0 {
		f |= os.O_EXCL
	}
	return f
}

var gdbConsole = map[string]int64{"/dev/stdin": 0, "/dev/stdout": 1, "/dev/stderr": 2}

func (m M68k) serve(op m68k.OperationCode, p reg.Param, mutable bool) {
	h := m.h
	fdArg := func() int32 { return int32(arg(p, 0).Word()) }

	switch op {
	case m68k.HOSTED_EXIT:
		h.exit(&ExitStatus{Code: int(int32(p.Word()))})

	case m68k.HOSTED_INIT_SIM:
		reply(p, 0, condOK)

	case m68k.HOSTED_OPEN:
		name := cString(arg(p, 0).Pointer())
		if n, ok := gdbConsole[name]; ok {
			reply(p, n, condOK)
			return
		}
		n, c := h.open(name, gdbOpenFlags(arg(p, 2).Word()), os.FileMode(arg(p, 3).Word()&0o777))
		reply(p, int64(n), c)

	case m68k.HOSTED_CLOSE:
		reply(p, 0, h.close(fdArg()))

	case m68k.HOSTED_READ:
		guard(op, mutable)
		got, c := h.read(fdArg(), guestBytes(arg(p, 1).Pointer(), arg(p, 2).Word()))
		reply(p, int64(got), c)

	case m68k.HOSTED_WRITE:
		put, c := h.write(fdArg(), guestBytes(arg(p, 1).Pointer(), arg(p, 2).Word()))
		reply(p, int64(put), c)

	case m68k.HOSTED_LSEEK:
		hi, lo := uint32(arg(p, 1).Word()), uint32(arg(p, 2).Word())
		off := int64(uint64(hi)<<32 | uint64(lo))
		pos, c := h.seek(fdArg(), off, int(arg(p, 3).Word()))
		var errno uintptr
		if c != condOK {
			pos = -1
			errno = uintptr(c.m68k())
		}
		p.Set(0, uintptr(uint32(uint64(pos)>>32)))
		p.Set(1, uintptr(uint32(pos)))
		p.Set(2, errno)

	case m68k.HOSTED_RENAME:
		reply(p, 0, h.rename(cString(arg(p, 0).Pointer()), cString(arg(p, 2).Pointer())))

	case m68k.HOSTED_UNLINK:
		reply(p, 0, h.remove(cString(arg(p, 0).Pointer())))

	case m68k.HOSTED_STAT:
		guard(op, mutable)
		fi, c := h.stat(cString(arg(p, 0).Pointer()))
		if c == condOK {
			*(*m68k.Stat)(arg(p, 2).Pointer()) = gdbStat(fi)
		}
		reply(p, 0, c)

	case m68k.HOSTED_FSTAT:
		guard(op, mutable)
		fi, c := h.fstat(fdArg())
		if c == condOK {
			*(*m68k.Stat)(arg(p, 1).Pointer()) = gdbStat(fi)
		}
		reply(p, 0, c)

	case m68k.HOSTED_GETTIMEOFDAY:
		guard(op, mutable)
		now := h.cfg.Now()
		*(*m68k.Timeval)(arg(p, 0).Pointer()) = m68k.Timeval{
			Sec:  uint32(now.Unix()),
			Usec: int64(now.Nanosecond() / 1000),
		}
		reply(p, 0, condOK)

	case m68k.HOSTED_ISATTY:
		tty, c := h.isatty(fdArg())
		var r int64
		if tty {
			r = 1
		}
		reply(p, r, c)

	case m68k.HOSTED_SYSTEM:
		st, c := h.system(cString(arg(p, 0).Pointer()))
		reply(p, int64(st), c)

	default:
		reply(p, 0, condNoSys)
	}
}

func gdbStat(fi fileInfo) m68k.Stat {
	mode := uint32(fi.perm)
	switch {
	case fi.console:
		mode |= m68k.S_IFCHR
	case fi.dir:
		mode |= m68k.S_IFDIR
	default:
		mode |= m68k.S_IFREG
	}
	return m68k.Stat{
		Mode:    mode,
		Nlink:   1,
		Size:    fi.size,
		Blksize: 512,
		Blocks:  (fi.size + 511) / 512,
		Atime:   uint32(fi.atime.Unix()),
		Mtime:   uint32(fi.mtime.Unix()),
		Ctime:   uint32(fi.mtime.Unix()),
	}
}
