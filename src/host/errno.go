package host

import (
	"semihosting/src/sys/armcompat"
	"semihosting/src/sys/m68k"
	"semihosting/src/sys/mips"
)

// condition is a host failure before it is numbered for a convention.
type condition uint8

const (
	condOK condition = iota
	condPerm
	condNoEnt
	condIntr
	condIO
	condBadF
	condAccess
	condBusy
	condExist
	condXDev
	condNotDir
	condIsDir
	condInval
	condMFile
	condFBig
	condNoSpc
	condSPipe
	condROFS
	condNameTooLong
	condLoop
	condNoSys
)

type errnos struct {
	arm  armcompat.Errno
	mips mips.Errno
	m68k m68k.Errno
}

// Conditions a convention cannot express fall back to its nearest errno.
var errnoTable = map[condition]errnos{
	condPerm:        {armcompat.EPERM, mips.EPERM, m68k.EPERM},
	condNoEnt:       {armcompat.ENOENT, mips.ENOENT, m68k.ENOENT},
	condIntr:        {armcompat.EINTR, mips.EINTR, m68k.EINTR},
	condIO:          {armcompat.EIO, mips.EIO, m68k.EIO},
	condBadF:        {armcompat.EBADF, mips.EBADF, m68k.EBADF},
	condAccess:      {armcompat.EACCES, mips.EACCES, m68k.EACCES},
	condBusy:        {armcompat.EBUSY, mips.EBUSY, m68k.EBUSY},
	condExist:       {armcompat.EEXIST, mips.EEXIST, m68k.EEXIST},
	condXDev:        {armcompat.EXDEV, mips.EXDEV, m68k.EUNKNOWN},
	condNotDir:      {armcompat.ENOTDIR, mips.ENOTDIR, m68k.ENOTDIR},
	condIsDir:       {armcompat.EISDIR, mips.EISDIR, m68k.EISDIR},
	condInval:       {armcompat.EINVAL, mips.EINVAL, m68k.EINVAL},
	condMFile:       {armcompat.EMFILE, mips.EMFILE, m68k.EMFILE},
	condFBig:        {armcompat.EFBIG, mips.EFBIG, m68k.EFBIG},
	condNoSpc:       {armcompat.ENOSPC, mips.ENOSPC, m68k.ENOSPC},
	condSPipe:       {armcompat.ESPIPE, mips.ESPIPE, m68k.ESPIPE},
	condROFS:        {armcompat.EROFS, mips.EROFS, m68k.EROFS},
	condNameTooLong: {armcompat.EINVAL, mips.ENAMETOOLONG, m68k.ENAMETOOLONG},
	condLoop:        {armcompat.EINVAL, mips.ELOOP, m68k.EUNKNOWN},
	condNoSys:       {armcompat.EINVAL, mips.EINVAL, m68k.ENOSYS},
}

var unknown = errnos{armcompat.EIO, mips.EIO, m68k.EUNKNOWN}

func (c condition) numbers() errnos {
	if e, ok := errnoTable[c]; ok {
		return e
	}
	return unknown
}

func (c condition) arm() int32  { return int32(c.numbers().arm) }
func (c condition) mips() int32 { return int32(c.numbers().mips) }
func (c condition) m68k() int32 { return int32(c.numbers().m68k) }
