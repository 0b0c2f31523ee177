//go:build unix

package host

import (
	"errors"
	iofs "io/fs"
	"strings"

	"golang.org/x/sys/unix"
)

// classify reads the errno out of an os error.
func classify(err error) condition {
	var en unix.Errno
	if !errors.As(err, &en) {
		return classifyPortable(err)
	}
	switch en {
	case unix.EPERM:
		return condPerm
	case unix.ENOENT:
		return condNoEnt
	case unix.EINTR:
		return condIntr
	case unix.EBADF:
		return condBadF
	case unix.EACCES:
		return condAccess
	case unix.EBUSY, unix.ETXTBSY:
		return condBusy
	case unix.EEXIST:
		return condExist
	case unix.EXDEV:
		return condXDev
	case unix.ENOTDIR:
		return condNotDir
	case unix.EISDIR:
		return condIsDir
	case unix.EINVAL:
		return condInval
	case unix.EMFILE, unix.ENFILE:
		return condMFile
	case unix.EFBIG:
		return condFBig
	case unix.ENOSPC, unix.EDQUOT:
		return condNoSpc
	case unix.ESPIPE:
		return condSPipe
	case unix.EROFS:
		return condROFS
	case unix.ENAMETOOLONG:
		return condNameTooLong
	case unix.ELOOP:
		return condLoop
	case unix.ENOSYS:
		return condNoSys
	}
	return condIO
}

func classifyPortable(err error) condition {
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		return condNoEnt
	case errors.Is(err, iofs.ErrExist):
		return condExist
	case errors.Is(err, iofs.ErrPermission):
		return condAccess
	case errors.Is(err, iofs.ErrInvalid), errors.Is(err, iofs.ErrClosed):
		return condBadF
	}
	// os.Root reports escapes without an errno
	if strings.Contains(err.Error(), "escapes") {
		return condAccess
	}
	return condIO
}
