package m68k

import "semihosting/src/shio"

// Errno uses GDB's File-I/O errno values.
type Errno int32

const (
	EPERM        Errno = 1
	ENOENT       Errno = 2
	EINTR        Errno = 4
	EIO          Errno = 5
	EBADF        Errno = 9
	EACCES       Errno = 13
	EFAULT       Errno = 14
	EBUSY        Errno = 16
	EEXIST       Errno = 17
	ENODEV       Errno = 19
	ENOTDIR      Errno = 20
	EISDIR       Errno = 21
	EINVAL       Errno = 22
	ENFILE       Errno = 23
	EMFILE       Errno = 24
	EFBIG        Errno = 27
	ENOSPC       Errno = 28
	ESPIPE       Errno = 29
	EROFS        Errno = 30
	ENOSYS       Errno = 88
	ENAMETOOLONG Errno = 91
	EUNKNOWN     Errno = 9999
)

var Errnos = []Errno{
	EPERM, ENOENT, EINTR, EIO, EBADF, EACCES, EFAULT, EBUSY, EEXIST, ENODEV,
	ENOTDIR, EISDIR, EINVAL, ENFILE, EMFILE, EFBIG, ENOSPC, ESPIPE, EROFS,
	ENOSYS, ENAMETOOLONG, EUNKNOWN,
}

func DecodeErrorKind(code int32) shio.ErrorKind {
	switch Errno(code) {
	case EBUSY:
		return shio.ResourceBusy
	case EEXIST:
		return shio.AlreadyExists
	case EFBIG:
		return shio.FileTooLarge
	case EINTR:
		return shio.Interrupted
	case EINVAL:
		return shio.InvalidInput
	case EISDIR:
		return shio.IsADirectory
	case ENOENT:
		return shio.NotFound
	case ENOSPC:
		return shio.StorageFull
	case ENAMETOOLONG:
		return shio.InvalidFilename
	case ENOTDIR:
		return shio.NotADirectory
	case EROFS:
		return shio.ReadOnlyFilesystem
	case ESPIPE:
		return shio.NotSeekable
	case EACCES, EPERM:
		return shio.PermissionDenied
	}
	return shio.Other
}

func IsInterrupted(code int32) bool { return Errno(code) == EINTR }

func (e Errno) Code() int32          { return int32(e) }
func (e Errno) Kind() shio.ErrorKind { return DecodeErrorKind(int32(e)) }
func (e Errno) Error() string        { return shio.FormatOS(e.Kind(), int32(e)) }

func einval() error { return shio.FromErrno(EINVAL) }
