package armcompat

import "semihosting/src/shio"

// Errno is a host error number in the Arm-compatible numbering, which is the
// reduced newlib set the Arm specification inherits.
type Errno int32

const (
	EPERM   Errno = 1
	ENOENT  Errno = 2
	ESRCH   Errno = 3
	EINTR   Errno = 4
	EIO     Errno = 5
	ENXIO   Errno = 6
	E2BIG   Errno = 7
	ENOEXEC Errno = 8
	EBADF   Errno = 9
	ECHILD  Errno = 10
	ENOMEM  Errno = 12
	EACCES  Errno = 13
	EFAULT  Errno = 14
	EBUSY   Errno = 16
	EEXIST  Errno = 17
	EXDEV   Errno = 18
	ENODEV  Errno = 19
	ENOTDIR Errno = 20
	EISDIR  Errno = 21
	EINVAL  Errno = 22
	ENFILE  Errno = 23
	EMFILE  Errno = 24
	ENOTTY  Errno = 25
	EFBIG   Errno = 27
	ENOSPC  Errno = 28
	ESPIPE  Errno = 29
	EROFS   Errno = 30
	EMLINK  Errno = 31
	EPIPE   Errno = 32
	EDOM    Errno = 33
	ERANGE  Errno = 34
)

// Errnos lists every defined value, in numeric order.
var Errnos = []Errno{
	EPERM, ENOENT, ESRCH, EINTR, EIO, ENXIO, E2BIG, ENOEXEC, EBADF, ECHILD,
	ENOMEM, EACCES, EFAULT, EBUSY, EEXIST, EXDEV, ENODEV, ENOTDIR, EISDIR,
	EINVAL, ENFILE, EMFILE, ENOTTY, EFBIG, ENOSPC, ESPIPE, EROFS, EMLINK,
	EPIPE, EDOM, ERANGE,
}

// DecodeErrorKind maps a host errno to the portable kind; anything not in
// the table is Other.
func DecodeErrorKind(code int32) shio.ErrorKind {
	switch Errno(code) {
	case E2BIG:
		return shio.ArgumentListTooLong
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
	case ENOMEM:
		return shio.OutOfMemory
	case ENOSPC:
		return shio.StorageFull
	case EMLINK:
		return shio.TooManyLinks
	case ENOTDIR:
		return shio.NotADirectory
	case EPIPE:
		return shio.BrokenPipe
	case EROFS:
		return shio.ReadOnlyFilesystem
	case ESPIPE:
		return shio.NotSeekable
	case EXDEV:
		return shio.CrossesDevices
	case EACCES, EPERM:
		return shio.PermissionDenied
	}
	return shio.Other
}

func IsInterrupted(code int32) bool { return Errno(code) == EINTR }

func (e Errno) Code() int32          { return int32(e) }
func (e Errno) Kind() shio.ErrorKind { return DecodeErrorKind(int32(e)) }
func (e Errno) Error() string        { return shio.FormatOS(e.Kind(), int32(e)) }

func fromErrno(code int32) error { return shio.FromErrno(Errno(code)) }

func einval() error { return fromErrno(int32(EINVAL)) }
