package mips

import "semihosting/src/shio"

// Errno is UHI's errno numbering, which follows newlib and so includes the
// network errors the Arm set lacks.
type Errno int32

const (
	EPERM        Errno = 1
	ENOENT       Errno = 2
	EINTR        Errno = 4
	EIO          Errno = 5
	ENXIO        Errno = 6
	EBADF        Errno = 9
	EAGAIN       Errno = 11
	EWOULDBLOCK  Errno = 11
	ENOMEM       Errno = 12
	EACCES       Errno = 13
	EBUSY        Errno = 16
	EEXIST       Errno = 17
	EXDEV        Errno = 18
	ENOTDIR      Errno = 20
	EISDIR       Errno = 21
	EINVAL       Errno = 22
	ENFILE       Errno = 23
	EMFILE       Errno = 24
	ETXTBSY      Errno = 26
	EFBIG        Errno = 27
	ENOSPC       Errno = 28
	ESPIPE       Errno = 29
	EROFS        Errno = 30
	EMLINK       Errno = 31
	EPIPE        Errno = 32
	ERANGE       Errno = 34
	ENOSR        Errno = 63
	EBADMSG      Errno = 77
	ENAMETOOLONG Errno = 91
	ELOOP        Errno = 92
	ECONNRESET   Errno = 104
	ENOBUFS      Errno = 105
	ENETUNREACH  Errno = 114
	ENETDOWN     Errno = 115
	ETIMEDOUT    Errno = 116
	ENOTCONN     Errno = 128
	EOVERFLOW    Errno = 139
)

var Errnos = []Errno{
	EPERM, ENOENT, EINTR, EIO, ENXIO, EBADF, EAGAIN, ENOMEM, EACCES, EBUSY,
	EEXIST, EXDEV, ENOTDIR, EISDIR, EINVAL, ENFILE, EMFILE, ETXTBSY, EFBIG,
	ENOSPC, ESPIPE, EROFS, EMLINK, EPIPE, ERANGE, ENOSR, EBADMSG,
	ENAMETOOLONG, ELOOP, ECONNRESET, ENOBUFS, ENETUNREACH, ENETDOWN,
	ETIMEDOUT, ENOTCONN, EOVERFLOW,
}

func DecodeErrorKind(code int32) shio.ErrorKind {
	switch Errno(code) {
	case EBUSY:
		return shio.ResourceBusy
	case ECONNRESET:
		return shio.ConnectionReset
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
	case ELOOP:
		return shio.FilesystemLoop
	case ENOENT:
		return shio.NotFound
	case ENOMEM:
		return shio.OutOfMemory
	case ENOSPC:
		return shio.StorageFull
	case EMLINK:
		return shio.TooManyLinks
	case ENAMETOOLONG:
		return shio.InvalidFilename
	case ENETDOWN:
		return shio.NetworkDown
	case ENETUNREACH:
		return shio.NetworkUnreachable
	case ENOTCONN:
		return shio.NotConnected
	case ENOTDIR:
		return shio.NotADirectory
	case EPIPE:
		return shio.BrokenPipe
	case EROFS:
		return shio.ReadOnlyFilesystem
	case ESPIPE:
		return shio.NotSeekable
	case ETIMEDOUT:
		return shio.TimedOut
	case ETXTBSY:
		return shio.ExecutableFileBusy
	case EXDEV:
		return shio.CrossesDevices
	case EACCES, EPERM:
		return shio.PermissionDenied
	case EAGAIN:
		return shio.WouldBlock
	}
	return shio.Other
}

func IsInterrupted(code int32) bool { return Errno(code) == EINTR }

func (e Errno) Code() int32          { return int32(e) }
func (e Errno) Kind() shio.ErrorKind { return DecodeErrorKind(int32(e)) }
func (e Errno) Error() string        { return shio.FormatOS(e.Kind(), int32(e)) }

func einval() error { return shio.FromErrno(EINVAL) }
