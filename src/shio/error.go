package shio

import (
	"errors"
	"fmt"
	"io/fs"
)

// Errno is a raw error number reported by a semihosting host.  Each calling
// convention family has its own numbering, so the family's errno type carries
// its own decode table.
type Errno interface {
	error
	Code() int32
	Kind() ErrorKind
}

type repr uint8

const (
	reprOS repr = iota
	reprSimple
	reprMessage
)

// Error is what every fallible semihosting call returns.  It holds either a raw
// host errno, decoded lazily through Kind, or a kind with an optional static
// message.
type Error struct {
	repr  repr
	errno Errno
	kind  ErrorKind
	msg   string
}

// FromErrno wraps the host's errno without interpreting it.
func FromErrno(e Errno) *Error {
	return &Error{repr: reprOS, errno: e}
}

// New returns an error that carries only a kind.
func New(k ErrorKind) *Error {
	return &Error{repr: reprSimple, kind: k}
}

// Static returns an error with a fixed message.
func Static(k ErrorKind, msg string) *Error {
	return &Error{repr: reprMessage, kind: k, msg: msg}
}

var (
	ErrReadExactEOF        = Static(UnexpectedEOF, "failed to fill whole buffer")
	ErrWriteAllEOF         = Static(WriteZero, "failed to write whole buffer")
	ErrUnsupportedPlatform = Static(Unsupported, "operation not supported on this platform")
	ErrZeroTimeout         = Static(InvalidInput, "cannot set a 0 duration timeout")
	ErrUnknownThreadCount  = Static(NotFound, "The number of hardware threads is not known for the target platform")
	ErrInvalidUTF8         = Static(InvalidData, "stream did not contain valid UTF-8")
	ErrInteriorNul         = Static(InvalidInput, "file name contained an unexpected NUL byte")
	ErrProtocol            = Static(InvalidData, "host reported more bytes than were requested")
)

func (e *Error) Kind() ErrorKind {
	switch e.repr {
	case reprOS:
		return e.errno.Kind()
	default:
		return e.kind
	}
}

// RawOSError returns the host errno when the error came from one.
func (e *Error) RawOSError() (int32, bool) {
	if e.repr == reprOS {
		return e.errno.Code(), true
	}
	return 0, false
}

// IsInterrupted is the retry predicate used by ReadFull and WriteAll.
func (e *Error) IsInterrupted() bool {
	return e.Kind() == Interrupted
}

func (e *Error) Error() string {
	switch e.repr {
	case reprOS:
		return FormatOS(e.errno.Kind(), e.errno.Code())
	case reprMessage:
		return e.msg
	}
	return e.kind.String()
}

func (e *Error) Unwrap() error {
	if e.repr == reprOS {
		return e.errno
	}
	return nil
}

// Is lets callers use the io/fs sentinels with errors.Is.
func (e *Error) Is(target error) bool {
	switch target {
	case fs.ErrNotExist:
		return e.Kind() == NotFound
	case fs.ErrExist:
		return e.Kind() == AlreadyExists
	case fs.ErrPermission:
		return e.Kind() == PermissionDenied
	case fs.ErrInvalid:
		return e.Kind() == InvalidInput
	case errors.ErrUnsupported:
		return e.Kind() == Unsupported
	}
	return false
}

// FormatOS renders an errno the same way for every family.
func FormatOS(k ErrorKind, code int32) string {
	return fmt.Sprintf("%s (os error %d)", k, code)
}

// Kind classifies any error.  Errors not produced by this module are Other.
func Kind(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	var n Errno
	if errors.As(err, &n) {
		return n.Kind()
	}
	return Other
}

// IsInterrupted reports whether err should be retried.
func IsInterrupted(err error) bool {
	return err != nil && Kind(err) == Interrupted
}
