// Package fd holds host file descriptors.  A raw descriptor is a plain C int
// handed out by the host; -1 is reserved for failure and never wrapped.
package fd

import "fmt"

type RawFd int32

// Invalid is the sentinel every open-family call uses for failure.
const Invalid RawFd = -1

// Borrowed is a descriptor the holder must not close.
type Borrowed struct {
	fd RawFd
}

// BorrowRaw panics when given the failure sentinel.
func BorrowRaw(fd RawFd) Borrowed {
	if fd == Invalid {
		panic("fd: borrowed descriptor must not be -1")
	}
	return Borrowed{fd: fd}
}

func (b Borrowed) Raw() RawFd { return b.fd }

func (b Borrowed) String() string { return fmt.Sprintf("fd(%d)", b.fd) }

// Closer is the backend's close policy.  Some conventions reserve low
// descriptors for stdio that must never be passed to close.
type Closer interface {
	CloseFd(RawFd) error
	ShouldClose(RawFd) bool
}

// Owned closes its descriptor through the backend that opened it.
type Owned struct {
	fd     RawFd
	closer Closer
}

// NewOwned panics when given the failure sentinel.
func NewOwned(fd RawFd, c Closer) *Owned {
	if fd == Invalid {
		panic("fd: owned descriptor must not be -1")
	}
	return &Owned{fd: fd, closer: c}
}

func (o *Owned) Raw() RawFd { return o.fd }

func (o *Owned) Borrow() Borrowed {
	if o.fd == Invalid {
		panic("fd: use of closed descriptor")
	}
	return Borrowed{fd: o.fd}
}

// IntoRaw gives up ownership without closing.
func (o *Owned) IntoRaw() RawFd {
	fd := o.fd
	o.fd = Invalid
	return fd
}

// Close is idempotent; the second call does not reach the host.
func (o *Owned) Close() error {
	if o.fd == Invalid {
		return nil
	}
	fd := o.fd
	o.fd = Invalid
	if o.closer == nil || !o.closer.ShouldClose(fd) {
		return nil
	}
	return o.closer.CloseFd(fd)
}

// AsFd is implemented by anything wrapping a descriptor.
type AsFd interface {
	Fd() Borrowed
}
