// Package sys selects the semihosting backend for the target being built and
// decodes raw host error numbers for it.
package sys

import (
	"semihosting/src/shio"
	"semihosting/src/sys/abi"
)

// Native returns the backend that traps to the host on this target.
func Native() abi.Backend { return native }

// DecodeErrorKind classifies an errno in this target's numbering.
func DecodeErrorKind(code int32) shio.ErrorKind { return native.DecodeErrorKind(code) }

func IsInterrupted(code int32) bool { return native.IsInterrupted(code) }

// FromRawOSError wraps an errno in this target's numbering as an error.
func FromRawOSError(code int32) error { return shio.FromErrno(errnoFor(code)) }
