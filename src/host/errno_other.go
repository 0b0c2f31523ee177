//go:build !unix

package host

import (
	"errors"
	iofs "io/fs"
)

// classify has only the io/fs sentinels to go on off unix.
func classify(err error) condition {
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
	return condIO
}
