//go:build m68k

package sys

import (
	"semihosting/src/shio"
	"semihosting/src/sys/m68k"
)

var native = m68k.Default

func errnoFor(code int32) shio.Errno { return m68k.Errno(code) }
