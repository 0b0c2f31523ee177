//go:build xtensa && semihosting_simcall && !semihosting_openocd

package sys

import (
	"semihosting/src/shio"
	"semihosting/src/sys/unsupported"
)

var native = unsupported.Default

func errnoFor(code int32) shio.Errno { return rawErrno(code) }
