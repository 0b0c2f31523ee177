//go:build mips || mipsle || mips64 || mips64le

package sys

import (
	"semihosting/src/shio"
	"semihosting/src/sys/mips"
)

var native = mips.Default

func errnoFor(code int32) shio.Errno { return mips.Errno(code) }
