//go:build arm64 || arm || thumb || riscv64 || riscv32 || loong64 || (xtensa && semihosting_openocd)

package sys

import (
	"semihosting/src/shio"
	"semihosting/src/sys/armcompat"
)

var native = armcompat.Default

func errnoFor(code int32) shio.Errno { return armcompat.Errno(code) }
