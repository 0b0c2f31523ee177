//go:build !arm64 && !arm && !thumb && !riscv64 && !riscv32 && !loong64 && !xtensa && !mips && !mipsle && !mips64 && !mips64le && !m68k

package sys

import (
	"semihosting/src/shio"
	"semihosting/src/sys/unsupported"
)

var native = unsupported.Default

func errnoFor(code int32) shio.Errno { return rawErrno(code) }
