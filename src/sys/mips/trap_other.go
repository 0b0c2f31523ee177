//go:build !mips && !mipsle && !mips64 && !mips64le

package mips

import "runtime"

func trap(op uint32, a0, a1, a2, a3 uintptr) (uintptr, uintptr) {
	panic("mips: no UHI trap on " + runtime.GOARCH)
}
