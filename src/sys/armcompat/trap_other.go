//go:build !arm64 && !arm && !thumb && !riscv64 && !loong64 && !(tinygo && riscv32) && !(tinygo && xtensa && semihosting_openocd)

package armcompat

import "runtime"

// No trap on this architecture.  Clients must be built with New around a
// Host that can answer calls, such as the one in src/host.
func trap(op uint32, param uintptr) (uintptr, uintptr) {
	panic("armcompat: no semihosting trap on " + runtime.GOARCH)
}
