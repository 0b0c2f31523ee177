//go:build !tinygo && (arm64 || arm || thumb || riscv64 || loong64)

package armcompat

// trap loads the operation and parameter registers, executes the
// semihosting instruction and returns the result register together with
// the parameter register as the host left it.
//
//go:noescape
func trap(op uint32, param uintptr) (ret, after uintptr)
