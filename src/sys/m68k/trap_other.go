//go:build !(gccgo && m68k)

package m68k

func trap(op uint32, block uintptr) {
	panic("m68k: semihosting trap is only available on m68k targets")
}
