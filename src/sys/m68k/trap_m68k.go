//go:build gccgo && m68k

package m68k

/*
#include <stdint.h>

static void semihosting_trap(uint32_t op, uintptr_t block) {
	register uint32_t d0 __asm__("d0") = op;
	register uintptr_t d1 __asm__("d1") = block;
	__asm__ volatile(
		".balign 4\n\t"
		"nop\n\t"
		".2byte 0x4ac8\n\t"
		".4byte 0x4e7bf000"
		:
		: "r"(d0), "r"(d1)
		: "memory");
}
*/
import "C"

func trap(op uint32, block uintptr) {
	C.semihosting_trap(C.uint32_t(op), C.uintptr_t(block))
}
