//go:build tinygo && arm64

package armcompat

import "device"

// AsmFull has one output and no clobber list.  x0 and x1 are saved and
// restored around the call, and the operands go through the stack so their
// allocation to x0 or x1 does not matter.  The host's x1 cannot be handed
// back, so after is param and the clobber check never fires here.
//
//go:noinline
func trap(op uint32, param uintptr) (uintptr, uintptr) {
	r := device.AsmFull(`
		stp x0, x1, [sp, #-32]!
		stp {op}, {param}, [sp, #16]
		ldp x0, x1, [sp, #16]
		hlt 0xF000
		str x0, [sp, #16]
		ldp x0, x1, [sp], #16
		ldr {}, [sp], #16
	`, map[string]interface{}{"op": uintptr(op), "param": param})
	return r, param
}
