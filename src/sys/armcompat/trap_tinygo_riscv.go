//go:build tinygo && (riscv32 || riscv64)

package armcompat

import "device"

// a0 and a1 are saved and restored as on arm64; see trap_tinygo_arm64.go.
// storeX and loadX pick the XLEN sized access.
//
//go:noinline
func trap(op uint32, param uintptr) (uintptr, uintptr) {
	r := device.AsmFull(`
		addi sp, sp, -32
		`+storeX+` a0, 0(sp)
		`+storeX+` a1, 8(sp)
		`+storeX+` {op}, 16(sp)
		`+storeX+` {param}, 24(sp)
		`+loadX+` a0, 16(sp)
		`+loadX+` a1, 24(sp)
		.balign 16
		.option push
		.option norvc
		slli zero, zero, 0x1f
		ebreak
		srai zero, zero, 0x7
		.option pop
		`+storeX+` a0, 16(sp)
		`+loadX+` a0, 0(sp)
		`+loadX+` a1, 8(sp)
		`+loadX+` {}, 16(sp)
		addi sp, sp, 32
	`, map[string]interface{}{"op": uintptr(op), "param": param})
	return r, param
}
