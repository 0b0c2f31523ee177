//go:build tinygo && xtensa && semihosting_openocd

package armcompat

import "device"

// OpenOCD's Xtensa flavour keeps the Arm operation numbers but uses a2/a3.
// Those are saved and restored as on arm64; see trap_tinygo_arm64.go.
//
//go:noinline
func trap(op uint32, param uintptr) (uintptr, uintptr) {
	r := device.AsmFull(`
		addi a1, a1, -16
		s32i a2, a1, 0
		s32i a3, a1, 4
		s32i {op}, a1, 8
		s32i {param}, a1, 12
		l32i a2, a1, 8
		l32i a3, a1, 12
		break 1, 14
		s32i a2, a1, 8
		l32i a2, a1, 0
		l32i a3, a1, 4
		l32i {}, a1, 8
		addi a1, a1, 16
	`, map[string]interface{}{"op": uintptr(op), "param": param})
	return r, param
}
