//go:build mips || mipsle || mips64 || mips64le

package mips

// trap sets $2 to 1 as UHI requires, loads $25 and $4-$7 and executes
// SDBBP 1.  It returns $2 and $3.
//
//go:noescape
func trap(op uint32, a0, a1, a2, a3 uintptr) (ret, errno uintptr)
