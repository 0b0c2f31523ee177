//go:build tinygo && arm

package armcompat

import "device/arm"

// TinyGo's helper returns r0 only, so after is param and Native never
// reports the parameter register as clobbered on this build.
func trap(op uint32, param uintptr) (uintptr, uintptr) {
	return uintptr(arm.SemihostingCall(int(op), param)), param
}
