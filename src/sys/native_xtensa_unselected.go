//go:build xtensa && !semihosting_openocd && !semihosting_simcall

package sys

// Xtensa has two incompatible semihosting interfaces.  Build with
// -tags semihosting_openocd or -tags semihosting_simcall to pick one.
var native = xtensa_requires_semihosting_openocd_or_semihosting_simcall_build_tag
