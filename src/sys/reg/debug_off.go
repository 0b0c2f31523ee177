//go:build !semihosting_debug

package reg

// Debug turns on the assertions that catch a host breaking the calling
// convention.  Build with -tags semihosting_debug to enable them.
const Debug = false
