//go:build semihosting_debug

package reg

const Debug = true
