//go:build tinygo && riscv64

package armcompat

const (
	storeX = "sd"
	loadX  = "ld"
)
