//go:build tinygo && riscv32

package armcompat

const (
	storeX = "sw"
	loadX  = "lw"
)
