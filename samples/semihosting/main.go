package main

import (
	"semihosting/samples/semihosting/guest"
	"semihosting/src/sys"
)

func main() {
	guest.Main(sys.Native()).Exit()
}
