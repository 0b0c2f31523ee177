package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"semihosting/samples/semihosting/guest"
	"semihosting/src/host"
	"semihosting/src/process"
	"semihosting/src/sys/abi"
	"semihosting/src/sys/armcompat"
	"semihosting/src/sys/m68k"
	"semihosting/src/sys/mips"
)

var helpFlag = flag.Bool("h", false, "get usage info")
var convFlag = flag.String("c", "arm", "calling convention: arm, mips or m68k")
var rootFlag = flag.String("r", "", "sandbox directory (default $SEMIHOST_ROOT or .)")
var traceFlag = flag.Bool("t", false, "log every semihosting call")

func usage() {
	fmt.Fprintf(os.Stderr, "usage: semi [-c arm|mips|m68k] [-r root] [-t] [args...]\n")
	fmt.Fprintf(os.Stderr, "runs the sample program against a simulated host\n")
	flag.PrintDefaults()
	os.Exit(1)
}

///////////////////////////////////////////////////////////////////////
// main
///////////////////////////////////////////////////////////////////////

func main() {
	flag.Parse()
	if *helpFlag {
		usage()
	}
	cfg := host.ConfigFromEnv()
	if *rootFlag != "" {
		cfg.Root = *rootFlag
	}
	if *traceFlag {
		cfg.Trace = true
	}
	if flag.NArg() > 0 {
		cfg.Args = append([]string{"semi"}, flag.Args()...)
	}
	h, err := host.New(cfg)
	if err != nil {
		log.Fatalf("unable to start host: %v", err)
	}

	var b abi.Backend
	switch *convFlag {
	case "arm":
		b = armcompat.New(h.ArmCompat())
	case "mips":
		b = mips.New(h.MIPS())
	case "m68k":
		b = m68k.New(h.M68k())
	default:
		log.Printf("unknown convention %q", *convFlag)
		usage()
	}

	st := host.Run(func() {
		process.New(b).Exit(int32(guest.Main(b)))
	})
	if st == nil {
		log.Fatalf("program returned without exiting")
	}
	if st.Message != "" {
		log.Print(st.Message)
	}
	h.Close()
	os.Exit(st.Code)
}
