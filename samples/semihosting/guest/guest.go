// Package guest is the semihosting sample program.  It runs unchanged on a
// target, where the backend traps to the debugger, and under cmd/semi,
// where it talks to the simulated host.
package guest

import (
	"semihosting/src/experimental/env"
	stime "semihosting/src/experimental/time"
	"semihosting/src/fs"
	"semihosting/src/lib/trust"
	"semihosting/src/process"
	"semihosting/src/shio"
	"semihosting/src/stdio"
	"semihosting/src/sys/abi"
)

const scratch = "semihosting-sample.txt"

// Main greets, lists its arguments, round-trips a file and reports the
// clock.  The result is the exit status.
func Main(b abi.Backend) process.ExitCode {
	con := stdio.New(b)
	trust.Use(b)
	con.Println("hello, world")

	if args, err := env.ArgsFrom(b, env.DefaultBufSize); err == nil {
		list, _ := args.Strings()
		for i, a := range list {
			con.Printf("arg %d: %s\n", i, a)
		}
	} else {
		trust.Warnf("no command line: %v", err)
	}

	fsys := fs.New(b)
	if err := fsys.WriteFile(scratch, []byte("abcde")); err != nil {
		trust.Errorf("write %s: %v", scratch, err)
		return process.FAILURE
	}
	data, err := fsys.ReadFile(scratch)
	if err != nil || string(data) != "abcde" {
		trust.Errorf("read %s: %q %v", scratch, data, err)
		return process.FAILURE
	}
	if err := fsys.Remove(scratch); err != nil {
		trust.Warnf("remove %s: %v", scratch, err)
	}

	clock := stime.New(b)
	if now, err := clock.Now(); err == nil {
		con.Printf("host time %s\n", now)
	} else if shio.Kind(err) != shio.Unsupported {
		trust.Errorf("clock: %v", err)
	}
	return process.SUCCESS
}
