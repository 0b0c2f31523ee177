package host

import (
	"log"
	"strings"
	"time"

	"github.com/xyproto/env/v2"
)

// DefaultTickFreq is the SYS_TICKFREQ answer when none is configured.
const DefaultTickFreq = 1_000_000

type Config struct {
	Root     string   // sandbox directory, "." if empty
	Args     []string // program name first
	Trace    bool     // log every call
	TickFreq uint64   // ticks per second for SYS_ELAPSED
	Console  Console  // StdConsole if nil
	Logger   *log.Logger

	// System runs SYS_SYSTEM and HOSTED_SYSTEM commands.  Nil refuses them,
	// the way GDB does until system calls are allowed.
	System func(cmd string) int

	// Now is the wall clock; tests substitute a fixed one.
	Now func() time.Time
}

// ConfigFromEnv reads SEMIHOST_ROOT, SEMIHOST_CMDLINE, SEMIHOST_TRACE,
// SEMIHOST_TICKFREQ and SEMIHOST_TTY.  A tty that cannot be opened is
// logged and the process console is used instead.
func ConfigFromEnv() Config {
	cfg := Config{
		Root:     env.Str("SEMIHOST_ROOT", "."),
		Args:     strings.Fields(env.Str("SEMIHOST_CMDLINE")),
		Trace:    env.Bool("SEMIHOST_TRACE"),
		TickFreq: uint64(env.Int64("SEMIHOST_TICKFREQ", DefaultTickFreq)),
	}
	if env.Has("SEMIHOST_TTY") {
		// a path names the device, a true value the controlling terminal
		dev := env.Str("SEMIHOST_TTY")
		if env.Bool("SEMIHOST_TTY") {
			dev = ""
		}
		con, err := OpenTTY(dev)
		if err != nil {
			log.Printf("semihost: tty: %v", err)
		} else {
			cfg.Console = con
		}
	}
	return cfg
}

func (c Config) cmdline() string { return strings.Join(c.Args, " ") }
