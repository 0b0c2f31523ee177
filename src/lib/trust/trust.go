// Package trust is leveled logging for target programs.  Messages go to the
// host console through semihosting: errors and warnings to stderr, the rest
// to stdout.
package trust

import (
	"semihosting/src/process"
	"semihosting/src/stdio"
	"semihosting/src/sys/abi"
)

type MaskLevel int

const (
	Nothing   MaskLevel = 0x0
	ErrorMask MaskLevel = 0x1
	WarnMask  MaskLevel = 0x2
	InfoMask  MaskLevel = 0x4
	DebugMask MaskLevel = 0x8
	StatsMask MaskLevel = 0x10
	fatalMask MaskLevel = 0x80
)

const allMask = ErrorMask | WarnMask | InfoMask | DebugMask | StatsMask

var (
	level   = fatalMask | allMask
	console = stdio.Default
	term    = process.Default
)

// Use sends log output and Fatalf exits through b instead of the native
// backend.
func Use(b abi.Backend) {
	console = stdio.New(b)
	term = process.New(b)
}

// SetLevel lets you set an error mask directly. You can pass in something like
// ErrorMask | DebugMask to control exactly what gets printed.  It returns the
// previous mask.
func SetLevel(mask MaskLevel) MaskLevel {
	if mask&allMask == 0 {
		console.Eprintf(" WARN: trust.SetLevel is turning off log messages\n")
	}
	prev := level & allMask
	level = mask&allMask | fatalMask
	return prev
}

func Level() MaskLevel {
	return level &^ fatalMask
}

func LevelToString() string {
	result := ""
	for _, n := range []struct {
		m    MaskLevel
		name string
	}{{ErrorMask, "error"}, {WarnMask, "warn"}, {InfoMask, "info"}, {DebugMask, "debug"}, {StatsMask, "stats"}} {
		if level&n.m == 0 {
			continue
		}
		if result != "" {
			result += " "
		}
		result += n.name
	}
	return result
}

func logf(l MaskLevel, prefix string, format string, params ...interface{}) {
	if level&l == 0 {
		return
	}
	if len(format) == 0 || format[len(format)-1] != '\n' {
		format += "\n"
	}
	if l&(fatalMask|ErrorMask|WarnMask) != 0 {
		console.Eprintf(prefix+format, params...)
		return
	}
	console.Printf(prefix+format, params...)
}

// Fatalf prints the given log message (format + params) on stderr and then
// exits with the exitCode provided.  Fatalf is not maskable.
func Fatalf(exitCode int32, format string, params ...interface{}) {
	logf(fatalMask, "FATAL:", format, params...)
	term.Exit(exitCode)
}

// Errorf prints the given log message (format + params) using the ErrorMask level.
func Errorf(format string, params ...interface{}) {
	logf(ErrorMask, "ERROR:", format, params...)
}

// Warnf prints the given log message (format + params) using the WarnMask level.
func Warnf(format string, params ...interface{}) {
	logf(WarnMask, " WARN:", format, params...)
}

// Infof prints the given log message (format + params) using the InfoMask level.
func Infof(format string, params ...interface{}) {
	logf(InfoMask, " INFO:", format, params...)
}

// Debugf prints the given log message (format + params) using the DebugMask level.
func Debugf(format string, params ...interface{}) {
	logf(DebugMask, "DEBUG:", format, params...)
}

// Statsf prints the given log message using the StatsMask level, with category
// shown as the kind of stats reported.
func Statsf(category string, format string, params ...interface{}) {
	logf(StatsMask, "STATS["+category+"]:", format, params...)
}
