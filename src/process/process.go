// Package process ends the program through the host.
package process

import (
	"semihosting/src/sys"
	"semihosting/src/sys/abi"
)

// ExitCode is a status for the host, where only the low byte is portable.
type ExitCode uint8

const (
	SUCCESS ExitCode = 0
	FAILURE ExitCode = 1
)

// Exit stops the program with c.
func (c ExitCode) Exit() { Exit(int32(c)) }

// Terminator stops programs through one backend.
type Terminator struct {
	b abi.Backend
}

func New(b abi.Backend) *Terminator { return &Terminator{b: b} }

var Default = New(sys.Native())

// Exit asks the host to stop the program with code.  A host that resumes
// anyway leaves the program spinning here.
func (t *Terminator) Exit(code int32) {
	t.b.Exit(code)
	for {
	}
}

// Abort exits with 134, the status of a SIGABRT.
func (t *Terminator) Abort() { t.Exit(134) }

func Exit(code int32) { Default.Exit(code) }
func Abort()          { Default.Abort() }
