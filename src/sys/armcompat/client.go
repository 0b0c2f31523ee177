package armcompat

import (
	"fmt"

	"semihosting/src/sys/reg"
)

// Host is the trap boundary.  On a target it is the semihosting instruction
// itself; anything else that answers the same protocol (an emulator, a test
// double) can stand in for it.
//
// mutable is false when the host must not write through the parameter.
// clobbered reports that the parameter register itself was changed.
type Host interface {
	Call(op OperationNumber, param reg.Param, mutable bool) (ret reg.Ret, clobbered bool)
}

// Quirks collects host behaviour that differs between host versions.
type Quirks struct {
	// UnwrittenIsError treats a non-empty SYS_WRITE that reports every byte
	// as unwritten as a failure.  qemu-system-arm 7.2 answers a write to a
	// read-only descriptor that way instead of with an error.
	UnwrittenIsError bool
}

var DefaultQuirks = Quirks{UnwrittenIsError: true}

// Client issues typed semihosting calls through a Host.
type Client struct {
	Host   Host
	Quirks Quirks
}

func New(h Host) *Client {
	return &Client{Host: h, Quirks: DefaultQuirks}
}

// Default talks to the debugger through this target's trap instruction.
var Default = New(Native{})

func (c *Client) syscall(op OperationNumber, p reg.Param) reg.Ret {
	ret, _ := c.Host.Call(op, p, true)
	return ret
}

func (c *Client) syscallReadonly(op OperationNumber, p reg.Param) reg.Ret {
	ret, _ := c.Host.Call(op, p, false)
	return ret
}

// syscall0 is for operations without a parameter; the parameter register
// must then be zero and stay zero.
func (c *Client) syscall0(op OperationNumber) reg.Ret {
	return c.syscallParamUnchangedReadonly(op, reg.Usize(0))
}

func (c *Client) syscallParamUnchangedReadonly(op OperationNumber, p reg.Param) reg.Ret {
	ret, clobbered := c.Host.Call(op, p, false)
	if reg.Debug && clobbered {
		panic(fmt.Sprintf("armcompat: host changed the parameter register during %v", op))
	}
	return ret
}

// syscallNoReturnReadonly spins if the debugger chooses to resume.
func (c *Client) syscallNoReturnReadonly(op OperationNumber, p reg.Param) {
	c.Host.Call(op, p, false)
	for {
	}
}
