package m68k

import (
	"runtime"

	"semihosting/src/shio"
	"semihosting/src/sys/reg"
)

// Host is the trap boundary: op in d0 and a parameter block in d1.  Results
// come back by the host overwriting the leading words of the block, so Call
// has nothing to return.
//
// mutable is false when the host must not write through the pointers in the
// block; the block itself is always writable.
type Host interface {
	Call(op OperationCode, param reg.Param, mutable bool)
}

type Client struct {
	Host Host
}

func New(h Host) *Client { return &Client{Host: h} }

var Default = New(Native{})

func (c *Client) syscall(op OperationCode, p reg.Param) {
	c.Host.Call(op, p, true)
}

func (c *Client) syscallReadonly(op OperationCode, p reg.Param) {
	c.Host.Call(op, p, false)
}

func (c *Client) syscallNoReturnReadonly(op OperationCode, p reg.Param) {
	c.Host.Call(op, p, false)
	for {
	}
}

// result reads the conventional (value, errno) pair from block slots 0 and 1.
func result(p reg.Param) (reg.Ret, reg.Ret) {
	return p.At(0).Ret(), p.At(1).Ret()
}

func fromErrno(errno reg.Ret) error {
	return shio.FromErrno(Errno(errno.Errno()))
}

// Native executes the halt sequence QEMU recognises as a semihosting request.
type Native struct{}

func (Native) Call(op OperationCode, p reg.Param, mutable bool) {
	w, words := p.Encode()
	trap(uint32(op), w)
	p.Decode(words)
	runtime.KeepAlive(p)
	runtime.KeepAlive(words)
}
