package mips

import (
	"runtime"

	"semihosting/src/shio"
	"semihosting/src/sys/reg"
)

// Host is the UHI trap boundary: op in $25, args in $4-$7, result in $2 and
// errno in $3.
type Host interface {
	Call(op OperationCode, args []reg.Param, mutable bool) (ret, errno reg.Ret)
}

type Client struct {
	Host Host
}

func New(h Host) *Client { return &Client{Host: h} }

var Default = New(Native{})

func (c *Client) syscall(op OperationCode, args ...reg.Param) (reg.Ret, reg.Ret) {
	return c.Host.Call(op, args, true)
}

func (c *Client) syscallReadonly(op OperationCode, args ...reg.Param) (reg.Ret, reg.Ret) {
	return c.Host.Call(op, args, false)
}

func (c *Client) syscallNoReturnReadonly(op OperationCode, args ...reg.Param) {
	c.Host.Call(op, args, false)
	for {
	}
}

func fromErrno(errno reg.Ret) error {
	return shio.FromErrno(Errno(errno.Errno()))
}

// Native traps with SDBBP 1.
type Native struct{}

func (Native) Call(op OperationCode, args []reg.Param, mutable bool) (reg.Ret, reg.Ret) {
	if len(args) > 4 {
		panic("mips: UHI takes at most four arguments")
	}
	var w [4]uintptr
	for i, a := range args {
		w[i] = a.Word()
	}
	ret, errno := trap(uint32(op), w[0], w[1], w[2], w[3])
	runtime.KeepAlive(args)
	return reg.Ret(ret), reg.Ret(errno)
}
