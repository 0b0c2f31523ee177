package armcompat

import (
	"runtime"

	"semihosting/src/sys/reg"
)

// Native traps to the debugger attached to this target.
type Native struct{}

func (Native) Call(op OperationNumber, p reg.Param, mutable bool) (reg.Ret, bool) {
	w, words := p.Encode()
	ret, after := trap(uint32(op), w)
	p.Decode(words)
	runtime.KeepAlive(p)
	return reg.Ret(ret), after != w
}
