package reg

import (
	"fmt"

	"semihosting/src/fd"
)

// Ret is the raw word a host leaves in a return register or result slot.
// The accessor used decides the meaning.
type Ret uintptr

// SignedRet is the host-side way to report a negative result.
func SignedRet(n int) Ret { return Ret(uintptr(n)) }

func (r Ret) Unsigned() uintptr { return uintptr(r) }

func (r Ret) Signed() int { return int(r) }

// Int is the value truncated to a C int.
func (r Ret) Int() int32 { return int32(r) }

func (r Ret) U8() byte {
	b := byte(r)
	if Debug && uintptr(b) != uintptr(r) {
		panic(fmt.Sprintf("reg: %#x is not a byte", uintptr(r)))
	}
	return b
}

// RawFd reports false exactly when the host returned -1.
func (r Ret) RawFd() (fd.RawFd, bool) {
	f := fd.RawFd(int32(r))
	if f == fd.Invalid {
		return 0, false
	}
	if Debug && (f < 0 || int(f) != r.Signed()) {
		panic(fmt.Sprintf("reg: %d is not a descriptor", r.Signed()))
	}
	return f, true
}

// Errno is only valid where the convention guarantees a raw errno.
func (r Ret) Errno() int32 {
	e := int32(r)
	if Debug && (e < 0 || int(e) != r.Signed()) {
		panic(fmt.Sprintf("reg: %d is not an errno", r.Signed()))
	}
	return e
}
