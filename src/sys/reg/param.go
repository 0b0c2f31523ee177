// Package reg encodes the machine words that cross the trap boundary.
//
// A Param is what goes into a parameter register (or a parameter block slot),
// a Ret is what comes back.  Every conversion between Go values and raw words
// lives here so the trap stubs stay one instruction deep.
package reg

import (
	"unsafe"

	"semihosting/src/cstr"
	"semihosting/src/fd"
)

type Kind uint8

const (
	KindInt Kind = iota
	KindPtr
	KindBlock
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindPtr:
		return "ptr"
	case KindBlock:
		return "block"
	}
	return "?"
}

// Param is a tagged register value.  A pointer param keeps its referent
// reachable for as long as the Param itself is live, which covers the trap.
type Param struct {
	kind  Kind
	word  uintptr
	ptr   unsafe.Pointer
	block []Param
}

func Usize(n uintptr) Param { return Param{kind: KindInt, word: n} }

// Isize is sign extended to the register width.
func Isize(n int) Param { return Param{kind: KindInt, word: uintptr(n)} }

func Fd(b fd.Borrowed) Param { return RawFd(b.Raw()) }

func RawFd(r fd.RawFd) Param { return Isize(int(r)) }

func Ptr(p unsafe.Pointer) Param { return Param{kind: KindPtr, ptr: p} }

// Ref passes the address of a host-visible struct.
func Ref[T any](v *T) Param { return Ptr(unsafe.Pointer(v)) }

// Buf passes the address of the first byte; the length travels separately.
func Buf(b []byte) Param { return Ptr(unsafe.Pointer(unsafe.SliceData(b))) }

func CStr(c cstr.CStr) Param { return Buf(c) }

// CStrLen is the length without the terminator.
func CStrLen(c cstr.CStr) Param { return Usize(uintptr(c.Len())) }

// Uninit is a slot the host only writes.
func Uninit() Param { return Param{kind: KindInt} }

// Block passes a pointer to a contiguous array of words.  Blocks do not nest.
func Block(ps ...Param) Param {
	for _, p := range ps {
		if p.kind == KindBlock {
			panic("reg: nested parameter block")
		}
	}
	return Param{kind: KindBlock, block: ps}
}

func (p Param) Kind() Kind { return p.kind }

// Word is the register image of an int or pointer param.
func (p Param) Word() uintptr {
	switch p.kind {
	case KindInt:
		return p.word
	case KindPtr:
		return uintptr(p.ptr)
	}
	panic("reg: a block has no word until it is encoded")
}

func (p Param) Pointer() unsafe.Pointer {
	if p.kind != KindPtr {
		return nil
	}
	return p.ptr
}

func (p Param) Len() int { return len(p.block) }

func (p Param) At(i int) Param { return p.block[i] }

// Set stores a host-written word into block slot i.
func (p Param) Set(i int, w uintptr) {
	if p.block[i].kind == KindPtr && uintptr(p.block[i].ptr) == w {
		return
	}
	p.block[i] = Param{kind: KindInt, word: w}
}

// Ret reads the param back as a return value, for conventions that report
// results through the block.
func (p Param) Ret() Ret { return Ret(p.Word()) }

// Encode produces the word to load into the parameter register.  For a block
// it also returns the backing array, which the caller keeps alive across the
// trap and hands to Decode afterwards.
func (p Param) Encode() (uintptr, []uintptr) {
	if p.kind != KindBlock {
		return p.Word(), nil
	}
	words := make([]uintptr, len(p.block)+1)
	for i, b := range p.block {
		words[i] = b.Word()
	}
	return uintptr(unsafe.Pointer(&words[0])), words[:len(p.block)]
}

// Decode copies host writes made to an encoded block back into p.
func (p Param) Decode(words []uintptr) {
	for i, w := range words {
		p.Set(i, w)
	}
}

// Equal compares register images, used by the parameter-unchanged check.
func (p Param) Equal(q Param) bool {
	if p.kind != q.kind || len(p.block) != len(q.block) {
		return false
	}
	if p.kind != KindBlock {
		return p.Word() == q.Word()
	}
	for i := range p.block {
		if p.block[i].Word() != q.block[i].Word() {
			return false
		}
	}
	return true
}

// Snapshot copies a block so later host writes do not alias it.
func (p Param) Snapshot() Param {
	if p.kind != KindBlock {
		return p
	}
	cp := make([]Param, len(p.block))
	copy(cp, p.block)
	return Param{kind: KindBlock, block: cp}
}
