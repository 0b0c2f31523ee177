package host

import (
	"fmt"
	"unsafe"

	"semihosting/src/sys/reg"
)

// Target memory is this process's memory: pointer params point at Go
// values the client keeps alive for the duration of the call.

func cString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}

func guestBytes(p unsafe.Pointer, n uintptr) []byte {
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

// guard panics when the host is about to write through a pointer the client
// passed for reading only.  That is a bug in the client, not the program.
func guard(op fmt.Stringer, mutable bool) {
	if !mutable {
		panic(fmt.Sprintf("host: %v writes target memory but was issued read-only", op))
	}
}

// arg returns block slot i, or a zero int param past the end of a short
// block.
func arg(p reg.Param, i int) reg.Param {
	if p.Kind() != reg.KindBlock || i >= p.Len() {
		return reg.Uninit()
	}
	return p.At(i)
}
