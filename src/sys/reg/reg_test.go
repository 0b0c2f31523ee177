package reg

import (
	"testing"
	"unsafe"

	"semihosting/src/cstr"
	"semihosting/src/fd"
)

func TestIntEncoding(t *testing.T) {
	if Isize(-1).Word() != ^uintptr(0) {
		t.Errorf("Isize(-1) not sign extended")
	}
	if RawFd(-1).Word() != ^uintptr(0) {
		t.Errorf("RawFd(-1) not sign extended")
	}
	if Fd(fd.BorrowRaw(5)).Word() != 5 {
		t.Errorf("Fd(5) bad word")
	}
	if Usize(0x20026).Kind() != KindInt {
		t.Errorf("Usize not an int param")
	}
}

func TestPointerParams(t *testing.T) {
	buf := make([]byte, 8)
	p := Buf(buf)
	if p.Kind() != KindPtr || p.Pointer() != unsafe.Pointer(&buf[0]) {
		t.Errorf("Buf does not point at the buffer")
	}
	c := cstr.Must("abc")
	if CStr(c).Word() != uintptr(unsafe.Pointer(&c[0])) {
		t.Errorf("CStr does not point at the string")
	}
	if CStrLen(c).Word() != 3 {
		t.Errorf("CStrLen counted the terminator")
	}
	var v uint64
	if Ref(&v).Pointer() != unsafe.Pointer(&v) {
		t.Errorf("Ref does not point at the value")
	}
}

func TestBlockEncodeDecode(t *testing.T) {
	b := Block(Usize(1), Uninit(), Isize(-1))
	w, words := b.Encode()
	if w == 0 || len(words) != 3 || words[0] != 1 || words[2] != ^uintptr(0) {
		t.Fatalf("bad encoding %v", words)
	}
	words[1] = 42
	b.Decode(words)
	if b.At(1).Ret().Unsigned() != 42 {
		t.Errorf("host write not copied back")
	}
	if b.At(0).Ret().Unsigned() != 1 {
		t.Errorf("unchanged slot corrupted")
	}
}

func TestBlockDoesNotNest(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("nested block accepted")
		}
	}()
	Block(Block())
}

func TestEqualAndSnapshot(t *testing.T) {
	b := Block(Usize(1), Usize(2))
	s := b.Snapshot()
	if !b.Equal(s) {
		t.Errorf("snapshot differs")
	}
	b.Set(1, 3)
	if b.Equal(s) {
		t.Errorf("snapshot aliases the block")
	}
}

func TestRetAccessors(t *testing.T) {
	if _, ok := SignedRet(-1).RawFd(); ok {
		t.Errorf("-1 accepted as descriptor")
	}
	if f, ok := Ret(3).RawFd(); !ok || f != 3 {
		t.Errorf("RawFd(3) = %d, %v", f, ok)
	}
	if SignedRet(-1).Signed() != -1 || SignedRet(-1).Int() != -1 {
		t.Errorf("signed accessors wrong")
	}
	if Ret(0x41).U8() != 'A' {
		t.Errorf("U8 wrong")
	}
	if Ret(22).Errno() != 22 {
		t.Errorf("Errno wrong")
	}
}
