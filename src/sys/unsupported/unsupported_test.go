package unsupported

import (
	"errors"
	"testing"

	"semihosting/src/cstr"
	"semihosting/src/fd"
	"semihosting/src/shio"
	"semihosting/src/sys/abi"
)

func checkUnsupported(t *testing.T, what string, err error) {
	t.Helper()
	if !errors.Is(err, errors.ErrUnsupported) {
		t.Errorf("%s: expected Unsupported, got %v", what, err)
	}
}

func TestEverythingUnsupported(t *testing.T) {
	var c Client
	f := fd.BorrowRaw(3)
	_, err := c.Read(f, make([]byte, 4))
	checkUnsupported(t, "read", err)
	_, err = c.Write(f, []byte("x"))
	checkUnsupported(t, "write", err)
	opts := abi.DefaultOpenOptions()
	opts.Read = true
	_, err = c.Open(cstr.Must("a"), &opts)
	checkUnsupported(t, "open", err)
	_, err = c.Seek(f, shio.Start(0))
	checkUnsupported(t, "seek", err)
	checkUnsupported(t, "unlink", c.Unlink(cstr.Must("a")))
	checkUnsupported(t, "rename", c.Rename(cstr.Must("a"), cstr.Must("b")))
	_, err = c.Stdout()
	checkUnsupported(t, "stdout", err)
	if c.IsTerminal(f) {
		t.Errorf("no descriptor is a terminal without a host")
	}
	if k := c.DecodeErrorKind(4); k != shio.Other {
		t.Errorf("decode: expected Other, got %v", k)
	}
}
