package process_test

import (
	"io"
	"log"
	"testing"

	"semihosting/src/host"
	"semihosting/src/process"
	"semihosting/src/sys/armcompat"
	"semihosting/src/sys/mips"
)

func newHost(t *testing.T) *host.Host {
	t.Helper()
	h, err := host.New(host.Config{
		Root:    t.TempDir(),
		Console: &host.StreamConsole{},
		Logger:  log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	t.Cleanup(func() { h.Close() })
	return h
}

func TestExit(t *testing.T) {
	h := newHost(t)
	term := process.New(armcompat.New(h.ArmCompat()))
	for _, code := range []int32{0, 1, 42, 255} {
		st := host.Run(func() { term.Exit(code) })
		if st == nil || st.Code != int(code) {
			t.Errorf("exit %d: got %v", code, st)
		}
	}
}

func TestAbort(t *testing.T) {
	h := newHost(t)
	for _, term := range []*process.Terminator{
		process.New(armcompat.New(h.ArmCompat())),
		process.New(mips.New(h.MIPS())),
	} {
		if st := host.Run(term.Abort); st == nil || st.Code != 134 {
			t.Errorf("abort: got %v", st)
		}
	}
}
