package stdio_test

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"

	"semihosting/src/host"
	"semihosting/src/stdio"
	"semihosting/src/sys/abi"
	"semihosting/src/sys/armcompat"
	"semihosting/src/sys/m68k"
	"semihosting/src/sys/mips"
)

type console struct {
	out, err bytes.Buffer
	h        *host.Host
}

func newConsole(t *testing.T, in string) *console {
	t.Helper()
	c := &console{}
	h, err := host.New(host.Config{
		Root:    t.TempDir(),
		Console: &host.StreamConsole{In: strings.NewReader(in), Out: &c.out, Err: &c.err},
		Logger:  log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	t.Cleanup(func() { h.Close() })
	c.h = h
	return c
}

var backends = map[string]func(h *host.Host) abi.Backend{
	"armcompat": func(h *host.Host) abi.Backend { return armcompat.New(h.ArmCompat()) },
	"mips":      func(h *host.Host) abi.Backend { return mips.New(h.MIPS()) },
	"m68k":      func(h *host.Host) abi.Backend { return m68k.New(h.M68k()) },
}

func TestPrintHelpers(t *testing.T) {
	for name, backend := range backends {
		t.Run(name, func(t *testing.T) {
			c := newConsole(t, "")
			con := stdio.New(backend(c.h))
			con.Print("a", 1)
			con.Printf(" %s", "b")
			con.Println()
			con.Eprintln("oops")
			con.Eprintf("%d%%", 50)
			if c.out.String() != "a1 b\n" {
				t.Errorf("stdout: %q", c.out.String())
			}
			if c.err.String() != "oops\n50%" {
				t.Errorf("stderr: %q", c.err.String())
			}
			if n := c.h.OpenFiles(); n != 3 {
				t.Errorf("print leaked descriptors: %d open", n)
			}
		})
	}
}

func TestStreams(t *testing.T) {
	for name, backend := range backends {
		t.Run(name, func(t *testing.T) {
			c := newConsole(t, "line one\n")
			con := stdio.New(backend(c.h))
			in, err := con.Stdin()
			if err != nil {
				t.Fatalf("stdin: %v", err)
			}
			defer in.Close()
			got, err := io.ReadAll(in)
			if err != nil || string(got) != "line one\n" {
				t.Errorf("stdin: %q %v", got, err)
			}
			out, err := con.Stdout()
			if err != nil {
				t.Fatalf("stdout: %v", err)
			}
			if _, err := io.WriteString(out, "written"); err != nil {
				t.Errorf("write: %v", err)
			}
			if out.IsTerminal() {
				t.Errorf("a buffer is not a terminal")
			}
			out.Close()
			out.Close()
			if c.out.String() != "written" {
				t.Errorf("stdout got %q", c.out.String())
			}
		})
	}
}
