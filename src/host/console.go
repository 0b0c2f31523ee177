package host

import (
	"io"
	"os"

	tty "github.com/mattn/go-tty"
	"golang.org/x/term"
)

// Console is the target's terminal: reads are stdin, and there are two
// output streams.
type Console interface {
	io.Reader
	Stdout() io.Writer
	Stderr() io.Writer
	IsTerminal() bool
}

// StreamConsole is a Console over plain streams.  IsTerminal is true only if
// In is an *os.File attached to a terminal.
type StreamConsole struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdConsole is the console of the host process.
func StdConsole() *StreamConsole {
	return &StreamConsole{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

func (s *StreamConsole) Read(p []byte) (int, error) {
	if s.In == nil {
		return 0, io.EOF
	}
	return s.In.Read(p)
}

func (s *StreamConsole) Stdout() io.Writer {
	if s.Out == nil {
		return io.Discard
	}
	return s.Out
}

// Stderr falls back to Out, the way hosts without separate streams behave.
func (s *StreamConsole) Stderr() io.Writer {
	if s.Err == nil {
		return s.Stdout()
	}
	return s.Err
}

func (s *StreamConsole) IsTerminal() bool {
	f, ok := s.In.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

///////////////////////////////////////////////////////////////////////
// tty
///////////////////////////////////////////////////////////////////////

// TTYConsole is a Console on the controlling terminal.  Keystrokes reach
// the target one at a time, which is what SYS_READC expects.
type TTYConsole struct {
	tty *tty.TTY
}

// OpenTTY opens the controlling terminal, or devPath if it is not empty,
// and puts it in raw mode.
func OpenTTY(devPath string) (*TTYConsole, error) {
	var t *tty.TTY
	var err error
	if devPath == "" {
		t, err = tty.Open()
	} else {
		t, err = tty.OpenDevice(devPath)
	}
	if err != nil {
		return nil, err
	}
	return &TTYConsole{tty: t}, nil
}

func (t *TTYConsole) Read(p []byte) (int, error) {
	return t.tty.Input().Read(p)
}

func (t *TTYConsole) Stdout() io.Writer { return t.tty.Output() }
func (t *TTYConsole) Stderr() io.Writer { return t.tty.Output() }

func (t *TTYConsole) IsTerminal() bool {
	return term.IsTerminal(int(t.tty.Input().Fd()))
}

func (t *TTYConsole) Close() error { return t.tty.Close() }
