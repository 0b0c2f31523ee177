// Package stdio gives access to the host console.  Each stream is opened on
// demand; on the Arm-compatible convention that is a fresh ":tt" descriptor,
// elsewhere one of the fixed descriptors the host provides.
package stdio

import (
	"fmt"
	"io"

	"semihosting/src/fd"
	"semihosting/src/shio"
	"semihosting/src/sys"
	"semihosting/src/sys/abi"
)

// Console opens streams through one backend.
type Console struct {
	b abi.Backend
}

func New(b abi.Backend) *Console { return &Console{b: b} }

var Default = New(sys.Native())

// Stream is one console stream.  Close it when done; descriptors the host
// owns are left open.
type Stream struct {
	fd *fd.Owned
	b  abi.Backend
}

var (
	_ io.ReadWriteCloser = (*Stream)(nil)
	_ fd.AsFd            = (*Stream)(nil)
)

func (c *Console) stream(open func() (*fd.Owned, error)) (*Stream, error) {
	owned, err := open()
	if err != nil {
		return nil, err
	}
	return &Stream{fd: owned, b: c.b}, nil
}

func (c *Console) Stdin() (*Stream, error)  { return c.stream(c.b.Stdin) }
func (c *Console) Stdout() (*Stream, error) { return c.stream(c.b.Stdout) }
func (c *Console) Stderr() (*Stream, error) { return c.stream(c.b.Stderr) }

func Stdin() (*Stream, error)  { return Default.Stdin() }
func Stdout() (*Stream, error) { return Default.Stdout() }
func Stderr() (*Stream, error) { return Default.Stderr() }

func (s *Stream) Fd() fd.Borrowed { return s.fd.Borrow() }

// Read returns io.EOF when the host reports end of input.
func (s *Stream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n, err := s.b.Read(s.fd.Borrow(), p)
	if err == nil && n == 0 {
		return 0, io.EOF
	}
	return n, err
}

func (s *Stream) Write(p []byte) (int, error) {
	if err := shio.WriteAll(writer{s}, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// writer is a single host write, for WriteAll to loop over.
type writer struct{ s *Stream }

func (w writer) Write(p []byte) (int, error) { return w.s.b.Write(w.s.fd.Borrow(), p) }

func (s *Stream) IsTerminal() bool { return s.b.IsTerminal(s.fd.Borrow()) }

func (s *Stream) Close() error { return s.fd.Close() }

///////////////////////////////////////////////////////////////////////
// print helpers; failures to open or write the console are dropped
///////////////////////////////////////////////////////////////////////

func (c *Console) print(open func() (*fd.Owned, error), text string) {
	s, err := c.stream(open)
	if err != nil {
		return
	}
	defer s.Close()
	s.Write([]byte(text))
}

func (c *Console) Print(args ...interface{})   { c.print(c.b.Stdout, fmt.Sprint(args...)) }
func (c *Console) Println(args ...interface{}) { c.print(c.b.Stdout, fmt.Sprintln(args...)) }
func (c *Console) Printf(format string, args ...interface{}) {
	c.print(c.b.Stdout, fmt.Sprintf(format, args...))
}

func (c *Console) Eprint(args ...interface{})   { c.print(c.b.Stderr, fmt.Sprint(args...)) }
func (c *Console) Eprintln(args ...interface{}) { c.print(c.b.Stderr, fmt.Sprintln(args...)) }
func (c *Console) Eprintf(format string, args ...interface{}) {
	c.print(c.b.Stderr, fmt.Sprintf(format, args...))
}

func Print(args ...interface{})                 { Default.Print(args...) }
func Println(args ...interface{})               { Default.Println(args...) }
func Printf(format string, args ...interface{}) { Default.Printf(format, args...) }

func Eprint(args ...interface{})                 { Default.Eprint(args...) }
func Eprintln(args ...interface{})               { Default.Eprintln(args...) }
func Eprintf(format string, args ...interface{}) { Default.Eprintf(format, args...) }
