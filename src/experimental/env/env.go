// Package env reads the program's command line from the host.
package env

import (
	"unicode/utf8"

	"semihosting/src/shio"
	"semihosting/src/sys"
	"semihosting/src/sys/abi"
)

// DefaultBufSize bounds the command line Args accepts.
const DefaultBufSize = 1024

// Arguments yields the program's arguments one at a time.
type Arguments struct {
	buf   []byte
	next  int
	split bool
}

// Args asks the host for the command line, which must fit in bufSize bytes
// including its terminator.
func Args(bufSize int) (*Arguments, error) { return ArgsFrom(sys.Native(), bufSize) }

func ArgsFrom(b abi.Backend, bufSize int) (*Arguments, error) {
	ab, err := b.Args(bufSize)
	if err != nil {
		return nil, err
	}
	return Parse(ab), nil
}

// Parse iterates over raw command line bytes as a backend returned them.
func Parse(ab abi.ArgsBytes) *Arguments {
	return &Arguments{buf: ab.Buf, split: ab.Split}
}

// Next returns the next argument, or false when there are none left.  The
// slice aliases the command line buffer.
func (a *Arguments) Next() ([]byte, bool) {
	if a.next >= len(a.buf) {
		return nil, false
	}
	if a.split {
		return a.nextSplit(), true
	}
	return a.nextBlank(), true
}

// Strings returns the remaining arguments.
func (a *Arguments) Strings() ([]string, error) {
	var out []string
	for {
		arg, ok := a.Next()
		if !ok {
			return out, nil
		}
		if !utf8.Valid(arg) {
			return out, shio.ErrInvalidUTF8
		}
		out = append(out, string(arg))
	}
}

func isBlank(b byte) bool { return b == ' ' || b == '\t' }

// nextBlank splits a single command line.  An argument starting with a
// quote runs to the matching quote, and the character after the closing
// quote is skipped as its separator.
func (a *Arguments) nextBlank() []byte {
	start, end := a.next, -1
	var delim byte
	inArg := false
	for a.next < len(a.buf) {
		b := a.buf[a.next]
		switch {
		case !inArg:
			if isBlank(b) {
				end = a.next
				a.next++
				return a.buf[start:end]
			}
			if b == '"' || b == '\'' {
				delim = b
				start++
			}
			inArg = true
		case delim != 0:
			if b == delim {
				end = a.next
				a.next += 2
				return a.buf[start:end]
			}
		case isBlank(b):
			end = a.next
			a.next++
			return a.buf[start:end]
		}
		a.next++
	}
	return a.buf[start:a.next]
}

// nextSplit takes one NUL terminated argument, dropping a pair of matching
// quotes around it.
func (a *Arguments) nextSplit() []byte {
	start := a.next
	end := len(a.buf)
	for a.next < len(a.buf) {
		if a.buf[a.next] == 0 {
			end = a.next
			a.next++
			break
		}
		a.next++
	}
	last := end - 1
	if last < 0 {
		last = 0
	}
	if start != last && (a.buf[start] == '"' && a.buf[last] == '"' ||
		a.buf[start] == '\'' && a.buf[last] == '\'') {
		return a.buf[start+1 : last]
	}
	return a.buf[start:end]
}
