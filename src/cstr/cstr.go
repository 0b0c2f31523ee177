// Package cstr builds the NUL terminated strings semihosting hosts expect.
package cstr

import (
	"bytes"

	"semihosting/src/shio"
)

// CStr always ends in exactly one NUL, which is its only NUL.
type CStr []byte

// New copies s and appends the terminator.
func New(s string) (CStr, error) {
	if bytes.IndexByte([]byte(s), 0) >= 0 {
		return nil, shio.ErrInteriorNul
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return CStr(b), nil
}

// Must is New for literals known to be valid.
func Must(s string) CStr {
	c, err := New(s)
	if err != nil {
		panic("cstr: " + err.Error())
	}
	return c
}

// FromBytes accepts a buffer that is already terminated; anything after the
// first NUL is dropped.
func FromBytes(b []byte) (CStr, error) {
	i := bytes.IndexByte(b, 0)
	if i < 0 {
		return nil, shio.Static(shio.InvalidInput, "data provided is not nul terminated")
	}
	return CStr(b[:i+1]), nil
}

// Len does not count the terminator.
func (c CStr) Len() int {
	if len(c) == 0 {
		return 0
	}
	return len(c) - 1
}

func (c CStr) Bytes() []byte { return c[:c.Len()] }

func (c CStr) String() string { return string(c.Bytes()) }
