package shio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"testing"
)

type testErrno int32

func (e testErrno) Code() int32 { return int32(e) }
func (e testErrno) Kind() ErrorKind {
	if e == 4 {
		return Interrupted
	}
	return NotFound
}
func (e testErrno) Error() string { return FormatOS(e.Kind(), int32(e)) }

func TestResolveEnd(t *testing.T) {
	cases := []struct {
		length uint64
		off    int64
		pos    uint64
		ok     bool
	}{
		{5, 0, 5, true},
		{5, -1, 4, true},
		{5, -5, 0, true},
		{5, -6, 0, false},
		{5, -200, 0, false},
		{5, 3, 8, true},
		{math.MaxUint64, 1, math.MaxInt64, true},
		{10, math.MaxInt64, math.MaxInt64, true},
		{0, math.MinInt64, 0, false},
	}
	for _, c := range cases {
		pos, ok := ResolveEnd(c.length, c.off)
		if ok != c.ok || (ok && pos != c.pos) {
			t.Errorf("ResolveEnd(%d, %d): expected %d %v, got %d %v", c.length, c.off, c.pos, c.ok, pos, ok)
		}
	}
}

func TestSeekFromIO(t *testing.T) {
	if s, err := SeekFromIO(7, io.SeekStart); err != nil || s.Whence() != FromStart || s.Pos() != 7 {
		t.Errorf("start: %+v %v", s, err)
	}
	if s, err := SeekFromIO(-2, io.SeekEnd); err != nil || s.Whence() != FromEnd || s.Offset() != -2 {
		t.Errorf("end: %+v %v", s, err)
	}
	if s, err := SeekFromIO(1, io.SeekCurrent); err != nil || s.Whence() != FromCurrent {
		t.Errorf("current: %+v %v", s, err)
	}
	for _, bad := range []struct {
		off    int64
		whence int
	}{{-1, io.SeekStart}, {0, 7}} {
		if _, err := SeekFromIO(bad.off, bad.whence); Kind(err) != InvalidInput {
			t.Errorf("%+v: expected InvalidInput, got %v", bad, err)
		}
	}
}

// script replays one result per call.
type script struct {
	ns   []int
	errs []error
	got  []byte
}

func (s *script) step(p []byte) (int, error) {
	n, err := s.ns[0], s.errs[0]
	s.ns, s.errs = s.ns[1:], s.errs[1:]
	for i := 0; i < n; i++ {
		p[i] = 'x'
	}
	s.got = append(s.got, p[:n]...)
	return n, err
}

func (s *script) Read(p []byte) (int, error)  { return s.step(p) }
func (s *script) Write(p []byte) (int, error) { return s.step(p) }

func TestReadFullRetriesInterrupted(t *testing.T) {
	eintr := FromErrno(testErrno(4))
	s := &script{ns: []int{2, 0, 3}, errs: []error{nil, eintr, nil}}
	if err := ReadFull(s, make([]byte, 5)); err != nil {
		t.Errorf("expected success, got %v", err)
	}
}

func TestReadFullShort(t *testing.T) {
	s := &script{ns: []int{2, 0}, errs: []error{nil, io.EOF}}
	if err := ReadFull(s, make([]byte, 5)); err != ErrReadExactEOF {
		t.Errorf("expected ErrReadExactEOF, got %v", err)
	}
	s = &script{ns: []int{1, 0}, errs: []error{nil, nil}}
	if err := ReadFull(s, make([]byte, 5)); err != ErrReadExactEOF {
		t.Errorf("zero read: expected ErrReadExactEOF, got %v", err)
	}
	enoent := FromErrno(testErrno(2))
	s = &script{ns: []int{0}, errs: []error{enoent}}
	if err := ReadFull(s, make([]byte, 5)); err != enoent {
		t.Errorf("expected the read error, got %v", err)
	}
}

func TestWriteAll(t *testing.T) {
	eintr := FromErrno(testErrno(4))
	s := &script{ns: []int{1, 0, 2}, errs: []error{nil, eintr, nil}}
	if err := WriteAll(s, []byte("abc")); err != nil || len(s.got) != 3 {
		t.Errorf("expected all 3 bytes, got %d %v", len(s.got), err)
	}
	s = &script{ns: []int{1, 0}, errs: []error{nil, nil}}
	if err := WriteAll(s, []byte("abc")); err != ErrWriteAllEOF {
		t.Errorf("expected ErrWriteAllEOF, got %v", err)
	}
}

func TestErrorKinds(t *testing.T) {
	osErr := FromErrno(testErrno(2))
	if osErr.Kind() != NotFound || !errors.Is(osErr, fs.ErrNotExist) {
		t.Errorf("errno error: %v", osErr)
	}
	if code, ok := osErr.RawOSError(); !ok || code != 2 {
		t.Errorf("raw errno: %d %v", code, ok)
	}
	if _, ok := New(Other).RawOSError(); ok {
		t.Errorf("a simple error has no errno")
	}
	if osErr.Error() != FormatOS(NotFound, 2) {
		t.Errorf("message: %s", osErr.Error())
	}
	wrapped := fmt.Errorf("open x: %w", New(Unsupported))
	if !errors.Is(wrapped, errors.ErrUnsupported) || Kind(wrapped) != Unsupported {
		t.Errorf("wrapped: %v", wrapped)
	}
	if !errors.Is(New(AlreadyExists), fs.ErrExist) || !errors.Is(New(PermissionDenied), fs.ErrPermission) {
		t.Errorf("io/fs sentinels")
	}
	if errors.Is(New(InvalidInput), fs.ErrNotExist) {
		t.Errorf("kinds must not cross")
	}
	if Kind(errors.New("foreign")) != Other || Kind(testErrno(2)) != NotFound {
		t.Errorf("Kind on foreign errors")
	}
	if !IsInterrupted(FromErrno(testErrno(4))) || IsInterrupted(nil) {
		t.Errorf("IsInterrupted")
	}
	if ErrInvalidUTF8.Error() != "stream did not contain valid UTF-8" || ErrInvalidUTF8.Kind() != InvalidData {
		t.Errorf("static error: %v", ErrInvalidUTF8)
	}
}
