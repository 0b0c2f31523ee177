package shio

import (
	"io"
	"math"
)

type Whence uint8

const (
	FromStart Whence = iota
	FromEnd
	FromCurrent
)

// SeekFrom is an absolute or relative position.  Start positions are unsigned
// so that out of range requests can be rejected instead of wrapping.
type SeekFrom struct {
	whence Whence
	start  uint64
	offset int64
}

func Start(pos uint64) SeekFrom   { return SeekFrom{whence: FromStart, start: pos} }
func End(off int64) SeekFrom      { return SeekFrom{whence: FromEnd, offset: off} }
func Current(off int64) SeekFrom  { return SeekFrom{whence: FromCurrent, offset: off} }
func (s SeekFrom) Whence() Whence { return s.whence }
func (s SeekFrom) Pos() uint64    { return s.start }
func (s SeekFrom) Offset() int64  { return s.offset }

// SeekFromIO converts io.Seeker arguments.  A negative SeekStart offset has
// no representation and is reported as InvalidInput.
func SeekFromIO(offset int64, whence int) (SeekFrom, error) {
	switch whence {
	case io.SeekStart:
		if offset < 0 {
			return SeekFrom{}, New(InvalidInput)
		}
		return Start(uint64(offset)), nil
	case io.SeekEnd:
		return End(offset), nil
	case io.SeekCurrent:
		return Current(offset), nil
	}
	return SeekFrom{}, New(InvalidInput)
}

// ResolveEnd computes length+off, the way every backend turns an End seek
// into an absolute one.  ok is false when the result is negative.
func ResolveEnd(length uint64, off int64) (uint64, bool) {
	var pos int64
	if length > math.MaxInt64 {
		pos = math.MaxInt64
	} else {
		pos = int64(length)
	}
	switch {
	case off > 0 && pos > math.MaxInt64-off:
		pos = math.MaxInt64
	case off < 0 && pos < math.MinInt64-off:
		pos = math.MinInt64
	default:
		pos += off
	}
	if pos < 0 {
		return 0, false
	}
	return uint64(pos), true
}

// ReadFull fills buf completely, retrying interrupted reads.  A short stream
// yields ErrReadExactEOF.
func ReadFull(r io.Reader, buf []byte) error {
	for len(buf) > 0 {
		n, err := r.Read(buf)
		buf = buf[n:]
		if err != nil {
			if IsInterrupted(err) {
				continue
			}
			if err == io.EOF {
				break
			}
			return err
		}
		if n == 0 {
			break
		}
	}
	if len(buf) != 0 {
		return ErrReadExactEOF
	}
	return nil
}

// WriteAll writes all of buf, retrying interrupted writes.  A writer that
// accepts nothing yields ErrWriteAllEOF.
func WriteAll(w io.Writer, buf []byte) error {
	for len(buf) > 0 {
		n, err := w.Write(buf)
		buf = buf[n:]
		if err != nil {
			if IsInterrupted(err) {
				continue
			}
			return err
		}
		if n == 0 {
			return ErrWriteAllEOF
		}
	}
	return nil
}
