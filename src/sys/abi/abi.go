// Package abi is the surface every semihosting backend presents to the
// front-end packages.  Exactly one implementation is linked into a target
// build; tests plug in others.
package abi

import (
	iofs "io/fs"
	"time"

	"semihosting/src/cstr"
	"semihosting/src/fd"
	"semihosting/src/shio"
)

// DefaultMode is the permission used for files created without an explicit
// mode.
const DefaultMode = 0o666

type OpenOptions struct {
	Read      bool
	Write     bool
	Append    bool
	Truncate  bool
	Create    bool
	CreateNew bool
	Mode      uint32
}

func DefaultOpenOptions() OpenOptions {
	return OpenOptions{Mode: DefaultMode}
}

// Valid reports whether the creation flags are compatible with the access
// flags.  Truncate needs write access without append; create or truncate
// without any write access is meaningless.
func (o *OpenOptions) Valid() bool {
	switch {
	case o.Write && !o.Append:
		return true
	case !o.Write && !o.Append:
		return !o.Truncate && !o.Create
	default:
		return !o.Truncate
	}
}

type Metadata struct {
	Size    uint64
	Mode    iofs.FileMode
	ModTime time.Time
}

func (m Metadata) IsDir() bool     { return m.Mode.IsDir() }
func (m Metadata) IsRegular() bool { return m.Mode.IsRegular() }

// ArgsBytes is the raw command line.  When Split is set, Buf holds one NUL
// terminated string per argument; otherwise it is a single line to be split
// on blanks.
type ArgsBytes struct {
	Buf   []byte
	Split bool
}

type Backend interface {
	fd.Closer

	Read(f fd.Borrowed, buf []byte) (int, error)
	Write(f fd.Borrowed, buf []byte) (int, error)
	Open(path cstr.CStr, o *OpenOptions) (*fd.Owned, error)
	Seek(f fd.Borrowed, pos shio.SeekFrom) (uint64, error)
	Metadata(f fd.Borrowed) (Metadata, error)
	Unlink(path cstr.CStr) error
	Rename(from, to cstr.CStr) error

	Stdin() (*fd.Owned, error)
	Stdout() (*fd.Owned, error)
	Stderr() (*fd.Owned, error)
	IsTerminal(f fd.Borrowed) bool

	// Exit does not return when the host honours it.
	Exit(code int32)
	Args(bufSize int) (ArgsBytes, error)
	SystemTime() (sec int64, nsec int64, err error)
	Monotonic() (time.Duration, error)

	DecodeErrorKind(code int32) shio.ErrorKind
	IsInterrupted(code int32) bool
}
