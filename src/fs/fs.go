// Package fs is file access on the host through semihosting.  Paths are
// interpreted by the host, relative to its working directory.
package fs

import (
	"io"
	iofs "io/fs"
	"time"

	"semihosting/src/cstr"
	"semihosting/src/fd"
	"semihosting/src/shio"
	"semihosting/src/sys"
	"semihosting/src/sys/abi"
)

// FS issues file operations through one backend.
type FS struct {
	b abi.Backend
}

func New(b abi.Backend) *FS { return &FS{b: b} }

// Default uses the backend this target was built for.
var Default = New(sys.Native())

func pathError(op, name string, err error) error {
	return &iofs.PathError{Op: op, Path: name, Err: err}
}

func (fsys *FS) openFile(name string, o abi.OpenOptions) (*File, error) {
	path, err := cstr.New(name)
	if err != nil {
		return nil, pathError("open", name, err)
	}
	owned, err := fsys.b.Open(path, &o)
	if err != nil {
		return nil, pathError("open", name, err)
	}
	return &File{fd: owned, b: fsys.b, name: name}, nil
}

// Open opens name for reading.
func (fsys *FS) Open(name string) (*File, error) {
	return fsys.Options().Read(true).Open(name)
}

// Create opens name for writing, creating it or truncating it.
func (fsys *FS) Create(name string) (*File, error) {
	return fsys.Options().Write(true).Create(true).Truncate(true).Open(name)
}

func (fsys *FS) Remove(name string) error {
	path, err := cstr.New(name)
	if err == nil {
		err = fsys.b.Unlink(path)
	}
	if err != nil {
		return pathError("remove", name, err)
	}
	return nil
}

// Rename replaces to if it exists.  Not every convention supports it.
func (fsys *FS) Rename(from, to string) error {
	src, err := cstr.New(from)
	if err != nil {
		return pathError("rename", from, err)
	}
	dst, err := cstr.New(to)
	if err != nil {
		return pathError("rename", to, err)
	}
	if err := fsys.b.Rename(src, dst); err != nil {
		return pathError("rename", from, err)
	}
	return nil
}

// WriteFile creates or truncates name and writes data to it.
func (fsys *FS) WriteFile(name string, data []byte) error {
	f, err := fsys.Create(name)
	if err != nil {
		return err
	}
	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// ReadFile returns the whole content of name.
func (fsys *FS) ReadFile(name string) ([]byte, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var size int
	if m, err := f.Metadata(); err == nil && m.Len() < 1<<30 {
		size = int(m.Len())
	}
	data := make([]byte, 0, size+1)
	for {
		if len(data) == cap(data) {
			data = append(data, 0)[:len(data)]
		}
		n, err := f.Read(data[len(data):cap(data)])
		data = data[:len(data)+n]
		if err == io.EOF {
			return data, nil
		}
		if err != nil {
			return data, err
		}
	}
}

func Open(name string) (*File, error)          { return Default.Open(name) }
func Create(name string) (*File, error)        { return Default.Create(name) }
func Remove(name string) error                 { return Default.Remove(name) }
func Rename(from, to string) error             { return Default.Rename(from, to) }
func WriteFile(name string, data []byte) error { return Default.WriteFile(name, data) }
func ReadFile(name string) ([]byte, error)     { return Default.ReadFile(name) }

///////////////////////////////////////////////////////////////////////
// File
///////////////////////////////////////////////////////////////////////

// File is an open host file.  It is not safe for concurrent use.
type File struct {
	fd   *fd.Owned
	b    abi.Backend
	name string
}

var (
	_ io.ReadWriteSeeker = (*File)(nil)
	_ io.Closer          = (*File)(nil)
	_ fd.AsFd            = (*File)(nil)
)

func (f *File) Name() string    { return f.name }
func (f *File) Fd() fd.Borrowed { return f.fd.Borrow() }

// Read returns io.EOF once the host reports nothing left.
func (f *File) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n, err := f.b.Read(f.fd.Borrow(), p)
	if err != nil {
		return n, err
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// Write writes all of p unless the host fails.
func (f *File) Write(p []byte) (int, error) {
	total := 0
	for len(p) > 0 {
		n, err := f.b.Write(f.fd.Borrow(), p)
		total += n
		p = p[n:]
		switch {
		case err != nil && shio.IsInterrupted(err):
			continue
		case err != nil:
			return total, err
		case n == 0:
			return total, shio.ErrWriteAllEOF
		}
	}
	return total, nil
}

func (f *File) WriteString(s string) (int, error) { return f.Write([]byte(s)) }

// SeekTo moves to pos and returns the new offset from the start.
func (f *File) SeekTo(pos shio.SeekFrom) (uint64, error) {
	return f.b.Seek(f.fd.Borrow(), pos)
}

// Seek implements io.Seeker.  io.SeekCurrent is only available where the
// host convention has it.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	pos, err := shio.SeekFromIO(offset, whence)
	if err != nil {
		return 0, err
	}
	n, err := f.SeekTo(pos)
	return int64(n), err
}

func (f *File) Metadata() (Metadata, error) {
	m, err := f.b.Metadata(f.fd.Borrow())
	if err != nil {
		return Metadata{}, err
	}
	return Metadata{m: m}, nil
}

// Stat is Metadata as an io/fs.FileInfo.
func (f *File) Stat() (iofs.FileInfo, error) {
	m, err := f.Metadata()
	if err != nil {
		return nil, pathError("stat", f.name, err)
	}
	return fileInfo{name: f.name, m: m}, nil
}

// Close is safe to call more than once.
func (f *File) Close() error { return f.fd.Close() }

///////////////////////////////////////////////////////////////////////
// Metadata
///////////////////////////////////////////////////////////////////////

// Metadata is what the host reports about an open file.  The Arm-compatible
// convention only knows the length.
type Metadata struct {
	m abi.Metadata
}

func (m Metadata) Len() uint64         { return m.m.Size }
func (m Metadata) Mode() iofs.FileMode { return m.m.Mode }
func (m Metadata) ModTime() time.Time  { return m.m.ModTime }
func (m Metadata) IsDir() bool         { return m.m.IsDir() }
func (m Metadata) IsRegular() bool     { return m.m.IsRegular() }

type fileInfo struct {
	name string
	m    Metadata
}

func (fi fileInfo) Name() string        { return fi.name }
func (fi fileInfo) Size() int64         { return int64(fi.m.Len()) }
func (fi fileInfo) Mode() iofs.FileMode { return fi.m.Mode() }
func (fi fileInfo) ModTime() time.Time  { return fi.m.ModTime() }
func (fi fileInfo) IsDir() bool         { return fi.m.IsDir() }
func (fi fileInfo) Sys() interface{}    { return fi.m }
