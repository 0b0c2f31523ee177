package fs

import "semihosting/src/sys/abi"

// OpenOptions configures how a file is opened, in the style of
// os.OpenFile flags.  Combinations the host cannot express fail with
// InvalidInput when Open is called.
type OpenOptions struct {
	fsys *FS
	o    abi.OpenOptions
}

// Options starts an empty set of options bound to fsys.
func (fsys *FS) Options() *OpenOptions {
	return &OpenOptions{fsys: fsys, o: abi.DefaultOpenOptions()}
}

func NewOpenOptions() *OpenOptions { return Default.Options() }

func (o *OpenOptions) Read(v bool) *OpenOptions     { o.o.Read = v; return o }
func (o *OpenOptions) Write(v bool) *OpenOptions    { o.o.Write = v; return o }
func (o *OpenOptions) Append(v bool) *OpenOptions   { o.o.Append = v; return o }
func (o *OpenOptions) Truncate(v bool) *OpenOptions { o.o.Truncate = v; return o }
func (o *OpenOptions) Create(v bool) *OpenOptions   { o.o.Create = v; return o }

// CreateNew fails if the file exists.  The Arm-compatible convention cannot
// express it.
func (o *OpenOptions) CreateNew(v bool) *OpenOptions { o.o.CreateNew = v; return o }

// Mode sets the permission bits for a created file, 0o666 by default.
func (o *OpenOptions) Mode(perm uint32) *OpenOptions { o.o.Mode = perm; return o }

func (o *OpenOptions) Open(name string) (*File, error) {
	return o.fsys.openFile(name, o.o)
}
