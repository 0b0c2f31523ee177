// Package host answers semihosting calls inside the current process.  It
// stands where a debugger or emulator would stand for a real target: files
// live in a sandbox directory, the console is a pair of streams or the
// controlling terminal, and exit ends the program under Run.
//
// The same Host serves all three calling conventions through ArmCompat, MIPS
// and M68k.  Emulators written in Go can embed it; the tests of this module
// use it as their trap boundary.
package host

import (
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"strings"
	"sync"
	"time"
)

///////////////////////////////////////////////////////////////////////
// exit
///////////////////////////////////////////////////////////////////////

// ExitStatus is what the program reported when it stopped.  Host raises it
// as a panic from the exit call; Run recovers it.
type ExitStatus struct {
	Code    int
	Reason  uint32 // Arm ADP_Stopped_* value, zero for other conventions
	Message string // assertion text for UHI_assert
}

func (e *ExitStatus) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("exit %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("exit %d", e.Code)
}

// Run calls fn and returns the exit status if fn stopped through a
// semihosting exit, or nil if it returned normally.
func Run(fn func()) (status *ExitStatus) {
	defer func() {
		if r := recover(); r != nil {
			st, ok := r.(*ExitStatus)
			if !ok {
				panic(r)
			}
			status = st
		}
	}()
	fn()
	return nil
}

///////////////////////////////////////////////////////////////////////
// descriptors
///////////////////////////////////////////////////////////////////////

type stream uint8

const (
	streamFile stream = iota
	streamStdin
	streamStdout
	streamStderr
)

type handle struct {
	kind stream
	f    *os.File
	name string
}

// Host is safe for use by several goroutines; calls are serialised.
type Host struct {
	mu      sync.Mutex
	cfg     Config
	root    *os.Root
	console Console
	log     *log.Logger
	files   map[int32]*handle
	next    int32
	start   time.Time
	errno   int32 // Arm numbering, read back by SYS_ERRNO
	tmpSeq  int
}

// New opens cfg.Root as the sandbox.  Descriptors 0, 1 and 2 are the
// console.
func New(cfg Config) (*Host, error) {
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.TickFreq == 0 {
		cfg.TickFreq = DefaultTickFreq
	}
	root, err := os.OpenRoot(cfg.Root)
	if err != nil {
		return nil, err
	}
	con := cfg.Console
	if con == nil {
		con = StdConsole()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "semihost: ", log.LstdFlags)
	}
	h := &Host{
		cfg:     cfg,
		root:    root,
		console: con,
		log:     logger,
		files: map[int32]*handle{
			0: {kind: streamStdin, name: "stdin"},
			1: {kind: streamStdout, name: "stdout"},
			2: {kind: streamStderr, name: "stderr"},
		},
		next:  3,
		start: cfg.Now(),
	}
	return h, nil
}

// Close releases every descriptor the program left open and the sandbox.
func (h *Host) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	for n, hd := range h.files {
		if hd.f != nil {
			hd.f.Close()
		}
		delete(h.files, n)
	}
	return h.root.Close()
}

// OpenFiles is the number of descriptors currently allocated, the console
// included.
func (h *Host) OpenFiles() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.files)
}

func (h *Host) tracef(format string, args ...interface{}) {
	if h.cfg.Trace {
		h.log.Printf(format, args...)
	}
}

func (h *Host) install(hd *handle) int32 {
	n := h.next
	for h.files[n] != nil {
		n++
	}
	h.files[n] = hd
	h.next = n + 1
	return n
}

func (h *Host) lookup(n int32) (*handle, condition) {
	hd, ok := h.files[n]
	if !ok {
		return nil, condBadF
	}
	return hd, condOK
}

// sandboxed turns a target path into a path inside the root.  Absolute
// target paths are relative to the root too.
func sandboxed(name string) string {
	p := strings.TrimPrefix(path.Clean("/"+name), "/")
	if p == "" {
		return "."
	}
	return p
}

///////////////////////////////////////////////////////////////////////
// operations shared by the conventions
///////////////////////////////////////////////////////////////////////

func (h *Host) openConsole(kind stream, name string) int32 {
	return h.install(&handle{kind: kind, name: name})
}

func (h *Host) open(name string, flag int, perm os.FileMode) (int32, condition) {
	f, err := h.root.OpenFile(sandboxed(name), flag, perm)
	if err != nil {
		return -1, classify(err)
	}
	return h.install(&handle{kind: streamFile, f: f, name: name}), condOK
}

func (h *Host) close(n int32) condition {
	hd, c := h.lookup(n)
	if c != condOK {
		return c
	}
	delete(h.files, n)
	if n < h.next {
		h.next = n
	}
	if hd.f != nil {
		if err := hd.f.Close(); err != nil {
			return classify(err)
		}
	}
	return condOK
}

func (h *Host) read(n int32, buf []byte) (int, condition) {
	hd, c := h.lookup(n)
	if c != condOK {
		return 0, c
	}
	var r io.Reader
	switch hd.kind {
	case streamFile:
		r = hd.f
	case streamStdin:
		r = h.console
	default:
		return 0, condBadF
	}
	got, err := r.Read(buf)
	if err != nil && err != io.EOF {
		return 0, classify(err)
	}
	return got, condOK
}

func (h *Host) write(n int32, buf []byte) (int, condition) {
	hd, c := h.lookup(n)
	if c != condOK {
		return 0, c
	}
	var w io.Writer
	switch hd.kind {
	case streamFile:
		w = hd.f
	case streamStdout:
		w = h.console.Stdout()
	case streamStderr:
		w = h.console.Stderr()
	default:
		return 0, condBadF
	}
	put, err := w.Write(buf)
	if err != nil && put == 0 {
		return 0, classify(err)
	}
	return put, condOK
}

func (h *Host) pread(n int32, buf []byte, off int64) (int, condition) {
	hd, c := h.lookup(n)
	if c != condOK {
		return 0, c
	}
	if hd.f == nil {
		return 0, condSPipe
	}
	got, err := hd.f.ReadAt(buf, off)
	if err != nil && err != io.EOF {
		return 0, classify(err)
	}
	return got, condOK
}

func (h *Host) pwrite(n int32, buf []byte, off int64) (int, condition) {
	hd, c := h.lookup(n)
	if c != condOK {
		return 0, c
	}
	if hd.f == nil {
		return 0, condSPipe
	}
	put, err := hd.f.WriteAt(buf, off)
	if err != nil && put == 0 {
		return 0, classify(err)
	}
	return put, condOK
}

func (h *Host) seek(n int32, off int64, whence int) (int64, condition) {
	hd, c := h.lookup(n)
	if c != condOK {
		return -1, c
	}
	if hd.f == nil {
		return -1, condSPipe
	}
	pos, err := hd.f.Seek(off, whence)
	if err != nil {
		return -1, classify(err)
	}
	return pos, condOK
}

// fileInfo is what fstat and stat report, before each convention packs it.
type fileInfo struct {
	size    uint64
	perm    os.FileMode
	dir     bool
	console bool
	mtime   time.Time
	atime   time.Time
}

func infoOf(fi os.FileInfo) fileInfo {
	return fileInfo{
		size:  uint64(fi.Size()),
		perm:  fi.Mode().Perm(),
		dir:   fi.IsDir(),
		mtime: fi.ModTime(),
		atime: fi.ModTime(),
	}
}

func (h *Host) fstat(n int32) (fileInfo, condition) {
	hd, c := h.lookup(n)
	if c != condOK {
		return fileInfo{}, c
	}
	if hd.f == nil {
		return fileInfo{console: true, perm: 0o666, mtime: h.start, atime: h.start}, condOK
	}
	fi, err := hd.f.Stat()
	if err != nil {
		return fileInfo{}, classify(err)
	}
	return infoOf(fi), condOK
}

func (h *Host) stat(name string) (fileInfo, condition) {
	fi, err := h.root.Stat(sandboxed(name))
	if err != nil {
		return fileInfo{}, classify(err)
	}
	return infoOf(fi), condOK
}

func (h *Host) isatty(n int32) (bool, condition) {
	hd, c := h.lookup(n)
	if c != condOK {
		return false, c
	}
	if hd.f != nil {
		return false, condOK
	}
	return h.console.IsTerminal(), condOK
}

func (h *Host) remove(name string) condition {
	if err := h.root.Remove(sandboxed(name)); err != nil {
		return classify(err)
	}
	return condOK
}

func (h *Host) rename(from, to string) condition {
	if err := h.root.Rename(sandboxed(from), sandboxed(to)); err != nil {
		return classify(err)
	}
	return condOK
}

func (h *Host) link(from, to string) condition {
	if err := h.root.Link(sandboxed(from), sandboxed(to)); err != nil {
		return classify(err)
	}
	return condOK
}

func (h *Host) tmpnam(id int) string {
	h.tmpSeq++
	return fmt.Sprintf("semihost-%03d-%d.tmp", id, h.tmpSeq)
}

func (h *Host) system(cmd string) (int, condition) {
	if h.cfg.System == nil {
		return -1, condPerm
	}
	return h.cfg.System(cmd), condOK
}

// exit raises the status; the caller never sees the call return.
func (h *Host) exit(st *ExitStatus) {
	h.tracef("exit %d reason %#x", st.Code, st.Reason)
	panic(st)
}

func (h *Host) elapsed() time.Duration { return h.cfg.Now().Sub(h.start) }

func (h *Host) consoleWrite(b []byte) {
	h.console.Stdout().Write(b)
}

func (h *Host) consoleReadByte() (byte, bool) {
	var b [1]byte
	for {
		n, err := h.console.Read(b[:])
		if n == 1 {
			return b[0], true
		}
		if err != nil {
			return 0, false
		}
	}
}
