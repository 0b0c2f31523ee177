// Package unsupported is the backend for targets without a known semihosting
// convention, and for Xtensa when built for the ISS SIMCALL interface.  Every
// operation fails with Unsupported without trapping.
package unsupported

import (
	"time"

	"semihosting/src/cstr"
	"semihosting/src/fd"
	"semihosting/src/shio"
	"semihosting/src/sys/abi"
)

type Client struct{}

var _ abi.Backend = Client{}

var Default Client

func unsupported() error { return shio.New(shio.Unsupported) }

func (Client) CloseFd(fd.RawFd) error                 { return unsupported() }
func (Client) ShouldClose(fd.RawFd) bool              { return true }
func (Client) Read(fd.Borrowed, []byte) (int, error)  { return 0, unsupported() }
func (Client) Write(fd.Borrowed, []byte) (int, error) { return 0, unsupported() }

func (Client) Open(cstr.CStr, *abi.OpenOptions) (*fd.Owned, error) { return nil, unsupported() }
func (Client) Seek(fd.Borrowed, shio.SeekFrom) (uint64, error)     { return 0, unsupported() }
func (Client) Metadata(fd.Borrowed) (abi.Metadata, error)          { return abi.Metadata{}, unsupported() }
func (Client) Unlink(cstr.CStr) error                              { return unsupported() }
func (Client) Rename(cstr.CStr, cstr.CStr) error                   { return unsupported() }

func (Client) Stdin() (*fd.Owned, error)   { return nil, unsupported() }
func (Client) Stdout() (*fd.Owned, error)  { return nil, unsupported() }
func (Client) Stderr() (*fd.Owned, error)  { return nil, unsupported() }
func (Client) IsTerminal(fd.Borrowed) bool { return false }

// Exit returns; there is nobody to stop the program.
func (Client) Exit(int32) {}

func (Client) Args(int) (abi.ArgsBytes, error)   { return abi.ArgsBytes{}, shio.ErrUnsupportedPlatform }
func (Client) SystemTime() (int64, int64, error) { return 0, 0, shio.ErrUnsupportedPlatform }
func (Client) Monotonic() (time.Duration, error) { return 0, shio.ErrUnsupportedPlatform }

func (Client) DecodeErrorKind(int32) shio.ErrorKind { return shio.Other }
func (Client) IsInterrupted(int32) bool             { return false }
