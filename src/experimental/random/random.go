// Package random fills buffers from the host's /dev/urandom.
package random

import (
	"sync/atomic"

	"semihosting/src/cstr"
	"semihosting/src/fd"
	"semihosting/src/shio"
	"semihosting/src/sys"
	"semihosting/src/sys/abi"
)

const uninit = int32(fd.Invalid)

var urandom = cstr.Must("/dev/urandom")

// Device caches the descriptor of the random device.  It is opened on first
// use and kept until Close.
type Device struct {
	b  abi.Backend
	fd atomic.Int32
}

func NewDevice(b abi.Backend) *Device {
	d := &Device{b: b}
	d.fd.Store(uninit)
	return d
}

var Default = NewDevice(sys.Native())

// Get returns the descriptor, opening the device if needed.  When two
// callers race, the loser closes its descriptor and uses the winner's, or
// opens again if the winner's was closed in the meantime.
func (d *Device) Get() (fd.RawFd, error) {
	for {
		if cur := d.fd.Load(); cur != uninit {
			return fd.RawFd(cur), nil
		}
		o := abi.DefaultOpenOptions()
		o.Read = true
		owned, err := d.b.Open(urandom, &o)
		if err != nil {
			return fd.Invalid, err
		}
		raw := owned.IntoRaw()
		if d.fd.CompareAndSwap(uninit, int32(raw)) {
			return raw, nil
		}
		if d.b.ShouldClose(raw) {
			d.b.CloseFd(raw)
		}
	}
}

// Fill fills p completely.
func (d *Device) Fill(p []byte) error {
	raw, err := d.Get()
	if err != nil {
		return err
	}
	return shio.ReadFull(reader{d.b, fd.BorrowRaw(raw)}, p)
}

// Close releases the descriptor; a later Fill opens the device again.
func (d *Device) Close() error {
	raw := d.fd.Swap(uninit)
	if raw == uninit || !d.b.ShouldClose(fd.RawFd(raw)) {
		return nil
	}
	return d.b.CloseFd(fd.RawFd(raw))
}

type reader struct {
	b abi.Backend
	f fd.Borrowed
}

func (r reader) Read(p []byte) (int, error) { return r.b.Read(r.f, p) }

func Fill(p []byte) error { return Default.Fill(p) }
