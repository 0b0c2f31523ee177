// Package time reads the host clocks.  SystemTime is wall clock time and
// Instant is a monotonic reading; their resolution is whatever the host
// convention offers, seconds and centiseconds on Arm-compatible targets.
package time

import (
	"errors"
	"time"

	"semihosting/src/sys"
	"semihosting/src/sys/abi"
)

type SystemTime struct {
	t time.Time
}

var UnixEpoch = SystemTime{t: time.Unix(0, 0)}

// ErrSystemTime is returned by DurationSince when the argument is later.
var ErrSystemTime = errors.New("second time provided was later than self")

// Clock reads the clocks of one backend.
type Clock struct {
	b abi.Backend
}

func New(b abi.Backend) *Clock { return &Clock{b: b} }

var Default = New(sys.Native())

// Now fails where the convention has no wall clock, such as MIPS UHI.
func (c *Clock) Now() (SystemTime, error) {
	sec, nsec, err := c.b.SystemTime()
	if err != nil {
		return SystemTime{}, err
	}
	return SystemTime{t: time.Unix(sec, nsec)}, nil
}

func Now() (SystemTime, error) { return Default.Now() }

func (s SystemTime) Time() time.Time { return s.t }

func (s SystemTime) DurationSince(earlier SystemTime) (time.Duration, error) {
	if s.t.Before(earlier.t) {
		return earlier.t.Sub(s.t), ErrSystemTime
	}
	return s.t.Sub(earlier.t), nil
}

func (s SystemTime) Add(d time.Duration) SystemTime { return SystemTime{t: s.t.Add(d)} }
func (s SystemTime) Sub(d time.Duration) SystemTime { return SystemTime{t: s.t.Add(-d)} }

func (s SystemTime) String() string { return s.t.UTC().Format(time.RFC3339Nano) }

// Instant is a point on the host's monotonic clock, measured from an
// arbitrary origin.
type Instant struct {
	d time.Duration
}

func (c *Clock) Instant() (Instant, error) {
	d, err := c.b.Monotonic()
	if err != nil {
		return Instant{}, err
	}
	return Instant{d: d}, nil
}

func NowInstant() (Instant, error) { return Default.Instant() }

// DurationSince saturates at zero.
func (i Instant) DurationSince(earlier Instant) time.Duration {
	if i.d < earlier.d {
		return 0
	}
	return i.d - earlier.d
}

func (i Instant) Add(d time.Duration) Instant { return Instant{d: i.d + d} }

// Elapsed is the time since i on c's clock.
func (c *Clock) Elapsed(i Instant) (time.Duration, error) {
	now, err := c.Instant()
	if err != nil {
		return 0, err
	}
	return now.DurationSince(i), nil
}
