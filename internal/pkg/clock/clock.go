// Package clock abstracts wall-clock access. Release evaluation and
// dispute-window expiry must each observe a single consistent "now", so
// callers capture Clock.Now() once per check instead of calling time.Now
// inline. Tests freeze time with Fixed.
package clock

import "time"

// Clock yields the current time.
type Clock interface {
	Now() time.Time
}

// System is the production clock backed by time.Now.
type System struct{}

// NewSystem returns the production clock.
func NewSystem() System {
	return System{}
}

// Now returns the current wall-clock time in UTC.
func (System) Now() time.Time {
	return time.Now().UTC()
}

// Fixed is a clock pinned to a settable instant, for tests.
type Fixed struct {
	now time.Time
}

// NewFixed returns a clock pinned to t.
func NewFixed(t time.Time) *Fixed {
	return &Fixed{now: t}
}

// Now returns the pinned instant.
func (f *Fixed) Now() time.Time {
	return f.now
}

// Set moves the pinned instant.
func (f *Fixed) Set(t time.Time) {
	f.now = t
}

// Advance moves the pinned instant forward by d.
func (f *Fixed) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}
