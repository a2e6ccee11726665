// Package zone resolves a named time zone once at configuration time and
// converts timestamps between that zone's wall clock and UTC using the
// zone's full DST transition rules.
//
// Disambiguation of DST edge cases follows time.Date:
//   - a wall time inside a spring-forward gap resolves with the
//     post-transition (daylight) offset;
//   - a wall time inside a fall-back overlap resolves to its first
//     occurrence, which carries the daylight offset.
package zone

import (
	"errors"
	"fmt"
	"time"
)

var ErrEmptyName = errors.New("zone name is empty")

// Handle converts between wall-clock readings in one fixed zone and UTC
// instants. A Handle is immutable and safe for concurrent use.
type Handle struct {
	name string
	loc  *time.Location
}

// Resolve looks name up in the platform time-zone database. It fails when
// the name is unknown; that failure is meant to abort configuration, not
// be handled per conversion.
func Resolve(name string) (*Handle, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("resolve zone %q: %w", name, err)
	}

	return &Handle{name: name, loc: loc}, nil
}

// Name returns the identifier the handle was resolved from.
func (h *Handle) Name() string { return h.name }

// Location exposes the underlying location.
func (h *Handle) Location() *time.Location { return h.loc }

// ToUTC treats t as a wall-clock reading in the handle's zone, discarding
// whatever location t carries, and returns the matching UTC instant.
func (h *Handle) ToUTC(t time.Time) time.Time {
	wall := time.Date(t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), h.loc)

	return wall.UTC()
}

// ToLocal treats t as a UTC instant, discarding whatever location it
// carries, and returns the wall-clock reading in the handle's zone.
func (h *Handle) ToLocal(t time.Time) time.Time {
	instant := time.Date(t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)

	return instant.In(h.loc)
}
