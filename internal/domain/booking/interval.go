package booking

import (
	"time"

	"amenity-booking/internal/pkg/clock"
)

// Interval is a half-open [start, end) window in local-literal time:
// any UTC offset on the inputs is dropped and the wall-clock digits are kept.
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	s := clock.StripZone(start)
	e := clock.StripZone(end)
	if !s.Before(e) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{start: s, end: e}, nil
}

func (i Interval) Start() time.Time {
	return i.start
}

func (i Interval) End() time.Time {
	return i.end
}

func (i Interval) Duration() time.Duration {
	return i.end.Sub(i.start)
}

func (i Interval) IsZero() bool {
	return i.start.IsZero() && i.end.IsZero()
}

// Overlaps applies the half-open rule: touching endpoints do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.start.Before(o.end) && o.start.Before(i.end)
}

func (i Interval) Equal(o Interval) bool {
	return i.start.Equal(o.start) && i.end.Equal(o.end)
}

// StartsBefore compares against a local-literal instant such as clock.WallClock.Now().
func (i Interval) StartsBefore(t time.Time) bool {
	return i.start.Before(clock.StripZone(t))
}

// Day returns the calendar day containing date as a local-literal interval.
func Day(date time.Time) Interval {
	d := clock.StripZone(date)
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return Interval{start: start, end: start.AddDate(0, 0, 1)}
}

// RestoreInterval rebuilds a persisted interval without re-checking its order.
func RestoreInterval(start, end time.Time) Interval {
	return Interval{start: clock.StripZone(start), end: clock.StripZone(end)}
}
