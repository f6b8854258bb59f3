package clock

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// WallClock reports the current wall-clock time of loc, relabelled as UTC.
// Booking timestamps are stored the same way, so both sides compare digit for digit.
type WallClock struct {
	loc *time.Location
}

func NewWallClock(loc *time.Location) *WallClock {
	if loc == nil {
		loc = time.UTC
	}
	return &WallClock{loc: loc}
}

func (c *WallClock) Now() time.Time {
	return StripZone(time.Now().In(c.loc))
}

// StripZone keeps the wall-clock digits of t and drops its offset.
func StripZone(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}

var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ParseLocal reads a timestamp as a local literal. An explicit offset is
// dropped and its wall-clock digits kept; a value without offset is taken as is.
func ParseLocal(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return StripZone(t), nil
	}
	var lastErr error
	for _, layout := range localLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// ParseDate reads a calendar date (YYYY-MM-DD) as local midnight.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}
