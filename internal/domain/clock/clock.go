// Package clock converts between HHMM integers and 12-hour display strings.
//
// HHMM encodes a time of day as hours*100+minutes on a 24-hour scale, so
// 1830 is 6:30 PM.
package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	hoursPerPeriod = 12
	minutesPerHour = 60
)

// ToDisplay renders an HHMM value as "H:MM AM" or "H:MM PM".
func ToDisplay(t int) string {
	hours, minutes := t/100, t%100

	period := "AM"
	if hours >= hoursPerPeriod {
		period = "PM"
	}
	switch {
	case hours == 0:
		hours = hoursPerPeriod
	case hours > hoursPerPeriod:
		hours -= hoursPerPeriod
	}
	return fmt.Sprintf("%d:%02d %s", hours, minutes, period)
}

// FromTime returns the HHMM value of t's wall clock.
func FromTime(t time.Time) int {
	return t.Hour()*100 + t.Minute()
}

// Parse converts "H:MM AM|PM" to HHMM. The period is case-insensitive and
// is taken from the last whitespace-separated token. Hours must be 0-12 and
// minutes 0-59.
func Parse(s string) (int, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return 0, fmt.Errorf("%w: %q has no AM/PM marker", ErrInvalidTime, s)
	}
	period := strings.ToUpper(fields[len(fields)-1])
	if period != "AM" && period != "PM" {
		return 0, fmt.Errorf("%w: unknown period %q", ErrInvalidTime, period)
	}

	parts := strings.Split(strings.Join(fields[:len(fields)-1], " "), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q is not H:MM", ErrInvalidTime, s)
	}
	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("%w: hour: %w", ErrInvalidTime, err)
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("%w: minute: %w", ErrInvalidTime, err)
	}
	if hours < 0 || hours > hoursPerPeriod || minutes < 0 || minutes >= minutesPerHour {
		return 0, fmt.Errorf("%w: %d:%02d out of range", ErrInvalidTime, hours, minutes)
	}

	switch {
	case period == "PM" && hours != hoursPerPeriod:
		hours += hoursPerPeriod
	case period == "AM" && hours == hoursPerPeriod:
		hours = 0
	}
	return hours*100 + minutes, nil
}

// Converter parses user-supplied times, substituting the current wall-clock
// time when the input cannot be parsed.
type Converter struct {
	now func() time.Time
}

// Option applies a configuration option to the Converter.
type Option func(*Converter)

// WithNow sets the clock consulted for the fallback.
func WithNow(now func() time.Time) Option {
	return func(c *Converter) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a Converter backed by time.Now unless overridden.
func New(opts ...Option) *Converter {
	c := &Converter{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Now returns the current time of day as HHMM.
func (c *Converter) Now() int {
	return FromTime(c.now())
}

// Resolve parses s and reports whether the current time was used instead.
func (c *Converter) Resolve(s string) (t int, fellBack bool) {
	t, err := Parse(s)
	if err != nil {
		return c.Now(), true
	}
	return t, false
}

// ToInternal parses s, falling back to the current time. It never fails.
func (c *Converter) ToInternal(s string) int {
	t, _ := c.Resolve(s)
	return t
}

var system = New()

// ToInternal parses s against the host clock. See Converter.ToInternal.
func ToInternal(s string) int {
	return system.ToInternal(s)
}
