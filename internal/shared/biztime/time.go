// Package biztime keeps storage in UTC and computes calendar boundaries in
// the platform's business timezone. Daily analytics buckets are derived
// here so that "today" means the same thing for every writer.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone is the business timezone used when none is configured.
const DefaultTimezone = "Europe/Moscow"

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init sets the business timezone. Only the first call has an effect.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize business timezone %q: %v", tz, err))
	}
}

// Location returns the business timezone, falling back to UTC when the
// zone database is unavailable.
func Location() *time.Location {
	if err := Init(""); err != nil || bizLocation == nil {
		return time.UTC
	}
	return bizLocation
}

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDayUTC returns the UTC instant of midnight of t's business day.
func StartOfDayUTC(t time.Time) time.Time {
	local := t.In(Location())
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Location()).UTC()
}

// BizDate returns t's business calendar date formatted as YYYY-MM-DD.
func BizDate(t time.Time) string {
	return t.In(Location()).Format(time.DateOnly)
}
