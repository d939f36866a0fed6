// Package biztime keeps all stored and transported timestamps in UTC.
package biztime

import "time"

// nowFunc is swapped in tests that need a fixed clock.
var nowFunc = time.Now

// NowUTC returns the current time in UTC, truncated to microseconds so values
// survive a round trip through MySQL DATETIME(6) and SQLite unchanged.
func NowUTC() time.Time {
	return nowFunc().UTC().Truncate(time.Microsecond)
}

// ToUTC converts t to UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// FreezeForTest pins NowUTC to t until the returned restore func runs.
func FreezeForTest(t time.Time) (restore func()) {
	prev := nowFunc
	nowFunc = func() time.Time { return t }
	return func() { nowFunc = prev }
}
