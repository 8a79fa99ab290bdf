// Package biztime centralizes time handling. All storage and transport use UTC;
// implicit Local timezone is prohibited.
package biztime

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToUTC converts a time (any timezone) to UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// FormatAPI formats a UTC time for API responses using RFC3339.
func FormatAPI(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
