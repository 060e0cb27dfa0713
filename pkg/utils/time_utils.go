package utils

import "time"

// AgeSeconds returns the whole seconds elapsed between since and now.
// Both sides are normalized to UTC before subtraction; fractional
// seconds are floored.
func AgeSeconds(now, since time.Time) int64 {
	return int64(now.UTC().Sub(since.UTC()).Seconds())
}

// FormatTimestamp renders a time the way the console prints timestamps.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05")
}
