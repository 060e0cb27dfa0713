package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeSeconds(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, int64(900), AgeSeconds(now, now.Add(-900*time.Second)))
	assert.Equal(t, int64(0), AgeSeconds(now, now))

	// fractional seconds are floored
	assert.Equal(t, int64(10), AgeSeconds(now, now.Add(-10*time.Second-900*time.Millisecond)))

	// zone offsets do not change the result
	seoul := time.FixedZone("KST", 9*60*60)
	assert.Equal(t, int64(60), AgeSeconds(now.In(seoul), now.Add(-time.Minute)))
}

func TestFormatMB(t *testing.T) {
	assert.Equal(t, "2.00 MB", FormatMB(2*1024*1024))
	assert.Equal(t, "0.50 MB", FormatMB(512*1024))
	assert.Equal(t, "0.00 MB", FormatMB(0))
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2026, 8, 25, 12, 34, 56, 0, time.UTC)
	assert.Equal(t, "2026-08-25 12:34:56", FormatTimestamp(ts))

	seoul := time.FixedZone("KST", 9*60*60)
	assert.Equal(t, "2026-08-25 12:34:56", FormatTimestamp(ts.In(seoul)))
}

func TestIsValidRegion(t *testing.T) {
	assert.True(t, IsValidRegion("us-east-1"))
	assert.True(t, IsValidRegion("ap-northeast-2"))
	assert.False(t, IsValidRegion("moon-base-1"))
	assert.False(t, IsValidRegion(""))
}
