package formatter

import (
	"fmt"

	"github.com/fatih/color"
)

// Countdown color thresholds for the active objects view, in seconds.
const (
	warnBelow = 450
	critBelow = 180
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

// expiryText renders the plain remaining-time label for an active
// object countdown.
func expiryText(remaining int64) string {
	if remaining < 0 {
		return fmt.Sprintf("EXPIRED %d sec ago", -remaining)
	}
	return fmt.Sprintf("Expires in %d sec", remaining)
}

// expiryBadge colors the remaining-time label: green while comfortably
// inside the TTL, yellow when getting close, red when nearly or already
// expired.
func expiryBadge(remaining int64) string {
	text := expiryText(remaining)
	switch {
	case remaining < critBelow:
		return red(text)
	case remaining < warnBelow:
		return yellow(text)
	default:
		return green(text)
	}
}

// deletionText renders the deletes-in countdown for the all-objects
// view against the display horizon.
func deletionText(horizonRemaining int64) string {
	if horizonRemaining < 0 {
		return fmt.Sprintf("Expired %d sec ago (may be deleted)", -horizonRemaining)
	}
	return fmt.Sprintf("Deletes in %d seconds", horizonRemaining)
}
