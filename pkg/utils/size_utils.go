package utils

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatBytes renders a byte count in human readable form.
func FormatBytes(bytes int64) string {
	return humanize.IBytes(uint64(bytes))
}

// FormatMB renders a byte count as megabytes with two decimals, the way
// the console rows display sizes.
func FormatMB(bytes int64) string {
	return fmt.Sprintf("%.2f MB", float64(bytes)/(1024*1024))
}
