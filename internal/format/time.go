package format

import (
	"fmt"
	"time"
)

// Timestamp formats an absolute time for log listings.
// Example output: "2026-08-25 15:04:05"
func Timestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// Relative formats a time as a short age relative to now.
// Example output: "3s ago", "2m ago", "5h ago", "12d ago"
func Relative(t time.Time) string {
	return RelativeTo(t, time.Now())
}

// RelativeTo formats the age of t relative to the given reference time.
func RelativeTo(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Second:
		return "just now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// Millis formats a millisecond duration for log listings.
// Example output: "12ms", "1.205s"
func Millis(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	return fmt.Sprintf("%.3fs", float64(ms)/1000)
}
