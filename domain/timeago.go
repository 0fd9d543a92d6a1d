package domain

import (
	"fmt"
	"time"
)

// TimeAgo renders how long ago created happened relative to now, in the
// coarse buckets the dashboard displays.
func TimeAgo(created, now time.Time) string {
	minutes := int(now.Sub(created).Minutes())
	switch {
	case minutes < 1:
		return "Just now"
	case minutes < 60:
		return fmt.Sprintf("%d min ago", minutes)
	case minutes < 24*60:
		return plural(minutes/60, "hour")
	default:
		return plural(minutes/(24*60), "day")
	}
}

func plural(n int, unit string) string {
	if n > 1 {
		return fmt.Sprintf("%d %ss ago", n, unit)
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}
