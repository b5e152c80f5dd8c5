package metrics

import (
	"fmt"
	"time"
)

// FormatViews renders a view count in abbreviated form: one decimal place
// with an "M" suffix from a million up, a "K" suffix from a thousand up,
// plain digits below that.
func FormatViews(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// RelativeAge renders the age of a publish time as a coarse phrase.
// Buckets: under a day, days, months (age/30), years (age/365).
func RelativeAge(now, publishedAt time.Time) string {
	days := int(now.Sub(publishedAt).Hours() / 24)
	switch {
	case days < 1:
		return "today"
	case days < 30:
		return fmt.Sprintf("%d days ago", days)
	case days < 365:
		return fmt.Sprintf("%d months ago", days/30)
	default:
		return fmt.Sprintf("%d years ago", days/365)
	}
}

// FormatPublished renders an absolute publish timestamp in UTC
func FormatPublished(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04 UTC")
}
