package metrics

import (
	"fmt"
	"regexp"
	"strconv"
)

// durationPattern matches the ISO-8601 style duration tokens the video
// API emits, e.g. "PT1H2M3S", "PT45S", "P1DT2H".
var durationPattern = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// ParseDuration decodes a duration token into whole seconds. Empty or
// unparseable tokens yield 0, which the rest of the pipeline treats as
// "duration unknown".
func ParseDuration(token string) int64 {
	m := durationPattern.FindStringSubmatch(token)
	if m == nil {
		return 0
	}
	var total int64
	for i, mult := range []int64{86400, 3600, 60, 1} {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.ParseInt(m[i+1], 10, 64)
		if err != nil {
			return 0
		}
		total += n * mult
	}
	return total
}

// FormatDuration renders seconds as "H:MM:SS" when there is at least one
// whole hour, "M:SS" otherwise. Non-positive values render as "-", the
// placeholder for unknown durations.
func FormatDuration(seconds int64) string {
	if seconds <= 0 {
		return "-"
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// IsShortForm reports whether a duration falls in the sub-minute clip
// category. Zero is excluded because it means "unknown", not zero-length.
func IsShortForm(seconds int64) bool {
	return seconds > 0 && seconds < 60
}
