// Package ranking applies the categorical filters and display orderings
// to an aggregated record set
package ranking

import (
	"sort"
	"time"

	"github.com/researchaccelerator-hub/youtube-trend-explorer/metrics"
	"github.com/researchaccelerator-hub/youtube-trend-explorer/model"
)

// Filters are independently applicable and conjunctive: a record must
// pass every active filter. Zero values deactivate a filter.
type Filters struct {
	// VideoType keeps only regular, short-form or live videos
	VideoType model.VideoType

	// Window keeps only records published after a cutoff derived from Now
	Window model.TimeWindow

	// Region keeps only records fetched under this region code. The CLI
	// issues every query under one region, which stamps all records
	// identically; this filter exists for library callers that merge
	// record sets aggregated across several regions.
	Region string

	// MinVelocity drops records at or below this views-per-hour floor.
	// Some callers set it to 0 with RequireVelocity to suppress
	// likely-stale results.
	RequireVelocity bool

	// Now anchors the time-window cutoffs. The zero value means "now".
	Now time.Time
}

// Select filters records and orders them by the sort key. The input slice
// is never mutated; ties under any sort key keep the aggregator's
// insertion order.
func Select(records []model.VideoRecord, sortKey model.SortKey, filters Filters) []model.VideoRecord {
	now := filters.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	selected := make([]model.VideoRecord, 0, len(records))
	for _, record := range records {
		if matches(record, filters, now) {
			selected = append(selected, record)
		}
	}

	switch sortKey {
	case model.SortViews:
		sort.SliceStable(selected, func(i, j int) bool {
			return selected[i].Views > selected[j].Views
		})
	case model.SortPublished:
		sort.SliceStable(selected, func(i, j int) bool {
			return selected[i].PublishedAt.After(selected[j].PublishedAt)
		})
	case model.SortVelocity:
		sort.SliceStable(selected, func(i, j int) bool {
			return selected[i].Velocity > selected[j].Velocity
		})
	default:
		// relevance keeps the aggregator merge order
	}

	return selected
}

func matches(record model.VideoRecord, filters Filters, now time.Time) bool {
	switch filters.VideoType {
	case model.VideoTypeRegular:
		if record.LiveBroadcast || metrics.IsShortForm(record.DurationSeconds) {
			return false
		}
	case model.VideoTypeShort:
		if !metrics.IsShortForm(record.DurationSeconds) {
			return false
		}
	case model.VideoTypeLive:
		if !record.LiveBroadcast {
			return false
		}
	}

	if cutoff, ok := windowCutoff(filters.Window, now); ok && record.PublishedAt.Before(cutoff) {
		return false
	}

	if filters.Region != "" && record.Region != filters.Region {
		return false
	}

	if filters.RequireVelocity && record.Velocity <= 0 {
		return false
	}

	return true
}

// windowCutoff derives the published-after cutoff for a time window.
// ok is false when the window does not constrain anything.
func windowCutoff(window model.TimeWindow, now time.Time) (time.Time, bool) {
	switch window {
	case model.WindowToday:
		return now.AddDate(0, 0, -1), true
	case model.WindowWeek:
		return now.AddDate(0, 0, -7), true
	case model.WindowMonth:
		return now.AddDate(0, -1, 0), true
	case model.WindowYear:
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}
