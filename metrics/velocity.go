// Package metrics computes the popularity metrics and human-readable
// formatting used across the trend explorer
package metrics

import (
	"math"
	"time"
)

// ComputeVelocity returns the views-per-hour velocity of a video, rounded
// to two decimal places. A non-positive age (future-dated or malformed
// publish time) yields 0 so velocity never goes negative.
//
// now must be sampled once per aggregation pass and passed in, so every
// record in a batch is scored against the same instant.
func ComputeVelocity(views int64, publishedAt, now time.Time) float64 {
	hours := now.Sub(publishedAt).Hours()
	if hours <= 0 {
		return 0
	}
	return math.Round(float64(views)/hours*100) / 100
}
