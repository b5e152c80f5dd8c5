// Package model contains the data types shared across the trend explorer
package model

import "time"

// Order is a ranking criterion requested from the search API
type Order string

const (
	// OrderRelevance asks the API for its default relevance ranking
	OrderRelevance Order = "relevance"

	// OrderViewCount asks the API for a view-count ranking
	OrderViewCount Order = "viewCount"

	// OrderDate asks the API for a most-recent-first ranking
	OrderDate Order = "date"
)

// SearchOrders is the fixed priority order used when merging multi-order
// search results. Relevance hits win position over viewCount hits, which
// win over date hits.
var SearchOrders = []Order{OrderRelevance, OrderViewCount, OrderDate}

// SortKey selects the display ordering of an aggregated result set
type SortKey string

const (
	// SortRelevance preserves the aggregator merge order
	SortRelevance SortKey = "relevance"

	// SortViews orders by view count, highest first
	SortViews SortKey = "views"

	// SortPublished orders by publish time, newest first
	SortPublished SortKey = "published"

	// SortVelocity orders by views-per-hour, highest first
	SortVelocity SortKey = "velocity"
)

// VideoType is a categorical filter over the kind of video
type VideoType string

const (
	VideoTypeAny     VideoType = "any"
	VideoTypeRegular VideoType = "regular"
	VideoTypeShort   VideoType = "short"
	VideoTypeLive    VideoType = "live"
)

// TimeWindow is a categorical filter over publish recency
type TimeWindow string

const (
	WindowAny   TimeWindow = "any"
	WindowToday TimeWindow = "today"
	WindowWeek  TimeWindow = "week"
	WindowMonth TimeWindow = "month"
	WindowYear  TimeWindow = "year"
)

// VideoRecord represents one video in an aggregated result set. Records
// are built once during normalization, annotated with Velocity, and never
// mutated afterwards; filtering and sorting produce new slices.
//
// DurationSeconds of 0 means the duration was absent or unparseable. An
// unknown duration is excluded from duration averages and is never
// classified as short-form.
type VideoRecord struct {
	ID              string
	Title           string
	Channel         string
	ChannelID       string
	URL             string
	PublishedAt     time.Time
	Views           int64
	DurationSeconds int64
	ThumbnailURL    string
	Velocity        float64
	Tags            []string
	LiveBroadcast   bool
	Region          string
}

// KeywordStat is one ranked term from the title corpus
type KeywordStat struct {
	Term  string
	Count int
}

// RecommendationSet holds the generated title candidates and the bounded
// tag string derived from one result set
type RecommendationSet struct {
	Titles    []string
	TagString string
}

// AnalysisResult is everything the engine hands to the presentation layer
// for one request. It is request-scoped and never cached.
type AnalysisResult struct {
	RequestID       string
	Keyword         string
	GeneratedAt     time.Time
	Records         []VideoRecord
	Keywords        []KeywordStat
	Recommendations RecommendationSet
}
