package client

import (
	"context"
	"time"

	ytapi "google.golang.org/api/youtube/v3"

	"github.com/researchaccelerator-hub/youtube-trend-explorer/model"
)

// SearchQuery describes one ranked search request against the provider
type SearchQuery struct {
	Keyword         string
	Order           model.Order
	Limit           int64
	Region          string
	EventType       string // "live" to restrict to live broadcasts
	PublishedAfter  time.Time
	PublishedBefore time.Time
}

// VideoClient abstracts the video metadata provider. The aggregator only
// ever talks to this interface; the production implementation sits on the
// YouTube Data API v3.
type VideoClient interface {
	// Connect establishes a connection to the provider
	Connect(ctx context.Context) error

	// Disconnect releases the connection to the provider
	Disconnect(ctx context.Context) error

	// Search returns up to q.Limit video identifiers for one ranked query.
	// A transport failure is returned as an error; an empty result is a
	// normal empty slice.
	Search(ctx context.Context, q SearchQuery) ([]string, error)

	// VideosDetail resolves identifiers into raw video items. Callers must
	// keep len(ids) within MaxBatchSize; an empty ids slice returns an
	// empty result without touching the provider.
	VideosDetail(ctx context.Context, ids []string) ([]*ytapi.Video, error)

	// Trending returns the identifiers of the platform-curated most
	// popular list for a region.
	Trending(ctx context.Context, region string, limit int64) ([]string, error)

	// MaxBatchSize reports the provider's per-request identifier cap for
	// VideosDetail calls.
	MaxBatchSize() int
}
