// Package aggregate merges multi-order search results into one
// deduplicated, velocity-annotated record set
package aggregate

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/researchaccelerator-hub/youtube-trend-explorer/client"
	"github.com/researchaccelerator-hub/youtube-trend-explorer/model"
	"github.com/researchaccelerator-hub/youtube-trend-explorer/normalize"
)

// Request describes one aggregation pass
type Request struct {
	// Keyword to search for. Empty means trending mode: the region's
	// most-popular chart is fetched instead of any keyword search.
	Keyword string

	// Region code passed to the provider and stamped onto records
	Region string

	// PerOrderLimit caps the candidate ids fetched per ranking order
	PerOrderLimit int64

	// Now is the single time sample used for all velocity computations in
	// this pass. The zero value means "sample at call time".
	Now time.Time
}

// Aggregator issues the ranked queries and resolves them into records
type Aggregator struct {
	client client.VideoClient
}

// NewAggregator creates an aggregator over a metadata provider
func NewAggregator(c client.VideoClient) *Aggregator {
	return &Aggregator{client: c}
}

// Aggregate runs one full aggregation pass. With a keyword it issues one
// search per ranking order (concurrently), merges the id lists in the
// fixed priority order relevance > viewCount > date with first-seen
// dedup, and resolves the ids into records. Without a keyword it fetches
// the trending chart for the region instead.
//
// A single order's search failure degrades to zero results for that
// order; only all orders failing, or the detail resolution failing, is
// surfaced as an error. Zero hits overall is a normal empty result.
func (a *Aggregator) Aggregate(ctx context.Context, req Request) ([]model.VideoRecord, error) {
	now := req.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	if req.Keyword == "" {
		return a.trending(ctx, req, now)
	}

	// Per-order results land in order-indexed slots so the merge below is
	// deterministic regardless of completion order.
	idsByOrder := make([][]string, len(model.SearchOrders))
	errsByOrder := make([]error, len(model.SearchOrders))

	var g errgroup.Group
	for i, order := range model.SearchOrders {
		g.Go(func() error {
			ids, err := a.client.Search(ctx, client.SearchQuery{
				Keyword: req.Keyword,
				Order:   order,
				Limit:   req.PerOrderLimit,
				Region:  req.Region,
			})
			if err != nil {
				log.Warn().Err(err).Str("order", string(order)).Msg("Search order failed, treating as zero results")
				errsByOrder[i] = err
				return nil
			}
			idsByOrder[i] = ids
			return nil
		})
	}
	// Closures never return errors; Wait only synchronizes the fan-out.
	_ = g.Wait()

	failed := 0
	for _, err := range errsByOrder {
		if err != nil {
			failed++
		}
	}
	if failed == len(model.SearchOrders) {
		return nil, fmt.Errorf("all search orders failed: %w", errsByOrder[0])
	}

	merged := mergeUnique(idsByOrder)
	log.Info().
		Str("keyword", req.Keyword).
		Int("unique_ids", len(merged)).
		Int("failed_orders", failed).
		Msg("Merged multi-order search results")

	return a.resolve(ctx, merged, req.Region, now)
}

// trending fetches the most-popular chart for the region. The chart is a
// single source, so nothing is deduplicated against it.
func (a *Aggregator) trending(ctx context.Context, req Request, now time.Time) ([]model.VideoRecord, error) {
	ids, err := a.client.Trending(ctx, req.Region, req.PerOrderLimit)
	if err != nil {
		return nil, fmt.Errorf("trending fetch failed: %w", err)
	}

	log.Info().Str("region", req.Region).Int("id_count", len(ids)).Msg("Fetched trending chart")
	return a.resolve(ctx, ids, req.Region, now)
}

// resolve turns an ordered id list into records via chunked detail calls.
// Output order follows the id list, not the provider's response order.
// Ids the provider no longer returns, and items normalization rejects,
// are dropped.
func (a *Aggregator) resolve(ctx context.Context, ids []string, region string, now time.Time) ([]model.VideoRecord, error) {
	if len(ids) == 0 {
		return []model.VideoRecord{}, nil
	}

	byID := make(map[string]model.VideoRecord, len(ids))
	for _, batch := range chunkIDs(ids, a.client.MaxBatchSize()) {
		items, err := a.client.VideosDetail(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("resolving video details failed: %w", err)
		}
		for _, item := range items {
			if record, ok := normalize.Video(item, region, now); ok {
				byID[record.ID] = record
			}
		}
	}

	records := make([]model.VideoRecord, 0, len(byID))
	for _, id := range ids {
		if record, ok := byID[id]; ok {
			records = append(records, record)
		}
	}
	return records, nil
}

// mergeUnique concatenates the id lists in slot order and removes
// duplicates, keeping each id at its first-seen position
func mergeUnique(idLists [][]string) []string {
	seen := make(map[string]bool)
	var merged []string
	for _, ids := range idLists {
		for _, id := range ids {
			if seen[id] {
				continue
			}
			seen[id] = true
			merged = append(merged, id)
		}
	}
	return merged
}

// chunkIDs splits ids into batches of at most size entries
func chunkIDs(ids []string, size int) [][]string {
	if size <= 0 {
		size = 1
	}
	var batches [][]string
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		batches = append(batches, ids[start:end])
	}
	return batches
}
