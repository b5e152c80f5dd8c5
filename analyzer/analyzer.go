// Package analyzer runs the full aggregation, scoring and recommendation
// pipeline for one request
package analyzer

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/researchaccelerator-hub/youtube-trend-explorer/aggregate"
	"github.com/researchaccelerator-hub/youtube-trend-explorer/client"
	"github.com/researchaccelerator-hub/youtube-trend-explorer/common"
	"github.com/researchaccelerator-hub/youtube-trend-explorer/keywords"
	"github.com/researchaccelerator-hub/youtube-trend-explorer/model"
	"github.com/researchaccelerator-hub/youtube-trend-explorer/ranking"
	"github.com/researchaccelerator-hub/youtube-trend-explorer/recommend"
)

// Request describes one analysis pass. Everything is request-scoped;
// nothing survives into the next call.
type Request struct {
	// Keyword to analyze. Empty means trending mode.
	Keyword string

	// Region code for searches, trending charts and the region filter
	Region string

	// PerOrderLimit caps candidate ids per ranking order (default 15)
	PerOrderLimit int64

	// SortKey picks the display ordering (default relevance)
	SortKey model.SortKey

	// Filters are applied conjunctively after aggregation
	Filters ranking.Filters

	// TopKeywords is how many ranked terms to extract (default 10)
	TopKeywords int

	// TagBudget caps the generated tag string (default 500)
	TagBudget int

	// Stopwords used by the extractor and tag generator. Nil means the
	// built-in default set.
	Stopwords map[string]struct{}
}

// Analyzer glues the aggregator, filter engine, keyword extractor and
// recommendation generator into one synchronous pipeline
type Analyzer struct {
	aggregator *aggregate.Aggregator
}

// New creates an analyzer over a metadata provider
func New(c client.VideoClient) *Analyzer {
	return &Analyzer{aggregator: aggregate.NewAggregator(c)}
}

// Analyze runs one request to completion. The wall clock is sampled once
// here and threaded through velocity computation and time-window filters,
// so every record in the pass is scored against the same instant.
//
// An empty result set is a normal outcome: the result carries empty
// collections and the error is nil. Only transport failures return an
// error.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*model.AnalysisResult, error) {
	now := time.Now().UTC()
	requestID := common.GenerateRequestID()

	if req.PerOrderLimit <= 0 {
		req.PerOrderLimit = 15
	}
	if req.TopKeywords <= 0 {
		req.TopKeywords = 10
	}
	if req.TagBudget <= 0 {
		req.TagBudget = recommend.DefaultTagBudget
	}
	if req.Stopwords == nil {
		req.Stopwords = keywords.DefaultStopwords()
	}

	log.Info().
		Str("request_id", requestID).
		Str("keyword", req.Keyword).
		Str("region", req.Region).
		Str("sort", string(req.SortKey)).
		Msg("Starting analysis")

	records, err := a.aggregator.Aggregate(ctx, aggregate.Request{
		Keyword:       req.Keyword,
		Region:        req.Region,
		PerOrderLimit: req.PerOrderLimit,
		Now:           now,
	})
	if err != nil {
		return nil, err
	}

	req.Filters.Now = now
	selected := ranking.Select(records, req.SortKey, req.Filters)

	titles := make([]string, 0, len(selected))
	for _, record := range selected {
		titles = append(titles, record.Title)
	}

	stats := keywords.ExtractTop(titles, req.Stopwords, req.TopKeywords)

	result := &model.AnalysisResult{
		RequestID:   requestID,
		Keyword:     req.Keyword,
		GeneratedAt: now,
		Records:     selected,
		Keywords:    stats,
		Recommendations: model.RecommendationSet{
			Titles:    recommend.Titles(req.Keyword, selected, stats),
			TagString: recommend.TagString(titles, req.Stopwords, req.TagBudget),
		},
	}

	log.Info().
		Str("request_id", requestID).
		Int("record_count", len(selected)).
		Int("keyword_count", len(stats)).
		Int("title_count", len(result.Recommendations.Titles)).
		Msg("Analysis complete")

	return result, nil
}
