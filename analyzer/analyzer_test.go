package analyzer

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/researchaccelerator-hub/youtube-trend-explorer/client"
	"github.com/researchaccelerator-hub/youtube-trend-explorer/model"
	"github.com/researchaccelerator-hub/youtube-trend-explorer/recommend"
)

// stubClient implements client.VideoClient with canned responses
type stubClient struct {
	searchIDs map[model.Order][]string
	details   map[string]*ytapi.Video
	trending  []string
	searchErr error
}

func (s *stubClient) Connect(ctx context.Context) error    { return nil }
func (s *stubClient) Disconnect(ctx context.Context) error { return nil }
func (s *stubClient) MaxBatchSize() int                    { return 50 }

func (s *stubClient) Search(ctx context.Context, q client.SearchQuery) ([]string, error) {
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.searchIDs[q.Order], nil
}

func (s *stubClient) VideosDetail(ctx context.Context, ids []string) ([]*ytapi.Video, error) {
	items := make([]*ytapi.Video, 0, len(ids))
	for _, id := range ids {
		if item, ok := s.details[id]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *stubClient) Trending(ctx context.Context, region string, limit int64) ([]string, error) {
	return s.trending, nil
}

func stubVideo(id, title string, views uint64, publishedAt time.Time) *ytapi.Video {
	return &ytapi.Video{
		Id: id,
		Snippet: &ytapi.VideoSnippet{
			Title:       title,
			PublishedAt: publishedAt.Format(time.RFC3339),
		},
		Statistics:     &ytapi.VideoStatistics{ViewCount: views},
		ContentDetails: &ytapi.VideoContentDetails{Duration: "PT10M"},
	}
}

func TestAnalyzeEndToEnd(t *testing.T) {
	recent := time.Now().UTC().Add(-2 * time.Hour)

	stub := &stubClient{
		searchIDs: map[model.Order][]string{
			model.OrderRelevance: {"v1", "v2"},
			model.OrderViewCount: {"v2", "v3"},
			model.OrderDate:      {"v3"},
		},
		details: map[string]*ytapi.Video{
			"v1": stubVideo("v1", "Healing flute meditation music", 1000, recent),
			"v2": stubVideo("v2", "Relaxing flute sounds for sleep", 50000, recent),
			"v3": stubVideo("v3", "Deep meditation flute session", 200, recent),
		},
	}

	result, err := New(stub).Analyze(context.Background(), Request{Keyword: "flute"})
	require.NoError(t, err)

	assert.NotEmpty(t, result.RequestID)
	assert.Equal(t, "flute", result.Keyword)
	require.Len(t, result.Records, 3)
	assert.Equal(t, "v1", result.Records[0].ID, "relevance order wins the merge")

	// Velocity invariant across the whole set
	for _, record := range result.Records {
		assert.GreaterOrEqual(t, record.Velocity, float64(0))
	}

	// "flute" appears in all three titles and leads the keyword ranking
	require.NotEmpty(t, result.Keywords)
	assert.Equal(t, "flute", result.Keywords[0].Term)
	assert.Equal(t, 3, result.Keywords[0].Count)

	require.NotEmpty(t, result.Recommendations.Titles)
	for _, title := range result.Recommendations.Titles {
		assert.GreaterOrEqual(t, len(title), recommend.MinTitleLength)
	}
	assert.LessOrEqual(t, len(result.Recommendations.TagString), recommend.DefaultTagBudget)
	assert.NotEmpty(t, result.Recommendations.TagString)
}

func TestAnalyzeSortAndFilterApplied(t *testing.T) {
	recent := time.Now().UTC().Add(-3 * time.Hour)

	stub := &stubClient{
		searchIDs: map[model.Order][]string{
			model.OrderRelevance: {"low", "high"},
		},
		details: map[string]*ytapi.Video{
			"low":  stubVideo("low", "low views", 100, recent),
			"high": stubVideo("high", "high views", 500, recent),
		},
	}

	result, err := New(stub).Analyze(context.Background(), Request{
		Keyword: "views",
		SortKey: model.SortViews,
	})
	require.NoError(t, err)
	require.Len(t, result.Records, 2)
	assert.Equal(t, "high", result.Records[0].ID)
	assert.Equal(t, "low", result.Records[1].ID)
}

func TestAnalyzeEmptyResultIsNormal(t *testing.T) {
	stub := &stubClient{searchIDs: map[model.Order][]string{}}

	result, err := New(stub).Analyze(context.Background(), Request{Keyword: "nothing"})
	require.NoError(t, err)
	assert.Empty(t, result.Records)
	assert.Empty(t, result.Keywords)
}

func TestAnalyzeTransportFailureSurfaces(t *testing.T) {
	stub := &stubClient{searchErr: fmt.Errorf("quota exhausted")}

	_, err := New(stub).Analyze(context.Background(), Request{Keyword: "anything"})
	require.Error(t, err)
}

func TestAnalyzeTrendingMode(t *testing.T) {
	recent := time.Now().UTC().Add(-1 * time.Hour)

	stub := &stubClient{
		trending: []string{"t1"},
		details: map[string]*ytapi.Video{
			"t1": stubVideo("t1", "Trending everywhere today", 9000, recent),
		},
	}

	result, err := New(stub).Analyze(context.Background(), Request{Keyword: "", Region: "ID"})
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "t1", result.Records[0].ID)
}
