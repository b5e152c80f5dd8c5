package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

// youtubeMaxBatchSize is the YouTube Data API cap on ids per videos.list call
const youtubeMaxBatchSize = 50

// YouTubeDataClient implements the VideoClient interface on top of the
// YouTube Data API v3
type YouTubeDataClient struct {
	service *ytapi.Service
	apiKey  string
}

// NewYouTubeDataClient creates a new YouTube data client
func NewYouTubeDataClient(apiKey string) (*YouTubeDataClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	return &YouTubeDataClient{
		apiKey: apiKey,
	}, nil
}

// Connect establishes a connection to the YouTube API
func (c *YouTubeDataClient) Connect(ctx context.Context) error {
	log.Info().Msg("Connecting to YouTube API")

	// Create a new HTTP client with default timeout
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	service, err := ytapi.NewService(ctx, option.WithAPIKey(c.apiKey), option.WithHTTPClient(httpClient))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create YouTube service")
		return fmt.Errorf("failed to create YouTube service: %w", err)
	}

	c.service = service
	log.Info().Msg("Connected to YouTube API successfully")
	return nil
}

// Disconnect closes the connection to the YouTube API
func (c *YouTubeDataClient) Disconnect(ctx context.Context) error {
	// No explicit disconnect needed for the YouTube API client
	c.service = nil
	return nil
}

// MaxBatchSize reports the per-request identifier cap for detail calls
func (c *YouTubeDataClient) MaxBatchSize() int {
	return youtubeMaxBatchSize
}

// Search issues one ranked search and returns the matching video ids
func (c *YouTubeDataClient) Search(ctx context.Context, q SearchQuery) ([]string, error) {
	if c.service == nil {
		return nil, fmt.Errorf("YouTube client not connected")
	}

	log.Debug().
		Str("keyword", q.Keyword).
		Str("order", string(q.Order)).
		Int64("limit", q.Limit).
		Msg("Searching YouTube")

	call := c.service.Search.List([]string{"id"}).
		Q(q.Keyword).
		Type("video").
		Order(string(q.Order)).
		MaxResults(q.Limit).
		Context(ctx)

	if q.Region != "" {
		call = call.RegionCode(q.Region)
	}
	if q.EventType != "" {
		call = call.EventType(q.EventType)
	}
	if !q.PublishedAfter.IsZero() {
		call = call.PublishedAfter(q.PublishedAfter.UTC().Format(time.RFC3339))
	}
	if !q.PublishedBefore.IsZero() {
		call = call.PublishedBefore(q.PublishedBefore.UTC().Format(time.RFC3339))
	}

	response, err := call.Do()
	if err != nil {
		log.Error().Err(err).Str("keyword", q.Keyword).Str("order", string(q.Order)).Msg("YouTube search failed")
		return nil, fmt.Errorf("youtube search (order %s) failed: %w", q.Order, err)
	}

	ids := make([]string, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		ids = append(ids, item.Id.VideoId)
	}

	log.Debug().Int("id_count", len(ids)).Str("order", string(q.Order)).Msg("YouTube search returned ids")
	return ids, nil
}

// VideosDetail resolves up to MaxBatchSize ids into full video items with
// snippet, statistics and contentDetails parts
func (c *YouTubeDataClient) VideosDetail(ctx context.Context, ids []string) ([]*ytapi.Video, error) {
	if len(ids) == 0 {
		return []*ytapi.Video{}, nil
	}
	if len(ids) > youtubeMaxBatchSize {
		return nil, fmt.Errorf("videos detail batch of %d exceeds cap of %d", len(ids), youtubeMaxBatchSize)
	}
	if c.service == nil {
		return nil, fmt.Errorf("YouTube client not connected")
	}

	response, err := c.service.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		log.Error().Err(err).Strs("video_ids", ids).Msg("Failed to get video details")
		return nil, fmt.Errorf("youtube videos detail failed: %w", err)
	}

	return response.Items, nil
}

// Trending returns the ids of the most popular chart for a region
func (c *YouTubeDataClient) Trending(ctx context.Context, region string, limit int64) ([]string, error) {
	if c.service == nil {
		return nil, fmt.Errorf("YouTube client not connected")
	}

	log.Debug().Str("region", region).Int64("limit", limit).Msg("Fetching trending chart")

	call := c.service.Videos.List([]string{"id"}).
		Chart("mostPopular").
		MaxResults(limit).
		Context(ctx)
	if region != "" {
		call = call.RegionCode(region)
	}

	response, err := call.Do()
	if err != nil {
		log.Error().Err(err).Str("region", region).Msg("Failed to get trending chart")
		return nil, fmt.Errorf("youtube trending chart failed: %w", err)
	}

	ids := make([]string, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Id == "" {
			continue
		}
		ids = append(ids, item.Id)
	}

	return ids, nil
}
