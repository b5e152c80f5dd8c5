// Package normalize converts raw YouTube API items into VideoRecords
package normalize

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/researchaccelerator-hub/youtube-trend-explorer/metrics"
	"github.com/researchaccelerator-hub/youtube-trend-explorer/model"
)

// Video maps one raw API item into a VideoRecord. The second return value
// is false when the item is unusable (no id, no snippet, or an
// unparseable publish time) and must be skipped; a bad item never fails
// the whole batch.
//
// now is the single per-request sample used for velocity, so records in
// one batch stay comparable.
func Video(item *ytapi.Video, region string, now time.Time) (model.VideoRecord, bool) {
	if item == nil || item.Id == "" || item.Snippet == nil {
		return model.VideoRecord{}, false
	}

	publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
	if err != nil {
		log.Warn().Err(err).Str("video_id", item.Id).Str("published_at", item.Snippet.PublishedAt).Msg("Skipping video with unparseable publish time")
		return model.VideoRecord{}, false
	}

	var views int64
	if item.Statistics != nil {
		views = int64(item.Statistics.ViewCount)
	}

	var durationSeconds int64
	if item.ContentDetails != nil {
		durationSeconds = metrics.ParseDuration(item.ContentDetails.Duration)
	}

	record := model.VideoRecord{
		ID:              item.Id,
		Title:           item.Snippet.Title,
		Channel:         item.Snippet.ChannelTitle,
		ChannelID:       item.Snippet.ChannelId,
		URL:             fmt.Sprintf("https://www.youtube.com/watch?v=%s", item.Id),
		PublishedAt:     publishedAt.UTC(),
		Views:           views,
		DurationSeconds: durationSeconds,
		ThumbnailURL:    bestThumbnail(item.Snippet.Thumbnails),
		Velocity:        metrics.ComputeVelocity(views, publishedAt, now),
		Tags:            item.Snippet.Tags,
		LiveBroadcast:   item.Snippet.LiveBroadcastContent == "live",
		Region:          region,
	}

	return record, true
}

// bestThumbnail prefers the highest-resolution variant available, falling
// back through the smaller ones to an empty string
func bestThumbnail(details *ytapi.ThumbnailDetails) string {
	if details == nil {
		return ""
	}
	for _, thumb := range []*ytapi.Thumbnail{details.Maxres, details.High, details.Medium, details.Default} {
		if thumb != nil && thumb.Url != "" {
			return thumb.Url
		}
	}
	return ""
}
