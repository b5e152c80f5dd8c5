// Package standalone wires the client, analyzer and text renderer into
// one synchronous CLI run
package standalone

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/researchaccelerator-hub/youtube-trend-explorer/analyzer"
	"github.com/researchaccelerator-hub/youtube-trend-explorer/client"
	"github.com/researchaccelerator-hub/youtube-trend-explorer/common"
	"github.com/researchaccelerator-hub/youtube-trend-explorer/config"
	"github.com/researchaccelerator-hub/youtube-trend-explorer/keywords"
	"github.com/researchaccelerator-hub/youtube-trend-explorer/metrics"
	"github.com/researchaccelerator-hub/youtube-trend-explorer/model"
)

// Run executes one analysis request end to end and renders the result to
// stdout. A transport failure comes back as an error; an empty result set
// renders as "no videos found" and returns nil.
func Run(cfg *config.AnalyzerConfig, req analyzer.Request) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stopwords := keywords.DefaultStopwords()
	if cfg.StopwordsFile != "" {
		merged, err := common.LoadStopwords(cfg.StopwordsFile, stopwords)
		if err != nil {
			return err
		}
		stopwords = merged
	}
	req.Stopwords = stopwords

	if req.Region == "" {
		req.Region = cfg.Region
	}
	if req.PerOrderLimit <= 0 {
		req.PerOrderLimit = cfg.PerOrderLimit
	}
	if req.TopKeywords <= 0 {
		req.TopKeywords = cfg.TopKeywords
	}
	if req.TagBudget <= 0 {
		req.TagBudget = cfg.TagBudget
	}

	ytClient, err := client.NewYouTubeDataClient(cfg.APIKey)
	if err != nil {
		return err
	}
	if err := ytClient.Connect(ctx); err != nil {
		return err
	}
	defer func() {
		if err := ytClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("Error disconnecting YouTube client")
		}
	}()

	result, err := analyzer.New(ytClient).Analyze(ctx, req)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	Render(os.Stdout, result)
	return nil
}

// Render writes a plain-text view of an analysis result. This is the
// whole presentation layer: everything it consumes is plain data from
// the result.
func Render(w io.Writer, result *model.AnalysisResult) {
	if len(result.Records) == 0 {
		fmt.Fprintf(w, "No videos found for %q.\n", result.Keyword)
		return
	}

	heading := result.Keyword
	if heading == "" {
		heading = "trending"
	}
	fmt.Fprintf(w, "%d videos for %q\n\n", len(result.Records), heading)

	for i, record := range result.Records {
		fmt.Fprintf(w, "%2d. %s\n", i+1, record.Title)
		fmt.Fprintf(w, "    %s | %s views | %.0f VPH | %s | %s\n",
			record.Channel,
			metrics.FormatViews(record.Views),
			record.Velocity,
			metrics.RelativeAge(result.GeneratedAt, record.PublishedAt),
			metrics.FormatDuration(record.DurationSeconds),
		)
		fmt.Fprintf(w, "    %s\n", record.URL)
	}

	if len(result.Keywords) > 0 {
		fmt.Fprintf(w, "\nTop keywords:\n")
		for _, stat := range result.Keywords {
			fmt.Fprintf(w, "  %s (%d)\n", stat.Term, stat.Count)
		}
	}

	if len(result.Recommendations.Titles) > 0 {
		fmt.Fprintf(w, "\nRecommended titles:\n")
		for _, title := range result.Recommendations.Titles {
			fmt.Fprintf(w, "  - %s\n", title)
		}
	}

	if result.Recommendations.TagString != "" {
		fmt.Fprintf(w, "\nRecommended tags:\n  %s\n", result.Recommendations.TagString)
	}
}
