package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/researchaccelerator-hub/youtube-trend-explorer/analyzer"
	"github.com/researchaccelerator-hub/youtube-trend-explorer/config"
	"github.com/researchaccelerator-hub/youtube-trend-explorer/model"
	"github.com/researchaccelerator-hub/youtube-trend-explorer/ranking"
	"github.com/researchaccelerator-hub/youtube-trend-explorer/standalone"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal().Err(err).Msg("trend-explorer failed")
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trend-explorer",
		Short: "Explore trending and popular YouTube videos for a keyword",
		Long: `trend-explorer queries the YouTube Data API for a keyword across
several ranking orders, merges and deduplicates the results, scores each
video by views-per-hour, and derives title and tag recommendations from
the aggregated corpus. Without a keyword it fetches the trending chart
for the configured region.`,
		SilenceUsage: true,
		RunE:         runAnalysis,
	}

	flags := cmd.Flags()
	flags.String("keyword", "", "Keyword to search for (empty fetches the trending chart)")
	flags.String("sort", "relevance", "Display order: relevance, views, published, velocity")
	flags.Int64("limit", 15, "Candidate videos to fetch per ranking order (max 50)")
	flags.String("region", "US", "Region code for searches and the trending chart")
	flags.String("type", "any", "Video type filter: any, regular, short, live")
	flags.String("window", "any", "Publish window filter: any, today, week, month, year")
	flags.Bool("active-only", false, "Drop videos with zero views-per-hour")
	flags.Int("top-keywords", 10, "Number of ranked keywords to extract")
	flags.Int("tag-budget", 500, "Character cap of the generated tag string")
	flags.String("stopwords-file", "", "Optional file of extra stopwords, one per line")
	flags.String("api-key", "", "YouTube Data API key (or set YOUTUBE_API_KEY)")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")

	viper.SetEnvPrefix("TREND")
	// Dashed flag keys map to underscored variables (TREND_LOG_LEVEL)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlags(flags)
	_ = viper.BindEnv("api-key", "YOUTUBE_API_KEY")

	return cmd
}

func runAnalysis(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultAnalyzerConfig()
	cfg.APIKey = viper.GetString("api-key")
	cfg.Region = viper.GetString("region")
	cfg.PerOrderLimit = viper.GetInt64("limit")
	cfg.TopKeywords = viper.GetInt("top-keywords")
	cfg.TagBudget = viper.GetInt("tag-budget")
	cfg.StopwordsFile = viper.GetString("stopwords-file")
	cfg.LogLevel = viper.GetString("log-level")

	setupLogging(cfg.LogLevel)

	req := analyzer.Request{
		Keyword: viper.GetString("keyword"),
		SortKey: model.SortKey(viper.GetString("sort")),
		Filters: ranking.Filters{
			VideoType:       model.VideoType(viper.GetString("type")),
			Window:          model.TimeWindow(viper.GetString("window")),
			RequireVelocity: viper.GetBool("active-only"),
		},
	}

	return standalone.Run(cfg, req)
}

func setupLogging(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
