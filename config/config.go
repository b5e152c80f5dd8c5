// Package config provides configuration structures for the trend explorer
package config

import (
	"fmt"
)

// searchResultCap is the YouTube search API ceiling on maxResults
const searchResultCap = 50

// AnalyzerConfig holds the request-independent settings of one explorer
// run. The API key is passed in explicitly per run; it is never stored
// beyond the process lifetime.
type AnalyzerConfig struct {
	// APIKey authenticates against the YouTube Data API
	APIKey string `yaml:"api_key" json:"api_key"`

	// Region is the default region code for searches and trending charts
	Region string `yaml:"region" json:"region"`

	// PerOrderLimit caps the candidate ids fetched per ranking order
	PerOrderLimit int64 `yaml:"per_order_limit" json:"per_order_limit"`

	// TopKeywords is how many ranked terms to extract from the corpus
	TopKeywords int `yaml:"top_keywords" json:"top_keywords"`

	// TagBudget is the character cap of the generated tag string
	TagBudget int `yaml:"tag_budget" json:"tag_budget"`

	// StopwordsFile optionally points at a file of extra stopwords,
	// one per line
	StopwordsFile string `yaml:"stopwords_file" json:"stopwords_file,omitempty"`

	// LogLevel sets the zerolog level ("debug", "info", "warn", "error")
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// DefaultAnalyzerConfig returns a configuration with sensible defaults
func DefaultAnalyzerConfig() *AnalyzerConfig {
	return &AnalyzerConfig{
		Region:        "US",
		PerOrderLimit: 15,
		TopKeywords:   10,
		TagBudget:     500,
		LogLevel:      "info",
	}
}

// Validate checks if the configuration is valid
func (c *AnalyzerConfig) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api_key is required (set --api-key or YOUTUBE_API_KEY)")
	}

	if c.PerOrderLimit < 1 {
		return fmt.Errorf("per_order_limit must be at least 1")
	}

	if c.PerOrderLimit > searchResultCap {
		return fmt.Errorf("per_order_limit cannot exceed the API cap of %d", searchResultCap)
	}

	if c.TopKeywords < 1 {
		return fmt.Errorf("top_keywords must be at least 1")
	}

	if c.TagBudget < 10 {
		return fmt.Errorf("tag_budget must be at least 10")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level '%s', must be one of: debug, info, warn, error", c.LogLevel)
	}

	return nil
}
