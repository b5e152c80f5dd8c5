package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAnalyzerConfig(t *testing.T) {
	cfg := DefaultAnalyzerConfig()

	assert.Equal(t, int64(15), cfg.PerOrderLimit)
	assert.Equal(t, 10, cfg.TopKeywords)
	assert.Equal(t, 500, cfg.TagBudget)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	valid := func() *AnalyzerConfig {
		cfg := DefaultAnalyzerConfig()
		cfg.APIKey = "test-key"
		return cfg
	}

	tests := []struct {
		name        string
		mutate      func(*AnalyzerConfig)
		expectError string
	}{
		{
			name:   "valid defaults with key",
			mutate: func(c *AnalyzerConfig) {},
		},
		{
			name:        "missing api key",
			mutate:      func(c *AnalyzerConfig) { c.APIKey = "" },
			expectError: "api_key",
		},
		{
			name:        "zero per-order limit",
			mutate:      func(c *AnalyzerConfig) { c.PerOrderLimit = 0 },
			expectError: "per_order_limit",
		},
		{
			name:        "per-order limit above API cap",
			mutate:      func(c *AnalyzerConfig) { c.PerOrderLimit = 51 },
			expectError: "per_order_limit",
		},
		{
			name:        "zero top keywords",
			mutate:      func(c *AnalyzerConfig) { c.TopKeywords = 0 },
			expectError: "top_keywords",
		},
		{
			name:        "tiny tag budget",
			mutate:      func(c *AnalyzerConfig) { c.TagBudget = 5 },
			expectError: "tag_budget",
		},
		{
			name:        "bad log level",
			mutate:      func(c *AnalyzerConfig) { c.LogLevel = "verbose" },
			expectError: "log_level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.expectError == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.expectError)
			}
		})
	}
}
