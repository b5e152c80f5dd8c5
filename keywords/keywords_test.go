package keywords

import (
	"reflect"
	"testing"

	"github.com/researchaccelerator-hub/youtube-trend-explorer/model"
)

func TestTokenize(t *testing.T) {
	stopwords := map[string]struct{}{"the": {}}

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "splits on non-word boundaries and lowercases",
			text:     "Healing Flute | MEDITATION (relaxing)",
			expected: []string{"healing", "flute", "meditation", "relaxing"},
		},
		{
			name:     "drops short tokens",
			text:     "go to my yt channel",
			expected: []string{"channel"},
		},
		{
			name:     "drops pure digit tokens",
			text:     "100 hits of 2024 remix",
			expected: []string{"hits", "remix"},
		},
		{
			name:     "drops stopwords",
			text:     "the flute the sound",
			expected: []string{"flute", "sound"},
		},
		{
			name:     "empty text",
			text:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text, stopwords)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestExtractTopOrdersByCountThenFirstSeen(t *testing.T) {
	titles := []string{
		"flute meditation music",
		"meditation sounds",
		"flute music relaxation",
		"music music music",
	}

	got := ExtractTop(titles, nil, 4)

	expected := []model.KeywordStat{
		{Term: "music", Count: 5},
		{Term: "flute", Count: 2},
		{Term: "meditation", Count: 2},
		{Term: "sounds", Count: 1},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("ExtractTop = %v, want %v", got, expected)
	}
}

func TestExtractTopTieBreaksByFirstEncounter(t *testing.T) {
	titles := []string{"zebra apple", "apple zebra"}

	got := ExtractTop(titles, nil, 2)
	if got[0].Term != "zebra" || got[1].Term != "apple" {
		t.Errorf("ties must keep first-encounter order, got %v", got)
	}
}

func TestExtractTopRespectsLimit(t *testing.T) {
	titles := []string{"one1x two2x three3x four4x five5x"}

	got := ExtractTop(titles, nil, 3)
	if len(got) != 3 {
		t.Errorf("expected 3 keywords, got %d", len(got))
	}
}

func TestExtractTopEmptyCorpus(t *testing.T) {
	if got := ExtractTop(nil, nil, 5); len(got) != 0 {
		t.Errorf("expected no keywords from empty corpus, got %v", got)
	}
}

func TestDefaultStopwordsAreIndependentCopies(t *testing.T) {
	first := DefaultStopwords()
	first["customword"] = struct{}{}

	second := DefaultStopwords()
	if _, ok := second["customword"]; ok {
		t.Error("DefaultStopwords must return a fresh map per call")
	}
	if _, ok := second["yang"]; !ok {
		t.Error("expected Indonesian stopword in default set")
	}
}
