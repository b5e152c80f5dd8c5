// Package keywords extracts ranked terms from video title corpora
package keywords

import (
	"regexp"
	"sort"
	"strings"

	"github.com/researchaccelerator-hub/youtube-trend-explorer/model"
)

// minTokenLength is the shortest token worth counting
const minTokenLength = 3

var wordPattern = regexp.MustCompile(`\w+`)

// Tokenize splits text on non-word-character boundaries, lower-cases it,
// and keeps only qualifying tokens: at least three characters and not a
// pure digit run. Stopword filtering is the caller's choice.
func Tokenize(text string, stopwords map[string]struct{}) []string {
	var tokens []string
	for _, raw := range wordPattern.FindAllString(text, -1) {
		token := strings.ToLower(raw)
		if len(token) < minTokenLength {
			continue
		}
		if isDigits(token) {
			continue
		}
		if _, stop := stopwords[token]; stop {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// ExtractTop counts qualifying tokens across the whole titles corpus and
// returns the k most frequent terms. Ties are broken by first-encounter
// order, so the ranking is stable for a given corpus.
func ExtractTop(titles []string, stopwords map[string]struct{}, k int) []model.KeywordStat {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string

	for _, title := range titles {
		for _, token := range Tokenize(title, stopwords) {
			if _, seen := counts[token]; !seen {
				firstSeen[token] = len(order)
				order = append(order, token)
			}
			counts[token]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if k >= 0 && len(order) > k {
		order = order[:k]
	}

	stats := make([]model.KeywordStat, 0, len(order))
	for _, term := range order {
		stats = append(stats, model.KeywordStat{Term: term, Count: counts[term]})
	}
	return stats
}

func isDigits(token string) bool {
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
