// Package recommend generates candidate titles and a bounded tag string
// from an aggregated result set
package recommend

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/researchaccelerator-hub/youtube-trend-explorer/keywords"
	"github.com/researchaccelerator-hub/youtube-trend-explorer/model"
)

const (
	// MinTitleLength is the floor every generated title must reach,
	// counted in characters, not bytes
	MinTitleLength = 66

	// MaxTitles caps the generated title list
	MaxTitles = 6

	// DefaultTagBudget is the character cap for the generated tag string,
	// matching the platform's tag field limit
	DefaultTagBudget = 500
)

// Padding suffixes appended to titles that fall under MinTitleLength.
// The primary one is tried first; the secondary one covers the rare case
// where the primary alone is not enough.
const (
	padPrimary   = " | Everything You Need to Know in One Video"
	padSecondary = " | Watch This Before You Start"
)

// Duration phrases, one per average-length bucket
const (
	phraseLongForm = "Full-Length Deep Dive"
	phraseHour     = "Complete Guide"
	phraseHalfHour = "In-Depth Tutorial"
	phraseDefault  = "Quick Breakdown"
)

// Titles builds up to MaxTitles distinct candidate titles from the
// primary keyword, the top extracted keywords and a duration phrase
// derived from the records. Selection is deterministic: the generator
// always uses the top-ranked keyword stats, never random sampling.
//
// Every returned title is at least MinTitleLength characters; titles are
// whitespace-collapsed and deduplicated case-insensitively, so degenerate
// keyword input yields fewer (but never malformed) titles.
func Titles(primaryKeyword string, records []model.VideoRecord, stats []model.KeywordStat) []string {
	primary := strings.TrimSpace(primaryKeyword)
	if primary == "" {
		primary = "trending"
	}

	top1, top2 := topTerms(primary, stats)
	phrase := durationPhrase(records)

	candidates := []string{
		fmt.Sprintf("%s: A %s Covering %s and %s", primary, phrase, top1, top2),
		fmt.Sprintf("The Real Story of %s: What %s Reveals About %s", primary, top1, top2),
		fmt.Sprintf("%s for Beginners: A %s on %s", primary, phrase, top1),
		fmt.Sprintf("Why Everyone Is Talking About %s: %s and %s Explained", primary, top1, top2),
		fmt.Sprintf("%s Masterclass: A %s From %s to %s", primary, phrase, top1, top2),
		fmt.Sprintf("Inside %s: How %s Changed %s Forever", primary, top1, top2),
	}

	seen := make(map[string]bool, len(candidates))
	titles := make([]string, 0, MaxTitles)
	for _, candidate := range candidates {
		title := strings.Join(strings.Fields(candidate), " ")
		if utf8.RuneCountInString(title) < MinTitleLength {
			title += padPrimary
		}
		if utf8.RuneCountInString(title) < MinTitleLength {
			title += padSecondary
		}

		key := strings.ToLower(title)
		if seen[key] {
			continue
		}
		seen[key] = true

		titles = append(titles, title)
		if len(titles) == MaxTitles {
			break
		}
	}
	return titles
}

// TagString collects the first-seen unique qualifying tokens across the
// titles (insertion order, not frequency order), joins them with ", "
// and truncates to maxChars with a "..." marker when over budget. The
// result never exceeds maxChars, marker included.
func TagString(titles []string, stopwords map[string]struct{}, maxChars int) string {
	seen := make(map[string]bool)
	var unique []string
	for _, title := range titles {
		for _, token := range keywords.Tokenize(title, stopwords) {
			if seen[token] {
				continue
			}
			seen[token] = true
			unique = append(unique, token)
		}
	}

	joined := strings.Join(unique, ", ")
	if len(joined) <= maxChars {
		return joined
	}
	if maxChars <= 3 {
		return strings.Repeat(".", maxChars)
	}
	return joined[:maxChars-3] + "..."
}

// topTerms picks the two leading keyword stats, falling back to the
// primary keyword when the corpus is too thin
func topTerms(primary string, stats []model.KeywordStat) (string, string) {
	top1, top2 := primary, primary
	if len(stats) > 0 {
		top1 = stats[0].Term
	}
	if len(stats) > 1 {
		top2 = stats[1].Term
	} else if len(stats) == 1 {
		top2 = primary
	}
	return top1, top2
}

// durationPhrase buckets the mean positive duration across the records.
// Unknown (zero) durations are excluded from the mean; a set with no
// positive durations gets the longest bucket's phrase.
func durationPhrase(records []model.VideoRecord) string {
	var total, count int64
	for _, record := range records {
		if record.DurationSeconds > 0 {
			total += record.DurationSeconds
			count++
		}
	}
	if count == 0 {
		return phraseLongForm
	}

	mean := total / count
	switch {
	case mean >= 7200:
		return phraseLongForm
	case mean >= 3600:
		return phraseHour
	case mean >= 1800:
		return phraseHalfHour
	default:
		return phraseDefault
	}
}
