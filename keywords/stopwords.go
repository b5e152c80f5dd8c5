package keywords

import "strings"

// defaultStopwords covers common English and Indonesian filler words.
// The Indonesian set matters because a large share of the titles the
// explorer sees are Indonesian-language.
var defaultStopwords = []string{
	// English
	"the", "and", "for", "you", "your", "with", "this", "that", "are",
	"was", "were", "have", "has", "had", "not", "but", "all", "can",
	"how", "what", "when", "where", "why", "who", "will",
	"one", "two", "out", "get", "from", "new", "best", "top",
	"video", "videos", "official", "full", "watch", "now", "more",
	// Indonesian
	"yang", "dan", "untuk", "dengan", "dari", "ini", "itu", "ada",
	"atau", "juga", "akan", "sudah", "bisa", "tidak", "saya", "kamu",
	"kita", "mereka", "dia", "pada", "dalam", "tentang", "cara",
	"terbaru", "paling", "banget",
}

// DefaultStopwords returns a fresh stopword set. Callers may add to the
// returned map without affecting other callers.
func DefaultStopwords() map[string]struct{} {
	set := make(map[string]struct{}, len(defaultStopwords))
	for _, w := range defaultStopwords {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}
