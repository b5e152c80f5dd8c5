package common

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// GenerateRequestID generates a unique identifier for one analysis request
func GenerateRequestID() string {
	return uuid.New().String()
}

// LoadStopwords reads extra stopwords from a file, one per line, and
// merges them into base. It ignores empty lines and lines starting with
// a '#' character (comments). The base map is modified in place and
// returned.
func LoadStopwords(filename string, base map[string]struct{}) (map[string]struct{}, error) {
	log.Debug().Str("filename", filename).Msg("Reading stopwords from file")

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read stopwords file: %w", err)
	}

	added := 0
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.ToLower(strings.TrimSpace(line))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		base[line] = struct{}{}
		added++
	}

	log.Debug().Int("stopword_count", added).Msg("Stopwords read from file")
	return base, nil
}
