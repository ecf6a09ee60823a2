package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// defaultWordsFile is where the word list lives unless WORDS_FILE overrides it.
const defaultWordsFile = "data/words.json"

// wordsFilePath returns the configured word list location.
func wordsFilePath() string {
	if path := os.Getenv("WORDS_FILE"); path != "" {
		return path
	}
	return defaultWordsFile
}

// loadWords reads and validates the word list. Every entry must be exactly
// WordLength alphabetic characters; entries are normalized to uppercase.
// Any malformed entry, or an empty list, is a ConfigurationError: a broken
// word list is fatal at startup, never a per-request condition.
func loadWords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("reading word list %s: %v", path, err)}
	}

	var wl WordList
	if err := json.Unmarshal(data, &wl); err != nil {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("parsing word list %s: %v", path, err)}
	}

	words := lo.Map(wl.Words, func(w string, _ int) string {
		return normalizeGuess(w)
	})
	for _, w := range words {
		if len(w) != WordLength {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("word %q is not %d letters", w, WordLength)}
		}
		if !isAlphaUpper(w) {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("word %q contains non-alphabetic characters", w)}
		}
	}
	if len(words) == 0 {
		return nil, &ConfigurationError{Reason: "word list is empty"}
	}

	log.Info().Int("count", len(words)).Str("file", path).Msg("loaded word list")
	return words, nil
}
