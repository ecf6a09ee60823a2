package main

import "time"

// wordEpoch anchors the daily rotation. Days are counted in UTC so every
// player sees the same word regardless of server locale.
var wordEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// dateKey returns the UTC day key (YYYY-MM-DD) for t.
func dateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// utcMidnight truncates t to the start of its UTC day.
func utcMidnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dailyWord selects the secret word for the UTC day containing t.
// The index cycles through the list: days since wordEpoch mod len(words).
// Pure function of the date, so every session and every restart agrees.
func dailyWord(t time.Time, words []string) (string, error) {
	if len(words) == 0 {
		return "", &ConfigurationError{Reason: "word list is empty"}
	}
	days := int(utcMidnight(t).Sub(wordEpoch) / (24 * time.Hour))
	idx := days % len(words)
	if idx < 0 {
		idx += len(words)
	}
	return words[idx], nil
}
