package main

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

// newGameSession creates a fresh in-progress session bound to one day's word.
func newGameSession(date, secret string, at time.Time) *GameSession {
	return &GameSession{
		Date:           date,
		SecretWord:     secret,
		Guesses:        []GuessRecord{},
		Status:         StatusInProgress,
		LastAccessTime: at,
	}
}

// normalizeGuess trims and uppercases a raw guess for scoring.
func normalizeGuess(input string) string {
	return strings.ToUpper(strings.TrimSpace(input))
}

// isAlphaUpper reports whether s consists only of uppercase ASCII letters.
func isAlphaUpper(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// submitGuess runs one state-machine transition: validate, score, append,
// recompute status. A rejected guess returns a *GuessError and leaves the
// session untouched. Caller must hold the SessionManager lock.
func (g *GameSession) submitGuess(raw string) ([]LetterFeedback, error) {
	if g.Status != StatusInProgress {
		return nil, errGameOver
	}

	guess := normalizeGuess(raw)
	if len(guess) != WordLength {
		return nil, errWrongLength
	}
	if !isAlphaUpper(guess) {
		return nil, errNotAlpha
	}

	feedback, err := scoreGuess(g.SecretWord, guess)
	if err != nil {
		return nil, err
	}

	g.Guesses = append(g.Guesses, GuessRecord{Guess: guess, Feedback: feedback})

	switch {
	case allExact(feedback):
		g.Status = StatusWon
	case len(g.Guesses) >= MaxAttempts:
		g.Status = StatusLost
	}

	return feedback, nil
}

// allExact reports whether every letter of a feedback row is an exact match.
func allExact(feedback []LetterFeedback) bool {
	return lo.EveryBy(feedback, func(f LetterFeedback) bool {
		return f.Status == FeedbackExact
	})
}

// over reports whether the session has reached a terminal state.
func (g *GameSession) over() bool {
	return g.Status == StatusWon || g.Status == StatusLost
}

// snapshot copies the session into a read-only view for handlers. The secret
// word is revealed only once the game is over. Caller must hold the
// SessionManager lock.
func (g *GameSession) snapshot() SessionSnapshot {
	snap := SessionSnapshot{
		Date:              g.Date,
		Status:            g.Status,
		Guesses:           append([]GuessRecord{}, g.Guesses...),
		AttemptsUsed:      len(g.Guesses),
		AttemptsRemaining: MaxAttempts - len(g.Guesses),
	}
	if g.over() {
		snap.Answer = g.SecretWord
	}
	return snap
}
