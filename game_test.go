package main

import (
	"errors"
	"testing"
	"time"
)

func newTestGame(secret string) *GameSession {
	return newGameSession("2026-08-24", secret, time.Date(2026, time.August, 24, 12, 0, 0, 0, time.UTC))
}

func mustSubmit(t *testing.T, g *GameSession, guess string) []LetterFeedback {
	t.Helper()
	feedback, err := g.submitGuess(guess)
	if err != nil {
		t.Fatalf("submitGuess(%q) returned error: %v", guess, err)
	}
	return feedback
}

func assertGuessError(t *testing.T, err error, kind string) {
	t.Helper()
	if err == nil {
		t.Fatal("expected a guess error, got nil")
	}
	var guessErr *GuessError
	if !errors.As(err, &guessErr) {
		t.Fatalf("error = %T (%v), want *GuessError", err, err)
	}
	if guessErr.Kind != kind {
		t.Errorf("error kind = %q, want %q", guessErr.Kind, kind)
	}
}

// TestSubmitGuessWinFirstAttempt checks a correct first guess wins immediately.
func TestSubmitGuessWinFirstAttempt(t *testing.T) {
	g := newTestGame(TestWordGarden)

	feedback := mustSubmit(t, g, "garden")
	if !allExact(feedback) {
		t.Errorf("correct guess feedback not all exact: %+v", feedback)
	}
	if g.Status != StatusWon {
		t.Errorf("status = %q, want %q", g.Status, StatusWon)
	}
	snap := g.snapshot()
	if snap.AttemptsUsed != 1 {
		t.Errorf("attempts used = %d, want 1", snap.AttemptsUsed)
	}
	if snap.Answer != TestWordGarden {
		t.Errorf("answer = %q, want %q after a win", snap.Answer, TestWordGarden)
	}
}

// TestSubmitGuessLoseAfterMaxAttempts checks the loss transition reveals the secret.
func TestSubmitGuessLoseAfterMaxAttempts(t *testing.T) {
	g := newTestGame(TestWordGarden)

	for i := 0; i < MaxAttempts; i++ {
		if g.Status != StatusInProgress {
			t.Fatalf("game ended early at attempt %d with status %q", i, g.Status)
		}
		mustSubmit(t, g, TestWordStream)
	}

	if g.Status != StatusLost {
		t.Errorf("status after %d wrong guesses = %q, want %q", MaxAttempts, g.Status, StatusLost)
	}
	snap := g.snapshot()
	if snap.Answer != TestWordGarden {
		t.Errorf("answer = %q, want revealed secret %q", snap.Answer, TestWordGarden)
	}
	if snap.AttemptsRemaining != 0 {
		t.Errorf("attempts remaining = %d, want 0", snap.AttemptsRemaining)
	}
}

// TestSubmitGuessTerminalStateImmutable checks no transition leaves won/lost.
func TestSubmitGuessTerminalStateImmutable(t *testing.T) {
	g := newTestGame(TestWordGarden)
	mustSubmit(t, g, TestWordGarden)

	before := g.snapshot()
	_, err := g.submitGuess(TestWordStream)
	assertGuessError(t, err, KindGameOver)
	after := g.snapshot()

	if after.Status != before.Status || after.AttemptsUsed != before.AttemptsUsed {
		t.Errorf("terminal session changed: before %+v, after %+v", before, after)
	}
}

// TestSubmitGuessValidation checks rejected guesses report the right kind
// and leave the session untouched.
func TestSubmitGuessValidation(t *testing.T) {
	tests := []struct {
		name  string
		guess string
		kind  string
	}{
		{name: "too short", guess: "ABC", kind: KindInvalidLength},
		{name: "too long", guess: "ABCDEFG", kind: KindInvalidLength},
		{name: "empty", guess: "", kind: KindInvalidLength},
		{name: "digits", guess: "GARD3N", kind: KindNotAlphabetic},
		{name: "punctuation", guess: "APPLE?", kind: KindNotAlphabetic},
		{name: "inner space", guess: "GAR EN", kind: KindNotAlphabetic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(TestWordGarden)
			_, err := g.submitGuess(tt.guess)
			assertGuessError(t, err, tt.kind)
			if len(g.Guesses) != 0 {
				t.Errorf("rejected guess mutated session: %d guesses recorded", len(g.Guesses))
			}
			if g.Status != StatusInProgress {
				t.Errorf("rejected guess changed status to %q", g.Status)
			}
		})
	}
}

// TestSubmitGuessNormalization checks guesses are trimmed and uppercased.
func TestSubmitGuessNormalization(t *testing.T) {
	g := newTestGame(TestWordGarden)
	mustSubmit(t, g, "  gArDeN ")
	if g.Status != StatusWon {
		t.Errorf("normalized correct guess did not win, status = %q", g.Status)
	}
	if g.Guesses[0].Guess != TestWordGarden {
		t.Errorf("recorded guess = %q, want normalized %q", g.Guesses[0].Guess, TestWordGarden)
	}
}

// TestSnapshotHidesSecretInProgress checks the secret stays hidden mid-game.
func TestSnapshotHidesSecretInProgress(t *testing.T) {
	g := newTestGame(TestWordGarden)
	mustSubmit(t, g, TestWordStream)

	snap := g.snapshot()
	if snap.Answer != "" {
		t.Errorf("in-progress snapshot revealed answer %q", snap.Answer)
	}
	if snap.AttemptsUsed != 1 || snap.AttemptsRemaining != MaxAttempts-1 {
		t.Errorf("attempts used/remaining = %d/%d, want 1/%d",
			snap.AttemptsUsed, snap.AttemptsRemaining, MaxAttempts-1)
	}
}
