package main

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// SessionManager owns the session_id -> GameSession map. It is created at
// startup and lives for the whole process; sessions are never persisted.
//
// All session mutation happens under mu, so the full submit transition
// (resolve, validate, score, append, recompute status) is atomic with
// respect to other operations on the same session.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*GameSession
	words    []string
	now      func() time.Time
}

// newSessionManager creates a manager over a validated word list.
func newSessionManager(words []string) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*GameSession),
		words:    words,
		now:      time.Now,
	}
}

// resolveLocked returns the live session for sessionID, creating a fresh one
// on first contact or when the tracked day no longer matches the current UTC
// day. That single rule is the entire daily-rollover mechanism: rollover is
// detected lazily on next access, never by a timer. Caller must hold mu.
func (m *SessionManager) resolveLocked(sessionID string) (*GameSession, error) {
	now := m.now()
	today := dateKey(now)

	if game, ok := m.sessions[sessionID]; ok && game.Date == today {
		game.LastAccessTime = now
		return game, nil
	}

	secret, err := dailyWord(now, m.words)
	if err != nil {
		return nil, err
	}

	game := newGameSession(today, secret, now)
	m.sessions[sessionID] = game
	log.Info().Str("session", sessionID).Str("date", today).Msg("created game session")
	return game, nil
}

// SubmitGuess applies one guess to the session's game atomically and returns
// the feedback for this guess together with the updated state.
func (m *SessionManager) SubmitGuess(sessionID, raw string) ([]LetterFeedback, SessionSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	game, err := m.resolveLocked(sessionID)
	if err != nil {
		return nil, SessionSnapshot{}, err
	}

	feedback, err := game.submitGuess(raw)
	if err != nil {
		return nil, game.snapshot(), err
	}
	return feedback, game.snapshot(), nil
}

// Snapshot returns the current state of the session's game. Read-only:
// calling it twice with no intervening guess yields identical results,
// though the first call may lazily create the day's session.
func (m *SessionManager) Snapshot(sessionID string) (SessionSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	game, err := m.resolveLocked(sessionID)
	if err != nil {
		return SessionSnapshot{}, err
	}
	return game.snapshot(), nil
}

// Len reports the number of tracked sessions.
func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Prune drops sessions whose day has passed. Rollover correctness never
// depends on this; stale entries would be replaced on next access anyway.
// This only keeps the map from accumulating dead entries forever.
func (m *SessionManager) Prune() int {
	today := dateKey(m.now())

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, game := range m.sessions {
		if game.Date != today {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// PruneLoop runs Prune on a fixed interval until ctx is cancelled.
func (m *SessionManager) PruneLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := m.Prune(); removed > 0 {
				log.Info().Int("removed", removed).Msg("pruned stale sessions")
			}
		}
	}
}
