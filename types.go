package main

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// WordList is the JSON structure of the word list file.
type WordList struct {
	Words []string `json:"words"`
}

// LetterFeedback is the evaluation of a single guessed letter.
type LetterFeedback struct {
	Letter string `json:"letter"`
	Status string `json:"status"` // "exact", "present" or "absent"
}

// GuessRecord pairs a normalized guess with its per-letter feedback.
type GuessRecord struct {
	Guess    string           `json:"guess"`
	Feedback []LetterFeedback `json:"feedback"`
}

// GameSession is one player's state for one day's word. Sessions are owned
// by the SessionManager and must only be touched while holding its lock.
type GameSession struct {
	Date           string // UTC day the session targets, YYYY-MM-DD
	SecretWord     string
	Guesses        []GuessRecord
	Status         string // in_progress, won or lost
	LastAccessTime time.Time
}

// SessionSnapshot is a read-only copy of a session handed to handlers.
type SessionSnapshot struct {
	Date              string
	Status            string
	Guesses           []GuessRecord
	AttemptsUsed      int
	AttemptsRemaining int
	Answer            string // secret word, set only once the game is over
}

// App holds process-wide state shared across requests.
type App struct {
	Words          []string
	Sessions       *SessionManager
	IsProduction   bool
	CookieMaxAge   time.Duration
	RateLimitRPS   int
	RateLimitBurst int
	LimiterMap     map[string]*rate.Limiter
	LimiterMutex   sync.Mutex
	StartTime      time.Time
}

type contextKey string
