package main

// Game configuration constants
const (
	WordLength  = 6 // Length of the daily word
	MaxAttempts = 6 // Maximum number of guesses per day
)

// Per-letter feedback status constants
const (
	FeedbackExact   = "exact"
	FeedbackPresent = "present"
	FeedbackAbsent  = "absent"
)

// Game status constants
const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusLost       = "lost"
)

// Session configuration constants
const (
	SessionCookieName = "wg_session"
)

// Route constants
const (
	RouteStatus = "/api/status"
	RouteGuess  = "/api/guess"
	RouteHealth = "/healthz"
)

// Machine-readable error kinds returned to callers
const (
	KindInvalidLength = "invalid_length"
	KindNotAlphabetic = "not_alphabetic"
	KindGameOver      = "game_over"
)

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)
