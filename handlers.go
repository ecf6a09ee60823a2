package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// guessRequest is the body of POST /api/guess.
type guessRequest struct {
	Guess string `json:"guess"`
}

// statusResponse is the body of GET /api/status.
type statusResponse struct {
	Date              string        `json:"date"`
	Status            string        `json:"status"`
	AttemptsUsed      int           `json:"attempts_used"`
	AttemptsRemaining int           `json:"attempts_remaining"`
	MaxAttempts       int           `json:"max_attempts"`
	WordLength        int           `json:"word_length"`
	History           []GuessRecord `json:"history"`
	Answer            string        `json:"answer,omitempty"`
	Message           string        `json:"message"`
}

// guessResponse is the success body of POST /api/guess.
type guessResponse struct {
	Feedback          []LetterFeedback `json:"feedback"`
	Status            string           `json:"status"`
	AttemptsUsed      int              `json:"attempts_used"`
	AttemptsRemaining int              `json:"attempts_remaining"`
	Answer            string           `json:"answer,omitempty"`
	Message           string           `json:"message"`
}

// errorResponse is the body of every rejected request.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// getOrCreateSession retrieves the session ID from the cookie or issues a
// new one. The ID is an opaque key; the game core never interprets it.
func (app *App) getOrCreateSession(c *gin.Context) string {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil || len(sessionID) < 10 {
		sessionID = uuid.NewString()
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookieName, sessionID, int(app.CookieMaxAge.Seconds()), "/", "", app.IsProduction, true)
		log.Info().Str("session", sessionID).Msg("created new session")
	}
	return sessionID
}

// statusHandler reports the caller's game for the current UTC day.
func (app *App) statusHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)

	snap, err := app.Sessions.Snapshot(sessionID)
	if err != nil {
		app.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, statusResponse{
		Date:              snap.Date,
		Status:            snap.Status,
		AttemptsUsed:      snap.AttemptsUsed,
		AttemptsRemaining: snap.AttemptsRemaining,
		MaxAttempts:       MaxAttempts,
		WordLength:        WordLength,
		History:           snap.Guesses,
		Answer:            snap.Answer,
		Message:           statusMessage(snap),
	})
}

// guessHandler applies one guess to the caller's game for today.
func (app *App) guessHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)

	var req guessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "request body must be JSON with a \"guess\" field"})
		return
	}

	feedback, snap, err := app.Sessions.SubmitGuess(sessionID, req.Guess)
	if err != nil {
		app.renderError(c, err)
		return
	}

	log.Info().
		Str("session", sessionID).
		Str("status", snap.Status).
		Int("attempt", snap.AttemptsUsed).
		Msg("guess scored")

	c.JSON(http.StatusOK, guessResponse{
		Feedback:          feedback,
		Status:            snap.Status,
		AttemptsUsed:      snap.AttemptsUsed,
		AttemptsRemaining: snap.AttemptsRemaining,
		Answer:            snap.Answer,
		Message:           statusMessage(snap),
	})
}

// renderError maps core errors onto HTTP responses. Guess rejections carry
// their machine-readable kind; anything else is an internal failure.
func (app *App) renderError(c *gin.Context, err error) {
	var guessErr *GuessError
	if errors.As(err, &guessErr) {
		status := http.StatusBadRequest
		if guessErr.Kind == KindGameOver {
			status = http.StatusConflict
		}
		c.JSON(status, errorResponse{Error: guessErr.Kind, Message: guessErr.Message})
		return
	}

	log.Error().Err(err).Msg("internal error")
	c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal", Message: "internal server error"})
}

// statusMessage picks the human-readable line for a game state.
func statusMessage(snap SessionSnapshot) string {
	switch snap.Status {
	case StatusWon:
		return "You won!"
	case StatusLost:
		return fmt.Sprintf("Out of attempts. The word was %s.", snap.Answer)
	default:
		return "Make your guess!"
	}
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	uptime := time.Since(app.StartTime)
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"env":          map[bool]string{true: "production", false: "development"}[app.IsProduction],
		"words_loaded": len(app.Words),
		"sessions":     app.Sessions.Len(),
		"uptime":       formatUptime(uptime),
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}
