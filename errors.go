package main

import "fmt"

// ConfigurationError reports an unusable word list at startup. It is fatal:
// the process must not serve requests with a broken configuration.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration: " + e.Reason
}

// InvalidInputError reports a contract violation between the game session
// and the scorer. It should never reach a caller; seeing one means a bug.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// GuessError is a caller-facing rejection of a guess. Kind is stable and
// machine-readable so the transport layer can map it to a status code
// without parsing Message. A rejected guess never mutates session state.
type GuessError struct {
	Kind    string
	Message string
}

func (e *GuessError) Error() string {
	return e.Message
}

var (
	errWrongLength = &GuessError{Kind: KindInvalidLength, Message: fmt.Sprintf("guess must be exactly %d letters", WordLength)}
	errNotAlpha    = &GuessError{Kind: KindNotAlphabetic, Message: "guess must contain only letters"}
	errGameOver    = &GuessError{Kind: KindGameOver, Message: "game is already over for today"}
)
