package domain

import "errors"

var (
	// ErrInvalidSelection is returned when a selected question is already
	// answered or does not exist in the active round.
	ErrInvalidSelection = errors.New("invalid question selection")
	// ErrInvalidWager is returned when a daily double wager is out of range.
	ErrInvalidWager = errors.New("invalid wager")
	// ErrInvalidTransition indicates an operation invoked in the wrong game
	// state. This is a caller bug, not something to retry.
	ErrInvalidTransition = errors.New("invalid game state transition")
	// ErrInvalidSet indicates a board that does not match the 6x5 shape or
	// its round's value ladder.
	ErrInvalidSet = errors.New("invalid question set")
	// ErrInvalidRoster indicates a player roster outside the 1-3 range.
	ErrInvalidRoster = errors.New("invalid player roster")
	// ErrImport indicates a malformed import payload. Nothing is persisted.
	ErrImport = errors.New("malformed import payload")
	// ErrPersistence wraps storage backend failures.
	ErrPersistence = errors.New("persistence failure")
	// ErrSetNotFound indicates the question set could not be found.
	ErrSetNotFound = errors.New("question set not found")
	// ErrGameNotFound is returned when a game session has not been started.
	ErrGameNotFound = errors.New("game not found")
	// ErrPlayerNotFound indicates an unknown player ID for this game.
	ErrPlayerNotFound = errors.New("player not found in game")
)
