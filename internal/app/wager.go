package app

import (
	"fmt"

	"jeopardy-board-service/internal/domain"
)

// MinWager is the floor for a daily double wager.
const MinWager = 5

// MaxWager returns the ceiling for a player's daily double wager: the
// round's top board value, or the player's score when that is higher. A
// leading player may bet past the board's nominal ceiling.
func MaxWager(round, score int) int {
	top := domain.TopValue(round)
	if score > top {
		return score
	}
	return top
}

// ValidateWager checks an amount against the floor and the player's ceiling.
// Non-numeric input never reaches this point; the transport rejects it while
// decoding.
func ValidateWager(round, score, amount int) error {
	if amount < MinWager || amount > MaxWager(round, score) {
		return fmt.Errorf("%w: %d outside [%d, %d]", domain.ErrInvalidWager, amount, MinWager, MaxWager(round, score))
	}
	return nil
}
