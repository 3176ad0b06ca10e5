package app

import (
	"errors"
	"testing"

	"jeopardy-board-service/internal/domain"
)

func TestMaxWager(t *testing.T) {
	tests := []struct {
		name  string
		round int
		score int
		want  int
	}{
		{"round 1 floor is board top", 1, 0, 1000},
		{"round 2 floor is board top", 2, 0, 2000},
		{"negative score still allows board top", 2, -500, 2000},
		{"leader may wager their score", 2, 3000, 3000},
		{"score at board top", 2, 2000, 2000},
	}
	for _, tt := range tests {
		if got := MaxWager(tt.round, tt.score); got != tt.want {
			t.Fatalf("%s: MaxWager(%d, %d)=%d, want %d", tt.name, tt.round, tt.score, got, tt.want)
		}
	}
}

func TestValidateWagerBounds(t *testing.T) {
	// Player with score 0 on a round 2 double: 5..2000 inclusive.
	for _, amount := range []int{5, 6, 1999, 2000} {
		if err := ValidateWager(2, 0, amount); err != nil {
			t.Fatalf("expected %d accepted, got %v", amount, err)
		}
	}
	for _, amount := range []int{0, 4, -10, 2001} {
		if err := ValidateWager(2, 0, amount); !errors.Is(err, domain.ErrInvalidWager) {
			t.Fatalf("expected %d rejected with ErrInvalidWager, got %v", amount, err)
		}
	}

	// A 3000-point leader may wager up to 3000.
	if err := ValidateWager(2, 3000, 3000); err != nil {
		t.Fatalf("expected leader's full-score wager accepted, got %v", err)
	}
	if err := ValidateWager(2, 3000, 3001); !errors.Is(err, domain.ErrInvalidWager) {
		t.Fatalf("expected wager above score rejected, got %v", err)
	}
}
