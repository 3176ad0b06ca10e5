package catalog

import (
	"math/rand"
	"testing"

	"jeopardy-board-service/internal/domain"
)

func TestDefaultBoardShape(t *testing.T) {
	set := Default(rand.New(rand.NewSource(1)))
	if err := domain.ValidateSet(set); err != nil {
		t.Fatalf("built-in set must validate: %v", err)
	}
}

func TestDefaultAssignsDailyDoubles(t *testing.T) {
	set := Default(rand.New(rand.NewSource(2)))

	count := func(categories []domain.Category) int {
		n := 0
		for _, c := range categories {
			for _, q := range c.Questions {
				if q.IsDouble {
					n++
				}
			}
		}
		return n
	}
	if got := count(set.Round1); got != 1 {
		t.Fatalf("round 1: expected 1 daily double, got %d", got)
	}
	if got := count(set.Round2); got != 2 {
		t.Fatalf("round 2: expected 2 daily doubles, got %d", got)
	}
}

func TestDefaultGeneratesFreshIdentifiers(t *testing.T) {
	a := Default(rand.New(rand.NewSource(3)))
	b := Default(rand.New(rand.NewSource(3)))
	if a.Round1[0].Questions[0].ID == b.Round1[0].Questions[0].ID {
		t.Fatalf("expected fresh question IDs per generation")
	}
}

func TestDefaultStartsUnanswered(t *testing.T) {
	set := Default(rand.New(rand.NewSource(4)))
	for _, c := range append(set.Round1, set.Round2...) {
		for _, q := range c.Questions {
			if q.IsAnswered {
				t.Fatalf("question %s generated already answered", q.ID)
			}
		}
	}
}
