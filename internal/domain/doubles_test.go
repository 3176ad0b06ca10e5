package domain

import (
	"fmt"
	"math/rand"
	"testing"
)

func testRound(round int) []Category {
	step := RoundStep(round)
	categories := make([]Category, 0, CategoriesPerRound)
	for c := 0; c < CategoriesPerRound; c++ {
		category := Category{
			ID:   fmt.Sprintf("r%d-c%d", round, c),
			Name: fmt.Sprintf("Category %d", c),
		}
		for q := 0; q < QuestionsPerCategory; q++ {
			category.Questions = append(category.Questions, Question{
				ID:       fmt.Sprintf("r%d-c%d-q%d", round, c, q),
				Category: category.Name,
				Value:    step * (q + 1),
			})
		}
		categories = append(categories, category)
	}
	return categories
}

func countDoubles(categories []Category) int {
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

func TestAssignDailyDoublesCounts(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	round1 := testRound(1)
	AssignDailyDoubles(rnd, round1, DoublesRound1)
	if got := countDoubles(round1); got != 1 {
		t.Fatalf("round 1: expected 1 daily double, got %d", got)
	}

	round2 := testRound(2)
	AssignDailyDoubles(rnd, round2, DoublesRound2)
	if got := countDoubles(round2); got != 2 {
		t.Fatalf("round 2: expected 2 daily doubles, got %d", got)
	}
}

func TestAssignDailyDoublesResetsPreviousFlags(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	categories := testRound(1)
	for ci := range categories {
		for qi := range categories[ci].Questions {
			categories[ci].Questions[qi].IsDouble = true
		}
	}

	AssignDailyDoubles(rnd, categories, DoublesRound1)
	if got := countDoubles(categories); got != 1 {
		t.Fatalf("expected stale flags cleared down to 1, got %d", got)
	}
}

func TestAssignDailyDoublesDistinctSlots(t *testing.T) {
	// Drawing without replacement can never land twice on one slot, even
	// when asked for many doubles.
	rnd := rand.New(rand.NewSource(3))
	categories := testRound(2)
	AssignDailyDoubles(rnd, categories, 10)
	if got := countDoubles(categories); got != 10 {
		t.Fatalf("expected 10 distinct doubles, got %d", got)
	}
}

func TestAssignDailyDoublesVariesAcrossSources(t *testing.T) {
	position := func(seed int64) string {
		rnd := rand.New(rand.NewSource(seed))
		categories := testRound(1)
		AssignDailyDoubles(rnd, categories, DoublesRound1)
		for _, c := range categories {
			for _, q := range c.Questions {
				if q.IsDouble {
					return q.ID
				}
			}
		}
		return ""
	}

	first := position(0)
	for seed := int64(1); seed <= 20; seed++ {
		if position(seed) != first {
			return
		}
	}
	t.Fatalf("30 slots, 21 seeds, always %s: selection is not random", first)
}
