package domain

import "math/rand"

// AssignDailyDoubles marks count slots of a round as daily doubles, drawn
// uniformly without replacement from the flattened (category, question)
// coordinate pool. All other slots are reset to false. The random source is
// explicit so tests can pin the outcome; callers run this once per round per
// game, never mid-round.
func AssignDailyDoubles(rnd *rand.Rand, categories []Category, count int) {
	type slot struct {
		category int
		question int
	}

	pool := make([]slot, 0, len(categories)*QuestionsPerCategory)
	for ci := range categories {
		for qi := range categories[ci].Questions {
			categories[ci].Questions[qi].IsDouble = false
			pool = append(pool, slot{category: ci, question: qi})
		}
	}

	if count > len(pool) {
		count = len(pool)
	}
	for i := 0; i < count; i++ {
		j := rnd.Intn(len(pool))
		chosen := pool[j]
		pool[j] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
		categories[chosen.category].Questions[chosen.question].IsDouble = true
	}
}
