package memory

import (
	"context"
	"sync"

	"jeopardy-board-service/internal/domain"
)

// SetRepository is an in-memory implementation of app.SetRepository. Useful
// for tests and for running without any storage backend configured. Sets are
// deep-copied on the way in and out so a running game can never corrupt a
// stored original.
type SetRepository struct {
	mu   sync.RWMutex
	sets []domain.QuestionSet
}

func NewSetRepository() *SetRepository {
	return &SetRepository{}
}

func (r *SetRepository) SaveSet(_ context.Context, set domain.QuestionSet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sets = append(r.sets, set.Clone())
	return nil
}

func (r *SetRepository) LoadSets(_ context.Context) ([]domain.QuestionSet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.QuestionSet, 0, len(r.sets))
	for _, set := range r.sets {
		out = append(out, set.Clone())
	}
	return out, nil
}

func (r *SetRepository) DeleteSet(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, set := range r.sets {
		if set.ID == id {
			r.sets = append(r.sets[:i], r.sets[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
