package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"jeopardy-board-service/internal/domain"
)

const setsKey = "jeopardy:sets"

// SetRepository persists question sets in a Redis hash, one field per set ID
// with the full record as JSON. The service is the collection's single
// logical writer, matching the read-modify-write discipline of the local
// storage it replaces.
type SetRepository struct {
	client *redis.Client
}

func NewSetRepository(client *redis.Client) *SetRepository {
	return &SetRepository{client: client}
}

func (r *SetRepository) SaveSet(ctx context.Context, set domain.QuestionSet) error {
	payload, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("marshal set: %w", err)
	}
	if err := r.client.HSet(ctx, setsKey, set.ID, payload).Err(); err != nil {
		return fmt.Errorf("%w: save set: %v", domain.ErrPersistence, err)
	}
	return nil
}

func (r *SetRepository) LoadSets(ctx context.Context) ([]domain.QuestionSet, error) {
	fields, err := r.client.HGetAll(ctx, setsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: load sets: %v", domain.ErrPersistence, err)
	}

	sets := make([]domain.QuestionSet, 0, len(fields))
	for id, raw := range fields {
		var set domain.QuestionSet
		if err := json.Unmarshal([]byte(raw), &set); err != nil {
			return nil, fmt.Errorf("%w: unmarshal set %s: %v", domain.ErrPersistence, id, err)
		}
		sets = append(sets, set)
	}
	// Hash iteration order is arbitrary; present oldest first.
	sort.Slice(sets, func(i, j int) bool {
		if !sets[i].DateCreated.Equal(sets[j].DateCreated) {
			return sets[i].DateCreated.Before(sets[j].DateCreated)
		}
		return sets[i].ID < sets[j].ID
	})
	return sets, nil
}

func (r *SetRepository) DeleteSet(ctx context.Context, id string) (bool, error) {
	removed, err := r.client.HDel(ctx, setsKey, id).Result()
	if err != nil {
		return false, fmt.Errorf("%w: delete set: %v", domain.ErrPersistence, err)
	}
	return removed > 0, nil
}
