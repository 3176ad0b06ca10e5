package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"jeopardy-board-service/internal/domain"
)

// SetStore persists question sets in Postgres, one JSONB row per set. It
// implements app.SetRepository for durable multi-device storage.
type SetStore struct {
	pool *pgxpool.Pool
}

func NewSetStore(pool *pgxpool.Pool) *SetStore {
	return &SetStore{pool: pool}
}

func (s *SetStore) SaveSet(ctx context.Context, set domain.QuestionSet) error {
	data, err := json.Marshal(set.Questions)
	if err != nil {
		return fmt.Errorf("marshal set: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO question_sets (id, name, date_created, data) VALUES ($1, $2, $3, $4)`,
		set.ID, set.Name, set.DateCreated, data)
	if err != nil {
		return fmt.Errorf("%w: save set: %v", domain.ErrPersistence, err)
	}
	return nil
}

func (s *SetStore) LoadSets(ctx context.Context) ([]domain.QuestionSet, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, date_created, data FROM question_sets ORDER BY date_created, id`)
	if err != nil {
		return nil, fmt.Errorf("%w: load sets: %v", domain.ErrPersistence, err)
	}
	defer rows.Close()

	var sets []domain.QuestionSet
	for rows.Next() {
		set, err := scanSet(rows)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: load sets: %v", domain.ErrPersistence, err)
	}
	if sets == nil {
		sets = []domain.QuestionSet{}
	}
	return sets, nil
}

func (s *SetStore) DeleteSet(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM question_sets WHERE id=$1`, id)
	if err != nil {
		return false, fmt.Errorf("%w: delete set: %v", domain.ErrPersistence, err)
	}
	return tag.RowsAffected() > 0, nil
}

// Get loads a single set by ID; it satisfies memory.SetSource so game starts
// can go through the TTL cache.
func (s *SetStore) Get(ctx context.Context, id string) (domain.QuestionSet, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, name, date_created, data FROM question_sets WHERE id=$1`, id)
	set, err := scanSet(row)
	if err == pgx.ErrNoRows {
		return domain.QuestionSet{}, fmt.Errorf("%w: %s", domain.ErrSetNotFound, id)
	}
	return set, err
}

func scanSet(row pgx.Row) (domain.QuestionSet, error) {
	var (
		set domain.QuestionSet
		raw []byte
	)
	if err := row.Scan(&set.ID, &set.Name, &set.DateCreated, &raw); err != nil {
		if err == pgx.ErrNoRows {
			return domain.QuestionSet{}, err
		}
		return domain.QuestionSet{}, fmt.Errorf("%w: scan set: %v", domain.ErrPersistence, err)
	}
	if err := json.Unmarshal(raw, &set.Questions); err != nil {
		return domain.QuestionSet{}, fmt.Errorf("%w: unmarshal set %s: %v", domain.ErrPersistence, set.ID, err)
	}
	return set, nil
}
