package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"jeopardy-board-service/internal/domain"
)

func sampleSet(id, name string, created time.Time) domain.QuestionSet {
	return domain.QuestionSet{
		ID:          id,
		Name:        name,
		DateCreated: created,
		Questions: domain.GameQuestions{
			Round1: []domain.Category{{
				ID:   id + "-c1",
				Name: "History",
				Questions: []domain.Question{
					{ID: id + "-q1", Category: "History", Question: "Q", Answer: "A", Value: 200},
				},
			}},
		},
	}
}

func newRepo(t *testing.T) *SetRepository {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	return NewSetRepository(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestSetRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	sets, err := repo.LoadSets(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if len(sets) != 0 {
		t.Fatalf("expected empty collection, got %d", len(sets))
	}

	later := time.Date(2025, 9, 1, 11, 0, 0, 0, time.UTC)
	earlier := later.Add(-time.Hour)
	if err := repo.SaveSet(ctx, sampleSet("s2", "Second", later)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.SaveSet(ctx, sampleSet("s1", "First", earlier)); err != nil {
		t.Fatalf("save: %v", err)
	}

	sets, err = repo.LoadSets(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(sets) != 2 || sets[0].ID != "s1" || sets[1].ID != "s2" {
		t.Fatalf("expected creation order, got %+v", sets)
	}
	if sets[0].Questions.Round1[0].Questions[0].Answer != "A" {
		t.Fatalf("payload did not survive the round trip: %+v", sets[0])
	}
}

func TestSetRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	created := time.Date(2025, 9, 1, 11, 0, 0, 0, time.UTC)
	_ = repo.SaveSet(ctx, sampleSet("s1", "First", created))

	existed, err := repo.DeleteSet(ctx, "missing")
	if err != nil || existed {
		t.Fatalf("expected false for missing id, got existed=%v err=%v", existed, err)
	}

	existed, err = repo.DeleteSet(ctx, "s1")
	if err != nil || !existed {
		t.Fatalf("expected true for present id, got existed=%v err=%v", existed, err)
	}
	sets, _ := repo.LoadSets(ctx)
	if len(sets) != 0 {
		t.Fatalf("expected empty collection after delete, got %+v", sets)
	}
}
