package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"jeopardy-board-service/internal/domain"
)

// SetRepository abstracts how question sets are persisted (in-memory, Redis,
// Postgres). Save appends and never mutates existing entries; writes go
// through a single logical writer per collection.
type SetRepository interface {
	SaveSet(ctx context.Context, set domain.QuestionSet) error
	LoadSets(ctx context.Context) ([]domain.QuestionSet, error)
	DeleteSet(ctx context.Context, id string) (bool, error)
}

// ExportVersion tags exported payloads for portability checks.
const ExportVersion = "1.0"

// SetService contains the question-set use cases: authoring persistence,
// listing, deletion, and portable import/export.
type SetService struct {
	repo  SetRepository
	now   func() time.Time
	newID func() string
}

func NewSetService(repo SetRepository) *SetService {
	return &SetService{repo: repo, now: time.Now, newID: uuid.NewString}
}

// NewSetServiceWithClock is test-only for deterministic IDs and timestamps.
func NewSetServiceWithClock(repo SetRepository, now func() time.Time, newID func() string) *SetService {
	return &SetService{repo: repo, now: now, newID: newID}
}

// Save stores a named board under a fresh identifier and returns the record.
func (s *SetService) Save(ctx context.Context, name string, questions domain.GameQuestions) (domain.QuestionSet, error) {
	set := domain.QuestionSet{
		ID:          s.newID(),
		Name:        name,
		DateCreated: s.now(),
		Questions:   questions.Clone(),
	}
	if err := s.repo.SaveSet(ctx, set); err != nil {
		return domain.QuestionSet{}, err
	}
	return set, nil
}

// List returns a snapshot of all stored sets; empty storage is not an error.
func (s *SetService) List(ctx context.Context) ([]domain.QuestionSet, error) {
	return s.repo.LoadSets(ctx)
}

// Get returns a single stored set by ID.
func (s *SetService) Get(ctx context.Context, id string) (domain.QuestionSet, error) {
	sets, err := s.repo.LoadSets(ctx)
	if err != nil {
		return domain.QuestionSet{}, err
	}
	for _, set := range sets {
		if set.ID == id {
			return set, nil
		}
	}
	return domain.QuestionSet{}, fmt.Errorf("%w: %s", domain.ErrSetNotFound, id)
}

// Delete removes a set and reports whether it existed. A missing ID is a
// no-op, not an error.
func (s *SetService) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.DeleteSet(ctx, id)
}

// Rename changes a set's display name, keeping its identifier and creation
// timestamp.
func (s *SetService) Rename(ctx context.Context, id, name string) error {
	set, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	set.Name = name
	if _, err := s.repo.DeleteSet(ctx, id); err != nil {
		return err
	}
	return s.repo.SaveSet(ctx, set)
}

// exportEnvelope is the portable wire form: the record plus an export
// timestamp and a format version tag.
type exportEnvelope struct {
	domain.QuestionSet
	ExportDate time.Time `json:"exportDate"`
	Version    string    `json:"version"`
}

// Export renders a set as indented JSON suitable for sharing between
// devices.
func (s *SetService) Export(set domain.QuestionSet) (string, error) {
	payload, err := json.MarshalIndent(exportEnvelope{
		QuestionSet: set,
		ExportDate:  s.now(),
		Version:     ExportVersion,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("export set: %w", err)
	}
	return string(payload), nil
}

// Import parses an exported payload and persists it as a brand-new record:
// fresh identifier, fresh timestamp, and the name suffixed " (Imported)".
// The imported identifier is never reused, so re-importing can't collide
// with the original. Malformed input fails before any persistence happens.
func (s *SetService) Import(ctx context.Context, payload string) (domain.QuestionSet, error) {
	var in struct {
		Name      string `json:"name"`
		Questions struct {
			Round1 []domain.Category `json:"round1"`
			Round2 []domain.Category `json:"round2"`
		} `json:"questions"`
	}
	if err := json.Unmarshal([]byte(payload), &in); err != nil {
		return domain.QuestionSet{}, fmt.Errorf("%w: %v", domain.ErrImport, err)
	}
	if in.Name == "" || in.Questions.Round1 == nil || in.Questions.Round2 == nil {
		return domain.QuestionSet{}, fmt.Errorf("%w: name, questions.round1 and questions.round2 are required", domain.ErrImport)
	}

	set := domain.QuestionSet{
		ID:          s.newID(),
		Name:        in.Name + " (Imported)",
		DateCreated: s.now(),
		Questions: domain.GameQuestions{
			Round1: in.Questions.Round1,
			Round2: in.Questions.Round2,
		},
	}
	if err := s.repo.SaveSet(ctx, set); err != nil {
		return domain.QuestionSet{}, err
	}
	return set, nil
}
