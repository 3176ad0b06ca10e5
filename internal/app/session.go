package app

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"jeopardy-board-service/internal/domain"
)

// Phase tracks whether a question is currently open on the board.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseQuestionOpen
	PhaseAwaitingWager
)

func (p Phase) String() string {
	switch p {
	case PhaseQuestionOpen:
		return "questionOpen"
	case PhaseAwaitingWager:
		return "awaitingWager"
	default:
		return "idle"
	}
}

// OpenQuestion is a read-only view of the question currently on screen.
// Value is the effective value: the face value, or the accepted wager for a
// daily double.
type OpenQuestion struct {
	QuestionID string `json:"questionId"`
	Category   string `json:"category"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Value      int    `json:"value"`
	IsDouble   bool   `json:"isDouble"`
}

// Outcome reports the effect of resolving an open question.
type Outcome struct {
	QuestionID    string `json:"questionId"`
	PlayerID      string `json:"playerId,omitempty"`
	Delta         int    `json:"delta"`
	Round         int    `json:"round"`
	RoundComplete bool   `json:"roundComplete"`
	GameComplete  bool   `json:"gameComplete"`
}

// Session owns one playthrough: a working copy of the board, the player
// roster, and the guarded round/question lifecycle. All mutations go through
// its methods; the working copy never aliases the stored question set.
type Session struct {
	id        string
	now       func() time.Time
	createdAt time.Time

	mu         sync.RWMutex
	started    bool
	complete   bool
	round      int
	phase      Phase
	categories []domain.Category // active round
	round2     []domain.Category // staged until the round transition
	players    []*domain.Player  // registration order
	open       *openQuestion
}

// openQuestion pins the selected slot plus the wager state for doubles.
// wagerBy is the player on the hook for a missed daily double.
type openQuestion struct {
	category int
	question int
	value    int
	wagerBy  string
}

func NewSession(id string) *Session {
	return NewSessionWithClock(id, time.Now)
}

// NewSessionWithClock is test-only for deterministic timestamps.
func NewSessionWithClock(id string, now func() time.Time) *Session {
	return &Session{
		id:        id,
		now:       now,
		createdAt: now(),
	}
}

// Start validates the set and roster, deep-copies both rounds, assigns daily
// doubles on the working copy, seeds scores to zero and enters round 1.
// Valid only once per session.
func (s *Session) Start(set domain.GameQuestions, players []domain.Player, rnd *rand.Rand) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return fmt.Errorf("%w: game already started", domain.ErrInvalidTransition)
	}
	if len(players) < 1 || len(players) > 3 {
		return fmt.Errorf("%w: got %d players, want 1-3", domain.ErrInvalidRoster, len(players))
	}
	if err := domain.ValidateSet(set); err != nil {
		return err
	}

	working := set.Clone()
	domain.AssignDailyDoubles(rnd, working.Round1, domain.DoublesRound1)
	domain.AssignDailyDoubles(rnd, working.Round2, domain.DoublesRound2)

	s.players = make([]*domain.Player, 0, len(players))
	for _, p := range players {
		s.players = append(s.players, &domain.Player{ID: p.ID, Name: p.Name})
	}

	s.categories = working.Round1
	s.round2 = working.Round2
	s.round = 1
	s.phase = PhaseIdle
	s.started = true
	return nil
}

// SelectQuestion opens an unanswered question from the active round. Doubles
// move to the wager phase; everything else opens at face value.
func (s *Session) SelectQuestion(questionID string) (OpenQuestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started || s.complete || s.phase != PhaseIdle {
		return OpenQuestion{}, fmt.Errorf("%w: select requires an idle board", domain.ErrInvalidTransition)
	}

	ci, qi, ok := s.findLocked(questionID)
	if !ok {
		return OpenQuestion{}, fmt.Errorf("%w: question %s not in round %d", domain.ErrInvalidSelection, questionID, s.round)
	}
	q := s.categories[ci].Questions[qi]
	if q.IsAnswered {
		return OpenQuestion{}, fmt.Errorf("%w: question %s already answered", domain.ErrInvalidSelection, questionID)
	}

	s.open = &openQuestion{category: ci, question: qi, value: q.Value}
	if q.IsDouble {
		s.phase = PhaseAwaitingWager
	} else {
		s.phase = PhaseQuestionOpen
	}
	return s.openViewLocked(), nil
}

// SubmitWager fixes the effective value of an awaiting daily double. On a
// rejected wager the session stays in the wager phase so the caller can
// retry or cancel.
func (s *Session) SubmitWager(playerID string, amount int) (OpenQuestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseAwaitingWager {
		return OpenQuestion{}, fmt.Errorf("%w: no daily double awaiting a wager", domain.ErrInvalidTransition)
	}
	player, ok := s.playerLocked(playerID)
	if !ok {
		return OpenQuestion{}, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	if err := ValidateWager(s.round, player.Score, amount); err != nil {
		return OpenQuestion{}, err
	}

	s.open.value = amount
	s.open.wagerBy = player.ID
	s.phase = PhaseQuestionOpen
	return s.openViewLocked(), nil
}

// TrueDailyDouble wagers the maximum allowed amount for the player,
// bypassing manual entry.
func (s *Session) TrueDailyDouble(playerID string) (OpenQuestion, error) {
	s.mu.Lock()
	if s.phase != PhaseAwaitingWager {
		s.mu.Unlock()
		return OpenQuestion{}, fmt.Errorf("%w: no daily double awaiting a wager", domain.ErrInvalidTransition)
	}
	player, ok := s.playerLocked(playerID)
	if !ok {
		s.mu.Unlock()
		return OpenQuestion{}, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	amount := MaxWager(s.round, player.Score)
	s.mu.Unlock()

	return s.SubmitWager(playerID, amount)
}

// ResolveAnswer closes the open question. A non-empty playerID credits that
// player with the effective value. An empty playerID means nobody answered
// correctly: plain questions score nothing, a wagered daily double debits
// the wagering player. The question is marked answered either way and never
// reopens. Completion of the last question advances the round or ends the
// game.
func (s *Session) ResolveAnswer(playerID string) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseQuestionOpen {
		return Outcome{}, fmt.Errorf("%w: no open question to resolve", domain.ErrInvalidTransition)
	}

	open := s.open
	q := &s.categories[open.category].Questions[open.question]

	delta := 0
	creditedTo := ""
	if playerID != "" {
		player, ok := s.playerLocked(playerID)
		if !ok {
			return Outcome{}, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
		}
		delta = open.value
		player.Score += delta
		creditedTo = player.ID
	} else if open.wagerBy != "" {
		// Daily double: the wagering player had to answer, so the miss
		// costs the wager. Scores have no floor.
		player, _ := s.playerLocked(open.wagerBy)
		if player != nil {
			delta = -open.value
			player.Score += delta
			creditedTo = player.ID
		}
	}

	q.IsAnswered = true
	round := s.round
	s.open = nil
	s.phase = PhaseIdle

	outcome := Outcome{
		QuestionID: q.ID,
		PlayerID:   creditedTo,
		Delta:      delta,
		Round:      round,
	}

	if s.roundCompleteLocked() {
		outcome.RoundComplete = true
		if s.round == 1 {
			s.categories = s.round2
			s.round2 = nil
			s.round = 2
		} else {
			s.complete = true
			outcome.GameComplete = true
		}
	}
	return outcome, nil
}

// CancelQuestion closes the open question without resolving it. The question
// stays unanswered and selectable, scores and any pending wager are
// discarded.
func (s *Session) CancelQuestion() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseQuestionOpen && s.phase != PhaseAwaitingWager {
		return fmt.Errorf("%w: no open question to cancel", domain.ErrInvalidTransition)
	}
	s.open = nil
	s.phase = PhaseIdle
	return nil
}

// Round reports the active round, 1 or 2.
func (s *Session) Round() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.round
}

func (s *Session) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// Complete reports whether both rounds have been exhausted.
func (s *Session) Complete() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.complete
}

// Categories returns a deep-copied snapshot of the active round.
func (s *Session) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneCategories(s.categories)
}

// Players returns the roster in registration order.
func (s *Session) Players() []domain.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Player, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, *p)
	}
	return out
}

// Open returns the current open question view, if any.
func (s *Session) Open() (OpenQuestion, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.open == nil {
		return OpenQuestion{}, false
	}
	return s.openViewLocked(), true
}

// Standings returns players sorted by score descending; ties keep
// registration order.
func (s *Session) Standings() []domain.Standing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Standing, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, domain.Standing{PlayerID: p.ID, Name: p.Name, Score: p.Score})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

func (s *Session) findLocked(questionID string) (int, int, bool) {
	for ci := range s.categories {
		for qi := range s.categories[ci].Questions {
			if s.categories[ci].Questions[qi].ID == questionID {
				return ci, qi, true
			}
		}
	}
	return 0, 0, false
}

func (s *Session) playerLocked(playerID string) (*domain.Player, bool) {
	for _, p := range s.players {
		if p.ID == playerID {
			return p, true
		}
	}
	return nil, false
}

func (s *Session) roundCompleteLocked() bool {
	for _, category := range s.categories {
		for _, q := range category.Questions {
			if !q.IsAnswered {
				return false
			}
		}
	}
	return true
}

func (s *Session) openViewLocked() OpenQuestion {
	q := s.categories[s.open.category].Questions[s.open.question]
	return OpenQuestion{
		QuestionID: q.ID,
		Category:   q.Category,
		Question:   q.Question,
		Answer:     q.Answer,
		Value:      s.open.value,
		IsDouble:   q.IsDouble,
	}
}
