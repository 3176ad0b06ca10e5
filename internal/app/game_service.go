package app

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"jeopardy-board-service/internal/domain"
)

// SessionRepository abstracts how game sessions are stored (in-memory,
// Redis-tracked, etc).
type SessionRepository interface {
	GetOrCreate(gameID string) *Session
	Get(gameID string) (*Session, bool)
	Delete(gameID string)
}

// SetProvider supplies a stored question set for game start.
type SetProvider interface {
	Get(ctx context.Context, id string) (domain.QuestionSet, error)
}

// BoardGenerator produces a fresh built-in board when no custom set is
// selected.
type BoardGenerator func(rnd *rand.Rand) domain.GameQuestions

// BoardView is the presentation-layer snapshot of a game.
type BoardView struct {
	GameID     string            `json:"gameId"`
	Round      int               `json:"round"`
	Phase      string            `json:"phase"`
	Complete   bool              `json:"complete"`
	Players    []domain.Player   `json:"players"`
	Categories []domain.Category `json:"categories"`
	Open       *OpenQuestion     `json:"open,omitempty"`
}

// GameService contains the game use cases, keyed by game ID.
type GameService struct {
	sessions SessionRepository
	sets     SetProvider
	generate BoardGenerator
	newRand  func() *rand.Rand
	newID    func() string
}

func NewGameService(sessions SessionRepository, sets SetProvider, generate BoardGenerator) *GameService {
	return &GameService{
		sessions: sessions,
		sets:     sets,
		generate: generate,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		newID: uuid.NewString,
	}
}

// NewGameServiceWithRand is test-only for deterministic daily doubles and
// player IDs.
func NewGameServiceWithRand(sessions SessionRepository, sets SetProvider, generate BoardGenerator, newRand func() *rand.Rand, newID func() string) *GameService {
	return &GameService{sessions: sessions, sets: sets, generate: generate, newRand: newRand, newID: newID}
}

// StartGame creates and starts a session. An empty setID plays the built-in
// board; otherwise the named stored set is used. Player names become the
// roster in the given order, 1-3 of them.
func (g *GameService) StartGame(ctx context.Context, gameID, setID string, playerNames []string) (BoardView, error) {
	var questions domain.GameQuestions
	rnd := g.newRand()
	if setID == "" {
		questions = g.generate(rnd)
	} else {
		set, err := g.sets.Get(ctx, setID)
		if err != nil {
			return BoardView{}, err
		}
		questions = set.Questions
	}

	players := make([]domain.Player, 0, len(playerNames))
	for _, name := range playerNames {
		players = append(players, domain.Player{ID: g.newID(), Name: name})
	}

	session := g.sessions.GetOrCreate(gameID)
	if err := session.Start(questions, players, rnd); err != nil {
		return BoardView{}, err
	}
	return g.boardView(gameID, session), nil
}

// SelectQuestion opens a question on the board.
func (g *GameService) SelectQuestion(_ context.Context, gameID, questionID string) (OpenQuestion, error) {
	session, ok := g.sessions.Get(gameID)
	if !ok {
		return OpenQuestion{}, domain.ErrGameNotFound
	}
	return session.SelectQuestion(questionID)
}

// SubmitWager fixes a daily double's value for the wagering player.
func (g *GameService) SubmitWager(_ context.Context, gameID, playerID string, amount int) (OpenQuestion, error) {
	session, ok := g.sessions.Get(gameID)
	if !ok {
		return OpenQuestion{}, domain.ErrGameNotFound
	}
	return session.SubmitWager(playerID, amount)
}

// TrueDailyDouble wagers the maximum allowed amount for the player.
func (g *GameService) TrueDailyDouble(_ context.Context, gameID, playerID string) (OpenQuestion, error) {
	session, ok := g.sessions.Get(gameID)
	if !ok {
		return OpenQuestion{}, domain.ErrGameNotFound
	}
	return session.TrueDailyDouble(playerID)
}

// ResolveAnswer closes the open question, crediting playerID when non-empty.
func (g *GameService) ResolveAnswer(_ context.Context, gameID, playerID string) (Outcome, error) {
	session, ok := g.sessions.Get(gameID)
	if !ok {
		return Outcome{}, domain.ErrGameNotFound
	}
	return session.ResolveAnswer(playerID)
}

// CancelQuestion closes the open question without resolving it.
func (g *GameService) CancelQuestion(_ context.Context, gameID string) error {
	session, ok := g.sessions.Get(gameID)
	if !ok {
		return domain.ErrGameNotFound
	}
	return session.CancelQuestion()
}

// Board returns the current snapshot for a game.
func (g *GameService) Board(_ context.Context, gameID string) (BoardView, error) {
	session, ok := g.sessions.Get(gameID)
	if !ok {
		return BoardView{}, domain.ErrGameNotFound
	}
	return g.boardView(gameID, session), nil
}

// Standings returns the scoreboard, final once the game is complete.
func (g *GameService) Standings(_ context.Context, gameID string) ([]domain.Standing, error) {
	session, ok := g.sessions.Get(gameID)
	if !ok {
		return nil, domain.ErrGameNotFound
	}
	return session.Standings(), nil
}

// EndGame drops the session.
func (g *GameService) EndGame(_ context.Context, gameID string) {
	g.sessions.Delete(gameID)
}

func (g *GameService) boardView(gameID string, session *Session) BoardView {
	view := BoardView{
		GameID:     gameID,
		Round:      session.Round(),
		Phase:      session.Phase().String(),
		Complete:   session.Complete(),
		Players:    session.Players(),
		Categories: session.Categories(),
	}
	if open, ok := session.Open(); ok {
		view.Open = &open
	}
	return view
}
