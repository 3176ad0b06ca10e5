package domain

import "time"

// Board geometry and value ladders. Round 1 runs 200..1000, round 2 doubles
// every step.
const (
	CategoriesPerRound   = 6
	QuestionsPerCategory = 5

	Round1Step = 200
	Round2Step = 400

	DoublesRound1 = 1
	DoublesRound2 = 2
)

// Question is a single board cell: a prompt, its expected response, and a
// face value from the round's ladder. IsAnswered never reverts within a game.
type Question struct {
	ID         string `json:"id"`
	Category   string `json:"category"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Value      int    `json:"value"`
	IsAnswered bool   `json:"isAnswered"`
	IsDouble   bool   `json:"isDouble"`
}

// Category is a named column of five questions sharing a topic.
type Category struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

// GameQuestions is a complete two-round board: six categories per round.
type GameQuestions struct {
	Round1 []Category `json:"round1"`
	Round2 []Category `json:"round2"`
}

// QuestionSet is a persisted named board with its creation timestamp.
type QuestionSet struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	DateCreated time.Time     `json:"dateCreated"`
	Questions   GameQuestions `json:"questions"`
}

// Player is one local participant. Score is signed: a missed daily double
// wager can take it below zero.
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Standing is one row of the scoreboard, ordered by score descending with
// ties kept in registration order.
type Standing struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
}

// RoundStep returns the value ladder increment for a round.
func RoundStep(round int) int {
	if round == 2 {
		return Round2Step
	}
	return Round1Step
}

// TopValue returns the highest face value on a round's board.
func TopValue(round int) int {
	return RoundStep(round) * QuestionsPerCategory
}

// CloneCategories deep-copies a round so session mutations never leak into
// the stored original.
func CloneCategories(categories []Category) []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = c
		out[i].Questions = make([]Question, len(c.Questions))
		copy(out[i].Questions, c.Questions)
	}
	return out
}

// Clone deep-copies both rounds.
func (g GameQuestions) Clone() GameQuestions {
	return GameQuestions{
		Round1: CloneCategories(g.Round1),
		Round2: CloneCategories(g.Round2),
	}
}

// Clone deep-copies the whole record.
func (s QuestionSet) Clone() QuestionSet {
	out := s
	out.Questions = s.Questions.Clone()
	return out
}
