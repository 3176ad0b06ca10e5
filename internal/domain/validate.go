package domain

import "fmt"

// ValidateSet checks a board against the fixed game shape: six categories
// per round, five questions per category, each category walking its round's
// value ladder in order, and question IDs distinct across the whole set.
func ValidateSet(set GameQuestions) error {
	seen := make(map[string]struct{}, 2*CategoriesPerRound*QuestionsPerCategory)
	if err := validateRound(1, set.Round1, seen); err != nil {
		return err
	}
	return validateRound(2, set.Round2, seen)
}

func validateRound(round int, categories []Category, seen map[string]struct{}) error {
	if len(categories) != CategoriesPerRound {
		return fmt.Errorf("%w: round %d has %d categories, want %d", ErrInvalidSet, round, len(categories), CategoriesPerRound)
	}

	step := RoundStep(round)
	for _, category := range categories {
		if len(category.Questions) != QuestionsPerCategory {
			return fmt.Errorf("%w: category %q has %d questions, want %d", ErrInvalidSet, category.Name, len(category.Questions), QuestionsPerCategory)
		}
		for i, q := range category.Questions {
			if want := step * (i + 1); q.Value != want {
				return fmt.Errorf("%w: category %q question %d has value %d, want %d", ErrInvalidSet, category.Name, i+1, q.Value, want)
			}
			if q.ID == "" {
				return fmt.Errorf("%w: category %q question %d has no ID", ErrInvalidSet, category.Name, i+1)
			}
			if _, dup := seen[q.ID]; dup {
				return fmt.Errorf("%w: duplicate question ID %s", ErrInvalidSet, q.ID)
			}
			seen[q.ID] = struct{}{}
		}
	}
	return nil
}
