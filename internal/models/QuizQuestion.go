package models

import "fmt"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Category string

const (
	CategoryAll      Category = "all"
	CategoryMammals  Category = "mammals"
	CategoryBirds    Category = "birds"
	CategoryReptiles Category = "reptiles"
	CategoryFish     Category = "fish"
	CategoryMarine   Category = "marine"
)

type QuestionType string

const (
	QuestionText  QuestionType = "text"
	QuestionImage QuestionType = "image"
	QuestionSound QuestionType = "sound"
)

type QuizQuestion struct {
	ID            int          `json:"id"`
	Question      string       `json:"question"`
	Options       []string     `json:"options"`
	CorrectAnswer int          `json:"correctAnswer"`
	Explanation   string       `json:"explanation"`
	Difficulty    Difficulty   `json:"difficulty"`
	Category      Category     `json:"category"`
	Type          QuestionType `json:"type"`
	Media         string       `json:"media,omitempty"`
}

func (q *QuizQuestion) Validate() error {
	if len(q.Options) < 2 {
		return fmt.Errorf("question %d: at least two options required, got %d", q.ID, len(q.Options))
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return fmt.Errorf("question %d: correct answer %d out of range [0,%d)", q.ID, q.CorrectAnswer, len(q.Options))
	}
	return nil
}

// IsCorrect reports whether the submitted option index is the right answer.
func (q *QuizQuestion) IsCorrect(option int) bool {
	return option == q.CorrectAnswer
}

// QuizFilters narrows a custom session. Empty fields match everything.
type QuizFilters struct {
	Difficulty Difficulty   `json:"difficulty,omitempty"`
	Category   Category     `json:"category,omitempty"`
	Type       QuestionType `json:"type,omitempty"`
}

func (f QuizFilters) Match(q *QuizQuestion) bool {
	if f.Difficulty != "" && q.Difficulty != f.Difficulty {
		return false
	}
	if f.Category != "" && f.Category != CategoryAll && q.Category != f.Category && q.Category != CategoryAll {
		return false
	}
	if f.Type != "" && q.Type != f.Type {
		return false
	}
	return true
}
