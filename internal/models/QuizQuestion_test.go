package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuizQuestion_Validate(t *testing.T) {
	q := QuizQuestion{ID: 1, Options: []string{"a", "b"}, CorrectAnswer: 1}
	assert.NoError(t, q.Validate())

	q.CorrectAnswer = 2
	assert.Error(t, q.Validate())

	q.CorrectAnswer = -1
	assert.Error(t, q.Validate())

	q = QuizQuestion{ID: 2, Options: []string{"only"}, CorrectAnswer: 0}
	assert.Error(t, q.Validate())
}

func TestQuizQuestion_IsCorrect(t *testing.T) {
	q := QuizQuestion{Options: []string{"a", "b", "c"}, CorrectAnswer: 2}
	assert.True(t, q.IsCorrect(2))
	assert.False(t, q.IsCorrect(0))
	assert.False(t, q.IsCorrect(5))
}

func TestQuizFilters_Match(t *testing.T) {
	birdEasy := &QuizQuestion{Difficulty: DifficultyEasy, Category: CategoryBirds, Type: QuestionText}
	general := &QuizQuestion{Difficulty: DifficultyHard, Category: CategoryAll, Type: QuestionSound}

	tests := []struct {
		name    string
		filters QuizFilters
		q       *QuizQuestion
		want    bool
	}{
		{"empty matches", QuizFilters{}, birdEasy, true},
		{"difficulty match", QuizFilters{Difficulty: DifficultyEasy}, birdEasy, true},
		{"difficulty mismatch", QuizFilters{Difficulty: DifficultyHard}, birdEasy, false},
		{"category match", QuizFilters{Category: CategoryBirds}, birdEasy, true},
		{"category mismatch", QuizFilters{Category: CategoryFish}, birdEasy, false},
		{"category all filter", QuizFilters{Category: CategoryAll}, birdEasy, true},
		{"question in all category", QuizFilters{Category: CategoryFish}, general, true},
		{"type mismatch", QuizFilters{Type: QuestionImage}, birdEasy, false},
		{"type match", QuizFilters{Type: QuestionSound}, general, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filters.Match(tt.q))
		})
	}
}
