package services

import (
	"errors"
	"fauna/internal/models"
)

type SessionMode string

const (
	ModeCustom SessionMode = "custom"
	ModeDaily  SessionMode = "daily"
)

var ErrSessionCompleted = errors.New("quiz session already completed")

type AnswerResult struct {
	QuestionID    int    `json:"questionId"`
	Correct       bool   `json:"correct"`
	CorrectAnswer int    `json:"correctAnswer"`
	Explanation   string `json:"explanation"`
}

func evaluate(q *models.QuizQuestion, option int) AnswerResult {
	return AnswerResult{
		QuestionID:    q.ID,
		Correct:       q.IsCorrect(option),
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
	}
}

// QuizSession scores one pass over an ordered question list. Nothing is
// persisted until the session is handed to StatsAggregator.
type QuizSession struct {
	Mode          SessionMode
	Questions     []models.QuizQuestion
	cursor        int
	score         int
	currentStreak int
	bestStreak    int
}

func NewQuizSession(mode SessionMode, questions []models.QuizQuestion) *QuizSession {
	return &QuizSession{Mode: mode, Questions: questions}
}

// Current returns the question awaiting an answer.
func (s *QuizSession) Current() (models.QuizQuestion, bool) {
	if s.Completed() {
		return models.QuizQuestion{}, false
	}
	return s.Questions[s.cursor], true
}

func (s *QuizSession) Answer(option int) (AnswerResult, error) {
	if s.Completed() {
		return AnswerResult{}, ErrSessionCompleted
	}
	result := evaluate(&s.Questions[s.cursor], option)
	s.cursor++
	if result.Correct {
		s.score++
		s.currentStreak++
		s.bestStreak = max(s.bestStreak, s.currentStreak)
	} else {
		s.currentStreak = 0
	}
	return result, nil
}

func (s *QuizSession) Completed() bool { return s.cursor >= len(s.Questions) }
func (s *QuizSession) Answered() int   { return s.cursor }
func (s *QuizSession) Len() int        { return len(s.Questions) }
func (s *QuizSession) Score() int      { return s.score }
func (s *QuizSession) CurrentStreak() int {
	return s.currentStreak
}
func (s *QuizSession) BestStreak() int {
	return s.bestStreak
}
