package services

import (
	"fauna/internal/models"
	"fauna/internal/providers"
	"fauna/internal/structures"
	"fmt"
	"time"
)

type QuizSessionGeneratorInterface interface {
	GetRandomQuestions(count int, filters models.QuizFilters) []models.QuizQuestion
	GetDailyQuestions() []models.QuizQuestion
	GetDailyQuestionsFor(day time.Time) []models.QuizQuestion
	CheckAnswer(questionID, option int) (AnswerResult, error)
}

type QuizSessionGenerator struct {
	questions  []models.QuizQuestion
	byID       map[int]int
	clock      Clock
	random     RandomSource
	dailyCount int
}

func NewQuizSessionGenerator(questions []models.QuizQuestion, clock Clock, random RandomSource, conf *structures.Config) *QuizSessionGenerator {
	dailyCount := conf.Discovery.DailyQuestions
	if dailyCount <= 0 {
		dailyCount = providers.DefaultDailyQuestions
	}
	byID := make(map[int]int, len(questions))
	for i := range questions {
		byID[questions[i].ID] = i
	}
	return &QuizSessionGenerator{
		questions:  questions,
		byID:       byID,
		clock:      clock,
		random:     random,
		dailyCount: dailyCount,
	}
}

// GetRandomQuestions filters the question bank and returns up to count
// questions in shuffled order.
func (g *QuizSessionGenerator) GetRandomQuestions(count int, filters models.QuizFilters) []models.QuizQuestion {
	pool := make([]models.QuizQuestion, 0, len(g.questions))
	for i := range g.questions {
		if filters.Match(&g.questions[i]) {
			pool = append(pool, g.questions[i])
		}
	}

	for i := len(pool) - 1; i > 0; i-- {
		j := g.random.IntN(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:min(max(count, 0), len(pool))]
}

// GetDailyQuestions returns the daily challenge for the clock's calendar day.
func (g *QuizSessionGenerator) GetDailyQuestions() []models.QuizQuestion {
	return g.GetDailyQuestionsFor(g.clock.Now())
}

// GetDailyQuestionsFor is identical for every caller on the same calendar day.
func (g *QuizSessionGenerator) GetDailyQuestionsFor(day time.Time) []models.QuizQuestion {
	ordered := DailyOrder(g.questions, DailySeed(DailyKey(day)))
	return ordered[:min(g.dailyCount, len(ordered))]
}

func (g *QuizSessionGenerator) NewCustomSession(count int, filters models.QuizFilters) *QuizSession {
	return NewQuizSession(ModeCustom, g.GetRandomQuestions(count, filters))
}

func (g *QuizSessionGenerator) NewDailySession() *QuizSession {
	return NewQuizSession(ModeDaily, g.GetDailyQuestions())
}

func (g *QuizSessionGenerator) CheckAnswer(questionID, option int) (AnswerResult, error) {
	i, ok := g.byID[questionID]
	if !ok {
		return AnswerResult{}, fmt.Errorf("question %d: %w", questionID, models.ErrNotFound)
	}
	return evaluate(&g.questions[i], option), nil
}
