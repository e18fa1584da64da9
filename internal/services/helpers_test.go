package services

import (
	"fauna/internal/models"
	"fauna/internal/providers"
	"fauna/internal/structures"
	"fauna/internal/testutil"
	"time"
)

var testNow = time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)

func testConfig() *structures.Config {
	return &structures.Config{
		Discovery: structures.DiscoveryConfig{
			HistoryCapacity: providers.DefaultHistoryCapacity,
			TrendingWindow:  providers.DefaultTrendingWindow,
			DailyQuestions:  providers.DefaultDailyQuestions,
		},
	}
}

func numberedQuestions(n int) []models.QuizQuestion {
	out := make([]models.QuizQuestion, n)
	for i := range out {
		out[i] = models.QuizQuestion{
			ID:            i + 1,
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: i % 4,
			Difficulty:    models.DifficultyEasy,
			Category:      models.CategoryMammals,
			Type:          models.QuestionText,
		}
	}
	return out
}

func questionIDs(qs []models.QuizQuestion) []int {
	ids := make([]int, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	return ids
}

type viewTrackerFixture struct {
	tracker *ViewTracker
	store   *testutil.MemoryStore
	clock   *testutil.FixedClock
	logger  *testutil.MockLogger
}

func newViewTrackerFixture() viewTrackerFixture {
	f := viewTrackerFixture{
		store:  testutil.NewMemoryStore(),
		clock:  testutil.NewFixedClock(testNow),
		logger: &testutil.MockLogger{},
	}
	f.tracker = NewViewTracker(f.store, f.logger, f.clock, testConfig())
	return f
}
