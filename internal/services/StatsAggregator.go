package services

import (
	"fauna/internal/models"
	"fauna/internal/providers"
	"sync"
)

const lastPlayedLayout = "2006-01-02T15:04:05.000Z07:00"

type StatsAggregatorInterface interface {
	GetQuizStats() models.QuizStats
	SaveQuizStats(prior models.QuizStats, score, length, bestStreak int) models.QuizStats
	RecordResult(score, length, bestStreak int) models.QuizStats
}

// StatsAggregator folds completed sessions into the lifetime QuizStats record.
type StatsAggregator struct {
	mu     sync.Mutex
	store  models.PersistentStore
	logger providers.Logger
	clock  Clock
}

func NewStatsAggregator(store models.PersistentStore, logger providers.Logger, clock Clock) *StatsAggregator {
	return &StatsAggregator{
		store:  store,
		logger: logger,
		clock:  clock,
	}
}

// LoadQuizStats reads the persisted stats; an absent record is all zeros.
func (sa *StatsAggregator) LoadQuizStats() models.Result[models.QuizStats] {
	return readJSON[models.QuizStats](sa.store, models.QuizStatsKey)
}

func (sa *StatsAggregator) GetQuizStats() models.QuizStats {
	res := sa.LoadQuizStats()
	if res.Failed() {
		sa.logger.Errorf(providers.TypeStore, "Unable to read quiz stats: %s", res.Err())
	}
	return res.OrElse(models.QuizStats{})
}

// SaveQuizStats folds one completed session into prior and persists the
// whole record. The new record is returned even when the write fails.
func (sa *StatsAggregator) SaveQuizStats(prior models.QuizStats, score, length, bestStreak int) models.QuizStats {
	sa.mu.Lock()
	defer sa.mu.Unlock()
	return sa.fold(prior, score, length, bestStreak)
}

// RecordResult reads the current stats and folds one session into them
// while holding the write lock.
func (sa *StatsAggregator) RecordResult(score, length, bestStreak int) models.QuizStats {
	sa.mu.Lock()
	defer sa.mu.Unlock()
	return sa.fold(sa.GetQuizStats(), score, length, bestStreak)
}

func (sa *StatsAggregator) CompleteSession(session *QuizSession) models.QuizStats {
	return sa.RecordResult(session.Score(), session.Len(), session.BestStreak())
}

func (sa *StatsAggregator) fold(prior models.QuizStats, score, length, bestStreak int) models.QuizStats {
	next := models.QuizStats{
		TotalQuizzes:   prior.TotalQuizzes + 1,
		TotalCorrect:   prior.TotalCorrect + score,
		TotalQuestions: prior.TotalQuestions + length,
		BestStreak:     max(prior.BestStreak, bestStreak),
		CurrentStreak:  bestStreak,
		LastPlayed:     sa.clock.Now().UTC().Format(lastPlayedLayout),
	}
	if err := writeJSON(sa.store, models.QuizStatsKey, next); err != nil {
		sa.logger.Errorf(providers.TypeStore, "Unable to persist quiz stats: %s", err)
	}
	return next
}
