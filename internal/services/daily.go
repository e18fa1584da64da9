package services

import (
	"fauna/internal/models"
	"time"
)

// dailyMultiplier drives the daily challenge permutation. Changing it changes
// every daily sequence already served.
const dailyMultiplier uint64 = 2654435761

// DailyKey renders the calendar day of t, e.g. "Sat Oct 17 2026".
func DailyKey(t time.Time) string {
	return t.Format("Mon Jan 02 2006")
}

// DailySeed is the sum of the character codes of key.
func DailySeed(key string) uint64 {
	var seed uint64
	for _, r := range key {
		seed += uint64(r)
	}
	return seed
}

// DailyOrder permutes a copy of questions from the last index down to 1,
// swapping i with ((seed+i)*dailyMultiplier) mod (i+1).
func DailyOrder(questions []models.QuizQuestion, seed uint64) []models.QuizQuestion {
	out := make([]models.QuizQuestion, len(questions))
	copy(out, questions)
	for i := len(out) - 1; i >= 1; i-- {
		j := int(((seed + uint64(i)) * dailyMultiplier) % uint64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}
