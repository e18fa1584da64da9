package services

import "fauna/internal/models"

type SeasonalSelectorInterface interface {
	GetCurrentSeason() models.Season
	GetSeasonalAnimals(limit int) []models.SeasonalEntry
}

// SeasonalSelector picks spotlight animals for the current calendar month.
// Sampling is intentionally different on every call.
type SeasonalSelector struct {
	roster []models.SeasonalEntry
	clock  Clock
	random RandomSource
}

func NewSeasonalSelector(roster []models.SeasonalEntry, clock Clock, random RandomSource) *SeasonalSelector {
	return &SeasonalSelector{
		roster: roster,
		clock:  clock,
		random: random,
	}
}

func (ss *SeasonalSelector) GetCurrentSeason() models.Season {
	return models.SeasonForMonth(ss.clock.Now().Month())
}

// GetSeasonalAnimals samples up to limit entries, without replacement, from
// the roster entries active in the current month.
func (ss *SeasonalSelector) GetSeasonalAnimals(limit int) []models.SeasonalEntry {
	month := ss.clock.Now().Month()
	pool := make([]models.SeasonalEntry, 0, len(ss.roster))
	for i := range ss.roster {
		if ss.roster[i].InMonth(month) {
			pool = append(pool, ss.roster[i])
		}
	}

	k := min(max(limit, 0), len(pool))
	for i := 0; i < k; i++ {
		j := i + ss.random.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
