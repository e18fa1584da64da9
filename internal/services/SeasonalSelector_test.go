package services

import (
	"fauna/internal/catalog"
	"fauna/internal/models"
	"fauna/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster() []models.SeasonalEntry {
	return []models.SeasonalEntry{
		{Name: "Penguin", Season: models.SeasonWinter, Months: []int{12, 1, 2}},
		{Name: "Frog", Season: models.SeasonSpring, Months: []int{3, 4, 5}},
		{Name: "Seal", Season: models.SeasonWinter, Months: []int{12, 1, 2, 3}},
		{Name: "Firefly", Season: models.SeasonSummer, Months: []int{6, 7, 8}},
		{Name: "Polar Bear", Season: models.SeasonWinter, Months: []int{11, 12, 1, 2}},
		{Name: "Salmon", Season: models.SeasonFall, Months: []int{9, 10, 11}},
	}
}

func TestGetCurrentSeason(t *testing.T) {
	clock := testutil.NewFixedClock(time.Date(2026, time.January, 15, 0, 0, 0, 0, time.Local))
	ss := NewSeasonalSelector(nil, clock, &testutil.SequenceRandom{})
	assert.Equal(t, models.SeasonWinter, ss.GetCurrentSeason())

	clock.Current = time.Date(2026, time.April, 1, 0, 0, 0, 0, time.Local)
	assert.Equal(t, models.SeasonSpring, ss.GetCurrentSeason())

	clock.Current = time.Date(2026, time.August, 31, 23, 0, 0, 0, time.Local)
	assert.Equal(t, models.SeasonSummer, ss.GetCurrentSeason())

	clock.Current = time.Date(2026, time.November, 30, 0, 0, 0, 0, time.Local)
	assert.Equal(t, models.SeasonFall, ss.GetCurrentSeason())

	clock.Current = time.Date(2026, time.December, 1, 0, 0, 0, 0, time.Local)
	assert.Equal(t, models.SeasonWinter, ss.GetCurrentSeason())
}

func TestGetSeasonalAnimals_JanuaryOnlyWinterEntries(t *testing.T) {
	clock := testutil.NewFixedClock(time.Date(2026, time.January, 10, 0, 0, 0, 0, time.Local))
	ss := NewSeasonalSelector(testRoster(), clock, NewSystemRandom())

	for run := 0; run < 20; run++ {
		picked := ss.GetSeasonalAnimals(3)
		require.Len(t, picked, 3)
		seen := make(map[string]bool)
		for _, e := range picked {
			assert.True(t, e.InMonth(time.January), e.Name)
			assert.False(t, seen[e.Name], "sampled without replacement")
			seen[e.Name] = true
		}
	}
}

func TestGetSeasonalAnimals_DeterministicWithFixedSequence(t *testing.T) {
	clock := testutil.NewFixedClock(time.Date(2026, time.January, 10, 0, 0, 0, 0, time.Local))
	// Pool for January in roster order: Penguin, Seal, Polar Bear.
	ss := NewSeasonalSelector(testRoster(), clock, &testutil.SequenceRandom{Values: []int{2, 0}})

	picked := ss.GetSeasonalAnimals(2)
	require.Len(t, picked, 2)
	assert.Equal(t, "Polar Bear", picked[0].Name)
	assert.Equal(t, "Seal", picked[1].Name)
}

func TestGetSeasonalAnimals_FewerThanLimit(t *testing.T) {
	clock := testutil.NewFixedClock(time.Date(2026, time.July, 10, 0, 0, 0, 0, time.Local))
	ss := NewSeasonalSelector(testRoster(), clock, NewSystemRandom())

	picked := ss.GetSeasonalAnimals(5)
	require.Len(t, picked, 1)
	assert.Equal(t, "Firefly", picked[0].Name)
}

func TestGetSeasonalAnimals_ZeroLimit(t *testing.T) {
	clock := testutil.NewFixedClock(time.Date(2026, time.January, 10, 0, 0, 0, 0, time.Local))
	ss := NewSeasonalSelector(testRoster(), clock, NewSystemRandom())
	assert.Empty(t, ss.GetSeasonalAnimals(0))
	assert.Empty(t, ss.GetSeasonalAnimals(-2))
}

func TestGetSeasonalAnimals_DoesNotMutateRoster(t *testing.T) {
	roster := testRoster()
	clock := testutil.NewFixedClock(time.Date(2026, time.January, 10, 0, 0, 0, 0, time.Local))
	ss := NewSeasonalSelector(roster, clock, &testutil.SequenceRandom{Values: []int{2, 1, 0}})
	ss.GetSeasonalAnimals(3)
	assert.Equal(t, testRoster(), roster)
}

func TestGetSeasonalAnimals_EmbeddedCatalogJanuary(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)
	clock := testutil.NewFixedClock(time.Date(2026, time.January, 10, 0, 0, 0, 0, time.Local))
	ss := NewSeasonalSelector(c.Seasonal, clock, NewSystemRandom())

	for _, e := range ss.GetSeasonalAnimals(3) {
		assert.Contains(t, e.Months, 1, e.Name)
	}
}
