package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewHistory_TouchTwiceIncrementsCount(t *testing.T) {
	h := NewViewHistory(100, nil)
	h.Touch("Lion", 1000)
	h.Touch("Lion", 2000)

	records := h.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "Lion", records[0].Name)
	assert.Equal(t, 2, records[0].Count)
	assert.Equal(t, int64(2000), records[0].Timestamp)
}

func TestViewHistory_NameMatchIsExact(t *testing.T) {
	h := NewViewHistory(100, nil)
	h.Touch("Lion", 1)
	h.Touch("lion", 2)
	assert.Equal(t, 2, h.Len())
}

func TestViewHistory_CapacityKeepsMostRecent(t *testing.T) {
	h := NewViewHistory(100, nil)
	for i := 0; i < 150; i++ {
		h.Touch(fmt.Sprintf("animal-%d", i), int64(i+1))
	}

	records := h.Records()
	require.Len(t, records, 100)
	assert.Equal(t, "animal-149", records[0].Name)
	assert.Equal(t, "animal-50", records[99].Name)
	for _, r := range records {
		assert.GreaterOrEqual(t, r.Timestamp, int64(51))
	}
}

func TestViewHistory_SameTimestampKeepsNewcomer(t *testing.T) {
	h := NewViewHistory(100, nil)
	for i := 0; i < 100; i++ {
		h.Touch(fmt.Sprintf("animal-%03d", i), 5000)
	}
	h.Touch("Newcomer", 5000)

	records := h.Records()
	require.Len(t, records, 100)
	assert.Equal(t, "Newcomer", records[0].Name)
	assert.Equal(t, "Newcomer", h.MostRecent()[0].Name)
	assert.Equal(t, "animal-001", records[99].Name, "oldest insert is evicted")
}

func TestViewHistory_RefreshedRecordSurvivesEviction(t *testing.T) {
	h := NewViewHistory(3, nil)
	h.Touch("A", 1)
	h.Touch("B", 2)
	h.Touch("C", 3)
	h.Touch("A", 4)
	h.Touch("D", 5)

	names := make([]string, 0, 3)
	for _, r := range h.Records() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"D", "A", "C"}, names)
}

func TestViewHistory_UpdateKeepsStoreOrder(t *testing.T) {
	h := NewViewHistory(10, nil)
	h.Touch("A", 1)
	h.Touch("B", 2)
	h.Touch("A", 3)

	records := h.Records()
	assert.Equal(t, "B", records[0].Name)
	assert.Equal(t, "A", records[1].Name)

	recent := h.MostRecent()
	assert.Equal(t, "A", recent[0].Name)
	assert.Equal(t, "B", recent[1].Name)
}

func TestViewHistory_LoadTrimsOversizedInput(t *testing.T) {
	input := []ViewRecord{
		{Name: "old", Timestamp: 1, Count: 1},
		{Name: "new", Timestamp: 3, Count: 1},
		{Name: "mid", Timestamp: 2, Count: 1},
	}
	h := NewViewHistory(2, input)

	records := h.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "new", records[0].Name)
	assert.Equal(t, "mid", records[1].Name)
}

func TestViewHistory_RecordsReturnsCopy(t *testing.T) {
	h := NewViewHistory(10, nil)
	h.Touch("Cat", 1)

	records := h.Records()
	records[0].Count = 99

	assert.Equal(t, 1, h.Records()[0].Count)
}

func TestViewHistory_Stats(t *testing.T) {
	h := NewViewHistory(100, []ViewRecord{
		{Name: "Cat", Timestamp: 1, Count: 3},
		{Name: "Dog", Timestamp: 2, Count: 5},
	})

	stats := h.Stats()
	assert.Equal(t, 8, stats.TotalViews)
	assert.Equal(t, 2, stats.UniqueAnimals)
	require.NotNil(t, stats.MostViewed)
	assert.Equal(t, "Dog", stats.MostViewed.Name)
	assert.Equal(t, 5, stats.MostViewed.Count)
}

func TestViewHistory_StatsTieKeepsFirst(t *testing.T) {
	h := NewViewHistory(100, []ViewRecord{
		{Name: "Cat", Timestamp: 1, Count: 4},
		{Name: "Dog", Timestamp: 2, Count: 4},
	})
	assert.Equal(t, "Cat", h.Stats().MostViewed.Name)
}

func TestViewHistory_StatsEmpty(t *testing.T) {
	stats := NewViewHistory(100, nil).Stats()
	assert.Equal(t, 0, stats.TotalViews)
	assert.Equal(t, 0, stats.UniqueAnimals)
	assert.Nil(t, stats.MostViewed)
}
