package services

import (
	"fauna/internal/models"
	"fauna/internal/providers"
	"fauna/internal/structures"
	"sort"
	"sync"
	"time"
)

// FallbackTrending is served when nothing was viewed inside the trending window.
var FallbackTrending = []string{"Lion", "Tiger", "Elephant", "Giraffe", "Panda", "Dolphin", "Eagle", "Penguin", "Wolf", "Bear"}

type ViewTrackerInterface interface {
	TrackView(name string)
	GetTrendingAnimals(limit int) []string
	GetRecentlyViewed(limit int) []string
	GetViewStats() models.ViewStats
	ClearViewHistory()
}

type ViewTracker struct {
	mu       sync.Mutex
	store    models.PersistentStore
	logger   providers.Logger
	clock    Clock
	capacity int
	window   time.Duration
}

func NewViewTracker(store models.PersistentStore, logger providers.Logger, clock Clock, conf *structures.Config) *ViewTracker {
	capacity := conf.Discovery.HistoryCapacity
	if capacity <= 0 {
		capacity = providers.DefaultHistoryCapacity
	}
	window := conf.Discovery.TrendingWindow
	if window <= 0 {
		window = providers.DefaultTrendingWindow
	}
	return &ViewTracker{
		store:    store,
		logger:   logger,
		clock:    clock,
		capacity: capacity,
		window:   window,
	}
}

// LoadHistory reads the persisted view history.
func (vt *ViewTracker) LoadHistory() models.Result[*models.ViewHistory] {
	res := readJSON[[]models.ViewRecord](vt.store, models.ViewHistoryKey)
	records, err := res.Value()
	if err != nil {
		return models.Fail[*models.ViewHistory](err)
	}
	return models.Ok(models.NewViewHistory(vt.capacity, records))
}

func (vt *ViewTracker) history() *models.ViewHistory {
	res := vt.LoadHistory()
	if res.Failed() {
		vt.logger.Errorf(providers.TypeStore, "Unable to read view history: %s", res.Err())
	}
	return res.OrElse(models.NewViewHistory(vt.capacity, nil))
}

// TrackView records one view of name. Failures are logged and leave the
// persisted history untouched.
func (vt *ViewTracker) TrackView(name string) {
	vt.mu.Lock()
	defer vt.mu.Unlock()

	res := vt.LoadHistory()
	h, err := res.Value()
	if err != nil {
		vt.logger.Errorf(providers.TypeStore, "Unable to track view of %q: %s", name, err)
		return
	}
	h.Touch(name, vt.clock.Now().UnixMilli())

	if err := writeJSON(vt.store, models.ViewHistoryKey, h.Records()); err != nil {
		vt.logger.Errorf(providers.TypeStore, "Unable to persist view of %q: %s", name, err)
	}
}

// Trending ranks names by view count inside the trending window.
// Equal counts keep store order. An empty window yields an empty slice.
func (vt *ViewTracker) Trending(limit int) models.Result[[]string] {
	res := vt.LoadHistory()
	h, err := res.Value()
	if err != nil {
		return models.Fail[[]string](err)
	}

	cutoff := vt.clock.Now().Add(-vt.window).UnixMilli()
	type tally struct {
		name  string
		count int
	}
	var tallies []tally
	index := make(map[string]int)
	for _, rec := range h.Records() {
		if rec.Timestamp < cutoff {
			continue
		}
		if i, ok := index[rec.Name]; ok {
			tallies[i].count += rec.Count
			continue
		}
		index[rec.Name] = len(tallies)
		tallies = append(tallies, tally{name: rec.Name, count: rec.Count})
	}

	sort.SliceStable(tallies, func(i, j int) bool {
		return tallies[i].count > tallies[j].count
	})

	names := make([]string, 0, min(len(tallies), max(limit, 0)))
	for i := 0; i < len(tallies) && i < limit; i++ {
		names = append(names, tallies[i].name)
	}
	return models.Ok(names)
}

func (vt *ViewTracker) GetTrendingAnimals(limit int) []string {
	res := vt.Trending(limit)
	if res.Failed() {
		vt.logger.Errorf(providers.TypeStore, "Unable to rank trending animals: %s", res.Err())
		return fallbackTrending(limit)
	}
	names := res.OrElse(nil)
	if len(names) == 0 {
		return fallbackTrending(limit)
	}
	return names
}

func fallbackTrending(limit int) []string {
	n := min(max(limit, 0), len(FallbackTrending))
	out := make([]string, n)
	copy(out, FallbackTrending[:n])
	return out
}

func (vt *ViewTracker) GetRecentlyViewed(limit int) []string {
	recent := vt.history().MostRecent()
	names := make([]string, 0, min(len(recent), max(limit, 0)))
	for i := 0; i < len(recent) && i < limit; i++ {
		names = append(names, recent[i].Name)
	}
	return names
}

func (vt *ViewTracker) GetViewStats() models.ViewStats {
	return vt.history().Stats()
}

func (vt *ViewTracker) ClearViewHistory() {
	vt.mu.Lock()
	defer vt.mu.Unlock()
	if err := vt.store.Delete(models.ViewHistoryKey); err != nil {
		vt.logger.Errorf(providers.TypeStore, "Unable to clear view history: %s", err)
	}
}
