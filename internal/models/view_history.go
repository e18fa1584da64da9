package models

import (
	"slices"
	"sort"
)

// ViewHistory is a capacity-bounded set of view records keyed by animal name.
// Records keep their persisted order; inserting a new name re-sorts the set by
// timestamp (newest first) and evicts everything past capacity.
type ViewHistory struct {
	capacity int
	records  []ViewRecord
}

func NewViewHistory(capacity int, records []ViewRecord) *ViewHistory {
	if capacity <= 0 {
		capacity = 1
	}
	h := &ViewHistory{
		capacity: capacity,
		records:  make([]ViewRecord, 0, min(len(records), capacity)+1),
	}
	h.records = append(h.records, records...)
	if len(h.records) > capacity {
		h.sortAndTrim()
	}
	return h
}

// Touch registers one view of name at the given epoch millisecond timestamp.
func (h *ViewHistory) Touch(name string, timestamp int64) {
	for i := range h.records {
		if h.records[i].Name == name {
			h.records[i].Count++
			h.records[i].Timestamp = timestamp
			return
		}
	}

	// New names go in front so that, among equal timestamps, the latest
	// touch sorts first and is never the one truncated.
	h.records = slices.Insert(h.records, 0, ViewRecord{Name: name, Timestamp: timestamp, Count: 1})
	h.sortAndTrim()
}

func (h *ViewHistory) sortAndTrim() {
	sort.SliceStable(h.records, func(i, j int) bool {
		return h.records[i].Timestamp > h.records[j].Timestamp
	})
	if len(h.records) > h.capacity {
		clear(h.records[h.capacity:])
		h.records = h.records[:h.capacity]
	}
}

func (h *ViewHistory) Len() int {
	return len(h.records)
}

// Records returns a copy of the records in persisted order.
func (h *ViewHistory) Records() []ViewRecord {
	out := make([]ViewRecord, len(h.records))
	copy(out, h.records)
	return out
}

// MostRecent returns a copy of the records ordered newest first.
func (h *ViewHistory) MostRecent() []ViewRecord {
	out := h.Records()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})
	return out
}

func (h *ViewHistory) Stats() ViewStats {
	stats := ViewStats{UniqueAnimals: len(h.records)}
	for i := range h.records {
		stats.TotalViews += h.records[i].Count
		if stats.MostViewed == nil || h.records[i].Count > stats.MostViewed.Count {
			rec := h.records[i]
			stats.MostViewed = &rec
		}
	}
	return stats
}
