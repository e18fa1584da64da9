package models

import "time"

type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// SeasonForMonth maps a calendar month to its season bucket.
func SeasonForMonth(month time.Month) Season {
	switch month {
	case time.March, time.April, time.May:
		return SeasonSpring
	case time.June, time.July, time.August:
		return SeasonSummer
	case time.September, time.October, time.November:
		return SeasonFall
	default:
		return SeasonWinter
	}
}

type SeasonalEntry struct {
	Name           string `json:"name"`
	ScientificName string `json:"scientificName"`
	Season         Season `json:"season"`
	Months         []int  `json:"months"`
	Reason         string `json:"reason"`
}

func (e *SeasonalEntry) InMonth(month time.Month) bool {
	for _, m := range e.Months {
		if m == int(month) {
			return true
		}
	}
	return false
}
