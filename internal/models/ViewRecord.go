package models

type ViewRecord struct {
	Name      string `json:"name"`
	Timestamp int64  `json:"timestamp"`
	Count     int    `json:"count"`
}

type ViewStats struct {
	TotalViews    int         `json:"totalViews"`
	UniqueAnimals int         `json:"uniqueAnimals"`
	MostViewed    *ViewRecord `json:"mostViewed"`
}
