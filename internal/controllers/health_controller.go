package controllers

import (
	"fauna/internal/catalog"
	"fauna/internal/structures"
	"fmt"
	"net/http"
	"time"
)

type HealthController struct {
	catalog   *catalog.Catalog
	driver    string
	startTime time.Time
}

type healthResponse struct {
	Status          string  `json:"status"`
	Uptime          string  `json:"uptime"`
	UptimeSeconds   float64 `json:"uptime_seconds"`
	StoreDriver     string  `json:"store_driver"`
	Questions       int     `json:"questions"`
	SeasonalAnimals int     `json:"seasonal_animals"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	writeJSON(w, http.StatusOK, healthResponse{
		Status:          "ok",
		Uptime:          formatDuration(uptime),
		UptimeSeconds:   uptime.Seconds(),
		StoreDriver:     hc.driver,
		Questions:       len(hc.catalog.Questions),
		SeasonalAnimals: len(hc.catalog.Seasonal),
	})
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(c *catalog.Catalog, conf *structures.Config) *HealthController {
	return &HealthController{
		catalog:   c,
		driver:    conf.Store.Driver,
		startTime: time.Now(),
	}
}
