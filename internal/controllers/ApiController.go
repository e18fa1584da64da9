package controllers

import (
	"fauna/internal/models"
	"fauna/internal/providers"
	"fauna/internal/services"
	"net/http"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/gookit/validate"
	"github.com/spf13/cast"
	"go.uber.org/atomic"
)

const (
	maxRequestBodySize = 1 << 20 // 1 MB
	maxListLimit       = 100

	defaultListLimit     = 10
	defaultSeasonalLimit = 3

	viewStatsCacheKey = "views:stats"
)

type trackViewRequest struct {
	Name string `json:"name" validate:"required|maxLen:128"`
}

type seasonResponse struct {
	Season models.Season `json:"season"`
}

type ApiController struct {
	logger   providers.Logger
	views    services.ViewTrackerInterface
	seasonal services.SeasonalSelectorInterface
	cache    providers.CacheProviderInterface
	metrics  providers.MetricsProviderInterface

	// statsGen is part of the view stats cache key. Writers bump it, so a
	// stats computation that finishes after a write lands under a key that
	// is no longer read.
	statsGen atomic.Uint64
}

func NewApiController(logger providers.Logger, views services.ViewTrackerInterface, seasonal services.SeasonalSelectorInterface, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) *ApiController {
	return &ApiController{
		logger:   logger,
		views:    views,
		seasonal: seasonal,
		cache:    cache,
		metrics:  metrics,
	}
}

// queryLimit reads an integer query parameter, falling back to def when absent.
func queryLimit(r *http.Request, name string, def int) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, true
	}
	n, err := cast.ToIntE(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return min(n, maxListLimit), true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	gson, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeRaw(w, status, gson)
}

func writeRaw(w http.ResponseWriter, status int, gson []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

// decodeBody reads a size-limited JSON body into dst and validates its tags.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return false
	}
	v := validate.Struct(dst)
	if !v.Validate() {
		http.Error(w, v.Errors.One(), http.StatusBadRequest)
		return false
	}
	return true
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		writeRaw(w, http.StatusOK, data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)
	writeRaw(w, http.StatusOK, gson)
}

func (ac *ApiController) statsCacheKey() string {
	return viewStatsCacheKey + ":" + strconv.FormatUint(ac.statsGen.Load(), 10)
}

func (ac *ApiController) invalidateStats() {
	stale := ac.statsCacheKey()
	ac.statsGen.Inc()
	ac.cache.Del(stale)
}

func (ac *ApiController) TrackView(w http.ResponseWriter, r *http.Request) {
	var payload trackViewRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	ac.views.TrackView(name)
	ac.invalidateStats()
	ac.metrics.IncViewsTracked()
	ac.logger.Debugf(providers.TypePost, "View tracked: %s", name)
	w.WriteHeader(http.StatusCreated)
}

func (ac *ApiController) ClearViews(w http.ResponseWriter, r *http.Request) {
	ac.views.ClearViewHistory()
	ac.invalidateStats()
	ac.logger.Infof(providers.TypePost, "View history cleared")
	w.WriteHeader(http.StatusNoContent)
}

func (ac *ApiController) Trending(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryLimit(r, "limit", defaultListLimit)
	if !ok {
		http.Error(w, "invalid limit", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, ac.views.GetTrendingAnimals(limit))
}

func (ac *ApiController) Recent(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryLimit(r, "limit", defaultListLimit)
	if !ok {
		http.Error(w, "invalid limit", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, ac.views.GetRecentlyViewed(limit))
}

func (ac *ApiController) ViewStats(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, ac.statsCacheKey(), func() (any, error) {
		return ac.views.GetViewStats(), nil
	})
}

func (ac *ApiController) Season(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, seasonResponse{Season: ac.seasonal.GetCurrentSeason()})
}

func (ac *ApiController) Seasonal(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryLimit(r, "limit", defaultSeasonalLimit)
	if !ok {
		http.Error(w, "invalid limit", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, ac.seasonal.GetSeasonalAnimals(limit))
}
