package controllers

import (
	"errors"
	"fauna/internal/models"
	"fauna/internal/providers"
	"fauna/internal/services"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
)

const (
	defaultQuizCount = 10
	dailyDateLayout  = "2006-01-02"
)

type answerRequest struct {
	ID     int `json:"id" validate:"required|min:1"`
	Answer int `json:"answer" validate:"min:0"`
}

type sessionResultRequest struct {
	Score      int `json:"score" validate:"min:0"`
	Length     int `json:"length" validate:"required|min:1"`
	BestStreak int `json:"bestStreak" validate:"min:0"`
}

type dailyResponse struct {
	Date      string                `json:"date"`
	Questions []models.QuizQuestion `json:"questions"`
}

type statsResponse struct {
	models.QuizStats
	Accuracy float64 `json:"accuracy"`
}

func newStatsResponse(s models.QuizStats) statsResponse {
	return statsResponse{QuizStats: s, Accuracy: s.Accuracy()}
}

type QuizController struct {
	logger    providers.Logger
	generator services.QuizSessionGeneratorInterface
	stats     services.StatsAggregatorInterface
	cache     providers.CacheProviderInterface
	metrics   providers.MetricsProviderInterface
	clock     services.Clock
}

func NewQuizController(logger providers.Logger, generator services.QuizSessionGeneratorInterface, stats services.StatsAggregatorInterface, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface, clock services.Clock) *QuizController {
	return &QuizController{
		logger:    logger,
		generator: generator,
		stats:     stats,
		cache:     cache,
		metrics:   metrics,
		clock:     clock,
	}
}

func (qc *QuizController) RandomQuiz(w http.ResponseWriter, r *http.Request) {
	count, ok := queryLimit(r, "count", defaultQuizCount)
	if !ok {
		http.Error(w, "invalid count", http.StatusBadRequest)
		return
	}
	q := r.URL.Query()
	filters := models.QuizFilters{
		Difficulty: models.Difficulty(q.Get("difficulty")),
		Category:   models.Category(q.Get("category")),
		Type:       models.QuestionType(q.Get("type")),
	}
	questions := qc.generator.GetRandomQuestions(count, filters)
	qc.metrics.IncSessionsGenerated(string(services.ModeCustom))
	writeJSON(w, http.StatusOK, questions)
}

// untilMidnight is the time left in now's calendar day.
func untilMidnight(now time.Time) time.Duration {
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location()).Sub(now)
}

// DailyQuiz serves the daily challenge for today, or for ?date=YYYY-MM-DD.
// The rendered response is cached under the day key; today's entry expires at midnight.
func (qc *QuizController) DailyQuiz(w http.ResponseWriter, r *http.Request) {
	now := qc.clock.Now()
	day := now
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.ParseInLocation(dailyDateLayout, raw, now.Location())
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}
		day = parsed
	}

	key := "daily:" + services.DailyKey(day)
	if data, ok := qc.cache.Get(key); ok {
		qc.metrics.IncSessionsGenerated(string(services.ModeDaily))
		writeRaw(w, http.StatusOK, data)
		return
	}

	gson, err := json.Marshal(dailyResponse{
		Date:      day.Format(dailyDateLayout),
		Questions: qc.generator.GetDailyQuestionsFor(day),
	})
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if services.DailyKey(day) == services.DailyKey(now) {
		qc.cache.SetWithTTL(key, gson, untilMidnight(now))
	} else {
		qc.cache.Set(key, gson)
	}
	qc.metrics.IncSessionsGenerated(string(services.ModeDaily))
	writeRaw(w, http.StatusOK, gson)
}

func (qc *QuizController) CheckAnswer(w http.ResponseWriter, r *http.Request) {
	var payload answerRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	result, err := qc.generator.CheckAnswer(payload.ID, payload.Answer)
	if errors.Is(err, models.ErrNotFound) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (qc *QuizController) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newStatsResponse(qc.stats.GetQuizStats()))
}

// SaveStats folds one finished session into the lifetime stats.
func (qc *QuizController) SaveStats(w http.ResponseWriter, r *http.Request) {
	var payload sessionResultRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.Score > payload.Length || payload.BestStreak > payload.Score {
		http.Error(w, "score and bestStreak must not exceed length", http.StatusBadRequest)
		return
	}
	next := qc.stats.RecordResult(payload.Score, payload.Length, payload.BestStreak)
	qc.metrics.IncQuizzesCompleted()
	qc.logger.Infof(providers.TypePost, "Quiz completed: %d/%d, streak %d", payload.Score, payload.Length, payload.BestStreak)
	writeJSON(w, http.StatusOK, newStatsResponse(next))
}
