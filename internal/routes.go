package internal

import (
	"fauna/internal/controllers"
	"fauna/internal/providers"
	"net/http"
)

func InitRoutes(apiController *controllers.ApiController, quizController *controllers.QuizController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Handle("/views", map[string]http.Handler{
		http.MethodPost:   http.HandlerFunc(apiController.TrackView),
		http.MethodDelete: http.HandlerFunc(apiController.ClearViews),
	})
	routers.Get("/views/trending", http.HandlerFunc(apiController.Trending))
	routers.Get("/views/recent", http.HandlerFunc(apiController.Recent))
	routers.Get("/views/stats", http.HandlerFunc(apiController.ViewStats))
	routers.Get("/season", http.HandlerFunc(apiController.Season))
	routers.Get("/seasonal", http.HandlerFunc(apiController.Seasonal))

	routers.Get("/quiz/random", http.HandlerFunc(quizController.RandomQuiz))
	routers.Get("/quiz/daily", http.HandlerFunc(quizController.DailyQuiz))
	routers.Post("/quiz/answer", http.HandlerFunc(quizController.CheckAnswer))
	routers.Handle("/quiz/stats", map[string]http.Handler{
		http.MethodGet:  http.HandlerFunc(quizController.GetStats),
		http.MethodPost: http.HandlerFunc(quizController.SaveStats),
	})
	return routers
}
