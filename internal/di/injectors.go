//go:build wireinject
// +build wireinject

package di

import (
	"fauna/internal"
	"fauna/internal/catalog"
	"fauna/internal/controllers"
	"fauna/internal/models"
	"fauna/internal/providers"
	"fauna/internal/services"
	"fauna/internal/statistic"
	"fauna/internal/statistic/interfaces"
	"fauna/internal/structures"

	wire "github.com/google/wire"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		statistic.NewStore,
		wire.Bind(new(models.PersistentStore), new(interfaces.StoreInterface)),
		statistic.NewScheduler,

		catalog.Load,
		wire.FieldsOf(new(*catalog.Catalog), "Seasonal", "Questions"),

		services.NewSystemClock,
		services.NewSystemRandom,
		services.NewViewTracker,
		wire.Bind(new(services.ViewTrackerInterface), new(*services.ViewTracker)),
		services.NewSeasonalSelector,
		wire.Bind(new(services.SeasonalSelectorInterface), new(*services.SeasonalSelector)),
		services.NewQuizSessionGenerator,
		wire.Bind(new(services.QuizSessionGeneratorInterface), new(*services.QuizSessionGenerator)),
		services.NewStatsAggregator,
		wire.Bind(new(services.StatsAggregatorInterface), new(*services.StatsAggregator)),

		controllers.NewApiController,
		controllers.NewQuizController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
