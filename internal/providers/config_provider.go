package providers

import (
	"fauna/internal/structures"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultHistoryCapacity = 100
	DefaultTrendingWindow  = 7 * 24 * time.Hour
	DefaultDailyQuestions  = 10
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.SetDefault("discovery.historyCapacity", DefaultHistoryCapacity)
	viper.SetDefault("discovery.trendingWindow", DefaultTrendingWindow)
	viper.SetDefault("discovery.dailyQuestions", DefaultDailyQuestions)
	viper.SetDefault("store.driver", "file")
	viper.SetDefault("store.saveInterval", 30*time.Second)
	viper.SetDefault("cache.ttl", time.Hour)

	viper.BindEnv("logger.level", "FAUNA_LOG_LEVEL")
	viper.BindEnv("store.driver", "FAUNA_STORE_DRIVER")
	viper.BindEnv("store.path", "FAUNA_STORE_PATH")
	viper.BindEnv("cache.enabled", "FAUNA_CACHE_ENABLED")
	viper.BindEnv("cache.size", "FAUNA_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "FaunaDiscovery"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
