package structures

import (
	"net/http"
	"time"
)

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type Route struct {
	Url     string
	Handler http.Handler
}

type Server struct {
	Host string `mapstructure:"host" yaml:"host" validate:"required"`
	Port int    `mapstructure:"port" yaml:"port" validate:"required|uint|min:1"`
}

type StoreConfig struct {
	Driver       string        `mapstructure:"driver" yaml:"driver" validate:"required|in:memory,file,sqlite"`
	Path         string        `mapstructure:"path" yaml:"path"`
	SaveInterval time.Duration `mapstructure:"saveInterval" yaml:"saveInterval"`
}

type LoggerConfig struct {
	Level string `mapstructure:"level" yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `mapstructure:"mode" yaml:"mode" validate:"required|uint"`
	Dir   string `mapstructure:"dir" yaml:"dir" validate:"required|unixPath"`
}

type DiscoveryConfig struct {
	HistoryCapacity int           `mapstructure:"historyCapacity" yaml:"historyCapacity" validate:"required|min:1"`
	TrendingWindow  time.Duration `mapstructure:"trendingWindow" yaml:"trendingWindow" validate:"required|min:1"`
	DailyQuestions  int           `mapstructure:"dailyQuestions" yaml:"dailyQuestions" validate:"required|min:1"`
}

type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled" yaml:"enabled"`
	Size    int           `mapstructure:"size" yaml:"size"`
	TTL     time.Duration `mapstructure:"ttl" yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	Discovery DiscoveryConfig `mapstructure:"discovery" yaml:"discovery"`
	WebServer Server          `mapstructure:"webServer" yaml:"webServer"`
	Store     StoreConfig     `mapstructure:"store" yaml:"store"`
	Logger    LoggerConfig    `mapstructure:"logger" yaml:"logger"`
	Cache     CacheConfig     `mapstructure:"cache" yaml:"cache"`
	Metrics   MetricsConfig   `mapstructure:"metrics" yaml:"metrics"`
}
