package providers

import (
	"fauna/internal/structures"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeGet
	TypePost
	TypeStore
)

var logFiles = map[TypeEnum]string{
	TypeApp:   "app.log",
	TypeGet:   "get.log",
	TypePost:  "post.log",
	TypeStore: "store.log",
}

func (t TypeEnum) String() string {
	switch t {
	case TypeGet:
		return "get"
	case TypePost:
		return "post"
	case TypeStore:
		return "store"
	default:
		return "app"
	}
}

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	loggers map[TypeEnum]zerolog.Logger
	files   []*os.File
}

func GetLogTypeByRequestType(method string) TypeEnum {
	if method == "POST" {
		return TypePost
	}
	return TypeGet
}

func (l *LogProvider) get(t TypeEnum) *zerolog.Logger {
	if logger, ok := l.loggers[t]; ok {
		return &logger
	}
	logger := l.loggers[TypeApp]
	return &logger
}

func (l *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	l.get(t).Error().Msgf(format, args...)
}

func (l *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	l.get(t).Warn().Msgf(format, args...)
}

func (l *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	l.get(t).Debug().Msgf(format, args...)
}

func (l *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	l.get(t).Info().Msgf(format, args...)
}

func (l *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	l.get(t).Fatal().Msgf(format, args...)
}

func (l *LogProvider) Close() {
	for _, f := range l.files {
		_ = f.Close()
	}
	l.files = nil
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", conf.Logger.Level, err)
	}
	zerolog.TimeFieldFormat = time.RFC3339

	provider := &LogProvider{
		loggers: make(map[TypeEnum]zerolog.Logger, len(logFiles)),
	}

	for t, name := range logFiles {
		file, err := os.OpenFile(filepath.Join(conf.Logger.Dir, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, os.FileMode(conf.Logger.Mode))
		if err != nil {
			provider.Close()
			return nil, fmt.Errorf("open log file %s: %w", name, err)
		}
		provider.files = append(provider.files, file)

		var out io.Writer = file
		if conf.Debug {
			out = zerolog.MultiLevelWriter(file, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.TimeOnly})
		}
		provider.loggers[t] = zerolog.New(out).Level(level).With().Timestamp().Str("type", t.String()).Logger()
	}

	return provider, nil
}
