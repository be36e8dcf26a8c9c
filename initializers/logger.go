package initializers

import (
	"nexora-hcm/fiberlog"
	"strings"

	log "github.com/sirupsen/logrus"
)

func newJSONFormatter() *log.JSONFormatter {
	return &log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	}
}

func parseLevel(level string, fallback log.Level) log.Level {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return fallback
	}
	return parsed
}

// InitLogger настраивает глобальный логер и возвращает конфиг логера запросов
func InitLogger(level, requestLevel string) *fiberlog.Config {
	log.SetFormatter(newJSONFormatter())
	log.SetLevel(parseLevel(level, log.InfoLevel))

	logger := log.New()
	logger.SetFormatter(newJSONFormatter())
	logger.SetLevel(parseLevel(requestLevel, log.DebugLevel))
	return &fiberlog.Config{
		Logger: logger,
		Tags: []string{
			fiberlog.TagBody,
			fiberlog.TagResBody,
			fiberlog.TagMethod,
			fiberlog.TagPath,
			fiberlog.TagStatus,
			fiberlog.TagLatency,
			fiberlog.RequestID,
		},
		Skip: func(path string) bool {
			return strings.HasSuffix(path, "/ws")
		},
	}
}
