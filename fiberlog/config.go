package fiberlog

import "github.com/sirupsen/logrus"

type Config struct {
	// Logger nil - глобальный логер logrus
	Logger *logrus.Logger
	Tags   []string
	// Skip пути, которые не логируются (websocket)
	Skip func(path string) bool
}

var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		RequestID,
	},
}
