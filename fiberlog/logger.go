package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	requestIDHeader = "X-Request-ID"
	requestMessage  = "запрос api"
)

// New логирует каждый запрос одной записью. Ответы со статусом >= 300 пишутся с уровнем warning
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) > 0 {
		cfg = config[0]
	}
	pid := os.Getpid()
	return func(c *fiber.Ctx) error {
		d := &data{pid: pid, start: time.Now()}
		setRequestID(c)

		err := c.Next()
		d.end = time.Now()
		if c.Method() == fiber.MethodOptions || (cfg.Skip != nil && cfg.Skip(c.Path())) {
			return err
		}
		entry := newEntry(cfg.Logger).WithFields(collectFields(getFuncTagMap(cfg, d), c, d))
		if err != nil {
			entry = entry.WithError(err)
		}
		entry.Log(levelFor(cfg.Logger, c.Response().StatusCode()), requestMessage)
		return err
	}
}

func setRequestID(c *fiber.Ctx) {
	requestID := c.Get(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Locals(RequestID, requestID)
	c.Set(requestIDHeader, requestID)
}

func newEntry(logger *log.Logger) *log.Entry {
	if logger == nil {
		return log.NewEntry(log.StandardLogger())
	}
	return log.NewEntry(logger)
}

// levelFor без собственного логера все пишется в info глобального
func levelFor(logger *log.Logger, status int) log.Level {
	if logger != nil && status >= fiber.StatusMultipleChoices {
		return log.WarnLevel
	}
	return log.InfoLevel
}

// collectFields пустые строки в лог не попадают
func collectFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	fields := make(log.Fields, len(ftm))
	for key, tag := range ftm {
		value := tag(c, d)
		if str, ok := value.(string); ok && str == "" {
			continue
		}
		fields[key] = value
	}
	return fields
}
