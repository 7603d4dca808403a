package logger

import (
	"fmt"

	"outfit-picker/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger from the log configuration. Console encoding is
// what the CLI commands and local runs want; json is for the server, where
// lines get shipped to an aggregator.
func New(cfg *Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var zc zap.Config
	switch cfg.Format {
	case "console":
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zc.DisableStacktrace = true
	default:
		zc = zap.NewProductionConfig()
		zc.Encoding = "json"
	}

	zc.Level = zap.NewAtomicLevelAt(level)
	zc.EncoderConfig.LevelKey = "level"
	zc.EncoderConfig.TimeKey = "time"
	zc.EncoderConfig.MessageKey = "message"

	return zc.Build()
}

// WithRayID attaches the request's ray id from the Fiber context, keyed the
// same way the rayid middleware stored it, so every log line of one request
// carries the same correlation field. Without a ray id in locals the logger
// is returned unchanged.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	if rid, ok := c.Locals(rayid.LocalsKey).(string); ok && rid != "" {
		return l.With(zap.String(rayid.LocalsKey, rid))
	}
	return l
}
