package logger_test

import (
	"net/http/httptest"
	"testing"

	"outfit-picker/core/logger"
	"outfit-picker/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_HonorsLevel(t *testing.T) {
	l, err := logger.New(&logger.Config{Level: "warn", Format: "json"})
	require.NoError(t, err)

	assert.False(t, l.Core().Enabled(zap.InfoLevel))
	assert.True(t, l.Core().Enabled(zap.WarnLevel))
}

func TestNew_ConsoleFormat(t *testing.T) {
	l, err := logger.New(&logger.Config{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.DebugLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logger.New(&logger.Config{Level: "loud", Format: "console"})
	assert.Error(t, err)
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := zap.New(core)

	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		logger.WithRayID(l, c).Info("hit")
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	rid := resp.Header.Get(rayid.HeaderName)
	require.NotEmpty(t, rid)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, rid, entries[0].ContextMap()[rayid.LocalsKey])
}

func TestWithRayID_NoIDLeavesLoggerUnchanged(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := zap.New(core)

	// No rayid middleware, so locals carries nothing.
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		logger.WithRayID(l, c).Info("hit")
		return c.SendString("ok")
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].ContextMap(), rayid.LocalsKey)
}
