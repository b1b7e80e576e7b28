package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formguard/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestSessionID(t *testing.T) {
	attr := logger.SessionID("abc")
	require.Equal(t, "session_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())

	assert.True(t, logger.SessionID("").Equal(slog.Attr{}))
}

func TestComponent(t *testing.T) {
	attr := logger.Component("validator")
	assert.Equal(t, "component", attr.Key)
	assert.Equal(t, "validator", attr.Value.String())
}

func TestValidationErrors(t *testing.T) {
	attr := logger.ValidationErrors(map[string][]string{
		"require": {"name", "email"},
		"mail":    {"email"},
	})
	require.Equal(t, "validation_errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())

	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "mail", g[0].Key)
	assert.Equal(t, "require", g[1].Key)
	assert.Equal(t, []string{"name", "email"}, g[1].Value.Any())

	assert.True(t, logger.ValidationErrors(nil).Equal(slog.Attr{}))
}
