package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/hawk-session-service/pkg/log"
)

func TestLogger_WritesContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithWriter(&buf, log.LevelInfo)

	ctx := logger.WithContext(context.Background(), log.Fields{"requestID": "r-1"})
	logger.WithField("tokenID", "t-1").WithError(errors.New("boom")).Warn(ctx, "purge expired token")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "purge expired token", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "r-1", entry["requestID"])
	assert.Equal(t, "t-1", entry["tokenID"])
	assert.Equal(t, "boom", entry["error"])
}

func TestLogger_SkipsBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithWriter(&buf, log.LevelWarn)

	logger.Info(context.Background(), "hidden")
	assert.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.LevelDebug, log.ParseLevel("DEBUG"))
	assert.Equal(t, log.LevelDisabled, log.ParseLevel("disabled"))
	assert.Equal(t, log.LevelInfo, log.ParseLevel("verbose"))
}

func TestLogger_DisabledKeepsContextFields(t *testing.T) {
	var buf bytes.Buffer
	ctx := log.New(log.LevelDisabled).WithContext(context.Background(), log.Fields{"requestID": "r-1"})

	log.New(log.LevelDisabled).WithField("tokenID", "t-1").Error(ctx, "hidden")
	log.NewWithWriter(&buf, log.LevelInfo).Info(ctx, "session renewed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "session renewed", entry["msg"])
	assert.Equal(t, "r-1", entry["requestID"])
	assert.NotContains(t, entry, "tokenID")
}
