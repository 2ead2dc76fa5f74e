package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailtmpl/pkg/logger"
)

func TestNew_JSONDefault(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))
	log.Info("content seeded", logger.Template("user_welcome"), logger.Language("en"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "content seeded", record["msg"])
	assert.Equal(t, "user_welcome", record["template"])
	assert.Equal(t, "en", record["language"])
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	// Info is the default minimum; debug records are dropped.
	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log = logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))
	log.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNew_TextFormatWithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatText),
		logger.WithAttr(slog.String("service", "mailer")),
	)
	log.Info("ready")

	out := buf.String()
	assert.Contains(t, out, "msg=ready")
	assert.Contains(t, out, "service=mailer")
}

func TestError_NilYieldsEmptyAttr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))
}
