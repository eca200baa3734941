package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{input: "debug", want: zerolog.DebugLevel},
		{input: " WARN ", want: zerolog.WarnLevel},
		{input: "error", want: zerolog.ErrorLevel},
		{input: "", want: zerolog.InfoLevel},
		{input: "chatty", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestNewWithWriter_RespectsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf, zerolog.WarnLevel)

	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestFromContext(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := WithContext(context.Background(), NewWithWriter(buf, zerolog.InfoLevel))

	log := FromContext(ctx)
	log.Info().Msg("test")

	assert.Contains(t, buf.String(), "test")
}

func TestFromContext_DefaultLogger(t *testing.T) {
	log := FromContext(context.Background())
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestWithFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := WithFields(NewWithWriter(buf, zerolog.InfoLevel), map[string]interface{}{
		"run_id": "run-123",
		"month":  "2025-09",
	})

	log.Info().Msg("converted")

	output := buf.String()
	assert.Contains(t, output, `"run_id":"run-123"`)
	assert.Contains(t, output, `"month":"2025-09"`)
}
