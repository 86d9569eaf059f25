package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput(t *testing.T) {
	t.Run("json output with message key", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithOutput("debug", &buf)

		log.WithField("user_id", "u-1").Info("Alert created")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "Alert created", entry["message"])
		assert.Equal(t, "u-1", entry["user_id"])
		assert.Equal(t, "info", entry["level"])
		assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		log := NewWithOutput("loud", &bytes.Buffer{})
		assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	})
}
