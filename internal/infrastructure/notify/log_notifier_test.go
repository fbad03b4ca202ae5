package notify_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lot-allocation-bff/internal/application/ports"
	"github.com/jhoicas/lot-allocation-bff/internal/infrastructure/notify"
	"github.com/jhoicas/lot-allocation-bff/pkg/logger"
)

func TestLogNotifier_NivelSegunSeveridad(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewLogNotifier(logger.NewWithWriter(&buf, "debug"))

	n.Notify(ports.LevelError, "引当の登録に失敗しました: boom")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "notify", entry["component"])
	assert.Equal(t, "引当の登録に失敗しました: boom", entry["message"])
}
