package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
		err  bool
	}{
		{"trace", TRACE, false},
		{"DEBUG", DEBUG, false},
		{"", INFO, false},
		{" warn ", WARN, false},
		{"warning", WARN, false},
		{"error", ERROR, false},
		{"loud", INFO, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.err {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestLoggerLevels(t *testing.T) {
	var console, file bytes.Buffer
	logger := NewWriterLogger("world", &console, &file)

	logger.Trace("trace %d", 1)
	logger.Info("info %d", 2)

	assert.NotContains(t, console.String(), "trace 1")
	assert.Contains(t, console.String(), "[INFO] [world] info 2")
	assert.Contains(t, file.String(), "[TRACE] [world] trace 1")
	assert.Contains(t, file.String(), "info 2")

	console.Reset()
	file.Reset()
	logger.SetLevels(ERROR, WARN)
	logger.Info("hidden")
	logger.Warn("warned")

	assert.Empty(t, console.String())
	assert.Contains(t, file.String(), "warned")
	assert.NotContains(t, file.String(), "hidden")
}

func TestNilLoggerIsSilent(t *testing.T) {
	var logger *Logger
	assert.NotPanics(t, func() {
		logger.Info("nothing")
		logger.SetLevels(TRACE, TRACE)
		assert.NoError(t, logger.Close())
	})
}

func TestLoggerManager(t *testing.T) {
	var out bytes.Buffer
	lm := NewLoggerManager(func(component string) (*Logger, error) {
		if component == "broken" {
			return nil, errors.New("no disk")
		}
		return NewWriterLogger(component, &out, nil), nil
	})

	a, err := lm.GetLogger("world")
	require.NoError(t, err)
	b, err := lm.GetLogger("world")
	require.NoError(t, err)
	assert.Same(t, a, b)

	_, err = lm.GetLogger("broken")
	assert.Error(t, err)
	assert.NotNil(t, lm.MustGetLogger("broken"))

	_, _ = lm.GetLogger("sim")
	assert.Equal(t, []string{"sim", "world"}, lm.ListComponents())

	require.NoError(t, lm.SetLogLevel("world", ERROR, ERROR))
	assert.Error(t, lm.SetLogLevel("missing", ERROR, ERROR))

	require.NoError(t, lm.CloseAll())
	assert.Empty(t, lm.ListComponents())
}

func TestHexDump(t *testing.T) {
	assert.Equal(t, "No data", HexDump(nil))
	assert.Contains(t, HexDump([]byte{0x28, 0xb5}), "28 b5")
}
