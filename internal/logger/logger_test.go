package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Log(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelInfo, &buf)

	tests := []struct {
		name    string
		level   Level
		message string
		fields  Fields
		err     error
		want    bool // should log
	}{
		{
			name:    "info message",
			level:   LevelInfo,
			message: "test message",
			fields:  Fields{"key": "value"},
			want:    true,
		},
		{
			name:    "debug below threshold",
			level:   LevelDebug,
			message: "debug message",
			want:    false,
		},
		{
			name:    "error with err",
			level:   LevelError,
			message: "error occurred",
			err:     errors.New("test error"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := buf.Len()
			logger.log(tt.level, tt.message, tt.fields, tt.err)
			logged := buf.Len() > before

			assert.Equal(t, tt.want, logged)
		})
	}
}

func TestLogger_JSONShape(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelDebug, &buf)

	logger.Error("fetch failed", Fields{"kind": "round", "status": 503}, errors.New("boom"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "fetch failed", entry["message"])
	assert.Equal(t, "boom", entry["error"])
	assert.NotEmpty(t, entry["timestamp"])

	fields, ok := entry["fields"].(map[string]interface{})
	require.True(t, ok, "fields should be a nested object")
	assert.Equal(t, "round", fields["kind"])
	assert.EqualValues(t, 503, fields["status"])
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  Level
		logLevel  Level
		shouldLog bool
	}{
		{"debug logs at debug", LevelDebug, LevelDebug, true},
		{"info logs at debug", LevelDebug, LevelInfo, true},
		{"debug doesn't log at info", LevelInfo, LevelDebug, false},
		{"warn doesn't log at error", LevelError, LevelWarn, false},
		{"error always logs", LevelDebug, LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(tt.minLevel, &buf)

			logger.log(tt.logLevel, "test", nil, nil)

			assert.Equal(t, tt.shouldLog, buf.Len() > 0)
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"verbose", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMetrics_Counter(t *testing.T) {
	m := NewMetrics()

	m.IncrCounter("test_counter")
	m.IncrCounter("test_counter")
	m.IncrCounter("test_counter")

	assert.Equal(t, int64(3), m.GetSnapshot().Counters["test_counter"])
}

func TestMetrics_Gauge(t *testing.T) {
	m := NewMetrics()

	m.SetGauge("standings.entries", 14)
	m.SetGauge("standings.entries", 16)

	assert.Equal(t, 16.0, m.GetSnapshot().Gauges["standings.entries"])
}

func TestMetrics_Timing(t *testing.T) {
	m := NewMetrics()

	m.RecordTiming("api_call", 100*time.Millisecond)
	m.RecordTiming("api_call", 200*time.Millisecond)
	m.RecordTiming("api_call", 150*time.Millisecond)

	stats := m.GetSnapshot().Timings["api_call"]
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, "100ms", stats.Min)
	assert.Equal(t, "200ms", stats.Max)
	assert.Equal(t, "150ms", stats.Average)
	assert.Equal(t, "450ms", stats.Total)
}

func TestMetrics_SnapshotIsCopy(t *testing.T) {
	m := NewMetrics()
	m.IncrCounter("a")

	snapshot := m.GetSnapshot()
	m.IncrCounter("a")

	assert.Equal(t, int64(1), snapshot.Counters["a"])
}

func TestPackageLevelFunctions(t *testing.T) {
	var buf bytes.Buffer
	previous := Default()
	SetDefault(New(LevelDebug, &buf))
	defer SetDefault(previous)

	Debug("test debug", nil)
	Info("test info", Fields{"key": "value"})
	Warn("test warning", nil)
	Error("test error", Fields{"component": "test"}, errors.New("test"))

	assert.Equal(t, 4, strings.Count(buf.String(), "\n"))

	IncrCounter("test")
	SetGauge("test", 42.0)
	RecordTiming("test", time.Second)

	snapshot := GetMetricsSnapshot()
	assert.GreaterOrEqual(t, snapshot.Counters["test"], int64(1))
}
