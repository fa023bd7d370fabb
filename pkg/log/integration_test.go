package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/imbalance/pkg/errors"
)

func TestTestLoggerLevels(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelInfo)

	testLogger.Debug("hidden")
	testLogger.Info("plan computed", PlanKey, "1:13 2:17")
	testLogger.Warn("unrated classes", "labels", []string{"2"})
	testLogger.Error("resample failed", "error", fmt.Errorf("boom"))

	assert.NotContains(t, buffer.String(), "hidden")
	assert.True(t, testLogger.ContainsMessage("plan computed"))
	assert.True(t, testLogger.ContainsField(PlanKey, "1:13 2:17"))
	assert.True(t, testLogger.ContainsField("error", "boom"))

	ctx := context.Background()
	assert.False(t, testLogger.Enabled(ctx, LevelDebug))
	assert.True(t, testLogger.Enabled(ctx, LevelError))
}

func TestTestLoggerWith(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelDebug)

	contextLogger := testLogger.With(ModelNameKey, "RandomOverSampler")
	contextLogger.Info("resampled",
		OperationKey, OperationFitResample,
		SamplesKey, 30,
		OutputSamplesKey, 60,
	)

	entries, err := testLogger.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "RandomOverSampler", entry[ModelNameKey])
	assert.Equal(t, OperationFitResample, entry[OperationKey])
	assert.Equal(t, 30.0, entry[SamplesKey]) // JSON numbers are float64
	assert.Equal(t, 60.0, entry[OutputSamplesKey])
	assert.Equal(t, "INFO", entry["level"])
}

func TestTestLoggerProvider(t *testing.T) {
	provider, buffer := NewTestLoggerProvider(LevelWarn)

	provider.GetLoggerWithName("cli").Warn("named")
	provider.GetLogger().Info("suppressed")
	provider.SetLevel(LevelDebug)
	provider.GetLogger().Debug("now visible")

	out := buffer.String()
	assert.Contains(t, out, "named")
	assert.Contains(t, out, `"ml.component":"cli"`)
	assert.NotContains(t, out, "suppressed")
	assert.Contains(t, out, "now visible")
}

func TestTestLoggerConcurrent(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 5; j++ {
				testLogger.Info("message", "goroutine_id", id, "message_id", j)
			}
		}(i)
	}
	wg.Wait()

	entries, err := testLogger.GetLogEntries()
	require.NoError(t, err)
	assert.Len(t, entries, 20)
}

func TestToLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ToLogLevel(tt.in)
			if tt.wantErr {
				var cfgErr *errors.InvalidConfigurationError
				assert.True(t, errors.As(err, &cfgErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlogLoggerWithErrFmtHandler(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	logger := NewSlogLogger(slog.New(handler)).With(ModelNameKey, "RandomOverSampler")

	logger.Error("resample failed", ErrAttrKey, errors.NewValueError("Dataset.Select", "index 40 out of range"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "RandomOverSampler", entry[ModelNameKey])
	assert.Contains(t, entry[ErrAttrKey], "index 40 out of range")
	assert.NotEmpty(t, entry[StacktraceAttrKey])
	assert.True(t, logger.Enabled(context.Background(), LevelDebug))
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(zerolog.New(&buf).Level(zerolog.InfoLevel)).
		With(ComponentKey, "resample")

	logger.Debug("dropped")
	logger.Info("resampled", SamplesKey, 30, DeficitTotalKey, 30)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "resampled", entry["message"])
	assert.Equal(t, "resample", entry[ComponentKey])
	assert.Equal(t, 30.0, entry[DeficitTotalKey])

	ctx := context.Background()
	assert.False(t, logger.Enabled(ctx, LevelDebug))
	assert.True(t, logger.Enabled(ctx, LevelWarn))
	assert.False(t, Nop().Enabled(ctx, LevelError))
}

func TestSetupZerologRoutesWarnings(t *testing.T) {
	var buf bytes.Buffer
	_, err := SetupZerolog(&buf, "info")
	require.NoError(t, err)
	defer func() {
		SetLogger(nil)
		errors.SetZerologWarnFunc(nil)
	}()

	errors.Warn(errors.NewUnratedClassWarning([]string{"2"}))

	out := buf.String()
	assert.Contains(t, out, `"type":"UnratedClassWarning"`)
	assert.Contains(t, out, `"labels":["2"]`)
	assert.Contains(t, out, "resampling warning")

	GetLoggerWithName("resample").Info("through default")
	assert.Contains(t, buf.String(), "through default")
}

func BenchmarkTestLogger(b *testing.B) {
	testLogger, _ := NewTestLogger(LevelInfo)
	contextLogger := testLogger.With(ModelNameKey, "RandomOverSampler")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		contextLogger.Info("benchmark message",
			"iteration", i,
			OperationKey, OperationFitResample,
			SamplesKey, 1000,
		)
	}
}
