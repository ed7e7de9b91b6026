package log_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/justtrackio/graphmail/pkg/clock"
	"github.com/justtrackio/graphmail/pkg/log"
	"github.com/stretchr/testify/assert"
)

func newTestLogger(level string) (log.Logger, *bytes.Buffer) {
	buffer := &bytes.Buffer{}
	fakeClock := clock.NewFakeClockAt(time.Date(2023, 4, 5, 13, 37, 42, 0, time.UTC))
	handler := log.NewHandlerIoWriter(level, log.FormatterConsole, "15:04:05.000", buffer)

	return log.NewLoggerWithInterfaces(fakeClock, []log.Handler{handler}), buffer
}

func TestLogger_Info(t *testing.T) {
	logger, buffer := newTestLogger(log.LevelInfo)

	logger.Info(context.Background(), "sent mail to %d recipients", 3)

	assert.Equal(t, "13:37:42.000 main    info  sent mail to 3 recipients\n", buffer.String())
}

func TestLogger_LevelFilter(t *testing.T) {
	logger, buffer := newTestLogger(log.LevelWarn)

	logger.Debug(context.Background(), "debug message")
	logger.Info(context.Background(), "info message")
	logger.Warn(context.Background(), "warn message")

	assert.Equal(t, "13:37:42.000 main    warn  warn message\n", buffer.String())
}

func TestLogger_WithChannelAndFields(t *testing.T) {
	logger, buffer := newTestLogger(log.LevelInfo)

	derived := logger.WithChannel("graph_mail").WithFields(log.Fields{
		"tenant": "common",
	})
	derived.Info(context.Background(), "token fetched")

	assert.Equal(t, "13:37:42.000 graph_mail info  token fetched {\"tenant\":\"common\"}\n", buffer.String())
}

func TestLogger_Error(t *testing.T) {
	logger, buffer := newTestLogger(log.LevelInfo)

	logger.Error(context.Background(), "can not send mail: %w", fmt.Errorf("boom"))

	assert.Equal(t, "13:37:42.000 main    error can not send mail: boom ERROR: can not send mail: boom\n", buffer.String())
}

func TestLevelPriority(t *testing.T) {
	assert.Equal(t, log.PriorityInfo, log.LevelPriority(log.LevelInfo))
	assert.Equal(t, log.PriorityNone, log.LevelPriority("nope"))
	assert.Equal(t, log.LevelWarn, log.LevelName(log.PriorityWarn))
}
