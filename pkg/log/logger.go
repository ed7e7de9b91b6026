package log

import (
	"context"
	"fmt"
	"math"

	"github.com/justtrackio/graphmail/pkg/clock"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
	LevelNone  = "none"

	PriorityDebug = 0
	PriorityInfo  = 1
	PriorityWarn  = 2
	PriorityError = 3
	PriorityNone  = math.MaxInt
)

var levelNames = map[int]string{
	PriorityDebug: LevelDebug,
	PriorityInfo:  LevelInfo,
	PriorityWarn:  LevelWarn,
	PriorityError: LevelError,
	PriorityNone:  LevelNone,
}

var levelPriorities = map[string]int{
	LevelDebug: PriorityDebug,
	LevelInfo:  PriorityInfo,
	LevelWarn:  PriorityWarn,
	LevelError: PriorityError,
	LevelNone:  PriorityNone,
}

// LevelName returns the string representation of a log level priority (e.g., 1 -> "info").
func LevelName(level int) string {
	return levelNames[level]
}

// LevelPriority returns the numeric priority for a given log level name (e.g., "info" -> 1).
func LevelPriority(level string) int {
	if priority, ok := levelPriorities[level]; ok {
		return priority
	}

	return PriorityNone
}

// Fields is a map of key-value pairs to add structured data to a log entry.
type Fields map[string]any

// Data carries the static portion of a log entry shared by all messages of a
// derived logger.
type Data struct {
	Channel string
	Fields  map[string]any
}

// Logger is the main interface for logging. It supports standard log levels (Debug, Info, Warn, Error)
// and methods to create derived loggers with specific channels or fields.
//
//go:generate go run github.com/vektra/mockery/v2 --name Logger
type Logger interface {
	Debug(ctx context.Context, format string, args ...any)
	Info(ctx context.Context, format string, args ...any)
	Warn(ctx context.Context, format string, args ...any)
	Error(ctx context.Context, format string, args ...any)

	WithChannel(channel string) Logger
	WithFields(fields Fields) Logger
}

var _ Logger = &logger{}

type logger struct {
	clock    clock.Clock
	data     Data
	handlers []Handler
}

// NewLogger creates a logger writing to stdout on info level.
func NewLogger() Logger {
	return NewLoggerWithInterfaces(clock.NewRealClock(), []Handler{NewCliHandler()})
}

func NewLoggerWithInterfaces(clock clock.Clock, handlers []Handler) Logger {
	return &logger{
		clock: clock,
		data: Data{
			Channel: "main",
			Fields:  map[string]any{},
		},
		handlers: handlers,
	}
}

func (l *logger) Debug(ctx context.Context, format string, args ...any) {
	l.log(ctx, PriorityDebug, format, args, nil)
}

func (l *logger) Info(ctx context.Context, format string, args ...any) {
	l.log(ctx, PriorityInfo, format, args, nil)
}

func (l *logger) Warn(ctx context.Context, format string, args ...any) {
	l.log(ctx, PriorityWarn, format, args, nil)
}

func (l *logger) Error(ctx context.Context, format string, args ...any) {
	err := fmt.Errorf(format, args...)

	l.log(ctx, PriorityError, "%s", []any{err.Error()}, err)
}

func (l *logger) WithChannel(channel string) Logger {
	cpy := l.copy()
	cpy.data.Channel = channel

	return cpy
}

func (l *logger) WithFields(fields Fields) Logger {
	cpy := l.copy()
	cpy.data.Fields = mergeFields(l.data.Fields, fields)

	return cpy
}

func (l *logger) copy() *logger {
	return &logger{
		clock:    l.clock,
		data:     l.data,
		handlers: l.handlers,
	}
}

func (l *logger) log(_ context.Context, level int, msg string, args []any, loggedErr error) {
	timestamp := l.clock.Now()

	for _, handler := range l.handlers {
		if level < handler.Level() {
			continue
		}

		if err := handler.Log(timestamp, level, msg, args, loggedErr, l.data); err != nil {
			fmt.Printf("error during logging: %s\n", err)
		}
	}
}

func mergeFields(existing map[string]any, new Fields) map[string]any {
	merged := make(map[string]any, len(existing)+len(new))

	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range new {
		merged[k] = v
	}

	return merged
}
