package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/justtrackio/graphmail/pkg/encoding/json"
)

type Formatter func(timestamp string, level int, msg string, args []any, err error, data Data) ([]byte, error)

type handlerIoWriter struct {
	level           int
	formatter       Formatter
	timestampFormat string
	writer          io.Writer
}

func NewCliHandler() Handler {
	return NewHandlerIoWriter(LevelInfo, FormatterConsole, "15:04:05.000", os.Stdout)
}

func NewHandlerIoWriter(level string, formatter Formatter, timestampFormat string, writer io.Writer) Handler {
	return &handlerIoWriter{
		level:           LevelPriority(level),
		formatter:       formatter,
		timestampFormat: timestampFormat,
		writer:          writer,
	}
}

func (h *handlerIoWriter) Level() int {
	return h.level
}

func (h *handlerIoWriter) Log(timestamp time.Time, level int, msg string, args []any, logErr error, data Data) error {
	timestampStr := timestamp.Format(h.timestampFormat)

	bytes, err := h.formatter(timestampStr, level, msg, args, logErr, data)
	if err != nil {
		return fmt.Errorf("can not format log message: %w", err)
	}

	if _, err = h.writer.Write(bytes); err != nil {
		return fmt.Errorf("can not write log message: %w", err)
	}

	return nil
}

func FormatterConsole(timestamp string, level int, msg string, args []any, err error, data Data) ([]byte, error) {
	fieldString := ""

	if len(data.Fields) > 0 {
		fieldBytes, marshalErr := json.Marshal(data.Fields)
		if marshalErr != nil {
			return nil, fmt.Errorf("can not marshal log fields: %w", marshalErr)
		}

		fieldString = " " + string(fieldBytes)
	}

	errString := ""
	if err != nil {
		errString = fmt.Sprintf(" ERROR: %s", err)
	}

	output := fmt.Sprintf(
		"%s %-7s %-5s %s%s%s\n",
		timestamp,
		data.Channel,
		LevelName(level),
		fmt.Sprintf(msg, args...),
		fieldString,
		errString,
	)

	return []byte(output), nil
}

func FormatterJson(timestamp string, level int, msg string, args []any, err error, data Data) ([]byte, error) {
	entry := map[string]any{
		"timestamp": timestamp,
		"level":     level,
		"levelName": LevelName(level),
		"channel":   data.Channel,
		"message":   fmt.Sprintf(msg, args...),
	}

	if len(data.Fields) > 0 {
		entry["fields"] = data.Fields
	}

	if err != nil {
		entry["err"] = err.Error()
	}

	bytes, marshalErr := json.Marshal(entry)
	if marshalErr != nil {
		return nil, fmt.Errorf("can not marshal log entry: %w", marshalErr)
	}

	return append(bytes, '\n'), nil
}
