package log

import (
	"time"
)

//go:generate go run github.com/vektra/mockery/v2 --name Handler
type Handler interface {
	Level() int
	Log(timestamp time.Time, level int, msg string, args []any, err error, data Data) error
}
