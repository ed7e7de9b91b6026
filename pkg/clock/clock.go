package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Provider is the clock used by the package level functions and can be replaced
// in tests to get deterministic timestamps.
var Provider Clock = NewRealClock()

type Clock interface {
	clockwork.Clock
}

type FakeClock interface {
	clockwork.FakeClock
}

func NewRealClock() Clock {
	return clockwork.NewRealClock()
}

func NewFakeClock() FakeClock {
	return clockwork.NewFakeClock()
}

func NewFakeClockAt(t time.Time) FakeClock {
	return clockwork.NewFakeClockAt(t)
}

func Now() time.Time {
	return Provider.Now()
}
