package clock

import (
	"time"

	"go.uber.org/fx"
)

// Clock abstracts wall-clock access so date-driven rules (overdue
// installments, record timestamps) stay testable.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

func NewSystemClock() Clock {
	return systemClock{}
}

var Module = fx.Module("clock",
	fx.Provide(NewSystemClock),
)
