package faceit

import (
	"time"

	"go.uber.org/ratelimit"
)

const (
	HistoryInterval = 100 * time.Millisecond
	DetailInterval  = 50 * time.Millisecond
)

// Throttle espacia las llamadas por tipo de endpoint. El lookup del equipo no se limita.
type Throttle struct {
	history ratelimit.Limiter
	detail  ratelimit.Limiter
}

func NewThrottle(historyEvery, detailEvery time.Duration) *Throttle {
	return &Throttle{
		history: ratelimit.New(1, ratelimit.Per(historyEvery), ratelimit.WithoutSlack),
		detail:  ratelimit.New(1, ratelimit.Per(detailEvery), ratelimit.WithoutSlack),
	}
}

func DefaultThrottle() *Throttle {
	return NewThrottle(HistoryInterval, DetailInterval)
}

// NoThrottle es para tests y fakes locales.
func NoThrottle() *Throttle {
	return &Throttle{history: ratelimit.NewUnlimited(), detail: ratelimit.NewUnlimited()}
}

func (t *Throttle) History() { t.history.Take() }
func (t *Throttle) Detail()  { t.detail.Take() }
