package booking

import (
	"strings"
	"time"

	"github.com/lendaround/service-sharing/internal/domain"
)

// State is a booking listing filter. Unlike Status it is not stored: the
// temporal states (CURRENT, PAST, FUTURE) are evaluated against "now" at
// query time.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState performs a case-insensitive lookup against the closed set of
// filter tokens. Anything else is an unknown-state error carrying the
// original literal; there is no fallback to ALL.
func ParseState(token string) (State, error) {
	switch State(strings.ToUpper(strings.TrimSpace(token))) {
	case StateAll:
		return StateAll, nil
	case StateCurrent:
		return StateCurrent, nil
	case StatePast:
		return StatePast, nil
	case StateFuture:
		return StateFuture, nil
	case StateWaiting:
		return StateWaiting, nil
	case StateRejected:
		return StateRejected, nil
	default:
		return "", domain.NewUnknownStateError(token)
	}
}

// Matches reports whether the booking falls into this state at instant t.
func (s State) Matches(b *Booking, t time.Time) bool {
	switch s {
	case StateAll:
		return true
	case StateCurrent:
		return b.Start().Before(t) && b.End().After(t)
	case StatePast:
		return b.End().Before(t)
	case StateFuture:
		return b.Start().After(t)
	case StateWaiting:
		return b.Status() == StatusWaiting
	case StateRejected:
		return b.Status() == StatusRejected
	default:
		return false
	}
}
