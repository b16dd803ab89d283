package billing

import (
	"strconv"
	"time"

	"github.com/avaleri/burnboard/internal/domain/project"
)

// QualifierGTE marks the window start as an explicit lower bound when the
// activity listing request is built.
const QualifierGTE = "gte:"

// Window bounds the activities that count toward a project's current budget.
// The window is open-ended toward the present; only the start is resolved.
type Window struct {
	Start     time.Time
	Qualifier string
}

// StartEpochMillis returns the window start as epoch milliseconds.
func (w Window) StartEpochMillis() int64 {
	return w.Start.UnixMilli()
}

// DateParam renders the date query argument for the activity listing request:
// the qualifier concatenated with the epoch-millisecond start.
func (w Window) DateParam() string {
	return w.Qualifier + strconv.FormatInt(w.StartEpochMillis(), 10)
}

// ResolveWindow determines the start of a project's current accounting window.
//
// Monthly projects reset at the first instant (UTC) of the current calendar
// month. One-time projects accumulate from the first instant of the month the
// project was created in, with an explicit "gte:" qualifier. An unrecognized
// payment cycle falls back to the monthly window; do not invent new cycle
// semantics here.
func ResolveWindow(p project.Project, now time.Time) Window {
	switch p.PaymentCycle {
	case project.CycleOneTime:
		return Window{Start: monthStart(p.CreatedAt), Qualifier: QualifierGTE}
	default:
		return Window{Start: monthStart(now)}
	}
}

func monthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
