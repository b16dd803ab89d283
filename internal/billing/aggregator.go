package billing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	billingmetrics "github.com/avaleri/burnboard/internal/billing/metrics"
	"github.com/avaleri/burnboard/internal/domain/activity"
	"github.com/avaleri/burnboard/internal/domain/project"
	"github.com/avaleri/burnboard/internal/domain/user"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidProject indicates the project passed to Aggregate has no identifier.
var ErrInvalidProject = errors.New("project id is required")

// Source is the slice of the remote API the aggregator consumes.
type Source interface {
	ListActivities(ctx context.Context, projectID string, w Window) ([]activity.Activity, error)
	ListUsers(ctx context.Context) ([]user.User, error)
}

// EnrichedActivity is an activity joined with its user's billing rate.
// The rate is zero when the referenced user cannot be found.
type EnrichedActivity struct {
	activity.Activity
	UserSellPerDay float64 `json:"userSellPerDay"`
}

// Report is the consumed-budget figure for one project.
type Report struct {
	ProjectID  string  `json:"projectId"`
	Consumed   float64 `json:"consumed"`
	Ceiling    float64 `json:"ceiling,omitempty"`
	HasCeiling bool    `json:"hasCeiling"`
}

// Percent returns consumption as a percentage of the ceiling. The value is
// deliberately unclamped; the presentation layer decides overflow styling.
func (r Report) Percent() float64 {
	if !r.HasCeiling {
		return 0
	}
	return 100 * r.Consumed / r.Ceiling
}

// Amount formats the consumed figure as a two-decimal monetary string.
func (r Report) Amount() string {
	return fmt.Sprintf("%.2f", r.Consumed)
}

// Aggregator computes a project's consumed budget within its current billing
// window. Each call is an isolated, retry-safe pure function of the data the
// two fetches return.
type Aggregator struct {
	src     Source
	logger  *slog.Logger
	metrics *billingmetrics.Metrics
	now     func() time.Time
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithMetrics wires prometheus instrumentation into the aggregator.
func WithMetrics(m *billingmetrics.Metrics) Option {
	return func(a *Aggregator) { a.metrics = m }
}

// WithNow overrides the clock used to resolve the billing window.
func WithNow(now func() time.Time) Option {
	return func(a *Aggregator) { a.now = now }
}

// NewAggregator creates a new budget aggregator.
func NewAggregator(src Source, logger *slog.Logger, opts ...Option) *Aggregator {
	a := &Aggregator{src: src, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	return a
}

// Aggregate resolves the project's billing window, fetches its activities and
// the user collection concurrently, joins them, and sums consumed budget.
//
// An activity referencing an unknown user contributes zero to the total; this
// mirrors the historical join behavior and is surfaced through a warning log
// and a counter rather than an error. A failed fetch aborts the whole
// aggregation; it never degrades to a zero report.
func (a *Aggregator) Aggregate(ctx context.Context, p project.Project) (Report, error) {
	if p.ID == "" {
		return Report{}, ErrInvalidProject
	}

	started := time.Now()
	w := ResolveWindow(p, a.now())

	var (
		acts  []activity.Activity
		users []user.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := a.src.ListActivities(gctx, p.ID, w)
		if err != nil {
			return fmt.Errorf("listing activities: %w", err)
		}
		acts = res
		return nil
	})
	g.Go(func() error {
		res, err := a.src.ListUsers(gctx)
		if err != nil {
			return fmt.Errorf("listing users: %w", err)
		}
		users = res
		return nil
	})
	if err := g.Wait(); err != nil {
		if a.metrics != nil {
			a.metrics.IncrementFetchFailure()
		}
		return Report{}, err
	}

	rates := make(map[string]float64, len(users))
	for _, u := range users {
		rates[u.ID] = u.SellPerDay
	}

	var consumed float64
	for _, act := range acts {
		enriched := EnrichedActivity{Activity: act}
		if rate, ok := rates[act.UserID]; ok {
			enriched.UserSellPerDay = rate
		} else {
			a.logger.Warn("activity references unknown user",
				"project_id", p.ID,
				"activity_id", act.ID,
				"user_id", act.UserID)
			if a.metrics != nil {
				a.metrics.IncrementUnknownUser()
			}
		}
		consumed += enriched.Total * enriched.UserSellPerDay
	}

	if a.metrics != nil {
		a.metrics.ObserveAggregation(started)
	}

	return Report{
		ProjectID:  p.ID,
		Consumed:   consumed,
		Ceiling:    p.BudgetMaxMonthly,
		HasCeiling: p.HasBudgetCeiling(),
	}, nil
}
