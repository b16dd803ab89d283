package board

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/avaleri/burnboard/internal/billing"
	"github.com/avaleri/burnboard/internal/domain/project"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentAggregations bounds the budget fan-out so a long project list
// doesn't open one connection per project at once.
const maxConcurrentAggregations = 8

// Directory is the slice of the remote API the board needs.
type Directory interface {
	ListProjects(ctx context.Context) ([]project.Project, error)
	CreateProject(ctx context.Context, req project.CreateRequest) (*project.Project, error)
}

// Aggregator computes one project's consumed budget. Satisfied by
// *billing.Aggregator.
type Aggregator interface {
	Aggregate(ctx context.Context, p project.Project) (billing.Report, error)
}

// Board holds the project collection and current filter state, and keeps the
// visible subset and per-project budget reports derived from them. It is the
// thin coordinator between the remote directory, the filter pipeline and the
// budget aggregator; all the interesting logic lives in those collaborators.
type Board struct {
	dir      Directory
	agg      Aggregator
	notifier Notifier
	logger   *slog.Logger

	mu       sync.Mutex
	projects []project.Project
	criteria Criteria
	visible  []project.Project
	budgets  map[string]billing.Report
}

// Option configures a Board.
type Option func(*Board)

// WithNotifier replaces the default log-backed notifier.
func WithNotifier(n Notifier) Option {
	return func(b *Board) { b.notifier = n }
}

// New creates a board over the given directory and aggregator.
func New(dir Directory, agg Aggregator, logger *slog.Logger, opts ...Option) *Board {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Board{
		dir:     dir,
		agg:     agg,
		logger:  logger,
		budgets: make(map[string]billing.Report),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.notifier == nil {
		b.notifier = logNotifier{logger: logger}
	}
	return b
}

// Load fetches the full project collection once and recomputes the visible
// subset. Cached budget reports are dropped: every project reference is new
// after a reload.
func (b *Board) Load(ctx context.Context) error {
	projects, err := b.dir.ListProjects(ctx)
	if err != nil {
		b.notifier.Error("failed to load projects")
		return fmt.Errorf("loading projects: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.projects = projects
	b.budgets = make(map[string]billing.Report)
	b.recompute()
	return nil
}

// AddProject creates a project through the directory and appends it to the
// working collection without a full reload. On failure the collection is left
// untouched and the failure is surfaced as a notification.
func (b *Board) AddProject(ctx context.Context, req project.CreateRequest) (*project.Project, error) {
	created, err := b.dir.CreateProject(ctx, req)
	if err != nil {
		b.notifier.Error("project creation failed")
		return nil, fmt.Errorf("creating project: %w", err)
	}

	b.mu.Lock()
	b.projects = append(b.projects, *created)
	b.recompute()
	b.mu.Unlock()

	b.notifier.Success("project created")
	b.refreshOne(ctx, *created)
	return created, nil
}

// SetStatusFilter updates the status criterion and recomputes the visible set.
func (b *Board) SetStatusFilter(status project.Status) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.criteria.Status = status
	b.recompute()
}

// SetSearchQuery updates the search criterion and recomputes the visible set.
func (b *Board) SetSearchQuery(query string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.criteria.Query = query
	b.recompute()
}

// Criteria returns the current filter state.
func (b *Board) Criteria() Criteria {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.criteria
}

// Visible returns the currently visible projects.
func (b *Board) Visible() []project.Project {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.visible)
}

// Sections returns the visible projects grouped for rendering.
func (b *Board) Sections() []Section {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Sections(b.visible, b.criteria)
}

// Budget returns the cached budget report for a project. The second return is
// false while the report is still pending, including after a failed
// aggregation.
func (b *Board) Budget(projectID string) (billing.Report, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	report, ok := b.budgets[projectID]
	return report, ok
}

// RefreshBudgets aggregates every visible project concurrently. Each project
// is an isolated task: one failure surfaces a notification and leaves that
// project's budget pending without blocking the others.
func (b *Board) RefreshBudgets(ctx context.Context) {
	visible := b.Visible()

	var g errgroup.Group
	g.SetLimit(maxConcurrentAggregations)
	for _, p := range visible {
		g.Go(func() error {
			b.refreshOne(ctx, p)
			return nil
		})
	}
	_ = g.Wait()
}

func (b *Board) refreshOne(ctx context.Context, p project.Project) {
	report, err := b.agg.Aggregate(ctx, p)
	if err != nil {
		b.logger.Error("budget aggregation failed", "project_id", p.ID, "error", err)
		b.notifier.Error(fmt.Sprintf("could not compute budget for %s", p.Name))
		b.mu.Lock()
		delete(b.budgets, p.ID)
		b.mu.Unlock()
		return
	}

	b.mu.Lock()
	b.budgets[p.ID] = report
	b.mu.Unlock()
}

// recompute re-derives the visible subset. Callers must hold mu.
func (b *Board) recompute() {
	b.visible = Filter(b.projects, b.criteria)
}
