package integration_test

import (
	"context"
	"testing"
	"time"

	"github.com/avaleri/burnboard/internal/billing"
	"github.com/avaleri/burnboard/internal/board"
	"github.com/avaleri/burnboard/internal/domain/activity"
	"github.com/avaleri/burnboard/internal/domain/project"
	"github.com/avaleri/burnboard/internal/domain/user"
	"github.com/avaleri/burnboard/internal/sqlite"
	"github.com/avaleri/burnboard/internal/testserver"
	"github.com/stretchr/testify/require"
)

func TestBoard_EndToEnd_MonthlyBudget(t *testing.T) {
	ctx := context.Background()
	ts := testserver.New(t)

	ada, err := ts.Users.Create(ctx, user.CreateRequest{Name: "Ada", SellPerDay: 500})
	require.NoError(t, err)

	agg := billing.NewAggregator(ts.Client, nil)
	b := board.New(ts.Client, agg, nil)
	require.NoError(t, b.Load(ctx))
	require.Empty(t, b.Visible())

	created, err := b.AddProject(ctx, project.CreateRequest{
		Name:             "Atlas Corp",
		PaymentCycle:     project.CycleMonthly,
		BudgetMaxMonthly: 1000,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Atlas Corp"}, names(b.Visible()))

	// Half a day of Ada's time this month: 0.5 * 500 = 250.
	require.NoError(t, ts.Activities.Record(ctx, &activity.Activity{
		ProjectID: created.ID,
		UserID:    ada.ID,
		Total:     0.5,
		Date:      time.Now().UTC(),
	}))

	// An activity from an unknown user contributes zero, not an error.
	require.NoError(t, ts.Activities.Record(ctx, &activity.Activity{
		ProjectID: created.ID,
		UserID:    "ghost",
		Total:     100,
		Date:      time.Now().UTC(),
	}))

	b.RefreshBudgets(ctx)
	report, ok := b.Budget(created.ID)
	require.True(t, ok)
	require.Equal(t, 250.0, report.Consumed)
	require.True(t, report.HasCeiling)
	require.Equal(t, 25.0, report.Percent())
}

func TestBoard_EndToEnd_OneTimeBudget(t *testing.T) {
	ctx := context.Background()
	ts := testserver.New(t)

	ada, err := ts.Users.Create(ctx, user.CreateRequest{Name: "Ada", SellPerDay: 100})
	require.NoError(t, err)

	// A one-time project created months ago; its window spans from inception,
	// so activities from past months still count.
	inception := time.Now().UTC().AddDate(0, -2, 0)
	projectRepo := sqlite.NewProjectRepository(ts.DB)
	oneTime := &project.Project{
		ID:           "one-time",
		Name:         "Fixed Bid",
		Status:       project.StatusActive,
		PaymentCycle: project.CycleOneTime,
		CreatedAt:    inception,
	}
	require.NoError(t, projectRepo.Create(ctx, oneTime))

	require.NoError(t, ts.Activities.Record(ctx, &activity.Activity{
		ProjectID: oneTime.ID, UserID: ada.ID, Total: 1, Date: inception,
	}))
	require.NoError(t, ts.Activities.Record(ctx, &activity.Activity{
		ProjectID: oneTime.ID, UserID: ada.ID, Total: 2, Date: time.Now().UTC(),
	}))

	agg := billing.NewAggregator(ts.Client, nil)
	b := board.New(ts.Client, agg, nil)
	require.NoError(t, b.Load(ctx))
	b.RefreshBudgets(ctx)

	report, ok := b.Budget(oneTime.ID)
	require.True(t, ok)
	require.Equal(t, 300.0, report.Consumed)
	require.False(t, report.HasCeiling)
	require.Equal(t, "300.00", report.Amount())
}

func TestBoard_EndToEnd_FilterAndSections(t *testing.T) {
	ctx := context.Background()
	ts := testserver.New(t)

	agg := billing.NewAggregator(ts.Client, nil)
	b := board.New(ts.Client, agg, nil)
	require.NoError(t, b.Load(ctx))

	_, err := b.AddProject(ctx, project.CreateRequest{Name: "Atlas Corp"})
	require.NoError(t, err)
	_, err = b.AddProject(ctx, project.CreateRequest{Name: "Borealis"})
	require.NoError(t, err)
	_, err = b.AddProject(ctx, project.CreateRequest{Name: "atlas internal", Status: project.StatusInactive})
	require.NoError(t, err)

	b.SetSearchQuery("Atlas")
	require.Equal(t, []string{"Atlas Corp", "atlas internal"}, names(b.Visible()))

	b.SetStatusFilter(project.StatusActive)
	require.Equal(t, []string{"Atlas Corp"}, names(b.Visible()))

	sections := b.Sections()
	require.Len(t, sections, 1)
	require.Equal(t, project.StatusActive, sections[0].Status)

	b.SetSearchQuery("")
	b.SetStatusFilter("")
	require.Len(t, b.Visible(), 3)
	require.Len(t, b.Sections(), 2)
}

func names(projects []project.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Name)
	}
	return out
}
