package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/avaleri/burnboard/internal/domain/project"
	"github.com/avaleri/burnboard/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestProjectRepository_CreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	proj := &project.Project{
		ID:               "p1",
		Name:             "Atlas Corp",
		Description:      "Flagship client",
		Logo:             "https://example.com/atlas.png",
		Status:           project.StatusActive,
		PaymentCycle:     project.CycleMonthly,
		BudgetMaxMonthly: 1000,
		CreatedAt:        time.Now().UTC(),
	}

	err := repo.Create(ctx, proj)
	require.NoError(t, err)

	retrieved, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, proj.ID, retrieved.ID)
	require.Equal(t, proj.Name, retrieved.Name)
	require.Equal(t, proj.Description, retrieved.Description)
	require.Equal(t, proj.Status, retrieved.Status)
	require.Equal(t, proj.PaymentCycle, retrieved.PaymentCycle)
	require.Equal(t, proj.BudgetMaxMonthly, retrieved.BudgetMaxMonthly)

	_, err = repo.Get(ctx, "nonexistent")
	require.Equal(t, repository.ErrNotFound, err)
}

func TestProjectRepository_CreateDuplicateID(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	proj := &project.Project{
		ID:           "p1",
		Name:         "Atlas Corp",
		Status:       project.StatusActive,
		PaymentCycle: project.CycleMonthly,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, proj))
	require.ErrorIs(t, repo.Create(ctx, proj), repository.ErrInvalidInput)
}

func TestProjectRepository_List(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	first := &project.Project{
		ID:           "p1",
		Name:         "First",
		Status:       project.StatusActive,
		PaymentCycle: project.CycleMonthly,
		CreatedAt:    time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	second := &project.Project{
		ID:           "p2",
		Name:         "Second",
		Status:       project.StatusInactive,
		PaymentCycle: project.CycleOneTime,
		CreatedAt:    time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	// Oldest first.
	require.Equal(t, "p1", projects[0].ID)
	require.Equal(t, "p2", projects[1].ID)
	require.Equal(t, project.CycleOneTime, projects[1].PaymentCycle)
}
