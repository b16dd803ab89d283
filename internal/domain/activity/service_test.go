package activity_test

import (
	"context"
	"testing"
	"time"

	"github.com/avaleri/burnboard/internal/domain/activity"
	"github.com/avaleri/burnboard/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivityService_RecordStampsIDAndDate(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ActivityRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil)

	svc := activity.NewService(repo, nil)
	act := &activity.Activity{ProjectID: "p1", UserID: "u1", Total: 1}
	require.NoError(t, svc.Record(ctx, act))
	require.NotEmpty(t, act.ID)
	require.False(t, act.Date.IsZero())
}

func TestActivityService_RecordValidation(t *testing.T) {
	ctx := context.Background()
	svc := activity.NewService(&mocks.ActivityRepository{}, nil)

	require.ErrorIs(t, svc.Record(ctx, nil), activity.ErrInvalidInput)
	require.ErrorIs(t, svc.Record(ctx, &activity.Activity{UserID: "u1"}), activity.ErrInvalidInput)
	require.ErrorIs(t, svc.Record(ctx, &activity.Activity{ProjectID: "p1", Total: -1}), activity.ErrInvalidInput)
}

func TestActivityService_ListWindow(t *testing.T) {
	ctx := context.Background()
	since := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	expected := []activity.Activity{{ID: "a1", ProjectID: "p1"}}

	repo := &mocks.ActivityRepository{}
	repo.On("ListWindow", ctx, "p1", since).Return(expected, nil)

	svc := activity.NewService(repo, nil)
	got, err := svc.ListWindow(ctx, "p1", since)
	require.NoError(t, err)
	require.Equal(t, expected, got)

	_, err = svc.ListWindow(ctx, "", since)
	require.ErrorIs(t, err, activity.ErrInvalidInput)
}
