package mocks

import (
	"context"

	"github.com/avaleri/burnboard/internal/billing"
	"github.com/avaleri/burnboard/internal/domain/activity"
	"github.com/avaleri/burnboard/internal/domain/project"
	"github.com/avaleri/burnboard/internal/domain/user"
	"github.com/stretchr/testify/mock"
)

// Client is a mock for api.Client.
type Client struct {
	mock.Mock
}

func (m *Client) ListProjects(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) CreateProject(ctx context.Context, req project.CreateRequest) (*project.Project, error) {
	args := m.Called(ctx, req)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ListActivities(ctx context.Context, projectID string, w billing.Window) ([]activity.Activity, error) {
	args := m.Called(ctx, projectID, w)
	if list, ok := args.Get(0).([]activity.Activity); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ListUsers(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]user.User); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
