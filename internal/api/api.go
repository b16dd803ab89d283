package api

import (
	"context"
	"errors"

	"github.com/avaleri/burnboard/internal/billing"
	"github.com/avaleri/burnboard/internal/domain/activity"
	"github.com/avaleri/burnboard/internal/domain/project"
	"github.com/avaleri/burnboard/internal/domain/user"
)

// ErrRequestFailed indicates a remote listing or creation request failed.
// Callers surface it to the user instead of degrading to empty data.
var ErrRequestFailed = errors.New("api request failed")

// Client is the remote collaborator the board and billing layers consume.
// The concrete transport behind it is deliberately out of scope; see the
// apiclient package for the HTTP implementation.
type Client interface {
	ListProjects(ctx context.Context) ([]project.Project, error)
	CreateProject(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	ListActivities(ctx context.Context, projectID string, w billing.Window) ([]activity.Activity, error)
	ListUsers(ctx context.Context) ([]user.User, error)
}
