package activity

import (
	"context"
	"time"
)

// Repository provides persistence for activities.
type Repository interface {
	Create(ctx context.Context, act *Activity) error
	ListWindow(ctx context.Context, projectID string, since time.Time) ([]Activity, error)
}
