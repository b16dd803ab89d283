package activity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service handles activity recording and window queries.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new activity service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Record appends an activity, stamping an ID and timestamp when missing.
func (s *Service) Record(ctx context.Context, act *Activity) error {
	if act == nil || strings.TrimSpace(act.ProjectID) == "" {
		return ErrInvalidInput
	}
	if act.Total < 0 {
		return ErrInvalidInput
	}
	if strings.TrimSpace(act.ID) == "" {
		act.ID = uuid.NewString()
	}
	if act.Date.IsZero() {
		act.Date = time.Now().UTC()
	}
	if err := s.repo.Create(ctx, act); err != nil {
		return fmt.Errorf("recording activity: %w", err)
	}
	return nil
}

// ListWindow returns a project's activities dated at or after since.
// A zero since leaves the window open-ended at the lower bound.
func (s *Service) ListWindow(ctx context.Context, projectID string, since time.Time) ([]Activity, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListWindow(ctx, projectID, since)
}
