package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avaleri/burnboard/internal/repository"
	"github.com/google/uuid"
)

// Service handles project operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	Name             string       `json:"name"`
	Description      string       `json:"description,omitempty"`
	Logo             string       `json:"logo,omitempty"`
	Status           Status       `json:"status,omitempty"`
	PaymentCycle     PaymentCycle `json:"paymentCycle,omitempty"`
	BudgetMaxMonthly float64      `json:"budget_max_monthly,omitempty"`
}

// Create creates a new project. New projects default to active status and a
// monthly payment cycle.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidInput
	}
	if req.BudgetMaxMonthly < 0 {
		return nil, ErrInvalidInput
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}
	cycle := req.PaymentCycle
	if cycle == "" {
		cycle = CycleMonthly
	}

	proj := &Project{
		ID:               uuid.NewString(),
		Name:             req.Name,
		Description:      req.Description,
		Logo:             req.Logo,
		Status:           status,
		PaymentCycle:     cycle,
		BudgetMaxMonthly: req.BudgetMaxMonthly,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, proj); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	return proj, nil
}

// Get fetches a project by ID.
func (s *Service) Get(ctx context.Context, id string) (*Project, error) {
	proj, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// List returns all projects.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	return s.repo.List(ctx)
}
