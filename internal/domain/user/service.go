package user

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

// Service handles user operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new user service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines user creation inputs.
type CreateRequest struct {
	Name       string  `json:"name,omitempty"`
	SellPerDay float64 `json:"sellPerDay"`
}

// Create creates a new user.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*User, error) {
	if req.SellPerDay < 0 {
		return nil, ErrInvalidInput
	}

	u := &User{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(req.Name),
		SellPerDay: req.SellPerDay,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return u, nil
}

// Get fetches a user by ID.
func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return u, nil
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}
