package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/avaleri/burnboard/internal/domain/activity"
	"github.com/avaleri/burnboard/internal/repository"
)

// ActivityRepository implements repository.ActivityRepository for SQLite
type ActivityRepository struct {
	db *DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create inserts a new activity
func (r *ActivityRepository) Create(ctx context.Context, act *activity.Activity) error {
	query := `
		INSERT INTO activities (id, project_id, user_id, total, date)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		act.ID,
		act.ProjectID,
		act.UserID,
		act.Total,
		act.Date,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create activity: %w", err)
	}

	return nil
}

// ListWindow returns a project's activities dated at or after since, oldest
// first. A zero since returns the project's full history.
func (r *ActivityRepository) ListWindow(ctx context.Context, projectID string, since time.Time) ([]activity.Activity, error) {
	query := `
		SELECT id, project_id, user_id, total, date
		FROM activities
		WHERE project_id = ? AND date >= ?
		ORDER BY date ASC
	`

	rows, err := r.db.QueryContext(ctx, query, projectID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []activity.Activity
	for rows.Next() {
		var act activity.Activity
		err := rows.Scan(
			&act.ID,
			&act.ProjectID,
			&act.UserID,
			&act.Total,
			&act.Date,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, act)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	return activities, nil
}
