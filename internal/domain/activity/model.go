package activity

import "time"

// Activity is one recorded unit of work on a project, attributed to a user.
// Activities are append-only; the billing layer only ever reads windows of them.
type Activity struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	UserID    string    `json:"userId"`
	Total     float64   `json:"total"`
	Date      time.Time `json:"date"`
}
