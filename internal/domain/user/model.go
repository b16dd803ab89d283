package user

import "time"

// User is a billable team member. SellPerDay is the monetary rate applied to
// each unit of recorded activity.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name,omitempty"`
	SellPerDay float64   `json:"sellPerDay"`
	CreatedAt  time.Time `json:"created_at"`
}
