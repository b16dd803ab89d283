package project

import "time"

// Status is the lifecycle state of a project.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// PaymentCycle controls how a project's billing window resets.
type PaymentCycle string

const (
	// CycleMonthly resets the budget at the start of every calendar month.
	CycleMonthly PaymentCycle = "MONTHLY"
	// CycleOneTime accumulates budget from the project's inception.
	CycleOneTime PaymentCycle = "ONE_TIME"
)

// Project represents a billable client project.
type Project struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Description      string       `json:"description,omitempty"`
	Logo             string       `json:"logo,omitempty"`
	Status           Status       `json:"status"`
	PaymentCycle     PaymentCycle `json:"paymentCycle"`
	BudgetMaxMonthly float64      `json:"budget_max_monthly,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
}

// HasBudgetCeiling reports whether a monthly budget ceiling is set.
// Projects without one report raw consumption instead of a percentage.
func (p Project) HasBudgetCeiling() bool {
	return p.BudgetMaxMonthly > 0
}
