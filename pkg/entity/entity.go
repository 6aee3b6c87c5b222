package entity

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Strategy is the recurrence unit governing installment spacing.
type Strategy string

const (
	StrategyDaily     Strategy = "daily"
	StrategyWeekly    Strategy = "weekly"
	StrategyMonthly   Strategy = "monthly"
	StrategyQuarterly Strategy = "quarterly"
	StrategyBiannual  Strategy = "biannual"
	StrategyAnnual    Strategy = "annual"
)

func (s Strategy) Valid() bool {
	switch s {
	case StrategyDaily, StrategyWeekly, StrategyMonthly, StrategyQuarterly, StrategyBiannual, StrategyAnnual:
		return true
	}
	return false
}

// PlanMode selects how a schedule is derived: from a fixed end date or
// from a fixed per-installment amount.
type PlanMode string

const (
	ModeByDate   PlanMode = "by_date"
	ModeByAmount PlanMode = "by_amount"
)

func (m PlanMode) Valid() bool {
	return m == ModeByDate || m == ModeByAmount
}

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

// Challenge is a savings goal. Amounts are integer minor units.
// In ModeByAmount the EndDate is derived from the generated schedule,
// not supplied by the caller.
type Challenge struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"uid"`
	Name         string    `json:"name"`
	Icon         string    `json:"icon"`
	TargetAmount int64     `json:"target_amount"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Strategy     Strategy  `json:"strategy"`
	Mode         PlanMode  `json:"mode"`
	CycleAmount  int64     `json:"cycle_amount,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Savings      []Saving  `json:"savings,omitempty"`
}

// Saving is one scheduled installment toward its challenge's target.
type Saving struct {
	ID          uuid.UUID `json:"id"`
	ChallengeID uuid.UUID `json:"challenge_id"`
	Amount      int64     `json:"amount"`
	DueDate     time.Time `json:"due_date"`
	Done        bool      `json:"done"`
}

// CurrentSavedAmount sums the amounts of done installments.
func (c *Challenge) CurrentSavedAmount() int64 {
	var sum int64
	for _, s := range c.Savings {
		if s.Done {
			sum += s.Amount
		}
	}
	return sum
}

// ProgressPercentage is currentSaved/target on the raw values.
// Presentation may clamp it to [0, 1].
func (c *Challenge) ProgressPercentage() float64 {
	if c.TargetAmount == 0 {
		return 0
	}
	return float64(c.CurrentSavedAmount()) / float64(c.TargetAmount)
}

func (c *Challenge) RemainingAmount() int64 {
	remaining := c.TargetAmount - c.CurrentSavedAmount()
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (c *Challenge) RemainingCount() int {
	count := 0
	for _, s := range c.Savings {
		if !s.Done {
			count++
		}
	}
	return count
}

// NextDueAt returns the n-th soonest undone installment (1-based),
// ties broken by ascending amount. When fewer than n remain it falls
// back to the latest undone installment; nil when none remain.
func (c *Challenge) NextDueAt(n int) *Saving {
	undone := make([]Saving, 0, len(c.Savings))
	for _, s := range c.Savings {
		if !s.Done {
			undone = append(undone, s)
		}
	}
	if len(undone) == 0 {
		return nil
	}
	sort.Slice(undone, func(i, j int) bool {
		if undone[i].DueDate.Equal(undone[j].DueDate) {
			return undone[i].Amount < undone[j].Amount
		}
		return undone[i].DueDate.Before(undone[j].DueDate)
	})
	if n < 1 || n > len(undone) {
		return &undone[len(undone)-1]
	}
	return &undone[n-1]
}

// SortChallengesByUrgency orders challenges by their soonest undone due
// date, fully saved challenges last.
func SortChallengesByUrgency(challenges []*Challenge) {
	sort.SliceStable(challenges, func(i, j int) bool {
		di, dj := challenges[i].NextDueAt(1), challenges[j].NextDueAt(1)
		switch {
		case di == nil:
			return false
		case dj == nil:
			return true
		}
		return di.DueDate.Before(dj.DueDate)
	})
}
