package entity

import (
	"time"

	"github.com/google/uuid"
)

// StatsKind is the event kind of a stats log entry.
type StatsKind string

const (
	StatsMoneySaved         StatsKind = "money_saved"
	StatsChallengeStarted   StatsKind = "challenge_started"
	StatsChallengeCompleted StatsKind = "challenge_completed"
	StatsChallengeDeleted   StatsKind = "challenge_deleted"
)

// StatsEntry is one record of the per-user event log. Exactly one of
// Saving and Challenge is set, depending on Kind. Date is truncated to
// the calendar day. Entries are never mutated; they are removed
// wholesale when the saving is un-done or the challenge deleted, so the
// log reflects current state rather than an audit trail.
type StatsEntry struct {
	ID        int64           `json:"id"`
	UserID    uuid.UUID       `json:"uid"`
	Kind      StatsKind       `json:"kind"`
	Date      time.Time       `json:"date"`
	Saving    *SavingStats    `json:"saving,omitempty"`
	Challenge *ChallengeStats `json:"challenge,omitempty"`
}

// SavingStats is the payload of a MoneySaved entry.
type SavingStats struct {
	SavingID     uuid.UUID `json:"saving_id"`
	ChallengeID  uuid.UUID `json:"challenge_id"`
	Amount       int64     `json:"amount"`
	ExpectedDate time.Time `json:"expected_date"`
}

// ChallengeStats is the payload of a challenge lifecycle entry.
type ChallengeStats struct {
	ChallengeID uuid.UUID `json:"challenge_id"`
}

// UserStats is the aggregate served by the stats endpoint.
// Punctuality is nil while no MoneySaved events exist.
type UserStats struct {
	TotalMoneySaved     int64    `json:"total_money_saved"`
	ChallengesStarted   int      `json:"challenges_started"`
	ChallengesCompleted int      `json:"challenges_completed"`
	ChallengesDeleted   int      `json:"challenges_deleted"`
	Punctuality         *float64 `json:"punctuality,omitempty"`
}
