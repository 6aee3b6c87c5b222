package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/stash/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

// ChallengeConfig is the caller-facing goal configuration. EndDate is
// read only in by-date mode, CycleAmount only in by-amount mode; the
// cross-field rules live in validateChallengeConfig.
type ChallengeConfig struct {
	Name         string          `validate:"required,min=1,max=100"`
	Icon         string          `validate:"max=50"`
	TargetAmount int64           `validate:"required"`
	StartDate    time.Time       `validate:"required"`
	EndDate      time.Time       `validate:"-"`
	Strategy     entity.Strategy `validate:"required"`
	Mode         entity.PlanMode `validate:"required"`
	CycleAmount  int64           `validate:"-"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type ChallengesServiceI interface {
	// Validates config, generates the installment schedule and persists both
	CreateChallenge(ctx context.Context, uid uuid.UUID, cfg *ChallengeConfig) (*entity.Challenge, error)
	// Reconciles the schedule with the edited config, done installments untouched
	EditChallenge(ctx context.Context, challengeID, userID uuid.UUID, cfg *ChallengeConfig) (*entity.Challenge, error)
	// Deletes challenge with its savings and purges its stats entries
	DeleteChallenge(ctx context.Context, challengeID, userID uuid.UUID) error
	GetChallenge(ctx context.Context, challengeID, userID uuid.UUID) (*entity.Challenge, error)
	// Lists challenges of user sorted by urgency. Requires pagination params provided
	GetUserChallenges(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Challenge, error)
}

type SavingsServiceI interface {
	// Flips the done flag of a saving and keeps the event log in sync
	ToggleSaving(ctx context.Context, challengeID, savingID, userID uuid.UUID) (*entity.Saving, error)
}

type StatsServiceI interface {
	// Aggregates the user's event log, optionally bounded to [from, to] days
	GetUserStats(ctx context.Context, uid uuid.UUID, from, to time.Time) (*entity.UserStats, error)
	// Counts the challenge's consecutive punctual completions, newest first
	GetChallengeStreak(ctx context.Context, challengeID, userID uuid.UUID) (int, error)
}

// ProfileSyncerI mirrors the user's total saved amount to the remote
// profile. Fire-and-forget: failures are logged, never surfaced.
type ProfileSyncerI interface {
	PushTotalSaved(ctx context.Context, uid uuid.UUID, total int64) error
}

// NotificationSchedulerI receives the next due date of a schedule so
// reminders can be planned. Delivery is outside the core's concern.
type NotificationSchedulerI interface {
	ScheduleReminder(ctx context.Context, challengeID uuid.UUID, due time.Time) error
}
