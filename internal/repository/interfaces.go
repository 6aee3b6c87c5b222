package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/stash/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type ChallengesRepositoryI interface {
	// Persists challenge together with its generated savings in one transaction
	Create(ctx context.Context, challenge *entity.Challenge) error
	// Loads challenge with its savings ordered by due date
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error)
	// Lists challenges of user with uid, savings included. Requires pagination params
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Challenge, error)
	// Updates challenge config fields (ID in challenge is necessary)
	Update(ctx context.Context, challenge *entity.Challenge) error
	// Deletes challenge; savings go with it
	Delete(ctx context.Context, id uuid.UUID) error
}

type SavingsRepositoryI interface {
	// Searches saving with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Saving, error)
	// Sets the done flag on saving with id
	SetDone(ctx context.Context, id uuid.UUID, done bool) error
	// Swaps the undone tail of challengeID for the freshly generated one in one transaction
	ReplaceUndone(ctx context.Context, challengeID uuid.UUID, tail []entity.Saving) error
}

type StatsRepositoryI interface {
	// Appends one entry to the user's event log
	Append(ctx context.Context, entry *entity.StatsEntry) error
	// Retracts the MoneySaved entry of an un-done saving
	DeleteBySavingID(ctx context.Context, savingID uuid.UUID) error
	// Purges every entry referencing challengeID (challenge deletion)
	DeleteByChallengeID(ctx context.Context, challengeID uuid.UUID) error
	// Retracts entries of one kind for challengeID (completion rollback)
	DeleteByChallengeAndKind(ctx context.Context, challengeID uuid.UUID, kind entity.StatsKind) error
	// Provides the whole event log of user with uid
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]entity.StatsEntry, error)
	// Provides entries referencing challengeID
	GetByChallengeID(ctx context.Context, challengeID uuid.UUID) ([]entity.StatsEntry, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
