package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/stash/pkg/cleanup"
	"github.com/limbo/stash/pkg/entity"
)

// StatsRepository stores the per-user event log. One table holds all
// kinds; the saving payload columns are NULL on challenge lifecycle
// entries and vice versa.
type StatsRepository struct {
	conn PgConnection
}

func NewStatsRepo(cfg DBConfig) *StatsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for statsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for statsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &StatsRepository{
		conn: pool,
	}
}

func NewStatsRepoWithConn(conn PgConnection) *StatsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for statsRepo: " + err.Error())
	}
	return &StatsRepository{
		conn: conn,
	}
}

func (str *StatsRepository) Append(ctx context.Context, entry *entity.StatsEntry) error {
	var (
		savingID     *uuid.UUID
		challengeID  *uuid.UUID
		amount       *int64
		expectedDate *time.Time
	)
	if entry.Saving != nil {
		savingID = &entry.Saving.SavingID
		challengeID = &entry.Saving.ChallengeID
		amount = &entry.Saving.Amount
		expectedDate = &entry.Saving.ExpectedDate
	}
	if entry.Challenge != nil {
		challengeID = &entry.Challenge.ChallengeID
	}
	_, err := str.conn.Exec(ctx, `INSERT INTO stats_entries (user_id, kind, entry_date, saving_id, challenge_id, amount, expected_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		entry.UserID, entry.Kind, entry.Date, savingID, challengeID, amount, expectedDate,
	)
	if err != nil {
		return errors.New("appending stats entry error: " + err.Error())
	}
	return nil
}

func (str *StatsRepository) DeleteBySavingID(ctx context.Context, savingID uuid.UUID) error {
	_, err := str.conn.Exec(ctx, `DELETE FROM stats_entries WHERE saving_id = $1;`, savingID)
	if err != nil {
		return errors.New("retracting saving stats error: " + err.Error())
	}
	return nil
}

func (str *StatsRepository) DeleteByChallengeID(ctx context.Context, challengeID uuid.UUID) error {
	_, err := str.conn.Exec(ctx, `DELETE FROM stats_entries WHERE challenge_id = $1;`, challengeID)
	if err != nil {
		return errors.New("purging challenge stats error: " + err.Error())
	}
	return nil
}

func (str *StatsRepository) DeleteByChallengeAndKind(ctx context.Context, challengeID uuid.UUID, kind entity.StatsKind) error {
	_, err := str.conn.Exec(ctx, `DELETE FROM stats_entries WHERE challenge_id = $1 AND kind = $2;`, challengeID, kind)
	if err != nil {
		return errors.New("retracting challenge stats error: " + err.Error())
	}
	return nil
}

func (str *StatsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]entity.StatsEntry, error) {
	rows, err := str.conn.Query(ctx, `SELECT id, user_id, kind, entry_date, saving_id, challenge_id, amount, expected_date
		FROM stats_entries WHERE user_id = $1 ORDER BY entry_date;`, uid)
	if err != nil {
		return nil, errors.New("getting stats entries by uid error: " + err.Error())
	}
	return scanEntries(rows)
}

func (str *StatsRepository) GetByChallengeID(ctx context.Context, challengeID uuid.UUID) ([]entity.StatsEntry, error) {
	rows, err := str.conn.Query(ctx, `SELECT id, user_id, kind, entry_date, saving_id, challenge_id, amount, expected_date
		FROM stats_entries WHERE challenge_id = $1 ORDER BY entry_date;`, challengeID)
	if err != nil {
		return nil, errors.New("getting stats entries by challenge error: " + err.Error())
	}
	return scanEntries(rows)
}

func scanEntries(rows pgx.Rows) ([]entity.StatsEntry, error) {
	defer rows.Close()
	entries := make([]entity.StatsEntry, 0)
	for rows.Next() {
		var (
			e            entity.StatsEntry
			savingID     *uuid.UUID
			challengeID  *uuid.UUID
			amount       *int64
			expectedDate *time.Time
		)
		err := rows.Scan(&e.ID, &e.UserID, &e.Kind, &e.Date, &savingID, &challengeID, &amount, &expectedDate)
		if err != nil {
			return nil, errors.New("stats entry row parsing error: " + err.Error())
		}
		if e.Kind == entity.StatsMoneySaved && savingID != nil && challengeID != nil && amount != nil && expectedDate != nil {
			e.Saving = &entity.SavingStats{
				SavingID:     *savingID,
				ChallengeID:  *challengeID,
				Amount:       *amount,
				ExpectedDate: *expectedDate,
			}
		} else if challengeID != nil {
			e.Challenge = &entity.ChallengeStats{ChallengeID: *challengeID}
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected stats rows error: " + rows.Err().Error())
	}
	return entries, nil
}
