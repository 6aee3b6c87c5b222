package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/stash/internal/error_values"
	"github.com/limbo/stash/pkg/cleanup"
	"github.com/limbo/stash/pkg/entity"
)

type SavingsRepository struct {
	conn PgConnection
}

func NewSavingsRepo(cfg DBConfig) *SavingsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for savingsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for savingsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &SavingsRepository{
		conn: pool,
	}
}

func NewSavingsRepoWithConn(conn PgConnection) *SavingsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for savingsRepo: " + err.Error())
	}
	return &SavingsRepository{
		conn: conn,
	}
}

func (sr *SavingsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Saving, error) {
	var saving entity.Saving
	saving.ID = id
	row := sr.conn.QueryRow(ctx, `SELECT challenge_id, amount, due_date, done FROM savings WHERE id = $1;`, id)
	if err := row.Scan(&saving.ChallengeID, &saving.Amount, &saving.DueDate, &saving.Done); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSavingNotFound
		}
		return nil, errors.New("getting saving by id error: " + err.Error())
	}
	return &saving, nil
}

func (sr *SavingsRepository) SetDone(ctx context.Context, id uuid.UUID, done bool) error {
	ct, err := sr.conn.Exec(ctx, `UPDATE savings SET done = $1 WHERE id = $2;`, done, id)
	if err != nil {
		return errors.New("error toggling saving: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSavingNotFound
	}
	return nil
}

func (sr *SavingsRepository) ReplaceUndone(ctx context.Context, challengeID uuid.UUID, tail []entity.Saving) error {
	tx, err := sr.conn.Begin(ctx)
	if err != nil {
		return errors.New("opening replace tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	_, err = tx.Exec(ctx, `DELETE FROM savings WHERE challenge_id = $1 AND done = FALSE;`, challengeID)
	if err != nil {
		return errors.New("discarding undone savings error: " + err.Error())
	}
	for _, s := range tail {
		_, err = tx.Exec(ctx, `INSERT INTO savings (id, challenge_id, amount, due_date, done) VALUES ($1, $2, $3, $4, $5);`,
			s.ID, s.ChallengeID, s.Amount, s.DueDate, s.Done,
		)
		if err != nil {
			return errors.New("inserting regenerated saving error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing replace tx error: " + err.Error())
	}
	return nil
}
