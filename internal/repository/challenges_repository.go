package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/stash/internal/error_values"
	"github.com/limbo/stash/pkg/cleanup"
	"github.com/limbo/stash/pkg/entity"
)

type ChallengesRepository struct {
	conn PgConnection
}

func NewChallengesRepo(cfg DBConfig) *ChallengesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for challengesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for challengesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ChallengesRepository{
		conn: pool,
	}
}

func NewChallengesRepoWithConn(conn PgConnection) *ChallengesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for challengesRepo: " + err.Error())
	}
	return &ChallengesRepository{
		conn: conn,
	}
}

func (cr *ChallengesRepository) Create(ctx context.Context, challenge *entity.Challenge) error {
	tx, err := cr.conn.Begin(ctx)
	if err != nil {
		return errors.New("opening challenge tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	_, err = tx.Exec(ctx, `INSERT INTO challenges (id, user_id, name, icon, target_amount, start_date, end_date, strategy, mode, cycle_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		challenge.ID,
		challenge.UserID,
		challenge.Name,
		challenge.Icon,
		challenge.TargetAmount,
		challenge.StartDate,
		challenge.EndDate,
		challenge.Strategy,
		challenge.Mode,
		challenge.CycleAmount,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating challenge db error: " + err.Error())
	}
	for _, s := range challenge.Savings {
		_, err = tx.Exec(ctx, `INSERT INTO savings (id, challenge_id, amount, due_date, done) VALUES ($1, $2, $3, $4, $5);`,
			s.ID, s.ChallengeID, s.Amount, s.DueDate, s.Done,
		)
		if err != nil {
			return errors.New("creating saving db error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing challenge tx error: " + err.Error())
	}
	return nil
}

func (cr *ChallengesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error) {
	var challenge entity.Challenge
	challenge.ID = id
	row := cr.conn.QueryRow(ctx, `SELECT user_id, name, icon, target_amount, start_date, end_date, strategy, mode, cycle_amount, created_at, updated_at
		FROM challenges WHERE id = $1;`, id)
	err := row.Scan(&challenge.UserID, &challenge.Name, &challenge.Icon, &challenge.TargetAmount,
		&challenge.StartDate, &challenge.EndDate, &challenge.Strategy, &challenge.Mode,
		&challenge.CycleAmount, &challenge.CreatedAt, &challenge.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChallengeNotFound
		}
		return nil, errors.New("getting challenge by id error: " + err.Error())
	}
	challenge.Savings, err = cr.savingsOf(ctx, id)
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (cr *ChallengesRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Challenge, error) {
	challenges := make([]*entity.Challenge, 0)
	rows, err := cr.conn.Query(ctx, `SELECT id, user_id, name, icon, target_amount, start_date, end_date, strategy, mode, cycle_amount, created_at, updated_at
		FROM challenges WHERE user_id = $1 LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting challenges by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		ch := entity.Challenge{}
		err = rows.Scan(&ch.ID, &ch.UserID, &ch.Name, &ch.Icon, &ch.TargetAmount,
			&ch.StartDate, &ch.EndDate, &ch.Strategy, &ch.Mode,
			&ch.CycleAmount, &ch.CreatedAt, &ch.UpdatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling challenge error: " + err.Error())
		}
		challenges = append(challenges, &ch)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	for _, ch := range challenges {
		ch.Savings, err = cr.savingsOf(ctx, ch.ID)
		if err != nil {
			return nil, err
		}
	}
	return challenges, nil
}

func (cr *ChallengesRepository) Update(ctx context.Context, challenge *entity.Challenge) error {
	ct, err := cr.conn.Exec(ctx, `UPDATE challenges SET name = $1, icon = $2, target_amount = $3, start_date = $4, end_date = $5,
		strategy = $6, mode = $7, cycle_amount = $8, updated_at = NOW() WHERE id = $9;`,
		challenge.Name, challenge.Icon, challenge.TargetAmount, challenge.StartDate, challenge.EndDate,
		challenge.Strategy, challenge.Mode, challenge.CycleAmount, challenge.ID,
	)
	if err != nil {
		return errors.New("error updating challenge: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrChallengeNotFound
	}
	return nil
}

func (cr *ChallengesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := cr.conn.Exec(ctx, `DELETE FROM challenges WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting challenge: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrChallengeNotFound
	}
	return nil
}

func (cr *ChallengesRepository) savingsOf(ctx context.Context, challengeID uuid.UUID) ([]entity.Saving, error) {
	rows, err := cr.conn.Query(ctx, `SELECT id, challenge_id, amount, due_date, done FROM savings WHERE challenge_id = $1 ORDER BY due_date;`, challengeID)
	if err != nil {
		return nil, errors.New("getting savings of challenge error: " + err.Error())
	}
	defer rows.Close()
	savings := make([]entity.Saving, 0)
	for rows.Next() {
		s := entity.Saving{}
		err = rows.Scan(&s.ID, &s.ChallengeID, &s.Amount, &s.DueDate, &s.Done)
		if err != nil {
			return nil, errors.New("unmarshalling saving error: " + err.Error())
		}
		savings = append(savings, s)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning savings: " + rows.Err().Error())
	}
	return savings, nil
}
