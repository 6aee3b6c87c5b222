package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/stash/internal/error_values"
	"github.com/limbo/stash/internal/repository"
	"github.com/limbo/stash/internal/schedule"
	"github.com/limbo/stash/internal/stats"
	"github.com/limbo/stash/pkg/entity"
)

type ChallengesService struct {
	challengesRepo repository.ChallengesRepositoryI
	savingsRepo    repository.SavingsRepositoryI
	statsRepo      repository.StatsRepositoryI
	notifier       NotificationSchedulerI
}

func NewChallengesService(challengesRepo repository.ChallengesRepositoryI, savingsRepo repository.SavingsRepositoryI,
	statsRepo repository.StatsRepositoryI, notifier NotificationSchedulerI) *ChallengesService {
	if challengesRepo == nil || savingsRepo == nil || statsRepo == nil {
		log.Fatal("provided nil repos to challenges service")
	}
	return &ChallengesService{
		challengesRepo: challengesRepo,
		savingsRepo:    savingsRepo,
		statsRepo:      statsRepo,
		notifier:       notifier,
	}
}

func (cs *ChallengesService) CreateChallenge(ctx context.Context, uid uuid.UUID, cfg *ChallengeConfig) (*entity.Challenge, error) {
	if err := validateChallengeConfig(cfg); err != nil {
		return nil, err
	}
	ch := &entity.Challenge{
		ID:           uuid.New(),
		UserID:       uid,
		Name:         cfg.Name,
		Icon:         cfg.Icon,
		TargetAmount: cfg.TargetAmount,
		StartDate:    cfg.StartDate,
		EndDate:      cfg.EndDate,
		Strategy:     cfg.Strategy,
		Mode:         cfg.Mode,
		CycleAmount:  cfg.CycleAmount,
	}
	savings, end := schedule.Generate(planConfig(ch.ID, cfg))
	ch.Savings = savings
	if cfg.Mode == entity.ModeByAmount {
		// End date is derived from the schedule, not supplied.
		ch.EndDate = end
	}
	err := cs.challengesRepo.Create(ctx, ch)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	err = cs.statsRepo.Append(ctx, &entity.StatsEntry{
		UserID:    uid,
		Kind:      entity.StatsChallengeStarted,
		Date:      stats.Day(time.Now()),
		Challenge: &entity.ChallengeStats{ChallengeID: ch.ID},
	})
	if err != nil {
		return nil, errors.New("stats repository error: " + err.Error())
	}
	cs.scheduleReminder(ctx, ch)
	return ch, nil
}

func (cs *ChallengesService) EditChallenge(ctx context.Context, challengeID, userID uuid.UUID, cfg *ChallengeConfig) (*entity.Challenge, error) {
	ch, err := cs.getOwned(ctx, challengeID, userID)
	if err != nil {
		return nil, err
	}
	if err = validateChallengeConfig(cfg); err != nil {
		return nil, err
	}
	if cfg.TargetAmount <= ch.CurrentSavedAmount() {
		return nil, errorvalues.ErrTargetBelowSaved
	}
	savings, end := schedule.Reconcile(ch.Savings, planConfig(ch.ID, cfg))

	ch.Name = cfg.Name
	ch.Icon = cfg.Icon
	ch.TargetAmount = cfg.TargetAmount
	ch.StartDate = cfg.StartDate
	ch.EndDate = cfg.EndDate
	ch.Strategy = cfg.Strategy
	ch.Mode = cfg.Mode
	ch.CycleAmount = cfg.CycleAmount
	if cfg.Mode == entity.ModeByAmount {
		ch.EndDate = end
	}
	ch.Savings = savings

	if err = cs.challengesRepo.Update(ctx, ch); err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	tail := make([]entity.Saving, 0, len(savings))
	for _, s := range savings {
		if !s.Done {
			tail = append(tail, s)
		}
	}
	if err = cs.savingsRepo.ReplaceUndone(ctx, ch.ID, tail); err != nil {
		return nil, errors.New("savings repository error: " + err.Error())
	}
	cs.scheduleReminder(ctx, ch)
	return ch, nil
}

func (cs *ChallengesService) DeleteChallenge(ctx context.Context, challengeID, userID uuid.UUID) error {
	ch, err := cs.getOwned(ctx, challengeID, userID)
	if err != nil {
		return err
	}
	if err = cs.challengesRepo.Delete(ctx, challengeID); err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return err
		}
		return errors.New("challenges repository error: " + err.Error())
	}
	// The log reflects current state: everything referencing the
	// challenge goes, then a single deletion marker is appended.
	if err = cs.statsRepo.DeleteByChallengeID(ctx, challengeID); err != nil {
		return errors.New("stats repository error: " + err.Error())
	}
	err = cs.statsRepo.Append(ctx, &entity.StatsEntry{
		UserID:    ch.UserID,
		Kind:      entity.StatsChallengeDeleted,
		Date:      stats.Day(time.Now()),
		Challenge: &entity.ChallengeStats{ChallengeID: challengeID},
	})
	if err != nil {
		return errors.New("stats repository error: " + err.Error())
	}
	return nil
}

func (cs *ChallengesService) GetChallenge(ctx context.Context, challengeID, userID uuid.UUID) (*entity.Challenge, error) {
	return cs.getOwned(ctx, challengeID, userID)
}

func (cs *ChallengesService) GetUserChallenges(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Challenge, error) {
	challenges, err := cs.challengesRepo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	entity.SortChallengesByUrgency(challenges)
	return challenges, nil
}

func (cs *ChallengesService) getOwned(ctx context.Context, challengeID, userID uuid.UUID) (*entity.Challenge, error) {
	ch, err := cs.challengesRepo.GetByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	if ch.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return ch, nil
}

func (cs *ChallengesService) scheduleReminder(ctx context.Context, ch *entity.Challenge) {
	if cs.notifier == nil {
		return
	}
	next := ch.NextDueAt(1)
	if next == nil {
		return
	}
	if err := cs.notifier.ScheduleReminder(ctx, ch.ID, next.DueDate); err != nil {
		slog.Warn("scheduling reminder failed", slog.String("error", err.Error()))
	}
}

func planConfig(challengeID uuid.UUID, cfg *ChallengeConfig) schedule.PlanConfig {
	return schedule.PlanConfig{
		ChallengeID:  challengeID,
		TargetAmount: cfg.TargetAmount,
		Start:        cfg.StartDate,
		End:          cfg.EndDate,
		Strategy:     cfg.Strategy,
		Mode:         cfg.Mode,
		CycleAmount:  cfg.CycleAmount,
	}
}

// validateChallengeConfig rejects invalid configurations before they
// reach the generator; the generator itself assumes sound input.
func validateChallengeConfig(cfg *ChallengeConfig) error {
	if err := validate.Struct(*cfg); err != nil {
		return errorvalues.ErrInvalidConfig
	}
	if !cfg.Strategy.Valid() {
		return errorvalues.ErrInvalidStrategy
	}
	if !cfg.Mode.Valid() {
		return errorvalues.ErrInvalidMode
	}
	if cfg.TargetAmount <= 0 {
		return errorvalues.ErrInvalidTarget
	}
	if cfg.Mode == entity.ModeByAmount && cfg.CycleAmount <= 0 {
		return errorvalues.ErrInvalidCycleAmount
	}
	if cfg.Mode == entity.ModeByDate && !cfg.EndDate.After(cfg.StartDate) {
		return errorvalues.ErrEndBeforeStart
	}
	return nil
}
