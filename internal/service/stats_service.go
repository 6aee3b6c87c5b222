package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/stash/internal/error_values"
	"github.com/limbo/stash/internal/repository"
	"github.com/limbo/stash/internal/stats"
	"github.com/limbo/stash/pkg/entity"
)

type StatsService struct {
	challengesRepo repository.ChallengesRepositoryI
	statsRepo      repository.StatsRepositoryI
}

func NewStatsService(challengesRepo repository.ChallengesRepositoryI, statsRepo repository.StatsRepositoryI) *StatsService {
	if challengesRepo == nil || statsRepo == nil {
		log.Fatal("provided nil repos to stats service")
	}
	return &StatsService{
		challengesRepo: challengesRepo,
		statsRepo:      statsRepo,
	}
}

func (ss *StatsService) GetUserStats(ctx context.Context, uid uuid.UUID, from, to time.Time) (*entity.UserStats, error) {
	entries, err := ss.statsRepo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("stats repository error: " + err.Error())
	}
	ranged := stats.InRange(entries, from, to)
	userStats := &entity.UserStats{
		TotalMoneySaved:     stats.TotalMoneySaved(ranged),
		ChallengesStarted:   stats.CountKind(ranged, entity.StatsChallengeStarted),
		ChallengesCompleted: stats.CountKind(ranged, entity.StatsChallengeCompleted),
		ChallengesDeleted:   stats.CountKind(ranged, entity.StatsChallengeDeleted),
	}
	// Punctuality stays nil while there is nothing to divide by.
	if ratio, ok := stats.Punctuality(ranged); ok {
		userStats.Punctuality = &ratio
	}
	return userStats, nil
}

func (ss *StatsService) GetChallengeStreak(ctx context.Context, challengeID, userID uuid.UUID) (int, error) {
	ch, err := ss.challengesRepo.GetByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return 0, err
		}
		return 0, errors.New("challenges repository error: " + err.Error())
	}
	if ch.UserID != userID {
		return 0, errorvalues.ErrWrongOwner
	}
	entries, err := ss.statsRepo.GetByChallengeID(ctx, challengeID)
	if err != nil {
		return 0, errors.New("stats repository error: " + err.Error())
	}
	return stats.CurrentStreak(entries, challengeID), nil
}
