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
	"github.com/limbo/stash/internal/stats"
	"github.com/limbo/stash/pkg/entity"
)

type SavingsService struct {
	challengesRepo repository.ChallengesRepositoryI
	savingsRepo    repository.SavingsRepositoryI
	statsRepo      repository.StatsRepositoryI
	profileSyncer  ProfileSyncerI
}

func NewSavingsService(challengesRepo repository.ChallengesRepositoryI, savingsRepo repository.SavingsRepositoryI,
	statsRepo repository.StatsRepositoryI, profileSyncer ProfileSyncerI) *SavingsService {
	if challengesRepo == nil || savingsRepo == nil || statsRepo == nil {
		log.Fatal("provided nil repos to savings service")
	}
	return &SavingsService{
		challengesRepo: challengesRepo,
		savingsRepo:    savingsRepo,
		statsRepo:      statsRepo,
		profileSyncer:  profileSyncer,
	}
}

// ToggleSaving is the sole mutation entry point of the done flag.
// Marking done appends exactly one MoneySaved entry; undoing retracts
// it. The ChallengeCompleted entry follows the remaining amount across
// its zero-crossing in both directions.
func (serv *SavingsService) ToggleSaving(ctx context.Context, challengeID, savingID, userID uuid.UUID) (*entity.Saving, error) {
	ch, err := serv.challengesRepo.GetByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	if ch.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	var saving *entity.Saving
	for i := range ch.Savings {
		if ch.Savings[i].ID == savingID {
			saving = &ch.Savings[i]
			break
		}
	}
	if saving == nil {
		return nil, errorvalues.ErrSavingNotFound
	}

	wasComplete := ch.RemainingAmount() == 0
	if !saving.Done {
		if err = serv.savingsRepo.SetDone(ctx, savingID, true); err != nil {
			return nil, errors.New("savings repository error: " + err.Error())
		}
		saving.Done = true
		err = serv.statsRepo.Append(ctx, &entity.StatsEntry{
			UserID: userID,
			Kind:   entity.StatsMoneySaved,
			Date:   stats.Day(time.Now()),
			Saving: &entity.SavingStats{
				SavingID:     saving.ID,
				ChallengeID:  ch.ID,
				Amount:       saving.Amount,
				ExpectedDate: saving.DueDate,
			},
		})
		if err != nil {
			return nil, errors.New("stats repository error: " + err.Error())
		}
		if !wasComplete && ch.RemainingAmount() == 0 {
			err = serv.statsRepo.Append(ctx, &entity.StatsEntry{
				UserID:    userID,
				Kind:      entity.StatsChallengeCompleted,
				Date:      stats.Day(time.Now()),
				Challenge: &entity.ChallengeStats{ChallengeID: ch.ID},
			})
			if err != nil {
				return nil, errors.New("stats repository error: " + err.Error())
			}
		}
	} else {
		if err = serv.savingsRepo.SetDone(ctx, savingID, false); err != nil {
			return nil, errors.New("savings repository error: " + err.Error())
		}
		saving.Done = false
		if err = serv.statsRepo.DeleteBySavingID(ctx, savingID); err != nil {
			return nil, errors.New("stats repository error: " + err.Error())
		}
		if wasComplete && ch.RemainingAmount() > 0 {
			if err = serv.statsRepo.DeleteByChallengeAndKind(ctx, ch.ID, entity.StatsChallengeCompleted); err != nil {
				return nil, errors.New("stats repository error: " + err.Error())
			}
		}
	}
	serv.pushTotalSaved(ctx, userID)
	return saving, nil
}

// pushTotalSaved mirrors the new total to the remote profile.
// Fire-and-forget: the toggle already succeeded, sync failures only get logged.
func (serv *SavingsService) pushTotalSaved(ctx context.Context, userID uuid.UUID) {
	if serv.profileSyncer == nil {
		return
	}
	entries, err := serv.statsRepo.GetByUserID(ctx, userID)
	if err != nil {
		slog.Warn("reading stats for profile sync failed", slog.String("error", err.Error()))
		return
	}
	if err = serv.profileSyncer.PushTotalSaved(ctx, userID, stats.TotalMoneySaved(entries)); err != nil {
		slog.Warn("pushing total saved failed", slog.String("error", err.Error()))
	}
}
