package schedule_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/stash/internal/schedule"
	"github.com/limbo/stash/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcilePreservesHistory(t *testing.T) {
	t.Parallel()
	challengeID := uuid.New()
	start := date(2025, time.January, 1)
	existing, _ := schedule.Generate(schedule.PlanConfig{
		ChallengeID:  challengeID,
		TargetAmount: 300,
		Start:        start,
		Strategy:     entity.StrategyMonthly,
		Mode:         entity.ModeByAmount,
		CycleAmount:  25,
	})
	existing[0].Done = true
	existing[1].Done = true
	doneIDs := []uuid.UUID{existing[0].ID, existing[1].ID}

	reconciled, _ := schedule.Reconcile(existing, schedule.PlanConfig{
		ChallengeID:  challengeID,
		TargetAmount: 500,
		Start:        start,
		Strategy:     entity.StrategyMonthly,
		Mode:         entity.ModeByAmount,
		CycleAmount:  25,
	})

	require.True(t, len(reconciled) > 2)
	assert.Equal(t, doneIDs[0], reconciled[0].ID)
	assert.Equal(t, doneIDs[1], reconciled[1].ID)
	assert.EqualValues(t, 25, reconciled[0].Amount)
	assert.EqualValues(t, 25, reconciled[1].Amount)

	var tailSum int64
	for _, s := range reconciled[2:] {
		assert.False(t, s.Done)
		tailSum += s.Amount
	}
	assert.EqualValues(t, 450, tailSum)
	// Tail resumes one cycle after the last done installment.
	assert.Equal(t, existing[1].DueDate.AddDate(0, 1, 0), reconciled[2].DueDate)
}

func TestReconcileIdempotent(t *testing.T) {
	t.Parallel()
	challengeID := uuid.New()
	start := date(2025, time.March, 1)
	cfg := schedule.PlanConfig{
		ChallengeID:  challengeID,
		TargetAmount: 600,
		Start:        start,
		End:          start.AddDate(1, 0, 0),
		Strategy:     entity.StrategyMonthly,
		Mode:         entity.ModeByDate,
	}
	existing, _ := schedule.Generate(cfg)
	existing[0].Done = true

	first, firstEnd := schedule.Reconcile(existing, cfg)
	second, secondEnd := schedule.Reconcile(first, cfg)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Amount, second[i].Amount)
		assert.Equal(t, first[i].DueDate, second[i].DueDate)
		assert.Equal(t, first[i].Done, second[i].Done)
	}
	assert.Equal(t, firstEnd, secondEnd)
}

func TestReconcileNothingDone(t *testing.T) {
	t.Parallel()
	challengeID := uuid.New()
	start := date(2025, time.January, 10)
	existing, _ := schedule.Generate(schedule.PlanConfig{
		ChallengeID:  challengeID,
		TargetAmount: 120,
		Start:        start,
		Strategy:     entity.StrategyWeekly,
		Mode:         entity.ModeByAmount,
		CycleAmount:  10,
	})

	reconciled, _ := schedule.Reconcile(existing, schedule.PlanConfig{
		ChallengeID:  challengeID,
		TargetAmount: 200,
		Start:        start,
		Strategy:     entity.StrategyWeekly,
		Mode:         entity.ModeByAmount,
		CycleAmount:  10,
	})

	require.NotEmpty(t, reconciled)
	// With no history the tail anchors on the configured start date.
	assert.Equal(t, start.AddDate(0, 0, 7), reconciled[0].DueDate)
	var total int64
	for _, s := range reconciled {
		total += s.Amount
	}
	assert.EqualValues(t, 200, total)
}

func TestReconcileTargetAlreadyReached(t *testing.T) {
	t.Parallel()
	challengeID := uuid.New()
	lastDone := date(2025, time.April, 1)
	existing := []entity.Saving{
		{ID: uuid.New(), ChallengeID: challengeID, Amount: 60, DueDate: date(2025, time.March, 1), Done: true},
		{ID: uuid.New(), ChallengeID: challengeID, Amount: 60, DueDate: lastDone, Done: true},
		{ID: uuid.New(), ChallengeID: challengeID, Amount: 60, DueDate: date(2025, time.May, 1)},
	}

	reconciled, end := schedule.Reconcile(existing, schedule.PlanConfig{
		ChallengeID:  challengeID,
		TargetAmount: 120,
		Start:        date(2025, time.March, 1),
		Strategy:     entity.StrategyMonthly,
		Mode:         entity.ModeByAmount,
		CycleAmount:  60,
	})

	require.Len(t, reconciled, 2)
	assert.True(t, reconciled[0].Done)
	assert.True(t, reconciled[1].Done)
	assert.Equal(t, lastDone, end)
}
