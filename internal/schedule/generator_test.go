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

func amounts(savings []entity.Saving) []int64 {
	result := make([]int64, 0, len(savings))
	for _, s := range savings {
		result = append(result, s.Amount)
	}
	return result
}

func sum(savings []entity.Saving) int64 {
	var total int64
	for _, s := range savings {
		total += s.Amount
	}
	return total
}

func TestGenerateByAmount(t *testing.T) {
	t.Parallel()
	challengeID := uuid.New()
	start := date(2025, time.January, 1)

	savings, end := schedule.Generate(schedule.PlanConfig{
		ChallengeID:  challengeID,
		TargetAmount: 300,
		Start:        start,
		Strategy:     entity.StrategyMonthly,
		Mode:         entity.ModeByAmount,
		CycleAmount:  25,
	})

	require.Len(t, savings, 12)
	for i, s := range savings {
		assert.EqualValues(t, 25, s.Amount)
		assert.Equal(t, challengeID, s.ChallengeID)
		assert.False(t, s.Done)
		// The first installment falls one cycle after the start date.
		assert.Equal(t, start.AddDate(0, i+1, 0), s.DueDate)
	}
	assert.EqualValues(t, 300, sum(savings))
	assert.Equal(t, date(2025, time.February, 1), savings[0].DueDate)
	assert.Equal(t, savings[11].DueDate, end)
	assert.Equal(t, start.AddDate(1, 0, 0), end)
}

func TestGenerateByAmountTruncatedLast(t *testing.T) {
	t.Parallel()
	savings, _ := schedule.Generate(schedule.PlanConfig{
		ChallengeID:  uuid.New(),
		TargetAmount: 100,
		Start:        date(2025, time.January, 1),
		Strategy:     entity.StrategyWeekly,
		Mode:         entity.ModeByAmount,
		CycleAmount:  30,
	})
	assert.Equal(t, []int64{30, 30, 30, 10}, amounts(savings))
}

func TestGenerateByDate(t *testing.T) {
	t.Parallel()
	savings, _ := schedule.Generate(schedule.PlanConfig{
		ChallengeID:  uuid.New(),
		TargetAmount: 100,
		Start:        date(2025, time.January, 1),
		End:          date(2025, time.April, 1),
		Strategy:     entity.StrategyMonthly,
		Mode:         entity.ModeByDate,
	})
	// ceil(100/3) = 34, last corrected down to keep the sum exact.
	assert.Equal(t, []int64{34, 34, 32}, amounts(savings))
}

func TestGenerateDegenerateHorizon(t *testing.T) {
	t.Parallel()
	start := date(2025, time.June, 1)
	savings, end := schedule.Generate(schedule.PlanConfig{
		ChallengeID:  uuid.New(),
		TargetAmount: 140,
		Start:        start,
		End:          date(2025, time.May, 1),
		Strategy:     entity.StrategyMonthly,
		Mode:         entity.ModeByDate,
	})
	require.Len(t, savings, 1)
	assert.EqualValues(t, 140, savings[0].Amount)
	assert.Equal(t, start, savings[0].DueDate)
	assert.Equal(t, start, end)
}

func TestGenerateOverflowCascade(t *testing.T) {
	t.Parallel()
	// ceil(2/5) = 1 makes the nominal plan sum to 5; the fix-up has to
	// drop trailing installments until the correction is positive.
	savings, _ := schedule.Generate(schedule.PlanConfig{
		ChallengeID:  uuid.New(),
		TargetAmount: 2,
		Start:        date(2025, time.January, 1),
		End:          date(2025, time.January, 6),
		Strategy:     entity.StrategyDaily,
		Mode:         entity.ModeByDate,
	})
	assert.Equal(t, []int64{1, 1}, amounts(savings))
}

func TestGeneratePresavedSubtracted(t *testing.T) {
	t.Parallel()
	savings, _ := schedule.Generate(schedule.PlanConfig{
		ChallengeID:  uuid.New(),
		TargetAmount: 300,
		Presaved:     50,
		Start:        date(2025, time.January, 1),
		End:          date(2025, time.June, 1),
		Strategy:     entity.StrategyMonthly,
		Mode:         entity.ModeByDate,
	})
	assert.EqualValues(t, 250, sum(savings))
}

func TestGenerateSumInvariant(t *testing.T) {
	t.Parallel()
	start := date(2025, time.February, 15)
	testCases := []struct {
		Desc string
		Cfg  schedule.PlanConfig
	}{
		{
			Desc: "by date monthly uneven",
			Cfg: schedule.PlanConfig{
				TargetAmount: 1000,
				Start:        start,
				End:          start.AddDate(0, 7, 0),
				Strategy:     entity.StrategyMonthly,
				Mode:         entity.ModeByDate,
			},
		},
		{
			Desc: "by date weekly small target",
			Cfg: schedule.PlanConfig{
				TargetAmount: 3,
				Start:        start,
				End:          start.AddDate(0, 0, 70),
				Strategy:     entity.StrategyWeekly,
				Mode:         entity.ModeByDate,
			},
		},
		{
			Desc: "by amount quarterly",
			Cfg: schedule.PlanConfig{
				TargetAmount: 9999,
				Start:        start,
				Strategy:     entity.StrategyQuarterly,
				Mode:         entity.ModeByAmount,
				CycleAmount:  250,
			},
		},
		{
			Desc: "by amount single cycle covers target",
			Cfg: schedule.PlanConfig{
				TargetAmount: 40,
				Start:        start,
				Strategy:     entity.StrategyDaily,
				Mode:         entity.ModeByAmount,
				CycleAmount:  500,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.Cfg.ChallengeID = uuid.New()
			savings, _ := schedule.Generate(tc.Cfg)
			require.NotEmpty(t, savings)
			assert.Equal(t, tc.Cfg.TargetAmount, sum(savings))
			for _, s := range savings {
				assert.Positive(t, s.Amount)
			}
		})
	}
}

func TestGenerateMonotonicDates(t *testing.T) {
	t.Parallel()
	savings, _ := schedule.Generate(schedule.PlanConfig{
		ChallengeID:  uuid.New(),
		TargetAmount: 777,
		Start:        date(2025, time.January, 31),
		Strategy:     entity.StrategyMonthly,
		Mode:         entity.ModeByAmount,
		CycleAmount:  100,
	})
	require.NotEmpty(t, savings)
	for i := 1; i < len(savings); i++ {
		assert.True(t, savings[i].DueDate.After(savings[i-1].DueDate))
		assert.Equal(t, schedule.Advance(savings[i-1].DueDate, entity.StrategyMonthly), savings[i].DueDate)
	}
}
