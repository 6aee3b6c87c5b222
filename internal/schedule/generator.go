package schedule

import (
	"time"

	"github.com/google/uuid"
	"github.com/limbo/stash/pkg/entity"
)

// PlanConfig is the pre-validated input of Generate. End is read only
// in ModeByDate, CycleAmount only in ModeByAmount. Presaved is the sum
// of already-completed installments when regenerating; zero for a new
// challenge.
type PlanConfig struct {
	ChallengeID  uuid.UUID
	TargetAmount int64
	Presaved     int64
	Start        time.Time
	End          time.Time
	Strategy     entity.Strategy
	Mode         entity.PlanMode
	CycleAmount  int64
}

// Generate produces the ordered installment schedule for cfg and the
// date of its last installment (the derived end date in ModeByAmount).
// The amounts always sum to TargetAmount - Presaved; for a positive
// remainder the schedule is never empty. Callers validate the config,
// Generate assumes it is sound.
func Generate(cfg PlanConfig) ([]entity.Saving, time.Time) {
	remaining := cfg.TargetAmount - cfg.Presaved
	if remaining <= 0 {
		return nil, day(cfg.Start)
	}

	var n int
	var per int64
	switch cfg.Mode {
	case entity.ModeByAmount:
		n = int(ceilDiv(remaining, cfg.CycleAmount))
		per = cfg.CycleAmount
	default: // ModeByDate
		n = CycleCount(cfg.Start, cfg.End, cfg.Strategy)
		if n <= 0 {
			// Degenerate horizon: the whole remainder in one installment.
			single := []entity.Saving{newSaving(cfg.ChallengeID, remaining, day(cfg.Start))}
			return single, single[0].DueDate
		}
		per = ceilDiv(remaining, int64(n))
	}

	savings := make([]entity.Saving, 0, n)
	date := day(cfg.Start)
	if cfg.Mode == entity.ModeByAmount {
		// The start date is when the plan begins, not the first due
		// date: by-amount installments fall at successive increments
		// after it, so the derived end lands at start plus n cycles.
		date = Advance(date, cfg.Strategy)
	}
	for i := 0; i < n; i++ {
		savings = append(savings, newSaving(cfg.ChallengeID, per, date))
		date = Advance(date, cfg.Strategy)
	}
	savings = fixOverflow(savings, remaining)
	return savings, savings[len(savings)-1].DueDate
}

// fixOverflow corrects the final installment so the schedule sums
// exactly to want. A correction that would go non-positive drops the
// final installment and pushes the deficit onto the new last one,
// repeating until the correction is positive. The schedule never ends
// up empty: the single remaining installment absorbs the whole
// remainder.
func fixOverflow(savings []entity.Saving, want int64) []entity.Saving {
	for len(savings) > 1 {
		var head int64
		for _, s := range savings[:len(savings)-1] {
			head += s.Amount
		}
		last := want - head
		if last > 0 {
			savings[len(savings)-1].Amount = last
			return savings
		}
		savings = savings[:len(savings)-1]
	}
	savings[0].Amount = want
	return savings
}

func newSaving(challengeID uuid.UUID, amount int64, due time.Time) entity.Saving {
	return entity.Saving{
		ID:          uuid.New(),
		ChallengeID: challengeID,
		Amount:      amount,
		DueDate:     due,
	}
}

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}
