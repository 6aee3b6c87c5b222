package schedule

import (
	"time"

	"github.com/limbo/stash/pkg/entity"
)

// Reconcile regenerates the undone tail of an existing schedule after
// the challenge configuration changed. Done installments are kept
// untouched, undone ones are discarded and replaced by a fresh tail
// generated from the edited config. The tail resumes one cycle after
// the most recent done installment (or after the configured start when
// nothing is done yet), so it never gaps or overlaps history.
//
// The returned slice holds the frozen done installments followed by
// the new tail; the returned date is the schedule's new end date.
// Invariant: presaved + sum(tail amounts) == cfg.TargetAmount.
func Reconcile(existing []entity.Saving, cfg PlanConfig) ([]entity.Saving, time.Time) {
	done := make([]entity.Saving, 0, len(existing))
	var presaved int64
	anchor := cfg.Start
	for _, s := range existing {
		if !s.Done {
			continue
		}
		done = append(done, s)
		presaved += s.Amount
		if s.DueDate.After(anchor) {
			anchor = s.DueDate
		}
	}

	tailCfg := cfg
	tailCfg.Presaved = presaved
	// Generate dates by-amount installments one cycle after Start on
	// its own; by-date mode emits at Start itself, so the anchor is
	// advanced here instead. Either way the tail resumes exactly one
	// cycle after the anchor.
	tailCfg.Start = day(anchor)
	if cfg.Mode != entity.ModeByAmount {
		tailCfg.Start = Advance(tailCfg.Start, cfg.Strategy)
	}
	tail, end := Generate(tailCfg)

	if len(tail) == 0 {
		// Nothing left to save; the last done installment closes the plan.
		end = day(anchor)
	}
	return append(done, tail...), end
}
