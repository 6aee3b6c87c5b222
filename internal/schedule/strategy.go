package schedule

import (
	"log/slog"
	"time"

	"github.com/limbo/stash/pkg/entity"
)

// maxYear bounds calendar arithmetic. Advancing past it returns the
// input unchanged instead of producing an unrepresentable date.
const maxYear = 9999

// Advance adds one recurrence increment to date. Month and day
// overflow is normalized by the time package (Jan 31 + 1 month rolls
// into March), which is the intended behavior.
func Advance(date time.Time, strategy entity.Strategy) time.Time {
	var next time.Time
	switch strategy {
	case entity.StrategyDaily:
		next = date.AddDate(0, 0, 1)
	case entity.StrategyWeekly:
		next = date.AddDate(0, 0, 7)
	case entity.StrategyMonthly:
		next = date.AddDate(0, 1, 0)
	case entity.StrategyQuarterly:
		next = date.AddDate(0, 3, 0)
	case entity.StrategyBiannual:
		next = date.AddDate(0, 6, 0)
	case entity.StrategyAnnual:
		next = date.AddDate(1, 0, 0)
	default:
		return date
	}
	if next.Year() > maxYear {
		slog.Warn("calendar advance out of range, keeping date",
			slog.Time("date", date), slog.String("strategy", string(strategy)))
		return date
	}
	return next
}

// CycleCount counts whole recurrence increments between start and end
// using calendar component subtraction, not elapsed-time division, so
// counts align with calendar months/weeks regardless of day-of-month
// drift.
func CycleCount(start, end time.Time, strategy entity.Strategy) int {
	switch strategy {
	case entity.StrategyDaily:
		return int(day(end).Sub(day(start)).Hours() / 24)
	case entity.StrategyWeekly:
		sy, sw := start.ISOWeek()
		ey, ew := end.ISOWeek()
		return (ey*52 + ew) - (sy*52 + sw)
	case entity.StrategyMonthly:
		return monthsBetween(start, end)
	case entity.StrategyQuarterly:
		return monthsBetween(start, end) / 3
	case entity.StrategyBiannual:
		return monthsBetween(start, end) / 6
	case entity.StrategyAnnual:
		return end.Year() - start.Year()
	}
	return 0
}

func monthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
