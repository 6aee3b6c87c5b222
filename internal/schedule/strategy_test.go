package schedule_test

import (
	"testing"
	"time"

	"github.com/limbo/stash/internal/schedule"
	"github.com/limbo/stash/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAdvance(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc     string
		Strategy entity.Strategy
		Date     time.Time
		Expected time.Time
	}{
		{
			Desc:     "daily",
			Strategy: entity.StrategyDaily,
			Date:     date(2025, time.March, 10),
			Expected: date(2025, time.March, 11),
		},
		{
			Desc:     "weekly",
			Strategy: entity.StrategyWeekly,
			Date:     date(2025, time.March, 10),
			Expected: date(2025, time.March, 17),
		},
		{
			Desc:     "monthly",
			Strategy: entity.StrategyMonthly,
			Date:     date(2025, time.March, 10),
			Expected: date(2025, time.April, 10),
		},
		{
			Desc:     "monthly normalizes month-end overflow",
			Strategy: entity.StrategyMonthly,
			Date:     date(2025, time.January, 31),
			Expected: date(2025, time.March, 3),
		},
		{
			Desc:     "quarterly",
			Strategy: entity.StrategyQuarterly,
			Date:     date(2025, time.November, 15),
			Expected: date(2026, time.February, 15),
		},
		{
			Desc:     "biannual",
			Strategy: entity.StrategyBiannual,
			Date:     date(2025, time.March, 10),
			Expected: date(2025, time.September, 10),
		},
		{
			Desc:     "annual",
			Strategy: entity.StrategyAnnual,
			Date:     date(2025, time.March, 10),
			Expected: date(2026, time.March, 10),
		},
		{
			Desc:     "unknown strategy keeps date",
			Strategy: entity.Strategy("fortnightly"),
			Date:     date(2025, time.March, 10),
			Expected: date(2025, time.March, 10),
		},
		{
			Desc:     "out of calendar range keeps date",
			Strategy: entity.StrategyAnnual,
			Date:     date(9999, time.June, 1),
			Expected: date(9999, time.June, 1),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, schedule.Advance(tc.Date, tc.Strategy))
		})
	}
}

func TestCycleCount(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc     string
		Strategy entity.Strategy
		Start    time.Time
		End      time.Time
		Expected int
	}{
		{
			Desc:     "monthly across year boundary",
			Strategy: entity.StrategyMonthly,
			Start:    date(2024, time.November, 5),
			End:      date(2025, time.February, 5),
			Expected: 3,
		},
		{
			Desc:     "monthly ignores day drift",
			Strategy: entity.StrategyMonthly,
			Start:    date(2025, time.January, 31),
			End:      date(2025, time.April, 1),
			Expected: 3,
		},
		{
			Desc:     "quarterly rounds down to whole quarters",
			Strategy: entity.StrategyQuarterly,
			Start:    date(2025, time.January, 1),
			End:      date(2025, time.August, 1),
			Expected: 2,
		},
		{
			Desc:     "biannual",
			Strategy: entity.StrategyBiannual,
			Start:    date(2025, time.January, 1),
			End:      date(2026, time.January, 1),
			Expected: 2,
		},
		{
			Desc:     "annual",
			Strategy: entity.StrategyAnnual,
			Start:    date(2025, time.June, 1),
			End:      date(2028, time.June, 1),
			Expected: 3,
		},
		{
			Desc:     "weekly by iso week",
			Strategy: entity.StrategyWeekly,
			Start:    date(2025, time.June, 2),
			End:      date(2025, time.June, 23),
			Expected: 3,
		},
		{
			Desc:     "daily counts whole days",
			Strategy: entity.StrategyDaily,
			Start:    date(2025, time.June, 1),
			End:      date(2025, time.June, 11),
			Expected: 10,
		},
		{
			Desc:     "end before start goes negative",
			Strategy: entity.StrategyMonthly,
			Start:    date(2025, time.June, 1),
			End:      date(2025, time.March, 1),
			Expected: -3,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, schedule.CycleCount(tc.Start, tc.End, tc.Strategy))
		})
	}
}
