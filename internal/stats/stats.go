// Package stats computes derived figures over the per-user event log.
// All functions are pure and pull-based; nothing is cached.
package stats

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/stash/pkg/entity"
)

// Day truncates t to its calendar day in UTC. Log entries and range
// bounds compare at day granularity.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// InRange filters entries to those dated within [from, to] inclusive.
// A zero bound is open on that side.
func InRange(entries []entity.StatsEntry, from, to time.Time) []entity.StatsEntry {
	result := make([]entity.StatsEntry, 0, len(entries))
	for _, e := range entries {
		d := Day(e.Date)
		if !from.IsZero() && d.Before(Day(from)) {
			continue
		}
		if !to.IsZero() && d.After(Day(to)) {
			continue
		}
		result = append(result, e)
	}
	return result
}

// TotalMoneySaved sums the amounts of MoneySaved entries.
func TotalMoneySaved(entries []entity.StatsEntry) int64 {
	var sum int64
	for _, e := range entries {
		if e.Kind == entity.StatsMoneySaved && e.Saving != nil {
			sum += e.Saving.Amount
		}
	}
	return sum
}

// CountKind counts entries of the given kind.
func CountKind(entries []entity.StatsEntry, kind entity.StatsKind) int {
	count := 0
	for _, e := range entries {
		if e.Kind == kind {
			count++
		}
	}
	return count
}

// Punctuality is punctualCount/moneySavedCount over the entries.
// ok is false when no MoneySaved entries exist; the ratio is then
// meaningless and must not be read.
func Punctuality(entries []entity.StatsEntry) (ratio float64, ok bool) {
	total, punctual := 0, 0
	for _, e := range entries {
		if e.Kind != entity.StatsMoneySaved || e.Saving == nil {
			continue
		}
		total++
		if isPunctual(e) {
			punctual++
		}
	}
	if total == 0 {
		return 0, false
	}
	return float64(punctual) / float64(total), true
}

// CurrentStreak walks the challenge's MoneySaved entries most-recent-
// first and counts consecutive punctual ones; the first late entry
// breaks the chain.
func CurrentStreak(entries []entity.StatsEntry, challengeID uuid.UUID) int {
	saved := make([]entity.StatsEntry, 0, len(entries))
	for _, e := range entries {
		if e.Kind == entity.StatsMoneySaved && e.Saving != nil && e.Saving.ChallengeID == challengeID {
			saved = append(saved, e)
		}
	}
	sort.Slice(saved, func(i, j int) bool {
		if saved[i].Date.Equal(saved[j].Date) {
			return saved[i].Saving.ExpectedDate.After(saved[j].Saving.ExpectedDate)
		}
		return saved[i].Date.After(saved[j].Date)
	})
	streak := 0
	for _, e := range saved {
		if !isPunctual(e) {
			break
		}
		streak++
	}
	return streak
}

func isPunctual(e entity.StatsEntry) bool {
	return !Day(e.Date).After(Day(e.Saving.ExpectedDate))
}
