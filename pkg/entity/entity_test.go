package entity_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/stash/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testChallenge() *entity.Challenge {
	challengeID := uuid.New()
	return &entity.Challenge{
		ID:           challengeID,
		TargetAmount: 100,
		Savings: []entity.Saving{
			{ID: uuid.New(), ChallengeID: challengeID, Amount: 40, DueDate: date(2025, time.January, 1), Done: true},
			{ID: uuid.New(), ChallengeID: challengeID, Amount: 20, DueDate: date(2025, time.February, 1)},
			{ID: uuid.New(), ChallengeID: challengeID, Amount: 30, DueDate: date(2025, time.March, 1)},
			{ID: uuid.New(), ChallengeID: challengeID, Amount: 10, DueDate: date(2025, time.February, 1)},
		},
	}
}

func TestChallengeDerivedQueries(t *testing.T) {
	t.Parallel()
	ch := testChallenge()
	assert.EqualValues(t, 40, ch.CurrentSavedAmount())
	assert.InDelta(t, 0.4, ch.ProgressPercentage(), 1e-9)
	assert.EqualValues(t, 60, ch.RemainingAmount())
	assert.Equal(t, 3, ch.RemainingCount())
}

func TestRemainingAmountNeverNegative(t *testing.T) {
	t.Parallel()
	ch := &entity.Challenge{
		TargetAmount: 50,
		Savings: []entity.Saving{
			{Amount: 70, Done: true},
		},
	}
	assert.EqualValues(t, 0, ch.RemainingAmount())
}

func TestNextDueAt(t *testing.T) {
	t.Parallel()
	ch := testChallenge()

	// Same due date: the smaller amount wins the tie.
	first := ch.NextDueAt(1)
	require.NotNil(t, first)
	assert.EqualValues(t, 10, first.Amount)

	second := ch.NextDueAt(2)
	require.NotNil(t, second)
	assert.EqualValues(t, 20, second.Amount)

	third := ch.NextDueAt(3)
	require.NotNil(t, third)
	assert.Equal(t, date(2025, time.March, 1), third.DueDate)

	// Beyond the remaining count falls back to the latest undone one.
	beyond := ch.NextDueAt(9)
	require.NotNil(t, beyond)
	assert.Equal(t, date(2025, time.March, 1), beyond.DueDate)
}

func TestNextDueAtNothingRemaining(t *testing.T) {
	t.Parallel()
	ch := &entity.Challenge{
		TargetAmount: 10,
		Savings:      []entity.Saving{{Amount: 10, Done: true}},
	}
	assert.Nil(t, ch.NextDueAt(1))
}

func TestSortChallengesByUrgency(t *testing.T) {
	t.Parallel()
	late := &entity.Challenge{Savings: []entity.Saving{{Amount: 1, DueDate: date(2025, time.June, 1)}}}
	soon := &entity.Challenge{Savings: []entity.Saving{{Amount: 1, DueDate: date(2025, time.February, 1)}}}
	finished := &entity.Challenge{Savings: []entity.Saving{{Amount: 1, DueDate: date(2025, time.January, 1), Done: true}}}

	challenges := []*entity.Challenge{late, finished, soon}
	entity.SortChallengesByUrgency(challenges)

	assert.Equal(t, []*entity.Challenge{soon, late, finished}, challenges)
}
