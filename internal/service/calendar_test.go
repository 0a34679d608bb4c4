package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinetra/fitpulse-v2/backend/internal/types"
)

func TestResolveDayStartDateIsDayOne(t *testing.T) {
	plan := testPlan()

	day, err := ResolveDay(plan, plan.StartDate)
	require.NoError(t, err)
	assert.Equal(t, 1, day)
}

func TestResolveDayMidPlan(t *testing.T) {
	plan := testPlan()

	day, err := ResolveDay(plan, types.NewDate(2024, time.January, 3))
	require.NoError(t, err)
	assert.Equal(t, 3, day)

	day, err = ResolveDay(plan, types.NewDate(2024, time.January, 7))
	require.NoError(t, err)
	assert.Equal(t, 7, day)
}

func TestResolveDayOffsetsTrackDateDifference(t *testing.T) {
	plan := testPlan()

	for i := 0; i < plan.DurationDays; i++ {
		for j := i; j < plan.DurationDays; j++ {
			d1 := plan.StartDate.AddDays(i)
			d2 := plan.StartDate.AddDays(j)

			day1, err := ResolveDay(plan, d1)
			require.NoError(t, err)
			day2, err := ResolveDay(plan, d2)
			require.NoError(t, err)

			assert.Equal(t, d2.DaysSince(d1), day2-day1)
		}
	}
}

func TestResolveDayOutOfRange(t *testing.T) {
	plan := testPlan()

	_, err := ResolveDay(plan, types.NewDate(2024, time.January, 10))
	assert.ErrorIs(t, err, ErrDateOutOfRange)

	_, err = ResolveDay(plan, types.NewDate(2023, time.December, 31))
	assert.ErrorIs(t, err, ErrDateOutOfRange)

	_, err = ResolveDay(plan, types.NewDate(2024, time.January, 8))
	assert.ErrorIs(t, err, ErrDateOutOfRange)
}
