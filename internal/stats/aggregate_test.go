package stats_test

import (
	"encoding/json"
	"errors"
	"strconv"
	"testing"

	"github.com/youpv/personal-trainer/internal/stats"
	"github.com/youpv/personal-trainer/internal/trainings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func training(activity string, minutes int) trainings.Training {
	return trainings.Training{
		Activity: activity,
		Duration: json.Number(strconv.Itoa(minutes)),
	}
}

func TestAggregate_GroupsAndSums(t *testing.T) {
	list := []trainings.Training{
		training("Yoga", 60),
		training("Yoga", 30),
		training("Running", 45),
	}

	aggregated, err := stats.Aggregate(list)
	require.NoError(t, err)

	assert.Equal(t, []stats.ActivityStat{
		{Activity: "Yoga", Duration: 90},
		{Activity: "Running", Duration: 45},
	}, aggregated)
}

func TestAggregate_ConservationOfMinutes(t *testing.T) {
	list := []trainings.Training{
		training("Yoga", 60),
		training("Spinning", 45),
		training("Yoga", 30),
		training("Zumba", 90),
		training("Spinning", 45),
		training("Zumba", 15),
	}

	var inputTotal float64
	for _, tr := range list {
		minutes, err := tr.Minutes()
		require.NoError(t, err)
		inputTotal += minutes
	}

	aggregated, err := stats.Aggregate(list)
	require.NoError(t, err)

	var groupedTotal float64
	for _, stat := range aggregated {
		groupedTotal += stat.Duration
	}
	assert.Equal(t, inputTotal, groupedTotal)
}

func TestAggregate_SortedDescendingStableTies(t *testing.T) {
	list := []trainings.Training{
		training("Zumba", 45),
		training("Yoga", 45),
		training("Spinning", 120),
	}

	aggregated, err := stats.Aggregate(list)
	require.NoError(t, err)
	require.Len(t, aggregated, 3)

	assert.Equal(t, "Spinning", aggregated[0].Activity)
	// equal sums keep first-encountered order
	assert.Equal(t, "Zumba", aggregated[1].Activity)
	assert.Equal(t, "Yoga", aggregated[2].Activity)

	for i := 1; i < len(aggregated); i++ {
		assert.GreaterOrEqual(t, aggregated[i-1].Duration, aggregated[i].Duration)
	}
}

func TestAggregate_NoNormalizationOfActivityNames(t *testing.T) {
	list := []trainings.Training{
		training("Yoga", 60),
		training("yoga", 30),
		training("Yoga ", 15),
	}

	aggregated, err := stats.Aggregate(list)
	require.NoError(t, err)
	// case and whitespace differences produce distinct groups
	assert.Len(t, aggregated, 3)
}

func TestAggregate_NonNumericDurationFails(t *testing.T) {
	list := []trainings.Training{
		training("Yoga", 60),
		{ID: 2, Activity: "Zumba", Duration: json.Number("a lot")},
	}

	_, err := stats.Aggregate(list)
	require.Error(t, err)

	var mismatchErr *trainings.TypeMismatchError
	require.True(t, errors.As(err, &mismatchErr))
	assert.Equal(t, "Zumba", mismatchErr.Activity)
}

func TestAggregate_Empty(t *testing.T) {
	aggregated, err := stats.Aggregate(nil)
	require.NoError(t, err)
	assert.Empty(t, aggregated)
}
