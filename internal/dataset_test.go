package internal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResult() AggregationResult {
	return AggregationResult{
		TodayTotal:            3.5,
		DayHistory:            make([]float64, 24),
		WeekHistory:           []float64{0, 0, 0, 4, 1, 2, 3.5},
		MonthHistory:          make([]float64, 31),
		YearHistory:           make([]float64, 12),
		WeekAverage:           1.5,
		MonthAverage:          0.75,
		LatestSampleTimeLabel: "9:45 AM",
	}
}

func TestNewDataset(t *testing.T) {
	result := testResult()
	ds, err := NewDataset(result, WindowWeek, UnitKilometers)
	require.NoError(t, err)

	assert.Equal(t, result.WeekHistory, ds.Points)
	assert.Equal(t, WindowWeek, ds.Window)
	assert.Equal(t, "Distance", ds.Title)
	assert.Equal(t, "Daily Average: 1.5", ds.Subtitle)
	assert.Equal(t, "3.5 km", ds.LeadingLabel)
	assert.Equal(t, "Today, 9:45 AM", ds.LeadingLabelTime)

	// The dataset owns its points.
	ds.Points[0] = 99
	assert.Zero(t, result.WeekHistory[0])
}

func TestNewDatasetDayHasNoSubtitle(t *testing.T) {
	ds, err := NewDataset(testResult(), WindowDay, UnitMiles)
	require.NoError(t, err)
	assert.Len(t, ds.Points, 24)
	assert.Empty(t, ds.Subtitle)
}

func TestNewDatasetWithoutEntryToday(t *testing.T) {
	result := testResult()
	result.TodayTotal = 0
	result.LatestSampleTimeLabel = NoEntryTimeLabel

	ds, err := NewDataset(result, WindowMonth, UnitMiles)
	require.NoError(t, err)
	assert.Equal(t, "0 mi", ds.LeadingLabel)
	assert.Equal(t, "Today", ds.LeadingLabelTime)
	assert.Equal(t, "Daily Average: 0.75", ds.Subtitle)
}

func TestNewDatasetErrors(t *testing.T) {
	var cfgErr *ConfigurationError

	_, err := NewDataset(testResult(), WindowWeek, UnitUnknown)
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "unit", cfgErr.Field)

	_, err = NewDataset(testResult(), WindowAllTime, UnitMiles)
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "window", cfgErr.Field)
}
