package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elevate/models"
)

func TestSecondsPerFloor(t *testing.T) {
	spf, err := SecondsPerFloor(30, 10)
	require.NoError(t, err)
	assert.Equal(t, 3.0, spf)

	// product of the result and the floor count recovers the total
	spf, err = SecondsPerFloor(17, 7)
	require.NoError(t, err)
	assert.InDelta(t, 17.0, spf*7, 1e-9)
}

func TestSecondsPerFloorZeroFloors(t *testing.T) {
	_, err := SecondsPerFloor(30, 0)
	assert.ErrorIs(t, err, ErrZeroFloors)
}

func TestSpeedScore(t *testing.T) {
	assert.Equal(t, 10.0, SpeedScore(1.0))
	assert.Equal(t, 5.0, SpeedScore(2.0))
	assert.Equal(t, 1.0, SpeedScore(10.0))

	// clamped, never 20
	assert.Equal(t, 10.0, SpeedScore(0.5))
	// clamped, never 0.1
	assert.Equal(t, 1.0, SpeedScore(100))
}

func uniformRating(v float64) models.ElevatorRating {
	return models.ElevatorRating{
		Speed: v, Smoothness: v, Precision: v,
		Noise: v, Lighting: v, Ventilation: v, Spaciousness: v,
		Cleanliness: v, Maintenance: v,
		Design: v, Technology: v,
		Safety: v, Accessibility: v,
	}
}

func TestOverallScore(t *testing.T) {
	assert.Equal(t, 7.0, OverallScore(uniformRating(7)))
	assert.Equal(t, 10.0, OverallScore(uniformRating(10)))

	// twelve eights and one nine: 105/13 = 8.0769... -> 8.08
	r := uniformRating(8)
	r.Speed = 9
	assert.Equal(t, 8.08, OverallScore(r))

	// twelve sevens and one eight: 92/13 = 7.0769... -> 7.08
	r = uniformRating(7)
	r.Speed = 8
	assert.Equal(t, 7.08, OverallScore(r))
}

func TestValidateRating(t *testing.T) {
	assert.NoError(t, ValidateRating(1, "smoothness"))
	assert.NoError(t, ValidateRating(10, "smoothness"))

	err := ValidateRating(0, "smoothness")
	require.Error(t, err)
	assert.EqualError(t, err, "smoothness must be between 1 and 10")

	assert.Error(t, ValidateRating(11, "noise"))
	assert.Error(t, ValidateRating(-3, "noise"))
}

func TestValidateElevatorRating(t *testing.T) {
	assert.NoError(t, ValidateElevatorRating(uniformRating(5)))

	r := uniformRating(5)
	r.Cleanliness = 11
	err := ValidateElevatorRating(r)
	require.Error(t, err)

	var re *RangeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "cleanliness", re.Field)
}

func TestValidateSpeedMeasurement(t *testing.T) {
	ok := models.SpeedMeasurement{TotalSeconds: 30, FloorsTraversed: 10, SecondsPerFloor: 3}
	assert.NoError(t, ValidateSpeedMeasurement(ok))

	bad := ok
	bad.TotalSeconds = 0
	assert.Error(t, ValidateSpeedMeasurement(bad))

	bad = ok
	bad.FloorsTraversed = -1
	assert.Error(t, ValidateSpeedMeasurement(bad))

	bad = ok
	bad.SecondsPerFloor = 0
	assert.Error(t, ValidateSpeedMeasurement(bad))
}
