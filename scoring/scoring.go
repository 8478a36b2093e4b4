// Package scoring holds the pure arithmetic behind elevator ratings:
// timing-to-score conversion and the overall average. No I/O, no state.
package scoring

import (
	"errors"
	"fmt"
	"math"

	"elevate/models"
)

// ErrZeroFloors is returned when a measurement traverses no floors.
var ErrZeroFloors = errors.New("floorsTraversed cannot be zero")

// RangeError marks a category rating outside the allowed [1,10] range.
type RangeError struct {
	Field string
	Value float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be between 1 and 10", e.Field)
}

// SecondsPerFloor derives the normalized travel time from a stopwatch
// measurement.
func SecondsPerFloor(totalSeconds float64, floorsTraversed int) (float64, error) {
	if floorsTraversed == 0 {
		return 0, ErrZeroFloors
	}
	return totalSeconds / float64(floorsTraversed), nil
}

// SpeedScore converts seconds-per-floor into a rating point value.
// 1 s/floor scores 10, 2 s/floor scores 5, and so on down the curve.
// The result is clamped into [1,10]: faster than 1 s/floor never exceeds
// 10 and arbitrarily slow travel bottoms out at 1.
func SpeedScore(secondsPerFloor float64) float64 {
	score := 10 / secondsPerFloor
	return math.Max(1, math.Min(10, score))
}

// OverallScore averages every category rating and rounds to 2 decimals.
func OverallScore(r models.ElevatorRating) float64 {
	sum := r.Speed + r.Smoothness + r.Precision +
		r.Noise + r.Lighting + r.Ventilation + r.Spaciousness +
		r.Cleanliness + r.Maintenance +
		r.Design + r.Technology +
		r.Safety + r.Accessibility

	average := sum / 13

	return math.Round(average*100) / 100
}

// ValidateRating rejects a category score outside [1,10].
func ValidateRating(value float64, fieldName string) error {
	if value < 1 || value > 10 {
		return &RangeError{Field: fieldName, Value: value}
	}
	return nil
}

// ValidateElevatorRating checks every category score of a record.
func ValidateElevatorRating(r models.ElevatorRating) error {
	checks := []struct {
		value float64
		name  string
	}{
		{r.Speed, "speed"},
		{r.Smoothness, "smoothness"},
		{r.Precision, "precision"},
		{r.Noise, "noise"},
		{r.Lighting, "lighting"},
		{r.Ventilation, "ventilation"},
		{r.Spaciousness, "spaciousness"},
		{r.Cleanliness, "cleanliness"},
		{r.Maintenance, "maintenance"},
		{r.Design, "design"},
		{r.Technology, "technology"},
		{r.Safety, "safety"},
		{r.Accessibility, "accessibility"},
	}
	for _, c := range checks {
		if err := ValidateRating(c.value, c.name); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSpeedMeasurement checks a complete timing observation.
func ValidateSpeedMeasurement(m models.SpeedMeasurement) error {
	if m.TotalSeconds <= 0 {
		return errors.New("totalSeconds must be greater than 0")
	}
	if m.FloorsTraversed <= 0 {
		return errors.New("floorsTraversed must be greater than 0")
	}
	if m.SecondsPerFloor <= 0 {
		return errors.New("secondsPerFloor must be greater than 0")
	}
	return nil
}
