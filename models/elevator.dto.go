package models

import "time"

// CreateElevatorInput is the draft a client submits to create a record.
// The speed rating, seconds-per-floor and overall score are computed
// server-side; id and timestamps are assigned by the repository.
type CreateElevatorInput struct {
	Location         LocationInput         `json:"location" validate:"required"`
	SpeedMeasurement SpeedMeasurementInput `json:"speedMeasurement" validate:"required"`
	Rating           RatingInput           `json:"rating" validate:"required"`
	Notes            string                `json:"notes"`
	DateVisited      *time.Time            `json:"dateVisited"` // defaults to now when omitted
}

// LocationInput mirrors Location for creation payloads.
type LocationInput struct {
	Name          string         `json:"name" validate:"required"`
	City          string         `json:"city"`
	Country       string         `json:"country"`
	Type          LocationType   `json:"type" validate:"required,oneof=hotel residential shopping tower office other"`
	Address       string         `json:"address"`
	Coordinates   *Coordinates   `json:"coordinates"`
	TechnicalInfo *TechnicalInfo `json:"technicalInfo"`
}

// SpeedMeasurementInput carries the raw stopwatch observation.
type SpeedMeasurementInput struct {
	TotalSeconds    float64 `json:"totalSeconds" validate:"required,gt=0"`
	FloorsTraversed int     `json:"floorsTraversed" validate:"required,gt=0"`
}

// RatingInput carries the twelve manual category scores.
type RatingInput struct {
	Smoothness    float64 `json:"smoothness" validate:"required,gte=1,lte=10"`
	Precision     float64 `json:"precision" validate:"required,gte=1,lte=10"`
	Noise         float64 `json:"noise" validate:"required,gte=1,lte=10"`
	Lighting      float64 `json:"lighting" validate:"required,gte=1,lte=10"`
	Ventilation   float64 `json:"ventilation" validate:"required,gte=1,lte=10"`
	Spaciousness  float64 `json:"spaciousness" validate:"required,gte=1,lte=10"`
	Cleanliness   float64 `json:"cleanliness" validate:"required,gte=1,lte=10"`
	Maintenance   float64 `json:"maintenance" validate:"required,gte=1,lte=10"`
	Design        float64 `json:"design" validate:"required,gte=1,lte=10"`
	Technology    float64 `json:"technology" validate:"required,gte=1,lte=10"`
	Safety        float64 `json:"safety" validate:"required,gte=1,lte=10"`
	Accessibility float64 `json:"accessibility" validate:"required,gte=1,lte=10"`
}

// UpdateElevatorInput is a merge-style partial update. A nil section leaves
// the stored section untouched; inside a section, only non-nil fields apply.
type UpdateElevatorInput struct {
	Location         *LocationPatch         `json:"location"`
	SpeedMeasurement *SpeedMeasurementPatch `json:"speedMeasurement"`
	Rating           *RatingPatch           `json:"rating"`
	Notes            *string                `json:"notes"`
	DateVisited      *time.Time             `json:"dateVisited"`
}

// LocationPatch updates individual location fields. Coordinates replace
// wholesale; technical info merges field by field.
type LocationPatch struct {
	Name          *string             `json:"name"`
	City          *string             `json:"city"`
	Country       *string             `json:"country"`
	Type          *LocationType       `json:"type" validate:"omitempty,oneof=hotel residential shopping tower office other"`
	Address       *string             `json:"address"`
	Coordinates   *Coordinates        `json:"coordinates"`
	TechnicalInfo *TechnicalInfoPatch `json:"technicalInfo"`
}

// TechnicalInfoPatch updates individual technical metadata fields.
type TechnicalInfoPatch struct {
	Brand      *string `json:"brand"`
	Model      *string `json:"model"`
	Year       *int    `json:"year"`
	MaxLoad    *int    `json:"maxLoad"`
	MaxPersons *int    `json:"maxPersons"`
	Floors     *int    `json:"floors"`
}

// SpeedMeasurementPatch replaces parts of the timing observation. The
// derived seconds-per-floor and speed rating are recomputed afterwards.
type SpeedMeasurementPatch struct {
	TotalSeconds    *float64 `json:"totalSeconds" validate:"omitempty,gt=0"`
	FloorsTraversed *int     `json:"floorsTraversed" validate:"omitempty,gt=0"`
}

// RatingPatch updates individual manual category scores.
type RatingPatch struct {
	Smoothness    *float64 `json:"smoothness" validate:"omitempty,gte=1,lte=10"`
	Precision     *float64 `json:"precision" validate:"omitempty,gte=1,lte=10"`
	Noise         *float64 `json:"noise" validate:"omitempty,gte=1,lte=10"`
	Lighting      *float64 `json:"lighting" validate:"omitempty,gte=1,lte=10"`
	Ventilation   *float64 `json:"ventilation" validate:"omitempty,gte=1,lte=10"`
	Spaciousness  *float64 `json:"spaciousness" validate:"omitempty,gte=1,lte=10"`
	Cleanliness   *float64 `json:"cleanliness" validate:"omitempty,gte=1,lte=10"`
	Maintenance   *float64 `json:"maintenance" validate:"omitempty,gte=1,lte=10"`
	Design        *float64 `json:"design" validate:"omitempty,gte=1,lte=10"`
	Technology    *float64 `json:"technology" validate:"omitempty,gte=1,lte=10"`
	Safety        *float64 `json:"safety" validate:"omitempty,gte=1,lte=10"`
	Accessibility *float64 `json:"accessibility" validate:"omitempty,gte=1,lte=10"`
}

// IsEmpty reports whether the patch carries no changes at all.
func (u UpdateElevatorInput) IsEmpty() bool {
	return u.Location == nil && u.SpeedMeasurement == nil && u.Rating == nil &&
		u.Notes == nil && u.DateVisited == nil
}
