package repository

import (
	"time"

	"github.com/google/uuid"

	"elevate/models"
	"elevate/scoring"
)

// newRecord turns a validated draft into a complete record: id, timestamps,
// derived seconds-per-floor, speed rating and overall score. Both backends
// go through here so the computed fields cannot drift apart.
func newRecord(input models.CreateElevatorInput, ownerID uint, now time.Time) (models.Elevator, error) {
	spf, err := scoring.SecondsPerFloor(input.SpeedMeasurement.TotalSeconds, input.SpeedMeasurement.FloorsTraversed)
	if err != nil {
		return models.Elevator{}, &ValidationError{Err: err}
	}

	measurement := models.SpeedMeasurement{
		TotalSeconds:    input.SpeedMeasurement.TotalSeconds,
		FloorsTraversed: input.SpeedMeasurement.FloorsTraversed,
		SecondsPerFloor: spf,
	}
	if err := scoring.ValidateSpeedMeasurement(measurement); err != nil {
		return models.Elevator{}, &ValidationError{Err: err}
	}

	rating := ratingFromInput(input.Rating)
	rating.Speed = scoring.SpeedScore(spf)
	if err := scoring.ValidateElevatorRating(rating); err != nil {
		return models.Elevator{}, &ValidationError{Err: err}
	}

	dateVisited := now
	if input.DateVisited != nil {
		dateVisited = *input.DateVisited
	}

	return models.Elevator{
		ID: uuid.NewString(),
		Location: models.Location{
			Name:          input.Location.Name,
			City:          input.Location.City,
			Country:       input.Location.Country,
			Type:          input.Location.Type,
			Address:       input.Location.Address,
			Coordinates:   input.Location.Coordinates,
			TechnicalInfo: input.Location.TechnicalInfo,
		},
		SpeedMeasurement: measurement,
		Rating:           rating,
		OverallScore:     scoring.OverallScore(rating),
		Notes:            input.Notes,
		DateVisited:      dateVisited,
		CreatedAt:        now,
		UpdatedAt:        now,
		UserID:           ownerID,
	}, nil
}

func ratingFromInput(in models.RatingInput) models.ElevatorRating {
	return models.ElevatorRating{
		Smoothness:    in.Smoothness,
		Precision:     in.Precision,
		Noise:         in.Noise,
		Lighting:      in.Lighting,
		Ventilation:   in.Ventilation,
		Spaciousness:  in.Spaciousness,
		Cleanliness:   in.Cleanliness,
		Maintenance:   in.Maintenance,
		Design:        in.Design,
		Technology:    in.Technology,
		Safety:        in.Safety,
		Accessibility: in.Accessibility,
	}
}

// applyPatch merges a partial update into an existing record and refreshes
// every derived field that the patch touched. updatedAt always changes.
func applyPatch(e *models.Elevator, patch models.UpdateElevatorInput, now time.Time) error {
	if patch.Location != nil {
		applyLocationPatch(&e.Location, *patch.Location)
	}

	recomputeOverall := false

	if patch.SpeedMeasurement != nil {
		m := &e.SpeedMeasurement
		if patch.SpeedMeasurement.TotalSeconds != nil {
			m.TotalSeconds = *patch.SpeedMeasurement.TotalSeconds
		}
		if patch.SpeedMeasurement.FloorsTraversed != nil {
			m.FloorsTraversed = *patch.SpeedMeasurement.FloorsTraversed
		}

		spf, err := scoring.SecondsPerFloor(m.TotalSeconds, m.FloorsTraversed)
		if err != nil {
			return &ValidationError{Err: err}
		}
		m.SecondsPerFloor = spf
		if err := scoring.ValidateSpeedMeasurement(*m); err != nil {
			return &ValidationError{Err: err}
		}

		// The timing changed, so the derived speed rating moves with it.
		e.Rating.Speed = scoring.SpeedScore(spf)
		recomputeOverall = true
	}

	if patch.Rating != nil {
		applyRatingPatch(&e.Rating, *patch.Rating)
		if err := scoring.ValidateElevatorRating(e.Rating); err != nil {
			return &ValidationError{Err: err}
		}
		recomputeOverall = true
	}

	if recomputeOverall {
		e.OverallScore = scoring.OverallScore(e.Rating)
	}

	if patch.Notes != nil {
		e.Notes = *patch.Notes
	}
	if patch.DateVisited != nil {
		e.DateVisited = *patch.DateVisited
	}

	e.UpdatedAt = now
	return nil
}

func applyLocationPatch(loc *models.Location, p models.LocationPatch) {
	if p.Name != nil {
		loc.Name = *p.Name
	}
	if p.City != nil {
		loc.City = *p.City
	}
	if p.Country != nil {
		loc.Country = *p.Country
	}
	if p.Type != nil {
		loc.Type = *p.Type
	}
	if p.Address != nil {
		loc.Address = *p.Address
	}
	if p.Coordinates != nil {
		// Coordinates always arrive as a complete pair.
		c := *p.Coordinates
		loc.Coordinates = &c
	}
	if p.TechnicalInfo != nil {
		if loc.TechnicalInfo == nil {
			loc.TechnicalInfo = &models.TechnicalInfo{}
		}
		applyTechnicalInfoPatch(loc.TechnicalInfo, *p.TechnicalInfo)
	}
}

func applyTechnicalInfoPatch(t *models.TechnicalInfo, p models.TechnicalInfoPatch) {
	if p.Brand != nil {
		t.Brand = *p.Brand
	}
	if p.Model != nil {
		t.Model = *p.Model
	}
	if p.Year != nil {
		t.Year = *p.Year
	}
	if p.MaxLoad != nil {
		t.MaxLoad = *p.MaxLoad
	}
	if p.MaxPersons != nil {
		t.MaxPersons = *p.MaxPersons
	}
	if p.Floors != nil {
		t.Floors = *p.Floors
	}
}

func applyRatingPatch(r *models.ElevatorRating, p models.RatingPatch) {
	if p.Smoothness != nil {
		r.Smoothness = *p.Smoothness
	}
	if p.Precision != nil {
		r.Precision = *p.Precision
	}
	if p.Noise != nil {
		r.Noise = *p.Noise
	}
	if p.Lighting != nil {
		r.Lighting = *p.Lighting
	}
	if p.Ventilation != nil {
		r.Ventilation = *p.Ventilation
	}
	if p.Spaciousness != nil {
		r.Spaciousness = *p.Spaciousness
	}
	if p.Cleanliness != nil {
		r.Cleanliness = *p.Cleanliness
	}
	if p.Maintenance != nil {
		r.Maintenance = *p.Maintenance
	}
	if p.Design != nil {
		r.Design = *p.Design
	}
	if p.Technology != nil {
		r.Technology = *p.Technology
	}
	if p.Safety != nil {
		r.Safety = *p.Safety
	}
	if p.Accessibility != nil {
		r.Accessibility = *p.Accessibility
	}
}
