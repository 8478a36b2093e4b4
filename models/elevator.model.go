package models

import "time"

// LocationType classifies the kind of building an elevator belongs to.
type LocationType string

const (
	LocationHotel       LocationType = "hotel"
	LocationResidential LocationType = "residential"
	LocationShopping    LocationType = "shopping"
	LocationTower       LocationType = "tower"
	LocationOffice      LocationType = "office"
	LocationOther       LocationType = "other"
)

// Coordinates is an optional lat/lng pair on a location.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TechnicalInfo holds optional elevator hardware metadata.
type TechnicalInfo struct {
	Brand      string `json:"brand,omitempty"`      // e.g. Otis, Schindler, ThyssenKrupp
	Model      string `json:"model,omitempty"`
	Year       int    `json:"year,omitempty"`       // install year
	MaxLoad    int    `json:"maxLoad,omitempty"`    // kg
	MaxPersons int    `json:"maxPersons,omitempty"`
	Floors     int    `json:"floors,omitempty"`     // floors served
}

// Location describes where a rated elevator lives.
type Location struct {
	Name          string         `json:"name"`
	City          string         `json:"city,omitempty"`
	Country       string         `json:"country,omitempty"`
	Type          LocationType   `json:"type"`
	Address       string         `json:"address,omitempty"`
	Coordinates   *Coordinates   `json:"coordinates,omitempty"`
	TechnicalInfo *TechnicalInfo `json:"technicalInfo,omitempty"`
}

// SpeedMeasurement is a stopwatch observation of one ride.
// SecondsPerFloor is always derived from the other two fields.
type SpeedMeasurement struct {
	TotalSeconds    float64 `json:"totalSeconds"`
	FloorsTraversed int     `json:"floorsTraversed"`
	SecondsPerFloor float64 `json:"secondsPerFloor"`
}

// ElevatorRating holds the thirteen category sub-scores, each in [1,10].
// Speed is computed from the timing measurement, never entered manually.
type ElevatorRating struct {
	// Performance
	Speed      float64 `json:"speed"`
	Smoothness float64 `json:"smoothness"`
	Precision  float64 `json:"precision"`

	// Comfort
	Noise        float64 `json:"noise"`
	Lighting     float64 `json:"lighting"`
	Ventilation  float64 `json:"ventilation"`
	Spaciousness float64 `json:"spaciousness"`

	// Condition
	Cleanliness float64 `json:"cleanliness"`
	Maintenance float64 `json:"maintenance"`

	// Design and technology
	Design     float64 `json:"design"`
	Technology float64 `json:"technology"`

	// Safety and accessibility
	Safety        float64 `json:"safety"`
	Accessibility float64 `json:"accessibility"`
}

// Elevator is one recorded evaluation, the system's central entity.
type Elevator struct {
	ID               string           `json:"id"`
	Location         Location         `json:"location"`
	SpeedMeasurement SpeedMeasurement `json:"speedMeasurement"`
	Rating           ElevatorRating   `json:"rating"`
	OverallScore     float64          `json:"overallScore"` // mean of all rating fields
	Notes            string           `json:"notes,omitempty"`
	DateVisited      time.Time        `json:"dateVisited"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
	UserID           uint             `json:"userId,omitempty"` // 0 when the backend does not track owners
}
