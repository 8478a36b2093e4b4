package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"elevate/models"
)

// elevatorRow is the relational shape of a record: one column per scalar
// field, nullable columns for the optional sub-fields.
type elevatorRow struct {
	ID     string `gorm:"primaryKey"`
	UserID uint   `gorm:"index"`

	LocationName    string `gorm:"not null"`
	LocationCity    *string
	LocationCountry *string
	LocationType    string `gorm:"not null;index"`
	LocationAddress *string
	LocationLat     *float64
	LocationLng     *float64

	TechBrand      *string
	TechModel      *string
	TechYear       *int
	TechMaxLoad    *int
	TechMaxPersons *int
	TechFloors     *int

	SpeedTotalSeconds    float64 `gorm:"not null"`
	SpeedFloors          int     `gorm:"not null"`
	SpeedSecondsPerFloor float64 `gorm:"not null"`

	RatingSpeed         float64 `gorm:"not null"`
	RatingSmoothness    float64 `gorm:"not null"`
	RatingPrecision     float64 `gorm:"not null"`
	RatingNoise         float64 `gorm:"not null"`
	RatingLighting      float64 `gorm:"not null"`
	RatingVentilation   float64 `gorm:"not null"`
	RatingSpaciousness  float64 `gorm:"not null"`
	RatingCleanliness   float64 `gorm:"not null"`
	RatingMaintenance   float64 `gorm:"not null"`
	RatingDesign        float64 `gorm:"not null"`
	RatingTechnology    float64 `gorm:"not null"`
	RatingSafety        float64 `gorm:"not null"`
	RatingAccessibility float64 `gorm:"not null"`

	OverallScore float64 `gorm:"not null;index"`
	Notes        *string
	DateVisited  time.Time `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (elevatorRow) TableName() string { return "elevators" }

// GormElevatorRepository persists records in a relational database. It is
// the only backend that enforces per-user ownership.
type GormElevatorRepository struct {
	db *gorm.DB
}

// NewGormElevatorRepository migrates the elevators table and returns the
// repository.
func NewGormElevatorRepository(db *gorm.DB) (*GormElevatorRepository, error) {
	if err := db.AutoMigrate(&elevatorRow{}); err != nil {
		return nil, err
	}
	return &GormElevatorRepository{db: db}, nil
}

func (r *GormElevatorRepository) Save(ctx context.Context, input models.CreateElevatorInput, ownerID uint) (*models.Elevator, error) {
	record, err := newRecord(input, ownerID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	row := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}

	result := toDomain(row)
	return &result, nil
}

func (r *GormElevatorRepository) FindByID(ctx context.Context, id string) (*models.Elevator, error) {
	var row elevatorRow
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	result := toDomain(row)
	return &result, nil
}

// FindAll returns records newest first.
func (r *GormElevatorRepository) FindAll(ctx context.Context) ([]models.Elevator, error) {
	var rows []elevatorRow
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainSlice(rows), nil
}

// Update runs the read-merge-write cycle inside one transaction so each
// caller observes an atomic update.
func (r *GormElevatorRepository) Update(ctx context.Context, id string, patch models.UpdateElevatorInput) (*models.Elevator, error) {
	var updated models.Elevator

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row elevatorRow
		if err := tx.First(&row, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		record := toDomain(row)
		if err := applyPatch(&record, patch, time.Now().UTC()); err != nil {
			return err
		}

		merged := fromDomain(record)
		// Save writes every column, so cleared optional fields persist too.
		if err := tx.Save(&merged).Error; err != nil {
			return err
		}

		updated = toDomain(merged)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *GormElevatorRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&elevatorRow{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *GormElevatorRepository) FindByCity(ctx context.Context, city string) ([]models.Elevator, error) {
	var rows []elevatorRow
	err := r.db.WithContext(ctx).
		Where("LOWER(location_city) = LOWER(?)", city).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainSlice(rows), nil
}

func (r *GormElevatorRepository) FindByType(ctx context.Context, locType string) ([]models.Elevator, error) {
	var rows []elevatorRow
	err := r.db.WithContext(ctx).
		Where("LOWER(location_type) = LOWER(?)", locType).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainSlice(rows), nil
}

// FindTopRated breaks score ties by id so the order stays stable across
// calls.
func (r *GormElevatorRepository) FindTopRated(ctx context.Context, limit int) ([]models.Elevator, error) {
	var rows []elevatorRow
	err := r.db.WithContext(ctx).
		Order("overall_score DESC, id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainSlice(rows), nil
}

func (r *GormElevatorRepository) FindByOwner(ctx context.Context, ownerID uint) ([]models.Elevator, error) {
	var rows []elevatorRow
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainSlice(rows), nil
}

func (r *GormElevatorRepository) IsOwner(ctx context.Context, id string, ownerID uint) (bool, error) {
	var row elevatorRow
	err := r.db.WithContext(ctx).Select("user_id").First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return row.UserID == ownerID, nil
}

// EnforcesOwnership reports true: records here carry their creator.
func (r *GormElevatorRepository) EnforcesOwnership() bool { return true }

func toDomainSlice(rows []elevatorRow) []models.Elevator {
	records := make([]models.Elevator, 0, len(rows))
	for _, row := range rows {
		records = append(records, toDomain(row))
	}
	return records
}

func toDomain(row elevatorRow) models.Elevator {
	loc := models.Location{
		Name:    row.LocationName,
		City:    strValue(row.LocationCity),
		Country: strValue(row.LocationCountry),
		Type:    models.LocationType(row.LocationType),
		Address: strValue(row.LocationAddress),
	}
	if row.LocationLat != nil && row.LocationLng != nil {
		loc.Coordinates = &models.Coordinates{Lat: *row.LocationLat, Lng: *row.LocationLng}
	}
	if row.TechBrand != nil || row.TechModel != nil || row.TechYear != nil ||
		row.TechMaxLoad != nil || row.TechMaxPersons != nil || row.TechFloors != nil {
		loc.TechnicalInfo = &models.TechnicalInfo{
			Brand:      strValue(row.TechBrand),
			Model:      strValue(row.TechModel),
			Year:       intValue(row.TechYear),
			MaxLoad:    intValue(row.TechMaxLoad),
			MaxPersons: intValue(row.TechMaxPersons),
			Floors:     intValue(row.TechFloors),
		}
	}

	return models.Elevator{
		ID:       row.ID,
		Location: loc,
		SpeedMeasurement: models.SpeedMeasurement{
			TotalSeconds:    row.SpeedTotalSeconds,
			FloorsTraversed: row.SpeedFloors,
			SecondsPerFloor: row.SpeedSecondsPerFloor,
		},
		Rating: models.ElevatorRating{
			Speed:         row.RatingSpeed,
			Smoothness:    row.RatingSmoothness,
			Precision:     row.RatingPrecision,
			Noise:         row.RatingNoise,
			Lighting:      row.RatingLighting,
			Ventilation:   row.RatingVentilation,
			Spaciousness:  row.RatingSpaciousness,
			Cleanliness:   row.RatingCleanliness,
			Maintenance:   row.RatingMaintenance,
			Design:        row.RatingDesign,
			Technology:    row.RatingTechnology,
			Safety:        row.RatingSafety,
			Accessibility: row.RatingAccessibility,
		},
		OverallScore: row.OverallScore,
		Notes:        strValue(row.Notes),
		DateVisited:  row.DateVisited,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
		UserID:       row.UserID,
	}
}

func fromDomain(e models.Elevator) elevatorRow {
	row := elevatorRow{
		ID:     e.ID,
		UserID: e.UserID,

		LocationName:    e.Location.Name,
		LocationCity:    strPtr(e.Location.City),
		LocationCountry: strPtr(e.Location.Country),
		LocationType:    string(e.Location.Type),
		LocationAddress: strPtr(e.Location.Address),

		SpeedTotalSeconds:    e.SpeedMeasurement.TotalSeconds,
		SpeedFloors:          e.SpeedMeasurement.FloorsTraversed,
		SpeedSecondsPerFloor: e.SpeedMeasurement.SecondsPerFloor,

		RatingSpeed:         e.Rating.Speed,
		RatingSmoothness:    e.Rating.Smoothness,
		RatingPrecision:     e.Rating.Precision,
		RatingNoise:         e.Rating.Noise,
		RatingLighting:      e.Rating.Lighting,
		RatingVentilation:   e.Rating.Ventilation,
		RatingSpaciousness:  e.Rating.Spaciousness,
		RatingCleanliness:   e.Rating.Cleanliness,
		RatingMaintenance:   e.Rating.Maintenance,
		RatingDesign:        e.Rating.Design,
		RatingTechnology:    e.Rating.Technology,
		RatingSafety:        e.Rating.Safety,
		RatingAccessibility: e.Rating.Accessibility,

		OverallScore: e.OverallScore,
		Notes:        strPtr(e.Notes),
		DateVisited:  e.DateVisited,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}

	if e.Location.Coordinates != nil {
		row.LocationLat = &e.Location.Coordinates.Lat
		row.LocationLng = &e.Location.Coordinates.Lng
	}
	if t := e.Location.TechnicalInfo; t != nil {
		row.TechBrand = strPtr(t.Brand)
		row.TechModel = strPtr(t.Model)
		row.TechYear = intPtr(t.Year)
		row.TechMaxLoad = intPtr(t.MaxLoad)
		row.TechMaxPersons = intPtr(t.MaxPersons)
		row.TechFloors = intPtr(t.Floors)
	}

	return row
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intPtr(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}

func intValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
