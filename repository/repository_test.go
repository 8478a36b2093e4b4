package repository

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"elevate/models"
)

// testBackends builds one fresh repository per backend so every contract
// test runs against both implementations.
func testBackends(t *testing.T) map[string]ElevatorRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// one connection keeps sqlite from returning busy errors under the
	// concurrent-update test
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	gormRepo, err := NewGormElevatorRepository(db)
	require.NoError(t, err)

	return map[string]ElevatorRepository{
		"json": NewJSONElevatorRepository(filepath.Join(t.TempDir(), "data", "elevators.json")),
		"gorm": gormRepo,
	}
}

func draft(name, city string, manual float64) models.CreateElevatorInput {
	return models.CreateElevatorInput{
		Location: models.LocationInput{
			Name: name,
			City: city,
			Type: models.LocationHotel,
		},
		SpeedMeasurement: models.SpeedMeasurementInput{
			TotalSeconds:    10,
			FloorsTraversed: 10, // 1 s/floor, speed rating 10
		},
		Rating: models.RatingInput{
			Smoothness: manual, Precision: manual, Noise: manual,
			Lighting: manual, Ventilation: manual, Spaciousness: manual,
			Cleanliness: manual, Maintenance: manual, Design: manual,
			Technology: manual, Safety: manual, Accessibility: manual,
		},
		Notes: "test ride",
	}
}

func TestSaveComputesDerivedFields(t *testing.T) {
	for name, repo := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			saved, err := repo.Save(context.Background(), draft("Hotel Marriott", "Madrid", 8), 1)
			require.NoError(t, err)

			assert.NotEmpty(t, saved.ID)
			assert.Equal(t, 1.0, saved.SpeedMeasurement.SecondsPerFloor)
			assert.Equal(t, 10.0, saved.Rating.Speed)
			// (10 + 12*8) / 13 = 8.15
			assert.Equal(t, 8.15, saved.OverallScore)
			assert.False(t, saved.CreatedAt.IsZero())
			assert.False(t, saved.DateVisited.IsZero())
		})
	}
}

func TestSaveThenFindByIDRoundTrip(t *testing.T) {
	lat, lng := 40.4168, -3.7038
	for name, repo := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			input := draft("Torre Picasso", "Madrid", 7)
			input.Location.Country = "Spain"
			input.Location.Coordinates = &models.Coordinates{Lat: lat, Lng: lng}
			input.Location.TechnicalInfo = &models.TechnicalInfo{Brand: "Otis", Floors: 43}

			saved, err := repo.Save(context.Background(), input, 1)
			require.NoError(t, err)

			found, err := repo.FindByID(context.Background(), saved.ID)
			require.NoError(t, err)

			assert.Equal(t, saved.ID, found.ID)
			assert.Equal(t, saved.Location, found.Location)
			assert.Equal(t, saved.SpeedMeasurement, found.SpeedMeasurement)
			assert.Equal(t, saved.Rating, found.Rating)
			assert.Equal(t, saved.OverallScore, found.OverallScore)
			assert.Equal(t, saved.Notes, found.Notes)
			assert.WithinDuration(t, saved.DateVisited, found.DateVisited, time.Second)
			assert.WithinDuration(t, saved.CreatedAt, found.CreatedAt, time.Second)
		})
	}
}

func TestFindByIDUnknown(t *testing.T) {
	for name, repo := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repo.FindByID(context.Background(), "no-such-id")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestSaveRejectsOutOfRangeRating(t *testing.T) {
	for name, repo := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			input := draft("Bad Hotel", "Madrid", 8)
			input.Rating.Noise = 11

			_, err := repo.Save(context.Background(), input, 1)
			require.Error(t, err)

			var ve *ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestSaveRejectsZeroFloors(t *testing.T) {
	for name, repo := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			input := draft("Flat Building", "Madrid", 8)
			input.SpeedMeasurement.FloorsTraversed = 0

			_, err := repo.Save(context.Background(), input, 1)
			var ve *ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestUpdateNotesLeavesScoresAlone(t *testing.T) {
	for name, repo := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			saved, err := repo.Save(context.Background(), draft("Hotel A", "Lisbon", 6), 1)
			require.NoError(t, err)

			notes := "squeaky doors"
			updated, err := repo.Update(context.Background(), saved.ID, models.UpdateElevatorInput{
				Notes: &notes,
			})
			require.NoError(t, err)

			assert.Equal(t, "squeaky doors", updated.Notes)
			assert.Equal(t, saved.OverallScore, updated.OverallScore)
			assert.Equal(t, saved.Rating, updated.Rating)
			assert.Equal(t, saved.Location, updated.Location)
			assert.False(t, updated.UpdatedAt.Before(saved.UpdatedAt))
		})
	}
}

func TestUpdateRatingRecomputesOverall(t *testing.T) {
	for name, repo := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			saved, err := repo.Save(context.Background(), draft("Hotel B", "Lisbon", 8), 1)
			require.NoError(t, err)

			ten := 10.0
			updated, err := repo.Update(context.Background(), saved.ID, models.UpdateElevatorInput{
				Rating: &models.RatingPatch{Smoothness: &ten},
			})
			require.NoError(t, err)

			// other categories survive the shallow merge
			assert.Equal(t, 8.0, updated.Rating.Noise)
			assert.Equal(t, 10.0, updated.Rating.Smoothness)
			// (10 + 10 + 11*8) / 13 = 8.31
			assert.Equal(t, 8.31, updated.OverallScore)
		})
	}
}

func TestUpdateRejectsOutOfRangeRating(t *testing.T) {
	for name, repo := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			saved, err := repo.Save(context.Background(), draft("Hotel C", "Lisbon", 8), 1)
			require.NoError(t, err)

			zero := 0.0
			_, err = repo.Update(context.Background(), saved.ID, models.UpdateElevatorInput{
				Rating: &models.RatingPatch{Safety: &zero},
			})
			var ve *ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestUpdateSpeedMeasurementRecomputesSpeedRating(t *testing.T) {
	for name, repo := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			saved, err := repo.Save(context.Background(), draft("Hotel D", "Lisbon", 8), 1)
			require.NoError(t, err)
			require.Equal(t, 10.0, saved.Rating.Speed)

			total := 20.0
			updated, err := repo.Update(context.Background(), saved.ID, models.UpdateElevatorInput{
				SpeedMeasurement: &models.SpeedMeasurementPatch{TotalSeconds: &total},
			})
			require.NoError(t, err)

			// 20s over 10 floors: 2 s/floor, speed rating 5
			assert.Equal(t, 2.0, updated.SpeedMeasurement.SecondsPerFloor)
			assert.Equal(t, 5.0, updated.Rating.Speed)
			// (5 + 12*8) / 13 = 7.77
			assert.Equal(t, 7.77, updated.OverallScore)
		})
	}
}

func TestUpdateUnknownID(t *testing.T) {
	for name, repo := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			notes := "x"
			_, err := repo.Update(context.Background(), "no-such-id", models.UpdateElevatorInput{Notes: &notes})
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestDelete(t *testing.T) {
	for name, repo := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			saved, err := repo.Save(context.Background(), draft("Hotel E", "Porto", 5), 1)
			require.NoError(t, err)

			deleted, err := repo.Delete(context.Background(), saved.ID)
			require.NoError(t, err)
			assert.True(t, deleted)

			_, err = repo.FindByID(context.Background(), saved.ID)
			assert.ErrorIs(t, err, ErrNotFound)

			// a missing id is not an error
			deleted, err = repo.Delete(context.Background(), saved.ID)
			require.NoError(t, err)
			assert.False(t, deleted)
		})
	}
}

func TestFindByCityIsCaseInsensitive(t *testing.T) {
	for name, repo := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			_, err := repo.Save(ctx, draft("Hotel F", "Madrid", 5), 1)
			require.NoError(t, err)
			_, err = repo.Save(ctx, draft("Hotel G", "Lisbon", 5), 1)
			require.NoError(t, err)

			matches, err := repo.FindByCity(ctx, "mAdRiD")
			require.NoError(t, err)
			require.Len(t, matches, 1)
			assert.Equal(t, "Hotel F", matches[0].Location.Name)
		})
	}
}

func TestFindByType(t *testing.T) {
	for name, repo := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			office := draft("Office Block", "Madrid", 5)
			office.Location.Type = models.LocationOffice
			_, err := repo.Save(ctx, office, 1)
			require.NoError(t, err)
			_, err = repo.Save(ctx, draft("Hotel H", "Madrid", 5), 1)
			require.NoError(t, err)

			matches, err := repo.FindByType(ctx, "OFFICE")
			require.NoError(t, err)
			require.Len(t, matches, 1)
			assert.Equal(t, "Office Block", matches[0].Location.Name)
		})
	}
}

func TestFindTopRated(t *testing.T) {
	for name, repo := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			// overall scores: 10.0, 2.62 and 6.31
			best, err := repo.Save(ctx, draft("Best", "A", 10), 1)
			require.NoError(t, err)
			_, err = repo.Save(ctx, draft("Worst", "B", 2), 1)
			require.NoError(t, err)
			middle, err := repo.Save(ctx, draft("Middle", "C", 6), 1)
			require.NoError(t, err)

			top, err := repo.FindTopRated(ctx, 2)
			require.NoError(t, err)
			require.Len(t, top, 2)
			assert.Equal(t, best.ID, top[0].ID)
			assert.Equal(t, middle.ID, top[1].ID)
		})
	}
}

func TestFindAll(t *testing.T) {
	for name, repo := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			_, err := repo.Save(ctx, draft("One", "A", 5), 1)
			require.NoError(t, err)
			_, err = repo.Save(ctx, draft("Two", "B", 5), 2)
			require.NoError(t, err)

			all, err := repo.FindAll(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 2)
		})
	}
}

func TestOwnershipSemantics(t *testing.T) {
	backends := testBackends(t)
	ctx := context.Background()

	t.Run("gorm enforces owners", func(t *testing.T) {
		repo := backends["gorm"]
		assert.True(t, repo.EnforcesOwnership())

		saved, err := repo.Save(ctx, draft("Owned", "Madrid", 5), 42)
		require.NoError(t, err)

		owner, err := repo.IsOwner(ctx, saved.ID, 42)
		require.NoError(t, err)
		assert.True(t, owner)

		owner, err = repo.IsOwner(ctx, saved.ID, 7)
		require.NoError(t, err)
		assert.False(t, owner)

		mine, err := repo.FindByOwner(ctx, 42)
		require.NoError(t, err)
		assert.Len(t, mine, 1)

		theirs, err := repo.FindByOwner(ctx, 7)
		require.NoError(t, err)
		assert.Empty(t, theirs)
	})

	t.Run("json falls back to record existence", func(t *testing.T) {
		repo := backends["json"]
		assert.False(t, repo.EnforcesOwnership())

		saved, err := repo.Save(ctx, draft("Anyone's", "Madrid", 5), 42)
		require.NoError(t, err)

		// any identity passes for an existing record
		owner, err := repo.IsOwner(ctx, saved.ID, 7)
		require.NoError(t, err)
		assert.True(t, owner)

		owner, err = repo.IsOwner(ctx, "no-such-id", 42)
		require.NoError(t, err)
		assert.False(t, owner)

		// owner queries return everything
		all, err := repo.FindByOwner(ctx, 7)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}

func TestDateVisitedDefaultsToNow(t *testing.T) {
	for name, repo := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			saved, err := repo.Save(context.Background(), draft("Hotel I", "Madrid", 5), 1)
			require.NoError(t, err)
			assert.WithinDuration(t, time.Now().UTC(), saved.DateVisited, 5*time.Second)

			visited := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
			input := draft("Hotel J", "Madrid", 5)
			input.DateVisited = &visited

			saved, err = repo.Save(context.Background(), input, 1)
			require.NoError(t, err)
			assert.WithinDuration(t, visited, saved.DateVisited, time.Second)
		})
	}
}

// Concurrent patches to different fields of the same record must all
// survive: the flat-file backend serializes its read-modify-write cycle,
// the relational backend wraps it in a transaction.
func TestConcurrentFieldUpdates(t *testing.T) {
	for name, repo := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			saved, err := repo.Save(ctx, draft("Busy Hotel", "Madrid", 5), 1)
			require.NoError(t, err)

			notes := "concurrent notes"
			ten := 10.0

			var wg sync.WaitGroup
			wg.Add(2)
			go func() {
				defer wg.Done()
				_, err := repo.Update(ctx, saved.ID, models.UpdateElevatorInput{Notes: &notes})
				assert.NoError(t, err)
			}()
			go func() {
				defer wg.Done()
				_, err := repo.Update(ctx, saved.ID, models.UpdateElevatorInput{
					Rating: &models.RatingPatch{Design: &ten},
				})
				assert.NoError(t, err)
			}()
			wg.Wait()

			final, err := repo.FindByID(ctx, saved.ID)
			require.NoError(t, err)
			assert.Equal(t, "concurrent notes", final.Notes)
			assert.Equal(t, 10.0, final.Rating.Design)
		})
	}
}
