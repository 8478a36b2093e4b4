// Package repository defines the storage contract for elevator records and
// its two interchangeable backends: a flat JSON file and a GORM-backed
// relational store. Both produce identical semantics for every operation;
// only the relational backend tracks record ownership.
package repository

import (
	"context"
	"errors"

	"elevate/models"
)

// ErrNotFound is returned when no record matches the given id.
var ErrNotFound = errors.New("elevator not found")

// ValidationError wraps a rejected draft or patch. The API layer maps it
// to a 400 response.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }

// ElevatorRepository is the persistence contract the rest of the system
// depends on.
type ElevatorRepository interface {
	// Save assigns an id and timestamps, computes the derived scores and
	// persists the draft. ownerID is ignored by backends that do not track
	// ownership.
	Save(ctx context.Context, input models.CreateElevatorInput, ownerID uint) (*models.Elevator, error)

	// FindByID returns ErrNotFound when the id is unknown.
	FindByID(ctx context.Context, id string) (*models.Elevator, error)

	FindAll(ctx context.Context) ([]models.Elevator, error)

	// Update merges only the supplied fields into the stored record,
	// recomputing derived scores when ratings or the timing measurement
	// changed. Returns ErrNotFound when the id is unknown.
	Update(ctx context.Context, id string, patch models.UpdateElevatorInput) (*models.Elevator, error)

	// Delete reports whether a record existed and was removed. A missing
	// id is not an error.
	Delete(ctx context.Context, id string) (bool, error)

	// FindByCity matches the city field case-insensitively.
	FindByCity(ctx context.Context, city string) ([]models.Elevator, error)

	// FindByType matches the location category case-insensitively.
	FindByType(ctx context.Context, locType string) ([]models.Elevator, error)

	// FindTopRated returns up to limit records sorted by overall score,
	// best first.
	FindTopRated(ctx context.Context, limit int) ([]models.Elevator, error)

	// FindByOwner returns the caller's records. A backend without
	// ownership tracking returns all records.
	FindByOwner(ctx context.Context, ownerID uint) ([]models.Elevator, error)

	// IsOwner reports whether the record exists and belongs to ownerID.
	// A backend without ownership tracking reports true for any existing
	// record, which keeps anonymous local deployments functional.
	IsOwner(ctx context.Context, id string, ownerID uint) (bool, error)

	// EnforcesOwnership reports whether IsOwner actually compares owners.
	EnforcesOwnership() bool
}
