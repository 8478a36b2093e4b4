package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"elevate/models"
)

// elevatorsFile is the on-disk document layout: every record under one
// top-level key, rewritten wholesale on each mutation.
type elevatorsFile struct {
	Elevators []models.Elevator `json:"elevators"`
}

// JSONElevatorRepository persists records in a single JSON file. It does not
// track owners, so ownership checks fall back to "record exists". A mutex
// serializes every read-modify-write cycle; concurrent updates to the same
// record therefore merge field by field instead of losing a writer.
type JSONElevatorRepository struct {
	path string
	mu   sync.Mutex
}

// NewJSONElevatorRepository stores records at path, creating the parent
// directory on first write.
func NewJSONElevatorRepository(path string) *JSONElevatorRepository {
	return &JSONElevatorRepository{path: path}
}

func (r *JSONElevatorRepository) readData() (*elevatorsFile, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &elevatorsFile{Elevators: []models.Elevator{}}, nil
		}
		return nil, err
	}

	data := &elevatorsFile{}
	if err := json.Unmarshal(raw, data); err != nil {
		return nil, err
	}
	if data.Elevators == nil {
		data.Elevators = []models.Elevator{}
	}
	return data, nil
}

func (r *JSONElevatorRepository) writeData(data *elevatorsFile) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return err
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, raw, 0644)
}

// Save appends the new record and rewrites the file.
func (r *JSONElevatorRepository) Save(ctx context.Context, input models.CreateElevatorInput, ownerID uint) (*models.Elevator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.readData()
	if err != nil {
		return nil, err
	}

	// This backend has no user store; the owner reference is dropped.
	record, err := newRecord(input, 0, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	data.Elevators = append(data.Elevators, record)
	if err := r.writeData(data); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *JSONElevatorRepository) FindByID(ctx context.Context, id string) (*models.Elevator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.readData()
	if err != nil {
		return nil, err
	}
	for i := range data.Elevators {
		if data.Elevators[i].ID == id {
			e := data.Elevators[i]
			return &e, nil
		}
	}
	return nil, ErrNotFound
}

// FindAll returns records in file order.
func (r *JSONElevatorRepository) FindAll(ctx context.Context) ([]models.Elevator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.readData()
	if err != nil {
		return nil, err
	}
	return data.Elevators, nil
}

func (r *JSONElevatorRepository) Update(ctx context.Context, id string, patch models.UpdateElevatorInput) (*models.Elevator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.readData()
	if err != nil {
		return nil, err
	}

	for i := range data.Elevators {
		if data.Elevators[i].ID != id {
			continue
		}
		if err := applyPatch(&data.Elevators[i], patch, time.Now().UTC()); err != nil {
			return nil, err
		}
		if err := r.writeData(data); err != nil {
			return nil, err
		}
		e := data.Elevators[i]
		return &e, nil
	}
	return nil, ErrNotFound
}

func (r *JSONElevatorRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.readData()
	if err != nil {
		return false, err
	}

	kept := data.Elevators[:0]
	for _, e := range data.Elevators {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(data.Elevators) {
		return false, nil
	}

	data.Elevators = kept
	if err := r.writeData(data); err != nil {
		return false, err
	}
	return true, nil
}

func (r *JSONElevatorRepository) FindByCity(ctx context.Context, city string) ([]models.Elevator, error) {
	return r.filter(func(e models.Elevator) bool {
		return strings.EqualFold(e.Location.City, city)
	})
}

func (r *JSONElevatorRepository) FindByType(ctx context.Context, locType string) ([]models.Elevator, error) {
	return r.filter(func(e models.Elevator) bool {
		return strings.EqualFold(string(e.Location.Type), locType)
	})
}

// FindTopRated sorts by overall score descending. The sort is stable so
// equally rated records keep their file order.
func (r *JSONElevatorRepository) FindTopRated(ctx context.Context, limit int) ([]models.Elevator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.readData()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(data.Elevators, func(i, j int) bool {
		return data.Elevators[i].OverallScore > data.Elevators[j].OverallScore
	})
	if limit < len(data.Elevators) {
		data.Elevators = data.Elevators[:limit]
	}
	return data.Elevators, nil
}

// FindByOwner returns every record: this backend does not track owners.
func (r *JSONElevatorRepository) FindByOwner(ctx context.Context, ownerID uint) ([]models.Elevator, error) {
	return r.FindAll(ctx)
}

// IsOwner reports true for any existing record: this backend does not track
// owners, and the permissive default keeps local deployments usable.
func (r *JSONElevatorRepository) IsOwner(ctx context.Context, id string, ownerID uint) (bool, error) {
	_, err := r.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// EnforcesOwnership reports false: IsOwner only checks existence here.
func (r *JSONElevatorRepository) EnforcesOwnership() bool { return false }

func (r *JSONElevatorRepository) filter(keep func(models.Elevator) bool) ([]models.Elevator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.readData()
	if err != nil {
		return nil, err
	}

	matched := []models.Elevator{}
	for _, e := range data.Elevators {
		if keep(e) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}
