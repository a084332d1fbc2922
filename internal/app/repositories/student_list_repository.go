package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/yigit/idscan/internal/app/models"
)

// ErrCorruptList is returned by Load when the stored value is not a JSON
// array of records.
var ErrCorruptList = errors.New("stored student list is not valid JSON")

// StudentListRepository reads and writes the whole student list as one JSON
// array under a single key.
type StudentListRepository struct {
	kv  KeyValueStore
	key string
}

// NewStudentListRepository creates a new StudentListRepository
func NewStudentListRepository(kv KeyValueStore, key string) *StudentListRepository {
	return &StudentListRepository{kv: kv, key: key}
}

// Key returns the storage key the list lives under
func (r *StudentListRepository) Key() string {
	return r.key
}

// Load returns the stored list. A missing key yields an empty list and no
// error; an unparsable value yields ErrCorruptList.
func (r *StudentListRepository) Load(ctx context.Context) ([]models.StudentRecord, error) {
	raw, err := r.kv.Get(ctx, r.key)
	if errors.Is(err, ErrKeyNotFound) {
		return []models.StudentRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read student list: %w", err)
	}

	var records []models.StudentRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptList, err)
	}
	if records == nil {
		records = []models.StudentRecord{}
	}
	return records, nil
}

// Save serializes the full list and writes it under the key
func (r *StudentListRepository) Save(ctx context.Context, records []models.StudentRecord) error {
	if records == nil {
		records = []models.StudentRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode student list: %w", err)
	}
	if err := r.kv.Set(ctx, r.key, string(data)); err != nil {
		return fmt.Errorf("failed to write student list: %w", err)
	}
	return nil
}

// Close releases the underlying store
func (r *StudentListRepository) Close() error {
	return r.kv.Close()
}
