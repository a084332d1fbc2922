package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/yigit/idscan/internal/app/models"
	"github.com/yigit/idscan/internal/app/repositories"
	"github.com/yigit/idscan/internal/pkg/apperrors"
	"github.com/yigit/idscan/internal/pkg/helpers"
)

// ListRepository is the durable mirror of the student list
type ListRepository interface {
	Load(ctx context.Context) ([]models.StudentRecord, error)
	Save(ctx context.Context, records []models.StudentRecord) error
}

// ChangeListener is told the record count after each committed mutation.
// Listeners run while the store is locked and must not call back into it.
type ChangeListener func(count int)

// StudentStore owns the ordered student list. Every mutation builds the next
// list, persists it, and only then replaces the in-memory copy, so a failed
// write leaves the store as it was.
type StudentStore struct {
	mu        sync.RWMutex
	records   []models.StudentRecord
	repo      ListRepository
	factory   *RecordFactory
	listeners []ChangeListener
	logger    zerolog.Logger
}

// NewStudentStore creates an empty store. Call Load to hydrate it.
func NewStudentStore(repo ListRepository, factory *RecordFactory, logger zerolog.Logger) *StudentStore {
	return &StudentStore{
		records: []models.StudentRecord{},
		repo:    repo,
		factory: factory,
		logger:  logger,
	}
}

// Subscribe registers a change listener
func (s *StudentStore) Subscribe(listener ChangeListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

// Load hydrates the store from durable storage. A missing or unparsable
// value yields an empty list; only read failures are returned.
func (s *StudentStore) Load(ctx context.Context) error {
	records, err := s.repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, repositories.ErrCorruptList) {
			return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
		}
		s.logger.Warn().Err(err).Msg("Stored student list is unreadable, starting empty")
		records = []models.StudentRecord{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.logger.Info().Int("count", len(records)).Msg("Student list loaded")
	return nil
}

// List returns a copy of all records in insertion order
func (s *StudentStore) List() []models.StudentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRecords(s.records)
}

// Count returns the number of records
func (s *StudentStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Get returns the record with the given identifier
func (s *StudentStore) Get(id string) (models.StudentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.records[i], nil
	}
	return models.StudentRecord{}, apperrors.ErrStudentNotFound
}

// Search returns one page of records whose name, student number, or program
// contains term, ignoring case, along with the total number of matches.
func (s *StudentStore) Search(term string, page, size int) ([]models.StudentRecord, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term = strings.ToLower(strings.TrimSpace(term))
	matches := s.records
	if term != "" {
		matches = make([]models.StudentRecord, 0, len(s.records))
		for _, rec := range s.records {
			if matchesTerm(rec, term) {
				matches = append(matches, rec)
			}
		}
	}

	start, end := helpers.CalculateSliceIndices(page, size, len(matches))
	return cloneRecords(matches[start:end]), len(matches)
}

// Add appends a manually entered record. A taken student number is always
// rejected, whatever the name.
func (s *StudentStore) Add(ctx context.Context, in models.StudentInput) (models.StudentRecord, error) {
	if !in.HasRequired() {
		return models.StudentRecord{}, apperrors.NewValidationError(apperrors.ErrMissingFields.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOfNumber(in.StudentNumber, "") >= 0 {
		return models.StudentRecord{}, apperrors.NewDuplicateError(strings.TrimSpace(in.StudentNumber))
	}

	rec := s.factory.MakeRecord(in.Name, in.StudentNumber, in.Program)
	next := append(cloneRecords(s.records), rec)
	if err := s.commit(ctx, next); err != nil {
		return models.StudentRecord{}, err
	}

	s.logger.Info().Str("id", rec.ID).Str("studentNumber", rec.StudentNumber).Msg("Student added")
	return rec, nil
}

// ApplyScan reconciles a capture event against the list and applies the
// resulting INSERT or MERGE. A REJECT leaves the list unchanged and returns a
// duplicate error alongside the decision.
func (s *StudentStore) ApplyScan(ctx context.Context, scan models.ScanInput) (models.Decision, models.StudentRecord, error) {
	if !scan.HasRequired() {
		return models.Decision{}, models.StudentRecord{}, apperrors.NewValidationError(apperrors.ErrMissingFields.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	decision := Reconcile(scan, s.records)
	next := cloneRecords(s.records)

	var rec models.StudentRecord
	switch decision.Action {
	case models.ActionReject:
		existing := s.records[decision.Index]
		s.logger.Debug().Str("studentNumber", existing.StudentNumber).Msg("Duplicate scan rejected")
		return decision, existing, apperrors.NewDuplicateError(existing.StudentNumber)

	case models.ActionMerge:
		existing := s.records[decision.Index]
		program := scan.Program
		if strings.TrimSpace(program) == "" {
			program = existing.Program
		}
		rec = s.factory.remake(existing.ID, scan.Name, scan.StudentNumber, program)
		next[decision.Index] = rec

	default:
		rec = s.factory.MakeRecord(scan.Name, scan.StudentNumber, scan.Program)
		next = append(next, rec)
	}

	if err := s.commit(ctx, next); err != nil {
		return decision, models.StudentRecord{}, err
	}

	s.logger.Info().
		Str("action", string(decision.Action)).
		Str("id", rec.ID).
		Str("studentNumber", rec.StudentNumber).
		Msg("Scan applied")
	return decision, rec, nil
}

// Update re-derives the record with the given identifier from in, refreshing
// its timestamp. An unknown identifier changes nothing and returns
// ErrStudentNotFound.
func (s *StudentStore) Update(ctx context.Context, id string, in models.StudentInput) (models.StudentRecord, error) {
	if !in.HasRequired() {
		return models.StudentRecord{}, apperrors.NewValidationError(apperrors.ErrMissingFields.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.StudentRecord{}, apperrors.ErrStudentNotFound
	}
	if s.indexOfNumber(in.StudentNumber, id) >= 0 {
		return models.StudentRecord{}, apperrors.NewDuplicateError(strings.TrimSpace(in.StudentNumber))
	}

	rec := s.factory.remake(id, in.Name, in.StudentNumber, in.Program)
	next := cloneRecords(s.records)
	next[i] = rec
	if err := s.commit(ctx, next); err != nil {
		return models.StudentRecord{}, err
	}

	s.logger.Info().Str("id", id).Msg("Student updated")
	return rec, nil
}

// Remove deletes the record with the given identifier. It reports whether a
// record was removed; an unknown identifier is a no-op.
func (s *StudentStore) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}

	next := make([]models.StudentRecord, 0, len(s.records)-1)
	next = append(next, s.records[:i]...)
	next = append(next, s.records[i+1:]...)
	if err := s.commit(ctx, next); err != nil {
		return false, err
	}

	s.logger.Info().Str("id", id).Msg("Student removed")
	return true, nil
}

// Clear empties the list and returns how many records were dropped
func (s *StudentStore) Clear(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := len(s.records)
	if err := s.commit(ctx, []models.StudentRecord{}); err != nil {
		return 0, err
	}

	s.logger.Info().Int("removed", removed).Msg("Student list cleared")
	return removed, nil
}

// RemoveUploaded drops the uploaded records in a single mutation. A record is
// dropped only while it still equals the uploaded snapshot, so records added
// or edited after the upload started are kept.
func (s *StudentStore) RemoveUploaded(ctx context.Context, uploaded []models.StudentRecord) (int, error) {
	if len(uploaded) == 0 {
		return 0, nil
	}

	drop := make(map[string]models.StudentRecord, len(uploaded))
	for _, rec := range uploaded {
		drop[rec.ID] = rec
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.StudentRecord, 0, len(s.records))
	for _, rec := range s.records {
		if sent, ok := drop[rec.ID]; !ok || sent != rec {
			next = append(next, rec)
		}
	}

	removed := len(s.records) - len(next)
	if removed == 0 {
		return 0, nil
	}
	if err := s.commit(ctx, next); err != nil {
		return 0, err
	}
	return removed, nil
}

// commit persists next and swaps it in. Callers hold the write lock.
func (s *StudentStore) commit(ctx context.Context, next []models.StudentRecord) error {
	if err := s.repo.Save(ctx, next); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist student list")
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	s.records = next
	for _, listener := range s.listeners {
		listener(len(next))
	}
	return nil
}

func (s *StudentStore) indexOf(id string) int {
	for i, rec := range s.records {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

// indexOfNumber finds a record holding studentNumber, skipping exceptID
func (s *StudentStore) indexOfNumber(studentNumber, exceptID string) int {
	for i, rec := range s.records {
		if rec.ID != exceptID && rec.SameStudentNumber(studentNumber) {
			return i
		}
	}
	return -1
}

func matchesTerm(rec models.StudentRecord, term string) bool {
	return strings.Contains(strings.ToLower(rec.Name), term) ||
		strings.Contains(strings.ToLower(rec.StudentNumber), term) ||
		strings.Contains(strings.ToLower(rec.Program), term)
}

func cloneRecords(records []models.StudentRecord) []models.StudentRecord {
	out := make([]models.StudentRecord, len(records))
	copy(out, records)
	return out
}
