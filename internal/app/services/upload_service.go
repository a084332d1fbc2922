package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/yigit/idscan/internal/app/models"
	"github.com/yigit/idscan/internal/pkg/apperrors"
	"github.com/yigit/idscan/internal/pkg/settle"
)

// StudentUploader writes one record to the remote API
type StudentUploader interface {
	UploadStudent(ctx context.Context, record models.StudentRecord) error
}

// UploadService sends every record to the remote API on its own and keeps
// only the records that failed.
type UploadService struct {
	store    *StudentStore
	uploader StudentUploader
	limit    int
	running  sync.Mutex
	logger   zerolog.Logger
}

// NewUploadService creates a new UploadService. A nil uploader makes every
// upload fail as a whole. limit bounds concurrent requests; zero means
// unbounded.
func NewUploadService(store *StudentStore, uploader StudentUploader, limit int, logger zerolog.Logger) *UploadService {
	return &UploadService{
		store:    store,
		uploader: uploader,
		limit:    limit,
		logger:   logger,
	}
}

// UploadAll uploads a snapshot of the list and waits for every request to
// settle. When at least one record succeeded the succeeded records are
// removed from the store; when none did the store is left untouched.
//
// The caller's cancellation is ignored once the batch has started.
func (s *UploadService) UploadAll(ctx context.Context) (models.UploadResult, error) {
	if !s.running.TryLock() {
		return models.UploadResult{}, apperrors.ErrUploadInProgress
	}
	defer s.running.Unlock()

	if s.uploader == nil {
		return models.UploadResult{}, apperrors.NewCustomError(apperrors.ErrUploadFailed, apperrors.ErrUploadFailed.Error())
	}

	records := s.store.List()
	if len(records) == 0 {
		return models.UploadResult{Succeeded: []models.StudentRecord{}, Failed: []models.StudentRecord{}}, nil
	}

	ctx = context.WithoutCancel(ctx)
	outcomes := settle.All(ctx, records, s.limit, s.uploader.UploadStudent)

	for _, o := range outcomes {
		if !o.Fulfilled() {
			s.logger.Warn().Err(o.Err).
				Str("id", o.Item.ID).
				Str("studentNumber", o.Item.StudentNumber).
				Msg("Student upload failed")
		}
	}

	succeeded, failed := settle.Partition(outcomes)
	result := models.UploadResult{
		SuccessCount: len(succeeded),
		Succeeded:    nonNil(succeeded),
		Failed:       nonNil(failed),
	}

	if result.SuccessCount == 0 {
		s.logger.Warn().Int("attempted", len(records)).Msg("No students were uploaded")
		return result, nil
	}

	if _, err := s.store.RemoveUploaded(ctx, succeeded); err != nil {
		return result, fmt.Errorf("uploaded records could not be removed: %w", err)
	}

	s.logger.Info().
		Int("uploaded", result.SuccessCount).
		Int("remaining", result.Remaining()).
		Msg("Upload finished")
	return result, nil
}

// UploadMessage is the user-facing summary of a batch
func UploadMessage(result models.UploadResult) string {
	if result.SuccessCount == 0 {
		return "No students were uploaded"
	}
	return fmt.Sprintf("Successfully uploaded %d student(s)", result.SuccessCount)
}

func nonNil(records []models.StudentRecord) []models.StudentRecord {
	if records == nil {
		return []models.StudentRecord{}
	}
	return records
}
