package services

import (
	"context"

	"github.com/yigit/idscan/internal/app/models"
	"github.com/yigit/idscan/internal/pkg/apperrors"
	"github.com/yigit/idscan/internal/pkg/idparse"
)

// ScanService accepts capture events, either structured or as raw OCR text,
// and reconciles them into the store.
type ScanService struct {
	store     *StudentStore
	extractor *idparse.Extractor
}

// NewScanService creates a new ScanService. A nil extractor uses the default
// keyword list.
func NewScanService(store *StudentStore, extractor *idparse.Extractor) *ScanService {
	if extractor == nil {
		extractor, _ = idparse.NewExtractor(nil)
	}
	return &ScanService{store: store, extractor: extractor}
}

// Scan reconciles a structured capture event
func (s *ScanService) Scan(ctx context.Context, in models.ScanInput) (models.Decision, models.StudentRecord, error) {
	return s.store.ApplyScan(ctx, in)
}

// Parse extracts a scan from OCR text without touching the store
func (s *ScanService) Parse(text string) (models.ScanInput, error) {
	info, ok := s.extractor.Extract(text)
	if !ok {
		return models.ScanInput{}, apperrors.ErrNoIDMatch
	}
	return models.ScanInput{Name: info.Name, StudentNumber: info.StudentNumber}, nil
}

// ScanText parses OCR text and reconciles the result like any other scan
func (s *ScanService) ScanText(ctx context.Context, text string) (models.Decision, models.StudentRecord, error) {
	in, err := s.Parse(text)
	if err != nil {
		return models.Decision{}, models.StudentRecord{}, err
	}
	return s.store.ApplyScan(ctx, in)
}
