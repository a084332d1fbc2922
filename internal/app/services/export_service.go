package services

import (
	"github.com/yigit/idscan/internal/pkg/csvexport"
)

// DefaultExportFilename is the download name of the CSV export
const DefaultExportFilename = "CapturedStudents.csv"

// ExportService renders the current list as CSV
type ExportService struct {
	store    *StudentStore
	filename string
	opts     csvexport.Options
}

// NewExportService creates a new ExportService
func NewExportService(store *StudentStore, filename string, quote bool) *ExportService {
	if filename == "" {
		filename = DefaultExportFilename
	}
	return &ExportService{
		store:    store,
		filename: filename,
		opts:     csvexport.Options{Quote: quote},
	}
}

// Filename is the fixed download name
func (s *ExportService) Filename() string {
	return s.filename
}

// ContentType is the MIME type of the export
func (s *ExportService) ContentType() string {
	return csvexport.ContentType
}

// CSV renders the list in insertion order
func (s *ExportService) CSV() string {
	return csvexport.Encode(s.store.List(), s.opts)
}
