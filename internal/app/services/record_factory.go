package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/idscan/internal/app/models"
)

// DefaultTimestampLayout renders timestamps like "10/18/2026, 3:04:05 PM"
const DefaultTimestampLayout = "1/2/2006, 3:04:05 PM"

// RecordFactory normalizes raw fields into a StudentRecord. It has no access
// to the store and does not check for empty fields.
type RecordFactory struct {
	layout string
	now    func() time.Time
	newID  func() string
}

// NewRecordFactory creates a factory using the wall clock. An empty layout
// falls back to DefaultTimestampLayout.
func NewRecordFactory(layout string) *RecordFactory {
	if strings.TrimSpace(layout) == "" {
		layout = DefaultTimestampLayout
	}
	return &RecordFactory{
		layout: layout,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// WithClock replaces the time source
func (f *RecordFactory) WithClock(now func() time.Time) *RecordFactory {
	f.now = now
	return f
}

// Timestamp formats the current time with the configured layout
func (f *RecordFactory) Timestamp() string {
	return f.now().Format(f.layout)
}

// MakeRecord trims all fields, stamps the current time, and assigns a fresh
// identifier. Callers keeping an existing identity overwrite ID.
func (f *RecordFactory) MakeRecord(name, studentNumber, program string) models.StudentRecord {
	return models.StudentRecord{
		ID:            f.newID(),
		Name:          strings.TrimSpace(name),
		StudentNumber: strings.TrimSpace(studentNumber),
		Program:       strings.TrimSpace(program),
		Timestamp:     f.Timestamp(),
	}
}

// remake rebuilds an existing record from new fields, keeping its identifier
func (f *RecordFactory) remake(id, name, studentNumber, program string) models.StudentRecord {
	rec := f.MakeRecord(name, studentNumber, program)
	rec.ID = id
	return rec
}
