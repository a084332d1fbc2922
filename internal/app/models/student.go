package models

import "strings"

// StudentRecord is one captured student identity.
type StudentRecord struct {
	ID            string `json:"id" example:"5d0f1c9e-7a43-4a0e-9d0b-2b7c1f7f6c11"`
	Name          string `json:"name" example:"Alice Nguyen"`
	StudentNumber string `json:"studentNumber" example:"3901234"`
	Program       string `json:"program" example:"BP162"`
	Timestamp     string `json:"timestamp" example:"10/18/2026, 3:04:05 PM"`
}

// SameStudentNumber compares natural keys: trimmed, case-sensitive.
func (r StudentRecord) SameStudentNumber(studentNumber string) bool {
	return strings.TrimSpace(r.StudentNumber) == strings.TrimSpace(studentNumber)
}

// SameName compares names trimmed and case-insensitively.
func (r StudentRecord) SameName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(r.Name), strings.TrimSpace(name))
}

// StudentInput carries raw fields from the manual form or an edit-save.
type StudentInput struct {
	Name          string
	StudentNumber string
	Program       string
}

// HasRequired reports whether name and student number are present after trimming.
func (in StudentInput) HasRequired() bool {
	return strings.TrimSpace(in.Name) != "" && strings.TrimSpace(in.StudentNumber) != ""
}

// ScanInput is what the capture collaborator delivers on a successful scan.
// Program is optional; an empty value means the scanner did not resolve one.
type ScanInput struct {
	Name          string
	StudentNumber string
	Program       string
}

// HasRequired reports whether the scan carries both a name and a number.
func (s ScanInput) HasRequired() bool {
	return strings.TrimSpace(s.Name) != "" && strings.TrimSpace(s.StudentNumber) != ""
}
