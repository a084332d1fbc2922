package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yigit/idscan/internal/app/models"
)

func TestReconcile(t *testing.T) {
	list := []models.StudentRecord{
		{ID: "a", Name: "Alice", StudentNumber: "001"},
		{ID: "b", Name: "Bob", StudentNumber: "002"},
	}

	tests := []struct {
		name string
		scan models.ScanInput
		want models.Decision
	}{
		{
			name: "same number and name rejects",
			scan: models.ScanInput{Name: "Alice", StudentNumber: "001"},
			want: models.Decision{Action: models.ActionReject, Index: 0},
		},
		{
			name: "name compared case-insensitively and trimmed",
			scan: models.ScanInput{Name: "  bOB ", StudentNumber: " 002 "},
			want: models.Decision{Action: models.ActionReject, Index: 1},
		},
		{
			name: "same number different name merges",
			scan: models.ScanInput{Name: "Alicia", StudentNumber: "001"},
			want: models.Decision{Action: models.ActionMerge, Index: 0},
		},
		{
			name: "new number inserts",
			scan: models.ScanInput{Name: "Carol", StudentNumber: "003"},
			want: models.Decision{Action: models.ActionInsert, Index: -1},
		},
		{
			name: "number comparison is case-sensitive",
			scan: models.ScanInput{Name: "Dan", StudentNumber: "s001"},
			want: models.Decision{Action: models.ActionInsert, Index: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reconcile(tt.scan, list))
		})
	}
}

func TestReconcile_EmptyList(t *testing.T) {
	got := Reconcile(models.ScanInput{Name: "A", StudentNumber: "1"}, nil)
	assert.Equal(t, models.ActionInsert, got.Action)
}

func TestReconcile_RejectIffNumberAndNameMatch(t *testing.T) {
	list := []models.StudentRecord{
		{Name: "Alice", StudentNumber: "001"},
		{Name: "Bob", StudentNumber: "002"},
		{Name: "Chi", StudentNumber: "003"},
	}
	names := []string{"Alice", "alice", "Bob", "Chi", "Zed", ""}
	numbers := []string{"001", "002", "003", "004", " 001"}

	for _, name := range names {
		for _, number := range numbers {
			got := Reconcile(models.ScanInput{Name: name, StudentNumber: number}, list)

			wantReject := false
			for _, rec := range list {
				if rec.SameStudentNumber(number) && rec.SameName(name) {
					wantReject = true
				}
			}
			assert.Equal(t, wantReject, got.Action == models.ActionReject, "scan %q/%q", name, number)
		}
	}
}
