package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/idscan/internal/pkg/apperrors"
)

func TestStringValidation(t *testing.T) {
	tests := []struct {
		name    string
		rule    *StringValidation
		wantErr string
	}{
		{"optional empty", NewStringValidation("Program", "  "), ""},
		{"required empty", NewStringValidation("Name", "").WithRequired(true), "Name is required"},
		{"within limit", NewStringValidation("Name", "Alice").WithMaxLength(5), ""},
		{"over limit", NewStringValidation("Name", "Alice N").WithMaxLength(5), "Name must be at most 5"},
		{"multibyte counts runes", NewStringValidation("Name", "Nguyễn").WithMaxLength(6), ""},
		{"pattern ok", NewStringValidation("StudentNumber", "3901234").WithPattern(StudentNumberPattern), ""},
		{"pattern mismatch", NewStringValidation("StudentNumber", "390123").WithPattern(StudentNumberPattern), "StudentNumber has an invalid format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
			assert.Equal(t, tt.wantErr, apperrors.Message(err))
		})
	}
}

func TestStudentFields(t *testing.T) {
	assert.NoError(t, StudentFields("Alice", "3901234", ""))
	assert.NoError(t, StudentFields("", "", ""))

	err := StudentFields("Alice", strings.Repeat("1", StudentNumberMaxLength+1), "")
	require.Error(t, err)
	assert.Equal(t, "StudentNumber must be at most 50", apperrors.Message(err))

	err = StudentFields(strings.Repeat("a", NameMaxLength+1), "1", strings.Repeat("p", ProgramMaxLength+1))
	require.Error(t, err)
	assert.Contains(t, apperrors.Message(err), "Name")
}
