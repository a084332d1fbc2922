package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yigit/idscan/internal/app/models"
)

func TestExportService_CSV(t *testing.T) {
	store, _ := newTestStore(t)
	recs := seed(t, store,
		models.StudentInput{Name: "A", StudentNumber: "1", Program: "CS"},
		models.StudentInput{Name: "B", StudentNumber: "2"},
	)

	svc := NewExportService(store, "", false)
	out := svc.CSV()
	rows := strings.Split(out, "\n")

	assert.Equal(t, "CapturedStudents.csv", svc.Filename())
	assert.Equal(t, "text/csv", svc.ContentType())
	assert.Len(t, rows, len(recs)+1)
	assert.Equal(t, "Name,Student Number,Program,Timestamp", rows[0])
	assert.Equal(t, "A,1,CS,"+recs[0].Timestamp, rows[1])
	assert.Equal(t, "B,2,,"+recs[1].Timestamp, rows[2])
}

func TestExportService_Quoted(t *testing.T) {
	store, _ := newTestStore(t)
	seed(t, store, models.StudentInput{Name: "Le, Carol", StudentNumber: "3"})

	out := NewExportService(store, "out.csv", true).CSV()
	assert.Contains(t, out, `"Le, Carol",3,,`)
}
