// Package csvexport renders the student list as CSV for download.
package csvexport

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/yigit/idscan/internal/app/models"
)

// ContentType of the exported file
const ContentType = "text/csv"

// Header is the first row of every export
var Header = []string{"Name", "Student Number", "Program", "Timestamp"}

// Options controls the encoding
type Options struct {
	// Quote enables RFC 4180 quoting. When false, fields are joined with bare
	// commas and a comma inside a field yields a malformed row.
	Quote bool
}

// EncodeCSV renders the header plus one row per record, in list order, with
// rows separated by "\n" and no trailing newline.
func EncodeCSV(records []models.StudentRecord) string {
	return Encode(records, Options{})
}

// Encode renders records with the given options
func Encode(records []models.StudentRecord, opts Options) string {
	if opts.Quote {
		return encodeQuoted(records)
	}

	rows := make([]string, 0, len(records)+1)
	rows = append(rows, strings.Join(Header, ","))
	for _, r := range records {
		rows = append(rows, strings.Join(fields(r), ","))
	}
	return strings.Join(rows, "\n")
}

func encodeQuoted(records []models.StudentRecord) string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	// Errors from a bytes.Buffer writer cannot occur.
	_ = w.Write(Header)
	for _, r := range records {
		_ = w.Write(fields(r))
	}
	w.Flush()
	return strings.TrimSuffix(buf.String(), "\n")
}

func fields(r models.StudentRecord) []string {
	return []string{r.Name, r.StudentNumber, r.Program, r.Timestamp}
}
