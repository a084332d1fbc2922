package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/yigit/idscan/internal/app/models"
	"github.com/yigit/idscan/internal/pkg/apperrors"
)

func printRecords(w io.Writer, records []models.StudentRecord) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTUDENT NUMBER\tPROGRAM\tTIMESTAMP")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Name, r.StudentNumber, r.Program, r.Timestamp)
	}
	return tw.Flush()
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// userError keeps the message a user would see in the capture UI
func userError(err error) error {
	if err == nil {
		return nil
	}
	return errors.New(apperrors.Message(err))
}
