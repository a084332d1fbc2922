package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yigit/idscan/internal/app/models"
	"github.com/yigit/idscan/internal/app/services"
	"github.com/yigit/idscan/internal/bootstrap"
	"github.com/yigit/idscan/internal/pkg/apperrors"
	"github.com/yigit/idscan/internal/pkg/filestorage"
	"github.com/yigit/idscan/internal/pkg/idparse"
	"github.com/yigit/idscan/internal/pkg/validation"
)

func newListCommand(opts *options) *cobra.Command {
	var (
		search string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List captured students in capture order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(cmd, opts, func(ctx context.Context, core *bootstrap.Core) error {
				records := core.Store.List()
				if search != "" {
					records, _ = core.Store.Search(search, 1, len(records)+1)
				}
				if asJSON {
					return printJSON(cmd.OutOrStdout(), records)
				}
				return printRecords(cmd.OutOrStdout(), records)
			})
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "only show records whose name, number, or program contains this")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func newAddCommand(opts *options) *cobra.Command {
	var program string

	cmd := &cobra.Command{
		Use:   "add NAME STUDENT_NUMBER",
		Short: "Add a student manually",
		Long:  "Add a student manually. A student number already in the list is rejected whatever the name.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.StudentFields(args[0], args[1], program); err != nil {
				return userError(err)
			}
			return withCore(cmd, opts, func(ctx context.Context, core *bootstrap.Core) error {
				rec, err := core.Store.Add(ctx, models.StudentInput{
					Name:          args[0],
					StudentNumber: args[1],
					Program:       program,
				})
				if err != nil {
					return userError(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s) as %s\n", rec.Name, rec.StudentNumber, rec.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&program, "program", "p", "", "program code")
	return cmd
}

func newEditCommand(opts *options) *cobra.Command {
	var name, number, program string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a captured student",
		Long:  "Edit a captured student. Unset flags keep their current value; the timestamp is refreshed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(cmd, opts, func(ctx context.Context, core *bootstrap.Core) error {
				current, err := core.Store.Get(args[0])
				if err != nil {
					return userError(err)
				}

				in := models.StudentInput{Name: current.Name, StudentNumber: current.StudentNumber, Program: current.Program}
				if cmd.Flags().Changed("name") {
					in.Name = name
				}
				if cmd.Flags().Changed("number") {
					in.StudentNumber = number
				}
				if cmd.Flags().Changed("program") {
					in.Program = program
				}
				if err := validation.StudentFields(in.Name, in.StudentNumber, in.Program); err != nil {
					return userError(err)
				}

				rec, err := core.Store.Update(ctx, args[0], in)
				if err != nil {
					return userError(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s (%s) %s\n", rec.ID, rec.Name, rec.StudentNumber, rec.Program)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&number, "number", "", "new student number")
	cmd.Flags().StringVar(&program, "program", "", "new program code")
	return cmd
}

func newRemoveCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID...",
		Aliases: []string{"rm"},
		Short:   "Remove captured students by identifier",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(cmd, opts, func(ctx context.Context, core *bootstrap.Core) error {
				for _, id := range args {
					removed, err := core.Store.Remove(ctx, id)
					if err != nil {
						return userError(err)
					}
					if removed {
						fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", id)
					} else {
						fmt.Fprintf(cmd.OutOrStdout(), "No record %s\n", id)
					}
				}
				return nil
			})
		},
	}
}

func newClearCommand(opts *options) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every captured student",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("clearing the list cannot be undone; pass --yes to confirm")
			}
			return withCore(cmd, opts, func(ctx context.Context, core *bootstrap.Core) error {
				n, err := core.Store.Clear(ctx)
				if err != nil {
					return userError(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d student(s)\n", n)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm clearing the list")
	return cmd
}

func newScanCommand(opts *options) *cobra.Command {
	var program, textFile string

	cmd := &cobra.Command{
		Use:   "scan [NAME STUDENT_NUMBER]",
		Short: "Reconcile a scan into the list",
		Long: `Reconcile a scan into the list the way the capture UI does: a new number is
inserted, a known number with a different name is merged, and an exact
duplicate is rejected. With --text the name and number are read from OCR text
("-" reads stdin).`,
		Args: func(cmd *cobra.Command, args []string) error {
			if textFile != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(cmd, opts, func(ctx context.Context, core *bootstrap.Core) error {
				var (
					decision models.Decision
					rec      models.StudentRecord
					err      error
				)
				if textFile != "" {
					text, rerr := readInput(cmd.InOrStdin(), textFile)
					if rerr != nil {
						return rerr
					}
					if verr := validation.NewStringValidation("Text", text).WithMaxLength(validation.OCRTextMaxLength).Validate(); verr != nil {
						return userError(verr)
					}
					decision, rec, err = core.Scans.ScanText(ctx, text)
				} else {
					if verr := validation.StudentFields(args[0], args[1], program); verr != nil {
						return userError(verr)
					}
					decision, rec, err = core.Scans.Scan(ctx, models.ScanInput{Name: args[0], StudentNumber: args[1], Program: program})
				}
				if err != nil {
					return userError(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s) %s\n", decision.Action, rec.Name, rec.StudentNumber, rec.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&program, "program", "p", "", "program code")
	cmd.Flags().StringVar(&textFile, "text", "", "read OCR text from this file, or - for stdin")
	return cmd
}

func newParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [FILE]",
		Short: "Extract name and student number from OCR text without storing it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := "-"
			if len(args) == 1 {
				src = args[0]
			}
			text, err := readInput(cmd.InOrStdin(), src)
			if err != nil {
				return err
			}

			info, ok := idparse.Extract(text)
			if !ok {
				return apperrors.ErrNoIDMatch
			}
			return printJSON(cmd.OutOrStdout(), info)
		},
	}
}

func newExportCommand(opts *options) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the list as CSV",
		Long:  "Write the list as CSV to stdout, or with --dir save it under the configured export filename.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(cmd, opts, func(ctx context.Context, core *bootstrap.Core) error {
				csv := core.Export.CSV()
				if dir == "" {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), csv)
					return err
				}

				storage, err := filestorage.NewLocalStorage(dir)
				if err != nil {
					return err
				}
				path, err := storage.SaveFile(core.Export.Filename(), []byte(csv))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d student(s) to %s\n", core.Store.Count(), path)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "directory to save the CSV file in")
	return cmd
}

func newUploadCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "upload",
		Short: "Upload every captured student to the remote API",
		Long: `Upload every captured student to the remote API, one request per record.
Uploaded records leave the list and failed ones stay for another try. When
nothing succeeds the list is left as it was.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(cmd, opts, func(ctx context.Context, core *bootstrap.Core) error {
				result, err := core.Uploads.UploadAll(ctx)
				if err != nil {
					return userError(err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), services.UploadMessage(result))
				if n := result.Remaining(); n > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%d student(s) remain for retry\n", n)
				}
				return nil
			})
		},
	}
}

func readInput(stdin io.Reader, src string) (string, error) {
	var (
		data []byte
		err  error
	)
	if src == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(filepath.Clean(src))
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
