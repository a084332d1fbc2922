// Package cli implements idscanctl, which works on the same durable student
// list as the API server.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yigit/idscan/internal/bootstrap"
	"github.com/yigit/idscan/internal/config"
	"github.com/yigit/idscan/internal/pkg/logger"
)

type options struct {
	configPath string
	logLevel   string
}

// NewRootCommand builds the idscanctl command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "idscanctl",
		Short: "Manage the captured student list",
		Long: `idscanctl reads and edits the student list captured by the ID scanner.

It uses the same configuration and storage backend as the API server, so
changes made here are visible to the server after it reloads.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.DefaultConfigPath, "path to the YAML config file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")

	root.AddCommand(
		newListCommand(opts),
		newAddCommand(opts),
		newEditCommand(opts),
		newRemoveCommand(opts),
		newClearCommand(opts),
		newScanCommand(opts),
		newParseCommand(),
		newExportCommand(opts),
		newUploadCommand(opts),
	)
	return root
}

// withCore loads config, opens storage, and runs fn with the wired services.
// Logs go to stderr so stdout stays clean for command output.
func withCore(cmd *cobra.Command, opts *options, fn func(ctx context.Context, core *bootstrap.Core) error) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	lgr := logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(level)),
		Pretty: true,
		Output: cmd.ErrOrStderr(),
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	core, err := openCore(ctx, cfg, lgr)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := core.Close(); cerr != nil {
			lgr.Warn().Err(cerr).Msg("Failed to close storage")
		}
	}()

	return fn(ctx, core)
}

func openCore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*bootstrap.Core, error) {
	kv, err := bootstrap.OpenStorage(ctx, cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	core, err := bootstrap.BuildCore(ctx, cfg, kv, lgr)
	if err != nil {
		_ = kv.Close()
		return nil, err
	}
	return core, nil
}
