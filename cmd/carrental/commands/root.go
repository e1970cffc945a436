package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"carrental/internal/infra/config"
	"carrental/internal/infra/obs"
)

var (
	dataDir  string
	taxTable string
	asJSON   bool

	appCtx *application
	logger *slog.Logger
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "carrental",
		Short:         "Price car rentals by customer age bracket",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if dataDir != "" {
				cfg.DataDir = dataDir
			}
			if taxTable != "" {
				cfg.TaxTablePath = taxTable
			}
			logger = obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With("env", cfg.Env)

			ctx := obs.WithCorrelationID(cmd.Context(), "")
			cmd.SetContext(ctx)
			appCtx, err = buildApplication(ctx, cfg, logger)
			if err != nil {
				logger.ErrorContext(ctx, "bootstrap failed", "error", err)
				return err
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return closeApplication(cmd)
		},
	}

	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding cars.json, carCategory.json and customers.json (overrides DATA_DIR)")
	root.PersistentFlags().StringVar(&taxTable, "taxes", "", "YAML tax table (overrides TAX_TABLE_PATH)")
	root.PersistentFlags().BoolVar(&asJSON, "json", false, "print results as JSON")

	root.AddCommand(rentCmd(), quoteCmd(), pickCmd(), taxesCmd())
	return root
}

// runE logs command failures with the run's correlation id before returning them.
// cobra skips PersistentPostRunE after a failed RunE, so the application is
// closed here on that path.
func runE(fn func(cmd *cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd); err != nil {
			logger.ErrorContext(cmd.Context(), "command failed", "command", cmd.Name(), "error", err)
			fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
			if cerr := closeApplication(cmd); cerr != nil {
				logger.WarnContext(cmd.Context(), "close failed", "error", cerr)
			}
			return err
		}
		return nil
	}
}

func closeApplication(cmd *cobra.Command) error {
	if appCtx == nil {
		return nil
	}
	app := appCtx
	appCtx = nil
	return app.Close(cmd.Context())
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
