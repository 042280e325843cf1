// Package cli is the terminal adapter: cobra commands rendering the
// portfolio dashboard, charts and data management operations.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/genbaworks/genba/internal/app"
	"github.com/genbaworks/genba/pkg/observability"
)

var (
	verbose   bool
	logger    *slog.Logger
	container *app.Container
)

type commandContext struct {
	correlationID uuid.UUID
	startedAt     time.Time
}

type commandContextKey struct{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "genba",
	Short: "Genba - construction portfolio dashboard",
	Long: `Genba tracks a construction company's project portfolio:
orders, schedules, costs, cashflow and risk.

It renders the dashboard and charts in the terminal, keeps the data as
plain CSV/JSON files and imports or exports Excel workbooks.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if logger == nil {
			logger = slog.Default()
		}
		info := commandContext{
			correlationID: uuid.New(),
			startedAt:     time.Now(),
		}
		// Stamp the context so handler-side log records carry the ID too.
		ctx := observability.WithCorrelationID(cmd.Context(), info.correlationID.String())
		ctx = observability.WithOperation(ctx, cmd.CommandPath())
		cmd.SetContext(context.WithValue(ctx, commandContextKey{}, info))
		logger.DebugContext(ctx, "command start",
			"command", cmd.CommandPath(),
		)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger == nil {
			logger = slog.Default()
		}
		info, ok := cmd.Context().Value(commandContextKey{}).(commandContext)
		if !ok {
			return
		}
		logger.DebugContext(cmd.Context(), "command end",
			"command", cmd.CommandPath(),
			"duration_ms", time.Since(info.startedAt).Milliseconds(),
		)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// SetLogger sets the CLI logger.
func SetLogger(l *slog.Logger) {
	logger = l
}

// SetApp installs the wired dependency container.
func SetApp(c *app.Container) {
	container = c
}

// GetApp returns the wired dependency container, or nil when the data
// directory could not be prepared.
func GetApp() *app.Container {
	return container
}

// fiscalStartMonth resolves the configured fiscal calendar start.
func fiscalStartMonth() time.Month {
	if container != nil && container.Config != nil {
		return time.Month(container.Config.FiscalStartMonth)
	}
	return time.July
}

// reportingDate resolves the date metrics are computed against.
func reportingDate() time.Time {
	if container != nil && container.Config != nil {
		return container.Config.ReportingDate()
	}
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
