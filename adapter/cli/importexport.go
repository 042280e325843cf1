package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	portfolioCommands "github.com/genbaworks/genba/internal/portfolio/application/commands"
	portfolioQueries "github.com/genbaworks/genba/internal/portfolio/application/queries"
	"github.com/genbaworks/genba/internal/portfolio/domain"
	"github.com/genbaworks/genba/internal/portfolio/infrastructure/persistence"
)

var importFlags struct {
	mode string
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a project table from CSV or Excel",
	Long: `Import projects from a CSV file or an .xlsx workbook using the
stored column headers.

Modes:
  merge    update rows with matching ids, append new ones (default)
  replace  discard the stored table in favor of the file

Examples:
  genba import projects.xlsx
  genba import backup.csv --mode replace`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("data directory is not available")
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}
		projects, err := persistence.ReadProjects(args[0], data)
		if err != nil {
			return err
		}

		result, err := app.ImportProjectsHandler.Handle(cmd.Context(), portfolioCommands.ImportProjectsCommand{
			Projects: projects,
			Mode:     portfolioCommands.ImportMode(importFlags.mode),
		})
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			fmt.Println("取り込めません:")
			for _, message := range validationErr.Messages {
				fmt.Printf("  - %s\n", message)
			}
			return fmt.Errorf("import rejected")
		}
		if err != nil {
			return err
		}

		fmt.Printf("%d 行を取り込みました。案件数: %d\n", result.Imported, result.Total)
		return nil
	},
}

var exportFlags struct {
	format string
	out    string
}

var exportFilter filterFlags

var exportCmd = &cobra.Command{
	Use:   "export <projects|monthly>",
	Short: "Export the project table or the monthly summary",
	Long: `Export the enriched filtered project table or the monthly
aggregation. CSV files carry a UTF-8 BOM and CRLF line endings so
spreadsheet tools open them cleanly.

Examples:
  genba export projects
  genba export projects --format xlsx --out projects_export.xlsx
  genba export monthly --fy 2025`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"projects", "monthly"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("data directory is not available")
		}

		target := strings.ToLower(args[0])
		filter := exportFilter.state(cmd)
		today := reportingDate()

		var (
			data []byte
			err  error
			name string
		)
		switch target {
		case "projects":
			rows, listErr := app.ListProjectsHandler.Handle(cmd.Context(), portfolioQueries.ListProjectsQuery{
				Filter: filter,
				Today:  today,
			})
			if listErr != nil {
				return listErr
			}
			if exportFlags.format == "xlsx" {
				data, err = persistence.ExportProjectsExcel(rows)
				name = "projects_export.xlsx"
			} else {
				data, err = persistence.ExportProjectsCSV(rows)
				name = "projects_export.csv"
			}
		case "monthly":
			buckets, sumErr := app.GetMonthlySummaryHandler.Handle(cmd.Context(), portfolioQueries.GetMonthlySummaryQuery{
				Filter:           filter,
				FiscalStartMonth: fiscalStartMonth(),
				Today:            today,
			})
			if sumErr != nil {
				return sumErr
			}
			if exportFlags.format == "xlsx" {
				data, err = persistence.ExportMonthlyExcel(buckets)
				name = "monthly_summary.xlsx"
			} else {
				data, err = persistence.ExportMonthlyCSV(buckets)
				name = "monthly_summary.csv"
			}
		default:
			return fmt.Errorf("unknown export target %q", args[0])
		}
		if err != nil {
			return err
		}

		if exportFlags.out != "" {
			name = exportFlags.out
		}
		if err := os.WriteFile(name, data, 0o644); err != nil {
			return fmt.Errorf("write export file: %w", err)
		}
		fmt.Printf("%s に書き出しました。\n", name)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importFlags.mode, "mode", string(portfolioCommands.ImportModeMerge),
		"merge or replace")

	exportCmd.Flags().StringVar(&exportFlags.format, "format", "csv", "csv or xlsx")
	exportCmd.Flags().StringVar(&exportFlags.out, "out", "", "output file name")
	exportFilter.register(exportCmd)

	rootCmd.AddCommand(importCmd, exportCmd)
}
