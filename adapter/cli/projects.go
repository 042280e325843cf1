package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	portfolioCommands "github.com/genbaworks/genba/internal/portfolio/application/commands"
	portfolioQueries "github.com/genbaworks/genba/internal/portfolio/application/queries"
	"github.com/genbaworks/genba/internal/portfolio/domain"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage the project table",
}

var projectsListFilter filterFlags

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the enriched project table",
	Long: `List every project surviving the filter, with the derived
metrics: gross profit, expected progress, delay and risk.

Examples:
  genba projects list
  genba projects list --status 施工中 --any
  genba projects list --search 橋脚`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("data directory is not available")
		}

		rows, err := app.ListProjectsHandler.Handle(cmd.Context(), portfolioQueries.ListProjectsQuery{
			Filter: projectsListFilter.state(cmd),
			Today:  reportingDate(),
		})
		if err != nil {
			return err
		}

		fmt.Printf("\n  📁 案件一覧  (%d 件)\n", len(rows))
		fmt.Println("  " + separator(58))
		for i := range rows {
			row := &rows[i]
			fmt.Printf("    %-5s %-24s %s\n", row.ID, truncateName(row.Name, 24), row.Status)
			fmt.Printf("          %s〜%s  受注 %s  粗利 %s  進捗 %s\n",
				formatDate(row.PlannedStart),
				formatDate(row.PlannedEnd),
				formatAmount(row.OrderAmount),
				formatAmount(row.GrossProfit),
				formatPct(row.ProgressPct),
			)
			if row.ComputedRiskLevel != domain.RiskLow || row.RiskComment != "安定" {
				fmt.Printf("          リスク %s: %s\n", row.ComputedRiskLevel, row.RiskComment)
			}
		}
		return nil
	},
}

var addProjectFlags struct {
	id       string
	name     string
	client   string
	category string
	status   string
	start    string
	end      string
	order    float64
	planned  float64
	budget   float64
	margin   float64
	manager  string
}

var projectsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a project",
	Long: `Add a project to the table. The ID is assigned automatically
unless --id is given.

Examples:
  genba projects add --name "新倉庫" --client 佐藤組 --start 2025-10-01 --end 2026-03-31 --order 50000000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("data directory is not available")
		}

		project := domain.Project{
			ID:             addProjectFlags.id,
			Name:           addProjectFlags.name,
			Client:         addProjectFlags.client,
			Category:       addProjectFlags.category,
			Status:         domain.Status(addProjectFlags.status),
			OrderAmount:    addProjectFlags.order,
			PlannedCost:    addProjectFlags.planned,
			BudgetCost:     addProjectFlags.budget,
			GrossMarginPct: addProjectFlags.margin,
			Manager:        addProjectFlags.manager,
		}
		if t, err := time.ParseInLocation("2006-01-02", addProjectFlags.start, time.UTC); err == nil {
			project.PlannedStart = &t
		}
		if t, err := time.ParseInLocation("2006-01-02", addProjectFlags.end, time.UTC); err == nil {
			project.PlannedEnd = &t
		}

		result, err := app.CreateProjectHandler.Handle(cmd.Context(), portfolioCommands.CreateProjectCommand{
			Project: project,
		})
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			fmt.Println("登録できません:")
			for _, message := range validationErr.Messages {
				fmt.Printf("  - %s\n", message)
			}
			return fmt.Errorf("project rejected")
		}
		if err != nil {
			return err
		}

		fmt.Printf("案件 %s を登録しました。\n", result.ID)
		return nil
	},
}

var projectsValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the stored table against the editing rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("data directory is not available")
		}

		report, err := app.ValidateProjectsHandler.Handle(cmd.Context())
		if err != nil {
			return err
		}

		if report.Valid {
			fmt.Println("✓ 問題は見つかりませんでした。")
			return nil
		}
		fmt.Printf("✗ %d 件の問題があります:\n", len(report.Messages))
		for _, message := range report.Messages {
			fmt.Printf("  - %s\n", message)
		}
		return fmt.Errorf("validation failed")
	},
}

func init() {
	projectsListFilter.register(projectsListCmd)

	flags := projectsAddCmd.Flags()
	flags.StringVar(&addProjectFlags.id, "id", "", "explicit project ID (default: next P-number)")
	flags.StringVar(&addProjectFlags.name, "name", "", "project name")
	flags.StringVar(&addProjectFlags.client, "client", "", "client company")
	flags.StringVar(&addProjectFlags.category, "category", "", "construction category")
	flags.StringVar(&addProjectFlags.status, "status", "見積", "order status")
	flags.StringVar(&addProjectFlags.start, "start", "", "planned start (YYYY-MM-DD)")
	flags.StringVar(&addProjectFlags.end, "end", "", "planned end (YYYY-MM-DD)")
	flags.Float64Var(&addProjectFlags.order, "order", 0, "order amount")
	flags.Float64Var(&addProjectFlags.planned, "planned-cost", 0, "planned cost")
	flags.Float64Var(&addProjectFlags.budget, "budget-cost", 0, "budget cost")
	flags.Float64Var(&addProjectFlags.margin, "margin", 0, "gross margin percent")
	flags.StringVar(&addProjectFlags.manager, "manager", "", "site manager")
	_ = projectsAddCmd.MarkFlagRequired("name")

	projectsCmd.AddCommand(projectsListCmd, projectsAddCmd, projectsValidateCmd)
	rootCmd.AddCommand(projectsCmd)
}
