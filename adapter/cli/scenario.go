package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	scenarioCommands "github.com/genbaworks/genba/internal/scenario/application/commands"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Compare schedule scenarios",
}

var scenarioListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the scenarios and their tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("data directory is not available")
		}

		comparisons, err := app.CompareScenariosHandler.Handle(cmd.Context())
		if err != nil {
			return err
		}

		for _, c := range comparisons {
			fmt.Printf("\n  📑 %s\n", c.Scenario.Name)
			fmt.Println("  " + separator(58))
			for _, task := range c.Scenario.Tasks {
				fmt.Printf("    %-16s %s〜%s  進捗 %s  リスク %s\n",
					truncateName(task.Name, 16),
					formatDate(task.Start),
					formatDate(task.Finish),
					formatPct(task.ProgressPct),
					task.RiskLevel,
				)
			}
		}
		return nil
	},
}

var scenarioCompareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the scenarios' metrics side by side",
	Long: `Summarize every scenario: span, average progress, budget and
actual cost totals, variance and the critical (longest) task, plus the
value-chain cost rollup.

Examples:
  genba scenario compare`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("data directory is not available")
		}

		comparisons, err := app.CompareScenariosHandler.Handle(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println("\n  ⚖️  シナリオ比較")
		fmt.Println("  " + separator(58))
		for _, c := range comparisons {
			m := c.Metrics
			fmt.Printf("    %s\n", c.Scenario.Name)
			fmt.Printf("      期間       %s 〜 %s (%d日)\n", m.StartDate, m.EndDate, m.DurationDays)
			fmt.Printf("      平均進捗   %s\n", formatPct(m.AvgProgressPct))
			fmt.Printf("      予算/実績  %s / %s (差異 %s)\n",
				formatAmount(m.TotalBudget), formatAmount(m.TotalActual), formatAmount(m.CostVariance))
			fmt.Printf("      クリティカル %s (%d日)\n", m.CriticalTask, m.CriticalDuration)
			if len(c.Costs) > 0 {
				fmt.Println("      工程別コスト:")
				for _, cost := range c.Costs {
					fmt.Printf("        %-10s 予算 %12s  実績 %12s\n",
						cost.Stage, formatAmount(cost.CostBudget), formatAmount(cost.CostActual))
				}
			}
		}
		return nil
	},
}

var scenarioUpdateFlags struct {
	scenario string
	task     string
	progress float64
	actual   float64
	risk     string
}

var scenarioUpdateCmd = &cobra.Command{
	Use:   "update-task",
	Short: "Update a task's progress, actual cost or risk",
	Long: `Update one task inside a scenario.

Examples:
  genba scenario update-task --scenario 現行計画 --task 躯体工事 --progress 45 --actual 12000000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("data directory is not available")
		}

		err := app.UpdateTaskHandler.Handle(cmd.Context(), scenarioCommands.UpdateTaskCommand{
			Scenario:    scenarioUpdateFlags.scenario,
			Task:        scenarioUpdateFlags.task,
			ProgressPct: scenarioUpdateFlags.progress,
			CostActual:  scenarioUpdateFlags.actual,
			RiskLevel:   scenarioUpdateFlags.risk,
		})
		if err != nil {
			return err
		}
		fmt.Printf("%s / %s を更新しました。\n", scenarioUpdateFlags.scenario, scenarioUpdateFlags.task)
		return nil
	},
}

var scenarioAddFlags struct {
	scenario   string
	task       string
	start      string
	finish     string
	department string
	stage      string
	budget     float64
}

var scenarioAddCmd = &cobra.Command{
	Use:   "add-task",
	Short: "Add a task to a scenario",
	Long: `Add a task to a scenario with its planned span and budget.

Examples:
  genba scenario add-task --scenario 短縮案 --task 追加検査 --start 2025-09-01 --finish 2025-09-05 --stage 検査`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("data directory is not available")
		}

		command := scenarioCommands.AddTaskCommand{
			Scenario:   scenarioAddFlags.scenario,
			Task:       scenarioAddFlags.task,
			Department: scenarioAddFlags.department,
			ValueChain: scenarioAddFlags.stage,
			CostBudget: scenarioAddFlags.budget,
		}
		if t, err := time.ParseInLocation("2006-01-02", scenarioAddFlags.start, time.UTC); err == nil {
			command.Start = &t
		}
		if t, err := time.ParseInLocation("2006-01-02", scenarioAddFlags.finish, time.UTC); err == nil {
			command.Finish = &t
		}

		err := app.AddTaskHandler.Handle(cmd.Context(), command)
		if err != nil {
			return err
		}
		fmt.Printf("%s に %s を追加しました。\n", scenarioAddFlags.scenario, scenarioAddFlags.task)
		return nil
	},
}

func init() {
	addFlags := scenarioAddCmd.Flags()
	addFlags.StringVar(&scenarioAddFlags.scenario, "scenario", "", "scenario name")
	addFlags.StringVar(&scenarioAddFlags.task, "task", "", "task name")
	addFlags.StringVar(&scenarioAddFlags.start, "start", "", "start date (YYYY-MM-DD)")
	addFlags.StringVar(&scenarioAddFlags.finish, "finish", "", "finish date (YYYY-MM-DD)")
	addFlags.StringVar(&scenarioAddFlags.department, "department", "", "department")
	addFlags.StringVar(&scenarioAddFlags.stage, "stage", "", "value-chain stage")
	addFlags.Float64Var(&scenarioAddFlags.budget, "budget", 0, "budget cost")
	_ = scenarioAddCmd.MarkFlagRequired("scenario")
	_ = scenarioAddCmd.MarkFlagRequired("task")

	flags := scenarioUpdateCmd.Flags()
	flags.StringVar(&scenarioUpdateFlags.scenario, "scenario", "", "scenario name")
	flags.StringVar(&scenarioUpdateFlags.task, "task", "", "task name")
	flags.Float64Var(&scenarioUpdateFlags.progress, "progress", 0, "progress percent")
	flags.Float64Var(&scenarioUpdateFlags.actual, "actual", 0, "actual cost")
	flags.StringVar(&scenarioUpdateFlags.risk, "risk", "", "risk level (低/中/高)")
	_ = scenarioUpdateCmd.MarkFlagRequired("scenario")
	_ = scenarioUpdateCmd.MarkFlagRequired("task")

	scenarioCmd.AddCommand(scenarioListCmd, scenarioCompareCmd, scenarioUpdateCmd, scenarioAddCmd)
	rootCmd.AddCommand(scenarioCmd)
}
