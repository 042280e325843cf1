package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	portfolioQueries "github.com/genbaworks/genba/internal/portfolio/application/queries"
	"github.com/genbaworks/genba/internal/portfolio/domain"
)

var dashboardFilter filterFlags

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the portfolio dashboard",
	Long: `Display the filtered portfolio's headline figures, the fiscal
year's monthly aggregation and the resource rollups.

Examples:
  genba dashboard
  genba dashboard --fy 2025 --status 施工中
  genba dashboard --client 金子技建 --search 橋脚`,
	Aliases: []string{"dash"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("data directory is not available")
		}

		filter := dashboardFilter.state(cmd)
		today := reportingDate()

		summary, err := app.GetPortfolioSummaryHandler.Handle(cmd.Context(), portfolioQueries.GetPortfolioSummaryQuery{
			Filter: filter,
			Today:  today,
		})
		if err != nil {
			return err
		}

		fmt.Printf("\n  📊 建設ポートフォリオ  (%s 時点)\n", today.Format("2006-01-02"))
		fmt.Println("  " + strings.Repeat("═", 58))
		fmt.Printf("    案件数       %d\n", summary.ProjectCount)
		fmt.Printf("    受注金額合計 %s\n", formatAmount(summary.TotalOrderAmount))
		fmt.Printf("    粗利額合計   %s\n", formatAmount(summary.TotalGrossProfit))
		fmt.Printf("    平均粗利率   %s\n", formatPct(summary.AvgGrossMarginPct))
		fmt.Printf("    高リスク     %d 件\n", summary.HighRiskCount)
		fmt.Printf("    遅延         %d 件\n", summary.DelayedCount)

		if err := showMonthlySummary(cmd, filter); err != nil {
			return err
		}
		return showResources(cmd, filter)
	},
}

func showMonthlySummary(cmd *cobra.Command, filter domain.FilterState) error {
	app := GetApp()
	buckets, err := app.GetMonthlySummaryHandler.Handle(cmd.Context(), portfolioQueries.GetMonthlySummaryQuery{
		Filter:           filter,
		FiscalStartMonth: fiscalStartMonth(),
		Today:            reportingDate(),
	})
	if err != nil {
		return err
	}

	fmt.Println("\n  📅 月次集計")
	fmt.Println("  " + separator(58))
	fmt.Println("    年月     受注金額      予定原価      粗利        累計CF")
	for _, b := range buckets {
		fmt.Printf("    %s  %12s  %12s  %10s  %12s\n",
			b.MonthStart.Format("2006-01"),
			formatAmount(b.Revenue),
			formatAmount(b.PlannedCost),
			formatAmount(b.GrossProfit),
			formatAmount(b.CumulativeCashFlow),
		)
	}
	return nil
}

func showResources(cmd *cobra.Command, filter domain.FilterState) error {
	app := GetApp()
	summary, err := app.SummarizeResourcesHandler.Handle(cmd.Context(), portfolioQueries.SummarizeResourcesQuery{
		Filter: filter,
		Today:  reportingDate(),
	})
	if err != nil {
		return err
	}

	fmt.Println("\n  👷 リソース負荷")
	fmt.Println("  " + separator(58))
	if len(summary.Managers) == 0 && len(summary.Partners) == 0 {
		fmt.Println("    対象データがありません。")
		return nil
	}
	for _, load := range summary.Managers {
		fmt.Printf("    担当 %-12s %5.1f 人月\n", load.Name, load.Headcount)
	}
	for _, load := range summary.Partners {
		fmt.Printf("    協力 %-12s %5.1f 人月\n", load.Name, load.Headcount)
	}
	return nil
}

func init() {
	dashboardFilter.register(dashboardCmd)
	rootCmd.AddCommand(dashboardCmd)
}
