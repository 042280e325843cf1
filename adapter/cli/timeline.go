package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	portfolioQueries "github.com/genbaworks/genba/internal/portfolio/application/queries"
	sharedDomain "github.com/genbaworks/genba/internal/shared/domain"
)

// chartWidth is the number of character cells a chart's date domain is
// mapped onto.
const chartWidth = 60

var timelineFilter filterFlags

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Render the portfolio timeline",
	Long: `Render each project's planned span as a bar over the fiscal
year, with risk markers and a today line.

Examples:
  genba timeline
  genba timeline --fy 2025 --status 施工中`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("data directory is not available")
		}

		timeline, err := app.GetTimelineHandler.Handle(cmd.Context(), portfolioQueries.GetTimelineQuery{
			Filter:           timelineFilter.state(cmd),
			FiscalStartMonth: fiscalStartMonth(),
			Today:            reportingDate(),
		})
		if err != nil {
			return err
		}

		fmt.Println("\n  🗓  タイムライン")
		fmt.Println("  " + separator(58))
		if len(timeline.Bars) == 0 {
			fmt.Println("    表示できる案件がありません。")
			return nil
		}

		for _, bar := range timeline.Bars {
			marker := bar.RiskMarker
			if marker == "" {
				marker = "  "
			}
			fmt.Printf("    %s %-20s %s  %s〜%s %s\n",
				marker,
				truncateName(bar.Name, 20),
				renderSpan(timeline.Axis, bar.Start, bar.End),
				bar.Start.Format("01/02"),
				bar.End.Format("01/02"),
				bar.ProgressLabel,
			)
		}
		printAxisScale(timeline.Axis)
		if timeline.Today != nil {
			fmt.Printf("    本日: %s\n", timeline.Today.Format("2006-01-02"))
		}
		return nil
	},
}

var scheduleFilter filterFlags

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Render planned versus actual schedules",
	Long: `Render each project's planned bar with its actual span below,
exposing slips against plan.

Examples:
  genba schedule --fy 2025`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("data directory is not available")
		}

		schedule, err := app.GetScheduleHandler.Handle(cmd.Context(), portfolioQueries.GetScheduleQuery{
			Filter:           scheduleFilter.state(cmd),
			FiscalStartMonth: fiscalStartMonth(),
			Today:            reportingDate(),
		})
		if err != nil {
			return err
		}

		fmt.Println("\n  🗓  進捗スケジュール")
		fmt.Println("  " + separator(58))
		if len(schedule.Bars) == 0 {
			fmt.Println("    表示できる案件がありません。")
			return nil
		}

		for _, bar := range schedule.Bars {
			fmt.Printf("    予定 %-18s %s\n",
				truncateName(bar.Name, 18),
				renderSpan(schedule.Axis, bar.PlannedStart, bar.PlannedEnd),
			)
			if bar.ActualStart != nil && bar.ActualEnd != nil {
				fmt.Printf("    実績 %-18s %s\n", "",
					renderSpan(schedule.Axis, *bar.ActualStart, *bar.ActualEnd))
			}
		}
		printAxisScale(schedule.Axis)
		return nil
	},
}

var ganttFilter filterFlags

var ganttCmd = &cobra.Command{
	Use:   "gantt",
	Short: "Render the compact project bar chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("data directory is not available")
		}

		gantt, err := app.GetGanttHandler.Handle(cmd.Context(), portfolioQueries.GetGanttQuery{
			Filter: ganttFilter.state(cmd),
			Today:  reportingDate(),
		})
		if errors.Is(err, sharedDomain.ErrNoValidDates) {
			fmt.Println("着工日と竣工日の揃った案件がありません。")
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Println("\n  📐 ガントチャート")
		fmt.Println("  " + separator(58))
		for _, bar := range gantt.Bars {
			fmt.Printf("    %-20s %s  %d日\n",
				truncateName(bar.Name, 20),
				renderSpan(gantt.Axis, bar.Start, bar.End),
				bar.DurationDays,
			)
		}
		printAxisScale(gantt.Axis)
		return nil
	},
}

// renderSpan maps a date span onto the axis domain as a cell bar.
func renderSpan(axis sharedDomain.AxisMarks, start, end time.Time) string {
	domainDays := int(axis.DomainEnd.Sub(axis.DomainStart).Hours()/24) + 1
	if domainDays < 1 {
		domainDays = 1
	}
	cell := func(t time.Time) int {
		d := int(t.Sub(axis.DomainStart).Hours() / 24)
		pos := d * chartWidth / domainDays
		if pos < 0 {
			return 0
		}
		if pos >= chartWidth {
			return chartWidth - 1
		}
		return pos
	}

	from, to := cell(start), cell(end)
	cells := make([]rune, chartWidth)
	for i := range cells {
		switch {
		case i >= from && i <= to:
			cells[i] = '█'
		default:
			cells[i] = '·'
		}
	}
	return string(cells)
}

// printAxisScale prints the major tick months under a chart.
func printAxisScale(axis sharedDomain.AxisMarks) {
	if len(axis.Major) == 0 {
		return
	}
	first := axis.Major[0]
	last := axis.Major[len(axis.Major)-1]
	fmt.Printf("    %-28s%30s\n", first.Format("2006-01"), last.Format("2006-01"))
}

func truncateName(name string, max int) string {
	runes := []rune(name)
	if len(runes) <= max {
		return name
	}
	return string(runes[:max-1]) + "…"
}

func init() {
	timelineFilter.register(timelineCmd)
	scheduleFilter.register(scheduleCmd)
	ganttFilter.register(ganttCmd)
	rootCmd.AddCommand(timelineCmd, scheduleCmd, ganttCmd)
}
