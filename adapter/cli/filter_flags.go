package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/genbaworks/genba/internal/portfolio/domain"
)

// filterFlags binds the shared portfolio filter options to a command.
type filterFlags struct {
	fiscalYear int
	from       string
	to         string

	status    []string
	category  []string
	client    []string
	manager   []string
	location  []string
	searchOr  bool
	search    string
	marginMin float64
	marginMax float64
	useMargin bool
}

func (f *filterFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVar(&f.fiscalYear, "fy", 0, "fiscal year (default: the one today falls in)")
	flags.StringVar(&f.from, "from", "", "period start (YYYY-MM-DD)")
	flags.StringVar(&f.to, "to", "", "period end (YYYY-MM-DD)")
	flags.StringSliceVar(&f.status, "status", nil, "status filter (repeatable)")
	flags.StringSliceVar(&f.category, "category", nil, "category filter (repeatable)")
	flags.StringSliceVar(&f.client, "client", nil, "client filter (repeatable)")
	flags.StringSliceVar(&f.manager, "manager", nil, "manager filter (repeatable)")
	flags.StringSliceVar(&f.location, "location", nil, "location filter (repeatable)")
	flags.StringVar(&f.search, "search", "", "text search over project name and client")
	flags.BoolVar(&f.searchOr, "any", false, "match any facet instead of all")
	flags.Float64Var(&f.marginMin, "margin-min", 0, "minimum gross margin percent")
	flags.Float64Var(&f.marginMax, "margin-max", 0, "maximum gross margin percent")
}

func (f *filterFlags) state(cmd *cobra.Command) domain.FilterState {
	state := domain.FilterState{
		FiscalYear: f.fiscalYear,
		Status:     f.status,
		Category:   f.category,
		Client:     f.client,
		Manager:    f.manager,
		Location:   f.location,
		SearchText: f.search,
		Mode:       domain.FilterModeAnd,
	}
	if f.searchOr {
		state.Mode = domain.FilterModeOr
	}
	if t, err := time.ParseInLocation("2006-01-02", f.from, time.UTC); err == nil && f.from != "" {
		state.PeriodFrom = &t
	}
	if t, err := time.ParseInLocation("2006-01-02", f.to, time.UTC); err == nil && f.to != "" {
		state.PeriodTo = &t
	}
	if cmd.Flags().Changed("margin-min") || cmd.Flags().Changed("margin-max") {
		state.HasMargin = true
		state.MarginMin = f.marginMin
		state.MarginMax = f.marginMax
		if !cmd.Flags().Changed("margin-max") {
			state.MarginMax = 100
		}
		if !cmd.Flags().Changed("margin-min") {
			state.MarginMin = -100
		}
	}
	return state
}
