package domain

import "sort"

// ResourceLoad is the summed average monthly headcount attributed to one
// manager or partner company.
type ResourceLoad struct {
	Name      string
	Headcount float64
}

// SummarizeResources rolls up headcount by manager and by partner
// company, each sorted by descending load.
func SummarizeResources(projects []EnrichedProject) (managers, partners []ResourceLoad) {
	managers = rollupHeadcount(projects, func(p *EnrichedProject) string { return p.Manager })
	partners = rollupHeadcount(projects, func(p *EnrichedProject) string { return p.Partner })
	return managers, partners
}

func rollupHeadcount(projects []EnrichedProject, key func(*EnrichedProject) string) []ResourceLoad {
	totals := make(map[string]float64)
	order := make([]string, 0, len(projects))
	for i := range projects {
		name := key(&projects[i])
		if name == "" {
			continue
		}
		if _, ok := totals[name]; !ok {
			order = append(order, name)
		}
		totals[name] += projects[i].AvgMonthlyHeadcount
	}

	loads := make([]ResourceLoad, 0, len(order))
	for _, name := range order {
		loads = append(loads, ResourceLoad{Name: name, Headcount: totals[name]})
	}
	sort.SliceStable(loads, func(i, j int) bool {
		return loads[i].Headcount > loads[j].Headcount
	})
	return loads
}
