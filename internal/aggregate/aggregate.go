package aggregate

import (
	"sort"

	"fieldmap/internal/model"
)

// TopN is the ranking and entity-trend truncation size.
const TopN = 5

// SpecLine is one product line item within a grouped project.
type SpecLine struct {
	ProductName string  `json:"productName"`
	Quantity    float64 `json:"quantity"`
	Amount      float64 `json:"amount"`
}

// GroupedProject is one project's rollup. Representative metadata comes from
// the first record encountered for the project.
type GroupedProject struct {
	ProjectName string     `json:"projectName"`
	Address     string     `json:"address"`
	Latitude    *float64   `json:"latitude"`
	Longitude   *float64   `json:"longitude"`
	Designer    string     `json:"designer"`
	Constructor string     `json:"constructor"`
	Progress    string     `json:"progress"`
	Specs       []SpecLine `json:"specs"`
	TotalAmount float64    `json:"totalAmount"`
}

// RankEntry is one entity's summed amount in a leaderboard.
type RankEntry struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Summary is the aggregate view over the filtered record set.
type Summary struct {
	ProjectCount       int         `json:"projectCount"`
	TotalAmount        float64     `json:"totalAmount"`
	MissingCoordinates int         `json:"missingCoordinates"` // projects without a mappable position
	TopConstructors    []RankEntry `json:"topConstructors"`
	TopDesigners       []RankEntry `json:"topDesigners"`
}

// Filter returns the records passing the year/month filters (0 = all).
func Filter(records []*model.CanonicalRecord, year, month int) []*model.CanonicalRecord {
	filtered := make([]*model.CanonicalRecord, 0, len(records))
	for _, r := range records {
		if year != model.YearAll && r.Year != year {
			continue
		}
		if month != model.MonthAll && r.Month != month {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// GroupProjects partitions filtered records by project name, in first-seen
// order. Every record contributes one spec line; totalAmount is the sum of
// the partition's spec amounts.
func GroupProjects(filtered []*model.CanonicalRecord) []*GroupedProject {
	byName := make(map[string]*GroupedProject)
	groups := make([]*GroupedProject, 0)

	for _, r := range filtered {
		group, ok := byName[r.ProjectName]
		if !ok {
			group = &GroupedProject{
				ProjectName: r.ProjectName,
				Address:     r.Address,
				Latitude:    r.Latitude,
				Longitude:   r.Longitude,
				Designer:    r.Designer,
				Constructor: r.Constructor,
				Progress:    r.Progress,
				Specs:       make([]SpecLine, 0, 1),
			}
			byName[r.ProjectName] = group
			groups = append(groups, group)
		}
		group.Specs = append(group.Specs, SpecLine{
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
			Amount:      r.SpecAmount,
		})
		group.TotalAmount += r.SpecAmount
	}
	return groups
}

// Summarize computes the aggregate view for an already-filtered record set.
// An empty input yields zero counts and empty leaderboards, never an error.
func Summarize(filtered []*model.CanonicalRecord) Summary {
	groups := GroupProjects(filtered)

	summary := Summary{
		ProjectCount:    len(groups),
		TopConstructors: rankBy(filtered, func(r *model.CanonicalRecord) string { return r.Constructor }),
		TopDesigners:    rankBy(filtered, func(r *model.CanonicalRecord) string { return r.Designer }),
	}
	for _, r := range filtered {
		summary.TotalAmount += r.SpecAmount
	}
	for _, g := range groups {
		if g.Latitude == nil || g.Longitude == nil {
			summary.MissingCoordinates++
		}
	}
	return summary
}

// rankBy sums spec amount per entity over the filtered set, substituting the
// catch-all bucket for placeholder values, sorted descending with first-seen
// insertion order breaking ties, truncated to TopN.
func rankBy(filtered []*model.CanonicalRecord, key func(*model.CanonicalRecord) string) []RankEntry {
	totals := make(map[string]float64)
	order := make([]string, 0)

	for _, r := range filtered {
		name := key(r)
		if name == model.Placeholder {
			name = model.CatchAllBucket
		}
		if _, ok := totals[name]; !ok {
			order = append(order, name)
		}
		totals[name] += r.SpecAmount
	}

	entries := make([]RankEntry, 0, len(order))
	for _, name := range order {
		entries = append(entries, RankEntry{Name: name, Amount: totals[name]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Amount > entries[j].Amount
	})
	if len(entries) > TopN {
		entries = entries[:TopN]
	}
	return entries
}
