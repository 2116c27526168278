package registry

import (
	"github.com/mesh-intelligence/habits/pkg/types"
)

// Rate windows reported by HabitStatistics.
const (
	weekDays  = 7
	monthDays = 30
)

// HabitStatistics returns the stats record of the named habit.
func (r *Registry) HabitStatistics(name string) (types.HabitStats, error) {
	h, err := r.Habit(name)
	if err != nil {
		return types.HabitStats{}, err
	}
	return r.stats(h, r.Today()), nil
}

func (r *Registry) stats(h *types.Habit, today types.Date) types.HabitStats {
	return types.HabitStats{
		ID:               h.ID,
		Name:             h.Name,
		Category:         h.Category,
		TotalCompletions: h.TotalCompletions(),
		CurrentStreak:    r.policy.Current(h, today),
		BestStreak:       h.BestStreak(),
		Rate7Days:        h.CompletionRate(weekDays, today),
		Rate30Days:       h.CompletionRate(monthDays, today),
		CreatedDate:      h.CreatedDate,
		TargetFrequency:  h.TargetFrequency,
	}
}

// AllHabitsSummary returns one stats record per habit in insertion order.
func (r *Registry) AllHabitsSummary() []types.HabitStats {
	today := r.Today()
	out := make([]types.HabitStats, 0, r.Len())
	r.each(func(h *types.Habit) {
		out = append(out, r.stats(h, today))
	})
	return out
}

// HabitsByCategory groups habit names by category in insertion order.
// Categories without habits are absent.
func (r *Registry) HabitsByCategory() map[types.Category][]string {
	groups := make(map[types.Category][]string)
	r.each(func(h *types.Habit) {
		groups[h.Category] = append(groups[h.Category], h.Name)
	})
	return groups
}

// CategoryGroups returns the non-empty groups in fixed category order.
func (r *Registry) CategoryGroups() []types.CategoryGroup {
	byCategory := r.HabitsByCategory()
	var out []types.CategoryGroup
	for _, c := range types.Categories() {
		if names, ok := byCategory[c]; ok {
			out = append(out, types.CategoryGroup{Category: c, Habits: names})
		}
	}
	return out
}

// WeeklyReport counts each habit's completions over the trailing seven days,
// today inclusive, against its target frequency.
func (r *Registry) WeeklyReport() types.WeeklyReport {
	end := r.Today()
	start := end.AddDays(-(weekDays - 1))
	report := types.WeeklyReport{
		Start:   start,
		End:     end,
		Entries: make([]types.WeeklyEntry, 0, r.Len()),
	}
	r.each(func(h *types.Habit) {
		n := h.CompletionsBetween(start, end)
		report.Entries = append(report.Entries, types.WeeklyEntry{
			Name:            h.Name,
			TargetFrequency: h.TargetFrequency,
			Completions:     n,
			TargetMet:       n >= h.TargetFrequency,
			CurrentStreak:   r.policy.Current(h, end),
		})
	})
	return report
}

// Motivation classifies overall progress from aggregate counters.
func (r *Registry) Motivation() types.Motivation {
	today := r.Today()
	var completions, active int
	r.each(func(h *types.Habit) {
		completions += h.TotalCompletions()
		if r.policy.Current(h, today) > 0 {
			active++
		}
	})
	return types.ClassifyMotivation(r.Len(), completions, active)
}
