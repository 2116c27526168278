package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/habits/pkg/types"
)

func TestReadScenario(t *testing.T) {
	r := newTestRegistry(t, WithClock(fixedClock(2024, time.January, 7)))
	mustAdd(t, r, "Read", types.CategoryLearning, 7)
	for _, d := range []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"} {
		require.NoError(t, r.MarkHabitComplete("Read", d))
	}

	stats, err := r.HabitStatistics("Read")
	require.NoError(t, err)
	assert.Equal(t, "Read", stats.Name)
	assert.Equal(t, types.CategoryLearning, stats.Category)
	assert.Equal(t, 5, stats.TotalCompletions)
	assert.Equal(t, 5, stats.BestStreak)
	assert.Equal(t, 5, stats.CurrentStreak)
	// Window 2024-01-01..2024-01-07 holds all five completions.
	assert.InDelta(t, 100*5.0/7, stats.Rate7Days, 1e-9)
	assert.InDelta(t, 100*5.0/30, stats.Rate30Days, 1e-9)
	assert.Equal(t, types.NewDate(2024, time.January, 7), stats.CreatedDate)
	assert.Equal(t, 7, stats.TargetFrequency)
}

func TestHabitStatisticsNotFound(t *testing.T) {
	r := newTestRegistry(t)
	_, err := r.HabitStatistics("missing")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestHabitStatisticsAppliesStreakPolicy(t *testing.T) {
	for _, tt := range []struct {
		policy types.StreakPolicy
		want   int
	}{
		{policy: types.StreakLastLogged, want: 2},
		{policy: types.StreakActive, want: 0},
	} {
		t.Run(string(tt.policy), func(t *testing.T) {
			r := newTestRegistry(t, WithStreakPolicy(tt.policy))
			mustAdd(t, r, "Run", types.CategoryHealth, 3)
			require.NoError(t, r.MarkHabitComplete("Run", "2023-12-01"))
			require.NoError(t, r.MarkHabitComplete("Run", "2023-12-02"))

			stats, err := r.HabitStatistics("Run")
			require.NoError(t, err)
			assert.Equal(t, tt.want, stats.CurrentStreak)
			assert.Equal(t, 2, stats.BestStreak, "best streak ignores policy")
		})
	}
}

func TestAllHabitsSummary(t *testing.T) {
	r := newTestRegistry(t)
	assert.Empty(t, r.AllHabitsSummary())
	assert.NotNil(t, r.AllHabitsSummary())

	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		mustAdd(t, r, name, types.CategoryProductivity, 2)
	}
	require.NoError(t, r.MarkHabitComplete("Alpha", ""))

	summary := r.AllHabitsSummary()
	require.Len(t, summary, 3)
	assert.Equal(t, "Zeta", summary[0].Name)
	assert.Equal(t, "Alpha", summary[1].Name)
	assert.Equal(t, "Mid", summary[2].Name)
	assert.Equal(t, 1, summary[1].TotalCompletions)
}

func TestHabitsByCategory(t *testing.T) {
	r := newTestRegistry(t)
	assert.Empty(t, r.HabitsByCategory())

	mustAdd(t, r, "Run", types.CategoryHealth, 3)
	mustAdd(t, r, "Read", types.CategoryLearning, 7)
	mustAdd(t, r, "Stretch", types.CategoryHealth, 5)
	mustAdd(t, r, "Paint", types.CategoryHobbies, 1)

	groups := r.HabitsByCategory()
	assert.Equal(t, map[types.Category][]string{
		types.CategoryHealth:   {"Run", "Stretch"},
		types.CategoryLearning: {"Read"},
		types.CategoryHobbies:  {"Paint"},
	}, groups)
	_, ok := groups[types.CategorySocial]
	assert.False(t, ok, "empty categories are absent")

	total := 0
	for _, names := range groups {
		total += len(names)
	}
	assert.Equal(t, r.Len(), total)

	ordered := r.CategoryGroups()
	require.Len(t, ordered, 3)
	assert.Equal(t, types.CategoryHealth, ordered[0].Category)
	assert.Equal(t, types.CategoryLearning, ordered[1].Category)
	assert.Equal(t, types.CategoryHobbies, ordered[2].Category)
}

func TestWeeklyReport(t *testing.T) {
	r := newTestRegistry(t, WithClock(fixedClock(2024, time.January, 10)))
	mustAdd(t, r, "Run", types.CategoryHealth, 3)
	mustAdd(t, r, "Read", types.CategoryLearning, 7)
	mustAdd(t, r, "Call", types.CategorySocial, 1)

	// Window is 2024-01-04..2024-01-10.
	for _, d := range []string{"2024-01-03", "2024-01-04", "2024-01-08", "2024-01-10"} {
		require.NoError(t, r.MarkHabitComplete("Run", d))
	}
	for _, d := range []string{"2024-01-09", "2024-01-10"} {
		require.NoError(t, r.MarkHabitComplete("Read", d))
	}

	report := r.WeeklyReport()
	assert.Equal(t, types.NewDate(2024, time.January, 4), report.Start)
	assert.Equal(t, types.NewDate(2024, time.January, 10), report.End)
	require.Len(t, report.Entries, 3)

	assert.Equal(t, types.WeeklyEntry{Name: "Run", TargetFrequency: 3, Completions: 3, TargetMet: true, CurrentStreak: 1}, report.Entries[0])
	assert.Equal(t, types.WeeklyEntry{Name: "Read", TargetFrequency: 7, Completions: 2, TargetMet: false, CurrentStreak: 2}, report.Entries[1])
	assert.Equal(t, types.WeeklyEntry{Name: "Call", TargetFrequency: 1, Completions: 0, TargetMet: false, CurrentStreak: 0}, report.Entries[2])
}

func TestMotivation(t *testing.T) {
	r := newTestRegistry(t)
	assert.Equal(t, types.TierOnboarding, r.Motivation().Tier)

	mustAdd(t, r, "Run", types.CategoryHealth, 3)
	mustAdd(t, r, "Read", types.CategoryLearning, 7)
	assert.Equal(t, types.TierFirstCompletion, r.Motivation().Tier)

	start := types.NewDate(2023, time.December, 27)
	for i := 0; i < 5; i++ {
		require.NoError(t, r.MarkHabitComplete("Run", start.AddDays(i).String()))
	}
	assert.Equal(t, types.TierEarlyMomentum, r.Motivation().Tier)

	for i := 0; i < 5; i++ {
		require.NoError(t, r.MarkHabitComplete("Read", start.AddDays(i).String()))
	}
	m := r.Motivation()
	assert.Equal(t, types.TierAllStreaks, m.Tier)
	assert.Equal(t, 10, m.TotalCompletions)
	assert.Equal(t, 2, m.ActiveStreaks)

	mustAdd(t, r, "Call", types.CategorySocial, 1)
	assert.Equal(t, types.TierGeneral, r.Motivation().Tier, "a habit without a streak breaks all-streaks")
}

func TestMotivationUnderActivePolicy(t *testing.T) {
	r := newTestRegistry(t, WithStreakPolicy(types.StreakActive))
	mustAdd(t, r, "Run", types.CategoryHealth, 3)
	start := types.NewDate(2023, time.December, 1)
	for i := 0; i < 12; i++ {
		require.NoError(t, r.MarkHabitComplete("Run", start.AddDays(i).String()))
	}
	// Last completion 2023-12-12 is stale on 2024-01-05.
	m := r.Motivation()
	assert.Equal(t, 0, m.ActiveStreaks)
	assert.Equal(t, types.TierGeneral, m.Tier)
}
