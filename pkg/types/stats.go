package types

// HabitStats is the statistics record of one habit.
type HabitStats struct {
	ID               string   `json:"id" yaml:"id" toml:"id"`
	Name             string   `json:"name" yaml:"name" toml:"name"`
	Category         Category `json:"category" yaml:"category" toml:"category"`
	TotalCompletions int      `json:"total_completions" yaml:"total_completions" toml:"total_completions"`
	CurrentStreak    int      `json:"current_streak" yaml:"current_streak" toml:"current_streak"`
	BestStreak       int      `json:"best_streak" yaml:"best_streak" toml:"best_streak"`
	Rate7Days        float64  `json:"completion_rate_7_days" yaml:"completion_rate_7_days" toml:"completion_rate_7_days"`
	Rate30Days       float64  `json:"completion_rate_30_days" yaml:"completion_rate_30_days" toml:"completion_rate_30_days"`
	CreatedDate      Date     `json:"created_date" yaml:"created_date" toml:"created_date"`
	TargetFrequency  int      `json:"target_frequency" yaml:"target_frequency" toml:"target_frequency"`
}

// CategoryGroup lists the habits of one category in insertion order.
type CategoryGroup struct {
	Category Category `json:"category" yaml:"category" toml:"category"`
	Habits   []string `json:"habits" yaml:"habits" toml:"habits"`
}

// WeeklyEntry is one habit's line of the weekly report.
type WeeklyEntry struct {
	Name            string `json:"name" yaml:"name" toml:"name"`
	TargetFrequency int    `json:"target_frequency" yaml:"target_frequency" toml:"target_frequency"`
	Completions     int    `json:"completions" yaml:"completions" toml:"completions"`
	TargetMet       bool   `json:"target_met" yaml:"target_met" toml:"target_met"`
	CurrentStreak   int    `json:"current_streak" yaml:"current_streak" toml:"current_streak"`
}

// WeeklyReport covers the seven days from Start to End inclusive.
type WeeklyReport struct {
	Start   Date          `json:"start" yaml:"start" toml:"start"`
	End     Date          `json:"end" yaml:"end" toml:"end"`
	Entries []WeeklyEntry `json:"entries" yaml:"entries" toml:"entries"`
}

// MotivationTier classifies overall progress.
type MotivationTier string

// Motivation tiers, in selection priority order.
const (
	TierOnboarding      MotivationTier = "onboarding"
	TierFirstCompletion MotivationTier = "first-completion"
	TierEarlyMomentum   MotivationTier = "early-momentum"
	TierAllStreaks      MotivationTier = "all-streaks"
	TierGeneral         MotivationTier = "general-encouragement"
)

// EarlyMomentumThreshold is the completion count below which progress is
// still early momentum.
const EarlyMomentumThreshold = 10

// Motivation is the selected tier and the counters it was selected from.
type Motivation struct {
	Tier             MotivationTier `json:"tier" yaml:"tier" toml:"tier"`
	TotalHabits      int            `json:"total_habits" yaml:"total_habits" toml:"total_habits"`
	TotalCompletions int            `json:"total_completions" yaml:"total_completions" toml:"total_completions"`
	ActiveStreaks    int            `json:"active_streaks" yaml:"active_streaks" toml:"active_streaks"`
}

// ClassifyMotivation picks the first matching tier: no habits, no
// completions, fewer than EarlyMomentumThreshold completions, every habit
// on a streak, otherwise general encouragement.
func ClassifyMotivation(totalHabits, totalCompletions, activeStreaks int) Motivation {
	m := Motivation{
		TotalHabits:      totalHabits,
		TotalCompletions: totalCompletions,
		ActiveStreaks:    activeStreaks,
	}
	switch {
	case totalHabits == 0:
		m.Tier = TierOnboarding
	case totalCompletions == 0:
		m.Tier = TierFirstCompletion
	case totalCompletions < EarlyMomentumThreshold:
		m.Tier = TierEarlyMomentum
	case activeStreaks == totalHabits:
		m.Tier = TierAllStreaks
	default:
		m.Tier = TierGeneral
	}
	return m
}
