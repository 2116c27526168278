package types

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Frequency bounds: completions per seven-day window.
const (
	MinTargetFrequency = 1
	MaxTargetFrequency = 7
)

// Habit is one tracked activity and its completion history. Streaks are
// recomputed after every mutation and cached.
type Habit struct {
	ID              string   // UUID v7, generated on creation.
	Name            string   // Unique, immutable; the registry key.
	Description     string   // Free-form display text.
	Category        Category // One of Categories().
	TargetFrequency int      // Completions per week, in [1,7].
	CreatedDate     Date     // Day of registration.

	completions map[Date]struct{}
	current     int
	best        int
}

// NewHabit returns a habit with an empty history. It does not validate its
// arguments; the tracker does that before storing a habit.
func NewHabit(name, description string, category Category, targetFrequency int, created Date) *Habit {
	return &Habit{
		ID:              uuid.Must(uuid.NewV7()).String(),
		Name:            name,
		Description:     description,
		Category:        category,
		TargetFrequency: targetFrequency,
		CreatedDate:     created,
		completions:     make(map[Date]struct{}),
	}
}

// MarkCompletion logs d. It returns false, leaving the habit unchanged,
// when d is already logged.
func (h *Habit) MarkCompletion(d Date) bool {
	if h.completions == nil {
		h.completions = make(map[Date]struct{})
	}
	if _, ok := h.completions[d]; ok {
		return false
	}
	h.completions[d] = struct{}{}
	h.recomputeStreaks()
	return true
}

// MarkCompletionText logs the date given as YYYY-MM-DD text, or today when
// text is blank. Malformed text returns ErrInvalidDateFormat.
func (h *Habit) MarkCompletionText(text string, today Date) (bool, error) {
	d := today
	if strings.TrimSpace(text) != "" {
		parsed, err := ParseDate(text)
		if err != nil {
			return false, err
		}
		d = parsed
	}
	return h.MarkCompletion(d), nil
}

// Completed reports whether d is logged.
func (h *Habit) Completed(d Date) bool {
	_, ok := h.completions[d]
	return ok
}

// CompletionDates returns the logged dates in ascending order.
func (h *Habit) CompletionDates() []Date {
	dates := make([]Date, 0, len(h.completions))
	for d := range h.completions {
		dates = append(dates, d)
	}
	slices.SortFunc(dates, func(a, b Date) int { return a.days - b.days })
	return dates
}

// TotalCompletions returns the number of logged dates.
func (h *Habit) TotalCompletions() int { return len(h.completions) }

// CurrentStreak returns the length of the run of consecutive days ending at
// the most recent logged date, regardless of how long ago that was.
func (h *Habit) CurrentStreak() int { return h.current }

// BestStreak returns the longest run of consecutive logged days.
func (h *Habit) BestStreak() int { return h.best }

// LastCompletion returns the most recent logged date; ok is false when the
// history is empty.
func (h *Habit) LastCompletion() (last Date, ok bool) {
	for d := range h.completions {
		if !ok || d.After(last) {
			last, ok = d, true
		}
	}
	return last, ok
}

// CompletionsBetween counts logged dates in [start, end].
func (h *Habit) CompletionsBetween(start, end Date) int {
	n := 0
	for d := range h.completions {
		if d.Between(start, end) {
			n++
		}
	}
	return n
}

// CompletionRate returns the percentage of the days-long window ending at
// today (inclusive) that has a logged completion. days below 1 count as 1.
// The result is in [0,100] and is not rounded.
func (h *Habit) CompletionRate(days int, today Date) float64 {
	if days < 1 {
		days = 1
	}
	start := today.AddDays(-(days - 1))
	return 100 * float64(h.CompletionsBetween(start, today)) / float64(days)
}

// String renders the habit as "name (category): description".
func (h *Habit) String() string {
	return fmt.Sprintf("%s (%s): %s", h.Name, h.Category, h.Description)
}

func (h *Habit) recomputeStreaks() {
	dates := h.CompletionDates()
	if len(dates) == 0 {
		h.current, h.best = 0, 0
		return
	}
	run, best := 1, 1
	for i := 1; i < len(dates); i++ {
		if dates[i].DaysSince(dates[i-1]) == 1 {
			run++
		} else {
			run = 1
		}
		best = max(best, run)
	}
	h.current, h.best = run, best
}

// StreakPolicy decides how a stale streak is reported.
type StreakPolicy string

// Streak policies.
const (
	// StreakLastLogged reports the streak as of the most recent logged date.
	StreakLastLogged StreakPolicy = "last-logged"
	// StreakActive reports zero once more than one day has passed since the
	// most recent logged date.
	StreakActive StreakPolicy = "active"
)

// Valid reports whether p is a known policy.
func (p StreakPolicy) Valid() bool {
	return p == StreakLastLogged || p == StreakActive
}

// Current returns h's current streak under p as seen on today. An unknown
// policy behaves like StreakLastLogged.
func (p StreakPolicy) Current(h *Habit, today Date) int {
	if p != StreakActive {
		return h.CurrentStreak()
	}
	last, ok := h.LastCompletion()
	if !ok || today.DaysSince(last) > 1 {
		return 0
	}
	return h.CurrentStreak()
}
