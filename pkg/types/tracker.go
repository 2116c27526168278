package types

import "errors"

// Tracker owns the habits of one session, keyed by name, and derives
// cross-habit reports from them.
type Tracker interface {
	// AddHabit registers a new habit created today with an empty history.
	// Returns ErrInvalidName, ErrDuplicateHabit, ErrInvalidFrequency or
	// ErrInvalidCategory when the input is rejected; the registry is
	// unchanged in that case.
	AddHabit(name, description string, category Category, targetFrequency int) (*Habit, error)

	// RemoveHabit deletes the named habit and reports whether it existed.
	RemoveHabit(name string) bool

	// MarkHabitComplete logs a completion for the named habit. date is
	// YYYY-MM-DD text; an empty string means today. Returns ErrNotFound,
	// ErrInvalidDateFormat, or ErrAlreadyCompleted when the date was
	// already logged (a no-op).
	MarkHabitComplete(name, date string) error

	// Habit returns the named habit or ErrNotFound.
	Habit(name string) (*Habit, error)

	// Habits returns habit names in insertion order.
	Habits() []string

	// Len returns the number of habits.
	Len() int

	// HabitStatistics returns the stats record of the named habit or
	// ErrNotFound.
	HabitStatistics(name string) (HabitStats, error)

	// AllHabitsSummary returns one stats record per habit in insertion order.
	AllHabitsSummary() []HabitStats

	// HabitsByCategory groups habit names by category. Categories without
	// habits are absent.
	HabitsByCategory() map[Category][]string

	// CategoryGroups returns the non-empty groups in fixed category order.
	CategoryGroups() []CategoryGroup

	// WeeklyReport summarizes the trailing seven days, today inclusive.
	WeeklyReport() WeeklyReport

	// Motivation classifies overall progress into a MotivationTier.
	Motivation() Motivation

	// SetUserName sets the display name of the tracker's user.
	SetUserName(name string)

	// UserName returns the display name, possibly empty.
	UserName() string
}

// Tracker operation errors. All are recoverable and reported to the caller.
var (
	ErrDuplicateHabit    = errors.New("habit already exists")
	ErrNotFound          = errors.New("habit not found")
	ErrInvalidName       = errors.New("invalid habit name")
	ErrInvalidFrequency  = errors.New("target frequency must be between 1 and 7 days per week")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrAlreadyCompleted  = errors.New("habit already completed for this date")
)
