// Package registry implements the in-memory Tracker: a collection of habits
// keyed by name with insertion order preserved, plus the aggregate reports
// derived from them.
//
// A Registry is owned by a single caller and is not safe for concurrent use.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/habits/pkg/types"
)

// Registry implements types.Tracker in process memory.
type Registry struct {
	habits   map[string]*types.Habit
	order    []string
	userName string

	policy types.StreakPolicy
	now    func() time.Time
	log    *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger for mutation and rejection events.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// WithClock sets the source of "today". The calendar date of the returned
// instant, in its own location, is used.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// WithStreakPolicy sets how current streaks are reported.
func WithStreakPolicy(p types.StreakPolicy) Option {
	return func(r *Registry) {
		if p.Valid() {
			r.policy = p
		}
	}
}

// New returns an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		habits: make(map[string]*types.Habit),
		policy: types.StreakLastLogged,
		now:    time.Now,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ types.Tracker = (*Registry)(nil)

// Today returns the registry's current calendar date.
func (r *Registry) Today() types.Date {
	return types.DateOf(r.now())
}

// Policy returns the streak policy in effect.
func (r *Registry) Policy() types.StreakPolicy {
	return r.policy
}

// SetUserName sets the display name of the tracker's user.
func (r *Registry) SetUserName(name string) {
	r.userName = name
}

// UserName returns the display name, possibly empty.
func (r *Registry) UserName() string {
	return r.userName
}

// AddHabit validates and stores a new habit created today.
func (r *Registry) AddHabit(name, description string, category types.Category, targetFrequency int) (*types.Habit, error) {
	if err := r.validateNew(name, category, targetFrequency); err != nil {
		r.log.Debug("add habit rejected", zap.String("habit", name), zap.Error(err))
		return nil, err
	}

	h := types.NewHabit(name, description, category, targetFrequency, r.Today())
	r.habits[name] = h
	r.order = append(r.order, name)

	r.log.Debug("habit added",
		zap.String("habit", name),
		zap.String("id", h.ID),
		zap.String("category", string(category)),
		zap.Int("target_frequency", targetFrequency),
	)
	return h, nil
}

func (r *Registry) validateNew(name string, category types.Category, targetFrequency int) error {
	if strings.TrimSpace(name) == "" {
		return types.ErrInvalidName
	}
	if _, ok := r.habits[name]; ok {
		return fmt.Errorf("%w: %q", types.ErrDuplicateHabit, name)
	}
	if targetFrequency < types.MinTargetFrequency || targetFrequency > types.MaxTargetFrequency {
		return fmt.Errorf("%w: got %d", types.ErrInvalidFrequency, targetFrequency)
	}
	if !types.ValidCategory(category) {
		return fmt.Errorf("%w: %q", types.ErrInvalidCategory, category)
	}
	return nil
}

// RemoveHabit deletes the named habit and reports whether it existed.
func (r *Registry) RemoveHabit(name string) bool {
	if _, ok := r.habits[name]; !ok {
		return false
	}
	delete(r.habits, name)
	r.order = slices.DeleteFunc(r.order, func(n string) bool { return n == name })
	r.log.Debug("habit removed", zap.String("habit", name))
	return true
}

// MarkHabitComplete logs a completion of the named habit on date (YYYY-MM-DD),
// or today when date is blank.
func (r *Registry) MarkHabitComplete(name, date string) error {
	h, err := r.Habit(name)
	if err != nil {
		return err
	}

	marked, err := h.MarkCompletionText(date, r.Today())
	if err != nil {
		r.log.Debug("mark rejected", zap.String("habit", name), zap.String("date", date), zap.Error(err))
		return err
	}
	if !marked {
		return fmt.Errorf("%w: %q", types.ErrAlreadyCompleted, name)
	}

	r.log.Debug("habit completed",
		zap.String("habit", name),
		zap.String("date", date),
		zap.Int("current_streak", h.CurrentStreak()),
		zap.Int("best_streak", h.BestStreak()),
	)
	return nil
}

// Habit returns the named habit or ErrNotFound.
func (r *Registry) Habit(name string) (*types.Habit, error) {
	h, ok := r.habits[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrNotFound, name)
	}
	if h.Name != name {
		panic(fmt.Sprintf("registry: key %q holds habit %q", name, h.Name))
	}
	return h, nil
}

// Habits returns habit names in insertion order.
func (r *Registry) Habits() []string {
	return slices.Clone(r.order)
}

// Len returns the number of habits.
func (r *Registry) Len() int {
	return len(r.order)
}

// each calls fn for every habit in insertion order.
func (r *Registry) each(fn func(*types.Habit)) {
	for _, name := range r.order {
		h, err := r.Habit(name)
		if err != nil {
			panic(fmt.Sprintf("registry: ordered name %q missing from map", name))
		}
		fn(h)
	}
}
