// Package tracker provides the public API for creating a habit Tracker.
// This package exposes the factory function while keeping the registry
// implementation internal.
package tracker

import (
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/habits/internal/registry"
	"github.com/mesh-intelligence/habits/pkg/types"
)

// Options configures a Tracker. Zero values select the defaults: a no-op
// logger, time.Now, and the last-logged streak policy.
type Options struct {
	Logger       *zap.Logger
	Clock        func() time.Time
	StreakPolicy types.StreakPolicy
}

// New creates an empty in-memory Tracker.
//
// Example:
//
//	t := tracker.New(tracker.Options{StreakPolicy: types.StreakActive})
//	if _, err := t.AddHabit("Read", "30 minutes", types.CategoryLearning, 7); err != nil {
//	    return err
//	}
//	err := t.MarkHabitComplete("Read", "")
func New(opts Options) types.Tracker {
	return registry.New(
		registry.WithLogger(opts.Logger),
		registry.WithClock(opts.Clock),
		registry.WithStreakPolicy(opts.StreakPolicy),
	)
}
