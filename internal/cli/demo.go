package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/habits/pkg/types"
)

// demoHabits are the sample habits registered by the demo command.
var demoHabits = []struct {
	name        string
	description string
	category    types.Category
	frequency   int
}{
	{"Morning Exercise", "30 minutes of cardio", types.CategoryHealth, 5},
	{"Read Books", "Read for 30 minutes", types.CategoryLearning, 7},
	{"Meditation", "10 minutes mindfulness", types.CategoryPersonal, 3},
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a short demonstration on sample habits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, a)
		},
	}
}

func runDemo(cmd *cobra.Command, a *app) error {
	r := newRenderer(cmd.OutOrStdout(), a.cfg.Format)
	tr := a.newTracker()
	tr.SetUserName("Demo User")

	for _, h := range demoHabits {
		if _, err := tr.AddHabit(h.name, h.description, h.category, h.frequency); err != nil {
			return fmt.Errorf("add demo habit %q: %w", h.name, err)
		}
		if err := tr.MarkHabitComplete(h.name, ""); err != nil {
			return fmt.Errorf("mark demo habit %q: %w", h.name, err)
		}
	}

	if r.structured() {
		return r.summary(tr.AllHabitsSummary())
	}

	r.heading("Demonstration Mode")
	for _, name := range tr.Habits() {
		h, err := tr.Habit(name)
		if err != nil {
			return err
		}
		r.printf("%s\n", h)
	}

	stats, err := tr.HabitStatistics(demoHabits[0].name)
	if err != nil {
		return err
	}
	r.printf("\nExercise completions: %d\n", stats.TotalCompletions)
	if err := r.motivation(tr.Motivation()); err != nil {
		return err
	}
	r.success("Demo completed! Run `habits` to start the interactive menu.")
	return nil
}
