package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/habits/internal/registry"
	"github.com/mesh-intelligence/habits/pkg/types"
)

func newTestSession(input, format string) (*Session, *registry.Registry, *bytes.Buffer) {
	var out bytes.Buffer
	r := registry.New(registry.WithClock(testNow))
	return NewSession(r, strings.NewReader(input), &out, format, nil), r, &out
}

func TestSessionReadScenario(t *testing.T) {
	lines := []string{"1", "Ada", "2", "Read", "Read for 30 minutes", "2", "7"}
	for _, d := range []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"} {
		lines = append(lines, "4", "Read", "n", d)
	}
	lines = append(lines, "5", "Read", "10")

	s, r, out := newTestSession(script(lines...), types.FormatText)
	require.NoError(t, s.Run())

	text := out.String()
	assert.Contains(t, text, "Welcome, Ada!")
	assert.Contains(t, text, "Welcome back, Ada!")
	assert.Contains(t, text, "Habit added successfully!")
	assert.Equal(t, 5, strings.Count(text, "Habit 'Read' marked as complete!"))
	assert.Contains(t, text, "Statistics for 'Read'")
	assert.Contains(t, text, "Total Completions: 5")
	assert.Contains(t, text, "Current Streak: 5 days")
	assert.Contains(t, text, "Best Streak: 5 days")
	assert.Contains(t, text, "7-Day Completion Rate: 71.43%")
	assert.Contains(t, text, "Created: 2024-01-07")
	assert.Contains(t, text, "Thank you for using Smart Habit Tracker!")

	h, err := r.Habit("Read")
	require.NoError(t, err)
	assert.Equal(t, 5, h.TotalCompletions())
}

func TestSessionRejectedInput(t *testing.T) {
	input := script(
		// Not a number, then an unknown choice.
		"abc", "42",
		// Remove with no habits.
		"3",
		// Bad category ordinal, bad frequency, success, duplicate.
		"2", "Run", "", "9",
		"2", "Run", "", "1", "8",
		"2", "Run", "", "1", "3",
		"2", "Run", "", "1", "3",
		// Today, today again, malformed date, unknown habit.
		"4", "Run", "y",
		"4", "Run", "y",
		"4", "Run", "n", "07/01/2024",
		"4", "Walk", "y",
		"3", "Walk",
		"5", "Walk",
	)
	s, r, out := newTestSession(input, types.FormatText)
	require.NoError(t, s.Run(), "end of input ends the session cleanly")

	text := out.String()
	assert.Contains(t, text, "Please enter a valid number!")
	assert.Contains(t, text, "Invalid choice! Please select 1-10.")
	assert.Contains(t, text, "No habits to remove!")
	assert.Contains(t, text, "Invalid category choice!")
	assert.Contains(t, text, "Target frequency must be between 1-7 days per week!")
	assert.Contains(t, text, "Habit already exists!")
	assert.Contains(t, text, "Habit already completed for this date!")
	assert.Contains(t, text, "Invalid date format! Use YYYY-MM-DD.")
	assert.Contains(t, text, "Habit not found!")

	assert.Equal(t, []string{"Run"}, r.Habits())
	h, err := r.Habit("Run")
	require.NoError(t, err)
	assert.Equal(t, 1, h.TotalCompletions())
}

func TestSessionReports(t *testing.T) {
	input := script(
		"6", "7", "8", "9",
		"2", "Run", "cardio", "1", "3",
		"2", "Paint", "", "6", "1",
		"4", "Run", "y",
		"6", "7", "8", "9",
		"10",
	)
	s, _, out := newTestSession(input, types.FormatText)
	require.NoError(t, s.Run())

	text := out.String()
	assert.Contains(t, text, "No habits tracked yet!")
	assert.Contains(t, text, "No habits to report!")
	assert.Contains(t, text, "No habits available!")
	assert.Contains(t, text, "Start your journey by adding your first habit!")

	assert.Contains(t, text, "All Habits Summary")
	assert.Contains(t, text, "Weekly Rate: 14.29%")
	assert.Contains(t, text, "Weekly Report (2024-01-01 to 2024-01-07)")
	assert.Contains(t, text, "Completed: 1 times")
	assert.Contains(t, text, "Health & Fitness:")
	assert.Contains(t, text, "Hobbies & Recreation:")
	assert.Contains(t, text, "Great start! You've completed 1 habits. Keep building momentum!")
}

func TestSessionStructuredOutput(t *testing.T) {
	input := script("2", "Run", "", "1", "3", "4", "Run", "y", "6", "10")
	s, _, out := newTestSession(input, types.FormatJSON)
	require.NoError(t, s.Run())

	assert.Contains(t, out.String(), `"name": "Run"`)
	assert.Contains(t, out.String(), `"total_completions": 1`)
	assert.Contains(t, out.String(), `"created_date": "2024-01-07"`)
}

func TestSessionApplyConfig(t *testing.T) {
	var out bytes.Buffer
	r := registry.New(registry.WithClock(testNow))
	r.SetUserName("Ada")
	s := NewSession(r, strings.NewReader(script("9", "10")), &out, types.FormatText, nil)

	s.ApplyConfig(types.Config{UserName: "Ada", Format: types.FormatJSON, StreakPolicy: types.StreakLastLogged})
	s.sync()
	assert.Equal(t, "Ada", r.UserName(), "unchanged config name keeps the current name")
	assert.True(t, s.render.structured())

	s.ApplyConfig(types.Config{UserName: "Grace", Format: types.FormatText, StreakPolicy: types.StreakLastLogged})
	require.NoError(t, s.Run())
	assert.Equal(t, "Grace", r.UserName())
	assert.Contains(t, out.String(), "Welcome back, Grace!")
	assert.False(t, s.render.structured())
}
