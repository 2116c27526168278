package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/habits/pkg/types"
)

// renderer writes tracker output to w, either as styled text or as a
// structured document in one of the machine formats.
type renderer struct {
	w      io.Writer
	format string

	title lipgloss.Style
	label lipgloss.Style
	ok    lipgloss.Style
	fail  lipgloss.Style
	dim   lipgloss.Style
}

func newRenderer(w io.Writer, format string) *renderer {
	lr := lipgloss.NewRenderer(w)
	return &renderer{
		w:      w,
		format: format,
		title:  lr.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		label:  lr.NewStyle().Bold(true),
		ok:     lr.NewStyle().Foreground(lipgloss.Color("2")),
		fail:   lr.NewStyle().Foreground(lipgloss.Color("1")),
		dim:    lr.NewStyle().Faint(true),
	}
}

// structured reports whether output goes through encode instead of text.
func (r *renderer) structured() bool {
	return r.format != "" && r.format != types.FormatText
}

// Documents wrap collections so every format, TOML included, gets a table
// at the top level.
type (
	summaryDoc struct {
		Habits []types.HabitStats `json:"habits" yaml:"habits" toml:"habits"`
	}
	categoriesDoc struct {
		Groups []types.CategoryGroup `json:"groups" yaml:"groups" toml:"groups"`
	}
	categoryListDoc struct {
		Categories []types.Category `json:"categories" yaml:"categories" toml:"categories"`
	}
	motivationDoc struct {
		types.Motivation `yaml:",inline"`
		Message          string `json:"message" yaml:"message" toml:"message"`
	}
)

func (r *renderer) encode(v any) error {
	switch r.format {
	case types.FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case types.FormatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case types.FormatTOML:
		return toml.NewEncoder(r.w).Encode(v)
	default:
		return fmt.Errorf("%w: %q", types.ErrFormatUnknown, r.format)
	}
}

func (r *renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

func (r *renderer) success(msg string) { r.printf("%s\n", r.ok.Render("✓ "+msg)) }
func (r *renderer) failure(msg string) { r.printf("%s\n", r.fail.Render("✗ "+msg)) }
func (r *renderer) info(msg string)    { r.printf("%s\n", r.dim.Render(msg)) }

func (r *renderer) heading(text string) {
	r.printf("\n%s\n%s\n", r.title.Render(text), r.dim.Render(strings.Repeat("=", len([]rune(text)))))
}

// rate rounds a completion percentage to two decimals for display.
func rate(p float64) string {
	return fmt.Sprintf("%.2f%%", math.Round(p*100)/100)
}

func (r *renderer) stats(s types.HabitStats) error {
	if r.structured() {
		return r.encode(s)
	}
	r.heading(fmt.Sprintf("Statistics for '%s'", s.Name))
	rows := [][2]string{
		{"Category", string(s.Category)},
		{"Target", fmt.Sprintf("%d times/week", s.TargetFrequency)},
		{"Total Completions", fmt.Sprint(s.TotalCompletions)},
		{"Current Streak", fmt.Sprintf("%d days", s.CurrentStreak)},
		{"Best Streak", fmt.Sprintf("%d days", s.BestStreak)},
		{"7-Day Completion Rate", rate(s.Rate7Days)},
		{"30-Day Completion Rate", rate(s.Rate30Days)},
		{"Created", s.CreatedDate.String()},
	}
	for _, row := range rows {
		r.printf("%s %s\n", r.label.Render(row[0]+":"), row[1])
	}
	return nil
}

func (r *renderer) summary(all []types.HabitStats) error {
	if r.structured() {
		return r.encode(summaryDoc{Habits: all})
	}
	if len(all) == 0 {
		r.failure("No habits tracked yet!")
		return nil
	}
	r.heading("All Habits Summary")
	for _, s := range all {
		r.printf("\n%s %s\n", r.label.Render(s.Name), r.dim.Render("("+string(s.Category)+")"))
		r.printf("   Completions: %d\n", s.TotalCompletions)
		r.printf("   Current Streak: %d days\n", s.CurrentStreak)
		r.printf("   Weekly Rate: %s\n", rate(s.Rate7Days))
	}
	return nil
}

func (r *renderer) weekly(rep types.WeeklyReport) error {
	if r.structured() {
		return r.encode(rep)
	}
	if len(rep.Entries) == 0 {
		r.failure("No habits to report!")
		return nil
	}
	r.heading(fmt.Sprintf("Weekly Report (%s to %s)", rep.Start, rep.End))
	for _, e := range rep.Entries {
		mark := r.fail.Render("✗")
		if e.TargetMet {
			mark = r.ok.Render("✓")
		}
		r.printf("\n%s\n", r.label.Render(e.Name+":"))
		r.printf("   Target: %d times/week\n", e.TargetFrequency)
		r.printf("   Completed: %d times %s\n", e.Completions, mark)
		r.printf("   Current Streak: %d days\n", e.CurrentStreak)
	}
	return nil
}

func (r *renderer) categories(groups []types.CategoryGroup) error {
	if r.structured() {
		return r.encode(categoriesDoc{Groups: groups})
	}
	if len(groups) == 0 {
		r.failure("No habits available!")
		return nil
	}
	r.heading("Habits by Category")
	for _, g := range groups {
		r.printf("\n%s\n", r.label.Render(string(g.Category)+":"))
		for _, name := range g.Habits {
			r.printf("   • %s\n", name)
		}
	}
	return nil
}

func (r *renderer) categoryList(list []types.Category) error {
	if r.structured() {
		return r.encode(categoryListDoc{Categories: list})
	}
	for i, c := range list {
		r.printf("%d. %s\n", i+1, c)
	}
	return nil
}

// motivationMessage words a motivation tier for the user.
func motivationMessage(m types.Motivation) string {
	switch m.Tier {
	case types.TierOnboarding:
		return "Start your journey by adding your first habit!"
	case types.TierFirstCompletion:
		return "You've got this! Mark your first habit completion today!"
	case types.TierEarlyMomentum:
		return fmt.Sprintf("Great start! You've completed %d habits. Keep building momentum!", m.TotalCompletions)
	case types.TierAllStreaks:
		return "Amazing! You're on a streak with ALL your habits! You're unstoppable!"
	default:
		return fmt.Sprintf("You're doing fantastic! %d completions across %d habits!", m.TotalCompletions, m.TotalHabits)
	}
}

func (r *renderer) motivation(m types.Motivation) error {
	msg := motivationMessage(m)
	if r.structured() {
		return r.encode(motivationDoc{Motivation: m, Message: msg})
	}
	r.printf("\n%s\n", r.title.Render(msg))
	return nil
}
