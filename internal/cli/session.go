package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/habits/pkg/types"
)

// Menu choices.
const (
	choiceSetUser = iota + 1
	choiceAdd
	choiceRemove
	choiceMark
	choiceStats
	choiceSummary
	choiceWeekly
	choiceCategories
	choiceMotivation
	choiceExit
)

var menuItems = []string{
	"Set User Name",
	"Add New Habit",
	"Remove Habit",
	"Mark Habit Complete",
	"View Habit Statistics",
	"View All Habits Summary",
	"Weekly Report",
	"View Habits by Category",
	"Get Motivational Message",
	"Exit",
}

// Session is the interactive numbered-menu loop over one Tracker. It reads
// answers line by line from its input and ends on the exit choice or at
// end of input.
type Session struct {
	tracker types.Tracker
	in      *bufio.Scanner
	out     io.Writer
	log     *zap.Logger
	render  *renderer

	// Guarded by mu; written by config reloads.
	mu          sync.Mutex
	format      string
	configUser  string
	pendingUser *string
}

// NewSession returns a session reading from in and writing to out.
func NewSession(tr types.Tracker, in io.Reader, out io.Writer, format string, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		tracker:    tr,
		in:         bufio.NewScanner(in),
		out:        out,
		log:        log,
		render:     newRenderer(out, format),
		format:     format,
		configUser: tr.UserName(),
	}
}

// ApplyConfig swaps the display settings of a running session. A changed
// user_name is applied before the next menu is shown. Safe to call from
// another goroutine.
func (s *Session) ApplyConfig(cfg types.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.format = cfg.Format
	if cfg.UserName != s.configUser {
		s.configUser = cfg.UserName
		name := cfg.UserName
		s.pendingUser = &name
	}
}

// sync applies settings queued by ApplyConfig.
func (s *Session) sync() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.format != s.render.format {
		s.render = newRenderer(s.out, s.format)
	}
	if s.pendingUser != nil {
		s.tracker.SetUserName(*s.pendingUser)
		s.pendingUser = nil
	}
}

// Run shows the menu until the user exits or input ends.
func (s *Session) Run() error {
	s.render.heading("Smart Habit Tracker")
	s.render.info("Track your habits and build positive routines!")

	for {
		s.sync()
		s.showMenu()
		choice, ok := s.readInt(fmt.Sprintf("Enter your choice (1-%d): ", len(menuItems)))
		if !ok {
			return s.in.Err()
		}
		if choice == choiceExit {
			s.render.success("Thank you for using Smart Habit Tracker! Keep building great habits!")
			return nil
		}
		if err := s.dispatch(choice); err != nil {
			return err
		}
	}
}

func (s *Session) showMenu() {
	r := s.render
	r.heading("Main Menu")
	if name := s.tracker.UserName(); name != "" {
		r.printf("Welcome back, %s!\n", name)
	}
	for i, item := range menuItems {
		r.printf("%2d. %s\n", i+1, item)
	}
}

// dispatch runs one menu choice. Only output failures are returned;
// rejected input is reported to the user and the loop continues.
func (s *Session) dispatch(choice int) error {
	switch choice {
	case choiceSetUser:
		s.setUserName()
	case choiceAdd:
		s.addHabit()
	case choiceRemove:
		s.removeHabit()
	case choiceMark:
		s.markComplete()
	case choiceStats:
		return s.showStatistics()
	case choiceSummary:
		return s.render.summary(s.tracker.AllHabitsSummary())
	case choiceWeekly:
		return s.render.weekly(s.tracker.WeeklyReport())
	case choiceCategories:
		return s.render.categories(s.tracker.CategoryGroups())
	case choiceMotivation:
		return s.render.motivation(s.tracker.Motivation())
	default:
		s.render.failure(fmt.Sprintf("Invalid choice! Please select 1-%d.", len(menuItems)))
	}
	return nil
}

// readLine prompts and returns the trimmed answer; ok is false at end of input.
func (s *Session) readLine(prompt string) (string, bool) {
	s.render.printf("%s", prompt)
	if !s.in.Scan() {
		s.render.printf("\n")
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// readInt prompts until the answer is an integer; ok is false at end of input.
func (s *Session) readInt(prompt string) (int, bool) {
	for {
		line, ok := s.readLine(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, true
		}
		s.render.failure("Please enter a valid number!")
	}
}

func (s *Session) listHabits(title string) {
	s.render.heading(title)
	s.render.printf("Available habits:\n")
	for _, name := range s.tracker.Habits() {
		s.render.printf("• %s\n", name)
	}
}

func (s *Session) setUserName() {
	name, ok := s.readLine("Enter your name: ")
	if !ok {
		return
	}
	s.tracker.SetUserName(name)
	s.render.success(fmt.Sprintf("Welcome, %s!", name))
}

func (s *Session) addHabit() {
	s.render.heading("Add New Habit")
	name, ok := s.readLine("Habit name: ")
	if !ok {
		return
	}
	description, ok := s.readLine("Description: ")
	if !ok {
		return
	}

	s.render.printf("\nAvailable Categories:\n")
	_ = s.render.categoryList(types.Categories())
	ordinal, ok := s.readInt(fmt.Sprintf("Choose category (1-%d): ", len(types.Categories())))
	if !ok {
		return
	}
	category, err := types.CategoryByOrdinal(ordinal)
	if err != nil {
		s.render.failure("Invalid category choice!")
		return
	}

	freq, ok := s.readInt("Target frequency (1-7 times per week): ")
	if !ok {
		return
	}

	if _, err := s.tracker.AddHabit(name, description, category, freq); err != nil {
		s.render.failure(addFailureMessage(err))
		return
	}
	s.render.success("Habit added successfully!")
}

func addFailureMessage(err error) string {
	switch {
	case errors.Is(err, types.ErrDuplicateHabit):
		return "Habit already exists!"
	case errors.Is(err, types.ErrInvalidFrequency):
		return "Target frequency must be between 1-7 days per week!"
	case errors.Is(err, types.ErrInvalidName):
		return "Habit name cannot be empty!"
	default:
		return err.Error()
	}
}

func (s *Session) removeHabit() {
	if s.tracker.Len() == 0 {
		s.render.failure("No habits to remove!")
		return
	}
	s.listHabits("Remove Habit")
	name, ok := s.readLine("Enter habit name to remove: ")
	if !ok {
		return
	}
	if s.tracker.RemoveHabit(name) {
		s.render.success("Habit removed successfully!")
		return
	}
	s.render.failure("Habit not found!")
}

func (s *Session) markComplete() {
	if s.tracker.Len() == 0 {
		s.render.failure("No habits available!")
		return
	}
	s.listHabits("Mark Habit Complete")
	name, ok := s.readLine("Enter habit name: ")
	if !ok {
		return
	}
	answer, ok := s.readLine("Mark for today? (y/n): ")
	if !ok {
		return
	}
	date := ""
	if !strings.EqualFold(answer, "y") {
		if date, ok = s.readLine("Enter date (YYYY-MM-DD): "); !ok {
			return
		}
		if date == "" {
			s.render.failure("A date is required when not marking today.")
			return
		}
	}

	err := s.tracker.MarkHabitComplete(name, date)
	switch {
	case err == nil:
		s.render.success(fmt.Sprintf("Habit '%s' marked as complete!", name))
	case errors.Is(err, types.ErrNotFound):
		s.render.failure("Habit not found!")
	case errors.Is(err, types.ErrAlreadyCompleted):
		s.render.info("Habit already completed for this date!")
	case errors.Is(err, types.ErrInvalidDateFormat):
		s.render.failure("Invalid date format! Use YYYY-MM-DD.")
	default:
		s.render.failure(err.Error())
	}
}

func (s *Session) showStatistics() error {
	if s.tracker.Len() == 0 {
		s.render.failure("No habits available!")
		return nil
	}
	s.listHabits("Habit Statistics")
	name, ok := s.readLine("Enter habit name: ")
	if !ok {
		return nil
	}
	stats, err := s.tracker.HabitStatistics(name)
	if err != nil {
		s.render.failure("Habit not found!")
		return nil
	}
	return s.render.stats(stats)
}

func newSessionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Start the interactive habit menu (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, a)
		},
	}
}

func runSession(cmd *cobra.Command, a *app) error {
	s := NewSession(a.newTracker(), cmd.InOrStdin(), cmd.OutOrStdout(), a.cfg.Format, a.log)
	if a.v != nil && a.v.ConfigFileUsed() != "" {
		watchConfig(a.v, s, a.log)
	}
	return s.Run()
}

// watchConfig reloads config.yaml into s whenever the file changes.
func watchConfig(v *viper.Viper, s *Session, log *zap.Logger) {
	v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := decodeConfig(v)
		if err != nil {
			log.Warn("config reload rejected", zap.String("file", e.Name), zap.Error(err))
			return
		}
		log.Info("config reloaded", zap.String("file", e.Name), zap.Stringer("op", e.Op))
		s.ApplyConfig(cfg)
	})
	v.WatchConfig()
}
