package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/wordpace/internal/config"
	"github.com/theirongolddev/wordpace/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type entryFormValues struct {
	count string
	date  string
}

type goalFormValues struct {
	title    string
	target   string
	deadline string
	start    string
	initial  string
	deleteID string
}

func (a App) openEntryForm() (tea.Model, tea.Cmd) {
	a.entryVals = entryFormValues{
		date: time.Now().Format("2006-01-02"),
	}
	a.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Total word count").
			Description("The project's cumulative count, not today's output").
			Value(&a.entryVals.count).
			Validate(validNonNegativeInt),
		huh.NewInput().
			Title("Date").
			Description("YYYY-MM-DD").
			Value(&a.entryVals.date).
			Validate(validDate),
	))
	a.formKind = formEntry
	if a.width > 0 {
		a.form = a.form.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.form.Init()
}

func (a App) openGoalForm() (tea.Model, tea.Cmd) {
	a.goalVals = goalFormValues{initial: "0"}
	a.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Title").
			Description("What are you writing?").
			Value(&a.goalVals.title).
			Validate(validNonEmpty),
		huh.NewInput().
			Title("Target word count").
			Value(&a.goalVals.target).
			Validate(validPositiveInt),
		huh.NewInput().
			Title("Deadline").
			Description("YYYY-MM-DD").
			Value(&a.goalVals.deadline).
			Validate(validDate),
		huh.NewInput().
			Title("Start date").
			Description("Leave blank for today").
			Value(&a.goalVals.start).
			Validate(validOptionalDate),
		huh.NewInput().
			Title("Starting word count").
			Value(&a.goalVals.initial).
			Validate(validNonNegativeInt),
	))
	a.formKind = formGoal
	if a.width > 0 {
		a.form = a.form.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.form.Init()
}

func (a App) openDeleteForm(goal model.WritingGoal) (tea.Model, tea.Cmd) {
	a.confirmed = false
	a.goalVals.deleteID = goal.ID
	a.form = huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Delete %q?", goal.Title)).
			Description(fmt.Sprintf("Its %d entries go with it.", len(a.entries[goal.ID]))).
			Value(&a.confirmed),
	))
	a.formKind = formDeleteGoal
	if a.width > 0 {
		a.form = a.form.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.form.Init()
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		kind := a.formKind
		a.form = nil
		a.formKind = formNone
		return a.applyForm(kind)
	}

	if a.form.State == huh.StateAborted {
		a.form = nil
		a.formKind = formNone
		return a, nil
	}

	return a, cmd
}

// applyForm runs the store operation for a completed form and reloads.
func (a App) applyForm(kind formKind) (tea.Model, tea.Cmd) {
	switch kind {
	case formEntry:
		goal := a.viewedGoal()
		if goal == nil {
			return a, nil
		}
		count, _ := strconv.Atoi(strings.TrimSpace(a.entryVals.count))
		date, err := time.Parse("2006-01-02", strings.TrimSpace(a.entryVals.date))
		if err != nil {
			date = time.Now()
		}
		if _, err := a.st.CreateEntry(model.DailyEntry{
			GoalID:    goal.ID,
			Date:      date,
			WordCount: count,
		}); err != nil {
			a.statusLine = err.Error()
			return a, nil
		}
		a.statusLine = "Snapshot logged"

	case formGoal:
		target, _ := strconv.Atoi(strings.TrimSpace(a.goalVals.target))
		initial, _ := strconv.Atoi(strings.TrimSpace(a.goalVals.initial))
		deadline, err := time.Parse("2006-01-02", strings.TrimSpace(a.goalVals.deadline))
		if err != nil {
			a.statusLine = "bad deadline"
			return a, nil
		}
		start := time.Now()
		if s := strings.TrimSpace(a.goalVals.start); s != "" {
			if parsed, err := time.Parse("2006-01-02", s); err == nil {
				start = parsed
			}
		}
		id, err := a.st.CreateGoal(model.WritingGoal{
			Title:            strings.TrimSpace(a.goalVals.title),
			TargetWordCount:  target,
			StartDate:        start,
			Deadline:         deadline,
			InitialWordCount: initial,
		})
		if err != nil {
			a.statusLine = err.Error()
			return a, nil
		}
		if a.cfg.General.ActiveGoal == "" {
			a.cfg.General.ActiveGoal = id
			_ = config.Save(a.cfg)
		}
		a.statusLine = "Goal created"

	case formDeleteGoal:
		if !a.confirmed || a.goalVals.deleteID == "" {
			return a, nil
		}
		if err := a.st.DeleteGoal(a.goalVals.deleteID); err != nil {
			a.statusLine = err.Error()
			return a, nil
		}
		if a.cfg.General.ActiveGoal == a.goalVals.deleteID {
			a.cfg.General.ActiveGoal = ""
			_ = config.Save(a.cfg)
		}
		a.statusLine = "Goal deleted"
	}

	return a, loadDataCmd(a.st)
}

func validNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validPositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if n <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

func validNonNegativeInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if n < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func validDate(s string) error {
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return validDate(s)
}
