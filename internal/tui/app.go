// Package tui provides the interactive Bubble Tea dashboard for wordpace.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/wordpace/internal/config"
	"github.com/theirongolddev/wordpace/internal/model"
	"github.com/theirongolddev/wordpace/internal/pace"
	"github.com/theirongolddev/wordpace/internal/store"
	"github.com/theirongolddev/wordpace/internal/tui/components"
	"github.com/theirongolddev/wordpace/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when goals and entries finish loading.
type DataLoadedMsg struct {
	Goals    []model.WritingGoal
	Entries  map[string][]model.DailyEntry
	LoadTime time.Duration
}

type formKind int

const (
	formNone formKind = iota
	formEntry
	formGoal
	formDeleteGoal
)

// App is the root Bubble Tea model.
type App struct {
	st  *store.Store
	cfg config.Config

	// Data
	goals    []model.WritingGoal
	entries  map[string][]model.DailyEntry
	loaded   bool
	loadTime time.Duration

	// Pre-computed for the viewed goal
	active  int // index into goals, -1 when there are none
	stats   model.WritingStats
	history []model.DailyProgress // newest first

	// UI state
	width         int
	height        int
	activeTab     int
	showHelp      bool
	goalsCursor   int
	historyScroll int
	statusLine    string

	// Modal form (entry, goal, delete confirm)
	form      *huh.Form
	formKind  formKind
	entryVals entryFormValues
	goalVals  goalFormValues
	confirmed bool

	spinner spinner.Model
}

const (
	minTerminalWidth = 70
	compactWidth     = 100
	maxContentWidth  = 160
	minContentHeight = 5
)

// NewApp creates a new TUI app model.
func NewApp(st *store.Store, cfg config.Config) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		st:      st,
		cfg:     cfg,
		active:  -1,
		spinner: sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.st),
		a.spinner.Tick,
	)
}

// loadDataCmd reads all goals and their entries from the store.
func loadDataCmd(st *store.Store) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()

		goals, err := st.ListGoals()
		if err != nil {
			return DataLoadedMsg{LoadTime: time.Since(start)}
		}
		entries := make(map[string][]model.DailyEntry, len(goals))
		for _, g := range goals {
			es, err := st.ListEntries(g.ID)
			if err != nil {
				continue
			}
			entries[g.ID] = es
		}
		return DataLoadedMsg{Goals: goals, Entries: entries, LoadTime: time.Since(start)}
	}
}

// recompute refreshes the derived stats for the viewed goal.
func (a *App) recompute() {
	a.active = -1
	for i, g := range a.goals {
		if g.ID == a.cfg.General.ActiveGoal {
			a.active = i
			break
		}
	}
	if a.active < 0 && len(a.goals) > 0 {
		a.active = 0
	}

	a.stats = model.WritingStats{}
	a.history = nil
	if a.active < 0 {
		return
	}

	goal := &a.goals[a.active]
	es := a.entries[goal.ID]
	a.stats = pace.ComputeStats(goal, es, time.Now())

	for p := range pace.DailyDeltas(goal, es) {
		a.history = append(a.history, p)
	}
	// Newest first for the history tab
	for i, j := 0, len(a.history)-1; i < j; i, j = i+1, j-1 {
		a.history[i], a.history[j] = a.history[j], a.history[i]
	}

	if a.goalsCursor >= len(a.goals) {
		a.goalsCursor = len(a.goals) - 1
	}
	if a.goalsCursor < 0 {
		a.goalsCursor = 0
	}
}

// viewedGoal returns the goal the dashboard is showing, or nil.
func (a App) viewedGoal() *model.WritingGoal {
	if a.active < 0 || a.active >= len(a.goals) {
		return nil
	}
	return &a.goals[a.active]
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.form != nil {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return a.scrollBy(-1), nil
		case tea.MouseButtonWheelDown:
			return a.scrollBy(1), nil
		case tea.MouseButtonLeft:
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKeys(msg)

	case DataLoadedMsg:
		a.goals = msg.Goals
		a.entries = msg.Entries
		a.loaded = true
		a.loadTime = msg.LoadTime
		a.recompute()
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the active form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}
	if !a.loaded {
		return a, nil
	}

	// Modal form intercepts all keys
	if a.form != nil {
		return a.updateForm(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	a.statusLine = ""

	switch key {
	case "q":
		return a, tea.Quit
	case "r":
		return a, loadDataCmd(a.st)
	case "a":
		if a.viewedGoal() == nil {
			a.statusLine = "Create a goal first (n)"
			return a, nil
		}
		return a.openEntryForm()
	case "n":
		return a.openGoalForm()
	case "d":
		if a.activeTab == 2 && a.goalsCursor < len(a.goals) {
			return a.openDeleteForm(a.goals[a.goalsCursor])
		}
		return a, nil
	case "enter":
		if a.activeTab == 2 && a.goalsCursor < len(a.goals) {
			a.cfg.General.ActiveGoal = a.goals[a.goalsCursor].ID
			_ = config.Save(a.cfg)
			a.recompute()
			a.statusLine = "Active goal: " + a.goals[a.goalsCursor].Title
		}
		return a, nil
	case "j", "down":
		return a.scrollBy(1), nil
	case "k", "up":
		return a.scrollBy(-1), nil
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	}

	if len(msg.Runes) == 1 {
		if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
			a.activeTab = idx
		}
	}
	return a, nil
}

// scrollBy moves the cursor or scroll offset of the active tab.
func (a App) scrollBy(delta int) App {
	switch a.activeTab {
	case 1:
		a.historyScroll += delta
		if a.historyScroll < 0 {
			a.historyScroll = 0
		}
		if a.historyScroll > len(a.history)-1 {
			a.historyScroll = max(0, len(a.history)-1)
		}
	case 2:
		a.goalsCursor += delta
		if a.goalsCursor < 0 {
			a.goalsCursor = 0
		}
		if a.goalsCursor > len(a.goals)-1 {
			a.goalsCursor = max(0, len(a.goals)-1)
		}
	}
	return a
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if !a.loaded {
		return a.viewLoading()
	}
	if a.form != nil {
		return a.form.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  wordpace needs at least %d columns.\n",
		a.width, minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ wordpace"))
	b.WriteString(subtitleStyle.Render(" · Writing Goal Tracker"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Render(a.spinner.View()))
	b.WriteString(subtitleStyle.Render(" Loading goals..."))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o h g", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Move / scroll"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"a", "Log a word-count snapshot"},
		{"n", "New goal"},
		{"d", "Delete goal (Goals tab)"},
		{"Enter", "Set active goal (Goals tab)"},
		{"r", "Reload data"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// Header: tab bar + goal pill
	pillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)
	pillAccent := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	pill := ""
	if g := a.viewedGoal(); g != nil {
		pill = pillStyle.Render(" ") + pillAccent.Render(g.Title) +
			pillStyle.Render(" │ due ") + pillAccent.Render(g.Deadline.Format("Jan 2"))
	}
	if a.statusLine != "" {
		pill += pillStyle.Render("  ·  " + a.statusLine)
	}

	pillRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab, w) + "\n" + pillRowStyle.Render(pill)

	goalTitle := ""
	if g := a.viewedGoal(); g != nil {
		goalTitle = g.Title
	}
	statusBar := components.RenderStatusBar(w, goalTitle)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderHistoryTab(cw, contentH)
	case 2:
		content = a.renderGoalsTab(cw, contentH)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space in the bar
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 2
	}
	return -1
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
