package list

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"gokata/internal/exercise"
	"gokata/internal/state"
)

type filterMode int

const (
	filterAll filterMode = iota
	filterDone
	filterPending
)

// Action is how the list session ended.
type Action int

const (
	ActionQuit Action = iota
	// ActionContinue asks the caller to resume verification at ContinueAt.
	ActionContinue
)

// Result is what the caller applies after the program exits: the possibly
// mutated completion state plus the learner's chosen action.
type Result struct {
	Action     Action
	ContinueAt int
	State      state.CompletionState
	Dirty      bool
}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#67F0A8"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC857"))
	nextStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6F91")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("#323232"))
)

// Model is the interactive exercise table. Navigation and filtering are
// view-only; reset and continue-at mutate the carried completion state for
// the caller to persist.
type Model struct {
	exercises []exercise.Exercise
	cs        state.CompletionState

	selected int
	filter   filterMode
	offset   int
	cols     int
	rows     int

	action Action
	dirty  bool

	keys keyMap
	help help.Model
}

func NewModel(cs state.CompletionState, exercises []exercise.Exercise) *Model {
	h := help.New()
	h.Styles = help.DefaultDarkStyles()
	return &Model{
		exercises: exercises,
		cs:        cs,
		selected:  0,
		cols:      80,
		rows:      24,
		keys:      defaultKeyMap(),
		help:      h,
	}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Resize only redraws; selection is untouched.
		m.cols = msg.Width
		m.rows = msg.Height
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	// Focus, paste, and mouse events are ignored.
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleRows()
	last := len(visible) - 1

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.action = ActionQuit
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		if m.selected < last {
			m.selected++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Home):
		m.selected = 0
	case key.Matches(msg, m.keys.End):
		if last >= 0 {
			m.selected = last
		}
	case key.Matches(msg, m.keys.FilterDone):
		m.toggleFilter(filterDone)
	case key.Matches(msg, m.keys.FilterPending):
		m.toggleFilter(filterPending)
	case key.Matches(msg, m.keys.Reset):
		if idx, ok := m.selectedCatalogIndex(); ok {
			m.cs.Progress[idx] = false
			m.dirty = true
		}
	case key.Matches(msg, m.keys.Continue):
		if idx, ok := m.selectedCatalogIndex(); ok {
			m.cs.NextIndex = idx
			m.dirty = true
			m.action = ActionContinue
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) toggleFilter(f filterMode) {
	if m.filter == f {
		m.filter = filterAll
	} else {
		m.filter = f
	}
	m.selected = 0
	m.offset = 0
}

// visibleRows returns catalog indices matching the active filter.
func (m *Model) visibleRows() []int {
	out := []int{}
	for i := range m.exercises {
		done := i < len(m.cs.Progress) && m.cs.Progress[i]
		switch m.filter {
		case filterDone:
			if !done {
				continue
			}
		case filterPending:
			if done {
				continue
			}
		}
		out = append(out, i)
	}
	return out
}

func (m *Model) selectedCatalogIndex() (int, bool) {
	visible := m.visibleRows()
	if m.selected < 0 || m.selected >= len(visible) {
		return 0, false
	}
	return visible[m.selected], true
}

func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m *Model) render() string {
	// One line reserved for the help footer.
	bodyHeight := m.rows - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var b strings.Builder
	nameWidth := 4
	for _, ex := range m.exercises {
		if len(ex.Name) > nameWidth {
			nameWidth = len(ex.Name)
		}
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-4s  %-7s  %-*s  %s", "Next", "State", nameWidth, "Name", "Path")))
	b.WriteString("\n")

	visible := m.visibleRows()
	m.scrollIntoView(len(visible), bodyHeight-1)
	end := m.offset + bodyHeight - 1
	if end > len(visible) {
		end = len(visible)
	}
	for row := m.offset; row < end; row++ {
		idx := visible[row]
		ex := m.exercises[idx]

		next := "    "
		if idx == m.cs.NextIndex {
			next = nextStyle.Render(">>>>")
		}
		label := pendingStyle.Render("PENDING")
		if idx < len(m.cs.Progress) && m.cs.Progress[idx] {
			label = doneStyle.Render("DONE   ")
		}
		line := fmt.Sprintf("%s  %s  %-*s  %s", next, label, nameWidth, ex.Name, ex.Path)
		if row == m.selected {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	for filled := end - m.offset + 1; filled < bodyHeight; filled++ {
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) scrollIntoView(rowCount, viewHeight int) {
	if viewHeight < 1 {
		viewHeight = 1
	}
	if m.selected >= rowCount {
		m.selected = rowCount - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+viewHeight {
		m.offset = m.selected - viewHeight + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// Result reports the session outcome after the program has exited.
func (m *Model) Result() Result {
	return Result{
		Action:     m.action,
		ContinueAt: m.cs.NextIndex,
		State:      m.cs,
		Dirty:      m.dirty,
	}
}
