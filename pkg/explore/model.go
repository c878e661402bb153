// Package explore is the interactive terminal viewer: a query field that
// re-filters the loaded dataset on every keystroke, and two result panes
// for diagnostics and bindings.
package explore

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diaglens/diaglens/pkg/filter"
	"github.com/diaglens/diaglens/pkg/query"
	"github.com/diaglens/diaglens/pkg/types"
)

// focusedPane tracks which results pane arrow keys scroll.
type focusedPane int

const (
	paneErrors focusedPane = iota
	paneBindings
)

// allModules selects every module at once.
const allModules = -1

// Model is the root Bubble Tea model for the explore TUI.
type Model struct {
	dataset *types.Dataset

	input    textinput.Model
	errors   resultsPane
	bindings resultsPane

	focus     focusedPane
	moduleIdx int // index into dataset.Modules, or allModules

	width  int
	height int
	err    error
}

// New creates a Model over a loaded dataset.
func New(ds *types.Dataset) Model {
	ti := textinput.New()
	ti.Prompt = "query> "
	ti.Placeholder = "line[:col][-line[:col]] text"
	ti.Focus()

	m := Model{
		dataset:   ds,
		input:     ti,
		errors:    newResultsPane("Errors"),
		bindings:  newResultsPane("Bindings"),
		moduleIdx: allModules,
	}
	m.errors.focused = true
	m.refilter()

	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.SetWindowTitle("diaglens explore"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		switch {
		case keyMatches(msg, defaultKeys.Quit):
			return m, tea.Quit

		case keyMatches(msg, defaultKeys.NextPane):
			m.focus = (m.focus + 1) % 2
			m.errors.focused = m.focus == paneErrors
			m.bindings.focused = m.focus == paneBindings
			return m, nil

		case keyMatches(msg, defaultKeys.NextModule):
			m.cycleModule(1)
			return m, nil

		case keyMatches(msg, defaultKeys.PrevModule):
			m.cycleModule(-1)
			return m, nil

		case keyMatches(msg, defaultKeys.Up),
			keyMatches(msg, defaultKeys.Down),
			keyMatches(msg, defaultKeys.PageUp),
			keyMatches(msg, defaultKeys.PageDown):
			var cmd tea.Cmd
			m.errors, cmd = m.errors.Update(msg)
			if cmd == nil {
				m.bindings, cmd = m.bindings.Update(msg)
			}
			return m, cmd
		}

		// Everything else edits the query field; any change re-runs the
		// whole filter pass.
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m.refilter()
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// cycleModule steps through all-modules, then each module in dataset order.
func (m *Model) cycleModule(dir int) {
	n := len(m.dataset.Modules)
	if n == 0 {
		return
	}
	idx := m.moduleIdx + dir
	switch {
	case idx < allModules:
		idx = n - 1
	case idx >= n:
		idx = allModules
	}
	m.moduleIdx = idx
	m.refilter()
}

// refilter runs one full pass: parse the query once, then scan every
// candidate record in the selected scope.
func (m *Model) refilter() {
	m.err = nil

	q, err := query.Parse(m.input.Value())
	if err != nil {
		m.err = err
		return
	}

	scope := m.dataset.Modules
	if m.moduleIdx != allModules {
		scope = m.dataset.Modules[m.moduleIdx : m.moduleIdx+1]
	}

	results, err := filter.Apply(types.Dataset{Modules: scope}, q)
	if err != nil {
		m.err = err
		return
	}

	showModule := m.moduleIdx == allModules

	var errRows, bindRows []resultRow
	for _, res := range results {
		for _, e := range res.Errors {
			row := resultRow{Range: e.Range, Cols: []string{e.Message}}
			if showModule {
				row.Cols = append([]string{res.Name}, row.Cols...)
			}
			errRows = append(errRows, row)
		}
		for _, b := range res.Bindings {
			row := resultRow{Range: b.Range, Cols: []string{b.Key, b.Binding, b.Result}}
			if showModule {
				row.Cols = append([]string{res.Name}, row.Cols...)
			}
			bindRows = append(bindRows, row)
		}
	}

	m.errors.setRows(errRows)
	m.bindings.setRows(bindRows)
}

func (m *Model) updateLayout() {
	paneHeight := max(6, m.height-3) // header + input + help
	half := m.width / 2
	m.errors.setSize(half, paneHeight)
	m.bindings.setSize(m.width-half, paneHeight)
	m.input.Width = max(10, m.width-len(m.input.Prompt)-2)
}

func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	scope := "all modules"
	if m.moduleIdx != allModules {
		scope = m.dataset.Modules[m.moduleIdx].Name
	}
	header := titleStyle.Render(" diaglens ") + countStyle.Render(" "+scope)

	status := helpStyle.Render("tab: switch pane · C-n/C-p: module · esc: quit")
	if m.err != nil {
		status = errStyle.Render(fmt.Sprintf("query error: %v", m.err))
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top, m.errors.View(), m.bindings.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.input.View(),
		panes,
		status,
	)
}
