// Package board is the interactive bubbletea model for the sales race. It
// owns the store, turns key presses into store mutations and re-renders
// the ui panels into a scrollable viewport.
package board

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"salesrace/cmd/salesrace/ui"
	"salesrace/internal/config"
	"salesrace/internal/race"
)

// editMode says which input, if any, owns the keyboard.
type editMode int

const (
	editNone editMode = iota
	editTarget
	editName
	editValue
)

func (e editMode) String() string {
	switch e {
	case editTarget:
		return "target"
	case editName:
		return "name"
	case editValue:
		return "value"
	default:
		return "none"
	}
}

// Options configures a Model.
type Options struct {
	Currency string
	Theme    config.Theme
	// TrackWidth fixes the lane length in cells; 0 fits the terminal.
	TrackWidth int
	Logger     *zap.Logger
}

// Model is the bubbletea model for the board.
type Model struct {
	store  *race.Store
	logger *zap.Logger

	theme    ui.Theme
	styles   ui.Styles
	layout   ui.LayoutConfig
	currency string
	track    int

	keys     keyMap
	help     help.Model
	viewport viewport.Model
	input    textinput.Model

	selected int
	mode     editMode
	editID   int
	showHelp bool
	status   string
}

// New builds a model around store. The first competitor starts selected.
func New(store *race.Store, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	theme := ui.ThemeFor(opts.Theme)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 64

	m := Model{
		store:    store,
		logger:   logger,
		theme:    theme,
		styles:   ui.NewStyles(theme),
		layout:   ui.NewLayoutConfig(0, 0, opts.TrackWidth),
		currency: opts.Currency,
		track:    opts.TrackWidth,
		keys:     defaultKeyMap(),
		help:     help.New(),
		viewport: viewport.New(ui.DefaultTerminalWidth, ui.DefaultTerminalHeight-footerHeight),
		input:    ti,
	}
	if r := store.Snapshot().Competitors; len(r) > 0 {
		m.selected = r[0].ID
	}
	m.refresh()
	return m
}

const footerHeight = 2

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayoutConfig(msg.Width, msg.Height, m.track)
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-footerHeight, 1)
		m.help.Width = msg.Width
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.mode != editNone {
			return m.handleEditKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey runs a board command for msg.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp

	case key.Matches(msg, m.keys.Scroll):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case m.showHelp:
		// Only help, scroll and quit act while the help page is up.
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Next):
		m.moveSelection(1)

	case key.Matches(msg, m.keys.Add):
		c, ok := m.store.Add()
		if !ok {
			m.status = "The track is full."
			break
		}
		m.selected = c.ID

	case key.Matches(msg, m.keys.Remove):
		m.removeSelected()

	case key.Matches(msg, m.keys.Rename):
		return m.beginEdit(editName)
	case key.Matches(msg, m.keys.Value):
		return m.beginEdit(editValue)
	case key.Matches(msg, m.keys.Target):
		return m.beginEdit(editTarget)

	case key.Matches(msg, m.keys.ValueUp):
		m.nudgeValue(race.ValueStep)
	case key.Matches(msg, m.keys.ValueDown):
		m.nudgeValue(-race.ValueStep)

	case key.Matches(msg, m.keys.TargetUp):
		m.store.SetTarget(race.ClampTarget(m.store.Snapshot().Target + race.TargetStep))
	case key.Matches(msg, m.keys.TargetDown):
		m.store.SetTarget(race.ClampTarget(m.store.Snapshot().Target - race.TargetStep))

	case key.Matches(msg, m.keys.Quick):
		i, err := strconv.Atoi(msg.String())
		if err != nil || i < 1 || i > len(race.QuickTargets) {
			break
		}
		m.store.SetTarget(race.QuickTargets[i-1])

	case key.Matches(msg, m.keys.Reset):
		m.store.Reset()
		m.status = "Race reset."

	default:
		return m, nil
	}

	m.refresh()
	return m, nil
}

// handleEditKey routes keys to the focused input until enter or esc.
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Commit):
		m.commitEdit()
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.endEdit()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

// beginEdit focuses the input for mode. Name edits start from the current
// name; number edits start empty with the current value as placeholder.
func (m Model) beginEdit(mode editMode) (tea.Model, tea.Cmd) {
	st := m.store.Snapshot()
	m.input.Reset()

	switch mode {
	case editTarget:
		m.input.Placeholder = race.FormatAmount(st.Target)
	case editName, editValue:
		c, ok := st.Competitors.Find(m.selected)
		if !ok {
			m.status = "Select a competitor first."
			m.refresh()
			return m, nil
		}
		m.editID = c.ID
		if mode == editName {
			m.input.Placeholder = race.DefaultName(c.ID)
			m.input.SetValue(c.Name)
			m.input.CursorEnd()
		} else {
			m.input.Placeholder = race.FormatAmount(c.Value)
		}
	}

	m.mode = mode
	cmd := m.input.Focus()
	m.logger.Debug("edit started", zap.Stringer("mode", mode), zap.Int("id", m.editID))
	m.refresh()
	return m, cmd
}

// commitEdit applies the input through the boundary parsers. An empty
// number input leaves the stored value alone.
func (m *Model) commitEdit() {
	raw := m.input.Value()
	switch m.mode {
	case editTarget:
		if raw != "" {
			m.store.SetTarget(race.ParseTarget(raw))
		}
	case editName:
		m.store.UpdateCompetitor(m.editID, race.NameEdit(raw))
	case editValue:
		if raw != "" {
			m.store.UpdateCompetitor(m.editID, race.ValueEdit(race.ParseValue(raw)))
		}
	}
	m.logger.Debug("edit committed", zap.Stringer("mode", m.mode), zap.Int("id", m.editID), zap.String("raw", raw))
	m.endEdit()
}

func (m *Model) endEdit() {
	m.mode = editNone
	m.editID = 0
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) nudgeValue(delta float64) {
	c, ok := m.store.Snapshot().Competitors.Find(m.selected)
	if !ok {
		return
	}
	m.store.UpdateCompetitor(c.ID, race.ValueEdit(race.ClampValue(c.Value+delta)))
}

// moveSelection steps through the roster, wrapping at both ends.
func (m *Model) moveSelection(delta int) {
	r := m.store.Snapshot().Competitors
	if len(r) == 0 {
		m.selected = 0
		return
	}
	i := r.Index(m.selected)
	if i < 0 {
		m.selected = r[0].ID
		return
	}
	m.selected = r[(i+delta+len(r))%len(r)].ID
}

// removeSelected drops the selected competitor and selects its neighbour.
func (m *Model) removeSelected() {
	r := m.store.Snapshot().Competitors
	i := r.Index(m.selected)
	if i < 0 || !m.store.Remove(m.selected) {
		return
	}
	r = m.store.Snapshot().Competitors
	if len(r) == 0 {
		m.selected = 0
		return
	}
	m.selected = r[min(i, len(r)-1)].ID
}

// board assembles the render input for the current state.
func (m Model) board() ui.Board {
	b := ui.Board{
		State:    m.store.Snapshot(),
		Styles:   m.styles,
		Layout:   m.layout,
		Currency: m.currency,
		Selected: m.selected,
	}
	switch m.mode {
	case editTarget:
		b.TargetInput = m.input.View()
	case editName:
		b.Editing = &ui.FieldEditor{ID: m.editID, Field: race.FieldName, View: m.input.View()}
	case editValue:
		b.Editing = &ui.FieldEditor{ID: m.editID, Field: race.FieldValue, View: m.input.View()}
	}
	return b
}

// refresh re-renders the viewport content.
func (m *Model) refresh() {
	if m.showHelp {
		out, err := ui.RenderHelp(m.layout.TerminalWidth, m.theme.IsDark)
		if err != nil {
			m.logger.Warn("help render failed", zap.Error(err))
			out = ui.HelpMarkdown
		}
		m.viewport.SetContent(out)
		return
	}
	m.viewport.SetContent(ui.Render(m.board()))
}

// View implements tea.Model.
func (m Model) View() string {
	var footer string
	if m.mode != editNone {
		footer = m.help.View(editKeys{m.keys})
	} else {
		footer = m.help.View(m.keys)
	}
	status := m.styles.Muted.Render(m.status)
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), status, footer)
}

// State returns the current race snapshot.
func (m Model) State() race.State {
	return m.store.Snapshot()
}

// Selected returns the selected competitor id, 0 for none.
func (m Model) Selected() int {
	return m.selected
}
