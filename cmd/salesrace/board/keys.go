package board

import "github.com/charmbracelet/bubbles/key"

// keyMap is the board's key bindings. It satisfies help.KeyMap.
type keyMap struct {
	Prev       key.Binding
	Next       key.Binding
	Add        key.Binding
	Remove     key.Binding
	Rename     key.Binding
	Value      key.Binding
	ValueUp    key.Binding
	ValueDown  key.Binding
	Target     key.Binding
	TargetUp   key.Binding
	TargetDown key.Binding
	Quick      key.Binding
	Reset      key.Binding
	Scroll     key.Binding
	Help       key.Binding
	Quit       key.Binding

	Commit key.Binding
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev: key.NewBinding(
			key.WithKeys("up", "left", "k"),
			key.WithHelp("↑/k", "prev"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "right", "j"),
			key.WithHelp("↓/j", "next"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "remove"),
		),
		Rename: key.NewBinding(
			key.WithKeys("enter", "n"),
			key.WithHelp("n", "name"),
		),
		Value: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "value"),
		),
		ValueUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+/-", "±100"),
		),
		ValueDown: key.NewBinding(
			key.WithKeys("-", "_"),
		),
		Target: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "target"),
		),
		TargetUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("[/]", "±1000"),
		),
		TargetDown: key.NewBinding(
			key.WithKeys("["),
		),
		Quick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"),
			key.WithHelp("1-8", "quick target"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("pgup", "pgdown"),
			key.WithHelp("pgup/pgdn", "scroll"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp is the footer line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Rename, k.Value, k.ValueUp, k.Target, k.Quick, k.Reset, k.Help, k.Quit}
}

// FullHelp groups every binding into columns.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Add, k.Remove},
		{k.Rename, k.Value, k.ValueUp},
		{k.Target, k.TargetUp, k.Quick, k.Reset},
		{k.Scroll, k.Help, k.Quit},
	}
}

// editKeys is the footer shown while an input is focused.
type editKeys struct{ keyMap }

func (k editKeys) ShortHelp() []key.Binding { return []key.Binding{k.Commit, k.Cancel} }

func (k editKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
