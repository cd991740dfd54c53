package input

import "github.com/charmbracelet/bubbles/key"

type Map struct {
	Quit        key.Binding
	Help        key.Binding
	Back        key.Binding
	Menu        key.Binding
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Top         key.Binding
	Bottom      key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	Home        key.Binding
	About       key.Binding
	Projects    key.Binding
	Skills      key.Binding
	Contact     key.Binding
	Accept      key.Binding
	NextField   key.Binding
	PrevField   key.Binding
	Submit      key.Binding
}

// TODO make configurable.
var Default = Map{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Help"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Back"),
	),
	Menu: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "Menu"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "Scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "Scroll down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "b"),
		key.WithHelp("pgup", "Page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "f", " "),
		key.WithHelp("pgdn", "Page down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "Top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "Bottom"),
	),
	NextSection: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "Next section"),
	),
	PrevSection: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift tab", "Prev section"),
	),
	Home: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "Home"),
	),
	About: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "About"),
	),
	Projects: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "Projects"),
	),
	Skills: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "Skills"),
	),
	Contact: key.NewBinding(
		key.WithKeys("5"),
		key.WithHelp("5", "Contact"),
	),
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "Write message"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "Next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift tab", "Prev field"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "Send"),
	),
}
