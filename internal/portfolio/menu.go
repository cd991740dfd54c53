package portfolio

// Menu is the open/closed state of the collapsed navigation menu.
type Menu struct {
	open bool
}

// Toggle flips the menu and returns the new state.
func (m *Menu) Toggle() bool {
	m.open = !m.open

	return m.open
}

func (m *Menu) Open() bool {
	return m.open
}
