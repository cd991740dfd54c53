package component

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/folio/internal/portfolio"
	"github.com/leighmacdonald/folio/internal/ui/command"
	"github.com/leighmacdonald/folio/internal/ui/model"
	"github.com/leighmacdonald/folio/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

const navLogo = "PORTFOLIO"

// NewNavbarModel creates the top navigation bar. Highlighting and styling come straight from the
// controller so the bar always reflects the tracked state.
func NewNavbarModel(controller *portfolio.Controller) NavbarModel {
	return NavbarModel{
		controller: controller,
		id:         zone.NewPrefix(),
	}
}

type NavbarModel struct {
	controller *portfolio.Controller
	viewState  model.ViewState
	id         string
}

func (m NavbarModel) Init() tea.Cmd {
	return nil
}

func (m NavbarModel) Update(msg tea.Msg) (NavbarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		if zone.Get(m.id + "logo").InBounds(msg) {
			return m, command.JumpTo(portfolio.SectionHome)
		}

		if m.viewState.Narrow && zone.Get(m.id+"menu").InBounds(msg) {
			return m, command.ToggleMenu()
		}

		for _, section := range portfolio.Sections {
			// Check each item to see if it's in bounds.
			if zone.Get(m.id + section.ID()).InBounds(msg) {
				return m, command.JumpTo(section)
			}
		}
	}

	return m, nil
}

// Height is the number of rows the bar occupies, including the dropdown when it is open.
func (m NavbarModel) Height() int {
	return NavbarHeight(m.viewState.Narrow, m.controller.MenuOpen())
}

// NavbarHeight is the row count of the bar for the given layout.
func NavbarHeight(narrow bool, menuOpen bool) int {
	if narrow && menuOpen {
		return 1 + len(portfolio.Sections)
	}

	return 1
}

func (m NavbarModel) View() string {
	if m.viewState.Width == 0 {
		return ""
	}

	state := m.controller.State()
	barStyle := styles.NavBar
	if state.Scrolled {
		barStyle = styles.NavBarScrolled
	}

	logo := zone.Mark(m.id+"logo", styles.NavLogo.Render(navLogo))
	inner := m.viewState.Width - barStyle.GetHorizontalPadding()

	if !m.viewState.Narrow {
		links := make([]string, 0, len(portfolio.Sections))
		for _, section := range portfolio.Sections {
			links = append(links, m.link(section, state.Active))
		}

		right := lipgloss.JoinHorizontal(lipgloss.Top, links...)

		return barStyle.Width(m.viewState.Width).Render(spread(inner, logo, right))
	}

	icon := styles.IconMenu
	if state.MenuOpen {
		icon = styles.IconClose
	}

	hamburger := zone.Mark(m.id+"menu", styles.NavHamburger.Render(icon))
	rows := []string{spread(inner, logo, hamburger)}

	if state.MenuOpen {
		for _, section := range portfolio.Sections {
			rows = append(rows, styles.NavDropdown.Render(m.link(section, state.Active)))
		}
	}

	return barStyle.Width(m.viewState.Width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m NavbarModel) link(section portfolio.Section, active portfolio.Section) string {
	style := styles.NavLink
	if section == active {
		style = styles.NavLinkActive
	}

	return zone.Mark(m.id+section.ID(), style.Render(section.Title()))
}

// spread places left and right at opposite ends of a line width cells wide.
func spread(width int, left string, right string) string {
	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(right))

	return left + strings.Repeat(" ", gap) + right
}
