package pages

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/folio/internal/content"
	"github.com/leighmacdonald/folio/internal/portfolio"
	"github.com/leighmacdonald/folio/internal/ui/component"
	"github.com/leighmacdonald/folio/internal/ui/model"
	"github.com/leighmacdonald/folio/internal/ui/styles"
)

// NewMain builds the portfolio screen: the navbar above the scrolling page. The page emits its
// offsets on feed and measures itself into geometry, which the controller's tracker reads.
func NewMain(data content.Content, controller *portfolio.Controller, feed *portfolio.Feed, geometry *component.SectionGeometry) *Main {
	return &Main{
		navbar: component.NewNavbarModel(controller),
		page:   component.NewPageModel(data, feed, geometry),
	}
}

type Main struct {
	navbar    component.NavbarModel
	page      *component.PageModel
	viewState model.ViewState
}

func (m *Main) Init() tea.Cmd {
	return tea.Batch(m.navbar.Init(), m.page.Init())
}

func (m *Main) Update(msg tea.Msg) (*Main, tea.Cmd) {
	if state, ok := msg.(model.ViewState); ok {
		m.viewState = state
	}

	cmds := make([]tea.Cmd, 2)
	m.navbar, cmds[0] = m.navbar.Update(msg)
	m.page, cmds[1] = m.page.Update(msg)

	return m, tea.Batch(cmds...)
}

func (m *Main) Page() *component.PageModel {
	return m.page
}

func (m *Main) View() string {
	hdr := styles.HeaderContainerStyle.Width(m.viewState.Width).Render(m.navbar.View())
	body := styles.ContentContainerStyle.Height(m.viewState.Body).Render(m.page.View())

	return lipgloss.JoinVertical(lipgloss.Left, hdr, body)
}
