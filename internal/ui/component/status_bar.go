package component

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/folio/internal/portfolio"
	"github.com/leighmacdonald/folio/internal/ui/command"
	"github.com/leighmacdonald/folio/internal/ui/input"
	"github.com/leighmacdonald/folio/internal/ui/model"
	"github.com/leighmacdonald/folio/internal/ui/styles"
)

type StatusBarModel struct {
	viewState   model.ViewState
	controller  *portfolio.Controller
	statusMsg   string
	statusError bool
	version     string
	percent     func() float64
}

// NewStatusBarModel creates the bottom bar. percent reports how far down the page is scrolled.
func NewStatusBarModel(version string, controller *portfolio.Controller, percent func() float64) *StatusBarModel {
	return &StatusBarModel{version: version, controller: controller, percent: percent}
}

func (m *StatusBarModel) Init() tea.Cmd {
	return nil
}

func (m *StatusBarModel) Update(msg tea.Msg) (*StatusBarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case command.StatusMsg:
		m.statusMsg = msg.Message
		m.statusError = msg.Err

		return m, command.ClearErrorAfter(command.ClearMessageTimeout)
	case command.ClearStatusMessageMsg:
		m.statusError = false
		m.statusMsg = ""
	case model.ViewState:
		m.viewState = msg
	}

	return m, nil
}

// Message returns the currently displayed status text.
func (m *StatusBarModel) Message() (string, bool) {
	return m.statusMsg, m.statusError
}

func (m *StatusBarModel) View() string {
	left := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.StatusVersion.Render(m.version),
		styles.StatusSection.Render(m.controller.Active().Title()),
		styles.StatusScroll.Render(fmt.Sprintf("%3.0f%%", m.percent()*100)),
	)

	right := styles.StatusHelp.Render(fmt.Sprintf("%s %s", input.Default.Help.Help().Key, input.Default.Help.Help().Desc))
	if m.viewState.KeyZone == model.KZcontactForm {
		right = styles.StatusHelp.Render(fmt.Sprintf("%s %s  %s %s",
			input.Default.Submit.Help().Key, input.Default.Submit.Help().Desc,
			input.Default.Back.Help().Key, input.Default.Back.Help().Desc))
	}

	middle := m.status(max(0, m.viewState.Width-lipgloss.Width(left)-lipgloss.Width(right)))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, middle, right)
}

func (m *StatusBarModel) status(width int) string {
	if m.statusError {
		return styles.StatusError.Width(width).Render(truncate(m.statusMsg, max(0, width-2)))
	}

	return styles.StatusMessage.Width(width).Render(truncate(m.statusMsg, max(0, width-2)))
}
