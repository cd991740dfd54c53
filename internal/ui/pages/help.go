package pages

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/folio/internal/ui/command"
	"github.com/leighmacdonald/folio/internal/ui/input"
	"github.com/leighmacdonald/folio/internal/ui/model"
	"github.com/leighmacdonald/folio/internal/ui/styles"
)

func NewHelp(buildVersion, buildDate, buildCommit string, configPath string, logPath string) Help {
	return Help{
		configPath:   configPath,
		logPath:      logPath,
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

type Help struct {
	helpView     help.Model
	viewState    model.ViewState
	configPath   string
	logPath      string
	buildVersion string
	buildDate    string
	buildCommit  string
}

func (m Help) Init() tea.Cmd {
	return nil
}

func (m Help) Update(msg tea.Msg) (Help, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch { //nolint:gocritic
		case key.Matches(msg, input.Default.Back):
			// go back to main view
			if m.viewState.Page == model.PageHelp {
				m.viewState.Page = model.PageMain

				return m, command.SetViewState(m.viewState)
			}
		}
	case model.ViewState:
		m.viewState = msg
	}

	return m, nil
}

func (m Help) View() string {
	left := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Quit,
			input.Default.Help,
			input.Default.Back,
			input.Default.Menu,
			input.Default.Accept,
			input.Default.Submit,
		},
	})

	middle := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Home,
			input.Default.About,
			input.Default.Projects,
			input.Default.Skills,
			input.Default.Contact,
			input.Default.NextSection,
			input.Default.PrevSection,
		},
	})

	right := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Up,
			input.Default.Down,
			input.Default.PageUp,
			input.Default.PageDown,
			input.Default.Top,
			input.Default.Bottom,
		},
	})

	helpContent := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.HelpBox.Render(left), styles.HelpBox.Render(middle), styles.HelpBox.Render(right))

	commit := m.buildCommit
	//goland:noinspection GoBoolExpressions
	if len(commit) > 8 {
		commit = m.buildCommit[0:8]
	}

	content := lipgloss.JoinVertical(lipgloss.Center, helpContent,
		styles.DetailRow("Version", m.buildVersion),
		styles.DetailRow("Commit", commit),
		styles.DetailRow("Date", m.buildDate),
		styles.DetailRow("Config Path", m.configPath),
		styles.DetailRow("Log Path", m.logPath),
	)

	return lipgloss.Place(max(m.viewState.Width, lipgloss.Width(content)), max(m.viewState.Body, lipgloss.Height(content)),
		lipgloss.Center, lipgloss.Center, content)
}
