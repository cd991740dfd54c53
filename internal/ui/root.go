package ui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/folio/internal/contact"
	"github.com/leighmacdonald/folio/internal/portfolio"
	"github.com/leighmacdonald/folio/internal/ui/command"
	"github.com/leighmacdonald/folio/internal/ui/component"
	"github.com/leighmacdonald/folio/internal/ui/input"
	"github.com/leighmacdonald/folio/internal/ui/model"
	"github.com/leighmacdonald/folio/internal/ui/pages"
	"github.com/leighmacdonald/folio/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

const statusBarHeight = 1

// rootModel is the top level model for the ui side of the app.
type rootModel struct {
	ctx         context.Context //nolint:containedctx
	viewState   model.ViewState
	controller  *portfolio.Controller
	mainPage    *pages.Main
	helpPage    pages.Help
	statusModel *component.StatusBarModel
	submitter   contact.Submitter
	sendTimeout time.Duration
	breakpoint  int
	title       string
}

func newRootModel(ctx context.Context, opts Opts, controller *portfolio.Controller, feed *portfolio.Feed, geometry *component.SectionGeometry) *rootModel {
	mainPage := pages.NewMain(opts.Content, controller, feed, geometry)
	if opts.Submitter == nil {
		opts.Submitter = contact.Unwired{}
	}

	return &rootModel{
		ctx:         ctx,
		controller:  controller,
		mainPage:    mainPage,
		helpPage:    pages.NewHelp(opts.BuildVersion, opts.BuildDate, opts.BuildCommit, opts.ConfigPath, opts.LogPath),
		statusModel: component.NewStatusBarModel(opts.BuildVersion, controller, mainPage.Page().ScrollPercent),
		submitter:   opts.Submitter,
		sendTimeout: opts.Config.SendTimeout,
		breakpoint:  opts.Config.MenuBreakpoint,
		title:       opts.Content.Profile.Name,
	}
}

func (m *rootModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.title),
		m.mainPage.Init(),
		m.helpPage.Init(),
		m.statusModel.Init(),
	)
}

func (m *rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	if !m.isInitialized() {
		if _, ok := inMsg.(tea.WindowSizeMsg); !ok {
			return m, nil
		}
	}

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.viewState.Height = msg.Height
		m.viewState.Width = msg.Width
		m.layout()

		return m, command.SetViewState(m.viewState)
	case model.ViewState:
		m.viewState = msg
	case model.KeyZone:
		m.viewState.KeyZone = msg

		return m, command.SetViewState(m.viewState)
	case command.ToggleMenuMsg:
		m.controller.ToggleMenu()
		m.layout()

		return m, command.SetViewState(m.viewState)
	case command.SubmitContactMsg:
		return m, m.send(msg.Submission)
	case command.ContactResultMsg:
		next, cmd := m.propagate(inMsg)

		return next, tea.Batch(cmd, contactStatus(msg.Err))
	case tea.KeyMsg:
		if cmd, handled := m.onKey(msg); handled {
			return m, cmd
		}
	}

	return m.propagate(inMsg)
}

// onKey handles the global bindings. Navigation keys are only global while the page, not the
// contact form, owns the keyboard.
func (m *rootModel) onKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit, true
	}

	if m.viewState.KeyZone != model.KZpage {
		return nil, false
	}

	switch {
	case key.Matches(msg, input.Default.Quit):
		return tea.Quit, true
	case key.Matches(msg, input.Default.Help):
		if m.viewState.Page == model.PageHelp {
			m.viewState.Page = model.PageMain
		} else {
			m.viewState.Page = model.PageHelp
		}

		return command.SetViewState(m.viewState), true
	}

	if m.viewState.Page != model.PageMain {
		return nil, false
	}

	switch {
	case key.Matches(msg, input.Default.Menu):
		if !m.viewState.Narrow {
			return nil, true
		}

		return command.ToggleMenu(), true
	case key.Matches(msg, input.Default.NextSection):
		return command.JumpTo(m.controller.Active().Next()), true
	case key.Matches(msg, input.Default.PrevSection):
		return command.JumpTo(m.controller.Active().Prev()), true
	case key.Matches(msg, input.Default.Home):
		return command.JumpTo(portfolio.SectionHome), true
	case key.Matches(msg, input.Default.About):
		return command.JumpTo(portfolio.SectionAbout), true
	case key.Matches(msg, input.Default.Projects):
		return command.JumpTo(portfolio.SectionProjects), true
	case key.Matches(msg, input.Default.Skills):
		return command.JumpTo(portfolio.SectionSkills), true
	case key.Matches(msg, input.Default.Contact):
		return command.JumpTo(portfolio.SectionContact), true
	case key.Matches(msg, input.Default.Accept):
		if m.controller.Active() != portfolio.SectionContact {
			return nil, true
		}

		return command.SetKeyZone(model.KZcontactForm), true
	}

	return nil, false
}

// layout recomputes the body height from the window size and navbar state.
func (m *rootModel) layout() {
	m.viewState.Narrow = m.viewState.Width < m.breakpoint
	navHeight := component.NavbarHeight(m.viewState.Narrow, m.controller.MenuOpen())
	m.viewState.Body = max(1, m.viewState.Height-navHeight-statusBarHeight)
}

// send hands the submission to the submitter off the update loop, bounded by the send timeout.
func (m *rootModel) send(submission contact.Submission) tea.Cmd {
	parent := m.ctx
	submitter := m.submitter
	timeout := m.sendTimeout

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()

		err := contact.Send(ctx, submitter, submission)
		if err != nil {
			slog.Error("Failed to send contact message", slog.String("error", err.Error()))
		} else {
			slog.Info("Sent contact message", slog.String("email", submission.Email))
		}

		return command.ContactResultMsg{Err: err}
	}
}

func contactStatus(err error) tea.Cmd {
	switch {
	case err == nil:
		return command.SetStatusMessage("Message sent, thank you!", false)
	case errors.Is(err, contact.ErrNoHandler):
		return command.SetStatusMessage("The contact form is not connected to a mailbox", true)
	case errors.Is(err, contact.ErrInvalid):
		return command.SetStatusMessage(err.Error(), true)
	default:
		return command.SetStatusMessage("Failed to send message", true)
	}
}

func (m *rootModel) View() string {
	if !m.isInitialized() {
		return ""
	}

	var content string
	switch m.viewState.Page {
	case model.PageHelp:
		content = m.helpPage.View()
	case model.PageMain:
		content = m.mainPage.View()
	}

	height := m.viewState.Height - statusBarHeight
	ctr := styles.ContentContainerStyle.Width(m.viewState.Width).Height(height).MaxHeight(height).Render(content)
	ftr := styles.FooterContainerStyle.Width(m.viewState.Width).Render(m.statusModel.View())

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, ctr, ftr))
}

func (m *rootModel) isInitialized() bool {
	return m.viewState.Height != 0 && m.viewState.Width != 0
}

func (m *rootModel) propagate(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 3)

	m.mainPage, cmds[0] = m.mainPage.Update(msg)
	m.helpPage, cmds[1] = m.helpPage.Update(msg)
	m.statusModel, cmds[2] = m.statusModel.Update(msg)

	return m, tea.Batch(cmds...)
}

// logMsg is useful for debugging events. Tail the log file ~/.config/folio/folio.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch inMsg.(type) {
	case tea.MouseMsg:
		break
	case command.ClearStatusMessageMsg:
		break
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
