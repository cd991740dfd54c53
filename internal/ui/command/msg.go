package command

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/folio/internal/contact"
	"github.com/leighmacdonald/folio/internal/portfolio"
	"github.com/leighmacdonald/folio/internal/ui/model"
)

func SetViewState(state model.ViewState) tea.Cmd {
	return func() tea.Msg { return state }
}

func SetKeyZone(zone model.KeyZone) tea.Cmd {
	return func() tea.Msg { return zone }
}

// JumpMsg asks the page to scroll so the section's top edge is at the top of the viewport.
type JumpMsg struct {
	Section portfolio.Section
}

func JumpTo(section portfolio.Section) tea.Cmd {
	return func() tea.Msg { return JumpMsg{Section: section} }
}

type ToggleMenuMsg struct{}

func ToggleMenu() tea.Cmd {
	return func() tea.Msg { return ToggleMenuMsg{} }
}

const ClearMessageTimeout = time.Second * 10

type ClearStatusMessageMsg struct{}

func ClearErrorAfter(t time.Duration) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return ClearStatusMessageMsg{}
	})
}

type StatusMsg struct {
	Message string
	Err     bool
}

func SetStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Message: msg, Err: err}
	}
}

// SubmitContactMsg carries a filled in form to whoever owns the contact.Submitter.
type SubmitContactMsg struct {
	Submission contact.Submission
}

func SubmitContact(submission contact.Submission) tea.Cmd {
	return func() tea.Msg { return SubmitContactMsg{Submission: submission} }
}

// ContactResultMsg is the outcome of a submission.
type ContactResultMsg struct {
	Err error
}
