package ui

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/contact"
	"github.com/leighmacdonald/folio/internal/content"
	"github.com/leighmacdonald/folio/internal/portfolio"
	"github.com/leighmacdonald/folio/internal/ui/command"
	"github.com/leighmacdonald/folio/internal/ui/component"
	"github.com/leighmacdonald/folio/internal/ui/model"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

type stubSubmitter struct {
	err error
}

func (s stubSubmitter) Submit(_ context.Context, _ contact.Submission) error {
	return s.err
}

func newTestRoot(t *testing.T, submitter contact.Submitter) (*rootModel, *portfolio.Controller) {
	t.Helper()

	feed := portfolio.NewFeed()
	geometry := component.NewSectionGeometry(config.DefaultRowHeightPx)
	controller := portfolio.NewController(geometry)
	t.Cleanup(controller.Mount(feed))

	root := newRootModel(context.Background(), Opts{
		Config: config.Config{
			RowHeightPx:    config.DefaultRowHeightPx,
			MenuBreakpoint: config.DefaultBreakpoint,
			SendTimeout:    time.Second,
		},
		Content:      content.Default(),
		Submitter:    submitter,
		BuildVersion: "test",
	}, controller, feed, geometry)

	return root, controller
}

// step delivers msg and then any message produced by the returned command, skipping batches
// and ticks which would block or need the program loop.
func step(t *testing.T, root *rootModel, msg tea.Msg) {
	t.Helper()

	_, cmd := root.Update(msg)
	if cmd == nil {
		return
	}

	switch next := cmd().(type) {
	case model.ViewState, model.KeyZone, command.JumpMsg, command.ToggleMenuMsg:
		step(t, root, next)
	}
}

func keyRunes(value string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)}
}

func TestRootIgnoresInputBeforeSize(t *testing.T) {
	root, controller := newTestRoot(t, nil)

	_, cmd := root.Update(keyRunes("3"))
	require.Nil(t, cmd)
	require.Empty(t, root.View())
	require.Equal(t, portfolio.SectionHome, controller.Active())
}

func TestRootLayout(t *testing.T) {
	root, _ := newTestRoot(t, nil)

	step(t, root, tea.WindowSizeMsg{Width: 120, Height: 40})
	require.False(t, root.viewState.Narrow)
	require.Equal(t, 40-1-statusBarHeight, root.viewState.Body)
	require.NotEmpty(t, root.View())

	step(t, root, tea.WindowSizeMsg{Width: 60, Height: 40})
	require.True(t, root.viewState.Narrow)
}

func TestRootSectionKeys(t *testing.T) {
	root, controller := newTestRoot(t, nil)
	step(t, root, tea.WindowSizeMsg{Width: 120, Height: 40})

	step(t, root, keyRunes("3"))
	require.Equal(t, portfolio.SectionProjects, controller.Active())

	step(t, root, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, portfolio.SectionSkills, controller.Active())

	step(t, root, tea.KeyMsg{Type: tea.KeyShiftTab})
	step(t, root, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, portfolio.SectionAbout, controller.Active())

	step(t, root, keyRunes("1"))
	require.Equal(t, portfolio.SectionHome, controller.Active())
	require.False(t, controller.Scrolled())
}

func TestRootMenuToggle(t *testing.T) {
	root, controller := newTestRoot(t, nil)

	// The menu key does nothing while the full navbar is shown.
	step(t, root, tea.WindowSizeMsg{Width: 120, Height: 40})
	step(t, root, keyRunes("m"))
	require.False(t, controller.MenuOpen())

	step(t, root, tea.WindowSizeMsg{Width: 60, Height: 40})
	body := root.viewState.Body

	step(t, root, keyRunes("m"))
	require.True(t, controller.MenuOpen())
	require.Equal(t, body-len(portfolio.Sections), root.viewState.Body)

	// Following a link scrolls but leaves the menu open.
	step(t, root, keyRunes("4"))
	require.Equal(t, portfolio.SectionSkills, controller.Active())
	require.True(t, controller.MenuOpen())

	step(t, root, keyRunes("m"))
	require.False(t, controller.MenuOpen())
	require.Equal(t, body, root.viewState.Body)
}

func TestRootHelpPage(t *testing.T) {
	root, _ := newTestRoot(t, nil)
	step(t, root, tea.WindowSizeMsg{Width: 120, Height: 40})

	step(t, root, keyRunes("?"))
	require.Equal(t, model.PageHelp, root.viewState.Page)
	require.Contains(t, root.View(), "Version")

	step(t, root, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, model.PageMain, root.viewState.Page)
}

func TestRootContactFocus(t *testing.T) {
	root, controller := newTestRoot(t, nil)
	step(t, root, tea.WindowSizeMsg{Width: 120, Height: 40})

	// enter only opens the form when the contact section is active.
	step(t, root, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, model.KZpage, root.viewState.KeyZone)

	step(t, root, keyRunes("5"))
	require.Equal(t, portfolio.SectionContact, controller.Active())

	step(t, root, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, model.KZcontactForm, root.viewState.KeyZone)

	// Section keys type into the form instead of navigating.
	step(t, root, keyRunes("1"))
	require.Equal(t, portfolio.SectionContact, controller.Active())
	require.Equal(t, "1", root.mainPage.Page().Form().Submission().Name)

	step(t, root, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, model.KZpage, root.viewState.KeyZone)
}

func TestRootSend(t *testing.T) {
	submission := contact.Submission{Name: "Sam", Email: "sam@example.com", Message: "Hello"}

	for _, testCase := range []struct {
		name      string
		submitter contact.Submitter
		err       error
	}{
		{name: "sent", submitter: stubSubmitter{}},
		{name: "unwired", submitter: contact.Unwired{}, err: contact.ErrNoHandler},
		{name: "failed", submitter: stubSubmitter{err: contact.ErrSend}, err: contact.ErrSend},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			root, _ := newTestRoot(t, testCase.submitter)

			msg, ok := root.send(submission)().(command.ContactResultMsg)
			require.True(t, ok)
			require.ErrorIs(t, msg.Err, testCase.err)
		})
	}
}

func TestContactStatus(t *testing.T) {
	sent, ok := contactStatus(nil)().(command.StatusMsg)
	require.True(t, ok)
	require.False(t, sent.Err)

	unwired, ok := contactStatus(contact.ErrNoHandler)().(command.StatusMsg)
	require.True(t, ok)
	require.True(t, unwired.Err)
	require.Contains(t, unwired.Message, "not connected")

	failed, ok := contactStatus(errors.Join(errors.New("dial tcp"), contact.ErrSend))().(command.StatusMsg)
	require.True(t, ok)
	require.True(t, failed.Err)
	require.Equal(t, "Failed to send message", failed.Message)
}
