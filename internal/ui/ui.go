package ui

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/contact"
	"github.com/leighmacdonald/folio/internal/content"
	"github.com/leighmacdonald/folio/internal/portfolio"
	"github.com/leighmacdonald/folio/internal/ui/component"
	zone "github.com/lrstanley/bubblezone"
)

var ErrUIExit = errors.New("ui error returned")

// Opts carries everything the terminal renderer needs from the app.
type Opts struct {
	Config  config.Config
	Content content.Content
	// Submitter receives contact form messages. Defaults to contact.Unwired.
	Submitter    contact.Submitter
	BuildVersion string
	BuildDate    string
	BuildCommit  string
	ConfigPath   string
	LogPath      string
}

type UI struct {
	program    *tea.Program
	controller *portfolio.Controller
	feed       *portfolio.Feed
}

func New(ctx context.Context, opts Opts) *UI {
	zone.NewGlobal()

	feed := portfolio.NewFeed()
	geometry := component.NewSectionGeometry(opts.Config.RowHeightPx)
	controller := portfolio.NewController(geometry)

	return &UI{
		controller: controller,
		feed:       feed,
		program: tea.NewProgram(
			newRootModel(ctx, opts, controller, feed, geometry),
			tea.WithMouseCellMotion(),
			tea.WithAltScreen(),
			tea.WithContext(ctx),
			tea.WithFPS(opts.Config.FPS)),
	}
}

// Run mounts the controller on the page's scroll feed for the lifetime of the program. The
// subscription is released on every exit path.
func (t UI) Run() error {
	release := t.controller.Mount(t.feed)
	defer release()

	unobserve := t.controller.Tracker().Observe(func(state portfolio.ScrollState) {
		slog.Debug("Scroll state changed",
			slog.String("section", state.Active.ID()), slog.Bool("scrolled", state.Scrolled))
	})
	defer unobserve()

	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}
