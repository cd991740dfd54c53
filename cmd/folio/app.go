package main

import (
	"context"
	"log/slog"

	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/contact"
	"github.com/leighmacdonald/folio/internal/content"
	"github.com/leighmacdonald/folio/internal/ui"
	"github.com/leighmacdonald/folio/internal/web"
)

// App is the main application container, shared by every renderer.
type App struct {
	config    config.Config
	content   content.Content
	submitter contact.Submitter
}

// NewApp loads the content document and picks the contact submitter from config.
func NewApp(conf config.Config) (*App, error) {
	data := content.Default()
	if conf.ContentPath != "" {
		loaded, errLoad := content.Load(conf.ContentPath)
		if errLoad != nil {
			return nil, errLoad
		}

		data = loaded
	}

	return &App{
		config:    conf,
		content:   data,
		submitter: newSubmitter(conf.SMTP),
	}, nil
}

func newSubmitter(conf config.SMTP) contact.Submitter {
	if !conf.Enabled() {
		slog.Info("SMTP not configured, contact form is unwired")

		return contact.Unwired{}
	}

	slog.Info("Contact form sends via smtp", slog.String("host", conf.Host), slog.Int("port", conf.Port))

	return contact.NewMailer(conf.Host, conf.Port, conf.User, conf.Password, conf.To)
}

func (app *App) RunUI(ctx context.Context, configPath string, logPath string) error {
	return ui.New(ctx, ui.Opts{
		Config:       app.config,
		Content:      app.content,
		Submitter:    app.submitter,
		BuildVersion: BuildVersion,
		BuildDate:    BuildDate,
		BuildCommit:  BuildCommit,
		ConfigPath:   configPath,
		LogPath:      logPath,
	}).Run()
}

func (app *App) Serve(ctx context.Context) error {
	server, errServer := web.New(web.Opts{
		ListenAddr:      app.config.ListenAddr,
		Version:         BuildVersion,
		Content:         app.content,
		Submitter:       app.submitter,
		SendTimeout:     app.config.SendTimeout,
		ShutdownTimeout: app.config.ShutdownTimeout,
		Debug:           app.config.Debug,
	})
	if errServer != nil {
		return errServer
	}

	return server.Run(ctx)
}
