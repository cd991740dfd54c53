// Package web serves the portfolio as a single HTML page with a contact endpoint.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leighmacdonald/folio/internal/contact"
	"github.com/leighmacdonald/folio/internal/content"
	"golang.org/x/sync/errgroup"
)

var (
	errTemplate = errors.New("failed to parse templates")
	errRender   = errors.New("failed to render content")
	errServe    = errors.New("http server error")
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Opts configures a Server.
type Opts struct {
	ListenAddr      string
	Version         string
	Content         content.Content
	Submitter       contact.Submitter
	SendTimeout     time.Duration
	ShutdownTimeout time.Duration
	Debug           bool
}

type Server struct {
	opts   Opts
	engine *gin.Engine
	page   pageData
}

// New builds the engine and pre-renders everything that does not change between requests.
func New(opts Opts) (*Server, error) {
	if opts.Submitter == nil {
		opts.Submitter = contact.Unwired{}
	}

	page, err := newPageData(opts.Content, opts.Version)
	if err != nil {
		return nil, errors.Join(err, errRender)
	}

	tmpl, err := template.New("").Funcs(template.FuncMap{"year": func() int { return time.Now().Year() }}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Join(err, errTemplate)
	}

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, errors.Join(err, errTemplate)
	}

	if !opts.Debug && gin.Mode() == gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), RequestLogger())
	engine.SetHTMLTemplate(tmpl)
	engine.StaticFS("/static", http.FS(static))

	server := &Server{opts: opts, engine: engine, page: page}
	server.routes(engine)

	return server, nil
}

func (s *Server) routes(router gin.IRouter) {
	router.GET("/", s.index)
	router.POST("/contact", s.contact)
	router.GET("/health", s.health)
}

// Handler exposes the engine, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled and then shuts down, waiting up to the shutdown timeout for
// in flight requests.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.opts.ListenAddr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      s.opts.SendTimeout + 10*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	tasks, taskCtx := errgroup.WithContext(ctx)

	tasks.Go(func() error {
		slog.Info("Listening", slog.String("addr", s.opts.ListenAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Join(err, errServe)
		}

		return nil
	})

	tasks.Go(func() error {
		<-taskCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()

		slog.Info("Shutting down http server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%w: shutdown: %w", errServe, err)
		}

		return nil
	})

	return tasks.Wait()
}
