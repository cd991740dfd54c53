package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/adrg/xdg"
)

var (
	errConfigRead = errors.New("failed to read config file")
	errLoggerInit = errors.New("failed to initialize logger")
)

const (
	ConfigDirName       = "folio"
	DefaultConfigName   = "folio"
	DefaultLogName      = "folio.log"
	EnvPrefix           = "folio"
	DefaultSendTimeout  = 15 * time.Second
	DefaultShutdownWait = 5 * time.Second
	DefaultRowHeightPx  = 16
	DefaultBreakpoint   = 80
	DefaultListenAddr   = ":8080"
	DefaultSMTPPort     = 587
	DefaultFPS          = 60
	minimumRowHeightPx  = 1
	minimumBreakpoint   = 20
)

type Config struct {
	// ContentPath points at a yaml content document. When empty the built in content is used.
	ContentPath string `mapstructure:"content_path"`
	// RowHeightPx is how many pixels one terminal row represents. Scroll offsets and section
	// geometry are expressed in pixels so the scroll threshold and lookahead keep their meaning.
	RowHeightPx int `mapstructure:"row_height_px"`
	// MenuBreakpoint is the terminal width, in columns, below which the navigation collapses
	// into the toggleable menu.
	MenuBreakpoint int           `mapstructure:"menu_breakpoint"`
	FPS            int           `mapstructure:"fps"`
	ListenAddr     string        `mapstructure:"listen_addr"`
	SendTimeout    time.Duration `mapstructure:"send_timeout"`
	// ShutdownTimeout is how long the web server waits for in-flight requests when stopping.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Debug           bool          `mapstructure:"debug"`
	SMTP            SMTP          `mapstructure:"smtp"`
}

// SMTP configures delivery of contact form messages. Delivery is disabled unless Host and
// User are both set.
type SMTP struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	To       string `mapstructure:"to"`
}

func (s SMTP) Enabled() bool {
	return s.Host != "" && s.User != ""
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console
// while the ui owns it.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(Path(logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}

// StderrLoggerInit is used by the non interactive commands.
func StderrLoggerInit(level slog.Level) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
