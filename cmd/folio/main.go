package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path"
	"runtime"
	"syscall"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/export"
	"github.com/spf13/cobra"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	listenAddr     string
	outputPath     string
	rootCmd        = &cobra.Command{
		Use:   "folio",
		Short: "Personal portfolio",
		Long:  `folio - A single page developer portfolio for the terminal and the web`,
		RunE:  run,
	}

	serveCmd = &cobra.Command{
		Use:               "serve",
		Short:             "Serve the portfolio over http",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              serve,
	}

	exportCmd = &cobra.Command{
		Use:               "export",
		Short:             "Export the portfolio as markdown",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              exportMarkdown,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about folio",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}
)

var errApp = errors.New("application error")

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file path")
	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "Listen address, overrides listen_addr")
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file, defaults to stdout")
	rootCmd.AddCommand(serveCmd, exportCmd, versionCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fang.Execute(ctx, rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		stop()
		os.Exit(1) //nolint:gocritic
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("folio - Developer portfolio\n\n")   //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)     //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)      //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)        //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion) //nolint:forbidigo
}

// run starts the terminal ui.
func run(cmd *cobra.Command, _ []string) error {
	// Make sure our config home exists, the log file lives there.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	loader := config.NewLoader(cfgFile)
	userConfig, errConfig := loader.Read()
	if errConfig != nil {
		return errors.Join(errApp, errConfig)
	}

	level := slog.LevelInfo
	if userConfig.Debug {
		level = slog.LevelDebug
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, level)
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting folio", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()))

	app, errApplication := NewApp(userConfig)
	if errApplication != nil {
		return errors.Join(errApplication, errApp)
	}

	if err := app.RunUI(cmd.Context(), loader.Path(), config.Path(config.DefaultLogName)); err != nil {
		return errors.Join(err, errApp)
	}

	return nil
}

func serve(cmd *cobra.Command, _ []string) error {
	userConfig, errConfig := config.NewLoader(cfgFile).Read()
	if errConfig != nil {
		return errors.Join(errApp, errConfig)
	}

	if userConfig.Debug {
		config.StderrLoggerInit(slog.LevelDebug)
	} else {
		config.StderrLoggerInit(slog.LevelInfo)
	}

	if listenAddr != "" {
		userConfig.ListenAddr = listenAddr
	}

	app, errApplication := NewApp(userConfig)
	if errApplication != nil {
		return errors.Join(errApplication, errApp)
	}

	if err := app.Serve(cmd.Context()); err != nil {
		return errors.Join(err, errApp)
	}

	return nil
}

func exportMarkdown(cmd *cobra.Command, _ []string) error {
	userConfig, errConfig := config.NewLoader(cfgFile).Read()
	if errConfig != nil {
		return errors.Join(errApp, errConfig)
	}

	config.StderrLoggerInit(slog.LevelWarn)

	app, errApplication := NewApp(userConfig)
	if errApplication != nil {
		return errors.Join(errApplication, errApp)
	}

	output := cmd.OutOrStdout()
	if outputPath != "" {
		outFile, errCreate := os.Create(outputPath)
		if errCreate != nil {
			return errors.Join(errCreate, errApp)
		}

		defer func() {
			if err := outFile.Close(); err != nil {
				slog.Error("Failed to close output file", slog.String("error", err.Error()))
			}
		}()

		output = outFile
	}

	if err := export.NewMarkdownWriter(output).Write(app.content); err != nil {
		return errors.Join(err, errApp)
	}

	return nil
}
