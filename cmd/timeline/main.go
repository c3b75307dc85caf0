package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	"github.com/oklog/run"
	"github.com/sirupsen/logrus"

	"github.com/TudorHulban/timeline/cmd/timeline/commands"
	"github.com/TudorHulban/timeline/internal/log"
	loglogrus "github.com/TudorHulban/timeline/internal/log/logrus"
)

const (
	// Version is the application version (set via ldflags).
	Version = "dev"
)

// Run runs the main application.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	// Optional, flags and real env vars win.
	_ = godotenv.Load()

	app := kingpin.New("timeline", "Project schedule layout and team workload classification.")
	app.DefaultEnvars()
	rootCmd := commands.NewRootCommand(app)

	// Setup commands (registers flags).
	scheduleCmd := commands.NewScheduleCommand(rootCmd, app)
	workloadCmd := commands.NewWorkloadCommand(rootCmd, app)
	statsCmd := commands.NewStatsCommand(rootCmd, app)

	cmds := map[string]commands.Command{
		scheduleCmd.Name(): scheduleCmd,
		workloadCmd.Name(): workloadCmd,
		statsCmd.Name():    statsCmd,
	}

	// Parse command.
	cmdName, err := app.Parse(args[1:])
	if err != nil {
		return fmt.Errorf("invalid command configuration: %w", err)
	}

	// Set standard input/output.
	rootCmd.Stdin = stdin
	rootCmd.Stdout = stdout
	rootCmd.Stderr = stderr

	// Every command prints tables or JSON on stdout, keep logs out of the
	// terminal unless asked for.
	if !rootCmd.Debug && rootCmd.LogFile == "" {
		rootCmd.NoLog = true
	}

	// Set logger.
	logger, closeLogger := getLogger(*rootCmd)
	defer closeLogger()
	rootCmd.Logger = logger

	var g run.Group

	// OS signals.
	{
		signalCtx, signalCancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer signalCancel()

		g.Add(
			func() error {
				<-signalCtx.Done()
				rootCmd.Logger.Debugf("Termination signal received")
				return nil
			},
			func(_ error) {
				signalCancel()
			},
		)
	}

	// Execute command.
	{
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		g.Add(
			func() error {
				err := cmds[cmdName].Run(ctx)
				if err != nil {
					return fmt.Errorf("%q command failed: %w", cmdName, err)
				}
				return nil
			},
			func(_ error) {
				cancel()
			},
		)
	}

	return g.Run()
}

// getLogger returns the application logger and a function releasing its output.
func getLogger(config commands.RootCommand) (log.Logger, func()) {
	if config.NoLog {
		return log.Noop, func() {}
	}

	// If logger not disabled use logrus logger.
	logrusLog := logrus.New()
	logrusLog.Out = config.Stderr // By default logger goes to stderr (so it can split stdout prints).
	closer := func() {}

	if config.LogFile != "" {
		file := loglogrus.NewRotatingFile(loglogrus.RotatingFileConfig{Path: config.LogFile})
		logrusLog.Out = file
		closer = func() { _ = file.Close() }
	}

	logrusLogEntry := logrus.NewEntry(logrusLog)

	if config.Debug {
		logrusLogEntry.Logger.SetLevel(logrus.DebugLevel)
	}

	// Log format.
	switch config.LoggerType {
	case commands.LoggerTypeDefault:
		logrusLogEntry.Logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:   !config.NoColor && config.LogFile == "",
			DisableColors: config.NoColor || config.LogFile != "",
		})
	case commands.LoggerTypeJSON:
		logrusLogEntry.Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logger := loglogrus.NewLogrus(logrusLogEntry).WithValues(log.Kv{
		"version": Version,
	})

	logger.Debugf("Debug level is enabled") // Will log only when debug enabled.

	return logger, closer
}

func main() {
	ctx := context.Background()
	err := Run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
