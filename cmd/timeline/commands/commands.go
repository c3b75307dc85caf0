package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/TudorHulban/timeline/internal/log"
	"github.com/TudorHulban/timeline/internal/printer"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"

	// SourceTypeFile reads a YAML snapshot.
	SourceTypeFile = "file"
	// SourceTypeAPI reads the project management REST API.
	SourceTypeAPI = "api"

	formatTable = "table"
	formatJSON  = "json"
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug      bool
	NoLog      bool
	NoColor    bool
	LoggerType string
	LogFile    string

	SourceType string
	File       string
	APIURL     string
	APITimeout time.Duration
	CacheSize  int

	// Global instances.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)
	app.Flag("log-file", "Write logs to a size rotated file instead of stderr.").StringVar(&c.LogFile)

	app.Flag("source", "Where project data is read from.").Default(SourceTypeFile).EnumVar(&c.SourceType, SourceTypeFile, SourceTypeAPI)
	app.Flag("file", "Path to the YAML snapshot file.").Default("snapshot.yaml").StringVar(&c.File)
	app.Flag("api-url", "Base URL of the project management API.").Default("http://localhost:8080").StringVar(&c.APIURL)
	app.Flag("api-timeout", "Timeout of a single API request.").Default("10s").DurationVar(&c.APITimeout)
	app.Flag("cache-size", "Number of projects kept in the fetch cache.").Default("128").IntVar(&c.CacheSize)

	return c
}

func newPrinter(format string, rootCmd *RootCommand) printer.Printer {
	switch format {
	case formatJSON:
		return printer.NewJSONPrinter(rootCmd.Stdout)
	default:
		return printer.NewTablePrinter(rootCmd.Stdout)
	}
}

func formatFlag(cmd *kingpin.CmdClause, format *string) {
	cmd.Flag("format", "Output format (table, json).").Default(formatTable).EnumVar(format, formatTable, formatJSON)
}

func wrapPrintErr(err error) error {
	if err != nil {
		return fmt.Errorf("could not print: %w", err)
	}
	return nil
}
