package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/TudorHulban/timeline/internal/app/stats"
)

type StatsCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	projectID int64
	format    string
}

// NewStatsCommand returns the stats command.
func NewStatsCommand(rootCmd *RootCommand, app *kingpin.Application) *StatsCommand {
	c := &StatsCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("stats", "Show the statistics of a project.")
	c.Cmd.Flag("project-id", "Project to summarize.").Required().Int64Var(&c.projectID)
	formatFlag(c.Cmd, &c.format)

	return c
}

func (c StatsCommand) Name() string { return c.Cmd.FullCommand() }

func (c StatsCommand) Run(ctx context.Context) error {
	src, err := newSource(c.rootCmd)
	if err != nil {
		return err
	}

	svc, err := stats.NewService(stats.ServiceConfig{
		Source: src,
		Logger: c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	resp, err := svc.Run(ctx, stats.Request{ProjectID: c.projectID})
	if err != nil {
		return fmt.Errorf("could not compute statistics: %w", err)
	}

	return wrapPrintErr(newPrinter(c.format, c.rootCmd).PrintStatistics(resp.Project, resp.Statistics))
}
