package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/TudorHulban/timeline/internal/app/schedule"
)

type ScheduleCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	projectID int64
	format    string
}

// NewScheduleCommand returns the schedule command.
func NewScheduleCommand(rootCmd *RootCommand, app *kingpin.Application) *ScheduleCommand {
	c := &ScheduleCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("schedule", "Lay out the tasks of a project on its timeline, grouped by member.")
	c.Cmd.Flag("project-id", "Project to lay out.").Required().Int64Var(&c.projectID)
	formatFlag(c.Cmd, &c.format)

	return c
}

func (c ScheduleCommand) Name() string { return c.Cmd.FullCommand() }

func (c ScheduleCommand) Run(ctx context.Context) error {
	src, err := newSource(c.rootCmd)
	if err != nil {
		return err
	}

	svc, err := schedule.NewService(schedule.ServiceConfig{
		Source: src,
		Logger: c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	resp, err := svc.Run(ctx, schedule.Request{ProjectID: c.projectID})
	if err != nil {
		return fmt.Errorf("could not compute schedule: %w", err)
	}

	return wrapPrintErr(newPrinter(c.format, c.rootCmd).PrintSchedule(resp.Project, resp.Layout))
}
