package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/TudorHulban/timeline"
	"github.com/TudorHulban/timeline/internal/app/workload"
)

type WorkloadCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	policy    string
	projectID int64
	format    string
}

// NewWorkloadCommand returns the workload command.
func NewWorkloadCommand(rootCmd *RootCommand, app *kingpin.Application) *WorkloadCommand {
	c := &WorkloadCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("workload", "Classify the workload of every team member.")
	c.Cmd.Flag("policy", "Tier table used for classification.").Default(timeline.PolicyNameFiveTier).EnumVar(&c.policy, timeline.PolicyNameFiveTier, timeline.PolicyNameOverload)
	c.Cmd.Flag("project-id", "Only count assigned tasks of this project.").Int64Var(&c.projectID)
	formatFlag(c.Cmd, &c.format)

	return c
}

func (c WorkloadCommand) Name() string { return c.Cmd.FullCommand() }

func (c WorkloadCommand) Run(ctx context.Context) error {
	src, err := newSource(c.rootCmd)
	if err != nil {
		return err
	}

	svc, err := workload.NewService(workload.ServiceConfig{
		Source: src,
		Logger: c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	resp, err := svc.Run(ctx, workload.Request{
		Policy:    c.policy,
		ProjectID: c.projectID,
	})
	if err != nil {
		return fmt.Errorf("could not compute workload: %w", err)
	}

	return wrapPrintErr(newPrinter(c.format, c.rootCmd).PrintWorkload(resp))
}
