package workload

import (
	"context"
	"fmt"

	"github.com/TudorHulban/timeline"
	"github.com/TudorHulban/timeline/internal/log"
	"github.com/TudorHulban/timeline/internal/source"
)

// ServiceConfig is the configuration for the workload service.
type ServiceConfig struct {
	Source source.Source
	Logger log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Source == nil {
		return fmt.Errorf("source is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Service classifies the workload of every member.
type Service struct {
	source source.Source
	logger log.Logger
}

// NewService creates a new workload service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		source: cfg.Source,
		logger: cfg.Logger,
	}, nil
}

// Request represents the workload request parameters.
type Request struct {
	// Policy is the tier table name, five tier when empty.
	Policy string
	// ProjectID is optional, when set the member task counts are taken
	// from this project only, otherwise from every project.
	ProjectID int64
}

// Run returns the team workload classified with the requested policy.
func (s *Service) Run(ctx context.Context, req Request) (*timeline.TeamWorkload, error) {
	policy := &timeline.PolicyFiveTier
	if req.Policy != "" {
		p, err := timeline.PolicyByName(req.Policy)
		if err != nil {
			return nil, fmt.Errorf("invalid policy: %w", err)
		}
		policy = p
	}

	members, err := s.source.GetMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get members: %w", err)
	}

	tasks, err := s.memberTasks(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	result := timeline.ComputeTeamWorkload(&timeline.ParamsTeamWorkload{
		Policy:  policy,
		Members: members,
		Tasks:   tasks,
	})

	s.logger.Debugf("classified %d members with policy %s, %d overloaded", result.TotalMembers, policy.Name, result.OverloadedMembers)

	return result, nil
}

func (s *Service) memberTasks(ctx context.Context, projectID int64) ([]*timeline.Task, error) {
	if projectID != 0 {
		tasks, err := s.source.GetProjectTasks(ctx, projectID)
		if err != nil {
			return nil, fmt.Errorf("could not get project tasks: %w", err)
		}

		return tasks, nil
	}

	projects, err := s.source.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list projects: %w", err)
	}

	var result []*timeline.Task
	for _, project := range projects {
		tasks, err := s.source.GetProjectTasks(ctx, project.ID)
		if err != nil {
			return nil, fmt.Errorf("could not get tasks of project %d: %w", project.ID, err)
		}

		result = append(result, tasks...)
	}

	return result, nil
}
