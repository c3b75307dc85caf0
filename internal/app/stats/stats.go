package stats

import (
	"context"
	"fmt"

	"github.com/TudorHulban/timeline"
	"github.com/TudorHulban/timeline/internal/log"
	"github.com/TudorHulban/timeline/internal/source"
)

// ServiceConfig is the configuration for the statistics service.
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

// Service computes project statistics.
type Service struct {
	source source.Source
	logger log.Logger
}

// NewService creates a new statistics service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		source: cfg.Source,
		logger: cfg.Logger,
	}, nil
}

// Request represents the statistics request parameters.
type Request struct {
	ProjectID int64
}

// Response holds the statistics of one project.
type Response struct {
	Project    timeline.Project
	Statistics *timeline.ProjectStatistics
}

// Run computes the statistics of a project.
func (s *Service) Run(ctx context.Context, req Request) (*Response, error) {
	project, err := s.source.GetProject(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("could not get project: %w", err)
	}

	tasks, err := s.source.GetProjectTasks(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("could not get project tasks: %w", err)
	}

	statistics := timeline.ComputeProjectStatistics(tasks)

	s.logger.Debugf("project %d: %d tasks, %.1f%% completed", req.ProjectID, statistics.TotalTasks, statistics.CompletionPercentage)

	return &Response{
		Project:    *project,
		Statistics: statistics,
	}, nil
}
