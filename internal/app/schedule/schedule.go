package schedule

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/TudorHulban/timeline"
	"github.com/TudorHulban/timeline/internal/log"
	"github.com/TudorHulban/timeline/internal/source"
)

// ServiceConfig is the configuration for the schedule service.
type ServiceConfig struct {
	Source      source.Source
	Logger      log.Logger
	NewRenderID func() string
}

func (c *ServiceConfig) defaults() error {
	if c.Source == nil {
		return fmt.Errorf("source is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	if c.NewRenderID == nil {
		c.NewRenderID = uuid.NewString
	}

	return nil
}

// Service fetches a project with its tasks and lays them out.
type Service struct {
	source      source.Source
	logger      log.Logger
	newRenderID func() string
}

// NewService creates a new schedule service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		source:      cfg.Source,
		logger:      cfg.Logger,
		newRenderID: cfg.NewRenderID,
	}, nil
}

// Request represents the schedule request parameters.
type Request struct {
	ProjectID int64
}

// Response is the layout of one render cycle.
type Response struct {
	RenderID string
	Project  timeline.Project
	Layout   *timeline.LayoutOutput

	// Unpositioned counts tasks left out for lacking a deadline.
	Unpositioned int
}

// Run computes the schedule layout of a project.
func (s *Service) Run(ctx context.Context, req Request) (*Response, error) {
	renderID := s.newRenderID()
	logger := s.logger.WithValues(log.Kv{
		"render-id":  renderID,
		"project-id": req.ProjectID,
	})

	project, err := s.source.GetProject(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("could not get project: %w", err)
	}

	tasks, err := s.source.GetProjectTasks(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("could not get project tasks: %w", err)
	}

	// Layout state is owned by this call only.
	layout := timeline.NewScheduleLayout()
	if err := layout.SetData(tasks, project); err != nil {
		return nil, fmt.Errorf("could not lay out project %d: %w", req.ProjectID, err)
	}

	output := layout.ComputeLayout()

	var unpositioned int
	for _, task := range tasks {
		if task != nil && !task.IsPositionable() {
			unpositioned++
		}
	}

	if output.SpanDays <= 0 {
		logger.Warningf("degenerate project window %s, using minimum width bars", output.Window)
	}

	logger.Debugf("laid out %d bars in %d groups, %d tasks without deadline", output.BarCount(), len(output.Groups), unpositioned)

	return &Response{
		RenderID:     renderID,
		Project:      *project,
		Layout:       output,
		Unpositioned: unpositioned,
	}, nil
}
