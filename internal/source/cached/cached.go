// Package cached decorates a source with an in-memory LRU cache.
package cached

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/TudorHulban/timeline"
	"github.com/TudorHulban/timeline/internal/log"
	"github.com/TudorHulban/timeline/internal/source"
)

var _ source.Source = &Source{}

const (
	membersKey  = "members"
	projectsKey = "projects"
)

// SourceConfig is the configuration of the cached source.
type SourceConfig struct {
	Source source.Source
	Size   int
	Logger log.Logger
}

func (c *SourceConfig) defaults() error {
	if c.Source == nil {
		return fmt.Errorf("source is required")
	}

	if c.Size <= 0 {
		c.Size = 128
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Source caches successful reads. Errors are never cached.
type Source struct {
	next     source.Source
	projects    *lru.Cache[int64, *timeline.Project]
	projectList *lru.Cache[string, []*timeline.Project]
	tasks       *lru.Cache[int64, []*timeline.Task]
	members     *lru.Cache[string, []*timeline.Member]
	logger      log.Logger
}

// NewSource creates a new cached source.
func NewSource(cfg SourceConfig) (*Source, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	projects, err := lru.New[int64, *timeline.Project](cfg.Size)
	if err != nil {
		return nil, fmt.Errorf("could not create project cache: %w", err)
	}

	projectList, err := lru.New[string, []*timeline.Project](1)
	if err != nil {
		return nil, fmt.Errorf("could not create project list cache: %w", err)
	}

	tasks, err := lru.New[int64, []*timeline.Task](cfg.Size)
	if err != nil {
		return nil, fmt.Errorf("could not create task cache: %w", err)
	}

	members, err := lru.New[string, []*timeline.Member](1)
	if err != nil {
		return nil, fmt.Errorf("could not create member cache: %w", err)
	}

	return &Source{
		next:        cfg.Source,
		projects:    projects,
		projectList: projectList,
		tasks:       tasks,
		members:     members,
		logger:      cfg.Logger.WithValues(log.Kv{"svc": "cached"}),
	}, nil
}

func (s *Source) ListProjects(ctx context.Context) ([]*timeline.Project, error) {
	if projects, ok := s.projectList.Get(projectsKey); ok {
		s.logger.Debugf("project list cache hit")
		return projects, nil
	}

	projects, err := s.next.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	s.projectList.Add(projectsKey, projects)

	return projects, nil
}

func (s *Source) GetProject(ctx context.Context, projectID int64) (*timeline.Project, error) {
	if project, ok := s.projects.Get(projectID); ok {
		s.logger.Debugf("project %d cache hit", projectID)
		return project, nil
	}

	project, err := s.next.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	s.projects.Add(projectID, project)

	return project, nil
}

func (s *Source) GetProjectTasks(ctx context.Context, projectID int64) ([]*timeline.Task, error) {
	if tasks, ok := s.tasks.Get(projectID); ok {
		s.logger.Debugf("tasks of project %d cache hit", projectID)
		return tasks, nil
	}

	tasks, err := s.next.GetProjectTasks(ctx, projectID)
	if err != nil {
		return nil, err
	}

	s.tasks.Add(projectID, tasks)

	return tasks, nil
}

func (s *Source) GetMembers(ctx context.Context) ([]*timeline.Member, error) {
	if members, ok := s.members.Get(membersKey); ok {
		s.logger.Debugf("members cache hit")
		return members, nil
	}

	members, err := s.next.GetMembers(ctx)
	if err != nil {
		return nil, err
	}

	s.members.Add(membersKey, members)

	return members, nil
}

// Purge drops every cached record.
func (s *Source) Purge() {
	s.projects.Purge()
	s.projectList.Purge()
	s.tasks.Purge()
	s.members.Purge()
}
