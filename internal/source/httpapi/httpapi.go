// Package httpapi reads projects, tasks and members from the project
// management REST API.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/TudorHulban/timeline"
	"github.com/TudorHulban/timeline/internal/log"
	"github.com/TudorHulban/timeline/internal/source"
)

var _ source.Source = &Client{}

// ClientConfig is the configuration of the API client.
type ClientConfig struct {
	BaseURL     string
	HTTPClient  *http.Client
	Timeout     time.Duration
	MaxFailures uint32
	OpenTimeout time.Duration
	Logger      log.Logger
}

func (c *ClientConfig) defaults() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}

	if _, err := url.ParseRequestURI(c.BaseURL); err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}

	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}

	if c.MaxFailures == 0 {
		c.MaxFailures = 3
	}

	if c.OpenTimeout <= 0 {
		c.OpenTimeout = 5 * time.Second
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Client is a circuit breaker protected API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     log.Logger
}

// NewClient creates a new API client.
func NewClient(cfg ClientConfig) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := cfg.Logger.WithValues(log.Kv{"svc": "httpapi"})

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "ProjectManagementAPI",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, source.ErrNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warningf("circuit breaker %q changed from %q to %q", name, from.String(), to.String())
		},
	})

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: cfg.HTTPClient,
		breaker:    breaker,
		logger:     logger,
	}, nil
}

// ProjectResponse is the API project representation.
type ProjectResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	StartDate   string `json:"startDate"`
	Deadline    string `json:"deadline"`
}

// TaskResponse is the API task representation.
type TaskResponse struct {
	ID             int64              `json:"id"`
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	Status         string             `json:"status"`
	Priority       string             `json:"priority"`
	EstimatedHours float64            `json:"estimatedHours"`
	StartDate      string             `json:"startDate"`
	Deadline       string             `json:"deadline"`
	AssignedMember *MemberRefResponse `json:"assignedMember"`

	// Legacy flat assignee fields.
	AssignedMemberID   *int64  `json:"assignedMemberId"`
	AssignedMemberName *string `json:"assignedMemberName"`
}

// MemberRefResponse is the API assignee representation.
type MemberRefResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MemberResponse is the API member representation.
type MemberResponse struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	WeeklyAvailability float64 `json:"weeklyAvailability"`
	CurrentWorkload    float64 `json:"currentWorkload"`
	WorkloadPercentage float64 `json:"workloadPercentage"`
}

// ListProjects returns all projects.
func (c *Client) ListProjects(ctx context.Context) ([]*timeline.Project, error) {
	var resp []ProjectResponse
	if err := c.get(ctx, "/api/projects", &resp); err != nil {
		return nil, fmt.Errorf("could not list projects: %w", err)
	}

	projects := make([]*timeline.Project, 0, len(resp))
	for _, p := range resp {
		project, err := p.toModel()
		if err != nil {
			return nil, fmt.Errorf("project %d: %w", p.ID, err)
		}
		projects = append(projects, project)
	}

	return projects, nil
}

// GetProject returns the project with the given id.
func (c *Client) GetProject(ctx context.Context, projectID int64) (*timeline.Project, error) {
	var resp ProjectResponse
	if err := c.get(ctx, fmt.Sprintf("/api/projects/%d", projectID), &resp); err != nil {
		return nil, fmt.Errorf("could not get project %d: %w", projectID, err)
	}

	return resp.toModel()
}

// GetProjectTasks returns the tasks of a project in API order.
func (c *Client) GetProjectTasks(ctx context.Context, projectID int64) ([]*timeline.Task, error) {
	var resp []TaskResponse
	if err := c.get(ctx, fmt.Sprintf("/api/projects/%d/tasks", projectID), &resp); err != nil {
		return nil, fmt.Errorf("could not get tasks of project %d: %w", projectID, err)
	}

	tasks := make([]*timeline.Task, 0, len(resp))
	for _, t := range resp {
		task, err := t.toModel()
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", t.ID, err)
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// GetMembers returns all members.
func (c *Client) GetMembers(ctx context.Context) ([]*timeline.Member, error) {
	var resp []MemberResponse
	if err := c.get(ctx, "/api/members", &resp); err != nil {
		return nil, fmt.Errorf("could not get members: %w", err)
	}

	members := make([]*timeline.Member, 0, len(resp))
	for _, m := range resp {
		members = append(members, m.toModel())
	}

	return members, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.doGet(ctx, path, out)
	})

	return err
}

func (c *Client) doGet(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debugf("GET %s", req.URL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return source.ErrNotFound
	case resp.StatusCode >= 300:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}

	return nil
}

func (p ProjectResponse) toModel() (*timeline.Project, error) {
	startDate, err := timeline.ParseDate(p.StartDate)
	if err != nil {
		return nil, fmt.Errorf("start date: %w", err)
	}

	deadline, err := timeline.ParseDate(p.Deadline)
	if err != nil {
		return nil, fmt.Errorf("deadline: %w", err)
	}

	return &timeline.Project{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		StartDate:   startDate,
		Deadline:    deadline,
	}, nil
}

func (t TaskResponse) toModel() (*timeline.Task, error) {
	status, err := timeline.ParseTaskStatus(t.Status)
	if err != nil {
		return nil, err
	}

	priority, err := timeline.ParseTaskPriority(t.Priority)
	if err != nil {
		return nil, err
	}

	startDate, err := timeline.ParseDate(t.StartDate)
	if err != nil {
		return nil, fmt.Errorf("start date: %w", err)
	}

	deadline, err := timeline.ParseDate(t.Deadline)
	if err != nil {
		return nil, fmt.Errorf("deadline: %w", err)
	}

	task := &timeline.Task{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Status:         status,
		Priority:       priority,
		EstimatedHours: t.EstimatedHours,
		StartDate:      startDate,
		Deadline:       deadline,
	}

	switch {
	case t.AssignedMember != nil:
		task.AssignedMember = &timeline.MemberRef{
			ID:   timeline.MemberID(t.AssignedMember.ID),
			Name: t.AssignedMember.Name,
		}
	case t.AssignedMemberID != nil:
		ref := &timeline.MemberRef{ID: timeline.MemberID(*t.AssignedMemberID)}
		if t.AssignedMemberName != nil {
			ref.Name = *t.AssignedMemberName
		}
		task.AssignedMember = ref
	}

	return task, nil
}

func (m MemberResponse) toModel() *timeline.Member {
	return &timeline.Member{
		ID:                 timeline.MemberID(m.ID),
		Name:               m.Name,
		Email:              m.Email,
		WeeklyAvailability: m.WeeklyAvailability,
		CurrentWorkload:    m.CurrentWorkload,
		ReportedPercentage: m.WorkloadPercentage,
	}
}
