// Package yamlfile loads projects, tasks and members from a YAML snapshot
// of the project management API.
package yamlfile

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/asaskevich/govalidator"
	"gopkg.in/yaml.v3"

	"github.com/TudorHulban/timeline"
	"github.com/TudorHulban/timeline/internal/source"
)

var _ source.Source = &SnapshotRepository{}

// SnapshotRepository reads a snapshot file on every call so edits are
// picked up without restarting.
type SnapshotRepository struct {
	fs   fs.FS
	path string
}

// NewSnapshotRepository creates a new YAML snapshot repository.
func NewSnapshotRepository(filesystem fs.FS, path string) *SnapshotRepository {
	return &SnapshotRepository{
		fs:   filesystem,
		path: path,
	}
}

// Snapshot represents the YAML structure of a snapshot file.
type Snapshot struct {
	Projects []ProjectRecord `yaml:"projects"`
	Members  []MemberRecord  `yaml:"members"`
}

// ProjectRecord represents a project and its tasks.
type ProjectRecord struct {
	ID          int64        `yaml:"id" valid:"required"`
	Name        string       `yaml:"name" valid:"required"`
	Description string       `yaml:"description"`
	Status      string       `yaml:"status"`
	StartDate   string       `yaml:"start_date"`
	Deadline    string       `yaml:"deadline"`
	Tasks       []TaskRecord `yaml:"tasks"`
}

// TaskRecord represents a task.
type TaskRecord struct {
	ID             int64            `yaml:"id" valid:"required"`
	Title          string           `yaml:"title" valid:"required"`
	Description    string           `yaml:"description"`
	Status         string           `yaml:"status"`
	Priority       string           `yaml:"priority"`
	EstimatedHours float64          `yaml:"estimated_hours"`
	StartDate      string           `yaml:"start_date"`
	Deadline       string           `yaml:"deadline"`
	AssignedMember *MemberRefRecord `yaml:"assigned_member,omitempty"`
}

// MemberRefRecord represents a task assignee.
type MemberRefRecord struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

// MemberRecord represents a team member.
type MemberRecord struct {
	ID                 int64   `yaml:"id" valid:"required"`
	Name               string  `yaml:"name" valid:"required"`
	Email              string  `yaml:"email"`
	WeeklyAvailability float64 `yaml:"weekly_availability"`
	CurrentWorkload    float64 `yaml:"current_workload"`
	WorkloadPercentage float64 `yaml:"workload_percentage"`
}

func (r *SnapshotRepository) load(ctx context.Context) (*Snapshot, error) {
	data, err := fs.ReadFile(r.fs, r.path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot file: %w", err)
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var snapshot Snapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	if _, err := govalidator.ValidateStruct(snapshot); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}

	return &snapshot, nil
}

func (r *SnapshotRepository) findProject(ctx context.Context, projectID int64) (*ProjectRecord, error) {
	snapshot, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range snapshot.Projects {
		if snapshot.Projects[i].ID == projectID {
			return &snapshot.Projects[i], nil
		}
	}

	return nil, fmt.Errorf("project %d: %w", projectID, source.ErrNotFound)
}

// ListProjects returns all projects in file order.
func (r *SnapshotRepository) ListProjects(ctx context.Context) ([]*timeline.Project, error) {
	snapshot, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	projects := make([]*timeline.Project, 0, len(snapshot.Projects))
	for _, p := range snapshot.Projects {
		project, err := p.toModel()
		if err != nil {
			return nil, fmt.Errorf("project %d: %w", p.ID, err)
		}
		projects = append(projects, project)
	}

	return projects, nil
}

// GetProject returns the project with the given id.
func (r *SnapshotRepository) GetProject(ctx context.Context, projectID int64) (*timeline.Project, error) {
	record, err := r.findProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return record.toModel()
}

// GetProjectTasks returns the tasks of a project in file order.
func (r *SnapshotRepository) GetProjectTasks(ctx context.Context, projectID int64) ([]*timeline.Task, error) {
	record, err := r.findProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	tasks := make([]*timeline.Task, 0, len(record.Tasks))
	for _, t := range record.Tasks {
		task, err := t.toModel()
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", t.ID, err)
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// GetMembers returns all members in file order.
func (r *SnapshotRepository) GetMembers(ctx context.Context) ([]*timeline.Member, error) {
	snapshot, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	members := make([]*timeline.Member, 0, len(snapshot.Members))
	for _, m := range snapshot.Members {
		members = append(members, m.toModel())
	}

	return members, nil
}

func (p ProjectRecord) toModel() (*timeline.Project, error) {
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

func (t TaskRecord) toModel() (*timeline.Task, error) {
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

	if t.AssignedMember != nil {
		task.AssignedMember = &timeline.MemberRef{
			ID:   timeline.MemberID(t.AssignedMember.ID),
			Name: t.AssignedMember.Name,
		}
	}

	return task, nil
}

func (m MemberRecord) toModel() *timeline.Member {
	return &timeline.Member{
		ID:                 timeline.MemberID(m.ID),
		Name:               m.Name,
		Email:              m.Email,
		WeeklyAvailability: m.WeeklyAvailability,
		CurrentWorkload:    m.CurrentWorkload,
		ReportedPercentage: m.WorkloadPercentage,
	}
}
