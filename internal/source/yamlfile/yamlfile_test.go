package yamlfile_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TudorHulban/timeline"
	"github.com/TudorHulban/timeline/internal/source"
	"github.com/TudorHulban/timeline/internal/source/yamlfile"
)

const snapshotYAML = `
projects:
  - id: 1
    name: Website
    start_date: "2024-01-01"
    deadline: "2024-01-11"
    tasks:
      - id: 10
        title: design
        status: in_progress
        priority: high
        estimated_hours: 12
        deadline: "2024-01-06"
        assigned_member:
          id: 7
          name: Mara
      - id: 11
        title: backlog
members:
  - id: 7
    name: Mara
    weekly_availability: 40
    current_workload: 30
`

func newRepo(content string) *yamlfile.SnapshotRepository {
	fsys := fstest.MapFS{
		"snapshot.yaml": &fstest.MapFile{Data: []byte(content)},
	}

	return yamlfile.NewSnapshotRepository(fsys, "snapshot.yaml")
}

func TestSnapshotRepositoryGetProject(t *testing.T) {
	repo := newRepo(snapshotYAML)

	project, err := repo.GetProject(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Website", project.Name)
	require.NotNil(t, project.StartDate)
	assert.Equal(t, "2024-01-01", project.StartDate.Format(timeline.DateLayout))
	assert.Equal(t, "2024-01-11", project.Deadline.Format(timeline.DateLayout))

	_, err = repo.GetProject(context.Background(), 2)
	require.ErrorIs(t, err, source.ErrNotFound)
}

func TestSnapshotRepositoryListProjects(t *testing.T) {
	repo := newRepo(`
projects:
  - id: 1
    name: Website
    deadline: "2024-01-11"
  - id: 2
    name: Mobile
`)

	projects, err := repo.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Website", projects[0].Name)
	assert.Equal(t, int64(2), projects[1].ID)
	assert.Nil(t, projects[1].Deadline)
}

func TestSnapshotRepositoryGetProjectTasks(t *testing.T) {
	repo := newRepo(snapshotYAML)

	tasks, err := repo.GetProjectTasks(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, timeline.TaskStatusInProgress, tasks[0].Status)
	assert.Equal(t, timeline.TaskPriorityHigh, tasks[0].Priority)
	assert.Equal(t, timeline.MemberID(7), tasks[0].AssigneeID())
	assert.Nil(t, tasks[0].StartDate)
	require.NotNil(t, tasks[0].Deadline)

	assert.Equal(t, timeline.TaskStatusTodo, tasks[1].Status)
	assert.Equal(t, timeline.TaskPriorityMedium, tasks[1].Priority)
	assert.False(t, tasks[1].IsAssigned())
	assert.Nil(t, tasks[1].Deadline)
}

func TestSnapshotRepositoryGetMembers(t *testing.T) {
	repo := newRepo(snapshotYAML)

	members, err := repo.GetMembers(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.InDelta(t, 75, members[0].WorkloadPercentage(), 1e-9)
}

func TestSnapshotRepositoryErrors(t *testing.T) {
	tests := map[string]struct {
		content string
		call    func(r *yamlfile.SnapshotRepository) error
	}{
		"invalid YAML should fail": {
			content: "projects: [",
			call: func(r *yamlfile.SnapshotRepository) error {
				_, err := r.GetMembers(context.Background())
				return err
			},
		},
		"task without title should fail validation": {
			content: `
projects:
  - id: 1
    name: p
    tasks:
      - id: 3
`,
			call: func(r *yamlfile.SnapshotRepository) error {
				_, err := r.GetProjectTasks(context.Background(), 1)
				return err
			},
		},
		"bad status should fail": {
			content: `
projects:
  - id: 1
    name: p
    tasks:
      - id: 3
        title: t
        status: paused
`,
			call: func(r *yamlfile.SnapshotRepository) error {
				_, err := r.GetProjectTasks(context.Background(), 1)
				return err
			},
		},
		"bad date should fail": {
			content: `
projects:
  - id: 1
    name: p
    start_date: "01/01/2024"
`,
			call: func(r *yamlfile.SnapshotRepository) error {
				_, err := r.GetProject(context.Background(), 1)
				return err
			},
		},
		"missing file should fail": {
			content: "",
			call: func(_ *yamlfile.SnapshotRepository) error {
				_, err := yamlfile.NewSnapshotRepository(fstest.MapFS{}, "missing.yaml").GetMembers(context.Background())
				return err
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := test.call(newRepo(test.content))
			assert.Error(t, err)
		})
	}
}
