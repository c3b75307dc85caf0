package printer_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TudorHulban/timeline"
	"github.com/TudorHulban/timeline/internal/printer"
)

func layoutFixture() (timeline.Project, *timeline.LayoutOutput) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)

	project := timeline.Project{ID: 1, Name: "Website", StartDate: &start, Deadline: &end}

	layout := timeline.NewScheduleLayout()
	_ = layout.SetData(
		[]*timeline.Task{
			{
				ID:             1,
				Title:          "design",
				Status:         timeline.TaskStatusInProgress,
				EstimatedHours: 12,
				Deadline:       ptr(time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)),
				AssignedMember: &timeline.MemberRef{ID: 7, Name: "Mara"},
			},
			{
				ID:       2,
				Title:    "backlog",
				Status:   timeline.TaskStatusTodo,
				Deadline: ptr(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)),
			},
		},
		&project,
	)

	return project, layout.ComputeLayout()
}

func ptr(t time.Time) *time.Time { return &t }

func TestTextBar(t *testing.T) {
	tests := map[string]struct {
		left    float64
		width   float64
		columns int
		exp     string
	}{
		"half from start":           {left: 0, width: 50, columns: 10, exp: "|#####.....|"},
		"minimum width is visible":  {left: 70, width: 1, columns: 10, exp: "|.......#..|"},
		"overflowing bar is capped": {left: 100, width: 50, columns: 10, exp: "|.........#|"},
		"full":                      {left: 0, width: 100, columns: 4, exp: "|####|"},
		"no columns":                {left: 0, width: 100, columns: 0, exp: ""},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.exp, printer.TextBar(test.left, test.width, test.columns))
		})
	}
}

func TestTablePrinterPrintSchedule(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	project, layout := layoutFixture()
	require.NoError(t, p.PrintSchedule(project, layout))

	out := buf.String()
	assert.Contains(t, out, "Project:    Website")
	assert.Contains(t, out, "Window:     Jan 1, 2024 - Jan 11, 2024 (10 days)")
	assert.Contains(t, out, "MEMBER")
	assert.Contains(t, out, "Mara")
	assert.Contains(t, out, "in_progress")
	assert.Contains(t, out, "|####################....................|")
	assert.Contains(t, out, "Unassigned")
}

func TestTablePrinterPrintEmptySchedule(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	err := p.PrintSchedule(
		timeline.Project{Name: "Empty"},
		&timeline.LayoutOutput{Window: timeline.TimeWindow{Start: start, End: start}},
	)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No tasks to display")
}

func TestJSONPrinterPrintSchedule(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewJSONPrinter(&buf)

	project, layout := layoutFixture()
	require.NoError(t, p.PrintSchedule(project, layout))

	out := buf.String()
	assert.Contains(t, out, `"span_days": 10`)
	assert.Contains(t, out, `"name": "Mara"`)
	assert.Contains(t, out, `"width_percent": 50`)
	assert.Contains(t, out, `"class": "in_progress"`)
	assert.Contains(t, out, `"member_id": 0`)
}

func workloadFixture() *timeline.TeamWorkload {
	return timeline.ComputeTeamWorkload(&timeline.ParamsTeamWorkload{
		Policy: &timeline.PolicyOverload,
		Members: []*timeline.Member{
			{ID: 1, Name: "Mara", WeeklyAvailability: 40, CurrentWorkload: 44},
			{ID: 2, Name: "Ion", WeeklyAvailability: 40, CurrentWorkload: 10},
		},
	})
}

func TestTablePrinterPrintWorkload(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	require.NoError(t, p.PrintWorkload(workloadFixture()))

	out := buf.String()
	assert.Contains(t, out, "Policy:       overload")
	assert.Contains(t, out, "Members:      2 (1 overloaded)")
	assert.Contains(t, out, "danger")
	assert.Contains(t, out, "44.0h / 40h")
}

func TestJSONPrinterPrintWorkload(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewJSONPrinter(&buf)

	require.NoError(t, p.PrintWorkload(workloadFixture()))

	out := buf.String()
	assert.Contains(t, out, `"tier": "danger"`)
	assert.Contains(t, out, `"tier": "none"`)
	assert.Contains(t, out, `"visual_width": 100`)
	assert.Contains(t, out, `"is_overloaded": true`)
}

func TestPrintStatistics(t *testing.T) {
	stats := timeline.ComputeProjectStatistics([]*timeline.Task{
		{ID: 1, Status: timeline.TaskStatusCompleted, EstimatedHours: 3, Priority: timeline.TaskPriorityUrgent},
		{ID: 2, Status: timeline.TaskStatusBlocked, EstimatedHours: 1},
	})
	project := timeline.Project{ID: 3, Name: "Ops"}

	var table bytes.Buffer
	require.NoError(t, printer.NewTablePrinter(&table).PrintStatistics(project, stats))
	assert.Contains(t, table.String(), "Completion:   50.0%\n")
	assert.Contains(t, table.String(), "blocked")

	var js bytes.Buffer
	require.NoError(t, printer.NewJSONPrinter(&js).PrintStatistics(project, stats))
	assert.NotContains(t, js.String(), "completion_tier")
	assert.Contains(t, js.String(), `"URGENT": 1`)
}

func TestTablePrinterPrintFinishedProject(t *testing.T) {
	stats := timeline.ComputeProjectStatistics([]*timeline.Task{
		{ID: 1, Status: timeline.TaskStatusCompleted},
		{ID: 2, Status: timeline.TaskStatusCompleted},
	})

	var buf bytes.Buffer
	require.NoError(t, printer.NewTablePrinter(&buf).PrintStatistics(timeline.Project{Name: "Done"}, stats))

	out := buf.String()
	assert.Contains(t, out, "Completion:   100.0%\n")
	assert.NotContains(t, out, "warning")
	assert.NotContains(t, out, "danger")
}

func TestTablePrinterPrintGroupWithoutBars(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)

	err := p.PrintSchedule(
		timeline.Project{Name: "Website"},
		&timeline.LayoutOutput{
			Window:   timeline.TimeWindow{Start: start, End: end},
			SpanDays: 10,
			Groups: []timeline.GroupLayout{
				{Name: "Mara", Key: 7},
				{
					Name: timeline.UnassignedName,
					Bars: []timeline.Bar{{Title: "backlog", Class: "todo", WidthPercent: 10}},
				},
			},
		},
	)
	require.NoError(t, err)

	assert.Regexp(t, `(?m)^Mara\s+-\s+-\s+-\s+-\s+-\s*$`, buf.String())
}
