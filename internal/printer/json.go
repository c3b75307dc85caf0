package printer

import (
	"encoding/json"
	"io"
	"time"

	"github.com/TudorHulban/timeline"
)

// JSONPrinter prints information in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

type scheduleOutput struct {
	ProjectID int64         `json:"project_id"`
	Project   string        `json:"project"`
	Start     time.Time     `json:"start"`
	End       time.Time     `json:"end"`
	SpanDays  int64         `json:"span_days"`
	Groups    []groupOutput `json:"groups"`
}

type groupOutput struct {
	MemberID int64       `json:"member_id"`
	Name     string      `json:"name"`
	Bars     []barOutput `json:"bars"`
}

type barOutput struct {
	TaskID         int64     `json:"task_id"`
	Title          string    `json:"title"`
	Status         string    `json:"status"`
	Class          string    `json:"class"`
	EstimatedHours float64   `json:"estimated_hours"`
	Deadline       time.Time `json:"deadline"`
	LeftPercent    float64   `json:"left_percent"`
	WidthPercent   float64   `json:"width_percent"`
}

type workloadOutput struct {
	Policy                    string           `json:"policy"`
	TotalMembers              int              `json:"total_members"`
	OverloadedMembers         int              `json:"overloaded_members"`
	TotalAvailability         float64          `json:"total_availability"`
	TotalWorkload             float64          `json:"total_workload"`
	AverageWorkloadPercentage float64          `json:"average_workload_percentage"`
	UtilizationPercentage     float64          `json:"utilization_percentage"`
	Members                   []memberWorkload `json:"members"`
}

type memberWorkload struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	WeeklyAvailability float64 `json:"weekly_availability"`
	CurrentWorkload    float64 `json:"current_workload"`
	AvailableHours     float64 `json:"available_hours"`
	Percentage         float64 `json:"workload_percentage"`
	VisualWidth        float64 `json:"visual_width"`
	Tier               string  `json:"tier"`
	TaskCount          int     `json:"task_count"`
	IsOverloaded       bool    `json:"is_overloaded"`
}

type statisticsOutput struct {
	ProjectID            int64          `json:"project_id"`
	Project              string         `json:"project"`
	TotalTasks           int            `json:"total_tasks"`
	TasksPerStatus       map[string]int `json:"tasks_per_status"`
	PriorityDistribution map[string]int `json:"priority_distribution"`
	AssignedTasks        int            `json:"assigned_tasks"`
	UnassignedTasks      int            `json:"unassigned_tasks"`
	CompletionPercentage float64        `json:"completion_percentage"`
	TotalEstimatedHours  float64        `json:"total_estimated_hours"`
	CompletedHours       float64        `json:"completed_hours"`
	RemainingHours       float64        `json:"remaining_hours"`
}

// PrintSchedule prints the layout in JSON format.
func (j *JSONPrinter) PrintSchedule(project timeline.Project, layout *timeline.LayoutOutput) error {
	out := scheduleOutput{
		ProjectID: project.ID,
		Project:   project.Name,
		Start:     layout.Window.Start,
		End:       layout.Window.End,
		SpanDays:  layout.SpanDays,
		Groups:    make([]groupOutput, 0, len(layout.Groups)),
	}

	for _, g := range layout.Groups {
		group := groupOutput{
			MemberID: int64(g.Key),
			Name:     g.Name,
			Bars:     make([]barOutput, 0, len(g.Bars)),
		}

		for _, b := range g.Bars {
			group.Bars = append(group.Bars, barOutput{
				TaskID:         b.TaskID,
				Title:          b.Title,
				Status:         string(b.Status),
				Class:          b.Class,
				EstimatedHours: b.EstimatedHours,
				Deadline:       b.Deadline,
				LeftPercent:    b.LeftPercent,
				WidthPercent:   b.WidthPercent,
			})
		}

		out.Groups = append(out.Groups, group)
	}

	return j.encode(out)
}

// PrintWorkload prints the team workload in JSON format.
func (j *JSONPrinter) PrintWorkload(workload *timeline.TeamWorkload) error {
	out := workloadOutput{
		Policy:                    workload.Policy,
		TotalMembers:              workload.TotalMembers,
		OverloadedMembers:         workload.OverloadedMembers,
		TotalAvailability:         workload.TotalAvailability,
		TotalWorkload:             workload.TotalWorkload,
		AverageWorkloadPercentage: workload.AverageWorkloadPercentage,
		UtilizationPercentage:     workload.UtilizationPercentage,
		Members:                   make([]memberWorkload, 0, len(workload.Members)),
	}

	for _, m := range workload.Members {
		out.Members = append(out.Members, memberWorkload{
			ID:                 int64(m.ID),
			Name:               m.Name,
			WeeklyAvailability: m.WeeklyAvailability,
			CurrentWorkload:    m.CurrentWorkload,
			AvailableHours:     m.AvailableHours,
			Percentage:         m.Percentage,
			VisualWidth:        m.VisualWidth,
			Tier:               m.Tier.String(),
			TaskCount:          m.TaskCount,
			IsOverloaded:       m.IsOverloaded,
		})
	}

	return j.encode(out)
}

// PrintStatistics prints project statistics in JSON format.
func (j *JSONPrinter) PrintStatistics(project timeline.Project, stats *timeline.ProjectStatistics) error {
	out := statisticsOutput{
		ProjectID:            project.ID,
		Project:              project.Name,
		TotalTasks:           stats.TotalTasks,
		TasksPerStatus:       make(map[string]int, len(stats.TasksPerStatus)),
		PriorityDistribution: make(map[string]int, len(stats.PriorityDistribution)),
		AssignedTasks:        stats.AssignedTasks,
		UnassignedTasks:      stats.UnassignedTasks,
		CompletionPercentage: stats.CompletionPercentage,
		TotalEstimatedHours:  stats.TotalEstimatedHours,
		CompletedHours:       stats.CompletedHours,
		RemainingHours:       stats.RemainingHours,
	}

	for status, count := range stats.TasksPerStatus {
		out.TasksPerStatus[string(status)] = count
	}

	for priority, count := range stats.PriorityDistribution {
		out.PriorityDistribution[string(priority)] = count
	}

	return j.encode(out)
}

func (j *JSONPrinter) encode(v any) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
