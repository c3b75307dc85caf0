package printer

import "github.com/TudorHulban/timeline"

// Printer knows how to print layouts, workloads and statistics in different formats.
type Printer interface {
	PrintSchedule(project timeline.Project, layout *timeline.LayoutOutput) error
	PrintWorkload(workload *timeline.TeamWorkload) error
	PrintStatistics(project timeline.Project, stats *timeline.ProjectStatistics) error
}
