package printer

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/TudorHulban/timeline"
)

const defaultBarColumns = 40

// TablePrinter prints information in a table format.
type TablePrinter struct {
	writer     io.Writer
	barColumns int
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w, barColumns: defaultBarColumns}
}

// PrintSchedule prints one row per task bar grouped by member.
func (t *TablePrinter) PrintSchedule(project timeline.Project, layout *timeline.LayoutOutput) error {
	fmt.Fprintf(t.writer, "Project:    %s\n", project.Name)
	fmt.Fprintf(t.writer, "Window:     %s - %s (%d days)\n",
		FormatHeaderDate(layout.Window.Start),
		FormatHeaderDate(layout.Window.End),
		layout.SpanDays,
	)

	if layout.IsEmpty() {
		fmt.Fprintln(t.writer, "No tasks to display")
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	// Print header.
	fmt.Fprintln(tw, "MEMBER\tTASK\tSTATUS\tHOURS\tDEADLINE\tTIMELINE")

	// Print rows.
	for _, group := range layout.Groups {
		if len(group.Bars) == 0 {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t-\n", group.Name)
			continue
		}

		for i, bar := range group.Bars {
			name := group.Name
			if i > 0 {
				name = ""
			}

			fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\t%s\t%s\n",
				name,
				bar.Title,
				bar.Class,
				bar.EstimatedHours,
				FormatDate(bar.Deadline),
				TextBar(bar.LeftPercent, bar.WidthPercent, t.barColumns),
			)
		}
	}

	return nil
}

// PrintWorkload prints the team workload summary and one row per member.
func (t *TablePrinter) PrintWorkload(workload *timeline.TeamWorkload) error {
	fmt.Fprintf(t.writer, "Policy:       %s\n", workload.Policy)
	fmt.Fprintf(t.writer, "Members:      %d (%d overloaded)\n", workload.TotalMembers, workload.OverloadedMembers)
	fmt.Fprintf(t.writer, "Average:      %.1f%%\n", workload.AverageWorkloadPercentage)
	fmt.Fprintf(t.writer, "Utilization:  %.1f%%\n", workload.UtilizationPercentage)

	if len(workload.Members) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	// Print header.
	fmt.Fprintln(tw, "NAME\tWORKLOAD\tPERCENT\tTIER\tTASKS\tPROGRESS")

	// Print rows.
	for _, m := range workload.Members {
		tier := m.Tier.Class()
		if tier == "" {
			tier = "-"
		}

		fmt.Fprintf(tw, "%s\t%.1fh / %.0fh\t%.0f%%\t%s\t%d\t%s\n",
			m.Name,
			m.CurrentWorkload,
			m.WeeklyAvailability,
			m.Percentage,
			tier,
			m.TaskCount,
			TextBar(0, m.VisualWidth, t.barColumns/2),
		)
	}

	return nil
}

// PrintStatistics prints project statistics.
func (t *TablePrinter) PrintStatistics(project timeline.Project, stats *timeline.ProjectStatistics) error {
	fmt.Fprintf(t.writer, "Project:      %s\n", project.Name)
	fmt.Fprintf(t.writer, "Tasks:        %d (%d assigned, %d unassigned)\n", stats.TotalTasks, stats.AssignedTasks, stats.UnassignedTasks)
	fmt.Fprintf(t.writer, "Completion:   %.1f%%\n", stats.CompletionPercentage)
	fmt.Fprintf(t.writer, "Hours:        %.1f total, %.1f completed, %.1f remaining\n", stats.TotalEstimatedHours, stats.CompletedHours, stats.RemainingHours)

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "STATUS\tTASKS")
	for _, status := range []timeline.TaskStatus{
		timeline.TaskStatusTodo,
		timeline.TaskStatusInProgress,
		timeline.TaskStatusCompleted,
		timeline.TaskStatusBlocked,
	} {
		fmt.Fprintf(tw, "%s\t%d\n", status.Class(), stats.TasksPerStatus[status])
	}

	return nil
}
