package timeline

import "time"

// MinimumWidthPercent keeps zero duration and inverted tasks visible.
const MinimumWidthPercent = 1.0

type Bar struct {
	Title    string
	Status   TaskStatus
	Class    string
	Deadline time.Time

	TaskID         int64
	LeftPercent    float64
	WidthPercent   float64
	EstimatedHours float64
}

type GroupLayout struct {
	Name string
	Bars []Bar

	Key MemberID
}

type LayoutOutput struct {
	Window TimeWindow
	Groups []GroupLayout

	SpanDays int64
}

// IsEmpty reports no rows to display.
func (o *LayoutOutput) IsEmpty() bool {
	return len(o.Groups) == 0
}

func (o *LayoutOutput) BarCount() int {
	var result int

	for _, group := range o.Groups {
		result = result + len(group.Bars)
	}

	return result
}

// ScheduleLayout holds the data of one render cycle.
// It is not safe for concurrent use: SetData followed by ComputeLayout
// is one logical step owned by a single caller.
type ScheduleLayout struct {
	tasks  []*Task
	groups MemberGroups
	window TimeWindow
}

func NewScheduleLayout() *ScheduleLayout {
	return &ScheduleLayout{
		groups: make(MemberGroups, 0),
	}
}

// SetData replaces all held state. On an invalid project the previous
// state is kept and an InvalidInput error is returned.
func (l *ScheduleLayout) SetData(tasks []*Task, project *Project) error {
	window, errWindow := project.Window()
	if errWindow != nil {
		return errWindow
	}

	l.window = window
	l.tasks = tasks
	l.groups = GroupByAssignee(tasks)

	return nil
}

func (l *ScheduleLayout) Window() TimeWindow {
	return l.window
}

func (l *ScheduleLayout) Groups() MemberGroups {
	return l.groups
}

func (l *ScheduleLayout) TaskCount() int {
	return len(l.tasks)
}

// ComputeLayout is a pure function of the held state.
// Tasks without a deadline are left out of the bars.
func (l *ScheduleLayout) ComputeLayout() *LayoutOutput {
	spanDays := l.window.SpanDays()

	result := LayoutOutput{
		Window:   l.window,
		SpanDays: spanDays,
		Groups:   make([]GroupLayout, 0, len(l.groups)),
	}

	for _, group := range l.groups {
		row := GroupLayout{
			Key:  group.Key,
			Name: group.Name,
			Bars: make([]Bar, 0, len(group.Tasks)),
		}

		for _, task := range group.Tasks {
			if !task.IsPositionable() {
				continue
			}

			row.Bars = append(
				row.Bars,
				computeBar(task, l.window, spanDays),
			)
		}

		result.Groups = append(result.Groups, row)
	}

	return &result
}

func computeBar(task *Task, window TimeWindow, spanDays int64) Bar {
	result := Bar{
		TaskID:         task.ID,
		Title:          task.Title,
		Status:         task.Status,
		Class:          task.Status.Class(),
		EstimatedHours: task.EstimatedHours,
		Deadline:       *task.Deadline,
		WidthPercent:   MinimumWidthPercent,
	}

	if spanDays <= 0 {
		return result
	}

	effectiveStart := window.Start
	if task.StartDate != nil {
		effectiveStart = *task.StartDate
	}

	startOffsetDays := window.OffsetDays(effectiveStart)
	durationDays := maxOf(0, daysBetween(effectiveStart, *task.Deadline))

	result.LeftPercent = startOffsetDays * 100 / float64(spanDays)
	result.WidthPercent = maxOf(
		MinimumWidthPercent,
		durationDays*100/float64(spanDays),
	)

	return result
}
