package timeline

type ProjectStatistics struct {
	TasksPerStatus       map[TaskStatus]int
	PriorityDistribution map[TaskPriority]int

	TotalTasks      int
	AssignedTasks   int
	UnassignedTasks int

	CompletionPercentage float64
	TotalEstimatedHours  float64
	CompletedHours       float64
	RemainingHours       float64
}

func ComputeProjectStatistics(tasks []*Task) *ProjectStatistics {
	result := ProjectStatistics{
		TasksPerStatus: map[TaskStatus]int{
			TaskStatusTodo:       0,
			TaskStatusInProgress: 0,
			TaskStatusCompleted:  0,
			TaskStatusBlocked:    0,
		},
		PriorityDistribution: make(map[TaskPriority]int),
	}

	for _, task := range tasks {
		if task == nil {
			continue
		}

		result.TotalTasks++
		result.TasksPerStatus[task.Status.OrDefault()]++
		result.TotalEstimatedHours = result.TotalEstimatedHours + task.EstimatedHours

		if len(task.Priority) > 0 {
			result.PriorityDistribution[task.Priority]++
		}

		if task.Status == TaskStatusCompleted {
			result.CompletedHours = result.CompletedHours + task.EstimatedHours
		}

		if task.IsAssigned() {
			result.AssignedTasks++
		}
	}

	result.UnassignedTasks = result.TotalTasks - result.AssignedTasks
	result.RemainingHours = result.TotalEstimatedHours - result.CompletedHours
	result.CompletionPercentage = percentOf(
		float64(result.TasksPerStatus[TaskStatusCompleted]),
		float64(result.TotalTasks),
	)

	return &result
}

type MemberWorkload struct {
	Name string
	Tier Tier

	ID                 MemberID
	WeeklyAvailability float64
	CurrentWorkload    float64
	AvailableHours     float64
	Percentage         float64
	VisualWidth        float64
	TaskCount          int
	IsOverloaded       bool
}

type TeamWorkload struct {
	Policy  string
	Members []MemberWorkload

	TotalMembers              int
	OverloadedMembers         int
	TotalAvailability         float64
	TotalWorkload             float64
	AverageWorkloadPercentage float64
	UtilizationPercentage     float64
}

type ParamsTeamWorkload struct {
	Policy  *Policy
	Members []*Member

	// Tasks are only used for per member task counts.
	Tasks []*Task
}

func ComputeTeamWorkload(params *ParamsTeamWorkload) *TeamWorkload {
	policy := params.Policy
	if policy == nil {
		policy = &PolicyFiveTier
	}

	taskCounts := make(map[MemberID]int)

	for _, task := range params.Tasks {
		if task == nil || !task.IsAssigned() {
			continue
		}

		taskCounts[task.AssigneeID()]++
	}

	result := TeamWorkload{
		Policy:  policy.Name,
		Members: make([]MemberWorkload, 0, len(params.Members)),
	}

	var sumPercentages float64

	for _, member := range params.Members {
		if member == nil {
			continue
		}

		percentage := member.WorkloadPercentage()

		result.TotalMembers++
		result.TotalAvailability = result.TotalAvailability + member.WeeklyAvailability
		result.TotalWorkload = result.TotalWorkload + member.CurrentWorkload
		sumPercentages = sumPercentages + percentage

		if member.IsOverloaded() {
			result.OverloadedMembers++
		}

		result.Members = append(
			result.Members,
			MemberWorkload{
				ID:                 member.ID,
				Name:               member.Name,
				WeeklyAvailability: member.WeeklyAvailability,
				CurrentWorkload:    member.CurrentWorkload,
				AvailableHours:     member.AvailableHours(),
				Percentage:         percentage,
				VisualWidth:        VisualWidth(percentage),
				Tier:               policy.Classify(percentage),
				TaskCount:          taskCounts[member.ID],
				IsOverloaded:       member.IsOverloaded(),
			},
		)
	}

	if result.TotalMembers > 0 {
		result.AverageWorkloadPercentage = sumPercentages / float64(result.TotalMembers)
	}

	result.UtilizationPercentage = percentOf(result.TotalWorkload, result.TotalAvailability)

	return &result
}
