package timeline

import (
	"fmt"
	"strings"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusBlocked    TaskStatus = "BLOCKED"
)

// Class is the lowercase presentation class, TODO→"todo".
func (s TaskStatus) Class() string {
	return strings.ToLower(string(s))
}

// OrDefault maps the zero status to TODO.
func (s TaskStatus) OrDefault() TaskStatus {
	return ternary(
		len(s) == 0,

		TaskStatusTodo,
		s,
	)
}

func ParseTaskStatus(value string) (TaskStatus, error) {
	status := TaskStatus(strings.ToUpper(strings.TrimSpace(value)))

	switch status {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted, TaskStatusBlocked:
		return status, nil

	case "":
		return TaskStatusTodo, nil
	}

	return "",
		goerrors.ErrInvalidInput{
			Caller:     "ParseTaskStatus",
			InputName:  "status",
			InputValue: value,
			Issue:      fmt.Errorf("unknown task status %q", value),
		}
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
	TaskPriorityUrgent TaskPriority = "URGENT"
)

func ParseTaskPriority(value string) (TaskPriority, error) {
	priority := TaskPriority(strings.ToUpper(strings.TrimSpace(value)))

	switch priority {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return priority, nil

	case "":
		return TaskPriorityMedium, nil
	}

	return "",
		goerrors.ErrInvalidInput{
			Caller:     "ParseTaskPriority",
			InputName:  "priority",
			InputValue: value,
			Issue:      fmt.Errorf("unknown task priority %q", value),
		}
}

type MemberID int64

// Unassigned is the group key for tasks without a member.
const Unassigned = MemberID(0)

const UnassignedName = "Unassigned"

type MemberRef struct {
	Name string
	ID   MemberID
}

type Task struct {
	Title       string
	Description string
	Status      TaskStatus
	Priority    TaskPriority

	StartDate      *time.Time
	Deadline       *time.Time
	AssignedMember *MemberRef

	ID             int64
	EstimatedHours float64
}

// AssigneeID returns Unassigned for a missing member or a zero id.
func (t *Task) AssigneeID() MemberID {
	if t.AssignedMember == nil {
		return Unassigned
	}

	return t.AssignedMember.ID
}

func (t *Task) IsAssigned() bool {
	return t.AssigneeID() != Unassigned
}

func (t *Task) IsPositionable() bool {
	return t.Deadline != nil
}

func (t *Task) String() string {
	return fmt.Sprintf(
		"Task{ID: %d, Title: %q, Status: %s, EstimatedHours: %.1f, Assignee: %d}",

		t.ID,
		t.Title,
		t.Status,
		t.EstimatedHours,
		t.AssigneeID(),
	)
}
