package timeline

import (
	"fmt"
	"strings"
)

// MemberGroup holds the tasks of one assignee in input order.
type MemberGroup struct {
	Name  string
	Tasks []*Task

	Key MemberID
}

type MemberGroups []*MemberGroup

// GroupByAssignee buckets tasks by member id. Group order is the first
// occurrence order of each key, Unassigned included. Groups are only
// created on first append so none is ever empty.
func GroupByAssignee(tasks []*Task) MemberGroups {
	result := make(MemberGroups, 0)
	positions := make(map[MemberID]int)

	for _, task := range tasks {
		if task == nil {
			continue
		}

		key := task.AssigneeID()

		position, exists := positions[key]
		if !exists {
			name := UnassignedName

			if key != Unassigned {
				name = task.AssignedMember.Name
			}

			position = len(result)
			positions[key] = position

			result = append(
				result,
				&MemberGroup{
					Key:  key,
					Name: name,
				},
			)
		}

		result[position].Tasks = append(result[position].Tasks, task)
	}

	return result
}

func (groups MemberGroups) Get(key MemberID) (*MemberGroup, bool) {
	for _, group := range groups {
		if group.Key == key {
			return group, true
		}
	}

	return nil, false
}

func (groups MemberGroups) String() string {
	var sb strings.Builder

	sb.WriteString("MemberGroups{\n")

	for _, group := range groups {
		sb.WriteString(
			fmt.Sprintf(
				"\t%d %q: %d tasks\n",

				group.Key,
				group.Name,
				len(group.Tasks),
			),
		)
	}

	sb.WriteString("}")

	return sb.String()
}
