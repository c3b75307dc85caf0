package timeline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGroupByAssignee(t *testing.T) {
	t.Run(
		"1. no unassigned tasks, no unassigned group",
		func(t *testing.T) {
			groups := GroupByAssignee(
				[]*Task{
					{ID: 1, AssignedMember: member(4, "four")},
					{ID: 2, AssignedMember: member(5, "five")},
					{ID: 3, AssignedMember: member(4, "four")},
				},
			)

			require.Len(t, groups, 2)

			_, exists := groups.Get(Unassigned)
			require.False(t, exists)

			four, exists := groups.Get(4)
			require.True(t, exists)
			require.Len(t, four.Tasks, 2)
			require.EqualValues(t, 1, four.Tasks[0].ID)
			require.EqualValues(t, 3, four.Tasks[1].ID)
		},
	)

	t.Run(
		"2. nil tasks skipped",
		func(t *testing.T) {
			groups := GroupByAssignee(
				[]*Task{
					nil,
					{ID: 1},
				},
			)

			require.Len(t, groups, 1)
			require.Equal(t,
				"MemberGroups{\n\t0 \"Unassigned\": 1 tasks\n}",
				groups.String(),
			)
		},
	)

	t.Run(
		"3. first seen name wins",
		func(t *testing.T) {
			groups := GroupByAssignee(
				[]*Task{
					{ID: 1, AssignedMember: member(4, "Ana")},
					{ID: 2, AssignedMember: member(4, "Ana M.")},
				},
			)

			require.Len(t, groups, 1)
			require.Equal(t, "Ana", groups[0].Name)
		},
	)
}
