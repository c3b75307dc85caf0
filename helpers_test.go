package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(t *testing.T, value string) *time.Time {
	t.Helper()

	result, errParse := ParseDate(value)
	require.NoError(t, errParse)
	require.NotNil(t, result)

	return result
}

func project(t *testing.T, start, deadline string) *Project {
	t.Helper()

	return &Project{
		ID:        1,
		Name:      t.Name(),
		StartDate: date(t, start),
		Deadline:  date(t, deadline),
	}
}

func member(id MemberID, name string) *MemberRef {
	return &MemberRef{
		ID:   id,
		Name: name,
	}
}
