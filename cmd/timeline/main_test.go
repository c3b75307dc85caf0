package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshot = `
projects:
  - id: 1
    name: Website
    start_date: "2024-01-01"
    deadline: "2024-01-11"
    tasks:
      - id: 1
        title: task1
        deadline: "2024-01-06"
      - id: 2
        title: task2
        status: IN_PROGRESS
        estimated_hours: 8
        deadline: "2024-01-06"
        assigned_member: {id: 3, name: Ana}
      - id: 3
        title: task3
        start_date: "2024-01-08"
        deadline: "2024-01-05"
  - id: 2
    name: Broken
    start_date: "2024-01-01"
members:
  - id: 3
    name: Ana
    weekly_availability: 40
    current_workload: 36
`

func writeSnapshot(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(snapshot), 0o600))

	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := Run(context.Background(), append([]string{"timeline"}, args...), strings.NewReader(""), &stdout, &stderr)

	return stdout.String(), err
}

func TestRunSchedule(t *testing.T) {
	path := writeSnapshot(t)

	out, err := runCLI(t, "--file", path, "schedule", "--project-id", "1")
	require.NoError(t, err)

	unassigned := strings.Index(out, "Unassigned")
	ana := strings.Index(out, "Ana")
	require.NotEqual(t, -1, unassigned)
	require.NotEqual(t, -1, ana)
	assert.Less(t, unassigned, ana)
	assert.Contains(t, out, "in_progress")
}

func TestRunScheduleJSON(t *testing.T) {
	path := writeSnapshot(t)

	out, err := runCLI(t, "--file", path, "schedule", "--project-id", "1", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"left_percent": 70`)
	assert.Contains(t, out, `"width_percent": 1`)
}

func TestRunScheduleInvalidProject(t *testing.T) {
	path := writeSnapshot(t)

	_, err := runCLI(t, "--file", path, "schedule", "--project-id", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"schedule" command failed`)
}

func TestRunWorkload(t *testing.T) {
	path := writeSnapshot(t)

	out, err := runCLI(t, "--file", path, "workload", "--project-id", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Policy:       five-tier")
	assert.Contains(t, out, "warning")
	assert.Regexp(t, `(?m)^Ana\s.*\s1\s+\|`, out)

	out, err = runCLI(t, "--file", path, "workload", "--policy", "overload", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"policy": "overload"`)
	assert.Contains(t, out, `"tier": "warning"`)
}

func TestRunStats(t *testing.T) {
	path := writeSnapshot(t)

	out, err := runCLI(t, "--file", path, "stats", "--project-id", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Tasks:        3 (1 assigned, 2 unassigned)")
	assert.Contains(t, out, "Completion:   0.0%\n")
}

func TestRunInvalidArgs(t *testing.T) {
	_, err := runCLI(t, "schedule")
	require.Error(t, err)

	_, err = runCLI(t, "workload", "--policy", "three-tier")
	require.Error(t, err)
}
