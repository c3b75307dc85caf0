// Package source describes where already fetched project, task and member
// records come from.
package source

import (
	"context"
	"errors"

	"github.com/TudorHulban/timeline"
)

// ErrNotFound is returned when a record does not exist in the source.
var ErrNotFound = errors.New("not found")

// Source is the data contract of the remote project management API.
type Source interface {
	ListProjects(ctx context.Context) ([]*timeline.Project, error)
	GetProject(ctx context.Context, projectID int64) (*timeline.Project, error)
	GetProjectTasks(ctx context.Context, projectID int64) ([]*timeline.Task, error)
	GetMembers(ctx context.Context) ([]*timeline.Member, error)
}
