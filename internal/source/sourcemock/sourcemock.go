// Package sourcemock provides a testify mock of source.Source.
package sourcemock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/TudorHulban/timeline"
	"github.com/TudorHulban/timeline/internal/source"
)

var _ source.Source = &MockSource{}

// MockSource is a mock type for the Source type.
type MockSource struct {
	mock.Mock
}

// ListProjects provides a mock function with given fields: ctx.
func (m *MockSource) ListProjects(ctx context.Context) ([]*timeline.Project, error) {
	ret := m.Called(ctx)

	var r0 []*timeline.Project
	if rf, ok := ret.Get(0).(func(context.Context) []*timeline.Project); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*timeline.Project)
	}

	return r0, ret.Error(1)
}

// GetProject provides a mock function with given fields: ctx, projectID.
func (m *MockSource) GetProject(ctx context.Context, projectID int64) (*timeline.Project, error) {
	ret := m.Called(ctx, projectID)

	var r0 *timeline.Project
	if rf, ok := ret.Get(0).(func(context.Context, int64) *timeline.Project); ok {
		r0 = rf(ctx, projectID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*timeline.Project)
	}

	return r0, ret.Error(1)
}

// GetProjectTasks provides a mock function with given fields: ctx, projectID.
func (m *MockSource) GetProjectTasks(ctx context.Context, projectID int64) ([]*timeline.Task, error) {
	ret := m.Called(ctx, projectID)

	var r0 []*timeline.Task
	if rf, ok := ret.Get(0).(func(context.Context, int64) []*timeline.Task); ok {
		r0 = rf(ctx, projectID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*timeline.Task)
	}

	return r0, ret.Error(1)
}

// GetMembers provides a mock function with given fields: ctx.
func (m *MockSource) GetMembers(ctx context.Context) ([]*timeline.Member, error) {
	ret := m.Called(ctx)

	var r0 []*timeline.Member
	if rf, ok := ret.Get(0).(func(context.Context) []*timeline.Member); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*timeline.Member)
	}

	return r0, ret.Error(1)
}
