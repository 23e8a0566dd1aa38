package controller_project_test

import (
	"context"
	"encoding/json"

	"github.com/Super-Badmen-Viper/NineSongProject/domain"
	"github.com/Super-Badmen-Viper/NineSongProject/domain/domain_project"
	"github.com/stretchr/testify/mock"
)

type MockProjectUsecase struct {
	mock.Mock
}

func newMockProjectUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProjectUsecase {
	m := &MockProjectUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockProjectUsecase) CreateProject(ctx context.Context, req domain_project.CreateProjectRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockProjectUsecase) ListProjects(ctx context.Context, order domain.SortOrder) ([]*domain_project.Project, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain_project.Project), args.Error(1)
}

func (m *MockProjectUsecase) GetProject(ctx context.Context, id string) (*domain_project.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain_project.Project), args.Error(1)
}

func (m *MockProjectUsecase) UpdateProject(ctx context.Context, id string, updates map[string]json.RawMessage) (*domain_project.Project, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain_project.Project), args.Error(1)
}

func (m *MockProjectUsecase) DeleteProject(ctx context.Context, id string) (domain_project.DeleteReport, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain_project.DeleteReport), args.Error(1)
}

func (m *MockProjectUsecase) GetLyrics(ctx context.Context, id string) (*domain_project.Lyrics, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain_project.Lyrics), args.Error(1)
}
