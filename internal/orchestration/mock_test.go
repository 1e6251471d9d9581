package orchestration

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"

	"github.com/imamik/ghlabels/internal/label"
)

// mockGateway is a testify mock of Gateway.
type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) GetRepository(ctx context.Context, owner, repo string) (label.Repository, error) {
	args := m.Called(ctx, owner, repo)
	return args.Get(0).(label.Repository), args.Error(1)
}

func (m *mockGateway) ListOrgRepositories(ctx context.Context, owner string) ([]label.Repository, error) {
	args := m.Called(ctx, owner)
	return repositories(args.Get(0)), args.Error(1)
}

func (m *mockGateway) ListUserRepositories(ctx context.Context, owner string) ([]label.Repository, error) {
	args := m.Called(ctx, owner)
	return repositories(args.Get(0)), args.Error(1)
}

func (m *mockGateway) ListLabels(ctx context.Context, repo label.Repository) ([]label.Label, error) {
	args := m.Called(ctx, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]label.Label), args.Error(1)
}

func (m *mockGateway) CreateLabel(ctx context.Context, l label.Label, repo label.Repository) (label.Label, error) {
	args := m.Called(ctx, l, repo)
	return args.Get(0).(label.Label), args.Error(1)
}

func (m *mockGateway) UpdateLabel(ctx context.Context, l label.Label) (label.Label, error) {
	args := m.Called(ctx, l)
	return args.Get(0).(label.Label), args.Error(1)
}

func (m *mockGateway) DeleteLabel(ctx context.Context, l label.Label) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func repositories(v any) []label.Repository {
	if v == nil {
		return nil
	}
	return v.([]label.Repository)
}

func repository(fullName string) label.Repository {
	return label.Repository{
		FullName: fullName,
		URL:      "https://api.github.com/repos/" + fullName,
	}
}

func observed(repo label.Repository, name, color string) label.Label {
	return label.Label{Name: name, Color: color, URL: fmt.Sprintf("%s/%s", repo.LabelsURL(), name)}
}
