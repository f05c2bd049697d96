package progression

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CozyGarden_Go/internal/catalog"
	"github.com/osse101/CozyGarden_Go/internal/domain"
)

// MockService is a mock implementation of the Service interface
type MockService struct {
	mock.Mock
}

func (m *MockService) Pet(ctx context.Context) Result {
	args := m.Called(ctx)
	return args.Get(0).(Result)
}

func (m *MockService) Tick(ctx context.Context) Result {
	args := m.Called(ctx)
	return args.Get(0).(Result)
}

func (m *MockService) Purchase(ctx context.Context, upgradeID string) (Result, error) {
	args := m.Called(ctx, upgradeID)
	return args.Get(0).(Result), args.Error(1)
}

func (m *MockService) Rebirth(ctx context.Context) (Result, error) {
	args := m.Called(ctx)
	return args.Get(0).(Result), args.Error(1)
}

func (m *MockService) SetPixelMode(ctx context.Context, enabled bool) domain.Settings {
	args := m.Called(ctx, enabled)
	return args.Get(0).(domain.Settings)
}

func (m *MockService) State() domain.ProgressionState {
	args := m.Called()
	return args.Get(0).(domain.ProgressionState)
}

func (m *MockService) Settings() domain.Settings {
	args := m.Called()
	return args.Get(0).(domain.Settings)
}

func (m *MockService) Catalog() *catalog.Catalog {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*catalog.Catalog)
}

func (m *MockService) Upgrades() []UpgradeOffer {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]UpgradeOffer)
}

func (m *MockService) Preview() RebirthPreview {
	args := m.Called()
	return args.Get(0).(RebirthPreview)
}
