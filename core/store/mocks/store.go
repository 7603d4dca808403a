package mocks

import (
	"context"

	"outfit-picker/core/rotation"
	"outfit-picker/core/snapshot"

	"github.com/stretchr/testify/mock"
)

// ConfigStore is a mock implementation of store.ConfigStore
type ConfigStore struct {
	mock.Mock
}

func (m *ConfigStore) Load(ctx context.Context) (*snapshot.Config, error) {
	args := m.Called(ctx)
	if cfg, ok := args.Get(0).(*snapshot.Config); ok {
		return cfg, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ConfigStore) Save(ctx context.Context, cfg *snapshot.Config) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

// StateStore is a mock implementation of store.StateStore
type StateStore struct {
	mock.Mock
}

func (m *StateStore) Load(ctx context.Context) (*rotation.StateFile, error) {
	args := m.Called(ctx)
	if state, ok := args.Get(0).(*rotation.StateFile); ok {
		return state, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StateStore) Save(ctx context.Context, state *rotation.StateFile) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}
