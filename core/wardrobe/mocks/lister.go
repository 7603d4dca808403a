package mocks

import (
	"context"

	"outfit-picker/core/wardrobe"

	"github.com/stretchr/testify/mock"
)

// Lister is a mock implementation of wardrobe.Lister
type Lister struct {
	mock.Mock
}

func (m *Lister) ListDir(ctx context.Context, dir string) ([]wardrobe.Entry, error) {
	args := m.Called(ctx, dir)
	if entries, ok := args.Get(0).([]wardrobe.Entry); ok {
		return entries, args.Error(1)
	}
	return nil, args.Error(1)
}
