package mocks

import (
	"context"

	"github.com/showgrid/booking-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockSelectionRepo struct {
	mock.Mock
	domain.SelectionRepository
}

func (m *MockSelectionRepo) Get(ctx context.Context, sessionID, showID string) (*domain.Selection, error) {
	args := m.Called(ctx, sessionID, showID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Selection), args.Error(1)
}

func (m *MockSelectionRepo) Put(ctx context.Context, sessionID string, selection domain.Selection) error {
	args := m.Called(ctx, sessionID, selection)
	return args.Error(0)
}

func (m *MockSelectionRepo) Delete(ctx context.Context, sessionID, showID string) error {
	args := m.Called(ctx, sessionID, showID)
	return args.Error(0)
}
