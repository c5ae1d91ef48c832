package mocks

import (
	"context"

	"github.com/showgrid/booking-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockTheatreRepo struct {
	mock.Mock
	domain.TheatreRepository
}

func (m *MockTheatreRepo) GetAll(ctx context.Context) ([]domain.Theatre, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Theatre), args.Error(1)
}

func (m *MockTheatreRepo) GetByName(ctx context.Context, name string) (*domain.Theatre, error) {
	args := m.Called(ctx, name)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Theatre), args.Error(1)
}
