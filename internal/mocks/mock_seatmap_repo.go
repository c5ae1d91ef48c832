package mocks

import (
	"context"

	"github.com/showgrid/booking-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockSeatMapRepo struct {
	mock.Mock
	domain.SeatMapRepository
}

func (m *MockSeatMapRepo) Get(ctx context.Context, showID string) (*domain.SeatMap, error) {
	args := m.Called(ctx, showID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.SeatMap), args.Error(1)
}

func (m *MockSeatMapRepo) Put(ctx context.Context, seatMap domain.SeatMap) error {
	args := m.Called(ctx, seatMap)
	return args.Error(0)
}
