package mocks

import (
	"context"

	"github.com/showgrid/booking-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepo struct {
	mock.Mock
	domain.BookingRepository
}

func (m *MockBookingRepo) Append(ctx context.Context, booking domain.Booking) (int, error) {
	args := m.Called(ctx, booking)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingRepo) GetAll(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
