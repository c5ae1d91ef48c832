package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/showgrid/booking-api/internal/domain"
)

// BookingsKey is the single key the whole booking list lives under, matching
// the original KV contract.
const BookingsKey = "bookings"

// RedisBookingRepository keeps every booking in one JSON array under
// BookingsKey. Appends are plain read-modify-write with no conflict
// detection; concurrent bookings of the same seat are not prevented here.
type RedisBookingRepository struct {
	client redis.UniversalClient
}

func NewRedisBookingRepository(client redis.UniversalClient) *RedisBookingRepository {
	return &RedisBookingRepository{
		client: client,
	}
}

func (r *RedisBookingRepository) Append(ctx context.Context, booking domain.Booking) (int, error) {
	bookings, err := r.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	bookings = append(bookings, booking)

	data, err := json.Marshal(bookings)
	if err != nil {
		return 0, err
	}

	err = r.client.Set(ctx, BookingsKey, data, 0).Err()
	if err != nil {
		return 0, fmt.Errorf("failed to store bookings: %w", err)
	}

	return len(bookings), nil
}

func (r *RedisBookingRepository) GetAll(ctx context.Context) ([]domain.Booking, error) {
	data, err := r.client.Get(ctx, BookingsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []domain.Booking{}, nil
		}

		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}

	return decodeBookings(data)
}

func (r *RedisBookingRepository) Clear(ctx context.Context) error {
	return r.client.Del(ctx, BookingsKey).Err()
}

// decodeBookings accepts either a JSON array or, as the original store did, a
// single bare object which it wraps into a one-element list.
func decodeBookings(data []byte) ([]domain.Booking, error) {
	var bookings []domain.Booking

	if err := json.Unmarshal(data, &bookings); err == nil {
		return bookings, nil
	}

	var single domain.Booking
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("malformed bookings value: %w", err)
	}

	return []domain.Booking{single}, nil
}
