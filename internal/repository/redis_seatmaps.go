package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/showgrid/booking-api/internal/domain"
)

// RedisSeatMapRepository persists one seat grid per show identity, stored as
// an ordered JSON array of single-entry objects, the representation the
// original client kept in local storage.
type RedisSeatMapRepository struct {
	client redis.UniversalClient
}

func NewRedisSeatMapRepository(client redis.UniversalClient) *RedisSeatMapRepository {
	return &RedisSeatMapRepository{
		client: client,
	}
}

func seatMapKey(showID string) string {
	return fmt.Sprintf("seatmap:%s", showID)
}

func (r *RedisSeatMapRepository) Get(ctx context.Context, showID string) (*domain.SeatMap, error) {
	data, err := r.client.Get(ctx, seatMapKey(showID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, fmt.Errorf("failed to read seat map: %w", err)
	}

	seats, err := decodeSeats(data)
	if err != nil {
		return nil, err
	}

	return &domain.SeatMap{ShowID: showID, Seats: seats}, nil
}

func (r *RedisSeatMapRepository) Put(ctx context.Context, seatMap domain.SeatMap) error {
	entries := make([]map[string]storedSeat, len(seatMap.Seats))
	for i, seat := range seatMap.Seats {
		entries[i] = map[string]storedSeat{
			seat.Key: {Status: string(seat.Status), Type: string(seat.Type)},
		}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, seatMapKey(seatMap.ShowID), data, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to store seat map: %w", err)
	}

	return nil
}

type storedSeat struct {
	Status string `json:"status"`
	Type   string `json:"type"`
}

// decodeSeats normalizes stored entries to the tagged representation. Legacy
// entries carry a bare status string instead of a {status, type} record; only
// the status survives from those, the generator recomputes the category from
// the row anyway.
func decodeSeats(data []byte) ([]domain.Seat, error) {
	var entries []map[string]json.RawMessage

	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("malformed seat map value: %w", err)
	}

	seats := make([]domain.Seat, 0, len(entries))

	for _, entry := range entries {
		for key, raw := range entry {
			seat := domain.Seat{Key: key}

			var stored storedSeat
			if err := json.Unmarshal(raw, &stored); err == nil {
				seat.Status = normalizeSeatStatus(stored.Status)
				seat.Type = domain.SeatType(stored.Type)
			} else {
				var status string
				if err := json.Unmarshal(raw, &status); err != nil {
					return nil, fmt.Errorf("malformed seat entry %q: %w", key, err)
				}
				seat.Status = normalizeSeatStatus(status)
			}

			seats = append(seats, seat)
		}
	}

	return seats, nil
}

// normalizeSeatStatus collapses anything that is not the unavailable marker to
// available, so junk status strings never leave the storage boundary.
func normalizeSeatStatus(status string) domain.SeatStatus {
	if status == string(domain.SeatUnavailable) {
		return domain.SeatUnavailable
	}

	return domain.SeatAvailable
}
