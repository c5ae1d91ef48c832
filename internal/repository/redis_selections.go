package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/showgrid/booking-api/internal/domain"
)

// selectionTTL bounds how long an unconfirmed selection survives.
const selectionTTL = 30 * time.Minute

// RedisSelectionRepository scopes selections to a session token and a show
// identity. Entries expire on their own; confirmed or cancelled selections
// are deleted eagerly.
type RedisSelectionRepository struct {
	client redis.UniversalClient
}

func NewRedisSelectionRepository(client redis.UniversalClient) *RedisSelectionRepository {
	return &RedisSelectionRepository{
		client: client,
	}
}

func selectionKey(sessionID, showID string) string {
	return fmt.Sprintf("selection:%s:%s", sessionID, showID)
}

func (r *RedisSelectionRepository) Get(ctx context.Context, sessionID, showID string) (*domain.Selection, error) {
	data, err := r.client.Get(ctx, selectionKey(sessionID, showID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, fmt.Errorf("failed to read selection: %w", err)
	}

	var selection domain.Selection

	err = json.Unmarshal(data, &selection)
	if err != nil {
		return nil, fmt.Errorf("malformed selection value: %w", err)
	}

	return &selection, nil
}

func (r *RedisSelectionRepository) Put(ctx context.Context, sessionID string, selection domain.Selection) error {
	data, err := json.Marshal(selection)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, selectionKey(sessionID, selection.ShowID), data, selectionTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to store selection: %w", err)
	}

	return nil
}

func (r *RedisSelectionRepository) Delete(ctx context.Context, sessionID, showID string) error {
	return r.client.Del(ctx, selectionKey(sessionID, showID)).Err()
}
