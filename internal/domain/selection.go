package domain

import "context"

// MaxSeatsPerSelection caps how many seats a user may hold for one show.
const MaxSeatsPerSelection = 8

type SelectedSeat struct {
	Key  string   `json:"key"`
	Type SeatType `json:"type"`
}

// Selection is a user's in-progress, unconfirmed seat picks for one show.
// Seats keep insertion order; a key appears at most once.
type Selection struct {
	ShowID string         `json:"showId"`
	Seats  []SelectedSeat `json:"seats"`
}

// Toggle removes the seat when it is already selected, otherwise adds it.
// Deselection is always allowed. Selecting a seat that would push the
// selection past MaxSeatsPerSelection returns ErrSelectionLimitExceeded and
// leaves the selection unchanged.
func (s *Selection) Toggle(key string, seatType SeatType) error {
	for i, seat := range s.Seats {
		if seat.Key == key {
			s.Seats = append(s.Seats[:i], s.Seats[i+1:]...)
			return nil
		}
	}

	if len(s.Seats)+1 > MaxSeatsPerSelection {
		return ErrSelectionLimitExceeded
	}

	s.Seats = append(s.Seats, SelectedSeat{Key: key, Type: seatType})

	return nil
}

func (s Selection) Has(key string) bool {
	for _, seat := range s.Seats {
		if seat.Key == key {
			return true
		}
	}

	return false
}

// SeatKeys returns the selected seat keys in insertion order.
func (s Selection) SeatKeys() []string {
	keys := make([]string, len(s.Seats))
	for i, seat := range s.Seats {
		keys[i] = seat.Key
	}

	return keys
}

func (s Selection) Count() int {
	return len(s.Seats)
}

func (s Selection) Empty() bool {
	return len(s.Seats) == 0
}

// TotalPrice sums the fixed category price of every selected seat.
func (s Selection) TotalPrice() int {
	total := 0
	for _, seat := range s.Seats {
		total += SeatPrices[seat.Type]
	}

	return total
}

// SelectionRepository stores selections per session and show. Get returns
// ErrRecordNotFound when the session holds no selection for the show; an
// absent entry is equivalent to an empty selection. Delete removes the entry
// entirely, so no empty selections persist.
type SelectionRepository interface {
	Get(ctx context.Context, sessionID, showID string) (*Selection, error)
	Put(ctx context.Context, sessionID string, selection Selection) error
	Delete(ctx context.Context, sessionID, showID string) error
}
