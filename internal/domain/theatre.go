package domain

import "context"

type Theatre struct {
	ID         string
	Name       string
	SeatLayout SeatLayout
}

// TheatreRepository serves the fixed theatre catalog. GetByName returns
// ErrRecordNotFound for unknown names; callers rendering seat grids must
// treat that as an empty layout, not a failure.
type TheatreRepository interface {
	GetAll(ctx context.Context) ([]Theatre, error)
	GetByName(ctx context.Context, name string) (*Theatre, error)
}
