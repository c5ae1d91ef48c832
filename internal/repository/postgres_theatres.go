package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/showgrid/booking-api/internal/domain"
)

type PostgresTheatreRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTheatreRepository(db *pgxpool.Pool) *PostgresTheatreRepository {
	return &PostgresTheatreRepository{
		db: db,
	}
}

const theatreColumns = `id, name,
	silver_rows, silver_price,
	gold_rows, gold_price,
	platinum_rows, platinum_price`

func (p *PostgresTheatreRepository) GetAll(ctx context.Context) ([]domain.Theatre, error) {
	query := `SELECT ` + theatreColumns + ` FROM theatres ORDER BY id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	theatres := []domain.Theatre{}

	for rows.Next() {
		theatre, err := scanTheatre(rows)
		if err != nil {
			return nil, err
		}

		theatres = append(theatres, theatre)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return theatres, nil
}

func (p *PostgresTheatreRepository) GetByName(ctx context.Context, name string) (*domain.Theatre, error) {
	query := `SELECT ` + theatreColumns + ` FROM theatres WHERE name = $1`

	theatre, err := scanTheatre(p.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &theatre, nil
}

func scanTheatre(row pgx.Row) (domain.Theatre, error) {
	var theatre domain.Theatre

	err := row.Scan(
		&theatre.ID,
		&theatre.Name,
		&theatre.SeatLayout.Silver.Rows,
		&theatre.SeatLayout.Silver.Price,
		&theatre.SeatLayout.Gold.Rows,
		&theatre.SeatLayout.Gold.Price,
		&theatre.SeatLayout.Platinum.Rows,
		&theatre.SeatLayout.Platinum.Price,
	)

	return theatre, err
}
