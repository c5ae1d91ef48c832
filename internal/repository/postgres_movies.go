package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/showgrid/booking-api/internal/domain"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context) ([]domain.Movie, error) {
	query := `
		SELECT
			m.id,
			m.title,
			m.genre,
			m.language,
			m.duration,
			m.rating,
			m.poster_url,
			m.description,
			m.cast_members,
			m.director,
			COALESCE(ts.theatres, '[]') AS theatres
		FROM movies m
		LEFT JOIN LATERAL (
			SELECT jsonb_agg(
				jsonb_build_object('name', t.name, 'shows', t.shows)
				ORDER BY t.name
			) AS theatres
			FROM (
				SELECT
					th.name,
					jsonb_agg(
						jsonb_build_object('screen', s.screen, 'time', s.show_time)
						ORDER BY s.id
					) AS shows
				FROM shows s
				INNER JOIN theatres th ON th.id = s.theatre_id
				WHERE s.movie_id = m.id
				GROUP BY th.name
			) t
		) ts ON true
		ORDER BY m.id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []domain.Movie{}

	for rows.Next() {
		var movie domain.Movie
		var theatresJson json.RawMessage

		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Genre,
			&movie.Language,
			&movie.Duration,
			&movie.Rating,
			&movie.Poster,
			&movie.Description,
			&movie.Cast,
			&movie.Director,
			&theatresJson,
		)
		if err != nil {
			return nil, err
		}

		if len(theatresJson) > 0 {
			var theatres []struct {
				Name  string `json:"name"`
				Shows []struct {
					Screen string `json:"screen"`
					Time   string `json:"time"`
				} `json:"shows"`
			}

			if err := json.Unmarshal(theatresJson, &theatres); err != nil {
				return nil, err
			}

			for _, t := range theatres {
				theatreShows := domain.TheatreShows{Name: t.Name}
				for _, s := range t.Shows {
					theatreShows.Shows = append(theatreShows.Shows, domain.Show{Screen: s.Screen, Time: s.Time})
				}

				movie.Theatres = append(movie.Theatres, theatreShows)
			}
		}

		movies = append(movies, movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}
