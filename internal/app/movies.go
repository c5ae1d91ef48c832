package app

import (
	"net/http"

	"github.com/showgrid/booking-api/api"
	"github.com/showgrid/booking-api/internal/domain"
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiMovies(movies), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiMovies(movies []domain.Movie) []api.Movie {
	apiMovies := make([]api.Movie, len(movies))

	for i, movie := range movies {
		apiMovies[i] = api.Movie{
			Id:          movie.ID,
			Title:       movie.Title,
			Genre:       movie.Genre,
			Language:    movie.Language,
			Duration:    movie.Duration,
			Rating:      movie.Rating,
			Poster:      movie.Poster,
			Description: movie.Description,
			Cast:        movie.Cast,
			Director:    movie.Director,
			Theatres:    toApiTheatreShows(movie.Theatres),
		}
	}

	return apiMovies
}

func toApiTheatreShows(theatres []domain.TheatreShows) []api.TheatreMovie {
	apiTheatres := make([]api.TheatreMovie, len(theatres))

	for i, theatre := range theatres {
		shows := make([]api.Show, len(theatre.Shows))
		for j, show := range theatre.Shows {
			shows[j] = api.Show{Screen: show.Screen, Time: show.Time}
		}

		apiTheatres[i] = api.TheatreMovie{Name: theatre.Name, Shows: shows}
	}

	return apiTheatres
}
