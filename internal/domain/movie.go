package domain

import "context"

type Movie struct {
	ID          string
	Title       string
	Genre       string
	Language    string
	Duration    string
	Rating      float64
	Poster      string
	Description string
	Cast        []string
	Director    string
	Theatres    []TheatreShows
}

// TheatreShows lists the show times a movie plays at one theatre.
type TheatreShows struct {
	Name  string
	Shows []Show
}

type Show struct {
	Screen string
	Time   string
}

type MovieRepository interface {
	GetAll(ctx context.Context) ([]Movie, error)
}
