package app

import (
	"net/http"

	"github.com/showgrid/booking-api/api"
	"github.com/showgrid/booking-api/internal/domain"
)

func (app *Application) GetTheatres(w http.ResponseWriter, r *http.Request) {
	theatres, err := app.theatreRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	// The seat layouts drive availability rendering, so intermediaries must
	// never serve a stale copy.
	headers := http.Header{
		"Cache-Control": []string{"no-cache, no-store, must-revalidate"},
		"Pragma":        []string{"no-cache"},
		"Expires":       []string{"0"},
	}

	err = app.writeJSON(w, http.StatusOK, toApiTheatres(theatres), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiTheatres(theatres []domain.Theatre) []api.Theatre {
	apiTheatres := make([]api.Theatre, len(theatres))

	for i, theatre := range theatres {
		apiTheatres[i] = api.Theatre{
			Id:         theatre.ID,
			Name:       theatre.Name,
			SeatLayout: toApiSeatLayout(theatre.SeatLayout),
		}
	}

	return apiTheatres
}

func toApiSeatLayout(layout domain.SeatLayout) api.SeatLayout {
	return api.SeatLayout{
		Silver:   api.SeatCategory{Rows: layout.Silver.Rows, Price: layout.Silver.Price},
		Gold:     api.SeatCategory{Rows: layout.Gold.Rows, Price: layout.Gold.Price},
		Platinum: api.SeatCategory{Rows: layout.Platinum.Rows, Price: layout.Platinum.Price},
	}
}
