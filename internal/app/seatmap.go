package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/showgrid/booking-api/api"
	"github.com/showgrid/booking-api/internal/domain"
)

// GetSeatMap materializes the seat grid for the show identified by the query
// parameters. Statuses from an earlier grid for the same show are preserved;
// the regenerated grid replaces the stored one for this show only.
func (app *Application) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	params := showParamsFromQuery(r)

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	details := toShowDetails(params)

	layout, err := app.layoutForTheatre(r, details.TheatreName)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	previous, err := app.seatMapRepo.Get(r.Context(), details.ID())
	if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		app.serverErrorResponse(w, r, err)
		return
	}

	seatMap := domain.GenerateSeatMap(details, layout, previous)

	err = app.seatMapRepo.Put(r.Context(), seatMap)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiSeatMap(seatMap), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// layoutForTheatre resolves a theatre's seat layout, treating an unknown
// theatre as an empty layout rather than a failure.
func (app *Application) layoutForTheatre(r *http.Request, name string) (domain.SeatLayout, error) {
	theatre, err := app.theatreRepo.GetByName(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.contextGetLogger(r).Warn("unknown theatre, using empty seat layout", "theatre", name)
			return domain.SeatLayout{}, nil
		}

		return domain.SeatLayout{}, err
	}

	return theatre.SeatLayout, nil
}

// currentSeatMap materializes the grid for the show, preserving statuses from
// the stored grid when one exists. The grid is always regenerated from the
// layout so seat categories are recomputed from the row; stored entries in the
// older format carry only a status.
func (app *Application) currentSeatMap(ctx context.Context, r *http.Request, details domain.ShowDetails) (*domain.SeatMap, error) {
	stored, err := app.seatMapRepo.Get(ctx, details.ID())
	if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, err
	}

	layout, err := app.layoutForTheatre(r, details.TheatreName)
	if err != nil {
		return nil, err
	}

	generated := domain.GenerateSeatMap(details, layout, stored)

	return &generated, nil
}

func toApiSeatMap(seatMap domain.SeatMap) api.SeatMapResponse {
	seats := make([]api.Seat, len(seatMap.Seats))

	for i, seat := range seatMap.Seats {
		seats[i] = api.Seat{
			Key:    seat.Key,
			Status: string(seat.Status),
			Type:   string(seat.Type),
			Price:  domain.SeatPrices[seat.Type],
		}
	}

	return api.SeatMapResponse{ShowId: seatMap.ShowID, Seats: seats}
}
