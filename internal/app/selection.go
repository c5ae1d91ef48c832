package app

import (
	"errors"
	"net/http"

	"github.com/showgrid/booking-api/api"
	"github.com/showgrid/booking-api/internal/domain"
)

const ErrTooManySeats = "You can only select up to 8 seats. Please adjust your selection"

// ToggleSeat adds the seat to the session's selection for the show, or
// removes it when it is already selected. Selecting past the per-show limit
// is rejected without changing the selection.
func (app *Application) ToggleSeat(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.ToggleSeatRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	details := toShowDetails(input.Show)
	showID := details.ID()
	sessionID := app.sessionManager.Token(r.Context())

	seatMap, err := app.currentSeatMap(r.Context(), r, details)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	seat, ok := seatMap.Seat(input.SeatKey)
	if !ok {
		logger.Warn("toggle attempt for a seat outside the grid", "seat", input.SeatKey, "show_id", showID)
		app.notFoundResponse(w, r)
		return
	}

	if seat.Status == domain.SeatUnavailable {
		app.editConflictResponse(w, r, domain.ErrSeatUnavailable)
		return
	}

	selection, err := app.selectionForShow(r, sessionID, showID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = selection.Toggle(input.SeatKey, seat.Type)
	if err != nil {
		if errors.Is(err, domain.ErrSelectionLimitExceeded) {
			logger.Warn("selection limit exceeded", "show_id", showID, "seat", input.SeatKey)
			app.errorResponse(w, r, http.StatusConflict, ErrTooManySeats)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	// An emptied selection is removed outright so no empty entries persist.
	if selection.Empty() {
		err = app.selectionRepo.Delete(r.Context(), sessionID, showID)
	} else {
		err = app.selectionRepo.Put(r.Context(), sessionID, *selection)
	}
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiSelection(*selection), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetSelection returns the session's current selection for the show. An
// absent entry is reported as an empty selection, not an error.
func (app *Application) GetSelection(w http.ResponseWriter, r *http.Request) {
	params := showParamsFromQuery(r)

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	showID := toShowDetails(params).ID()
	sessionID := app.sessionManager.Token(r.Context())

	selection, err := app.selectionForShow(r, sessionID, showID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiSelection(*selection), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// DeleteSelection cancels the session's selection for the show.
func (app *Application) DeleteSelection(w http.ResponseWriter, r *http.Request) {
	params := showParamsFromQuery(r)

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	showID := toShowDetails(params).ID()
	sessionID := app.sessionManager.Token(r.Context())

	err = app.selectionRepo.Delete(r.Context(), sessionID, showID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) selectionForShow(r *http.Request, sessionID, showID string) (*domain.Selection, error) {
	selection, err := app.selectionRepo.Get(r.Context(), sessionID, showID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return &domain.Selection{ShowID: showID}, nil
		}

		return nil, err
	}

	return selection, nil
}

func toApiSelection(selection domain.Selection) api.SelectionResponse {
	seats := make([]api.SelectedSeat, len(selection.Seats))

	for i, seat := range selection.Seats {
		seats[i] = api.SelectedSeat{
			Key:   seat.Key,
			Type:  string(seat.Type),
			Price: domain.SeatPrices[seat.Type],
		}
	}

	return api.SelectionResponse{
		ShowId:     selection.ShowID,
		Seats:      seats,
		SeatCount:  selection.Count(),
		TotalPrice: selection.TotalPrice(),
		MaxSeats:   domain.MaxSeatsPerSelection,
	}
}
