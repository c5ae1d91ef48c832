package app

import (
	"errors"
	"net/http"

	"github.com/showgrid/booking-api/api"
	"github.com/showgrid/booking-api/internal/domain"
	"github.com/showgrid/booking-api/internal/repository"
)

// ConfirmBooking turns the session's selection for the show into a booking:
// the record is appended to the booking store, the selected seats become
// unavailable on the grid, and the selection is cleared. Confirming without
// a selection is a not-found, never an empty booking.
func (app *Application) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.ConfirmBookingRequest

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

	selection, err := app.selectionRepo.Get(r.Context(), sessionID, showID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.errorResponse(w, r, http.StatusNotFound, domain.ErrSelectionNotFound.Error())
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	if selection.Empty() {
		app.errorResponse(w, r, http.StatusNotFound, domain.ErrSelectionNotFound.Error())
		return
	}

	booking := domain.NewBooking(details, *selection)

	_, err = app.bookingRepo.Append(r.Context(), booking)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	// The booking is durable from here on. Grid and selection bookkeeping
	// failures are logged but do not undo the confirmation.
	err = app.markSeatsUnavailable(r, details, selection.SeatKeys())
	if err != nil {
		logger.Warn("failed to mark booked seats unavailable", "show_id", showID, "error", err.Error())
	}

	err = app.selectionRepo.Delete(r.Context(), sessionID, showID)
	if err != nil {
		logger.Warn("failed to clear selection after booking", "show_id", showID, "error", err.Error())
	}

	if input.Email != "" {
		app.sendBookingReceipt(r, input.Email, booking)
	}

	resp := api.ConfirmBookingResponse{
		Booking:              toApiBooking(booking),
		RedirectAfterSeconds: domain.CountdownTicks,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// CreateBooking appends a caller-supplied booking record to the store,
// mirroring a plain key-value write.
func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var input api.CreateBookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if input.Value == nil {
		app.errorResponse(w, r, http.StatusBadRequest, "missing 'value' field")
		return
	}

	booking := toDomainBooking(*input.Value)

	total, err := app.bookingRepo.Append(r.Context(), booking)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.BookingCreatedResponse{
		Success:    true,
		Key:        repository.BookingsKey,
		AddedItem:  toApiBooking(booking),
		TotalItems: total,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := app.bookingRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	apiBookings := make([]api.Booking, len(bookings))
	for i, booking := range bookings {
		apiBookings[i] = toApiBooking(booking)
	}

	resp := api.BookingsResponse{
		Key:      repository.BookingsKey,
		Bookings: apiBookings,
		Count:    len(apiBookings),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ClearBookings(w http.ResponseWriter, r *http.Request) {
	err := app.bookingRepo.Clear(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ClearBookingsResponse{
		Success: true,
		Message: "Data cleared",
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// markSeatsUnavailable flips the booked seats on the stored grid. When the
// grid was never materialized it is generated first so a later fetch still
// shows the seats as taken.
func (app *Application) markSeatsUnavailable(r *http.Request, details domain.ShowDetails, seatKeys []string) error {
	seatMap, err := app.currentSeatMap(r.Context(), r, details)
	if err != nil {
		return err
	}

	seatMap.MarkUnavailable(seatKeys)

	return app.seatMapRepo.Put(r.Context(), *seatMap)
}

func (app *Application) sendBookingReceipt(r *http.Request, email string, booking domain.Booking) {
	logger := app.contextGetLogger(r)

	app.background(func() {
		err := app.mailer.Send(email, "booking_receipt.tmpl", booking)
		if err != nil {
			logger.Error("failed to send booking receipt", "booking_id", booking.ID, "error", err.Error())
		}
	})
}

func toApiBooking(booking domain.Booking) api.Booking {
	return api.Booking{
		Id:            booking.ID,
		MovieName:     booking.MovieName,
		TheatreName:   booking.TheatreName,
		Screen:        booking.Screen,
		Time:          booking.Time,
		Image:         booking.Image,
		SelectedSeats: booking.SelectedSeats,
		Price:         booking.Price,
	}
}

func toDomainBooking(booking api.Booking) domain.Booking {
	return domain.Booking{
		ID:            booking.Id,
		MovieName:     booking.MovieName,
		TheatreName:   booking.TheatreName,
		Screen:        booking.Screen,
		Time:          booking.Time,
		Image:         booking.Image,
		SelectedSeats: booking.SelectedSeats,
		Price:         booking.Price,
	}
}
