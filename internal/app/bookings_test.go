package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/showgrid/booking-api/api"
	"github.com/showgrid/booking-api/internal/domain"
	"github.com/showgrid/booking-api/internal/mailer"
	"github.com/showgrid/booking-api/internal/mocks"
	"github.com/showgrid/booking-api/internal/repository"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BookingsTestSuite struct {
	suite.Suite
	app           *Application
	theatreRepo   *mocks.MockTheatreRepo
	seatMapRepo   *mocks.MockSeatMapRepo
	selectionRepo *mocks.MockSelectionRepo
	bookingRepo   *mocks.MockBookingRepo
}

func (s *BookingsTestSuite) SetupTest() {
	s.theatreRepo = new(mocks.MockTheatreRepo)
	s.seatMapRepo = new(mocks.MockSeatMapRepo)
	s.selectionRepo = new(mocks.MockSelectionRepo)
	s.bookingRepo = new(mocks.MockBookingRepo)

	s.app = newTestApplication(func(a *Application) {
		a.theatreRepo = s.theatreRepo
		a.seatMapRepo = s.seatMapRepo
		a.selectionRepo = s.selectionRepo
		a.bookingRepo = s.bookingRepo
	})
}

func TestBookingsSuite(t *testing.T) {
	suite.Run(t, new(BookingsTestSuite))
}

func (s *BookingsTestSuite) TestConfirmBooking() {
	twoSeats := &domain.Selection{
		ShowID: testShowID,
		Seats: []domain.SelectedSeat{
			{Key: "A1", Type: domain.SeatTypeSilver},
			{Key: "A2", Type: domain.SeatTypeSilver},
		},
	}

	tests := []struct {
		name           string
		body           api.ConfirmBookingRequest
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
		checkResponse  func(resp api.ConfirmBookingResponse)
	}{
		{
			name:           "should fail when show parameters are missing",
			body:           api.ConfirmBookingRequest{},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "is required",
		},
		{
			name:           "should fail when email is malformed",
			body:           api.ConfirmBookingRequest{Show: testShowParams, Email: "not-an-email"},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be a valid email address",
		},
		{
			name: "should fail when nothing is selected",
			body: api.ConfirmBookingRequest{Show: testShowParams},
			setupMocks: func() {
				s.selectionRepo.On("Get", mock.Anything, "", testShowID).
					Return(nil, domain.ErrRecordNotFound)
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: domain.ErrSelectionNotFound.Error(),
		},
		{
			name: "should fail when the stored selection is empty",
			body: api.ConfirmBookingRequest{Show: testShowParams},
			setupMocks: func() {
				s.selectionRepo.On("Get", mock.Anything, "", testShowID).
					Return(&domain.Selection{ShowID: testShowID}, nil)
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: domain.ErrSelectionNotFound.Error(),
		},
		{
			name: "should fail and keep the selection when the booking store is down",
			body: api.ConfirmBookingRequest{Show: testShowParams},
			setupMocks: func() {
				s.selectionRepo.On("Get", mock.Anything, "", testShowID).Return(twoSeats, nil)
				s.bookingRepo.On("Append", mock.Anything, mock.Anything).
					Return(0, fmt.Errorf("redis error"))
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name: "should confirm the booking",
			body: api.ConfirmBookingRequest{Show: testShowParams},
			setupMocks: func() {
				s.selectionRepo.On("Get", mock.Anything, "", testShowID).Return(twoSeats, nil)
				s.bookingRepo.On("Append", mock.Anything, mock.MatchedBy(func(b domain.Booking) bool {
					return b.MovieName == "Dies Irae" && len(b.SelectedSeats) == 2 && b.Price == 300
				})).Return(1, nil)
				s.theatreRepo.On("GetByName", mock.Anything, "ABC-Multiplex").Return(&testTheatre, nil)
				s.seatMapRepo.On("Get", mock.Anything, testShowID).Return(storedGrid(), nil)
				s.seatMapRepo.On("Put", mock.Anything, mock.MatchedBy(func(m domain.SeatMap) bool {
					a1, _ := m.Seat("A1")
					a2, _ := m.Seat("A2")
					return a1.Status == domain.SeatUnavailable && a2.Status == domain.SeatUnavailable
				})).Return(nil)
				s.selectionRepo.On("Delete", mock.Anything, "", testShowID).Return(nil)
			},
			wantStatus: http.StatusCreated,
			checkResponse: func(resp api.ConfirmBookingResponse) {
				s.NotEmpty(resp.Booking.Id)
				s.Equal(domain.CountdownTicks, resp.RedirectAfterSeconds)

				want := api.Booking{
					Id:            resp.Booking.Id,
					MovieName:     "Dies Irae",
					TheatreName:   "ABC-Multiplex",
					Screen:        "Screen 1",
					Time:          "10:00 AM",
					SelectedSeats: []string{"A1", "A2"},
					Price:         300,
				}
				diff := cmp.Diff(want, resp.Booking)
				s.Empty(diff, "Booking mismatch (-want +got):\n%s", diff)
			},
		},
		{
			name: "should still confirm when grid bookkeeping fails",
			body: api.ConfirmBookingRequest{Show: testShowParams},
			setupMocks: func() {
				s.selectionRepo.On("Get", mock.Anything, "", testShowID).Return(twoSeats, nil)
				s.bookingRepo.On("Append", mock.Anything, mock.Anything).Return(1, nil)
				s.seatMapRepo.On("Get", mock.Anything, testShowID).
					Return(nil, fmt.Errorf("redis error"))
				s.selectionRepo.On("Delete", mock.Anything, "", testShowID).Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.selectionRepo.AssertExpectations(s.T())
			defer s.bookingRepo.AssertExpectations(s.T())
			defer s.seatMapRepo.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/shows/booking", tt.body)
			r = loadSession(s.T(), s.app, r)

			s.app.ConfirmBooking(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.checkResponse != nil {
				var response api.ConfirmBookingResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				s.Require().NoError(err, "Failed to decode response")

				tt.checkResponse(response)
			}

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func (s *BookingsTestSuite) TestConfirmBookingSendsReceipt() {
	s.SetupTest()

	selection := &domain.Selection{
		ShowID: testShowID,
		Seats:  []domain.SelectedSeat{{Key: "A1", Type: domain.SeatTypeSilver}},
	}

	s.selectionRepo.On("Get", mock.Anything, "", testShowID).Return(selection, nil)
	s.bookingRepo.On("Append", mock.Anything, mock.Anything).Return(1, nil)
	s.theatreRepo.On("GetByName", mock.Anything, "ABC-Multiplex").Return(&testTheatre, nil)
	s.seatMapRepo.On("Get", mock.Anything, testShowID).Return(storedGrid(), nil)
	s.seatMapRepo.On("Put", mock.Anything, mock.Anything).Return(nil)
	s.selectionRepo.On("Delete", mock.Anything, "", testShowID).Return(nil)

	body := api.ConfirmBookingRequest{Show: testShowParams, Email: "guest@example.com"}

	w, r := executeRequest(s.T(), http.MethodPost, "/shows/booking", body)
	r = loadSession(s.T(), s.app, r)

	s.app.ConfirmBooking(w, r)

	s.Equal(http.StatusCreated, w.Code)

	// The receipt is sent in the background; wait for it to finish.
	s.app.wg.Wait()

	sent := s.app.mailer.(*mailer.MockMailer).GetSentEmails()
	s.Require().Len(sent, 1)
	s.Equal("guest@example.com", sent[0].Recipient)
	s.Equal("booking_receipt.tmpl", sent[0].TemplateFile)
}

func (s *BookingsTestSuite) TestCreateBooking() {
	record := api.Booking{
		MovieName:     "Dies Irae",
		TheatreName:   "ABC-Multiplex",
		Screen:        "Screen 1",
		Time:          "10:00 AM",
		SelectedSeats: []string{"A1"},
		Price:         150,
	}

	tests := []struct {
		name           string
		body           any
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
		checkResponse  func(resp api.BookingCreatedResponse)
	}{
		{
			name:           "should fail when the value field is missing",
			body:           map[string]any{},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "missing 'value' field",
		},
		{
			name: "should fail when the store is unreachable",
			body: api.CreateBookingRequest{Value: &record},
			setupMocks: func() {
				s.bookingRepo.On("Append", mock.Anything, mock.Anything).
					Return(0, fmt.Errorf("redis error"))
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name: "should append the booking",
			body: api.CreateBookingRequest{Value: &record},
			setupMocks: func() {
				s.bookingRepo.On("Append", mock.Anything, mock.MatchedBy(func(b domain.Booking) bool {
					return b.MovieName == "Dies Irae" && b.Price == 150
				})).Return(3, nil)
			},
			wantStatus: http.StatusCreated,
			checkResponse: func(resp api.BookingCreatedResponse) {
				s.True(resp.Success)
				s.Equal(repository.BookingsKey, resp.Key)
				s.Equal(3, resp.TotalItems)
				s.Equal("Dies Irae", resp.AddedItem.MovieName)
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.bookingRepo.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/bookings", tt.body)
			s.app.CreateBooking(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.checkResponse != nil {
				var response api.BookingCreatedResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				s.Require().NoError(err, "Failed to decode response")

				tt.checkResponse(response)
			}

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func (s *BookingsTestSuite) TestGetBookings() {
	s.Run("should return every stored booking", func() {
		s.SetupTest()

		s.bookingRepo.On("GetAll", mock.Anything).Return([]domain.Booking{
			{ID: "b-1", MovieName: "Dies Irae", SelectedSeats: []string{"A1"}, Price: 150},
			{ID: "b-2", MovieName: "Midnight Express", SelectedSeats: []string{"D1", "D2"}, Price: 400},
		}, nil)

		w, r := executeRequest(s.T(), http.MethodGet, "/bookings", nil)
		s.app.GetBookings(w, r)

		s.Equal(http.StatusOK, w.Code)

		var response api.BookingsResponse
		err := json.NewDecoder(w.Body).Decode(&response)
		s.Require().NoError(err)

		s.Equal(repository.BookingsKey, response.Key)
		s.Equal(2, response.Count)
		s.Len(response.Bookings, 2)
	})

	s.Run("should return an empty list when nothing is booked", func() {
		s.SetupTest()

		s.bookingRepo.On("GetAll", mock.Anything).Return([]domain.Booking{}, nil)

		w, r := executeRequest(s.T(), http.MethodGet, "/bookings", nil)
		s.app.GetBookings(w, r)

		s.Equal(http.StatusOK, w.Code)

		var response api.BookingsResponse
		err := json.NewDecoder(w.Body).Decode(&response)
		s.Require().NoError(err)

		s.Equal(0, response.Count)
	})
}

func (s *BookingsTestSuite) TestClearBookings() {
	s.Run("should clear the store", func() {
		s.SetupTest()

		s.bookingRepo.On("Clear", mock.Anything).Return(nil)

		w, r := executeRequest(s.T(), http.MethodDelete, "/bookings", nil)
		s.app.ClearBookings(w, r)

		s.Equal(http.StatusOK, w.Code)

		var response api.ClearBookingsResponse
		err := json.NewDecoder(w.Body).Decode(&response)
		s.Require().NoError(err)

		s.True(response.Success)
		s.Equal("Data cleared", response.Message)
	})

	s.Run("should fail when the store is unreachable", func() {
		s.SetupTest()

		s.bookingRepo.On("Clear", mock.Anything).Return(fmt.Errorf("redis error"))

		w, r := executeRequest(s.T(), http.MethodDelete, "/bookings", nil)
		s.app.ClearBookings(w, r)

		s.Equal(http.StatusInternalServerError, w.Code)
	})
}
