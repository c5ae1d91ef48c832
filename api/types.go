// Package api holds the request and response types of the public HTTP API.
package api

import "time"

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type SeatCategory struct {
	Rows  int `json:"rows"`
	Price int `json:"price"`
}

type SeatLayout struct {
	Silver   SeatCategory `json:"silver"`
	Gold     SeatCategory `json:"gold"`
	Platinum SeatCategory `json:"platinum"`
}

type Theatre struct {
	Id         string     `json:"id"`
	Name       string     `json:"name"`
	SeatLayout SeatLayout `json:"seatLayout"`
}

type Show struct {
	Screen string `json:"screen"`
	Time   string `json:"time"`
}

type TheatreMovie struct {
	Name  string `json:"name"`
	Shows []Show `json:"shows"`
}

type Movie struct {
	Id          string         `json:"id"`
	Title       string         `json:"title"`
	Genre       string         `json:"genre"`
	Language    string         `json:"language"`
	Duration    string         `json:"duration"`
	Rating      float64        `json:"rating"`
	Poster      string         `json:"poster"`
	Description string         `json:"description"`
	Cast        []string       `json:"cast"`
	Director    string         `json:"director"`
	Theatres    []TheatreMovie `json:"theatres"`
}

// ShowParams identifies a single screening. The four fields screen, time,
// theatre and movie form the show identity; image is carried along for
// booking records only.
type ShowParams struct {
	Screen    string `json:"screen" validate:"required"`
	Time      string `json:"time" validate:"required"`
	Theatre   string `json:"theatre" validate:"required"`
	MovieName string `json:"movieName" validate:"required"`
	Image     string `json:"image,omitempty"`
}

type Seat struct {
	Key    string `json:"key"`
	Status string `json:"status"`
	Type   string `json:"type"`
	Price  int    `json:"price"`
}

type SeatMapResponse struct {
	ShowId string `json:"showId"`
	Seats  []Seat `json:"seats"`
}

type ToggleSeatRequest struct {
	Show    ShowParams `json:"show" validate:"required"`
	SeatKey string     `json:"seatKey" validate:"required,seatkey"`
	Type    string     `json:"type" validate:"required,seattype"`
}

type SelectedSeat struct {
	Key   string `json:"key"`
	Type  string `json:"type"`
	Price int    `json:"price"`
}

type SelectionResponse struct {
	ShowId     string         `json:"showId"`
	Seats      []SelectedSeat `json:"seats"`
	SeatCount  int            `json:"seatCount"`
	TotalPrice int            `json:"totalPrice"`
	MaxSeats   int            `json:"maxSeats"`
}

type Booking struct {
	Id            string   `json:"id,omitempty"`
	MovieName     string   `json:"movieName"`
	TheatreName   string   `json:"theatreName"`
	Screen        string   `json:"screen"`
	Time          string   `json:"time"`
	Image         string   `json:"image,omitempty"`
	SelectedSeats []string `json:"selectedSeats"`
	Price         int      `json:"price"`
}

type ConfirmBookingRequest struct {
	Show  ShowParams `json:"show" validate:"required"`
	Email string     `json:"email,omitempty" validate:"omitempty,email"`
}

type ConfirmBookingResponse struct {
	Booking              Booking `json:"booking"`
	RedirectAfterSeconds int     `json:"redirectAfterSeconds"`
}

type CreateBookingRequest struct {
	Value *Booking `json:"value"`
}

type BookingCreatedResponse struct {
	Success    bool    `json:"success"`
	Key        string  `json:"key"`
	AddedItem  Booking `json:"addedItem"`
	TotalItems int     `json:"totalItems"`
}

type BookingsResponse struct {
	Key      string    `json:"key"`
	Bookings []Booking `json:"bookings"`
	Count    int       `json:"count"`
}

type ClearBookingsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
