package domain

import (
	"context"

	"github.com/google/uuid"
)

// Booking is a confirmed, submitted selection. Immutable once created; the
// booking store owns it after submission.
type Booking struct {
	ID            string   `json:"id,omitempty"`
	MovieName     string   `json:"movieName"`
	TheatreName   string   `json:"theatreName"`
	Screen        string   `json:"screen"`
	Time          string   `json:"time"`
	Image         string   `json:"image,omitempty"`
	SelectedSeats []string `json:"selectedSeats"`
	Price         int      `json:"price"`
}

// NewBooking packages the current selection plus show metadata into a booking
// record. The price is fixed at confirmation time.
func NewBooking(details ShowDetails, selection Selection) Booking {
	return Booking{
		ID:            uuid.New().String(),
		MovieName:     details.MovieName,
		TheatreName:   details.TheatreName,
		Screen:        details.Screen,
		Time:          details.Time,
		Image:         details.Image,
		SelectedSeats: selection.SeatKeys(),
		Price:         selection.TotalPrice(),
	}
}

// BookingRepository is the append-only booking store. Append returns the
// number of stored bookings after the append. GetAll returns an empty slice,
// not an error, when nothing has been booked yet.
type BookingRepository interface {
	Append(ctx context.Context, booking Booking) (int, error)
	GetAll(ctx context.Context) ([]Booking, error)
	Clear(ctx context.Context) error
}
