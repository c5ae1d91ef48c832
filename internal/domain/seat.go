package domain

import (
	"context"
	"strconv"
)

// SeatColumns is the fixed number of seats per row.
const SeatColumns = 10

type SeatStatus string

const (
	SeatAvailable   SeatStatus = "available"
	SeatUnavailable SeatStatus = "unavailable"
)

type SeatType string

const (
	SeatTypeSilver   SeatType = "silver"
	SeatTypeGold     SeatType = "gold"
	SeatTypePlatinum SeatType = "platinum"
)

// SeatTypes lists the categories in row order, lowest rows first.
var SeatTypes = []SeatType{SeatTypeSilver, SeatTypeGold, SeatTypePlatinum}

// SeatPrices is the fixed per-category ticket price used for selection totals
// and booking records. It is independent of the per-theatre layout prices,
// which are display values in the catalog.
var SeatPrices = map[SeatType]int{
	SeatTypeSilver:   150,
	SeatTypeGold:     200,
	SeatTypePlatinum: 250,
}

type SeatCategory struct {
	Rows  int
	Price int
}

// SeatLayout is one theatre's per-category row configuration. The zero value
// is a valid empty layout, used when the theatre is unknown.
type SeatLayout struct {
	Silver   SeatCategory
	Gold     SeatCategory
	Platinum SeatCategory
}

func (l SeatLayout) Category(t SeatType) SeatCategory {
	switch t {
	case SeatTypeSilver:
		return l.Silver
	case SeatTypeGold:
		return l.Gold
	case SeatTypePlatinum:
		return l.Platinum
	}

	return SeatCategory{}
}

func (l SeatLayout) TotalRows() int {
	return l.Silver.Rows + l.Gold.Rows + l.Platinum.Rows
}

// CategoryForRow maps a zero-based row index to its category by walking the
// categories in row order and subtracting each row budget. A row index beyond
// every budget falls back to the last category rather than failing.
func (l SeatLayout) CategoryForRow(row int) SeatType {
	for _, t := range SeatTypes {
		rows := l.Category(t).Rows
		if row < rows {
			return t
		}
		row -= rows
	}

	return SeatTypes[len(SeatTypes)-1]
}

// RowIndexToLetters converts a zero-based row index to a spreadsheet-style
// label: 0 -> A, 25 -> Z, 26 -> AA, 27 -> AB.
func RowIndexToLetters(index int) string {
	var label []byte

	for index++; index > 0; index = (index - 1) / 26 {
		label = append([]byte{byte('A' + (index-1)%26)}, label...)
	}

	return string(label)
}

type Seat struct {
	Key    string
	Status SeatStatus
	Type   SeatType
}

// SeatMap is the ordered grid of seats for one show.
type SeatMap struct {
	ShowID string
	Seats  []Seat
}

// GenerateSeatMap materializes the seat grid for a show. Seats are emitted
// row by row, columns 1..SeatColumns, each tagged with the category of its
// row. Statuses of seats present in previous are preserved, everything else
// defaults to available, which makes regeneration idempotent for a show.
func GenerateSeatMap(details ShowDetails, layout SeatLayout, previous *SeatMap) SeatMap {
	existing := make(map[string]SeatStatus)
	if previous != nil {
		for _, seat := range previous.Seats {
			existing[seat.Key] = seat.Status
		}
	}

	totalRows := layout.TotalRows()
	seats := make([]Seat, 0, totalRows*SeatColumns)

	for row := 0; row < totalRows; row++ {
		seatType := layout.CategoryForRow(row)
		label := RowIndexToLetters(row)

		for col := 1; col <= SeatColumns; col++ {
			key := label + strconv.Itoa(col)

			status := SeatAvailable
			if prev, ok := existing[key]; ok {
				status = prev
			}

			seats = append(seats, Seat{Key: key, Status: status, Type: seatType})
		}
	}

	return SeatMap{ShowID: details.ID(), Seats: seats}
}

// MarkUnavailable flips the given seats to unavailable. Unknown keys are
// ignored.
func (m *SeatMap) MarkUnavailable(keys []string) {
	marked := make(map[string]bool, len(keys))
	for _, key := range keys {
		marked[key] = true
	}

	for i := range m.Seats {
		if marked[m.Seats[i].Key] {
			m.Seats[i].Status = SeatUnavailable
		}
	}
}

// Seat returns the seat with the given key, if present.
func (m *SeatMap) Seat(key string) (Seat, bool) {
	for _, seat := range m.Seats {
		if seat.Key == key {
			return seat, true
		}
	}

	return Seat{}, false
}

// SeatMapRepository persists one seat grid per show identity. Get returns
// ErrRecordNotFound when no grid has been stored for the show yet.
type SeatMapRepository interface {
	Get(ctx context.Context, showID string) (*SeatMap, error)
	Put(ctx context.Context, seatMap SeatMap) error
}
