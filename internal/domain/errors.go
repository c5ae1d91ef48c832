package domain

import "errors"

var (
	ErrRecordNotFound         = errors.New("record not found")
	ErrSelectionNotFound      = errors.New("no seats selected for this show")
	ErrSelectionLimitExceeded = errors.New("selection would exceed the maximum number of seats")
	ErrSeatUnavailable        = errors.New("seat is not available")
)
