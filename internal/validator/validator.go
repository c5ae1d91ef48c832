package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/showgrid/booking-api/internal/domain"
)

var seatKeyRgx = regexp.MustCompile(`^[A-Z]+(10|[1-9])$`)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("seatkey", validateSeatKey)
	validator.RegisterValidation("seattype", validateSeatType)

	return validator
}

func validateSeatKey(fl validator.FieldLevel) bool {
	return seatKeyRgx.MatchString(fl.Field().String())
}

func validateSeatType(fl validator.FieldLevel) bool {
	seatType := domain.SeatType(fl.Field().String())

	for _, t := range domain.SeatTypes {
		if seatType == t {
			return true
		}
	}

	return false
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", err.Param())
	case "seatkey":
		return "must be a row label followed by a column number, like A1"
	case "seattype":
		return "must be one of silver, gold or platinum"
	default:
		return "is invalid"
	}
}
