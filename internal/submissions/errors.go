package submissions

import (
	"errors"
	"net/http"
)

// Domain errors for submission operations. Validation error text doubles as
// the client-facing rejection reason.
var (
	ErrNotFound          = errors.New("submission not found")
	ErrIDMismatch        = errors.New("id mismatch")
	ErrInvalidID         = errors.New("invalid submission id")
	ErrInvalidPayload    = errors.New("invalid submission payload")
	ErrNoFile            = errors.New("no file uploaded")
	ErrMissingBusinessID = errors.New("businessId is required")
	ErrMissingOrConsent  = errors.New("missing required fields or consent not given")
	ErrFutureDateOfBirth = errors.New("date of birth cannot be in the future")
	ErrFutureDateTaken   = errors.New("date taken cannot be in the future")
	ErrDateOfBirthTooOld = errors.New("please enter a valid date of birth")
)

// MapHTTPStatus maps submission domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}

	for _, bad := range []error{
		ErrIDMismatch,
		ErrInvalidID,
		ErrInvalidPayload,
		ErrNoFile,
		ErrMissingBusinessID,
		ErrMissingOrConsent,
		ErrFutureDateOfBirth,
		ErrFutureDateTaken,
		ErrDateOfBirthTooOld,
	} {
		if errors.Is(err, bad) {
			return http.StatusBadRequest
		}
	}

	return http.StatusInternalServerError
}
