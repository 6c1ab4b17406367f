package httpx

import (
	"errors"
	"net/http"

	"github.com/MikeMC777/lessons-booking/internal/apperr"
)

// StatusOf maps the error taxonomy to an HTTP status. Unknown errors are 500.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, apperr.ErrStoreUnavailable):
		return http.StatusInternalServerError
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrInvalidIdentifier),
		errors.Is(err, apperr.ErrInvalidInput),
		errors.Is(err, apperr.ErrInvalidReference):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
