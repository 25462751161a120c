package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"scout-server/internal/shared_kernel/domain"
)

// ReplyWithDomainError maps domain failures onto status codes. Unknown errors
// are logged and answered with fallback so internals never leak.
func ReplyWithDomainError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrUniqueConstraint):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrRequiredField), errors.Is(err, domain.ErrTypeCoercion):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, domain.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		slog.Error(fallback, slog.String("error", err.Error()))
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}
