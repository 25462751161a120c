package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"scout-server/internal/infra/httpserver"
	"scout-server/internal/shared_kernel/domain"
	"scout-server/internal/shared_kernel/usecases"
)

const (
	unauthorizedErrMessage = "unauthorized"
	forbiddenErrMessage    = "forbidden"
)

// RequireRole resolves the caller forwarded in the user header and only lets
// requests through when its role covers required.
func RequireRole(resolver usecases.RoleResolver, required domain.Role, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := httpserver.GetUserID(r)
		if userID == "" {
			http.Error(w, unauthorizedErrMessage, http.StatusUnauthorized)
			return
		}

		role, err := resolver.GetRole(r.Context(), domain.ID(userID))
		if errors.Is(err, domain.ErrNotFound) {
			slog.Warn("unknown caller", slog.String("user_id", userID))
			http.Error(w, unauthorizedErrMessage, http.StatusUnauthorized)
			return
		}
		if err != nil {
			slog.Error("resolving caller role", slog.String("error", err.Error()))
			http.Error(w, "failed to resolve caller", http.StatusInternalServerError)
			return
		}

		if !role.Allows(required) {
			slog.Warn("insufficient role",
				slog.String("user_id", userID),
				slog.String("role", role.String()),
				slog.String("required", required.String()))
			http.Error(w, forbiddenErrMessage, http.StatusForbidden)
			return
		}

		next(w, r)
	}
}

// CallerID returns the identity RequireRole already validated.
func CallerID(r *http.Request) domain.ID {
	return domain.ID(httpserver.GetUserID(r))
}
