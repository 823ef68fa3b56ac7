package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/biswa069/backend-intern-task/internal/api/shared"
	"github.com/biswa069/backend-intern-task/internal/domain"
	"github.com/biswa069/backend-intern-task/internal/service/auth"
)

// getIdentity extracts the authenticated caller's identity from the
// request context. The identity is placed there by the auth middleware;
// its absence on a protected route means the middleware did not run.
func getIdentity(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	identity, ok := shared.GetIdentity(r.Context())
	if !ok || identity.UserID == uuid.Nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
		return auth.Identity{}, false
	}
	return identity, true
}

// getPathUUID extracts a UUID from the URL path parameters.
// Malformed ids are reported as invalid, not parsed leniently.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, fmt.Errorf("%w: missing %s", domain.ErrInvalidID, paramName)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", domain.ErrInvalidID, paramName)
	}
	return id, nil
}

// sanitizeValidationError converts a validator error into a short
// user-facing message that names the offending field but none of the
// submitted values.
func sanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fieldErr := validationErrs[0]
		return fmt.Sprintf("Invalid %s: %s",
			strings.ToLower(fieldErr.Field()),
			validationTagMessage(fieldErr.Tag()))
	}
	return "Validation error"
}

func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
