package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/basratech/hr-suite-go/internal/pkg/apperror"
	"github.com/basratech/hr-suite-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	message := apperror.MessageOf(err)
	switch apperror.KindOf(err) {
	case apperror.KindNotFound:
		NotFound(w, message)
	case apperror.KindInvalidState:
		InvalidState(w, message)
	case apperror.KindConflict:
		Conflict(w, message)
	case apperror.KindInvalidArgument:
		BadRequest(w, message, nil)
	case apperror.KindUnauthorized:
		Unauthorized(w, message)
	case apperror.KindForbidden:
		Forbidden(w, message)
	case apperror.KindDependencyUnavailable:
		slog.Error("Dependency unavailable", "error", err)
		ServiceUnavailable(w, "Service temporarily unavailable")
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
