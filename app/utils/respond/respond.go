// Package respond renders JSON responses and maps service errors to HTTP statuses.
package respond

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"

	"github.com/grabpoint/api/app/utils/apperrors"
)

func New() *render.Render {
	return render.New(render.Options{
		IndentJSON: false,
	})
}

func JSON(r *render.Render, w http.ResponseWriter, status int, v interface{}) {
	if err := r.JSON(w, status, v); err != nil {
		log.Error().Err(err).Msg("respond: failed to write JSON response")
	}
}

// Err maps the apperrors taxonomy to a 4xx response; anything without a kind
// is treated as an internal failure and hidden behind a generic message.
func Err(r *render.Render, w http.ResponseWriter, err error) {
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		JSON(r, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case apperrors.KindNotFound:
		JSON(r, w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case apperrors.KindAuthentication:
		JSON(r, w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
	case apperrors.KindAuthorization:
		JSON(r, w, http.StatusForbidden, map[string]string{"error": err.Error()})
	default:
		log.Error().Err(err).Msg("unhandled internal error")
		JSON(r, w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

// ValidationErrs flattens validator errors into a field -> message map.
func ValidationErrs(r *render.Render, w http.ResponseWriter, errs validator.ValidationErrors) {
	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		switch fe.Tag() {
		case "required":
			fields[fe.Field()] = "this field is required"
		case "min":
			fields[fe.Field()] = "value is below the allowed minimum"
		case "max":
			fields[fe.Field()] = "value is above the allowed maximum"
		case "email":
			fields[fe.Field()] = "must be a valid email address"
		case "oneof":
			fields[fe.Field()] = "must be one of: " + fe.Param()
		default:
			fields[fe.Field()] = "invalid value"
		}
	}
	JSON(r, w, http.StatusBadRequest, map[string]interface{}{
		"error":  "validation failed",
		"fields": fields,
	})
}
