package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/ponyexpress/backend/internal/auth"
	"github.com/ponyexpress/backend/internal/storage"
)

// fieldError reports invalid request field
type fieldError struct {
	Field   string
	Message string
}

func (e *fieldError) Error() string {
	return fmt.Sprintf("field %q %s", e.Field, e.Message)
}

type errorDetail struct {
	Type             string `json:"type,omitempty"`
	EntityName       string `json:"entity_name,omitempty"`
	EntityID         string `json:"entity_id,omitempty"`
	EntityField      string `json:"entity_field,omitempty"`
	EntityValue      string `json:"entity_value,omitempty"`
	Message          string `json:"message,omitempty"`
	Error            string `json:"error,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
}

type errorResponse struct {
	Detail errorDetail `json:"detail"`
}

// writeError translates domain errors into JSON envelope, unknown errors are logged and hidden
func (h *handler) writeError(w http.ResponseWriter, err error) {
	var (
		nf  *storage.NotFoundError
		dup *storage.DuplicateError
		fe  *fieldError
		ve  validator.ValidationErrors
	)

	switch {
	case errors.As(err, &nf):
		h.writeJSON(w, http.StatusNotFound, errorResponse{errorDetail{
			Type:       "entity_not_found",
			EntityName: nf.Entity,
			EntityID:   nf.ID,
		}})
	case errors.As(err, &dup):
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{errorDetail{
			Type:        "duplicate_value",
			EntityName:  dup.Entity,
			EntityField: dup.Field,
			EntityValue: dup.Value,
		}})
	case errors.As(err, &fe):
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{errorDetail{
			Type:        "invalid_field",
			EntityField: fe.Field,
			Message:     fe.Message,
		}})
	case errors.As(err, &ve) && len(ve) > 0:
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{errorDetail{
			Type:        "invalid_field",
			EntityField: ve[0].Field(),
			Message:     fmt.Sprintf("failed on the %q rule", ve[0].Tag()),
		}})
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		w.Header().Set("WWW-Authenticate", auth.TokenType)
		h.writeJSON(w, http.StatusUnauthorized, errorResponse{errorDetail{
			Error:            "invalid_client",
			ErrorDescription: err.Error(),
		}})
	default:
		h.logger.Error(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
