// Package response shapes every API reply: raw payloads for success,
// the uniform {error, message, statusCode} envelope for failures, and
// the fixed cross-origin header set on both.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/recollect/recollect/internal/apperr"
	"github.com/recollect/recollect/internal/models"
)

// The extension calls the API from an extension origin, so every
// response advertises the same permissive CORS policy.
const (
	AllowOrigin  = "*"
	AllowHeaders = "Content-Type,X-API-Key,Authorization"
	AllowMethods = "GET,POST,OPTIONS"
)

// SetCORS stamps the fixed cross-origin headers.
func SetCORS(h http.Header) {
	h.Set("Access-Control-Allow-Origin", AllowOrigin)
	h.Set("Access-Control-Allow-Headers", AllowHeaders)
	h.Set("Access-Control-Allow-Methods", AllowMethods)
}

// JSON writes a success body: the payload itself, no envelope.
func JSON(w http.ResponseWriter, statusCode int, payload any) {
	SetCORS(w.Header())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// Error writes the error envelope for the given status code.
func Error(w http.ResponseWriter, statusCode int, category, message string) {
	SetCORS(w.Header())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{
		Error:      category,
		Message:    message,
		StatusCode: statusCode,
	})
}

func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, "BadRequest", message)
}

func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, "Unauthorized", message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	Error(w, http.StatusInternalServerError, "InternalServerError", message)
}

// FromError maps an application error to its envelope. The kind is
// resolved here and nowhere else; internal detail collapses to the
// generic message.
func FromError(w http.ResponseWriter, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		BadRequest(w, apperr.ClientMessage(err))
	case apperr.KindAuthentication:
		Unauthorized(w, apperr.ClientMessage(err))
	default:
		InternalServerError(w, apperr.ClientMessage(err))
	}
}
