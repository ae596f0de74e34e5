// Package handler contains the HTTP handlers for the bookmark API:
// saving the active tab (POST), listing saved bookmarks with opaque
// token pagination (GET) and the storage health check.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// malformedRequest represents an error with a malformed HTTP request
// body. All of them surface to the client as BadRequest envelopes.
type malformedRequest struct {
	msg string
}

func (mr *malformedRequest) Error() string {
	return mr.msg
}

// decodeJSONBody decodes a JSON request body into dst. It checks the
// content type, caps the body at 1MB and requires exactly one JSON
// object. Unknown fields are ignored so that clients sending id or
// savedAt get server-assigned values instead of an error.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	ct := r.Header.Get("Content-Type")
	if ct != "" {
		mediaType := strings.ToLower(strings.TrimSpace(strings.Split(ct, ";")[0]))
		if mediaType != "application/json" {
			return &malformedRequest{msg: "Content-Type header is not application/json"}
		}
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1048576)

	dec := json.NewDecoder(r.Body)

	err := dec.Decode(&dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError

		switch {
		case errors.As(err, &syntaxError):
			return &malformedRequest{msg: fmt.Sprintf("Request body contains badly-formed JSON (at position %d)", syntaxError.Offset)}

		case errors.Is(err, io.ErrUnexpectedEOF):
			return &malformedRequest{msg: "Request body contains badly-formed JSON"}

		case errors.As(err, &unmarshalTypeError):
			return &malformedRequest{msg: fmt.Sprintf("Request body contains an invalid value for the %q field (at position %d)", unmarshalTypeError.Field, unmarshalTypeError.Offset)}

		case errors.Is(err, io.EOF):
			return &malformedRequest{msg: "Request body must not be empty"}

		case err.Error() == "http: request body too large":
			return &malformedRequest{msg: "Request body must not be larger than 1MB"}

		default:
			return err
		}
	}

	// Ensure the body only contains a single JSON object.
	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return &malformedRequest{msg: "Request body must only contain a single JSON object"}
	}

	return nil
}
