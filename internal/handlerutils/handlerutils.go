package handlerutils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/nature-connect/market-backend/internal/servererrors"
)

// APIHandler is an http handler that reports failures as errors instead of
// writing them directly, so error encoding stays in one place.
type APIHandler func(w http.ResponseWriter, r *http.Request) error

// MakeHandler adapts an APIHandler into a http.HandlerFunc and centralizes
// error logging and the error-to-response mapping.
func MakeHandler(h APIHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)

		// unexpected failures become an opaque internal error, so no cause
		// ever leaks to clients
		var serverError *servererrors.ServerError
		if !errors.As(err, &serverError) {
			serverError = servererrors.Wrap(
				http.StatusInternalServerError,
				servererrors.CodeInternal,
				"something went wrong",
				err,
			)
		}

		WriteErrorJSON(
			w,
			serverError.StatusCode,
			serverError.Message,
		)
	}
}

// ParseJSON decodes a request body into v.
func ParseJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New("missing request body")
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode request body: %w", err)
	}

	return nil
}

// WriteJSON writes v as the whole response body. Handlers use it directly
// because the API's wire format is bare payloads, not an envelope.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return json.NewEncoder(w).Encode(v)
}

// WriteErrorJSON writes the {"error": message} shape every failing endpoint
// responds with.
func WriteErrorJSON(w http.ResponseWriter, statusCode int, message string) error {
	return WriteJSON(
		w,
		statusCode,
		map[string]string{"error": message},
	)
}
