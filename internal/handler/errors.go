package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/leska/people-api/internal/handler/gen"
)

// personNotFoundMessage is the fixed body message for a lookup miss.
const personNotFoundMessage = "Person with this id wasn't found!"

// errorBody builds the {message, timestamp} body shared by every error
// response. Timestamp is the current time in Unix milliseconds.
func errorBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Message: message, Timestamp: time.Now().UnixMilli()}
}

// writeError writes an ErrorResponse outside the strict handler's typed
// responses, e.g. for undecodable bodies or unexpected service failures.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // the status line is already sent; nothing useful to do on failure.
	json.NewEncoder(w).Encode(errorBody(message))
}

// requestError answers requests the generated layer rejected before they
// reached a handler: malformed JSON bodies and unparseable path parameters.
// A body cut off by middleware.NewMaxBodySizeHandler is reported as 413.
// The decoder's error text stays in the debug log.
func (s *Server) requestError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.DebugContext(r.Context(), "rejected request", "path", r.URL.Path, "error", err)

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	var badParam *gen.InvalidParamFormatError
	if errors.As(err, &badParam) {
		writeError(w, http.StatusBadRequest, "invalid "+badParam.ParamName)
		return
	}
	writeError(w, http.StatusBadRequest, "invalid request body")
}

// responseError answers any error a handler returned instead of a typed
// response. These are faults (e.g. the store is down); details are logged,
// not sent to the client.
func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}
