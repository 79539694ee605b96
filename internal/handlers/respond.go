package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"quiz-backend/internal/apperror"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var errInvalidBody = apperror.NewValidationError("invalid request body")

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Error encoding response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// readJSONBody returns the request body as a single JSON object or array.
// An empty body reads as {}. Trailing data, scalars and null are rejected.
func readJSONBody(r *http.Request) (json.RawMessage, error) {
	dec := json.NewDecoder(r.Body)

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return json.RawMessage("{}"), nil
		}
		return nil, errInvalidBody
	}
	if dec.More() {
		return nil, errInvalidBody
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errInvalidBody
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[') {
		return nil, errInvalidBody
	}
	return raw, nil
}

// decodeJSON reads the request body into v under the rules of readJSONBody.
func decodeJSON(r *http.Request, v interface{}) error {
	raw, err := readJSONBody(r)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errInvalidBody
	}
	return nil
}

// writeDecodeError answers a body that could not be decoded.
func writeDecodeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if apperror.Is(err, apperror.TypeValidation) && errors.As(err, &appErr) {
		writeError(w, http.StatusBadRequest, appErr.Message)
		return
	}
	writeError(w, http.StatusBadRequest, errInvalidBody.Message)
}

// logger returns the request-scoped logger set up by the request logging
// middleware.
func logger(r *http.Request) *zerolog.Logger {
	return zerolog.Ctx(r.Context())
}

// logFailure logs err at error level with its classification.
func logFailure(r *http.Request, err error, msg string) {
	logger(r).Error().
		Err(err).
		Str("error_type", string(apperror.TypeOf(err))).
		Msg(msg)
}
