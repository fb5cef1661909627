// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/netwatch-dev/netwatch/internal/logging"
	"github.com/netwatch-dev/netwatch/internal/models"
	"github.com/netwatch-dev/netwatch/internal/store"
	"github.com/netwatch-dev/netwatch/internal/validation"
)

// maxBodyBytes caps request body size for all JSON endpoints.
const maxBodyBytes = 1 << 20

// sanitizeLogValue removes control characters from strings to prevent
// log injection through ids and error text echoed from requests.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends v as a JSON response with proper headers.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError sends an error response. Internal detail from err is
// logged, never exposed in the body.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().Str("code", sanitizeLogValue(code)).Str("error", sanitizeLogValue(err.Error())).Msg("API error")
	}

	respondJSON(w, status, &models.APIError{
		Code:    code,
		Message: message,
	})
}

// respondStoreError maps store errors to API responses: ErrNotFound
// becomes 404, everything else a generic 500.
func respondStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, models.ErrCodeNotFound, "Resource not found", nil)
		return
	}
	respondError(w, http.StatusInternalServerError, models.ErrCodeDatabase, "Database operation failed", err)
}

// decodeJSON decodes the request body into dst and validates it.
// On failure it writes the error response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeBadRequest, "Invalid JSON body", err)
		return false
	}

	if validationErr := validation.ValidateStruct(dst); validationErr != nil {
		apiErr := validationErr.ToAPIError()
		respondJSON(w, http.StatusBadRequest, &models.APIError{
			Code:    models.ErrCodeValidation,
			Message: apiErr.Message,
			Details: apiErr.Details,
		})
		return false
	}

	return true
}

// pathID extracts an integer URL parameter. On a malformed value it
// writes a 400 response and returns false.
func pathID(w http.ResponseWriter, r *http.Request, param string) (int, bool) {
	raw := chi.URLParam(r, param)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		respondError(w, http.StatusBadRequest, models.ErrCodeBadRequest,
			fmt.Sprintf("Invalid %s: must be a positive integer", param), nil)
		return 0, false
	}
	return id, true
}

// queryInt extracts an optional integer query parameter. A missing or
// unparseable value yields the default.
func queryInt(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	return defaultValue
}
