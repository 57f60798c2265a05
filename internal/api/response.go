// Rolodex - Contacts Management REST Backend
// Copyright 2026 Rolodex Contributors
// SPDX-License-Identifier: MIT
// https://github.com/rolodex-api/rolodex

// Package api provides the HTTP handlers and routing for the Rolodex API.
// Every response body is one of three envelopes: {"data": ...} on success,
// {"data": ..., "paging": ...} for search results, and {"errors": message}
// on failure.
package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/rolodex-api/rolodex/internal/logging"
	"github.com/rolodex-api/rolodex/internal/models"
	"github.com/rolodex-api/rolodex/internal/service"
	"github.com/rolodex-api/rolodex/internal/validation"
)

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers are already written; log and move on
		logging.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// respondData writes a 200 success envelope.
func respondData(w http.ResponseWriter, data interface{}) {
	respondJSON(w, http.StatusOK, models.DataResponse{Data: data})
}

// respondPaged writes a 200 success envelope with paging metadata.
func respondPaged(w http.ResponseWriter, data interface{}, paging models.Paging) {
	respondJSON(w, http.StatusOK, models.PagedResponse{Data: data, Paging: paging})
}

// respondError writes an error envelope with the given status code.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, models.ErrorResponse{Errors: message})
}

// respondFailure translates a failure from the service layer into a status
// code and error envelope. Validation failures map to 400, typed service
// errors carry their own status, and anything else is an internal error
// surfaced with its message.
func respondFailure(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.RequestValidationError
	if errors.As(err, &verr) {
		respondError(w, http.StatusBadRequest, verr.Error())
		return
	}

	if serr := service.AsError(err); serr != nil {
		respondError(w, serr.Status, serr.Message)
		return
	}

	logging.Ctx(r.Context()).Error().Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("Unhandled error in request handler")
	respondError(w, http.StatusInternalServerError, err.Error())
}
