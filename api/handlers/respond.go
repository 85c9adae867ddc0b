package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/conectacare/conectacare-api/api"
	"github.com/conectacare/conectacare-api/apperrors"
	"github.com/conectacare/conectacare-api/config"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

// writeError maps err to its status code and the standard error body
func writeError(w http.ResponseWriter, err error) {
	config.ErrorStatus(apperrors.Message(err), apperrors.KindOf(err).HTTPStatus(), w, errors.New(apperrors.Cause(err)))
}

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.Wrap(apperrors.BadRequest, "failed to decode request body", err)
	}
	return nil
}

// createRecord serves the POST of a record collection
func createRecord[In, V any](w http.ResponseWriter, r *http.Request, timeout time.Duration, add func(context.Context, string, In) (V, error)) {
	var in In
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	ctx, cancel := api.WithQueryTimeout(r.Context(), timeout)
	defer cancel()

	view, err := add(ctx, mux.Vars(r)["patient_id"], in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// listRecords serves the GET of a record collection
func listRecords[V any](w http.ResponseWriter, r *http.Request, timeout time.Duration, list func(context.Context, string) ([]V, error)) {
	ctx, cancel := api.WithQueryTimeout(r.Context(), timeout)
	defer cancel()

	views, err := list(ctx, mux.Vars(r)["patient_id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// replaceRecord serves the PUT of one record, addressed by the idVar path variable
func replaceRecord[In, V any](w http.ResponseWriter, r *http.Request, timeout time.Duration, idVar string, replace func(context.Context, string, string, In) (V, error)) {
	var in In
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	ctx, cancel := api.WithQueryTimeout(r.Context(), timeout)
	defer cancel()

	vars := mux.Vars(r)
	view, err := replace(ctx, vars["patient_id"], vars[idVar], in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
