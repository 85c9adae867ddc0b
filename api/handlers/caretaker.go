package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/conectacare/conectacare-api/api"
	"github.com/conectacare/conectacare-api/models"
	"github.com/conectacare/conectacare-api/services"
)

// Caretaker exists for handlers on the caretaker collection
type Caretaker struct {
	Service      *services.CaretakerService
	QueryTimeout time.Duration
}

// CreateCaretakerHandler registers a caretaker, refusing an email already in use
func (c Caretaker) CreateCaretakerHandler(w http.ResponseWriter, r *http.Request) {
	var in models.CaretakerInput
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	ctx, cancel := api.WithQueryTimeout(r.Context(), c.QueryTimeout)
	defer cancel()

	view, err := c.Service.CreateCaretaker(ctx, in)
	if err != nil {
		writeError(w, err)
		return
	}
	zap.S().Infow("caretaker created", "caretakerId", view.ID, "requestId", api.RequestID(r.Context()))
	writeJSON(w, http.StatusCreated, view)
}

// CaretakerByIDHandler returns a caretaker by ID
func (c Caretaker) CaretakerByIDHandler(w http.ResponseWriter, r *http.Request) {
	caretakerID := mux.Vars(r)["caretaker_id"]

	zap.S().Debugf("caretaker_id: %v", caretakerID)

	ctx, cancel := api.WithQueryTimeout(r.Context(), c.QueryTimeout)
	defer cancel()

	view, err := c.Service.GetCaretaker(ctx, caretakerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// CaretakersHandler returns every caretaker
func (c Caretaker) CaretakersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context(), c.QueryTimeout)
	defer cancel()

	views, err := c.Service.ListCaretakers(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}
