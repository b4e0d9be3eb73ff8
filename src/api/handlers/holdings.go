package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"portfolio-api/src/schemas"
	"portfolio-api/src/utils"

	"github.com/go-chi/chi/v5"
)

const requestTimeout = 10 * time.Second

func (h *Handler) GetAllHoldings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	holdings, err := h.Controller.GetAllHoldings(ctx)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}
	h.respond(w, r, holdings, http.StatusOK)
}

func (h *Handler) CreateHolding(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	req := new(schemas.CreateHoldingRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		h.HandleErrors(w, r, utils.BadRequest("invalid request body: "+err.Error()))
		return
	}
	if err := req.Validate(); err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	holding, err := h.Controller.CreateHolding(ctx, req)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}
	h.respond(w, r, holding, http.StatusCreated)
}

func (h *Handler) UpdateHolding(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id := chi.URLParam(r, "id")

	req := new(schemas.UpdateHoldingRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		h.HandleErrors(w, r, utils.BadRequest("invalid request body: "+err.Error()))
		return
	}
	if err := req.Validate(); err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	holding, err := h.Controller.UpdateHolding(ctx, id, req)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}
	h.respond(w, r, holding, http.StatusOK)
}

func (h *Handler) DeleteHolding(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id := chi.URLParam(r, "id")
	if err := h.Controller.DeleteHolding(ctx, id); err != nil {
		h.HandleErrors(w, r, err)
		return
	}
	h.respond(w, r, nil, http.StatusNoContent)
}
