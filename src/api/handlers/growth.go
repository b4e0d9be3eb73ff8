package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"portfolio-api/src/schemas"
	"portfolio-api/src/utils"
)

func (h *Handler) GetMonthlyGrowth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	entries, err := h.Controller.GetMonthlyGrowth(ctx)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}
	h.respond(w, r, entries, http.StatusOK)
}

func (h *Handler) CreateMonthlyGrowth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	req := new(schemas.CreateGrowthRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		h.HandleErrors(w, r, utils.BadRequest("invalid request body: "+err.Error()))
		return
	}
	if err := req.Validate(); err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	entry, err := h.Controller.CreateMonthlyGrowth(ctx, req)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}
	h.respond(w, r, entry, http.StatusCreated)
}
