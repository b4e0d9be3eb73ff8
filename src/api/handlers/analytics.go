package handlers

import (
	"context"
	"net/http"
)

func (h *Handler) GetIdealAllocations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	ideals, err := h.Controller.GetIdealAllocations(ctx)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}
	h.respond(w, r, ideals, http.StatusOK)
}

func (h *Handler) RunSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	batch, err := h.Controller.RunSnapshot(ctx)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}
	h.respond(w, r, batch, http.StatusCreated)
}

func (h *Handler) GetSnapshots(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	snapshots, err := h.Controller.GetSnapshots(ctx)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}
	h.respond(w, r, snapshots, http.StatusOK)
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	summary, err := h.Controller.GetSummary(ctx)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}
	h.respond(w, r, summary, http.StatusOK)
}
