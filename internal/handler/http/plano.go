package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmaraujo/gymkeeper/internal/logger"
	"github.com/dmaraujo/gymkeeper/internal/utils"
	"github.com/dmaraujo/gymkeeper/models"
)

func (h *Handler) listPlanos(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	planos, err := h.services.PlanoService.List(r.Context(), ident)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, planos, http.StatusOK)
}

func (h *Handler) getPlano(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	plano, err := h.services.PlanoService.GetByID(r.Context(), ident, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, plano, http.StatusOK)
}

func (h *Handler) createPlano(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var plano models.Plano
	if err := json.NewDecoder(r.Body).Decode(&plano); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.PlanoService.Create(r.Context(), ident, plano)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) updatePlano(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var plano models.Plano
	if err := json.NewDecoder(r.Body).Decode(&plano); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.PlanoService.Update(r.Context(), ident, chi.URLParam(r, "id"), plano)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) deletePlano(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.PlanoService.Delete(r.Context(), ident, chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Ack{Message: "plano deleted"}, http.StatusOK)
}
