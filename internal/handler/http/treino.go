package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmaraujo/gymkeeper/internal/logger"
	"github.com/dmaraujo/gymkeeper/internal/utils"
	"github.com/dmaraujo/gymkeeper/models"
)

func (h *Handler) listTreinos(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	treinos, err := h.services.TreinoService.List(r.Context(), ident)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, treinos, http.StatusOK)
}

func (h *Handler) getTreino(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	treino, err := h.services.TreinoService.GetByID(r.Context(), ident, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, treino, http.StatusOK)
}

func (h *Handler) createTreino(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var treino models.Treino
	if err := json.NewDecoder(r.Body).Decode(&treino); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.TreinoService.Create(r.Context(), ident, treino)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) updateTreino(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var treino models.Treino
	if err := json.NewDecoder(r.Body).Decode(&treino); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.TreinoService.Update(r.Context(), ident, chi.URLParam(r, "id"), treino)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) deleteTreino(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.TreinoService.Delete(r.Context(), ident, chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Ack{Message: "treino deleted"}, http.StatusOK)
}
