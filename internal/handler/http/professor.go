package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmaraujo/gymkeeper/internal/logger"
	"github.com/dmaraujo/gymkeeper/internal/utils"
	"github.com/dmaraujo/gymkeeper/models"
)

func (h *Handler) listProfessores(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	professores, err := h.services.ProfessorService.List(r.Context(), ident)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, professores, http.StatusOK)
}

func (h *Handler) getProfessor(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	professor, err := h.services.ProfessorService.GetByID(r.Context(), ident, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, professor, http.StatusOK)
}

func (h *Handler) createProfessor(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var professor models.Professor
	if err := json.NewDecoder(r.Body).Decode(&professor); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.ProfessorService.Create(r.Context(), ident, professor)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) updateProfessor(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var professor models.Professor
	if err := json.NewDecoder(r.Body).Decode(&professor); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.ProfessorService.Update(r.Context(), ident, chi.URLParam(r, "id"), professor)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) deleteProfessor(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.ProfessorService.Delete(r.Context(), ident, chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Ack{Message: "professor deleted"}, http.StatusOK)
}
