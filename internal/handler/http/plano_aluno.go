package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmaraujo/gymkeeper/internal/logger"
	"github.com/dmaraujo/gymkeeper/internal/utils"
	"github.com/dmaraujo/gymkeeper/models"
)

func (h *Handler) listPlanosAlunos(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	assignments, err := h.services.PlanoAlunoService.List(r.Context(), ident)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, assignments, http.StatusOK)
}

func (h *Handler) getPlanoAluno(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	assignment, err := h.services.PlanoAlunoService.GetByID(r.Context(), ident, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, assignment, http.StatusOK)
}

func (h *Handler) createPlanoAluno(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var assignment models.PlanoAluno
	if err := json.NewDecoder(r.Body).Decode(&assignment); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.PlanoAlunoService.Create(r.Context(), ident, assignment)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) updatePlanoAluno(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var assignment models.PlanoAluno
	if err := json.NewDecoder(r.Body).Decode(&assignment); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.PlanoAlunoService.Update(r.Context(), ident, chi.URLParam(r, "id"), assignment)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) deletePlanoAluno(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.PlanoAlunoService.Delete(r.Context(), ident, chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Ack{Message: "plano-aluno deleted"}, http.StatusOK)
}
