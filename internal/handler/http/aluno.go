// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniel M. Araujo

package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmaraujo/gymkeeper/internal/logger"
	"github.com/dmaraujo/gymkeeper/internal/utils"
	"github.com/dmaraujo/gymkeeper/models"
)

// Defaults of the consulta/avancada endpoint when the query parameters are
// absent or unparsable.
const (
	defaultIdadeAcima = 18
	defaultPesoAcima  = 70
)

// identityFromRequest fetches the principal the auth middleware attached to
// the context. On an authenticated route its absence means a wiring bug, so
// the request fails with 500 rather than 401.
func identityFromRequest(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	ident, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no identity in context on an authenticated route")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return models.Identity{}, false
	}

	return ident, true
}

func (h *Handler) listAlunos(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	alunos, err := h.services.AlunoService.List(r.Context(), ident)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, alunos, http.StatusOK)
}

func (h *Handler) getAluno(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	aluno, err := h.services.AlunoService.GetByID(r.Context(), ident, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, aluno, http.StatusOK)
}

func (h *Handler) createAluno(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var aluno models.Aluno
	if err := json.NewDecoder(r.Body).Decode(&aluno); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.AlunoService.Create(r.Context(), ident, aluno)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) updateAluno(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var aluno models.Aluno
	if err := json.NewDecoder(r.Body).Decode(&aluno); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.AlunoService.Update(r.Context(), ident, chi.URLParam(r, "id"), aluno)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) deleteAluno(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.AlunoService.Delete(r.Context(), ident, chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Ack{Message: "aluno deleted"}, http.StatusOK)
}

// searchAlunosAvancada handles GET /api/alunos/consulta/avancada: alunos
// with idade strictly above ?idade and peso strictly above ?peso, both
// falling back to their defaults when absent.
func (h *Handler) searchAlunosAvancada(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	search := models.AlunoSearch{
		IdadeAcima: defaultIdadeAcima,
		PesoAcima:  defaultPesoAcima,
	}
	if idade, err := strconv.Atoi(r.URL.Query().Get("idade")); err == nil && idade > 0 {
		search.IdadeAcima = idade
	}
	if peso, err := strconv.ParseFloat(r.URL.Query().Get("peso"), 64); err == nil && peso > 0 {
		search.PesoAcima = peso
	}

	alunos, err := h.services.AlunoService.Search(r.Context(), ident, search)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, alunos, http.StatusOK)
}

// searchAlunosComplexa handles GET /api/alunos/consulta/complexa: a peso
// range plus idade and nome set-membership filters, all optional, combined
// with AND. ?idades and ?nomes are comma-separated lists.
func (h *Handler) searchAlunosComplexa(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()

	var search models.AlunoSearch
	if pesoMin, err := strconv.ParseFloat(query.Get("pesoMin"), 64); err == nil && pesoMin > 0 {
		search.PesoMin = pesoMin
	}
	if pesoMax, err := strconv.ParseFloat(query.Get("pesoMax"), 64); err == nil && pesoMax > 0 {
		search.PesoMax = pesoMax
	}
	for _, raw := range strings.Split(query.Get("idades"), ",") {
		if idade, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			search.Idades = append(search.Idades, idade)
		}
	}
	for _, raw := range strings.Split(query.Get("nomes"), ",") {
		if nome := strings.TrimSpace(raw); nome != "" {
			search.Nomes = append(search.Nomes, nome)
		}
	}

	alunos, err := h.services.AlunoService.Search(r.Context(), ident, search)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, alunos, http.StatusOK)
}
