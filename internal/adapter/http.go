// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniel M. Araujo

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dmaraujo/gymkeeper/internal/utils"
	"github.com/dmaraujo/gymkeeper/models"
)

// HTTPClientConfig configures the REST implementation of [ServerAdapter].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := utils.NewHTTPClient()
	cli.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	auth, err := doSend[models.AuthResponse](ctx, h, http.MethodPost, "/api/auth/register", req)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register: %w", err)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	auth, err := doSend[models.AuthResponse](ctx, h, http.MethodPost, "/api/auth/login", req)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login: %w", err)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	_, err := doSend[models.Ack](ctx, h, http.MethodPost, "/api/auth/logout", nil)

	// the local session ends either way
	h.SetToken("")

	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) Status(ctx context.Context) (models.Status, error) {
	return doGet[models.Status](ctx, h, "/api/status", nil)
}

func (h *httpServerAdapter) ListAlunos(ctx context.Context) ([]models.Aluno, error) {
	return doGet[[]models.Aluno](ctx, h, "/api/alunos", nil)
}

func (h *httpServerAdapter) GetAluno(ctx context.Context, id string) (models.Aluno, error) {
	return doGet[models.Aluno](ctx, h, "/api/alunos/"+id, nil)
}

func (h *httpServerAdapter) CreateAluno(ctx context.Context, aluno models.Aluno) (models.Aluno, error) {
	return doSend[models.Aluno](ctx, h, http.MethodPost, "/api/alunos", aluno)
}

func (h *httpServerAdapter) UpdateAluno(ctx context.Context, id string, aluno models.Aluno) (models.Aluno, error) {
	return doSend[models.Aluno](ctx, h, http.MethodPut, "/api/alunos/"+id, aluno)
}

func (h *httpServerAdapter) DeleteAluno(ctx context.Context, id string) error {
	return h.doDelete(ctx, "/api/alunos/"+id)
}

func (h *httpServerAdapter) SearchAlunosAvancada(ctx context.Context, idadeAcima int, pesoAcima float64) ([]models.Aluno, error) {
	query := map[string]string{}
	if idadeAcima > 0 {
		query["idade"] = strconv.Itoa(idadeAcima)
	}
	if pesoAcima > 0 {
		query["peso"] = strconv.FormatFloat(pesoAcima, 'f', -1, 64)
	}

	return doGet[[]models.Aluno](ctx, h, "/api/alunos/consulta/avancada", query)
}

func (h *httpServerAdapter) SearchAlunosComplexa(ctx context.Context, search models.AlunoSearch) ([]models.Aluno, error) {
	query := map[string]string{}
	if search.PesoMin > 0 {
		query["pesoMin"] = strconv.FormatFloat(search.PesoMin, 'f', -1, 64)
	}
	if search.PesoMax > 0 {
		query["pesoMax"] = strconv.FormatFloat(search.PesoMax, 'f', -1, 64)
	}
	if len(search.Idades) > 0 {
		idades := make([]string, len(search.Idades))
		for i, idade := range search.Idades {
			idades[i] = strconv.Itoa(idade)
		}
		query["idades"] = strings.Join(idades, ",")
	}
	if len(search.Nomes) > 0 {
		query["nomes"] = strings.Join(search.Nomes, ",")
	}

	return doGet[[]models.Aluno](ctx, h, "/api/alunos/consulta/complexa", query)
}

func (h *httpServerAdapter) ListProfessores(ctx context.Context) ([]models.Professor, error) {
	return doGet[[]models.Professor](ctx, h, "/api/professores", nil)
}

func (h *httpServerAdapter) GetProfessor(ctx context.Context, id string) (models.Professor, error) {
	return doGet[models.Professor](ctx, h, "/api/professores/"+id, nil)
}

func (h *httpServerAdapter) CreateProfessor(ctx context.Context, professor models.Professor) (models.Professor, error) {
	return doSend[models.Professor](ctx, h, http.MethodPost, "/api/professores", professor)
}

func (h *httpServerAdapter) UpdateProfessor(ctx context.Context, id string, professor models.Professor) (models.Professor, error) {
	return doSend[models.Professor](ctx, h, http.MethodPut, "/api/professores/"+id, professor)
}

func (h *httpServerAdapter) DeleteProfessor(ctx context.Context, id string) error {
	return h.doDelete(ctx, "/api/professores/"+id)
}

func (h *httpServerAdapter) ListTreinos(ctx context.Context) ([]models.Treino, error) {
	return doGet[[]models.Treino](ctx, h, "/api/treinos", nil)
}

func (h *httpServerAdapter) GetTreino(ctx context.Context, id string) (models.Treino, error) {
	return doGet[models.Treino](ctx, h, "/api/treinos/"+id, nil)
}

func (h *httpServerAdapter) CreateTreino(ctx context.Context, treino models.Treino) (models.Treino, error) {
	return doSend[models.Treino](ctx, h, http.MethodPost, "/api/treinos", treino)
}

func (h *httpServerAdapter) UpdateTreino(ctx context.Context, id string, treino models.Treino) (models.Treino, error) {
	return doSend[models.Treino](ctx, h, http.MethodPut, "/api/treinos/"+id, treino)
}

func (h *httpServerAdapter) DeleteTreino(ctx context.Context, id string) error {
	return h.doDelete(ctx, "/api/treinos/"+id)
}

func (h *httpServerAdapter) ListPlanos(ctx context.Context) ([]models.Plano, error) {
	return doGet[[]models.Plano](ctx, h, "/api/planos", nil)
}

func (h *httpServerAdapter) GetPlano(ctx context.Context, id string) (models.Plano, error) {
	return doGet[models.Plano](ctx, h, "/api/planos/"+id, nil)
}

func (h *httpServerAdapter) CreatePlano(ctx context.Context, plano models.Plano) (models.Plano, error) {
	return doSend[models.Plano](ctx, h, http.MethodPost, "/api/planos", plano)
}

func (h *httpServerAdapter) UpdatePlano(ctx context.Context, id string, plano models.Plano) (models.Plano, error) {
	return doSend[models.Plano](ctx, h, http.MethodPut, "/api/planos/"+id, plano)
}

func (h *httpServerAdapter) DeletePlano(ctx context.Context, id string) error {
	return h.doDelete(ctx, "/api/planos/"+id)
}

func (h *httpServerAdapter) ListPlanosAlunos(ctx context.Context) ([]models.PlanoAluno, error) {
	return doGet[[]models.PlanoAluno](ctx, h, "/api/planos-alunos", nil)
}

func (h *httpServerAdapter) GetPlanoAluno(ctx context.Context, id string) (models.PlanoAluno, error) {
	return doGet[models.PlanoAluno](ctx, h, "/api/planos-alunos/"+id, nil)
}

func (h *httpServerAdapter) CreatePlanoAluno(ctx context.Context, planoAluno models.PlanoAluno) (models.PlanoAluno, error) {
	return doSend[models.PlanoAluno](ctx, h, http.MethodPost, "/api/planos-alunos", planoAluno)
}

func (h *httpServerAdapter) UpdatePlanoAluno(ctx context.Context, id string, planoAluno models.PlanoAluno) (models.PlanoAluno, error) {
	return doSend[models.PlanoAluno](ctx, h, http.MethodPut, "/api/planos-alunos/"+id, planoAluno)
}

func (h *httpServerAdapter) DeletePlanoAluno(ctx context.Context, id string) error {
	return h.doDelete(ctx, "/api/planos-alunos/"+id)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// doGet executes a GET request and decodes the 2xx body into T.
func doGet[T any](ctx context.Context, h *httpServerAdapter, path string, query map[string]string) (T, error) {
	var out T

	req := h.authedRequest(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return out, fmt.Errorf("get %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return out, err
	}

	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return out, fmt.Errorf("decode %s response: %w", path, err)
	}
	return out, nil
}

// doSend executes a POST or PUT request with a JSON body and decodes the
// 2xx response into T.
func doSend[T any](ctx context.Context, h *httpServerAdapter, method, path string, body any) (T, error) {
	var out T

	req := h.authedRequest(ctx).SetHeader("Content-Type", "application/json")
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return out, fmt.Errorf("%s %s: %w", strings.ToLower(method), path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return out, err
	}

	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return out, fmt.Errorf("decode %s response: %w", path, err)
	}
	return out, nil
}

func (h *httpServerAdapter) doDelete(ctx context.Context, path string) error {
	resp, err := h.authedRequest(ctx).Delete(path)
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return mapHTTPError(resp)
}
