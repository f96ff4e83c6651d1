// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniel M. Araujo

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmaraujo/gymkeeper/internal/logger"
	"github.com/dmaraujo/gymkeeper/internal/service"
	"github.com/dmaraujo/gymkeeper/internal/store"
	"github.com/dmaraujo/gymkeeper/models"
)

// mockAlunoService implements service.AlunoService for unit tests.
type mockAlunoService struct {
	listFn    func(ctx context.Context, ident models.Identity) ([]models.Aluno, error)
	getByIDFn func(ctx context.Context, ident models.Identity, id string) (models.Aluno, error)
	createFn  func(ctx context.Context, ident models.Identity, aluno models.Aluno) (models.Aluno, error)
	updateFn  func(ctx context.Context, ident models.Identity, id string, aluno models.Aluno) (models.Aluno, error)
	deleteFn  func(ctx context.Context, ident models.Identity, id string) error
	searchFn  func(ctx context.Context, ident models.Identity, search models.AlunoSearch) ([]models.Aluno, error)
}

func (m *mockAlunoService) List(ctx context.Context, ident models.Identity) ([]models.Aluno, error) {
	return m.listFn(ctx, ident)
}

func (m *mockAlunoService) GetByID(ctx context.Context, ident models.Identity, id string) (models.Aluno, error) {
	return m.getByIDFn(ctx, ident, id)
}

func (m *mockAlunoService) Create(ctx context.Context, ident models.Identity, aluno models.Aluno) (models.Aluno, error) {
	return m.createFn(ctx, ident, aluno)
}

func (m *mockAlunoService) Update(ctx context.Context, ident models.Identity, id string, aluno models.Aluno) (models.Aluno, error) {
	return m.updateFn(ctx, ident, id, aluno)
}

func (m *mockAlunoService) Delete(ctx context.Context, ident models.Identity, id string) error {
	return m.deleteFn(ctx, ident, id)
}

func (m *mockAlunoService) Search(ctx context.Context, ident models.Identity, search models.AlunoSearch) ([]models.Aluno, error) {
	return m.searchFn(ctx, ident, search)
}

var testIdentity = models.Identity{ID: "owner-1", Role: models.RoleUser}

// passthroughAuth is an AuthService mock whose ParseToken and
// ResolveIdentity always succeed with testIdentity, so requests carrying
// any bearer token pass the auth middleware.
func passthroughAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, signed string) (models.Token, error) {
			return models.Token{SignedString: signed}, nil
		},
		resolveIdentityFn: func(_ context.Context, _ models.Token) (models.Identity, error) {
			return testIdentity, nil
		},
	}
}

// doAuthed sends a request with a bearer token through the full router.
func doAuthed(t *testing.T, svcs *service.Services, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	router := NewHandler(svcs, logger.Nop()).Init()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer any.signed.token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetAluno_ScopedAndFound(t *testing.T) {
	aluno := models.Aluno{ID: "a-1", OwnerID: testIdentity.ID, Nome: "Carlos Souza"}

	var gotIdent models.Identity
	var gotID string
	svcs := &service.Services{
		AuthService: passthroughAuth(),
		AlunoService: &mockAlunoService{
			getByIDFn: func(_ context.Context, ident models.Identity, id string) (models.Aluno, error) {
				gotIdent, gotID = ident, id
				return aluno, nil
			},
		},
	}

	rec := doAuthed(t, svcs, http.MethodGet, "/api/alunos/a-1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testIdentity, gotIdent)
	assert.Equal(t, "a-1", gotID)

	var got models.Aluno
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, aluno.ID, got.ID)
}

func TestGetAluno_NotFoundMapsTo404(t *testing.T) {
	svcs := &service.Services{
		AuthService: passthroughAuth(),
		AlunoService: &mockAlunoService{
			getByIDFn: func(_ context.Context, _ models.Identity, _ string) (models.Aluno, error) {
				return models.Aluno{}, store.ErrNotFound
			},
		},
	}

	rec := doAuthed(t, svcs, http.MethodGet, "/api/alunos/someone-elses", "")

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "record not found", resp.Message)
}

func TestCreateAluno_Success(t *testing.T) {
	svcs := &service.Services{
		AuthService: passthroughAuth(),
		AlunoService: &mockAlunoService{
			createFn: func(_ context.Context, ident models.Identity, aluno models.Aluno) (models.Aluno, error) {
				aluno.ID = "a-new"
				aluno.OwnerID = ident.ID
				return aluno, nil
			},
		},
	}

	body := `{"nome":"Carlos Souza","email":"carlos@example.com","telefone":"11988887777","dataNascimento":"2000-05-10","idade":26,"peso":82.5}`
	rec := doAuthed(t, svcs, http.MethodPost, "/api/alunos", body)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Aluno
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "a-new", got.ID)
	assert.Equal(t, testIdentity.ID, got.OwnerID)
}

func TestCreateAluno_ValidationFailure(t *testing.T) {
	svcs := &service.Services{
		AuthService: passthroughAuth(),
		AlunoService: &mockAlunoService{
			createFn: func(_ context.Context, _ models.Identity, _ models.Aluno) (models.Aluno, error) {
				return models.Aluno{}, service.NewValidationError([]models.FieldError{
					{Field: "nome", Message: "is required"},
				})
			},
		},
	}

	rec := doAuthed(t, svcs, http.MethodPost, "/api/alunos", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, "nome", resp.Fields[0].Field)
}

func TestUpdateAluno_PathIDWins(t *testing.T) {
	var gotID string
	svcs := &service.Services{
		AuthService: passthroughAuth(),
		AlunoService: &mockAlunoService{
			updateFn: func(_ context.Context, _ models.Identity, id string, aluno models.Aluno) (models.Aluno, error) {
				gotID = id
				aluno.ID = id
				return aluno, nil
			},
		},
	}

	// The id in the body must be ignored in favour of the path.
	rec := doAuthed(t, svcs, http.MethodPut, "/api/alunos/a-1", `{"id":"a-other","nome":"Carlos Souza"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a-1", gotID)
}

func TestDeleteAluno(t *testing.T) {
	tests := []struct {
		name       string
		deleteErr  error
		wantStatus int
	}{
		{"deleted", nil, http.StatusOK},
		{"absent or foreign", store.ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := &service.Services{
				AuthService: passthroughAuth(),
				AlunoService: &mockAlunoService{
					deleteFn: func(_ context.Context, _ models.Identity, _ string) error {
						return tt.deleteErr
					},
				},
			}

			rec := doAuthed(t, svcs, http.MethodDelete, "/api/alunos/a-1", "")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestSearchAlunosAvancada_Params(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantIdade int
		wantPeso  float64
	}{
		{"defaults", "/api/alunos/consulta/avancada", 18, 70},
		{"explicit", "/api/alunos/consulta/avancada?idade=30&peso=90.5", 30, 90.5},
		{"garbage falls back", "/api/alunos/consulta/avancada?idade=abc&peso=-4", 18, 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotSearch models.AlunoSearch
			svcs := &service.Services{
				AuthService: passthroughAuth(),
				AlunoService: &mockAlunoService{
					searchFn: func(_ context.Context, _ models.Identity, search models.AlunoSearch) ([]models.Aluno, error) {
						gotSearch = search
						return []models.Aluno{}, nil
					},
				},
			}

			rec := doAuthed(t, svcs, http.MethodGet, tt.target, "")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantIdade, gotSearch.IdadeAcima)
			assert.Equal(t, tt.wantPeso, gotSearch.PesoAcima)
		})
	}
}

func TestSearchAlunosComplexa_Params(t *testing.T) {
	var gotSearch models.AlunoSearch
	svcs := &service.Services{
		AuthService: passthroughAuth(),
		AlunoService: &mockAlunoService{
			searchFn: func(_ context.Context, _ models.Identity, search models.AlunoSearch) ([]models.Aluno, error) {
				gotSearch = search
				return []models.Aluno{}, nil
			},
		},
	}

	target := "/api/alunos/consulta/complexa?pesoMin=60&pesoMax=90&idades=20,25&nomes=Ana,%20Bruno"
	rec := doAuthed(t, svcs, http.MethodGet, target, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(60), gotSearch.PesoMin)
	assert.Equal(t, float64(90), gotSearch.PesoMax)
	assert.Equal(t, []int{20, 25}, gotSearch.Idades)
	assert.Equal(t, []string{"Ana", "Bruno"}, gotSearch.Nomes)
}

func TestListAlunos_EmptyListIsJSONArray(t *testing.T) {
	svcs := &service.Services{
		AuthService: passthroughAuth(),
		AlunoService: &mockAlunoService{
			listFn: func(_ context.Context, _ models.Identity) ([]models.Aluno, error) {
				return []models.Aluno{}, nil
			},
		},
	}

	rec := doAuthed(t, svcs, http.MethodGet, "/api/alunos", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestListAlunos_StoreFailureIsOpaque(t *testing.T) {
	svcs := &service.Services{
		AuthService: passthroughAuth(),
		AlunoService: &mockAlunoService{
			listFn: func(_ context.Context, _ models.Identity) ([]models.Aluno, error) {
				return nil, fmt.Errorf("%w: connection refused", store.ErrExecutingQuery)
			},
		},
	}

	rec := doAuthed(t, svcs, http.MethodGet, "/api/alunos", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), resp.Message)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
