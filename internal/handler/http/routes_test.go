package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmaraujo/gymkeeper/internal/logger"
	"github.com/dmaraujo/gymkeeper/internal/service"
	"github.com/dmaraujo/gymkeeper/models"
)

type mockStatusService struct {
	statusFn func(ctx context.Context) models.Status
}

func (m *mockStatusService) Status(ctx context.Context) models.Status {
	return m.statusFn(ctx)
}

func TestStatusEndpoint_IsPublic(t *testing.T) {
	svcs := &service.Services{
		StatusService: &mockStatusService{
			statusFn: func(_ context.Context) models.Status {
				return models.Status{Status: "ok", Version: "dev", Uptime: "5s", Database: "up"}
			},
		},
	}

	router := NewHandler(svcs, logger.Nop()).Init()
	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "ok", got.Status)
	assert.Equal(t, "up", got.Database)
}

func TestResourceRoutes_RequireAuth(t *testing.T) {
	router := NewHandler(&service.Services{}, logger.Nop()).Init()

	targets := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/alunos"},
		{http.MethodPost, "/api/alunos"},
		{http.MethodGet, "/api/alunos/consulta/avancada"},
		{http.MethodGet, "/api/professores/p-1"},
		{http.MethodPut, "/api/treinos/t-1"},
		{http.MethodDelete, "/api/planos/pl-1"},
		{http.MethodGet, "/api/planos-alunos"},
		{http.MethodPost, "/api/auth/logout"},
	}

	for _, target := range targets {
		t.Run(target.method+" "+target.path, func(t *testing.T) {
			req := httptest.NewRequest(target.method, target.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestUnknownRoute_Is404(t *testing.T) {
	router := NewHandler(&service.Services{}, logger.Nop()).Init()
	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTraceID_EchoedAndGenerated(t *testing.T) {
	svcs := &service.Services{
		StatusService: &mockStatusService{
			statusFn: func(_ context.Context) models.Status { return models.Status{Status: "ok"} },
		},
	}
	router := NewHandler(svcs, logger.Nop()).Init()

	t.Run("provided id is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
		req.Header.Set("X-Trace-ID", "trace-123")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "trace-123", rec.Header().Get("X-Trace-ID"))
	})

	t.Run("missing id is generated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
	})
}
