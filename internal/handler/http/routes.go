package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/status", h.status)
	})

	// routes behind the token gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)

		r.Route("/api/alunos", func(r chi.Router) {
			r.Get("/", h.listAlunos)
			r.Post("/", h.createAluno)
			r.Get("/consulta/avancada", h.searchAlunosAvancada)
			r.Get("/consulta/complexa", h.searchAlunosComplexa)
			r.Get("/{id}", h.getAluno)
			r.Put("/{id}", h.updateAluno)
			r.Delete("/{id}", h.deleteAluno)
		})

		r.Route("/api/professores", func(r chi.Router) {
			r.Get("/", h.listProfessores)
			r.Post("/", h.createProfessor)
			r.Get("/{id}", h.getProfessor)
			r.Put("/{id}", h.updateProfessor)
			r.Delete("/{id}", h.deleteProfessor)
		})

		r.Route("/api/treinos", func(r chi.Router) {
			r.Get("/", h.listTreinos)
			r.Post("/", h.createTreino)
			r.Get("/{id}", h.getTreino)
			r.Put("/{id}", h.updateTreino)
			r.Delete("/{id}", h.deleteTreino)
		})

		r.Route("/api/planos", func(r chi.Router) {
			r.Get("/", h.listPlanos)
			r.Post("/", h.createPlano)
			r.Get("/{id}", h.getPlano)
			r.Put("/{id}", h.updatePlano)
			r.Delete("/{id}", h.deletePlano)
		})

		r.Route("/api/planos-alunos", func(r chi.Router) {
			r.Get("/", h.listPlanosAlunos)
			r.Post("/", h.createPlanoAluno)
			r.Get("/{id}", h.getPlanoAluno)
			r.Put("/{id}", h.updatePlanoAluno)
			r.Delete("/{id}", h.deletePlanoAluno)
		})
	})

	return router
}
