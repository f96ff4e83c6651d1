// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniel M. Araujo

// Package adapter provides the transport layer the terminal client uses to
// talk to the gym management server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// from the wire protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/dmaraujo/gymkeeper/models"
)

// ServerAdapter defines transport-agnostic communication with the gym
// management server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account and stores the returned bearer token
	// via SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates an existing account and stores the returned
	// bearer token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Logout revokes the token currently stored in the adapter and clears
	// it locally regardless of the server outcome.
	Logout(ctx context.Context) error

	// Status fetches the health descriptor of the server. It requires no
	// authentication.
	Status(ctx context.Context) (models.Status, error)

	ListAlunos(ctx context.Context) ([]models.Aluno, error)
	GetAluno(ctx context.Context, id string) (models.Aluno, error)
	CreateAluno(ctx context.Context, aluno models.Aluno) (models.Aluno, error)
	UpdateAluno(ctx context.Context, id string, aluno models.Aluno) (models.Aluno, error)
	DeleteAluno(ctx context.Context, id string) error

	// SearchAlunosAvancada filters alunos with idade and peso strictly
	// above the given thresholds. Zero values fall back to the server-side
	// defaults.
	SearchAlunosAvancada(ctx context.Context, idadeAcima int, pesoAcima float64) ([]models.Aluno, error)

	// SearchAlunosComplexa filters alunos by an inclusive-exclusive peso
	// range plus idade and nome set-membership predicates. Zero values and
	// empty slices mean "not filtered".
	SearchAlunosComplexa(ctx context.Context, search models.AlunoSearch) ([]models.Aluno, error)

	ListProfessores(ctx context.Context) ([]models.Professor, error)
	GetProfessor(ctx context.Context, id string) (models.Professor, error)
	CreateProfessor(ctx context.Context, professor models.Professor) (models.Professor, error)
	UpdateProfessor(ctx context.Context, id string, professor models.Professor) (models.Professor, error)
	DeleteProfessor(ctx context.Context, id string) error

	ListTreinos(ctx context.Context) ([]models.Treino, error)
	GetTreino(ctx context.Context, id string) (models.Treino, error)
	CreateTreino(ctx context.Context, treino models.Treino) (models.Treino, error)
	UpdateTreino(ctx context.Context, id string, treino models.Treino) (models.Treino, error)
	DeleteTreino(ctx context.Context, id string) error

	ListPlanos(ctx context.Context) ([]models.Plano, error)
	GetPlano(ctx context.Context, id string) (models.Plano, error)
	CreatePlano(ctx context.Context, plano models.Plano) (models.Plano, error)
	UpdatePlano(ctx context.Context, id string, plano models.Plano) (models.Plano, error)
	DeletePlano(ctx context.Context, id string) error

	ListPlanosAlunos(ctx context.Context) ([]models.PlanoAluno, error)
	GetPlanoAluno(ctx context.Context, id string) (models.PlanoAluno, error)
	CreatePlanoAluno(ctx context.Context, planoAluno models.PlanoAluno) (models.PlanoAluno, error)
	UpdatePlanoAluno(ctx context.Context, id string, planoAluno models.PlanoAluno) (models.PlanoAluno, error)
	DeletePlanoAluno(ctx context.Context, id string) error
}
