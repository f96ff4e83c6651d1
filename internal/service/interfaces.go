package service

import (
	"context"

	"github.com/dmaraujo/gymkeeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	RevokeToken(ctx context.Context, token models.Token) error
	ResolveIdentity(ctx context.Context, token models.Token) (models.Identity, error)
}

type AlunoService interface {
	List(ctx context.Context, ident models.Identity) ([]models.Aluno, error)
	GetByID(ctx context.Context, ident models.Identity, id string) (models.Aluno, error)
	Create(ctx context.Context, ident models.Identity, aluno models.Aluno) (models.Aluno, error)
	Update(ctx context.Context, ident models.Identity, id string, aluno models.Aluno) (models.Aluno, error)
	Delete(ctx context.Context, ident models.Identity, id string) error
	Search(ctx context.Context, ident models.Identity, search models.AlunoSearch) ([]models.Aluno, error)
}

type ProfessorService interface {
	List(ctx context.Context, ident models.Identity) ([]models.Professor, error)
	GetByID(ctx context.Context, ident models.Identity, id string) (models.Professor, error)
	Create(ctx context.Context, ident models.Identity, professor models.Professor) (models.Professor, error)
	Update(ctx context.Context, ident models.Identity, id string, professor models.Professor) (models.Professor, error)
	Delete(ctx context.Context, ident models.Identity, id string) error
}

type TreinoService interface {
	List(ctx context.Context, ident models.Identity) ([]models.Treino, error)
	GetByID(ctx context.Context, ident models.Identity, id string) (models.Treino, error)
	Create(ctx context.Context, ident models.Identity, treino models.Treino) (models.Treino, error)
	Update(ctx context.Context, ident models.Identity, id string, treino models.Treino) (models.Treino, error)
	Delete(ctx context.Context, ident models.Identity, id string) error
}

type PlanoService interface {
	List(ctx context.Context, ident models.Identity) ([]models.Plano, error)
	GetByID(ctx context.Context, ident models.Identity, id string) (models.Plano, error)
	Create(ctx context.Context, ident models.Identity, plano models.Plano) (models.Plano, error)
	Update(ctx context.Context, ident models.Identity, id string, plano models.Plano) (models.Plano, error)
	Delete(ctx context.Context, ident models.Identity, id string) error
}

type PlanoAlunoService interface {
	List(ctx context.Context, ident models.Identity) ([]models.PlanoAluno, error)
	GetByID(ctx context.Context, ident models.Identity, id string) (models.PlanoAluno, error)
	Create(ctx context.Context, ident models.Identity, planoAluno models.PlanoAluno) (models.PlanoAluno, error)
	Update(ctx context.Context, ident models.Identity, id string, planoAluno models.PlanoAluno) (models.PlanoAluno, error)
	Delete(ctx context.Context, ident models.Identity, id string) error
}

// StatusService reports service health for the status endpoint.
type StatusService interface {
	Status(ctx context.Context) models.Status
}
