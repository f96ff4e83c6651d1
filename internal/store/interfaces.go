package store

import (
	"context"
	"time"

	"github.com/dmaraujo/gymkeeper/models"
)

// UserRepository persists user accounts. Credentials are stored hashed; the
// repository never sees plaintext passwords.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// AlunoRepository persists student records. All reads and mutations are
// ownership-scoped through [ScopeFilter].
type AlunoRepository interface {
	List(ctx context.Context, ident models.Identity) ([]models.Aluno, error)
	GetByID(ctx context.Context, ident models.Identity, id string) (models.Aluno, error)
	Create(ctx context.Context, aluno models.Aluno) (models.Aluno, error)
	Update(ctx context.Context, ident models.Identity, aluno models.Aluno) (models.Aluno, error)
	Delete(ctx context.Context, ident models.Identity, id string) error
	Search(ctx context.Context, ident models.Identity, search models.AlunoSearch) ([]models.Aluno, error)
}

// ProfessorRepository persists instructor records, ownership-scoped.
type ProfessorRepository interface {
	List(ctx context.Context, ident models.Identity) ([]models.Professor, error)
	GetByID(ctx context.Context, ident models.Identity, id string) (models.Professor, error)
	Create(ctx context.Context, professor models.Professor) (models.Professor, error)
	Update(ctx context.Context, ident models.Identity, professor models.Professor) (models.Professor, error)
	Delete(ctx context.Context, ident models.Identity, id string) error
}

// TreinoRepository persists workout records, ownership-scoped.
type TreinoRepository interface {
	List(ctx context.Context, ident models.Identity) ([]models.Treino, error)
	GetByID(ctx context.Context, ident models.Identity, id string) (models.Treino, error)
	Create(ctx context.Context, treino models.Treino) (models.Treino, error)
	Update(ctx context.Context, ident models.Identity, treino models.Treino) (models.Treino, error)
	Delete(ctx context.Context, ident models.Identity, id string) error
}

// PlanoRepository persists membership plan records, ownership-scoped.
type PlanoRepository interface {
	List(ctx context.Context, ident models.Identity) ([]models.Plano, error)
	GetByID(ctx context.Context, ident models.Identity, id string) (models.Plano, error)
	Create(ctx context.Context, plano models.Plano) (models.Plano, error)
	Update(ctx context.Context, ident models.Identity, plano models.Plano) (models.Plano, error)
	Delete(ctx context.Context, ident models.Identity, id string) error
}

// PlanoAlunoRepository persists plan assignment records, ownership-scoped.
type PlanoAlunoRepository interface {
	List(ctx context.Context, ident models.Identity) ([]models.PlanoAluno, error)
	GetByID(ctx context.Context, ident models.Identity, id string) (models.PlanoAluno, error)
	Create(ctx context.Context, planoAluno models.PlanoAluno) (models.PlanoAluno, error)
	Update(ctx context.Context, ident models.Identity, planoAluno models.PlanoAluno) (models.PlanoAluno, error)
	Delete(ctx context.Context, ident models.Identity, id string) error
}

// TokenDenylist records revoked token ids (jti) until their natural expiry.
// A nil-safe no-op implementation is used when no Redis backend is
// configured; in that mode tokens stay valid until they expire, which is the
// documented stateless-token trade-off.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
