package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmaraujo/gymkeeper/internal/logger"
	"github.com/dmaraujo/gymkeeper/internal/store"
	"github.com/dmaraujo/gymkeeper/internal/validators"
	"github.com/dmaraujo/gymkeeper/models"
)

// mockAlunoRepository implements store.AlunoRepository for unit tests.
type mockAlunoRepository struct {
	listFn    func(ctx context.Context, ident models.Identity) ([]models.Aluno, error)
	getByIDFn func(ctx context.Context, ident models.Identity, id string) (models.Aluno, error)
	createFn  func(ctx context.Context, aluno models.Aluno) (models.Aluno, error)
	updateFn  func(ctx context.Context, ident models.Identity, aluno models.Aluno) (models.Aluno, error)
	deleteFn  func(ctx context.Context, ident models.Identity, id string) error
	searchFn  func(ctx context.Context, ident models.Identity, search models.AlunoSearch) ([]models.Aluno, error)
}

func (m *mockAlunoRepository) List(ctx context.Context, ident models.Identity) ([]models.Aluno, error) {
	return m.listFn(ctx, ident)
}

func (m *mockAlunoRepository) GetByID(ctx context.Context, ident models.Identity, id string) (models.Aluno, error) {
	return m.getByIDFn(ctx, ident, id)
}

func (m *mockAlunoRepository) Create(ctx context.Context, aluno models.Aluno) (models.Aluno, error) {
	return m.createFn(ctx, aluno)
}

func (m *mockAlunoRepository) Update(ctx context.Context, ident models.Identity, aluno models.Aluno) (models.Aluno, error) {
	return m.updateFn(ctx, ident, aluno)
}

func (m *mockAlunoRepository) Delete(ctx context.Context, ident models.Identity, id string) error {
	return m.deleteFn(ctx, ident, id)
}

func (m *mockAlunoRepository) Search(ctx context.Context, ident models.Identity, search models.AlunoSearch) ([]models.Aluno, error) {
	return m.searchFn(ctx, ident, search)
}

func newTestAlunoService(repo store.AlunoRepository) AlunoService {
	return NewAlunoService(repo, validators.NewEntityValidator(), logger.Nop())
}

func serviceAluno() models.Aluno {
	return models.Aluno{
		Nome:           "Joao Silva",
		Email:          "joao@example.com",
		Telefone:       "11999990000",
		DataNascimento: "2000-05-12",
		Idade:          25,
		Peso:           82.5,
	}
}

func TestAlunoCreate_StampsServerFields(t *testing.T) {
	var persisted models.Aluno
	repo := &mockAlunoRepository{
		createFn: func(_ context.Context, aluno models.Aluno) (models.Aluno, error) {
			persisted = aluno
			return aluno, nil
		},
	}
	svc := newTestAlunoService(repo)
	ident := models.Identity{ID: "u-1", Role: models.RoleUser}

	// Client-supplied id and owner must be discarded.
	input := serviceAluno()
	input.ID = "client-chosen"
	input.OwnerID = "someone-else"

	saved, err := svc.Create(context.Background(), ident, input)
	require.NoError(t, err)

	assert.NotEqual(t, "client-chosen", persisted.ID)
	assert.NotEmpty(t, persisted.ID)
	assert.Equal(t, "u-1", persisted.OwnerID)
	assert.WithinDuration(t, time.Now().UTC(), persisted.CreatedAt, time.Minute)
	assert.Equal(t, persisted.CreatedAt, persisted.UpdatedAt)
	assert.Equal(t, persisted.ID, saved.ID)
}

func TestAlunoCreate_InvalidInput(t *testing.T) {
	repo := &mockAlunoRepository{
		createFn: func(_ context.Context, _ models.Aluno) (models.Aluno, error) {
			t.Fatal("repository must not be called for invalid input")
			return models.Aluno{}, nil
		},
	}
	svc := newTestAlunoService(repo)
	ident := models.Identity{ID: "u-1", Role: models.RoleUser}

	_, err := svc.Create(context.Background(), ident, models.Aluno{})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Fields)
}

func TestAlunoUpdate_PathIDWinsAndOwnerUntouched(t *testing.T) {
	var persisted models.Aluno
	repo := &mockAlunoRepository{
		updateFn: func(_ context.Context, _ models.Identity, aluno models.Aluno) (models.Aluno, error) {
			persisted = aluno
			return aluno, nil
		},
	}
	svc := newTestAlunoService(repo)
	ident := models.Identity{ID: "u-1", Role: models.RoleUser}

	input := serviceAluno()
	input.ID = "body-id"
	input.OwnerID = "attacker"

	_, err := svc.Update(context.Background(), ident, "path-id", input)
	require.NoError(t, err)

	assert.Equal(t, "path-id", persisted.ID)
	assert.WithinDuration(t, time.Now().UTC(), persisted.UpdatedAt, time.Minute)
}

func TestAlunoUpdate_NotFoundPassthrough(t *testing.T) {
	repo := &mockAlunoRepository{
		updateFn: func(_ context.Context, _ models.Identity, _ models.Aluno) (models.Aluno, error) {
			return models.Aluno{}, store.ErrNotFound
		},
	}
	svc := newTestAlunoService(repo)
	ident := models.Identity{ID: "u-1", Role: models.RoleUser}

	_, err := svc.Update(context.Background(), ident, "a-1", serviceAluno())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAlunoSearch_Passthrough(t *testing.T) {
	repo := &mockAlunoRepository{
		searchFn: func(_ context.Context, _ models.Identity, search models.AlunoSearch) ([]models.Aluno, error) {
			assert.Equal(t, 18, search.IdadeAcima)
			return []models.Aluno{{ID: "a-1"}}, nil
		},
	}
	svc := newTestAlunoService(repo)

	alunos, err := svc.Search(context.Background(), models.Identity{ID: "u-1"}, models.AlunoSearch{IdadeAcima: 18})
	require.NoError(t, err)
	assert.Len(t, alunos, 1)
}
