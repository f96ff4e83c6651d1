// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniel M. Araujo

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/dmaraujo/gymkeeper/internal/logger"
	"github.com/dmaraujo/gymkeeper/models"
)

var alunoColumns = []string{
	"id", "owner_id", "nome", "email", "telefone", "data_nascimento",
	"idade", "peso", "created_at", "updated_at",
}

type alunoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAlunoRepository constructs an [AlunoRepository] backed by PostgreSQL.
func NewAlunoRepository(db *DB, logger *logger.Logger) AlunoRepository {
	logger.Debug().Msg("creating aluno repository")
	return &alunoRepository{
		db:     db,
		logger: logger,
	}
}

// List returns every aluno visible to the identity, newest first.
func (r *alunoRepository) List(ctx context.Context, ident models.Identity) ([]models.Aluno, error) {
	query, args, err := qb.Select(alunoColumns...).
		From(models.Aluno{}.TableName()).
		Where(ScopeFilter(ident, nil)).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	return r.queryAlunos(ctx, query, args)
}

// GetByID returns the aluno with the given id if the identity may see it.
// A row owned by someone else is indistinguishable from a missing one:
// both return [ErrNotFound].
func (r *alunoRepository) GetByID(ctx context.Context, ident models.Identity, id string) (models.Aluno, error) {
	log := logger.FromContext(ctx)

	query, args, err := qb.Select(alunoColumns...).
		From(models.Aluno{}.TableName()).
		Where(ScopeFilter(ident, sq.Eq{"id": id})).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*alunoRepository.GetByID").Msg("failed to build select query")
		return models.Aluno{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var aluno models.Aluno
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanAluno(row, &aluno); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Aluno{}, ErrNotFound
		}

		log.Err(err).Str("func", "*alunoRepository.GetByID").Msg("error: scanning error")
		return models.Aluno{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return aluno, nil
}

// Create inserts the aluno and returns the stored row.
func (r *alunoRepository) Create(ctx context.Context, aluno models.Aluno) (models.Aluno, error) {
	log := logger.FromContext(ctx)

	query, args, err := qb.Insert(aluno.TableName()).
		Columns(alunoColumns...).
		Values(
			aluno.ID, aluno.OwnerID, aluno.Nome, aluno.Email, aluno.Telefone,
			aluno.DataNascimento, aluno.Idade, aluno.Peso, aluno.CreatedAt, aluno.UpdatedAt,
		).
		Suffix("RETURNING " + scanList(alunoColumns)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*alunoRepository.Create").Msg("failed to build insert query")
		return models.Aluno{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var saved models.Aluno
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanAluno(row, &saved); err != nil {
		log.Err(err).Str("func", "*alunoRepository.Create").Msg("error: scanning error")
		return models.Aluno{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

// Update rewrites the mutable fields of the aluno identified by aluno.ID,
// scoped to the identity. Owner and creation time are never touched.
func (r *alunoRepository) Update(ctx context.Context, ident models.Identity, aluno models.Aluno) (models.Aluno, error) {
	log := logger.FromContext(ctx)

	query, args, err := qb.Update(aluno.TableName()).
		Set("nome", aluno.Nome).
		Set("email", aluno.Email).
		Set("telefone", aluno.Telefone).
		Set("data_nascimento", aluno.DataNascimento).
		Set("idade", aluno.Idade).
		Set("peso", aluno.Peso).
		Set("updated_at", aluno.UpdatedAt).
		Where(ScopeFilter(ident, sq.Eq{"id": aluno.ID})).
		Suffix("RETURNING " + scanList(alunoColumns)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*alunoRepository.Update").Msg("failed to build update query")
		return models.Aluno{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var saved models.Aluno
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanAluno(row, &saved); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Aluno{}, ErrNotFound
		}

		log.Err(err).Str("func", "*alunoRepository.Update").Msg("error: scanning error")
		return models.Aluno{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

// Delete removes the aluno with the given id, scoped to the identity.
func (r *alunoRepository) Delete(ctx context.Context, ident models.Identity, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := qb.Delete(models.Aluno{}.TableName()).
		Where(ScopeFilter(ident, sq.Eq{"id": id})).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*alunoRepository.Delete").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*alunoRepository.Delete").Msg("error: executing error")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// Search returns the alunos matching every non-zero predicate in search,
// still ownership-scoped. Predicates compose with AND.
func (r *alunoRepository) Search(ctx context.Context, ident models.Identity, search models.AlunoSearch) ([]models.Aluno, error) {
	predicates := sq.And{ScopeFilter(ident, nil)}

	if search.IdadeAcima > 0 {
		predicates = append(predicates, sq.Gt{"idade": search.IdadeAcima})
	}
	if search.PesoAcima > 0 {
		predicates = append(predicates, sq.Gt{"peso": search.PesoAcima})
	}
	if search.PesoMin > 0 {
		predicates = append(predicates, sq.GtOrEq{"peso": search.PesoMin})
	}
	if search.PesoMax > 0 {
		predicates = append(predicates, sq.Lt{"peso": search.PesoMax})
	}
	if len(search.Idades) > 0 {
		predicates = append(predicates, sq.Eq{"idade": search.Idades})
	}
	if len(search.Nomes) > 0 {
		predicates = append(predicates, sq.Eq{"nome": search.Nomes})
	}

	query, args, err := qb.Select(alunoColumns...).
		From(models.Aluno{}.TableName()).
		Where(predicates).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	return r.queryAlunos(ctx, query, args)
}

func (r *alunoRepository) queryAlunos(ctx context.Context, query string, args []any) ([]models.Aluno, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*alunoRepository.queryAlunos").Msg("error: executing error")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	alunos := make([]models.Aluno, 0)
	for rows.Next() {
		var aluno models.Aluno
		if err := scanAluno(rows, &aluno); err != nil {
			log.Err(err).Str("func", "*alunoRepository.queryAlunos").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		alunos = append(alunos, aluno)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return alunos, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAluno(row rowScanner, aluno *models.Aluno) error {
	return row.Scan(
		&aluno.ID, &aluno.OwnerID, &aluno.Nome, &aluno.Email, &aluno.Telefone,
		&aluno.DataNascimento, &aluno.Idade, &aluno.Peso, &aluno.CreatedAt, &aluno.UpdatedAt,
	)
}
