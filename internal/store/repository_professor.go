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

var professorColumns = []string{
	"id", "owner_id", "nome", "email", "especialidade", "telefone",
	"salario", "created_at", "updated_at",
}

type professorRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProfessorRepository constructs a [ProfessorRepository] backed by PostgreSQL.
func NewProfessorRepository(db *DB, logger *logger.Logger) ProfessorRepository {
	logger.Debug().Msg("creating professor repository")
	return &professorRepository{
		db:     db,
		logger: logger,
	}
}

func (r *professorRepository) List(ctx context.Context, ident models.Identity) ([]models.Professor, error) {
	log := logger.FromContext(ctx)

	query, args, err := qb.Select(professorColumns...).
		From(models.Professor{}.TableName()).
		Where(ScopeFilter(ident, nil)).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*professorRepository.List").Msg("error: executing error")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	professores := make([]models.Professor, 0)
	for rows.Next() {
		var professor models.Professor
		if err := scanProfessor(rows, &professor); err != nil {
			log.Err(err).Str("func", "*professorRepository.List").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		professores = append(professores, professor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return professores, nil
}

func (r *professorRepository) GetByID(ctx context.Context, ident models.Identity, id string) (models.Professor, error) {
	log := logger.FromContext(ctx)

	query, args, err := qb.Select(professorColumns...).
		From(models.Professor{}.TableName()).
		Where(ScopeFilter(ident, sq.Eq{"id": id})).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*professorRepository.GetByID").Msg("failed to build select query")
		return models.Professor{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var professor models.Professor
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanProfessor(row, &professor); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Professor{}, ErrNotFound
		}

		log.Err(err).Str("func", "*professorRepository.GetByID").Msg("error: scanning error")
		return models.Professor{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return professor, nil
}

func (r *professorRepository) Create(ctx context.Context, professor models.Professor) (models.Professor, error) {
	log := logger.FromContext(ctx)

	query, args, err := qb.Insert(professor.TableName()).
		Columns(professorColumns...).
		Values(
			professor.ID, professor.OwnerID, professor.Nome, professor.Email,
			professor.Especialidade, professor.Telefone, professor.Salario,
			professor.CreatedAt, professor.UpdatedAt,
		).
		Suffix("RETURNING " + scanList(professorColumns)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*professorRepository.Create").Msg("failed to build insert query")
		return models.Professor{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var saved models.Professor
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanProfessor(row, &saved); err != nil {
		log.Err(err).Str("func", "*professorRepository.Create").Msg("error: scanning error")
		return models.Professor{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

func (r *professorRepository) Update(ctx context.Context, ident models.Identity, professor models.Professor) (models.Professor, error) {
	log := logger.FromContext(ctx)

	query, args, err := qb.Update(professor.TableName()).
		Set("nome", professor.Nome).
		Set("email", professor.Email).
		Set("especialidade", professor.Especialidade).
		Set("telefone", professor.Telefone).
		Set("salario", professor.Salario).
		Set("updated_at", professor.UpdatedAt).
		Where(ScopeFilter(ident, sq.Eq{"id": professor.ID})).
		Suffix("RETURNING " + scanList(professorColumns)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*professorRepository.Update").Msg("failed to build update query")
		return models.Professor{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var saved models.Professor
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanProfessor(row, &saved); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Professor{}, ErrNotFound
		}

		log.Err(err).Str("func", "*professorRepository.Update").Msg("error: scanning error")
		return models.Professor{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

func (r *professorRepository) Delete(ctx context.Context, ident models.Identity, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := qb.Delete(models.Professor{}.TableName()).
		Where(ScopeFilter(ident, sq.Eq{"id": id})).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*professorRepository.Delete").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*professorRepository.Delete").Msg("error: executing error")
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

func scanProfessor(row rowScanner, professor *models.Professor) error {
	return row.Scan(
		&professor.ID, &professor.OwnerID, &professor.Nome, &professor.Email,
		&professor.Especialidade, &professor.Telefone, &professor.Salario,
		&professor.CreatedAt, &professor.UpdatedAt,
	)
}
