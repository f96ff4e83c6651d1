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

var planoAlunoColumns = []string{
	"id", "owner_id", "plano_id", "aluno_id", "data_inicio",
	"created_at", "updated_at",
}

// planoAlunoRepository stores plan assignments. plano_id and aluno_id are
// plain columns, not foreign keys; dangling references are allowed.
type planoAlunoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPlanoAlunoRepository constructs a [PlanoAlunoRepository] backed by PostgreSQL.
func NewPlanoAlunoRepository(db *DB, logger *logger.Logger) PlanoAlunoRepository {
	logger.Debug().Msg("creating plano-aluno repository")
	return &planoAlunoRepository{
		db:     db,
		logger: logger,
	}
}

func (r *planoAlunoRepository) List(ctx context.Context, ident models.Identity) ([]models.PlanoAluno, error) {
	log := logger.FromContext(ctx)

	query, args, err := qb.Select(planoAlunoColumns...).
		From(models.PlanoAluno{}.TableName()).
		Where(ScopeFilter(ident, nil)).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*planoAlunoRepository.List").Msg("error: executing error")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	assignments := make([]models.PlanoAluno, 0)
	for rows.Next() {
		var assignment models.PlanoAluno
		if err := scanPlanoAluno(rows, &assignment); err != nil {
			log.Err(err).Str("func", "*planoAlunoRepository.List").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		assignments = append(assignments, assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return assignments, nil
}

func (r *planoAlunoRepository) GetByID(ctx context.Context, ident models.Identity, id string) (models.PlanoAluno, error) {
	log := logger.FromContext(ctx)

	query, args, err := qb.Select(planoAlunoColumns...).
		From(models.PlanoAluno{}.TableName()).
		Where(ScopeFilter(ident, sq.Eq{"id": id})).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*planoAlunoRepository.GetByID").Msg("failed to build select query")
		return models.PlanoAluno{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var assignment models.PlanoAluno
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanPlanoAluno(row, &assignment); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PlanoAluno{}, ErrNotFound
		}

		log.Err(err).Str("func", "*planoAlunoRepository.GetByID").Msg("error: scanning error")
		return models.PlanoAluno{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return assignment, nil
}

func (r *planoAlunoRepository) Create(ctx context.Context, planoAluno models.PlanoAluno) (models.PlanoAluno, error) {
	log := logger.FromContext(ctx)

	query, args, err := qb.Insert(planoAluno.TableName()).
		Columns(planoAlunoColumns...).
		Values(
			planoAluno.ID, planoAluno.OwnerID, planoAluno.PlanoID, planoAluno.AlunoID,
			planoAluno.DataInicio, planoAluno.CreatedAt, planoAluno.UpdatedAt,
		).
		Suffix("RETURNING " + scanList(planoAlunoColumns)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*planoAlunoRepository.Create").Msg("failed to build insert query")
		return models.PlanoAluno{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var saved models.PlanoAluno
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanPlanoAluno(row, &saved); err != nil {
		log.Err(err).Str("func", "*planoAlunoRepository.Create").Msg("error: scanning error")
		return models.PlanoAluno{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

func (r *planoAlunoRepository) Update(ctx context.Context, ident models.Identity, planoAluno models.PlanoAluno) (models.PlanoAluno, error) {
	log := logger.FromContext(ctx)

	query, args, err := qb.Update(planoAluno.TableName()).
		Set("plano_id", planoAluno.PlanoID).
		Set("aluno_id", planoAluno.AlunoID).
		Set("data_inicio", planoAluno.DataInicio).
		Set("updated_at", planoAluno.UpdatedAt).
		Where(ScopeFilter(ident, sq.Eq{"id": planoAluno.ID})).
		Suffix("RETURNING " + scanList(planoAlunoColumns)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*planoAlunoRepository.Update").Msg("failed to build update query")
		return models.PlanoAluno{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var saved models.PlanoAluno
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanPlanoAluno(row, &saved); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PlanoAluno{}, ErrNotFound
		}

		log.Err(err).Str("func", "*planoAlunoRepository.Update").Msg("error: scanning error")
		return models.PlanoAluno{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

func (r *planoAlunoRepository) Delete(ctx context.Context, ident models.Identity, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := qb.Delete(models.PlanoAluno{}.TableName()).
		Where(ScopeFilter(ident, sq.Eq{"id": id})).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*planoAlunoRepository.Delete").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*planoAlunoRepository.Delete").Msg("error: executing error")
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

func scanPlanoAluno(row rowScanner, planoAluno *models.PlanoAluno) error {
	return row.Scan(
		&planoAluno.ID, &planoAluno.OwnerID, &planoAluno.PlanoID, &planoAluno.AlunoID,
		&planoAluno.DataInicio, &planoAluno.CreatedAt, &planoAluno.UpdatedAt,
	)
}
