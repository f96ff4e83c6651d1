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

var planoColumns = []string{
	"id", "owner_id", "nome", "descricao", "preco", "duracao_meses",
	"created_at", "updated_at",
}

type planoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPlanoRepository constructs a [PlanoRepository] backed by PostgreSQL.
func NewPlanoRepository(db *DB, logger *logger.Logger) PlanoRepository {
	logger.Debug().Msg("creating plano repository")
	return &planoRepository{
		db:     db,
		logger: logger,
	}
}

func (r *planoRepository) List(ctx context.Context, ident models.Identity) ([]models.Plano, error) {
	log := logger.FromContext(ctx)

	query, args, err := qb.Select(planoColumns...).
		From(models.Plano{}.TableName()).
		Where(ScopeFilter(ident, nil)).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*planoRepository.List").Msg("error: executing error")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	planos := make([]models.Plano, 0)
	for rows.Next() {
		var plano models.Plano
		if err := scanPlano(rows, &plano); err != nil {
			log.Err(err).Str("func", "*planoRepository.List").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		planos = append(planos, plano)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return planos, nil
}

func (r *planoRepository) GetByID(ctx context.Context, ident models.Identity, id string) (models.Plano, error) {
	log := logger.FromContext(ctx)

	query, args, err := qb.Select(planoColumns...).
		From(models.Plano{}.TableName()).
		Where(ScopeFilter(ident, sq.Eq{"id": id})).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*planoRepository.GetByID").Msg("failed to build select query")
		return models.Plano{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var plano models.Plano
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanPlano(row, &plano); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Plano{}, ErrNotFound
		}

		log.Err(err).Str("func", "*planoRepository.GetByID").Msg("error: scanning error")
		return models.Plano{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return plano, nil
}

func (r *planoRepository) Create(ctx context.Context, plano models.Plano) (models.Plano, error) {
	log := logger.FromContext(ctx)

	query, args, err := qb.Insert(plano.TableName()).
		Columns(planoColumns...).
		Values(
			plano.ID, plano.OwnerID, plano.Nome, plano.Descricao, plano.Preco,
			plano.DuracaoMeses, plano.CreatedAt, plano.UpdatedAt,
		).
		Suffix("RETURNING " + scanList(planoColumns)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*planoRepository.Create").Msg("failed to build insert query")
		return models.Plano{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var saved models.Plano
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanPlano(row, &saved); err != nil {
		log.Err(err).Str("func", "*planoRepository.Create").Msg("error: scanning error")
		return models.Plano{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

func (r *planoRepository) Update(ctx context.Context, ident models.Identity, plano models.Plano) (models.Plano, error) {
	log := logger.FromContext(ctx)

	query, args, err := qb.Update(plano.TableName()).
		Set("nome", plano.Nome).
		Set("descricao", plano.Descricao).
		Set("preco", plano.Preco).
		Set("duracao_meses", plano.DuracaoMeses).
		Set("updated_at", plano.UpdatedAt).
		Where(ScopeFilter(ident, sq.Eq{"id": plano.ID})).
		Suffix("RETURNING " + scanList(planoColumns)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*planoRepository.Update").Msg("failed to build update query")
		return models.Plano{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var saved models.Plano
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanPlano(row, &saved); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Plano{}, ErrNotFound
		}

		log.Err(err).Str("func", "*planoRepository.Update").Msg("error: scanning error")
		return models.Plano{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

func (r *planoRepository) Delete(ctx context.Context, ident models.Identity, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := qb.Delete(models.Plano{}.TableName()).
		Where(ScopeFilter(ident, sq.Eq{"id": id})).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*planoRepository.Delete").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*planoRepository.Delete").Msg("error: executing error")
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

func scanPlano(row rowScanner, plano *models.Plano) error {
	return row.Scan(
		&plano.ID, &plano.OwnerID, &plano.Nome, &plano.Descricao, &plano.Preco,
		&plano.DuracaoMeses, &plano.CreatedAt, &plano.UpdatedAt,
	)
}
