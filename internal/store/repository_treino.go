package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/dmaraujo/gymkeeper/internal/logger"
	"github.com/dmaraujo/gymkeeper/models"
)

var treinoColumns = []string{
	"id", "owner_id", "nome", "descricao", "exercicios", "duracao",
	"dificuldade", "professor_id", "aluno_id", "created_at", "updated_at",
}

// treinoRepository stores workouts. The exercicios list is kept as a JSONB
// column, marshaled here so the rest of the package only sees []string.
type treinoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTreinoRepository constructs a [TreinoRepository] backed by PostgreSQL.
func NewTreinoRepository(db *DB, logger *logger.Logger) TreinoRepository {
	logger.Debug().Msg("creating treino repository")
	return &treinoRepository{
		db:     db,
		logger: logger,
	}
}

func (r *treinoRepository) List(ctx context.Context, ident models.Identity) ([]models.Treino, error) {
	log := logger.FromContext(ctx)

	query, args, err := qb.Select(treinoColumns...).
		From(models.Treino{}.TableName()).
		Where(ScopeFilter(ident, nil)).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*treinoRepository.List").Msg("error: executing error")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	treinos := make([]models.Treino, 0)
	for rows.Next() {
		var treino models.Treino
		if err := scanTreino(rows, &treino); err != nil {
			log.Err(err).Str("func", "*treinoRepository.List").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		treinos = append(treinos, treino)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return treinos, nil
}

func (r *treinoRepository) GetByID(ctx context.Context, ident models.Identity, id string) (models.Treino, error) {
	log := logger.FromContext(ctx)

	query, args, err := qb.Select(treinoColumns...).
		From(models.Treino{}.TableName()).
		Where(ScopeFilter(ident, sq.Eq{"id": id})).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*treinoRepository.GetByID").Msg("failed to build select query")
		return models.Treino{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var treino models.Treino
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanTreino(row, &treino); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Treino{}, ErrNotFound
		}

		log.Err(err).Str("func", "*treinoRepository.GetByID").Msg("error: scanning error")
		return models.Treino{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return treino, nil
}

func (r *treinoRepository) Create(ctx context.Context, treino models.Treino) (models.Treino, error) {
	log := logger.FromContext(ctx)

	exercicios, err := json.Marshal(treino.Exercicios)
	if err != nil {
		return models.Treino{}, fmt.Errorf("marshaling exercicios: %w", err)
	}

	query, args, err := qb.Insert(treino.TableName()).
		Columns(treinoColumns...).
		Values(
			treino.ID, treino.OwnerID, treino.Nome, treino.Descricao, exercicios,
			treino.Duracao, treino.Dificuldade, treino.ProfessorID, treino.AlunoID,
			treino.CreatedAt, treino.UpdatedAt,
		).
		Suffix("RETURNING " + scanList(treinoColumns)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*treinoRepository.Create").Msg("failed to build insert query")
		return models.Treino{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var saved models.Treino
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanTreino(row, &saved); err != nil {
		log.Err(err).Str("func", "*treinoRepository.Create").Msg("error: scanning error")
		return models.Treino{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

func (r *treinoRepository) Update(ctx context.Context, ident models.Identity, treino models.Treino) (models.Treino, error) {
	log := logger.FromContext(ctx)

	exercicios, err := json.Marshal(treino.Exercicios)
	if err != nil {
		return models.Treino{}, fmt.Errorf("marshaling exercicios: %w", err)
	}

	query, args, err := qb.Update(treino.TableName()).
		Set("nome", treino.Nome).
		Set("descricao", treino.Descricao).
		Set("exercicios", exercicios).
		Set("duracao", treino.Duracao).
		Set("dificuldade", treino.Dificuldade).
		Set("professor_id", treino.ProfessorID).
		Set("aluno_id", treino.AlunoID).
		Set("updated_at", treino.UpdatedAt).
		Where(ScopeFilter(ident, sq.Eq{"id": treino.ID})).
		Suffix("RETURNING " + scanList(treinoColumns)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*treinoRepository.Update").Msg("failed to build update query")
		return models.Treino{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var saved models.Treino
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanTreino(row, &saved); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Treino{}, ErrNotFound
		}

		log.Err(err).Str("func", "*treinoRepository.Update").Msg("error: scanning error")
		return models.Treino{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

func (r *treinoRepository) Delete(ctx context.Context, ident models.Identity, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := qb.Delete(models.Treino{}.TableName()).
		Where(ScopeFilter(ident, sq.Eq{"id": id})).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*treinoRepository.Delete").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*treinoRepository.Delete").Msg("error: executing error")
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

func scanTreino(row rowScanner, treino *models.Treino) error {
	var exercicios []byte
	if err := row.Scan(
		&treino.ID, &treino.OwnerID, &treino.Nome, &treino.Descricao, &exercicios,
		&treino.Duracao, &treino.Dificuldade, &treino.ProfessorID, &treino.AlunoID,
		&treino.CreatedAt, &treino.UpdatedAt,
	); err != nil {
		return err
	}

	if len(exercicios) == 0 {
		treino.Exercicios = nil
		return nil
	}

	return json.Unmarshal(exercicios, &treino.Exercicios)
}
