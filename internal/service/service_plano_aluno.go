package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dmaraujo/gymkeeper/internal/logger"
	"github.com/dmaraujo/gymkeeper/internal/store"
	"github.com/dmaraujo/gymkeeper/internal/utils"
	"github.com/dmaraujo/gymkeeper/internal/validators"
	"github.com/dmaraujo/gymkeeper/models"
)

// planoAlunoService implements PlanoAlunoService. Plan and aluno references
// are accepted as-is; nothing verifies the referenced rows exist.
type planoAlunoService struct {
	planoAlunoRepository store.PlanoAlunoRepository
	validator            validators.Validator

	logger *logger.Logger
}

func NewPlanoAlunoService(planoAlunoRepository store.PlanoAlunoRepository, validator validators.Validator, logger *logger.Logger) PlanoAlunoService {
	return &planoAlunoService{
		planoAlunoRepository: planoAlunoRepository,
		validator:            validator,
		logger:               logger,
	}
}

func (s *planoAlunoService) List(ctx context.Context, ident models.Identity) ([]models.PlanoAluno, error) {
	return s.planoAlunoRepository.List(ctx, ident)
}

func (s *planoAlunoService) GetByID(ctx context.Context, ident models.Identity, id string) (models.PlanoAluno, error) {
	return s.planoAlunoRepository.GetByID(ctx, ident, id)
}

func (s *planoAlunoService) Create(ctx context.Context, ident models.Identity, planoAluno models.PlanoAluno) (models.PlanoAluno, error) {
	log := logger.FromContext(ctx)

	if violations := s.validator.Validate(ctx, planoAluno); len(violations) > 0 {
		log.Error().Any("violations", violations).Msg("invalid plano-aluno data provided")
		return models.PlanoAluno{}, NewValidationError(violations)
	}

	now := time.Now().UTC()
	planoAluno.ID = utils.NewID()
	planoAluno.OwnerID = ident.ID
	planoAluno.CreatedAt = now
	planoAluno.UpdatedAt = now

	saved, err := s.planoAlunoRepository.Create(ctx, planoAluno)
	if err != nil {
		log.Err(err).Msg("plano-aluno creation ended with error")
		return models.PlanoAluno{}, fmt.Errorf("plano-aluno creation ended with error: %w", err)
	}

	return saved, nil
}

func (s *planoAlunoService) Update(ctx context.Context, ident models.Identity, id string, planoAluno models.PlanoAluno) (models.PlanoAluno, error) {
	log := logger.FromContext(ctx)

	if violations := s.validator.Validate(ctx, planoAluno); len(violations) > 0 {
		log.Error().Any("violations", violations).Msg("invalid plano-aluno data provided")
		return models.PlanoAluno{}, NewValidationError(violations)
	}

	planoAluno.ID = id
	planoAluno.UpdatedAt = time.Now().UTC()

	saved, err := s.planoAlunoRepository.Update(ctx, ident, planoAluno)
	if err != nil {
		return models.PlanoAluno{}, fmt.Errorf("plano-aluno update ended with error: %w", err)
	}

	return saved, nil
}

func (s *planoAlunoService) Delete(ctx context.Context, ident models.Identity, id string) error {
	return s.planoAlunoRepository.Delete(ctx, ident, id)
}
