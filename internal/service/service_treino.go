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

type treinoService struct {
	treinoRepository store.TreinoRepository
	validator        validators.Validator

	logger *logger.Logger
}

func NewTreinoService(treinoRepository store.TreinoRepository, validator validators.Validator, logger *logger.Logger) TreinoService {
	return &treinoService{
		treinoRepository: treinoRepository,
		validator:        validator,
		logger:           logger,
	}
}

func (s *treinoService) List(ctx context.Context, ident models.Identity) ([]models.Treino, error) {
	return s.treinoRepository.List(ctx, ident)
}

func (s *treinoService) GetByID(ctx context.Context, ident models.Identity, id string) (models.Treino, error) {
	return s.treinoRepository.GetByID(ctx, ident, id)
}

func (s *treinoService) Create(ctx context.Context, ident models.Identity, treino models.Treino) (models.Treino, error) {
	log := logger.FromContext(ctx)

	if violations := s.validator.Validate(ctx, treino); len(violations) > 0 {
		log.Error().Any("violations", violations).Msg("invalid treino data provided")
		return models.Treino{}, NewValidationError(violations)
	}

	now := time.Now().UTC()
	treino.ID = utils.NewID()
	treino.OwnerID = ident.ID
	treino.CreatedAt = now
	treino.UpdatedAt = now

	saved, err := s.treinoRepository.Create(ctx, treino)
	if err != nil {
		log.Err(err).Msg("treino creation ended with error")
		return models.Treino{}, fmt.Errorf("treino creation ended with error: %w", err)
	}

	return saved, nil
}

func (s *treinoService) Update(ctx context.Context, ident models.Identity, id string, treino models.Treino) (models.Treino, error) {
	log := logger.FromContext(ctx)

	if violations := s.validator.Validate(ctx, treino); len(violations) > 0 {
		log.Error().Any("violations", violations).Msg("invalid treino data provided")
		return models.Treino{}, NewValidationError(violations)
	}

	treino.ID = id
	treino.UpdatedAt = time.Now().UTC()

	saved, err := s.treinoRepository.Update(ctx, ident, treino)
	if err != nil {
		return models.Treino{}, fmt.Errorf("treino update ended with error: %w", err)
	}

	return saved, nil
}

func (s *treinoService) Delete(ctx context.Context, ident models.Identity, id string) error {
	return s.treinoRepository.Delete(ctx, ident, id)
}
