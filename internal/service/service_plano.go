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

type planoService struct {
	planoRepository store.PlanoRepository
	validator       validators.Validator

	logger *logger.Logger
}

func NewPlanoService(planoRepository store.PlanoRepository, validator validators.Validator, logger *logger.Logger) PlanoService {
	return &planoService{
		planoRepository: planoRepository,
		validator:       validator,
		logger:          logger,
	}
}

func (s *planoService) List(ctx context.Context, ident models.Identity) ([]models.Plano, error) {
	return s.planoRepository.List(ctx, ident)
}

func (s *planoService) GetByID(ctx context.Context, ident models.Identity, id string) (models.Plano, error) {
	return s.planoRepository.GetByID(ctx, ident, id)
}

func (s *planoService) Create(ctx context.Context, ident models.Identity, plano models.Plano) (models.Plano, error) {
	log := logger.FromContext(ctx)

	if violations := s.validator.Validate(ctx, plano); len(violations) > 0 {
		log.Error().Any("violations", violations).Msg("invalid plano data provided")
		return models.Plano{}, NewValidationError(violations)
	}

	now := time.Now().UTC()
	plano.ID = utils.NewID()
	plano.OwnerID = ident.ID
	plano.CreatedAt = now
	plano.UpdatedAt = now

	saved, err := s.planoRepository.Create(ctx, plano)
	if err != nil {
		log.Err(err).Msg("plano creation ended with error")
		return models.Plano{}, fmt.Errorf("plano creation ended with error: %w", err)
	}

	return saved, nil
}

func (s *planoService) Update(ctx context.Context, ident models.Identity, id string, plano models.Plano) (models.Plano, error) {
	log := logger.FromContext(ctx)

	if violations := s.validator.Validate(ctx, plano); len(violations) > 0 {
		log.Error().Any("violations", violations).Msg("invalid plano data provided")
		return models.Plano{}, NewValidationError(violations)
	}

	plano.ID = id
	plano.UpdatedAt = time.Now().UTC()

	saved, err := s.planoRepository.Update(ctx, ident, plano)
	if err != nil {
		return models.Plano{}, fmt.Errorf("plano update ended with error: %w", err)
	}

	return saved, nil
}

func (s *planoService) Delete(ctx context.Context, ident models.Identity, id string) error {
	return s.planoRepository.Delete(ctx, ident, id)
}
