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

type professorService struct {
	professorRepository store.ProfessorRepository
	validator           validators.Validator

	logger *logger.Logger
}

func NewProfessorService(professorRepository store.ProfessorRepository, validator validators.Validator, logger *logger.Logger) ProfessorService {
	return &professorService{
		professorRepository: professorRepository,
		validator:           validator,
		logger:              logger,
	}
}

func (s *professorService) List(ctx context.Context, ident models.Identity) ([]models.Professor, error) {
	return s.professorRepository.List(ctx, ident)
}

func (s *professorService) GetByID(ctx context.Context, ident models.Identity, id string) (models.Professor, error) {
	return s.professorRepository.GetByID(ctx, ident, id)
}

func (s *professorService) Create(ctx context.Context, ident models.Identity, professor models.Professor) (models.Professor, error) {
	log := logger.FromContext(ctx)

	if violations := s.validator.Validate(ctx, professor); len(violations) > 0 {
		log.Error().Any("violations", violations).Msg("invalid professor data provided")
		return models.Professor{}, NewValidationError(violations)
	}

	now := time.Now().UTC()
	professor.ID = utils.NewID()
	professor.OwnerID = ident.ID
	professor.CreatedAt = now
	professor.UpdatedAt = now

	saved, err := s.professorRepository.Create(ctx, professor)
	if err != nil {
		log.Err(err).Msg("professor creation ended with error")
		return models.Professor{}, fmt.Errorf("professor creation ended with error: %w", err)
	}

	return saved, nil
}

func (s *professorService) Update(ctx context.Context, ident models.Identity, id string, professor models.Professor) (models.Professor, error) {
	log := logger.FromContext(ctx)

	if violations := s.validator.Validate(ctx, professor); len(violations) > 0 {
		log.Error().Any("violations", violations).Msg("invalid professor data provided")
		return models.Professor{}, NewValidationError(violations)
	}

	professor.ID = id
	professor.UpdatedAt = time.Now().UTC()

	saved, err := s.professorRepository.Update(ctx, ident, professor)
	if err != nil {
		return models.Professor{}, fmt.Errorf("professor update ended with error: %w", err)
	}

	return saved, nil
}

func (s *professorService) Delete(ctx context.Context, ident models.Identity, id string) error {
	return s.professorRepository.Delete(ctx, ident, id)
}
