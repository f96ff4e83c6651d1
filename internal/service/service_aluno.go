// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniel M. Araujo

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

// alunoService implements AlunoService on top of the ownership-scoped
// aluno repository.
//
// The service is the single place where server-controlled fields are
// stamped: id, ownerId and timestamps on create; updatedAt on update. A
// client-supplied ownerId is always discarded.
type alunoService struct {
	alunoRepository store.AlunoRepository
	validator       validators.Validator

	logger *logger.Logger
}

func NewAlunoService(alunoRepository store.AlunoRepository, validator validators.Validator, logger *logger.Logger) AlunoService {
	return &alunoService{
		alunoRepository: alunoRepository,
		validator:       validator,
		logger:          logger,
	}
}

func (s *alunoService) List(ctx context.Context, ident models.Identity) ([]models.Aluno, error) {
	return s.alunoRepository.List(ctx, ident)
}

func (s *alunoService) GetByID(ctx context.Context, ident models.Identity, id string) (models.Aluno, error) {
	return s.alunoRepository.GetByID(ctx, ident, id)
}

func (s *alunoService) Create(ctx context.Context, ident models.Identity, aluno models.Aluno) (models.Aluno, error) {
	log := logger.FromContext(ctx)

	if violations := s.validator.Validate(ctx, aluno); len(violations) > 0 {
		log.Error().Any("violations", violations).Msg("invalid aluno data provided")
		return models.Aluno{}, NewValidationError(violations)
	}

	now := time.Now().UTC()
	aluno.ID = utils.NewID()
	aluno.OwnerID = ident.ID
	aluno.CreatedAt = now
	aluno.UpdatedAt = now

	saved, err := s.alunoRepository.Create(ctx, aluno)
	if err != nil {
		log.Err(err).Msg("aluno creation ended with error")
		return models.Aluno{}, fmt.Errorf("aluno creation ended with error: %w", err)
	}

	return saved, nil
}

func (s *alunoService) Update(ctx context.Context, ident models.Identity, id string, aluno models.Aluno) (models.Aluno, error) {
	log := logger.FromContext(ctx)

	if violations := s.validator.Validate(ctx, aluno); len(violations) > 0 {
		log.Error().Any("violations", violations).Msg("invalid aluno data provided")
		return models.Aluno{}, NewValidationError(violations)
	}

	aluno.ID = id
	aluno.UpdatedAt = time.Now().UTC()

	saved, err := s.alunoRepository.Update(ctx, ident, aluno)
	if err != nil {
		return models.Aluno{}, fmt.Errorf("aluno update ended with error: %w", err)
	}

	return saved, nil
}

func (s *alunoService) Delete(ctx context.Context, ident models.Identity, id string) error {
	return s.alunoRepository.Delete(ctx, ident, id)
}

func (s *alunoService) Search(ctx context.Context, ident models.Identity, search models.AlunoSearch) ([]models.Aluno, error) {
	return s.alunoRepository.Search(ctx, ident, search)
}
