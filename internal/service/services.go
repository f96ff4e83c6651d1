package service

import (
	"github.com/dmaraujo/gymkeeper/internal/config"
	"github.com/dmaraujo/gymkeeper/internal/logger"
	"github.com/dmaraujo/gymkeeper/internal/store"
	"github.com/dmaraujo/gymkeeper/internal/validators"
)

type Services struct {
	AuthService       AuthService
	AlunoService      AlunoService
	ProfessorService  ProfessorService
	TreinoService     TreinoService
	PlanoService      PlanoService
	PlanoAlunoService PlanoAlunoService
	StatusService     StatusService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewEntityValidator()

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, storages.TokenDenylist, validator, cfg.App, logger),
		AlunoService:      NewAlunoService(storages.AlunoRepository, validator, logger),
		ProfessorService:  NewProfessorService(storages.ProfessorRepository, validator, logger),
		TreinoService:     NewTreinoService(storages.TreinoRepository, validator, logger),
		PlanoService:      NewPlanoService(storages.PlanoRepository, validator, logger),
		PlanoAlunoService: NewPlanoAlunoService(storages.PlanoAlunoRepository, validator, logger),
		StatusService:     NewStatusService(storages, cfg.App, logger),
	}
}
