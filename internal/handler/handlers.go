package handler

import (
	"github.com/dmaraujo/gymkeeper/internal/config"
	"github.com/dmaraujo/gymkeeper/internal/handler/http"
	"github.com/dmaraujo/gymkeeper/internal/logger"
	"github.com/dmaraujo/gymkeeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
