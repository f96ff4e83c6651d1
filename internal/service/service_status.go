package service

import (
	"context"
	"time"

	"github.com/dmaraujo/gymkeeper/internal/config"
	"github.com/dmaraujo/gymkeeper/internal/logger"
	"github.com/dmaraujo/gymkeeper/models"
)

// Pinger reports liveness of a storage backend.
type Pinger interface {
	Ping(ctx context.Context) error
}

type statusService struct {
	appVersion string
	startedAt  time.Time
	db         Pinger

	logger *logger.Logger
}

func NewStatusService(db Pinger, cfg config.App, logger *logger.Logger) StatusService {
	return &statusService{
		appVersion: cfg.Version,
		startedAt:  time.Now(),
		db:         db,
		logger:     logger,
	}
}

// Status pings the database and reports version and uptime. A failing ping
// degrades the status instead of failing the request.
func (s *statusService) Status(ctx context.Context) models.Status {
	status := models.Status{
		Status:   "ok",
		Version:  s.appVersion,
		Uptime:   time.Since(s.startedAt).Round(time.Second).String(),
		Database: "up",
	}

	if err := s.db.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("database ping failed")
		status.Status = "degraded"
		status.Database = "down"
	}

	return status
}
