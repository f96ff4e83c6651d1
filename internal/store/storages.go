package store

import (
	"context"

	"github.com/dmaraujo/gymkeeper/internal/config"
	"github.com/dmaraujo/gymkeeper/internal/logger"
)

// Storages aggregates every repository behind a single value injected into
// the service layer.
type Storages struct {
	UserRepository       UserRepository
	AlunoRepository      AlunoRepository
	ProfessorRepository  ProfessorRepository
	TreinoRepository     TreinoRepository
	PlanoRepository      PlanoRepository
	PlanoAlunoRepository PlanoAlunoRepository
	TokenDenylist        TokenDenylist

	db *DB
}

// NewStorages connects to PostgreSQL, runs outstanding migrations and wires
// every repository. When cfg.Redis.Addr is empty the token denylist is a
// no-op.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger, migrate func(*DB) error) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if migrate != nil {
		if err := migrate(db); err != nil {
			return nil, err
		}
	}

	denylist := NewNoopDenylist()
	if cfg.Redis.Addr != "" {
		denylist, err = NewRedisDenylist(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.Database, log)
		if err != nil {
			return nil, err
		}
	}

	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		AlunoRepository:      NewAlunoRepository(db, log),
		ProfessorRepository:  NewProfessorRepository(db, log),
		TreinoRepository:     NewTreinoRepository(db, log),
		PlanoRepository:      NewPlanoRepository(db, log),
		PlanoAlunoRepository: NewPlanoAlunoRepository(db, log),
		TokenDenylist:        denylist,
		db:                   db,
	}, nil
}

// Ping reports whether the underlying database connection is alive.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
