package cli

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GlebRadaev/globalfund/internal/config"
	"github.com/GlebRadaev/globalfund/internal/pg"
	"github.com/GlebRadaev/globalfund/internal/repo"
	"github.com/GlebRadaev/globalfund/internal/service"
	"github.com/GlebRadaev/globalfund/internal/service/authservice"
	"github.com/GlebRadaev/globalfund/internal/sweeper"
	"github.com/GlebRadaev/globalfund/pkg/mailer"
)

type pgBackend struct {
	*authservice.Service
	pool    *pgxpool.Pool
	sweeper *sweeper.Service
}

// Connect opens a Postgres-backed Backend. The services are wired the same
// way the API server wires them, with mail going to the log.
func Connect(ctx context.Context, cfg *config.Config) (Backend, error) {
	pool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	conn := pg.New(pool)
	repos := repo.New(conn)
	srv := service.New(cfg, repos, service.Deps{
		TXManager: pg.NewTXManager(pool),
		Mailer:    mailer.NewLog(),
	})

	return &pgBackend{
		Service: srv.AuthService,
		pool:    pool,
		sweeper: sweeper.New(cfg, srv.AuthService, nil),
	}, nil
}

func (b *pgBackend) Migrate(ctx context.Context) (int64, error) {
	return pg.RunMigrations(ctx, b.pool)
}

func (b *pgBackend) Sweep(ctx context.Context) (int64, error) {
	return b.sweeper.Sweep(ctx)
}

func (b *pgBackend) Close() {
	b.pool.Close()
}
