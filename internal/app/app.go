package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/globalfund/internal/config"
	"github.com/GlebRadaev/globalfund/internal/handlers"
	"github.com/GlebRadaev/globalfund/internal/pg"
	"github.com/GlebRadaev/globalfund/internal/repo"
	"github.com/GlebRadaev/globalfund/internal/service"
	"github.com/GlebRadaev/globalfund/internal/sweeper"
	"github.com/GlebRadaev/globalfund/pkg/clients"
	"github.com/GlebRadaev/globalfund/pkg/logger"
	"github.com/GlebRadaev/globalfund/pkg/mailer"
	"github.com/GlebRadaev/globalfund/pkg/metrics"
	"github.com/GlebRadaev/globalfund/pkg/ratelimit"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	pool    *pgxpool.Pool
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	sweeper *sweeper.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	err = logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	version, err := pg.RunMigrations(ctx, pool)
	if err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't run migrations: %w", err)
	}
	zap.L().Info("database schema is up to date", zap.Int64("version", version))

	mail, err := mailer.New(mailConfig(cfg.Mail), clients.NewHTTPClient())
	if err != nil {
		pool.Close()
		return fmt.Errorf("can't build mailer: %w", err)
	}

	m := metrics.New()
	limiter := ratelimit.New(cfg.RateLimitRPS, cfg.RateLimitBurst)

	a.cfg = cfg
	a.pool = pool
	a.repo = repo.New(pg.New(pool))
	a.srv = service.New(cfg, a.repo, service.Deps{
		TXManager: pg.NewTXManager(pool),
		Mailer:    mail,
		Metrics:   m,
	})
	a.api = handlers.New(a.srv, m, limiter, cfg.CORSAllowedOrigins, cfg.TrustProxyHeaders)
	a.sweeper = sweeper.New(cfg, a.srv.AuthService, limiter)

	a.startHTTPServer(ctx)
	a.startSweeper(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func mailConfig(m config.Mail) mailer.Config {
	return mailer.Config{
		Driver:   m.Driver,
		Host:     m.Host,
		Port:     m.Port,
		Secure:   m.Secure,
		User:     m.User,
		Password: m.Password,
		From:     m.From,
		APIURL:   m.APIURL,
		APIKey:   m.APIKey,
	}
}

func (a *Application) startHTTPServer(ctx context.Context) {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := &http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server", zap.String("address", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()
}

func (a *Application) startSweeper(ctx context.Context) {
	a.sweeper.Start(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-a.sweeper.Done()
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	if a.pool != nil {
		a.pool.Close()
	}

	return appErr
}
