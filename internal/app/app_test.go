package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/globalfund/internal/config"
	"github.com/GlebRadaev/globalfund/internal/handlers"
	"github.com/GlebRadaev/globalfund/internal/repo"
	"github.com/GlebRadaev/globalfund/internal/service"
	"github.com/GlebRadaev/globalfund/internal/sweeper"
	"github.com/GlebRadaev/globalfund/pkg/mailer"
	"github.com/GlebRadaev/globalfund/pkg/metrics"
	"github.com/GlebRadaev/globalfund/pkg/ratelimit"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestGracefulShutdown() {
	cfg := &config.Config{
		Address:   "127.0.0.1:0",
		JWTSecret: "test-secret",
		JWTTTL:    time.Hour,
		OTPTTL:    10 * time.Minute,
	}
	limiter := ratelimit.New(1, 5)
	srv := service.New(cfg, &repo.Repositories{}, service.Deps{Mailer: mailer.NewLog()})

	s.app.cfg = cfg
	s.app.srv = srv
	s.app.api = handlers.New(srv, metrics.New(), limiter, []string{"*"}, false)
	s.app.sweeper = sweeper.New(cfg, srv.AuthService, limiter)

	ctx, cancel := context.WithCancel(context.Background())
	s.app.startHTTPServer(ctx)
	s.app.startSweeper(ctx)
	cancel()

	done := make(chan error, 1)
	go func() { done <- s.app.Wait(ctx, cancel) }()

	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(shutdownTimeout + time.Second):
		s.Fail("application did not stop")
	}
}

func (s *ApplicationSuite) TestMailConfig() {
	got := mailConfig(config.Mail{
		Driver:   "smtp",
		Host:     "smtp.example.com",
		Port:     465,
		Secure:   true,
		User:     "mailer",
		Password: "pw",
		From:     "no-reply@example.com",
	})

	s.Equal(mailer.DriverSMTP, got.Driver)
	s.Equal("smtp.example.com", got.Host)
	s.Equal(465, got.Port)
	s.True(got.Secure)
	s.Equal("no-reply@example.com", got.From)
}
