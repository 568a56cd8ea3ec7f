package sweeper

import (
	"context"
	"time"

	"github.com/GlebRadaev/globalfund/internal/config"
	"go.uber.org/zap"
)

//go:generate mockgen -source=sweeper.go -destination=mock_sweeper.go -package=sweeper

// visitorIdle is how long a client may stay quiet before its rate limiter
// bucket is dropped.
const visitorIdle = 10 * time.Minute

type Cleaner interface {
	ClearExpiredOTPs(ctx context.Context) (int64, error)
}

type VisitorPruner interface {
	Cleanup(idle time.Duration) int
}

// Service periodically clears expired password reset codes and prunes idle
// rate limiter buckets.
type Service struct {
	cleaner  Cleaner
	pruner   VisitorPruner
	interval time.Duration
	done     chan struct{}
}

// New builds a sweeper. pruner may be nil.
func New(cfg *config.Config, cleaner Cleaner, pruner VisitorPruner) *Service {
	return &Service{
		cleaner:  cleaner,
		pruner:   pruner,
		interval: cfg.OTPSweepInterval,
		done:     make(chan struct{}),
	}
}

// Start runs the sweep loop until ctx is canceled. A non-positive interval
// disables it.
func (s *Service) Start(ctx context.Context) {
	if s.interval <= 0 {
		zap.L().Info("OTP sweeper disabled")
		close(s.done)
		return
	}
	zap.L().Info("OTP sweeper started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

// Done is closed once the loop has returned.
func (s *Service) Done() <-chan struct{} {
	return s.done
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping OTP sweeper")
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil && ctx.Err() == nil {
				zap.L().Error("Failed to clear expired OTPs", zap.Error(err))
			}
		}
	}
}

// Sweep makes a single pass and reports how many codes were cleared.
func (s *Service) Sweep(ctx context.Context) (int64, error) {
	if s.pruner != nil {
		if n := s.pruner.Cleanup(visitorIdle); n > 0 {
			zap.L().Debug("Pruned idle rate limiter buckets", zap.Int("count", n))
		}
	}

	cleared, err := s.cleaner.ClearExpiredOTPs(ctx)
	if err != nil {
		return 0, err
	}
	if cleared > 0 {
		zap.L().Info("Cleared expired OTPs", zap.Int64("count", cleared))
	}
	return cleared, nil
}
