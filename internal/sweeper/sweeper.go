// Package sweeper runs the automatic user cleanup on a cron schedule.
package sweeper

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const sweepTimeout = 30 * time.Second

type Cleaner interface {
	Cleanup(ctx context.Context) (int, error)
}

type Service struct {
	cron     *cron.Cron
	cleaner  Cleaner
	schedule string
}

// New validates schedule. An empty schedule disables the sweep.
func New(schedule string, cleaner Cleaner) (*Service, error) {
	s := &Service{
		cron:     cron.New(),
		cleaner:  cleaner,
		schedule: schedule,
	}
	if schedule == "" {
		return s, nil
	}
	if _, err := s.cron.AddFunc(schedule, s.sweep); err != nil {
		return nil, fmt.Errorf("invalid cleanup schedule %q: %w", schedule, err)
	}
	return s, nil
}

func (s *Service) Start(ctx context.Context) {
	if s.schedule == "" {
		zap.L().Info("Cleanup sweep disabled")
		return
	}
	zap.L().Info("Cleanup sweep started", zap.String("schedule", s.schedule))
	s.cron.Start()

	<-ctx.Done()
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	zap.L().Info("Cleanup sweep stopped")
}

func (s *Service) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	if _, err := s.Sweep(ctx); err != nil {
		zap.L().Error("Cleanup sweep failed", zap.Error(err))
	}
}

func (s *Service) Sweep(ctx context.Context) (int, error) {
	removed, err := s.cleaner.Cleanup(ctx)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		zap.L().Info("Cleanup sweep removed users", zap.Int("removed", removed))
	}
	return removed, nil
}
