package alert

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// SweepFunc выполняет один проход проверки просроченных тревог и возвращает число эскалаций
type SweepFunc func(ctx context.Context) (int, error)

// Sweeper периодически запускает проверку просроченных тревог
type Sweeper struct {
	run      SweepFunc
	interval time.Duration
	logger   *logrus.Logger
}

// NewSweeper создает новый Sweeper
func NewSweeper(run SweepFunc, interval time.Duration, logger *logrus.Logger) *Sweeper {
	return &Sweeper{
		run:      run,
		interval: interval,
		logger:   logger,
	}
}

// Start запускает фоновую проверку до отмены контекста
func (s *Sweeper) Start(ctx context.Context) {
	s.logger.WithField("interval", s.interval).Info("Starting alert expiry sweeper")
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping alert expiry sweeper")
				return
			case <-ticker.C:
				s.RunOnce(ctx)
			}
		}
	}()
}

// RunOnce выполняет один проход, ошибки только логируются
func (s *Sweeper) RunOnce(ctx context.Context) int {
	n, err := s.run(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Alert expiry sweep failed")
	}
	return n
}
