package zoneindex

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/safety_alert_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Loader отдает актуальный набор геозон из хранилища
type Loader interface {
	ListZones(ctx context.Context) ([]models.RiskZone, error)
}

// Refresher периодически перечитывает зоны и подменяет содержимое индекса
type Refresher struct {
	index    *Index
	loader   Loader
	interval time.Duration
	logger   *logrus.Logger
}

// NewRefresher создает Refresher
func NewRefresher(index *Index, loader Loader, interval time.Duration, logger *logrus.Logger) *Refresher {
	return &Refresher{
		index:    index,
		loader:   loader,
		interval: interval,
		logger:   logger,
	}
}

// Load загружает зоны один раз
func (r *Refresher) Load(ctx context.Context) error {
	zones, err := r.loader.ListZones(ctx)
	if err != nil {
		return fmt.Errorf("failed to load risk zones: %w", err)
	}
	r.index.Replace(zones)
	r.logger.WithField("zones", len(zones)).Debug("Risk zone index refreshed")
	return nil
}

// Start запускает горутину периодического обновления индекса
func (r *Refresher) Start(ctx context.Context) {
	r.logger.Info("Starting zone index refresher...")
	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				r.logger.Info("Stopping zone index refresher.")
				return
			case <-ticker.C:
				if err := r.Load(ctx); err != nil {
					// Индекс продолжает работать на последнем удачном снимке
					r.logger.WithError(err).Warn("Zone index refresh failed")
				}
			}
		}
	}()
}
