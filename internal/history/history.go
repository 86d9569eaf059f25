// Package history - журнал точек трека пользователей (только добавление, упорядочен по времени).
package history

import (
	"context"
	"time"

	"github.com/shenikar/safety_alert_system/internal/models"
)

const (
	// RecentWindow - сколько последних точек нужно детекторам
	RecentWindow = 100
	// PatternWindow - глубина истории для анализа привычных часов активности
	PatternWindow = 7 * 24 * time.Hour
)

// Reader - чтение журнала. Recent и Since возвращают точки от новых к старым.
type Reader interface {
	Recent(ctx context.Context, userID string, limit int) ([]models.LocationSample, error)
	Since(ctx context.Context, userID string, since time.Time) ([]models.LocationSample, error)
}

// Store определяет контракт журнала точек. Last возвращает NotFoundError, если точек нет.
type Store interface {
	Reader
	Append(ctx context.Context, sample *models.LocationSample) error
	Last(ctx context.Context, userID string) (*models.LocationSample, error)
}

// Window - срез истории, по которому работают детекторы
type Window struct {
	Recent []models.LocationSample
	Week   []models.LocationSample
}

// LoadWindow читает окно истории для оценки в момент now
func LoadWindow(ctx context.Context, store Reader, userID string, now time.Time) (Window, error) {
	recent, err := store.Recent(ctx, userID, RecentWindow)
	if err != nil {
		return Window{}, err
	}
	week, err := store.Since(ctx, userID, now.Add(-PatternWindow))
	if err != nil {
		return Window{}, err
	}
	return Window{Recent: recent, Week: week}, nil
}
