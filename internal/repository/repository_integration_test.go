//go:build integration

package repository_test

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/safety_alert_system/internal/alert"
	"github.com/shenikar/safety_alert_system/internal/models"
	"github.com/shenikar/safety_alert_system/internal/repository"
	"github.com/shenikar/safety_alert_system/pkg/postgres"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, "postgis/postgis:16-3.4",
		tcpostgres.WithDatabase("safety"),
		tcpostgres.WithUsername("safety"),
		tcpostgres.WithPassword("safety"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	require.NoError(t, postgres.Migrate(dsn, "../../migrations", logger))

	pool, err := postgres.NewPostgresDB(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func newPendingAlert(userID string, triggeredAt time.Time, timeout time.Duration) *models.Alert {
	deadline := triggeredAt.Add(timeout)
	return &models.Alert{
		ID:               uuid.New(),
		UserID:           userID,
		Level:            models.AlertLevelWarning,
		Source:           models.AlertSourceLocation,
		Latitude:         5.0377,
		Longitude:        7.9128,
		RiskScore:        90,
		Reason:           "High-risk zone: Market Area",
		Status:           models.AlertStatusPendingResponse,
		TriggeredAt:      triggeredAt,
		ResponseDeadline: &deadline,
	}
}

func TestRepositories_Integration(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	t.Run("seeded zones are listed", func(t *testing.T) {
		zones, err := repository.NewZoneRepository(pool).ListZones(ctx)
		require.NoError(t, err)
		assert.Len(t, zones, 4)
	})

	t.Run("locations newest first", func(t *testing.T) {
		repo := repository.NewLocationRepository(pool)
		for i := 0; i < 3; i++ {
			require.NoError(t, repo.Append(ctx, &models.LocationSample{
				UserID:    "loc-user",
				Latitude:  5.03 + float64(i)*0.001,
				Longitude: 7.91,
				SpeedKmh:  4,
				Timestamp: now.Add(time.Duration(i) * time.Minute),
			}))
		}

		recent, err := repo.Recent(ctx, "loc-user", 2)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.True(t, recent[0].Timestamp.After(recent[1].Timestamp))
		assert.InDelta(t, 5.032, recent[0].Latitude, 1e-9)

		last, err := repo.Last(ctx, "loc-user")
		require.NoError(t, err)
		assert.Equal(t, recent[0].ID, last.ID)

		_, err = repo.Last(ctx, "nobody")
		assert.True(t, models.IsNotFound(err))
	})

	t.Run("create unless open under concurrency", func(t *testing.T) {
		repo := repository.NewAlertRepository(pool)

		var wg sync.WaitGroup
		var mu sync.Mutex
		created, conflicts := 0, 0
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.CreateUnlessOpen(ctx, newPendingAlert("race-user", now, 2*time.Minute), now.Add(-5*time.Minute))
				mu.Lock()
				defer mu.Unlock()
				if err == nil {
					created++
				} else if models.IsConflict(err) {
					conflicts++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, created)
		assert.Equal(t, 9, conflicts)
		open, err := repo.ListOpenByUser(ctx, "race-user")
		require.NoError(t, err)
		assert.Len(t, open, 1)
	})

	t.Run("escalate expired exactly once and finalize", func(t *testing.T) {
		repo := repository.NewAlertRepository(pool)
		a := newPendingAlert("sweep-user", now.Add(-3*time.Minute), 2*time.Minute)
		require.NoError(t, repo.Insert(ctx, a))

		expired, err := repo.ListExpiredPending(ctx, now, 10)
		require.NoError(t, err)
		require.NotEmpty(t, expired)

		esc := alert.Escalation{Condition: alert.EscalateIfExpired, At: now, Reason: "NO USER RESPONSE after 2 minutes"}
		updated, ok, err := repo.Escalate(ctx, a.ID, esc)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, updated.LoggedToOperator)
		assert.True(t, updated.RequiresImmediateAttention)
		assert.Equal(t, models.AlertStatusPendingResponse, updated.Status)
		assert.Equal(t, "[AUTO] NO USER RESPONSE after 2 minutes\n", updated.OperatorNotes)

		_, ok, err = repo.Escalate(ctx, a.ID, esc)
		require.NoError(t, err)
		assert.False(t, ok)

		total, critical, err := repo.CountForOperator(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, total, 1)
		assert.GreaterOrEqual(t, critical, 1)

		resolved, err := repo.Finalize(ctx, a.ID, alert.Finalization{
			Status:         models.AlertStatusResolved,
			At:             now,
			NotePrefix:     models.NoteResolved,
			Note:           "called the user",
			ClearAttention: true,
			Action:         "resolve",
		})
		require.NoError(t, err)
		assert.Equal(t, models.AlertStatusResolved, resolved.Status)
		assert.False(t, resolved.RequiresImmediateAttention)
		assert.True(t, resolved.LoggedToOperator)
		assert.Equal(t, "[OPERATOR RESOLVED] called the user\n[AUTO] NO USER RESPONSE after 2 minutes\n", resolved.OperatorNotes)

		_, err = repo.Finalize(ctx, a.ID, alert.Finalization{Status: models.AlertStatusFalseAlarm, At: now, Action: "mark false alarm"})
		assert.True(t, models.IsState(err))
	})

	t.Run("escalate races finalize on expired alert", func(t *testing.T) {
		repo := repository.NewAlertRepository(pool)
		esc := alert.Escalation{Condition: alert.EscalateIfExpired, At: now, Reason: "NO USER RESPONSE after 2 minutes"}
		confirm := alert.Finalization{
			Status:     models.AlertStatusResolved,
			At:         now,
			NotePrefix: models.NoteUserConfirmed,
			Note:       "walking home",
			Action:     "confirm safe",
		}

		for i := 0; i < 20; i++ {
			a := newPendingAlert("race-user", now.Add(-3*time.Minute), 2*time.Minute)
			require.NoError(t, repo.Insert(ctx, a))

			var (
				wg          sync.WaitGroup
				escalatedOK bool
				escErr      error
				finErr      error
			)
			start := make(chan struct{})
			wg.Add(2)
			go func() {
				defer wg.Done()
				<-start
				_, escalatedOK, escErr = repo.Escalate(ctx, a.ID, esc)
			}()
			go func() {
				defer wg.Done()
				<-start
				_, finErr = repo.Finalize(ctx, a.ID, confirm)
			}()
			close(start)
			wg.Wait()

			require.NoError(t, escErr)
			require.NoError(t, finErr)

			got, err := repo.GetByID(ctx, a.ID)
			require.NoError(t, err)
			assert.Equal(t, models.AlertStatusResolved, got.Status)
			assert.Equal(t, escalatedOK, got.LoggedToOperator, "iteration %d", i)
			assert.Contains(t, got.OperatorNotes, "[USER CONFIRMED SAFE] walking home")

			_, err = repo.Finalize(ctx, a.ID, alert.Finalization{
				Status:         models.AlertStatusResolved,
				At:             now,
				NotePrefix:     models.NoteResolved,
				Note:           "late",
				ClearAttention: true,
				Action:         "resolve",
			})
			assert.True(t, models.IsState(err), "iteration %d: %v", i, err)
		}
	})

	t.Run("voice alert lookup", func(t *testing.T) {
		repo := repository.NewAlertRepository(pool)
		a := newPendingAlert("voice-user", now, time.Minute)
		a.Source = models.AlertSourceVoice
		a.Status = models.AlertStatusActive
		a.ResponseDeadline = nil
		require.NoError(t, repo.Insert(ctx, a))

		ok, err := repo.HasActiveVoiceAlert(ctx, "voice-user", now.Add(-5*time.Minute))
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.HasActiveVoiceAlert(ctx, "voice-user", now.Add(time.Minute))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("get unknown alert", func(t *testing.T) {
		_, err := repository.NewAlertRepository(pool).GetByID(ctx, uuid.New())
		assert.True(t, models.IsNotFound(err))
	})
}
