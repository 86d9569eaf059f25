package alert

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSweeper_RunsUntilCancelled(t *testing.T) {
	var calls atomic.Int32
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	s := NewSweeper(func(context.Context) (int, error) {
		calls.Add(1)
		return 0, nil
	}, 10*time.Millisecond, logger)

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
}

func TestSweeper_RunOnceSwallowsError(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	s := NewSweeper(func(context.Context) (int, error) {
		return 3, errors.New("db down")
	}, time.Minute, logger)

	assert.Equal(t, 3, s.RunOnce(context.Background()))
}

func TestHumanDuration(t *testing.T) {
	assert.Equal(t, "2 minutes", humanDuration(2*time.Minute))
	assert.Equal(t, "1 minute", humanDuration(time.Minute))
	assert.Equal(t, "1m30s", humanDuration(90*time.Second))
}
