package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var purgeNow = time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)

func newTestPurger(t *testing.T) (*PendingUserPurger, *mock.MockUserRepository) {
	t.Helper()

	users := mock.NewMockUserRepository(gomock.NewController(t))
	p := NewPendingUserPurger(users, 10*time.Millisecond, logger.Nop())
	p.now = func() time.Time { return purgeNow }
	return p, users
}

func TestPendingUserPurger_Purge(t *testing.T) {
	t.Run("deletes with the current time", func(t *testing.T) {
		p, users := newTestPurger(t)
		users.EXPECT().DeleteExpiredPendingUsers(gomock.Any(), purgeNow).Return(int64(3), nil)

		p.purge(context.Background())
	})

	t.Run("storage error is tolerated", func(t *testing.T) {
		p, users := newTestPurger(t)
		users.EXPECT().DeleteExpiredPendingUsers(gomock.Any(), purgeNow).Return(int64(0), errors.New("db down"))

		assert.NotPanics(t, func() { p.purge(context.Background()) })
	})
}

func TestPendingUserPurger_RunTicksUntilCancelled(t *testing.T) {
	p, users := newTestPurger(t)

	ctx, cancel := context.WithCancel(context.Background())
	calls := make(chan struct{}, 10)
	users.EXPECT().
		DeleteExpiredPendingUsers(gomock.Any(), purgeNow).
		DoAndReturn(func(context.Context, time.Time) (int64, error) {
			select {
			case calls <- struct{}{}:
			default:
			}
			return 0, nil
		}).
		MinTimes(2)

	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("purger did not tick")
		}
	}
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("purger did not stop")
	}
}
