//go:build unit

package uow_test

import (
	"context"
	"sync"
	"testing"

	"salon-scheduler/internal/infra/repository"
	"salon-scheduler/internal/infra/uow"
	"salon-scheduler/internal/pkg/config"
	"salon-scheduler/internal/testutil/builder"
	"salon-scheduler/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUoW() *uow.MemoryUoW {
	return uow.NewMemoryUoW(
		repository.NewAppointmentStore(),
		repository.NewCancellationQueue(),
		repository.NewProposalQueue(),
		repository.NewCatalog(),
		repository.NewIdempotencyStore(config.NewTestConfig()),
	)
}

func TestMemoryUoW_Within(t *testing.T) {
	t.Run("check-then-insert never double books", func(t *testing.T) {
		u := newUoW()
		client := builder.NewClientBuilder().MustBuild()
		at := builder.At(1, 10, 0)

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = u.Within(context.Background(), func(_ context.Context, tx shared.Tx) error {
					if tx.Appointments().HasConflict(client.ID(), at) {
						return nil
					}
					tx.Appointments().InsertSorted(builder.NewAppointmentBuilder().WithClient(client).WithScheduledAt(at).MustBuild())
					return nil
				})
			}()
		}
		wg.Wait()

		err := u.WithinReadOnly(context.Background(), func(_ context.Context, tx shared.ReadTx) error {
			assert.Equal(t, 1, tx.Appointments().Len())
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("callback error is returned", func(t *testing.T) {
		u := newUoW()
		sentinel := assert.AnError

		err := u.Within(context.Background(), func(context.Context, shared.Tx) error { return sentinel })
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("cancelled context never runs the callback", func(t *testing.T) {
		u := newUoW()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := false
		err := u.Within(ctx, func(context.Context, shared.Tx) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)

		err = u.WithinReadOnly(ctx, func(context.Context, shared.ReadTx) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})
}
