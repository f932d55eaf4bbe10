//go:build unit

package repository_test

import (
	"testing"

	"salon-scheduler/internal/infra"
	"salon-scheduler/internal/infra/repository"
	"salon-scheduler/internal/pkg/config"
	"salon-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyStore(t *testing.T) {
	store := repository.NewIdempotencyStore(config.NewTestConfig())
	key := uuid.New()
	rec := shared.IdempotencyRecord{
		Key:                 key,
		Endpoint:            "POST /api/appointments",
		RequestHash:         "abc",
		ResultAppointmentID: uuid.New(),
	}

	_, found := store.Get(key)
	assert.False(t, found)

	require.NoError(t, store.Put(rec))

	got, found := store.Get(key)
	require.True(t, found)
	assert.Equal(t, rec, *got)

	err := store.Put(rec)
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	assert.Equal(t, 1, store.Len())
}
