//go:build unit

package catalog_test

import (
	"testing"

	"salon-scheduler/internal/domain/catalog"
	"salon-scheduler/internal/testutil/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		c, err := builder.NewClientBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, c.ID())
		assert.Equal(t, "Alice Santos", c.Name())
		assert.Equal(t, "09171234567", c.Phone())
		assert.Equal(t, "alice@mail.com", c.Email())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.ClientBuilder)
			errIs  error
		}{
			{name: "blank name", mutate: func(b *builder.ClientBuilder) { b.Name = "   " }, errIs: catalog.ErrEmptyClientName},
			{name: "no contact at all", mutate: func(b *builder.ClientBuilder) { b.Phone, b.Email = "", "" }, errIs: catalog.ErrMissingContact},
			{name: "phone only", mutate: func(b *builder.ClientBuilder) { b.Email = "" }},
			{name: "email only", mutate: func(b *builder.ClientBuilder) { b.Phone = "" }},
			{name: "nil id gets generated", mutate: func(b *builder.ClientBuilder) { b.ID = uuid.Nil }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				c, err := builder.NewClientBuilder().With(tc.mutate).BuildDomain()
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
					return
				}
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, c.ID())
			})
		}
	})

	t.Run("contact lookup", func(t *testing.T) {
		c := builder.NewClientBuilder().MustBuild()

		assert.True(t, c.HasContact("09171234567"))
		assert.True(t, c.HasContact("ALICE@mail.com"))
		assert.False(t, c.HasContact(""))
		assert.False(t, c.HasContact("09179876543"))
	})

	t.Run("corrected details keep identity", func(t *testing.T) {
		c := builder.NewClientBuilder().MustBuild()

		updated, err := c.WithDetails("Alice Reyes", c.Phone(), "alice.reyes@mail.com")
		require.NoError(t, err)

		assert.True(t, updated.SameAs(c))
		assert.Equal(t, "Alice Reyes", updated.Name())
		assert.NotEqual(t, c, updated)
	})
}

func TestServiceItem(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		s, err := builder.NewServiceBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Haircut", s.Name())
		assert.True(t, decimal.NewFromInt(200).Equal(s.Price()))
	})

	t.Run("free service is allowed", func(t *testing.T) {
		_, err := builder.NewServiceBuilder().With(func(b *builder.ServiceBuilder) { b.Price = decimal.Zero }).BuildDomain()
		assert.NoError(t, err)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := builder.NewServiceBuilder().With(func(b *builder.ServiceBuilder) { b.Price = decimal.NewFromInt(-1) }).BuildDomain()
		assert.ErrorIs(t, err, catalog.ErrNegativePrice)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := builder.NewServiceBuilder().With(func(b *builder.ServiceBuilder) { b.Name = "" }).BuildDomain()
		assert.ErrorIs(t, err, catalog.ErrEmptyServiceName)
	})
}
