//go:build unit

package proposal_test

import (
	"strings"
	"testing"

	"salon-scheduler/internal/domain/catalog"
	"salon-scheduler/internal/domain/proposal"
	"salon-scheduler/internal/testutil/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	client := builder.NewClientBuilder().MustBuild()
	service := builder.NewServiceBuilder().MustBuild()
	preferred := builder.At(1, 15, 0)

	t.Run("basic success case", func(t *testing.T) {
		p, err := proposal.NewRequest(client, service, preferred, "Please use organic products", builder.BaseTime)
		require.NoError(t, err)

		assert.Equal(t, client, p.Client())
		assert.Equal(t, preferred, p.PreferredAt())
		assert.Equal(t, "Please use organic products", p.DisplayMessage())
		assert.Equal(t, builder.BaseTime, p.SubmittedAt())
	})

	t.Run("empty message displays N/A", func(t *testing.T) {
		p, err := proposal.NewRequest(client, service, preferred, "", builder.BaseTime)
		require.NoError(t, err)
		assert.Equal(t, "N/A", p.DisplayMessage())
	})

	t.Run("validation", func(t *testing.T) {
		_, err := proposal.NewRequest(catalog.Client{}, service, preferred, "", builder.BaseTime)
		assert.ErrorIs(t, err, proposal.ErrMissingClient)

		_, err = proposal.NewRequest(client, catalog.ServiceItem{}, preferred, "", builder.BaseTime)
		assert.ErrorIs(t, err, proposal.ErrMissingService)

		_, err = proposal.NewRequest(client, service, preferred, strings.Repeat("x", 5000), builder.BaseTime)
		assert.NoError(t, err, "message length is not a domain rule")
	})

	t.Run("client correction", func(t *testing.T) {
		p, err := proposal.NewRequest(client, service, preferred, "", builder.BaseTime)
		require.NoError(t, err)

		corrected, err := client.WithDetails(client.Name(), "09170000000", client.Email())
		require.NoError(t, err)

		assert.True(t, p.ApplyClientDetails(corrected))
		assert.Equal(t, "09170000000", p.Client().Phone())
		assert.False(t, p.ApplyClientDetails(corrected))
	})
}
