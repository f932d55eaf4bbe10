//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"salon-scheduler/internal/domain/appointment"
	"salon-scheduler/internal/domain/catalog"
	"salon-scheduler/internal/infra/repository"
	"salon-scheduler/internal/infra/uow"
	"salon-scheduler/internal/pkg/clock"
	"salon-scheduler/internal/pkg/config"
	"salon-scheduler/internal/pkg/metrics"
	"salon-scheduler/internal/usecase"
	"salon-scheduler/internal/usecase/commands"
	"salon-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

// fixture wires the real in-memory stack around a seeded catalog and a frozen clock.
type fixture struct {
	clock         *clock.MockClock
	catalog       *repository.Catalog
	metrics       *metrics.Metrics
	appointments  commands.AppointmentCommands
	cancellations commands.CancellationCommands
	proposals     commands.ProposalCommands
	clients       commands.CatalogCommands
	apptQueries   queries.AppointmentQueries
	reqQueries    queries.RequestQueries

	alice, ben                catalog.Client
	haircut, manicure, facial catalog.ServiceItem
}

var fixtureNow = time.Date(2025, time.December, 11, 9, 0, 0, 0, time.Local)

func dec12(hour, minute int) time.Time {
	return time.Date(2025, time.December, 12, hour, minute, 0, 0, time.Local)
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := config.NewTestConfig()
	cat, err := repository.NewCatalogFromConfig(cfg)
	require.NoError(t, err)

	u := uow.NewMemoryUoW(
		repository.NewAppointmentStore(),
		repository.NewCancellationQueue(),
		repository.NewProposalQueue(),
		cat,
		repository.NewIdempotencyStore(cfg),
	)
	clk := clock.NewMockClock(fixtureNow)
	m := metrics.NewMetrics("salon_test", prometheus.NewRegistry())
	validator := usecase.NewBookingValidator(clk, appointment.DefaultBusinessHours())

	f := &fixture{
		clock:         clk,
		catalog:       cat,
		metrics:       m,
		appointments:  commands.NewAppointmentCommands(u, validator, m, clk),
		cancellations: commands.NewCancellationCommands(u, m, clk),
		proposals:     commands.NewProposalCommands(u, validator, m, clk),
		clients:       commands.NewCatalogCommands(u, clk),
		apptQueries:   queries.NewAppointmentQueries(u),
		reqQueries:    queries.NewRequestQueries(u),
	}

	var ok bool
	f.alice, ok = cat.ClientByContact("alice@mail.com")
	require.True(t, ok)
	f.ben, ok = cat.ClientByContact("ben@mail.com")
	require.True(t, ok)
	f.haircut, ok = cat.ServiceByName("Haircut")
	require.True(t, ok)
	f.manicure, ok = cat.ServiceByName("Manicure")
	require.True(t, ok)
	f.facial, ok = cat.ServiceByName("Facial")
	require.True(t, ok)
	return f
}

func (f *fixture) book(t *testing.T, client catalog.Client, service catalog.ServiceItem, at time.Time) (*queries.AppointmentView, error) {
	t.Helper()
	res, err := f.appointments.Book(context.Background(), commands.BookAppointmentRequest{
		ClientID:    client.ID(),
		ServiceID:   service.ID(),
		ScheduledAt: at,
	}, uuid.Nil)
	if err != nil {
		return nil, err
	}
	return res.Appointment, nil
}

func (f *fixture) list(t *testing.T) []*queries.AppointmentView {
	t.Helper()
	list, err := f.apptQueries.List(context.Background())
	require.NoError(t, err)
	return list
}
