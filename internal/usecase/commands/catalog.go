package commands

import (
	"context"
	"log/slog"

	"salon-scheduler/internal/pkg/clock"
	"salon-scheduler/internal/pkg/errs"
	"salon-scheduler/internal/pkg/patch"
	"salon-scheduler/internal/usecase/queries"
	"salon-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=catalog.go -destination=../../testutil/mock/commands/catalog_mock.go -package=commandsmock -build_constraint=unit

// CorrectContactRequest is a partial update; nil or blank fields keep their current value.
type CorrectContactRequest struct {
	Name  *string
	Phone *string
	Email *string
}

type CatalogCommands interface {
	// CorrectContact fixes a client's details and refreshes every stored appointment and queued
	// proposal that refers to the client
	CorrectContact(ctx context.Context, clientID uuid.UUID, req CorrectContactRequest) (*queries.ClientView, error)
}

type catalogCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCatalogCommands(uow shared.UnitOfWork, clk clock.Clock) CatalogCommands {
	return &catalogCommandsImpl{uow: uow, clock: clk}
}

func (uc *catalogCommandsImpl) CorrectContact(ctx context.Context, clientID uuid.UUID, req CorrectContactRequest) (*queries.ClientView, error) {
	var view queries.ClientView
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := lookupClient(tx, clientID)
		if err != nil {
			return err
		}

		updated, err := current.WithDetails(
			patch.CoalesceString(req.Name, current.Name()),
			patch.CoalesceString(req.Phone, current.Phone()),
			patch.CoalesceString(req.Email, current.Email()),
		)
		if err != nil {
			return markDomain(err)
		}
		tx.Catalog().SaveClient(updated)

		now := uc.clock.Now()
		touched := 0
		for _, appt := range tx.Appointments().ToOrderedList() {
			if appt.ApplyClientDetails(updated, now) {
				touched++
			}
		}
		for _, p := range tx.Proposals().List() {
			p.ApplyClientDetails(updated)
		}

		slog.InfoContext(ctx, "client contact corrected", "client_id", clientID, "appointments_updated", touched)
		view = queries.NewClientView(updated)
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "correct contact")
	}
	return &view, nil
}
