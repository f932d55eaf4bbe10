package queries

import (
	"context"

	"salon-scheduler/internal/pkg/errs"
	"salon-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=appointment.go -destination=../../testutil/mock/queries/appointment_mock.go -package=queriesmock -build_constraint=unit

type AppointmentQueries interface {
	// List returns every appointment in chronological order
	List(ctx context.Context) ([]*AppointmentView, error)
	// Search filters by a case-insensitive client name substring, keeping chronological order
	Search(ctx context.Context, namePart string) ([]*AppointmentView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
}

type appointmentQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewAppointmentQueries(uow shared.UnitOfWork) AppointmentQueries {
	return &appointmentQueriesImpl{uow: uow}
}

func (q *appointmentQueriesImpl) List(ctx context.Context) ([]*AppointmentView, error) {
	var views []*AppointmentView
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, tx shared.ReadTx) error {
		views = newAppointmentViews(tx.Appointments().ToOrderedList())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *appointmentQueriesImpl) Search(ctx context.Context, namePart string) ([]*AppointmentView, error) {
	var views []*AppointmentView
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, tx shared.ReadTx) error {
		views = newAppointmentViews(tx.Appointments().SearchByClientName(namePart))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	var view *AppointmentView
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, tx shared.ReadTx) error {
		a, ok := tx.Appointments().FindByID(id)
		if !ok {
			return errs.ErrAppointmentNotFound
		}
		view = NewAppointmentView(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
