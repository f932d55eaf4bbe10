package commands

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"

	"salon-scheduler/internal/domain/appointment"
	"salon-scheduler/internal/domain/catalog"
	"salon-scheduler/internal/pkg/errs"
	"salon-scheduler/internal/pkg/metrics"
	"salon-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

func lookupClient(tx shared.Tx, id uuid.UUID) (catalog.Client, error) {
	client, ok := tx.Catalog().ClientByID(id)
	if !ok {
		return catalog.Client{}, errs.ErrClientNotFound
	}
	return client, nil
}

func lookupService(tx shared.Tx, id uuid.UUID) (catalog.ServiceItem, error) {
	service, ok := tx.Catalog().ServiceByID(id)
	if !ok {
		return catalog.ServiceItem{}, errs.ErrServiceNotFound
	}
	return service, nil
}

// markDomain tags rule violations so callers can tell them apart from lookups and infrastructure failures.
func markDomain(err error) error {
	if err == nil {
		return nil
	}
	return errs.Mark(err, errs.ErrDomainValidation)
}

func bookingOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeCreated
	case errors.Is(err, appointment.ErrPastDate):
		return metrics.OutcomePastDate
	case errors.Is(err, appointment.ErrOutsideBusinessHours):
		return metrics.OutcomeOutsideHours
	case errors.Is(err, appointment.ErrSlotConflict):
		return metrics.OutcomeConflict
	default:
		return metrics.OutcomeInvalid
	}
}

func publishSizes(m *metrics.Metrics, tx shared.Tx) {
	m.SetQueueSizes(
		tx.Appointments().Len(),
		len(tx.Cancellations().List()),
		len(tx.Proposals().List()),
	)
}

func calculateRequestHash(req any) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
