package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ServiceItem struct {
	id    uuid.UUID
	name  string
	price decimal.Decimal
}

func NewServiceItem(id uuid.UUID, name string, price decimal.Decimal) (ServiceItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ServiceItem{}, ErrEmptyServiceName
	}
	if price.IsNegative() {
		return ServiceItem{}, ErrNegativePrice
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return ServiceItem{id: id, name: name, price: price}, nil
}

func (s ServiceItem) ID() uuid.UUID          { return s.id }
func (s ServiceItem) Name() string           { return s.name }
func (s ServiceItem) Price() decimal.Decimal { return s.price }
func (s ServiceItem) IsZero() bool           { return s.id == uuid.Nil }
