//go:build unit

package builder

import (
	"salon-scheduler/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ClientBuilder struct {
	ID    uuid.UUID
	Name  string
	Phone string
	Email string
}

func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		ID:    uuid.New(),
		Name:  "Alice Santos",
		Phone: "09171234567",
		Email: "alice@mail.com",
	}
}

func (b *ClientBuilder) With(mutate func(*ClientBuilder)) *ClientBuilder {
	mutate(b)
	return b
}

func (b *ClientBuilder) WithName(name string) *ClientBuilder {
	b.Name = name
	return b
}

func (b *ClientBuilder) BuildDomain() (catalog.Client, error) {
	return catalog.NewClient(b.ID, b.Name, b.Phone, b.Email)
}

// MustBuild is for fixtures where the builder defaults are known to be valid.
func (b *ClientBuilder) MustBuild() catalog.Client {
	c, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return c
}

type ServiceBuilder struct {
	ID    uuid.UUID
	Name  string
	Price decimal.Decimal
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		ID:    uuid.New(),
		Name:  "Haircut",
		Price: decimal.NewFromInt(200),
	}
}

func (b *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(b)
	return b
}

func (b *ServiceBuilder) BuildDomain() (catalog.ServiceItem, error) {
	return catalog.NewServiceItem(b.ID, b.Name, b.Price)
}

func (b *ServiceBuilder) MustBuild() catalog.ServiceItem {
	s, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return s
}
