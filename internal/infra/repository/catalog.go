package repository

import (
	"log/slog"
	"strings"
	"sync"

	"salon-scheduler/internal/domain/catalog"
	"salon-scheduler/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Catalog is the client and service directory. Listing order is registration order.
type Catalog struct {
	mu       sync.RWMutex
	clients  []catalog.Client
	services []catalog.ServiceItem
}

func NewCatalog() *Catalog {
	return &Catalog{}
}

// NewCatalogFromConfig seeds the demo directory unless CATALOG_SEED is off.
func NewCatalogFromConfig(cfg config.Config) (*Catalog, error) {
	c := NewCatalog()
	if !cfg.Catalog.Seed {
		return c, nil
	}
	if err := c.Seed(); err != nil {
		return nil, err
	}
	slog.Info("catalog seeded", "clients", len(c.clients), "services", len(c.services))
	return c, nil
}

func (c *Catalog) Seed() error {
	seedClients := []struct{ name, phone, email string }{
		{"Alice", "09171234567", "alice@mail.com"},
		{"Ben", "09179876543", "ben@mail.com"},
	}
	for _, sc := range seedClients {
		client, err := catalog.NewClient(uuid.Nil, sc.name, sc.phone, sc.email)
		if err != nil {
			return err
		}
		c.SaveClient(client)
	}

	seedServices := []struct {
		name  string
		price int64
	}{
		{"Haircut", 200},
		{"Manicure", 350},
		{"Facial", 500},
	}
	for _, ss := range seedServices {
		service, err := catalog.NewServiceItem(uuid.Nil, ss.name, decimal.NewFromInt(ss.price))
		if err != nil {
			return err
		}
		c.SaveService(service)
	}
	return nil
}

// SaveClient inserts or replaces by ID.
func (c *Catalog) SaveClient(client catalog.Client) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.clients {
		if c.clients[i].SameAs(client) {
			c.clients[i] = client
			return
		}
	}
	c.clients = append(c.clients, client)
}

func (c *Catalog) SaveService(service catalog.ServiceItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.services {
		if c.services[i].ID() == service.ID() {
			c.services[i] = service
			return
		}
	}
	c.services = append(c.services, service)
}

func (c *Catalog) ClientByID(id uuid.UUID) (catalog.Client, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, client := range c.clients {
		if client.ID() == id {
			return client, true
		}
	}
	return catalog.Client{}, false
}

// ClientByContact looks a client up by phone number or email.
func (c *Catalog) ClientByContact(contact string) (catalog.Client, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, client := range c.clients {
		if client.HasContact(contact) {
			return client, true
		}
	}
	return catalog.Client{}, false
}

func (c *Catalog) ServiceByID(id uuid.UUID) (catalog.ServiceItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, s := range c.services {
		if s.ID() == id {
			return s, true
		}
	}
	return catalog.ServiceItem{}, false
}

func (c *Catalog) ServiceByName(name string) (catalog.ServiceItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	name = strings.TrimSpace(name)
	for _, s := range c.services {
		if strings.EqualFold(s.Name(), name) {
			return s, true
		}
	}
	return catalog.ServiceItem{}, false
}

func (c *Catalog) Clients() []catalog.Client {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]catalog.Client, len(c.clients))
	copy(out, c.clients)
	return out
}

func (c *Catalog) Services() []catalog.ServiceItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]catalog.ServiceItem, len(c.services))
	copy(out, c.services)
	return out
}
