package catalog

import (
	"strings"

	"github.com/google/uuid"
)

// Client is a value snapshot; two clients are the same person when their IDs match.
type Client struct {
	id    uuid.UUID
	name  string
	phone string
	email string
}

func NewClient(id uuid.UUID, name, phone, email string) (Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Client{}, ErrEmptyClientName
	}

	phone = strings.TrimSpace(phone)
	email = strings.TrimSpace(email)
	if phone == "" && email == "" {
		return Client{}, ErrMissingContact
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return Client{id: id, name: name, phone: phone, email: email}, nil
}

func (c Client) ID() uuid.UUID        { return c.id }
func (c Client) Name() string         { return c.name }
func (c Client) Phone() string        { return c.phone }
func (c Client) Email() string        { return c.email }
func (c Client) IsZero() bool         { return c.id == uuid.Nil }
func (c Client) SameAs(o Client) bool { return c.id == o.id }

// HasContact matches a phone number exactly or an email case-insensitively.
func (c Client) HasContact(contact string) bool {
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return false
	}
	return c.phone == contact || strings.EqualFold(c.email, contact)
}

// WithDetails returns a corrected copy that keeps the same identity.
func (c Client) WithDetails(name, phone, email string) (Client, error) {
	return NewClient(c.id, name, phone, email)
}
