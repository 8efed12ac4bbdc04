package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pilotapp/crm-console/internal/domain/entity"
	domainGw "github.com/pilotapp/crm-console/internal/domain/gateway"
)

type contactGateway struct {
	c *Client
}

// NewContactGateway creates a gateway for the /contacts collection
func NewContactGateway(c *Client) domainGw.ContactGateway {
	return &contactGateway{c: c}
}

func (g *contactGateway) List(ctx context.Context, customerID string) ([]entity.Contact, error) {
	var query url.Values
	if customerID != "" {
		query = url.Values{"customerId": {customerID}}
	}
	var contacts []entity.Contact
	if err := g.c.do(ctx, http.MethodGet, "/contacts", query, nil, &contacts); err != nil {
		return nil, g.c.fail("contacts", "fetch", err)
	}
	return contacts, nil
}

func (g *contactGateway) Get(ctx context.Context, id string) (*entity.Contact, error) {
	var contact entity.Contact
	if err := g.c.do(ctx, http.MethodGet, "/contacts/"+id, nil, nil, &contact); err != nil {
		return nil, g.c.fail("contacts", "fetch", err)
	}
	return &contact, nil
}

func (g *contactGateway) Create(ctx context.Context, contact *entity.Contact) (*entity.Contact, error) {
	var saved entity.Contact
	if err := g.c.do(ctx, http.MethodPost, "/contacts", nil, contact, &saved); err != nil {
		return nil, g.c.fail("contacts", "save", err)
	}
	return &saved, nil
}

func (g *contactGateway) Update(ctx context.Context, id string, contact *entity.Contact) (*entity.Contact, error) {
	var saved entity.Contact
	if err := g.c.do(ctx, http.MethodPut, "/contacts/"+id, nil, contact, &saved); err != nil {
		return nil, g.c.fail("contacts", "update", err)
	}
	return &saved, nil
}
