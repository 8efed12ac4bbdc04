package gateway

import (
	"context"
	"net/http"

	"github.com/pilotapp/crm-console/internal/domain/entity"
	domainGw "github.com/pilotapp/crm-console/internal/domain/gateway"
)

type customerGateway struct {
	c *Client
}

// NewCustomerGateway creates a gateway for the /customers collection
func NewCustomerGateway(c *Client) domainGw.CustomerGateway {
	return &customerGateway{c: c}
}

func (g *customerGateway) List(ctx context.Context) ([]entity.Customer, error) {
	var customers []entity.Customer
	if err := g.c.do(ctx, http.MethodGet, "/customers", nil, nil, &customers); err != nil {
		return nil, g.c.fail("customers", "fetch", err)
	}
	return customers, nil
}

func (g *customerGateway) Get(ctx context.Context, id string) (*entity.Customer, error) {
	var customer entity.Customer
	if err := g.c.do(ctx, http.MethodGet, "/customers/"+id, nil, nil, &customer); err != nil {
		return nil, g.c.fail("customers", "fetch", err)
	}
	return &customer, nil
}

func (g *customerGateway) Create(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	var saved entity.Customer
	if err := g.c.do(ctx, http.MethodPost, "/customers", nil, customer, &saved); err != nil {
		return nil, g.c.fail("customers", "save", err)
	}
	return &saved, nil
}

func (g *customerGateway) Update(ctx context.Context, id string, customer *entity.Customer) (*entity.Customer, error) {
	var saved entity.Customer
	if err := g.c.do(ctx, http.MethodPut, "/customers/"+id, nil, customer, &saved); err != nil {
		return nil, g.c.fail("customers", "update", err)
	}
	return &saved, nil
}
