package gateway

import (
	"context"
	"net/http"

	"github.com/pilotapp/crm-console/internal/domain/entity"
	domainGw "github.com/pilotapp/crm-console/internal/domain/gateway"
)

type afrDataGateway struct {
	c *Client
}

// NewAFRDataGateway creates a gateway for the /afrdata collection
func NewAFRDataGateway(c *Client) domainGw.AFRDataGateway {
	return &afrDataGateway{c: c}
}

func (g *afrDataGateway) List(ctx context.Context) ([]entity.AFRData, error) {
	var records []entity.AFRData
	if err := g.c.do(ctx, http.MethodGet, "/afrdata", nil, nil, &records); err != nil {
		return nil, g.c.fail("afrdata", "fetch", err)
	}
	return records, nil
}

func (g *afrDataGateway) Get(ctx context.Context, id string) (*entity.AFRData, error) {
	var record entity.AFRData
	if err := g.c.do(ctx, http.MethodGet, "/afrdata/"+id, nil, nil, &record); err != nil {
		return nil, g.c.fail("afrdata", "fetch", err)
	}
	return &record, nil
}

func (g *afrDataGateway) Create(ctx context.Context, data *entity.AFRData) (*entity.AFRData, error) {
	var saved entity.AFRData
	if err := g.c.do(ctx, http.MethodPost, "/afrdata", nil, data, &saved); err != nil {
		return nil, g.c.fail("afrdata", "save", err)
	}
	return &saved, nil
}

func (g *afrDataGateway) Update(ctx context.Context, id string, data *entity.AFRData) (*entity.AFRData, error) {
	var saved entity.AFRData
	if err := g.c.do(ctx, http.MethodPut, "/afrdata/"+id, nil, data, &saved); err != nil {
		return nil, g.c.fail("afrdata", "update", err)
	}
	return &saved, nil
}
