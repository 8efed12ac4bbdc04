package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pilotapp/crm-console/internal/domain/entity"
	domainGw "github.com/pilotapp/crm-console/internal/domain/gateway"
)

type checklistGateway struct {
	c *Client
}

// NewChecklistGateway creates a gateway for the /checklists collection
func NewChecklistGateway(c *Client) domainGw.ChecklistGateway {
	return &checklistGateway{c: c}
}

func (g *checklistGateway) List(ctx context.Context, customerID string) ([]entity.Checklist, error) {
	var query url.Values
	if customerID != "" {
		query = url.Values{"customerId": {customerID}}
	}
	var checklists []entity.Checklist
	if err := g.c.do(ctx, http.MethodGet, "/checklists", query, nil, &checklists); err != nil {
		return nil, g.c.fail("checklists", "fetch", err)
	}
	return checklists, nil
}

func (g *checklistGateway) Get(ctx context.Context, id string) (*entity.Checklist, error) {
	var checklist entity.Checklist
	if err := g.c.do(ctx, http.MethodGet, "/checklists/"+id, nil, nil, &checklist); err != nil {
		return nil, g.c.fail("checklists", "fetch", err)
	}
	return &checklist, nil
}

func (g *checklistGateway) Create(ctx context.Context, checklist *entity.Checklist) (*entity.Checklist, error) {
	var saved entity.Checklist
	if err := g.c.do(ctx, http.MethodPost, "/checklists", nil, checklist, &saved); err != nil {
		return nil, g.c.fail("checklists", "save", err)
	}
	return &saved, nil
}

func (g *checklistGateway) Update(ctx context.Context, id string, checklist *entity.Checklist) (*entity.Checklist, error) {
	var saved entity.Checklist
	if err := g.c.do(ctx, http.MethodPut, "/checklists/"+id, nil, checklist, &saved); err != nil {
		return nil, g.c.fail("checklists", "update", err)
	}
	return &saved, nil
}

type questionGateway struct {
	c *Client
}

// NewQuestionGateway creates a gateway for the /checklistQuestions collection
func NewQuestionGateway(c *Client) domainGw.QuestionGateway {
	return &questionGateway{c: c}
}

func (g *questionGateway) List(ctx context.Context) ([]entity.QuestionDefinition, error) {
	var questions []entity.QuestionDefinition
	if err := g.c.do(ctx, http.MethodGet, "/checklistQuestions", nil, nil, &questions); err != nil {
		return nil, g.c.fail("checklistQuestions", "fetch", err)
	}
	return questions, nil
}

func (g *questionGateway) Create(ctx context.Context, question *entity.QuestionDefinition) (*entity.QuestionDefinition, error) {
	var saved entity.QuestionDefinition
	if err := g.c.do(ctx, http.MethodPost, "/checklistQuestions", nil, question, &saved); err != nil {
		return nil, g.c.fail("checklistQuestions", "save", err)
	}
	return &saved, nil
}
