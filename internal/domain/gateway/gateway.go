package gateway

import (
	"context"

	"github.com/pilotapp/crm-console/internal/domain/entity"
)

// The gateways wrap the REST collections of the upstream CRUD backend. The
// backend is a black box: every list call returns the full collection and all
// filtering/pagination happens client-side in the console.

// CustomerGateway wraps the /customers collection
type CustomerGateway interface {
	List(ctx context.Context) ([]entity.Customer, error)
	Get(ctx context.Context, id string) (*entity.Customer, error)
	Create(ctx context.Context, customer *entity.Customer) (*entity.Customer, error)
	Update(ctx context.Context, id string, customer *entity.Customer) (*entity.Customer, error)
}

// ContactGateway wraps the /contacts collection. customerID filters by the
// owning customer's code when non-empty.
type ContactGateway interface {
	List(ctx context.Context, customerID string) ([]entity.Contact, error)
	Get(ctx context.Context, id string) (*entity.Contact, error)
	Create(ctx context.Context, contact *entity.Contact) (*entity.Contact, error)
	Update(ctx context.Context, id string, contact *entity.Contact) (*entity.Contact, error)
}

// ChecklistGateway wraps the /checklists collection
type ChecklistGateway interface {
	List(ctx context.Context, customerID string) ([]entity.Checklist, error)
	Get(ctx context.Context, id string) (*entity.Checklist, error)
	Create(ctx context.Context, checklist *entity.Checklist) (*entity.Checklist, error)
	Update(ctx context.Context, id string, checklist *entity.Checklist) (*entity.Checklist, error)
}

// AFRDataGateway wraps the /afrdata collection
type AFRDataGateway interface {
	List(ctx context.Context) ([]entity.AFRData, error)
	Get(ctx context.Context, id string) (*entity.AFRData, error)
	Create(ctx context.Context, data *entity.AFRData) (*entity.AFRData, error)
	Update(ctx context.Context, id string, data *entity.AFRData) (*entity.AFRData, error)
}

// QuestionGateway wraps the append-only /checklistQuestions collection.
// Question IDs are assigned by the backend on create.
type QuestionGateway interface {
	List(ctx context.Context) ([]entity.QuestionDefinition, error)
	Create(ctx context.Context, question *entity.QuestionDefinition) (*entity.QuestionDefinition, error)
}
