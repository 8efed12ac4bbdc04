package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/pilotapp/crm-console/internal/domain/entity"
	"github.com/pilotapp/crm-console/pkg/logger"
	"github.com/pilotapp/crm-console/pkg/metrics"
)

var testMetrics = metrics.NewMetrics("service_test")

type fakeCustomerGateway struct {
	customers []entity.Customer
	failList  bool
	nextID    int
}

func (f *fakeCustomerGateway) List(ctx context.Context) ([]entity.Customer, error) {
	if f.failList {
		return nil, errors.New("upstream responded 500")
	}
	return append([]entity.Customer(nil), f.customers...), nil
}

func (f *fakeCustomerGateway) Get(ctx context.Context, id string) (*entity.Customer, error) {
	for i := range f.customers {
		if f.customers[i].ID == id {
			return &f.customers[i], nil
		}
	}
	return nil, errors.New("upstream responded 404")
}

func (f *fakeCustomerGateway) Create(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	f.nextID++
	saved := *customer
	saved.ID = strconv.Itoa(f.nextID)
	f.customers = append(f.customers, saved)
	return &saved, nil
}

func (f *fakeCustomerGateway) Update(ctx context.Context, id string, customer *entity.Customer) (*entity.Customer, error) {
	for i := range f.customers {
		if f.customers[i].ID == id {
			saved := *customer
			saved.ID = id
			f.customers[i] = saved
			return &saved, nil
		}
	}
	return nil, errors.New("upstream responded 404")
}

type fakeContactGateway struct {
	contacts    []entity.Contact
	failAtIndex int // -1 disables
	calls       int
	nextID      int
}

func (f *fakeContactGateway) List(ctx context.Context, customerID string) ([]entity.Contact, error) {
	if customerID == "" {
		return append([]entity.Contact(nil), f.contacts...), nil
	}
	var out []entity.Contact
	for _, c := range f.contacts {
		if c.CustomerID == customerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeContactGateway) Get(ctx context.Context, id string) (*entity.Contact, error) {
	for i := range f.contacts {
		if f.contacts[i].ID == id {
			return &f.contacts[i], nil
		}
	}
	return nil, errors.New("upstream responded 404")
}

func (f *fakeContactGateway) Create(ctx context.Context, contact *entity.Contact) (*entity.Contact, error) {
	call := f.calls
	f.calls++
	if f.failAtIndex >= 0 && call == f.failAtIndex {
		return nil, errors.New("upstream responded 500")
	}
	f.nextID++
	saved := *contact
	saved.ID = strconv.Itoa(f.nextID)
	f.contacts = append(f.contacts, saved)
	return &saved, nil
}

func (f *fakeContactGateway) Update(ctx context.Context, id string, contact *entity.Contact) (*entity.Contact, error) {
	for i := range f.contacts {
		if f.contacts[i].ID == id {
			saved := *contact
			saved.ID = id
			f.contacts[i] = saved
			return &saved, nil
		}
	}
	return nil, errors.New("upstream responded 404")
}

type fakeChecklistGateway struct {
	checklists []entity.Checklist
	nextID     int
}

func (f *fakeChecklistGateway) List(ctx context.Context, customerID string) ([]entity.Checklist, error) {
	if customerID == "" {
		return append([]entity.Checklist(nil), f.checklists...), nil
	}
	var out []entity.Checklist
	for _, c := range f.checklists {
		if c.CustomerID == customerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeChecklistGateway) Get(ctx context.Context, id string) (*entity.Checklist, error) {
	for i := range f.checklists {
		if f.checklists[i].ID == id {
			return &f.checklists[i], nil
		}
	}
	return nil, errors.New("upstream responded 404")
}

func (f *fakeChecklistGateway) Create(ctx context.Context, checklist *entity.Checklist) (*entity.Checklist, error) {
	f.nextID++
	saved := *checklist
	saved.ID = strconv.Itoa(f.nextID)
	f.checklists = append(f.checklists, saved)
	return &saved, nil
}

func (f *fakeChecklistGateway) Update(ctx context.Context, id string, checklist *entity.Checklist) (*entity.Checklist, error) {
	for i := range f.checklists {
		if f.checklists[i].ID == id {
			saved := *checklist
			saved.ID = id
			f.checklists[i] = saved
			return &saved, nil
		}
	}
	return nil, errors.New("upstream responded 404")
}

type fakeAFRDataGateway struct {
	records []entity.AFRData
	nextID  int
}

func (f *fakeAFRDataGateway) List(ctx context.Context) ([]entity.AFRData, error) {
	return append([]entity.AFRData(nil), f.records...), nil
}

func (f *fakeAFRDataGateway) Get(ctx context.Context, id string) (*entity.AFRData, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			return &f.records[i], nil
		}
	}
	return nil, errors.New("upstream responded 404")
}

func (f *fakeAFRDataGateway) Create(ctx context.Context, data *entity.AFRData) (*entity.AFRData, error) {
	f.nextID++
	saved := *data
	saved.ID = strconv.Itoa(f.nextID)
	f.records = append(f.records, saved)
	return &saved, nil
}

func (f *fakeAFRDataGateway) Update(ctx context.Context, id string, data *entity.AFRData) (*entity.AFRData, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			saved := *data
			saved.ID = id
			f.records[i] = saved
			return &saved, nil
		}
	}
	return nil, errors.New("upstream responded 404")
}

type fakeQuestionGateway struct {
	questions []entity.QuestionDefinition
	listCalls int
}

func (f *fakeQuestionGateway) List(ctx context.Context) ([]entity.QuestionDefinition, error) {
	f.listCalls++
	return append([]entity.QuestionDefinition(nil), f.questions...), nil
}

func (f *fakeQuestionGateway) Create(ctx context.Context, question *entity.QuestionDefinition) (*entity.QuestionDefinition, error) {
	saved := *question
	saved.ID = fmt.Sprintf("q%d", len(f.questions)+1)
	f.questions = append(f.questions, saved)
	return &saved, nil
}

type wizardFixture struct {
	svc        *WizardService
	store      *FlowStore
	customers  *fakeCustomerGateway
	contacts   *fakeContactGateway
	afrData    *fakeAFRDataGateway
	checklists *fakeChecklistGateway
	questions  *fakeQuestionGateway
}

func newWizardFixture() *wizardFixture {
	store := NewFlowStore(time.Hour, time.Hour)
	customers := &fakeCustomerGateway{}
	contacts := &fakeContactGateway{failAtIndex: -1}
	afrData := &fakeAFRDataGateway{}
	checklists := &fakeChecklistGateway{}
	questions := &fakeQuestionGateway{questions: []entity.QuestionDefinition{
		{ID: "q1", Question: "Contract signed?"},
		{ID: "q2", Question: "Fleet data received?"},
	}}

	questionSvc := NewQuestionService(questions, store, logger.NewNop())
	return &wizardFixture{
		svc: NewWizardService(
			customers, contacts, afrData, checklists,
			questionSvc, store, logger.NewNop(), testMetrics,
		),
		store:      store,
		customers:  customers,
		contacts:   contacts,
		afrData:    afrData,
		checklists: checklists,
		questions:  questions,
	}
}
