package service

import (
	"context"
	"sync"

	"github.com/pilotapp/crm-console/internal/domain/entity"
	domainGw "github.com/pilotapp/crm-console/internal/domain/gateway"
	"github.com/pilotapp/crm-console/pkg/apperror"
	"github.com/pilotapp/crm-console/pkg/listview"
	"github.com/pilotapp/crm-console/pkg/logger"
)

const (
	dashCustomers  = "customers"
	dashContacts   = "contacts"
	dashAFRData    = "afrdata"
	dashChecklists = "checklists"
)

// unknownCustomer is shown on contact and AFR rows whose customerId no longer
// resolves; missingCustomer is the checklist dashboard's equivalent
const (
	unknownCustomer = "Unknown"
	missingCustomer = "N/A"
)

// ListQuery carries one dashboard request. Nil Search/Filter leave the view's
// current term untouched; pointing at an empty string clears it. Page 0 keeps
// the current page.
type ListQuery struct {
	Page   int
	Search *string
	Filter *string
}

// AFRDataRow is an AFR record with the owning customer's name joined on for
// display and search
type AFRDataRow struct {
	entity.AFRData
	CustomerName string `json:"customerName"`
}

// CustomerOption is one entry of the customer selector
type CustomerOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// DashboardService renders the four entity dashboards. Each session keeps its
// own view state per dashboard (page, search, filter) so a search change on
// one operator's screen never moves another's page.
type DashboardService struct {
	customers  domainGw.CustomerGateway
	contacts   domainGw.ContactGateway
	afrData    domainGw.AFRDataGateway
	checklists domainGw.ChecklistGateway
	log        logger.Logger

	mu    sync.Mutex
	views map[string]map[string]*listview.View
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	customers domainGw.CustomerGateway,
	contacts domainGw.ContactGateway,
	afrData domainGw.AFRDataGateway,
	checklists domainGw.ChecklistGateway,
	log logger.Logger,
) *DashboardService {
	return &DashboardService{
		customers:  customers,
		contacts:   contacts,
		afrData:    afrData,
		checklists: checklists,
		log:        log,
		views:      make(map[string]map[string]*listview.View),
	}
}

// view returns the session's view for a dashboard, applying the query to it.
// The returned snapshot is what Build should run with.
func (s *DashboardService) view(sessionID, dashboard string, q ListQuery) (page int, search, filter string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byDash, ok := s.views[sessionID]
	if !ok {
		byDash = make(map[string]*listview.View)
		s.views[sessionID] = byDash
	}
	v, ok := byDash[dashboard]
	if !ok {
		v = listview.NewView()
		byDash[dashboard] = v
	}

	if q.Search != nil {
		v.SetSearch(*q.Search)
	}
	if q.Filter != nil {
		v.SetFilter(*q.Filter)
	}
	if q.Page > 0 {
		v.SetPage(q.Page)
	}
	return v.Page(), v.Search(), v.Filter()
}

// sync records the page Build actually rendered after clamping
func (s *DashboardService) sync(sessionID, dashboard string, rendered int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.views[sessionID][dashboard]; ok {
		v.Sync(rendered)
	}
}

// DropSession discards all view state of a session
func (s *DashboardService) DropSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.views, sessionID)
}

// customerNameIndex maps customerCode to airline name for the display joins
func (s *DashboardService) customerNameIndex(ctx context.Context) (map[string]string, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]string, len(customers))
	for _, c := range customers {
		index[c.CustomerCode] = c.AirlineName
	}
	return index, nil
}

// Customers renders the customer dashboard. The filter matches customerType;
// blank optional columns render as "-".
func (s *DashboardService) Customers(ctx context.Context, sessionID string, q ListQuery) (listview.Page[entity.Customer], error) {
	page, search, filter := s.view(sessionID, dashCustomers, q)

	customers, err := s.customers.List(ctx)
	if err != nil {
		return listview.Page[entity.Customer]{}, err
	}

	opts := listview.Options[entity.Customer]{
		Decorate: func(c entity.Customer) entity.Customer {
			c.IataCode = displayOrDash(c.IataCode)
			c.BusinessRegistrationNumber = displayOrDash(c.BusinessRegistrationNumber)
			c.CountryRegion = displayOrDash(c.CountryRegion)
			return c
		},
		Search: search,
		Page:   page,
	}
	if filter != "" {
		opts.Filter = func(c entity.Customer) bool { return string(c.CustomerType) == filter }
	}

	result := listview.Build(customers, opts)
	s.sync(sessionID, dashCustomers, result.CurrentPage)
	return result, nil
}

// Contacts renders the contact dashboard. The filter matches the owning
// customer's code; the customer name is joined live so renames show through.
func (s *DashboardService) Contacts(ctx context.Context, sessionID string, q ListQuery) (listview.Page[entity.Contact], error) {
	page, search, filter := s.view(sessionID, dashContacts, q)

	contacts, err := s.contacts.List(ctx, "")
	if err != nil {
		return listview.Page[entity.Contact]{}, err
	}
	names, err := s.customerNameIndex(ctx)
	if err != nil {
		return listview.Page[entity.Contact]{}, err
	}

	opts := listview.Options[entity.Contact]{
		Decorate: func(c entity.Contact) entity.Contact {
			if name, ok := names[c.CustomerID]; ok {
				c.CustomerName = name
			} else {
				c.CustomerName = unknownCustomer
			}
			return c
		},
		Search: search,
		Page:   page,
	}
	if filter != "" {
		opts.Filter = func(c entity.Contact) bool { return c.CustomerID == filter }
	}

	result := listview.Build(contacts, opts)
	s.sync(sessionID, dashContacts, result.CurrentPage)
	return result, nil
}

// AFRData renders the AFR data dashboard
func (s *DashboardService) AFRData(ctx context.Context, sessionID string, q ListQuery) (listview.Page[AFRDataRow], error) {
	page, search, filter := s.view(sessionID, dashAFRData, q)

	records, err := s.afrData.List(ctx)
	if err != nil {
		return listview.Page[AFRDataRow]{}, err
	}
	names, err := s.customerNameIndex(ctx)
	if err != nil {
		return listview.Page[AFRDataRow]{}, err
	}

	rows := make([]AFRDataRow, len(records))
	for i, r := range records {
		rows[i] = AFRDataRow{AFRData: r}
	}

	opts := listview.Options[AFRDataRow]{
		Decorate: func(r AFRDataRow) AFRDataRow {
			if name, ok := names[r.CustomerID]; ok {
				r.CustomerName = name
			} else {
				r.CustomerName = unknownCustomer
			}
			return r
		},
		Search: search,
		Page:   page,
	}
	if filter != "" {
		opts.Filter = func(r AFRDataRow) bool { return r.CustomerID == filter }
	}

	result := listview.Build(rows, opts)
	s.sync(sessionID, dashAFRData, result.CurrentPage)
	return result, nil
}

// Checklists renders the checklist dashboard. Rows whose customer no longer
// resolves show "N/A" rather than the stale snapshot.
func (s *DashboardService) Checklists(ctx context.Context, sessionID string, q ListQuery) (listview.Page[entity.Checklist], error) {
	page, search, filter := s.view(sessionID, dashChecklists, q)

	checklists, err := s.checklists.List(ctx, "")
	if err != nil {
		return listview.Page[entity.Checklist]{}, err
	}
	names, err := s.customerNameIndex(ctx)
	if err != nil {
		return listview.Page[entity.Checklist]{}, err
	}

	opts := listview.Options[entity.Checklist]{
		Decorate: func(c entity.Checklist) entity.Checklist {
			if name, ok := names[c.CustomerID]; ok {
				c.CustomerName = name
			} else {
				c.CustomerName = missingCustomer
			}
			return c
		},
		Search: search,
		Page:   page,
	}
	if filter != "" {
		opts.Filter = func(c entity.Checklist) bool { return c.CustomerID == filter }
	}

	result := listview.Build(checklists, opts)
	s.sync(sessionID, dashChecklists, result.CurrentPage)
	return result, nil
}

// CustomerOptions returns the customer selector entries for the standalone
// forms. An empty collection is reported as a conflict so the UI can offer the
// creation shortcut instead of an empty dropdown.
func (s *DashboardService) CustomerOptions(ctx context.Context) ([]CustomerOption, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, apperror.ErrNoCustomers
	}

	options := make([]CustomerOption, len(customers))
	for i := range customers {
		options[i] = CustomerOption{
			Value: customers[i].CustomerCode,
			Label: customers[i].DisplayLabel(),
		}
	}
	return options, nil
}

func displayOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
