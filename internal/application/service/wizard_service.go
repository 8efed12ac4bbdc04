package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pilotapp/crm-console/internal/domain/entity"
	"github.com/pilotapp/crm-console/internal/domain/enum"
	domainGw "github.com/pilotapp/crm-console/internal/domain/gateway"
	"github.com/pilotapp/crm-console/pkg/apperror"
	"github.com/pilotapp/crm-console/pkg/logger"
	"github.com/pilotapp/crm-console/pkg/metrics"
)

// TargetExit marks a navigation target that leaves the wizard (or returns a
// standalone form to its own dashboard)
const TargetExit = "exit"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// WizardService sequences the customer creation flow: Customer, then Contact,
// then AFR Data, then Checklist. It owns the submission gate (validation, customer
// selection, never advancing on gateway failure) and the step transition
// policy for both flow modes.
type WizardService struct {
	customers  domainGw.CustomerGateway
	contacts   domainGw.ContactGateway
	afrData    domainGw.AFRDataGateway
	checklists domainGw.ChecklistGateway
	questions  *QuestionService
	store      *FlowStore
	log        logger.Logger
	metrics    *metrics.Metrics
}

// NewWizardService creates a new wizard service
func NewWizardService(
	customers domainGw.CustomerGateway,
	contacts domainGw.ContactGateway,
	afrData domainGw.AFRDataGateway,
	checklists domainGw.ChecklistGateway,
	questions *QuestionService,
	store *FlowStore,
	log logger.Logger,
	m *metrics.Metrics,
) *WizardService {
	return &WizardService{
		customers:  customers,
		contacts:   contacts,
		afrData:    afrData,
		checklists: checklists,
		questions:  questions,
		store:      store,
		log:        log,
		metrics:    m,
	}
}

// Navigation describes where Previous / Save & Next / Skip lead from a step.
// Targets are step names or TargetExit; Skip is empty where skipping is not
// offered.
type Navigation struct {
	Previous string `json:"previous"`
	Next     string `json:"next"`
	Skip     string `json:"skip,omitempty"`
}

// Navigation returns the transition targets for a step in the given mode. In
// standalone mode every direction returns to the entity's own dashboard.
func (s *WizardService) Navigation(step enum.Step, mode enum.FlowMode) (*Navigation, error) {
	if !step.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown step")
	}
	if !mode.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown flow mode")
	}

	if mode == enum.ModeStandalone {
		return &Navigation{Previous: TargetExit, Next: TargetExit}, nil
	}

	switch step {
	case enum.StepCustomer:
		// cancelling the first step exits the wizard; no skip here
		return &Navigation{Previous: TargetExit, Next: enum.StepContact.String()}, nil
	case enum.StepContact:
		return &Navigation{
			Previous: enum.StepCustomer.String(),
			Next:     enum.StepAFRData.String(),
			Skip:     enum.StepAFRData.String(),
		}, nil
	case enum.StepAFRData:
		return &Navigation{
			Previous: enum.StepContact.String(),
			Next:     enum.StepChecklist.String(),
			Skip:     enum.StepChecklist.String(),
		}, nil
	default: // StepChecklist
		return &Navigation{
			Previous: enum.StepAFRData.String(),
			Next:     TargetExit,
			Skip:     TargetExit,
		}, nil
	}
}

// CustomerInput is the wizard's first-step form
type CustomerInput struct {
	AirlineName                string
	CustomerCode               string
	IataCode                   string
	BusinessRegistrationNumber string
	CountryRegion              string
	FleetSize                  string
	Industry                   string
	CustomerType               string
	Comments                   []entity.CommentItem
}

func validateCustomerInput(input *CustomerInput) []apperror.FieldError {
	var errs []apperror.FieldError

	if strings.TrimSpace(input.AirlineName) == "" {
		errs = append(errs, apperror.FieldError{Field: "airlineName", Message: "Airline Name is required."})
	}
	if strings.TrimSpace(input.CustomerCode) == "" {
		errs = append(errs, apperror.FieldError{Field: "customerCode", Message: "Customer Code is required."})
	}
	if input.CustomerType == "" {
		errs = append(errs, apperror.FieldError{Field: "customerType", Message: "Customer Type is required."})
	} else if !enum.CustomerType(input.CustomerType).IsValid() {
		errs = append(errs, apperror.FieldError{Field: "customerType", Message: "Unknown customer type."})
	}
	if input.Industry != "" && !enum.Industry(input.Industry).IsValid() {
		errs = append(errs, apperror.FieldError{Field: "industry", Message: "Unknown industry."})
	}
	if input.FleetSize != "" {
		if n, err := strconv.Atoi(input.FleetSize); err != nil || n < 1 {
			errs = append(errs, apperror.FieldError{Field: "fleetSize", Message: "Fleet Size must be a number of at least 1."})
		}
	}
	for i, c := range input.Comments {
		if len(c.Comment) > 500 {
			errs = append(errs, apperror.FieldError{
				Field:   fmt.Sprintf("comments[%d].comment", i),
				Message: "Comment cannot exceed 500 characters.",
			})
		}
	}
	return errs
}

// SubmitCustomer validates and persists the wizard's first step. On success
// the customer is recorded in the flow state, any contacts accumulated by a
// previous run are dropped, and the next step is Contact.
func (s *WizardService) SubmitCustomer(ctx context.Context, sessionID string, input *CustomerInput) (*entity.Customer, string, error) {
	if errs := validateCustomerInput(input); len(errs) > 0 {
		return nil, "", apperror.NewValidationError(errs)
	}

	fleetSize := input.FleetSize
	if fleetSize == "" {
		fleetSize = "1"
	}
	industry := input.Industry
	if industry == "" {
		industry = enum.IndustryAirline.String()
	}

	// drop empty comments before persistence
	comments := make([]entity.CommentItem, 0, len(input.Comments))
	for _, c := range input.Comments {
		if strings.TrimSpace(c.Comment) != "" {
			comments = append(comments, c)
		}
	}

	customer := &entity.Customer{
		AirlineName:                strings.TrimSpace(input.AirlineName),
		CustomerCode:               strings.TrimSpace(input.CustomerCode),
		IataCode:                   strings.ToUpper(strings.TrimSpace(input.IataCode)),
		BusinessRegistrationNumber: input.BusinessRegistrationNumber,
		CountryRegion:              input.CountryRegion,
		FleetSize:                  fleetSize,
		Industry:                   enum.Industry(industry),
		CustomerType:               enum.CustomerType(input.CustomerType),
		Comments:                   comments,
	}

	saved, err := s.customers.Create(ctx, customer)
	if err != nil {
		// step does not advance; the caller keeps the form input for retry
		return nil, "", err
	}

	s.store.SetCustomerData(sessionID, saved)
	s.store.ResetContactList(sessionID)
	s.metrics.WizardSteps.WithLabelValues(enum.StepCustomer.String()).Inc()
	s.log.Info("wizard customer saved", "session", sessionID, "customerCode", saved.CustomerCode)

	return saved, enum.StepContact.String(), nil
}

// resolveCustomer applies the step-entry rules: wizard mode prefers the
// customer recorded in the flow state, standalone mode requires an explicit
// selection against the live customer list.
func (s *WizardService) resolveCustomer(ctx context.Context, sessionID string, mode enum.FlowMode, customerID string) (*entity.Customer, error) {
	if mode == enum.ModeWizard {
		if state := s.store.State(sessionID); state.CustomerData != nil {
			return state.CustomerData, nil
		}
		if customerID == "" {
			return nil, apperror.NewBadRequestError("Customer Code is missing.")
		}
	}

	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, apperror.ErrNoCustomers
	}
	if customerID == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "customerId", Message: "Please select a customer."},
		})
	}
	for i := range customers {
		if customers[i].CustomerCode == customerID {
			return &customers[i], nil
		}
	}
	return nil, apperror.NewNotFoundError("Customer " + customerID)
}

// ContactInput is one contact sub-form of the batch contact step. IsPrimary
// is deliberately a pointer: it must be answered yes or no explicitly.
type ContactInput struct {
	FirstName    string
	LastName     string
	EmailAddress string
	IsPrimary    *bool
	PhoneNumbers []entity.PhoneNumber
}

func validateContactInput(index int, input *ContactInput) []apperror.FieldError {
	field := func(name string) string {
		return fmt.Sprintf("contacts[%d].%s", index, name)
	}

	var errs []apperror.FieldError
	if strings.TrimSpace(input.FirstName) == "" {
		errs = append(errs, apperror.FieldError{Field: field("firstName"), Message: "First Name is required."})
	}
	if strings.TrimSpace(input.LastName) == "" {
		errs = append(errs, apperror.FieldError{Field: field("lastName"), Message: "Last Name is required."})
	}
	if !emailPattern.MatchString(input.EmailAddress) {
		errs = append(errs, apperror.FieldError{Field: field("emailAddress"), Message: "A valid email address is required."})
	}
	if input.IsPrimary == nil {
		errs = append(errs, apperror.FieldError{Field: field("isPrimary"), Message: "Primary contact must be answered yes or no."})
	}
	if len(input.PhoneNumbers) == 0 {
		errs = append(errs, apperror.FieldError{Field: field("phoneNumbers"), Message: "At least one phone number is required."})
	}
	for i, p := range input.PhoneNumbers {
		if !p.Type.IsValid() {
			errs = append(errs, apperror.FieldError{
				Field:   fmt.Sprintf("contacts[%d].phoneNumbers[%d].type", index, i),
				Message: "Unknown phone number type.",
			})
		}
		if strings.TrimSpace(p.Number) == "" {
			errs = append(errs, apperror.FieldError{
				Field:   fmt.Sprintf("contacts[%d].phoneNumbers[%d].number", index, i),
				Message: "Phone number is required.",
			})
		}
	}
	return errs
}

// ContactBatchResult reports a batch contact submission. When FailedIndex is
// set, contacts before it were persisted and contacts after it were never
// attempted; there is no rollback.
type ContactBatchResult struct {
	Saved       []entity.Contact `json:"saved"`
	SavedCount  int              `json:"saved_count"`
	FailedIndex *int             `json:"failed_index,omitempty"`
	NextStep    string           `json:"next_step,omitempty"`
}

// SubmitContacts validates and persists the contact step. Persistence is
// strictly sequential so a mid-batch failure identifies exactly which contact
// failed and where a retry would resume.
func (s *WizardService) SubmitContacts(ctx context.Context, sessionID string, mode enum.FlowMode, customerID string, inputs []ContactInput) (*ContactBatchResult, error) {
	if len(inputs) == 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "contacts", Message: "At least one contact is required."},
		})
	}

	var errs []apperror.FieldError
	for i := range inputs {
		errs = append(errs, validateContactInput(i, &inputs[i])...)
	}
	if len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	customer, err := s.resolveCustomer(ctx, sessionID, mode, customerID)
	if err != nil {
		return nil, err
	}

	result := &ContactBatchResult{}
	for i := range inputs {
		in := &inputs[i]
		contact := &entity.Contact{
			CustomerID:   customer.CustomerCode,
			CustomerName: customer.AirlineName,
			FirstName:    strings.TrimSpace(in.FirstName),
			LastName:     strings.TrimSpace(in.LastName),
			EmailAddress: strings.TrimSpace(in.EmailAddress),
			IsPrimary:    *in.IsPrimary,
			PhoneNumbers: in.PhoneNumbers,
		}

		saved, err := s.contacts.Create(ctx, contact)
		if err != nil {
			// contacts 1..i-1 stay persisted, i+1.. were never attempted,
			// and the step does not advance
			idx := i
			result.FailedIndex = &idx
			result.SavedCount = len(result.Saved)
			s.log.Error("contact batch failed part way",
				"session", sessionID, "failedIndex", idx, "saved", result.SavedCount, "error", err)
			return result, apperror.NewPartialBatchError(idx, result.SavedCount, err)
		}

		result.Saved = append(result.Saved, *saved)
		if mode == enum.ModeWizard {
			s.store.AddContactData(sessionID, *saved)
		}
	}
	result.SavedCount = len(result.Saved)

	s.metrics.WizardSteps.WithLabelValues(enum.StepContact.String()).Inc()
	if mode == enum.ModeWizard {
		result.NextStep = enum.StepAFRData.String()
	} else {
		result.NextStep = TargetExit
	}
	return result, nil
}

// UpdateFlowContact edits one contact of the wizard's accumulated list. The
// contact was already persisted by the batch submit, so the edit is pushed
// upstream before the flow state is touched.
func (s *WizardService) UpdateFlowContact(ctx context.Context, sessionID string, index int, input ContactInput) (*entity.Contact, error) {
	if errs := validateContactInput(index, &input); len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	state := s.store.State(sessionID)
	if index < 0 || index >= len(state.ContactList) {
		return nil, apperror.NewBadRequestError("Contact index out of range")
	}
	current := state.ContactList[index]

	updated := current
	updated.FirstName = strings.TrimSpace(input.FirstName)
	updated.LastName = strings.TrimSpace(input.LastName)
	updated.EmailAddress = strings.TrimSpace(input.EmailAddress)
	updated.IsPrimary = *input.IsPrimary
	updated.PhoneNumbers = input.PhoneNumbers

	saved, err := s.contacts.Update(ctx, current.ID, &updated)
	if err != nil {
		return nil, err
	}
	if err := s.store.UpdateContactData(sessionID, index, *saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// RemoveFlowContact drops one contact from the accumulated list. The upstream
// record stays; the list only controls what the wizard summary shows.
func (s *WizardService) RemoveFlowContact(sessionID string, index int) error {
	return s.store.RemoveContactData(sessionID, index)
}

// AFRDataInput is the AFR data step form. The figures are free-text numeric
// strings recorded verbatim.
type AFRDataInput struct {
	FlightsTotal              string
	Organization              string
	FlightsWithAFR            string
	FlightsWithCaptainCode    string
	PercentageWithCaptainCode string
	PilotAppSuitable          bool
}

// SubmitAFRData validates and persists the AFR data step
func (s *WizardService) SubmitAFRData(ctx context.Context, sessionID string, mode enum.FlowMode, customerID string, input *AFRDataInput) (*entity.AFRData, string, error) {
	customer, err := s.resolveCustomer(ctx, sessionID, mode, customerID)
	if err != nil {
		return nil, "", err
	}

	record := &entity.AFRData{
		CustomerID:                customer.CustomerCode,
		FlightsTotal:              input.FlightsTotal,
		Organization:              input.Organization,
		FlightsWithAFR:            input.FlightsWithAFR,
		FlightsWithCaptainCode:    input.FlightsWithCaptainCode,
		PercentageWithCaptainCode: input.PercentageWithCaptainCode,
		PilotAppSuitable:          input.PilotAppSuitable,
	}

	saved, err := s.afrData.Create(ctx, record)
	if err != nil {
		return nil, "", err
	}

	s.metrics.WizardSteps.WithLabelValues(enum.StepAFRData.String()).Inc()
	if mode == enum.ModeWizard {
		return saved, enum.StepChecklist.String(), nil
	}
	return saved, TargetExit, nil
}

// SubmitChecklist validates and persists the checklist step. In wizard mode a
// successful save ends the run: the flow state is cleared exactly once here.
func (s *WizardService) SubmitChecklist(ctx context.Context, sessionID string, mode enum.FlowMode, customerID string, answers map[string]enum.Answer) (*entity.Checklist, string, error) {
	defs, err := s.questions.List(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}
	known := make(map[string]bool, len(defs))
	for _, d := range defs {
		known[d.ID] = true
	}

	var errs []apperror.FieldError
	for id, a := range answers {
		if !known[id] {
			errs = append(errs, apperror.FieldError{Field: "answers." + id, Message: "Unknown question."})
		}
		if !a.IsValid() {
			errs = append(errs, apperror.FieldError{Field: "answers." + id, Message: "Answer must be yes, no or NA."})
		}
	}
	if len(errs) > 0 {
		return nil, "", apperror.NewValidationError(errs)
	}

	customer, err := s.resolveCustomer(ctx, sessionID, mode, customerID)
	if err != nil {
		return nil, "", err
	}

	if answers == nil {
		answers = map[string]enum.Answer{}
	}
	checklist := &entity.Checklist{
		CustomerID: customer.CustomerCode,
		// name snapshot taken at save time; later renames don't rewrite it
		CustomerName: customer.AirlineName,
		Answers:      answers,
	}

	saved, err := s.checklists.Create(ctx, checklist)
	if err != nil {
		return nil, "", err
	}

	s.store.SetChecklistData(sessionID, saved)
	s.metrics.WizardSteps.WithLabelValues(enum.StepChecklist.String()).Inc()

	if mode == enum.ModeWizard {
		// the one true end of a wizard run
		s.store.Reset(sessionID)
		s.metrics.WizardRunsDone.Inc()
		s.log.Info("wizard run completed", "session", sessionID, "customerCode", saved.CustomerID)
	}
	return saved, TargetExit, nil
}

// Skip advances past an optional wizard step without saving anything.
// Skipping the checklist abandons the run and clears the flow state.
func (s *WizardService) Skip(sessionID string, step enum.Step, mode enum.FlowMode) (string, error) {
	if mode != enum.ModeWizard {
		return "", apperror.NewBadRequestError("Skip is only available in the creation flow")
	}

	switch step {
	case enum.StepContact:
		return enum.StepAFRData.String(), nil
	case enum.StepAFRData:
		return enum.StepChecklist.String(), nil
	case enum.StepChecklist:
		s.store.Reset(sessionID)
		s.metrics.WizardRunsCancel.Inc()
		s.log.Info("wizard run abandoned at checklist", "session", sessionID)
		return TargetExit, nil
	case enum.StepCustomer:
		return "", apperror.NewBadRequestError("The first step cannot be skipped")
	default:
		return "", apperror.NewBadRequestError("Unknown step")
	}
}

// Cancel abandons the wizard from the first step and clears the flow state
func (s *WizardService) Cancel(sessionID string) {
	s.store.Reset(sessionID)
	s.metrics.WizardRunsCancel.Inc()
	s.log.Info("wizard run cancelled", "session", sessionID)
}

// State returns the session's current flow state snapshot
func (s *WizardService) State(sessionID string) entity.FlowState {
	return s.store.State(sessionID)
}

// DropSession clears a session's flow state when the session ends. Unlike
// Cancel this is not counted as an abandoned run.
func (s *WizardService) DropSession(sessionID string) {
	s.store.Reset(sessionID)
}
