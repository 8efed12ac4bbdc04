package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pilotapp/crm-console/internal/domain/entity"
	"github.com/pilotapp/crm-console/internal/domain/enum"
	"github.com/pilotapp/crm-console/pkg/apperror"
)

func boolPtr(b bool) *bool { return &b }

func validContact(first string) ContactInput {
	return ContactInput{
		FirstName:    first,
		LastName:     "Smith",
		EmailAddress: first + "@qantas.example",
		IsPrimary:    boolPtr(false),
		PhoneNumbers: []entity.PhoneNumber{{Type: enum.PhoneTypeWork, Number: "+61 2 9000 0000"}},
	}
}

func TestNavigationTransitionTable(t *testing.T) {
	fx := newWizardFixture()

	cases := []struct {
		step enum.Step
		want Navigation
	}{
		{enum.StepCustomer, Navigation{Previous: TargetExit, Next: "contact"}},
		{enum.StepContact, Navigation{Previous: "customer", Next: "afrdata", Skip: "afrdata"}},
		{enum.StepAFRData, Navigation{Previous: "contact", Next: "checklist", Skip: "checklist"}},
		{enum.StepChecklist, Navigation{Previous: "afrdata", Next: TargetExit, Skip: TargetExit}},
	}
	for _, tc := range cases {
		nav, err := fx.svc.Navigation(tc.step, enum.ModeWizard)
		require.NoError(t, err)
		assert.Equal(t, tc.want, *nav, "step %s", tc.step)
	}

	// standalone forms always return to their own dashboard
	nav, err := fx.svc.Navigation(enum.StepAFRData, enum.ModeStandalone)
	require.NoError(t, err)
	assert.Equal(t, Navigation{Previous: TargetExit, Next: TargetExit}, *nav)

	_, err = fx.svc.Navigation(enum.Step("billing"), enum.ModeWizard)
	require.Error(t, err)
}

func TestSubmitCustomerValidation(t *testing.T) {
	fx := newWizardFixture()

	_, _, err := fx.svc.SubmitCustomer(context.Background(), "s1", &CustomerInput{
		AirlineName:  "",
		CustomerCode: "QF1",
		CustomerType: "Lead",
		FleetSize:    "zero",
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)

	fields := make(map[string]bool)
	for _, fe := range appErr.Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["airlineName"])
	assert.True(t, fields["fleetSize"])
	assert.Empty(t, fx.customers.customers, "nothing persisted on validation failure")
}

func TestSubmitCustomerRecordsFlowStateAndAdvances(t *testing.T) {
	fx := newWizardFixture()

	// a leftover contact from an earlier run must not leak into the new one
	fx.store.AddContactData("s1", entity.Contact{FirstName: "Stale"})

	saved, next, err := fx.svc.SubmitCustomer(context.Background(), "s1", &CustomerInput{
		AirlineName:  "Qantas",
		CustomerCode: "QF1",
		IataCode:     "qf",
		CustomerType: "Lead",
		Comments:     []entity.CommentItem{{Comment: "  "}, {Comment: "met at expo"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "contact", next)
	assert.Equal(t, "QF", saved.IataCode)
	assert.Equal(t, "1", saved.FleetSize)
	require.Len(t, saved.Comments, 1, "blank comments are dropped")

	state := fx.store.State("s1")
	require.NotNil(t, state.CustomerData)
	assert.Equal(t, "QF1", state.CustomerData.CustomerCode)
	assert.Empty(t, state.ContactList)
}

func TestSubmitContactsPartialFailure(t *testing.T) {
	fx := newWizardFixture()
	fx.store.SetCustomerData("s1", &entity.Customer{AirlineName: "Qantas", CustomerCode: "QF1"})
	fx.contacts.failAtIndex = 1

	result, err := fx.svc.SubmitContacts(context.Background(), "s1", enum.ModeWizard, "", []ContactInput{
		validContact("ada"), validContact("ben"), validContact("cleo"),
	})
	require.Error(t, err)

	// the first contact is persisted, the third is never attempted
	require.NotNil(t, result.FailedIndex)
	assert.Equal(t, 1, *result.FailedIndex)
	assert.Equal(t, 1, result.SavedCount)
	require.Len(t, fx.contacts.contacts, 1)
	assert.Equal(t, "ada", fx.contacts.contacts[0].FirstName)
	assert.Equal(t, 2, fx.contacts.calls)

	// the step does not advance
	assert.Empty(t, result.NextStep)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusBadGateway, appErr.Code)
	assert.Contains(t, appErr.Message, "Saved 1 contact(s)")
	assert.Contains(t, appErr.Message, "contact 2")

	require.Len(t, fx.store.State("s1").ContactList, 1)
}

func TestSubmitContactsSuccessAdvancesAndSnapshotsName(t *testing.T) {
	fx := newWizardFixture()
	fx.store.SetCustomerData("s1", &entity.Customer{AirlineName: "Qantas", CustomerCode: "QF1"})

	result, err := fx.svc.SubmitContacts(context.Background(), "s1", enum.ModeWizard, "", []ContactInput{
		validContact("ada"), validContact("ben"),
	})
	require.NoError(t, err)
	assert.Equal(t, "afrdata", result.NextStep)
	assert.Equal(t, 2, result.SavedCount)

	for _, c := range result.Saved {
		assert.Equal(t, "QF1", c.CustomerID)
		assert.Equal(t, "Qantas", c.CustomerName)
	}
	assert.Len(t, fx.store.State("s1").ContactList, 2)
}

func TestSubmitContactsValidatesBeforeAnyPersistence(t *testing.T) {
	fx := newWizardFixture()
	fx.store.SetCustomerData("s1", &entity.Customer{AirlineName: "Qantas", CustomerCode: "QF1"})

	bad := validContact("ben")
	bad.EmailAddress = "not-an-email"
	bad.PhoneNumbers = nil

	_, err := fx.svc.SubmitContacts(context.Background(), "s1", enum.ModeWizard, "", []ContactInput{
		validContact("ada"), bad,
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	fields := make(map[string]bool)
	for _, fe := range appErr.Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["contacts[1].emailAddress"])
	assert.True(t, fields["contacts[1].phoneNumbers"])
	assert.Empty(t, fx.contacts.contacts, "nothing persisted when validation fails")
}

func TestStandaloneContactRequiresSelection(t *testing.T) {
	fx := newWizardFixture()

	// no customers at all: creation affordance, not a validation error
	_, err := fx.svc.SubmitContacts(context.Background(), "s1", enum.ModeStandalone, "", []ContactInput{validContact("ada")})
	require.ErrorIs(t, err, apperror.ErrNoCustomers)

	fx.customers.customers = []entity.Customer{{ID: "1", AirlineName: "Qantas", CustomerCode: "QF1"}}

	_, err = fx.svc.SubmitContacts(context.Background(), "s1", enum.ModeStandalone, "", []ContactInput{validContact("ada")})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)

	_, err = fx.svc.SubmitContacts(context.Background(), "s1", enum.ModeStandalone, "ZZ9", []ContactInput{validContact("ada")})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)

	result, err := fx.svc.SubmitContacts(context.Background(), "s1", enum.ModeStandalone, "QF1", []ContactInput{validContact("ada")})
	require.NoError(t, err)
	assert.Equal(t, TargetExit, result.NextStep)
	// standalone submissions never touch the wizard's flow state
	assert.Empty(t, fx.store.State("s1").ContactList)
}

func TestSubmitAFRDataStoresVerbatim(t *testing.T) {
	fx := newWizardFixture()
	fx.store.SetCustomerData("s1", &entity.Customer{AirlineName: "Qantas", CustomerCode: "QF1"})

	saved, next, err := fx.svc.SubmitAFRData(context.Background(), "s1", enum.ModeWizard, "", &AFRDataInput{
		FlightsTotal:     "~12000",
		FlightsWithAFR:   "9 500",
		PilotAppSuitable: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "checklist", next)
	assert.Equal(t, "QF1", saved.CustomerID)
	assert.Equal(t, "~12000", saved.FlightsTotal)
	assert.Equal(t, "9 500", saved.FlightsWithAFR)
}

func TestSubmitChecklistCompletesWizardRun(t *testing.T) {
	fx := newWizardFixture()
	fx.store.SetCustomerData("s1", &entity.Customer{AirlineName: "Qantas", CustomerCode: "QF1"})
	fx.store.AddContactData("s1", entity.Contact{FirstName: "Ada"})

	saved, next, err := fx.svc.SubmitChecklist(context.Background(), "s1", enum.ModeWizard, "", map[string]enum.Answer{
		"q1": enum.AnswerYes,
		"q2": enum.AnswerNA,
	})
	require.NoError(t, err)
	assert.Equal(t, TargetExit, next)
	assert.Equal(t, "QF1", saved.CustomerID)
	assert.Equal(t, "Qantas", saved.CustomerName)
	assert.Equal(t, enum.AnswerNA, saved.Answers["q2"])

	// completing the run clears the flow state but keeps the question cache
	state := fx.store.State("s1")
	assert.Nil(t, state.CustomerData)
	assert.Empty(t, state.ContactList)
	assert.Nil(t, state.ChecklistData)
	assert.NotEmpty(t, state.QuestionDefinitions)
}

func TestSubmitChecklistRejectsUnknownQuestion(t *testing.T) {
	fx := newWizardFixture()
	fx.store.SetCustomerData("s1", &entity.Customer{AirlineName: "Qantas", CustomerCode: "QF1"})

	_, _, err := fx.svc.SubmitChecklist(context.Background(), "s1", enum.ModeWizard, "", map[string]enum.Answer{
		"q99": enum.AnswerYes,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
	assert.Empty(t, fx.checklists.checklists)
}

func TestSubmitChecklistAllowsUnansweredQuestions(t *testing.T) {
	fx := newWizardFixture()
	fx.store.SetCustomerData("s1", &entity.Customer{AirlineName: "Qantas", CustomerCode: "QF1"})

	saved, _, err := fx.svc.SubmitChecklist(context.Background(), "s1", enum.ModeWizard, "", nil)
	require.NoError(t, err)
	assert.Empty(t, saved.Answers)
}

func TestSkipTransitions(t *testing.T) {
	fx := newWizardFixture()
	fx.store.SetCustomerData("s1", &entity.Customer{CustomerCode: "QF1"})

	next, err := fx.svc.Skip("s1", enum.StepContact, enum.ModeWizard)
	require.NoError(t, err)
	assert.Equal(t, "afrdata", next)

	next, err = fx.svc.Skip("s1", enum.StepAFRData, enum.ModeWizard)
	require.NoError(t, err)
	assert.Equal(t, "checklist", next)

	_, err = fx.svc.Skip("s1", enum.StepCustomer, enum.ModeWizard)
	require.Error(t, err)

	_, err = fx.svc.Skip("s1", enum.StepContact, enum.ModeStandalone)
	require.Error(t, err)

	// skipping the checklist abandons the run
	next, err = fx.svc.Skip("s1", enum.StepChecklist, enum.ModeWizard)
	require.NoError(t, err)
	assert.Equal(t, TargetExit, next)
	assert.Nil(t, fx.store.State("s1").CustomerData)
}

func TestCancelClearsFlowState(t *testing.T) {
	fx := newWizardFixture()
	fx.store.SetCustomerData("s1", &entity.Customer{CustomerCode: "QF1"})
	fx.store.AddContactData("s1", entity.Contact{FirstName: "Ada"})

	fx.svc.Cancel("s1")

	state := fx.svc.State("s1")
	assert.Nil(t, state.CustomerData)
	assert.Empty(t, state.ContactList)
}
