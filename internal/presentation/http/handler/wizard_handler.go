package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pilotapp/crm-console/internal/application/service"
	"github.com/pilotapp/crm-console/internal/domain/entity"
	"github.com/pilotapp/crm-console/internal/domain/enum"
	"github.com/pilotapp/crm-console/internal/presentation/http/dto/response"
	"github.com/pilotapp/crm-console/internal/presentation/http/middleware"
)

// WizardHandler drives the customer creation flow and the standalone entity
// forms, which share the same submission endpoints via the mode parameter
type WizardHandler struct {
	wizardService *service.WizardService
}

// NewWizardHandler creates a new wizard handler
func NewWizardHandler(wizardService *service.WizardService) *WizardHandler {
	return &WizardHandler{wizardService: wizardService}
}

// State returns the session's in-progress flow state
func (h *WizardHandler) State(c *gin.Context) {
	state := h.wizardService.State(middleware.GetSessionID(c))
	response.OK(c, "Flow state retrieved successfully", state)
}

// Navigation returns the previous/next/skip targets for a step
func (h *WizardHandler) Navigation(c *gin.Context) {
	mode := flowMode(c)
	if mode == "" {
		response.BadRequest(c, "Invalid flow mode")
		return
	}

	nav, err := h.wizardService.Navigation(enum.Step(c.Param("step")), mode)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Navigation retrieved successfully", nav)
}

// SubmitCustomer handles the wizard's first step
func (h *WizardHandler) SubmitCustomer(c *gin.Context) {
	var req struct {
		AirlineName                string               `json:"airlineName"`
		CustomerCode               string               `json:"customerCode"`
		IataCode                   string               `json:"iataCode"`
		BusinessRegistrationNumber string               `json:"businessRegistrationNumber"`
		CountryRegion              string               `json:"countryRegion"`
		FleetSize                  string               `json:"fleetSize"`
		Industry                   string               `json:"industry"`
		CustomerType               string               `json:"customerType"`
		Comments                   []entity.CommentItem `json:"comments"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, next, err := h.wizardService.SubmitCustomer(c.Request.Context(), middleware.GetSessionID(c), &service.CustomerInput{
		AirlineName:                req.AirlineName,
		CustomerCode:               req.CustomerCode,
		IataCode:                   req.IataCode,
		BusinessRegistrationNumber: req.BusinessRegistrationNumber,
		CountryRegion:              req.CountryRegion,
		FleetSize:                  req.FleetSize,
		Industry:                   req.Industry,
		CustomerType:               req.CustomerType,
		Comments:                   req.Comments,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", gin.H{
		"customer": customer,
		"nextStep": next,
	})
}

type contactRequest struct {
	FirstName    string               `json:"firstName"`
	LastName     string               `json:"lastName"`
	EmailAddress string               `json:"emailAddress"`
	IsPrimary    *bool                `json:"isPrimary"`
	PhoneNumbers []entity.PhoneNumber `json:"phoneNumbers"`
}

func (r *contactRequest) toInput() service.ContactInput {
	return service.ContactInput{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		EmailAddress: r.EmailAddress,
		IsPrimary:    r.IsPrimary,
		PhoneNumbers: r.PhoneNumbers,
	}
}

// SubmitContacts handles the batch contact step. On a partial failure the
// response still carries the saved portion so the UI can report it.
func (h *WizardHandler) SubmitContacts(c *gin.Context) {
	mode := flowMode(c)
	if mode == "" {
		response.BadRequest(c, "Invalid flow mode")
		return
	}

	var req struct {
		CustomerID string           `json:"customerId"`
		Contacts   []contactRequest `json:"contacts"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	inputs := make([]service.ContactInput, len(req.Contacts))
	for i := range req.Contacts {
		inputs[i] = req.Contacts[i].toInput()
	}

	result, err := h.wizardService.SubmitContacts(c.Request.Context(), middleware.GetSessionID(c), mode, req.CustomerID, inputs)
	if err != nil {
		if result != nil && result.FailedIndex != nil {
			response.ErrorWithData(c, err, result)
			return
		}
		response.Error(c, err)
		return
	}

	response.Created(c, "Contacts created successfully", result)
}

// UpdateContact replaces one contact in the session's accumulated list
func (h *WizardHandler) UpdateContact(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid contact index")
		return
	}

	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	contact, err := h.wizardService.UpdateFlowContact(c.Request.Context(), middleware.GetSessionID(c), index, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Contact updated successfully", contact)
}

// RemoveContact removes one contact from the session's accumulated list
func (h *WizardHandler) RemoveContact(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid contact index")
		return
	}

	if err := h.wizardService.RemoveFlowContact(middleware.GetSessionID(c), index); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// SubmitAFRData handles the AFR data step
func (h *WizardHandler) SubmitAFRData(c *gin.Context) {
	mode := flowMode(c)
	if mode == "" {
		response.BadRequest(c, "Invalid flow mode")
		return
	}

	var req struct {
		CustomerID                string `json:"customerId"`
		FlightsTotal              string `json:"flightsTotal"`
		Organization              string `json:"organization"`
		FlightsWithAFR            string `json:"flightsWithAFR"`
		FlightsWithCaptainCode    string `json:"flightsWithCaptainCode"`
		PercentageWithCaptainCode string `json:"percentageWithCaptainCode"`
		PilotAppSuitable          bool   `json:"pilotAppSuitable"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	record, next, err := h.wizardService.SubmitAFRData(c.Request.Context(), middleware.GetSessionID(c), mode, req.CustomerID, &service.AFRDataInput{
		FlightsTotal:              req.FlightsTotal,
		Organization:              req.Organization,
		FlightsWithAFR:            req.FlightsWithAFR,
		FlightsWithCaptainCode:    req.FlightsWithCaptainCode,
		PercentageWithCaptainCode: req.PercentageWithCaptainCode,
		PilotAppSuitable:          req.PilotAppSuitable,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "AFR data created successfully", gin.H{
		"afrData":  record,
		"nextStep": next,
	})
}

// SubmitChecklist handles the final step
func (h *WizardHandler) SubmitChecklist(c *gin.Context) {
	mode := flowMode(c)
	if mode == "" {
		response.BadRequest(c, "Invalid flow mode")
		return
	}

	var req struct {
		CustomerID string                 `json:"customerId"`
		Answers    map[string]enum.Answer `json:"answers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	checklist, next, err := h.wizardService.SubmitChecklist(c.Request.Context(), middleware.GetSessionID(c), mode, req.CustomerID, req.Answers)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Checklist created successfully", gin.H{
		"checklist": checklist,
		"nextStep":  next,
	})
}

// Skip advances past an optional step
func (h *WizardHandler) Skip(c *gin.Context) {
	mode := flowMode(c)
	if mode == "" {
		response.BadRequest(c, "Invalid flow mode")
		return
	}

	next, err := h.wizardService.Skip(middleware.GetSessionID(c), enum.Step(c.Param("step")), mode)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Step skipped", gin.H{"nextStep": next})
}

// Cancel abandons the wizard run
func (h *WizardHandler) Cancel(c *gin.Context) {
	h.wizardService.Cancel(middleware.GetSessionID(c))
	response.OK(c, "Wizard cancelled", nil)
}
