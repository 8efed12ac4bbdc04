package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pilotapp/crm-console/internal/application/service"
	"github.com/pilotapp/crm-console/internal/presentation/http/dto/response"
	"github.com/pilotapp/crm-console/internal/presentation/http/middleware"
)

// DashboardHandler serves the four entity dashboards and the customer
// selector options
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Customers handles the customer dashboard
func (h *DashboardHandler) Customers(c *gin.Context) {
	page, err := h.dashboardService.Customers(c.Request.Context(), middleware.GetSessionID(c), listQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customers retrieved successfully", page)
}

// CustomerOptions handles the customer selector of the standalone forms
func (h *DashboardHandler) CustomerOptions(c *gin.Context) {
	options, err := h.dashboardService.CustomerOptions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer options retrieved successfully", options)
}

// Contacts handles the contact dashboard
func (h *DashboardHandler) Contacts(c *gin.Context) {
	page, err := h.dashboardService.Contacts(c.Request.Context(), middleware.GetSessionID(c), listQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Contacts retrieved successfully", page)
}

// AFRData handles the AFR data dashboard
func (h *DashboardHandler) AFRData(c *gin.Context) {
	page, err := h.dashboardService.AFRData(c.Request.Context(), middleware.GetSessionID(c), listQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "AFR data retrieved successfully", page)
}

// Checklists handles the checklist dashboard
func (h *DashboardHandler) Checklists(c *gin.Context) {
	page, err := h.dashboardService.Checklists(c.Request.Context(), middleware.GetSessionID(c), listQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Checklists retrieved successfully", page)
}
