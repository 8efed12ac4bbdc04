package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pilotapp/crm-console/internal/application/service"
	"github.com/pilotapp/crm-console/internal/presentation/http/dto/response"
	"github.com/pilotapp/crm-console/internal/presentation/http/middleware"
)

// SessionHandler issues and ends console sessions
type SessionHandler struct {
	wizardService    *service.WizardService
	dashboardService *service.DashboardService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(wizardService *service.WizardService, dashboardService *service.DashboardService) *SessionHandler {
	return &SessionHandler{wizardService: wizardService, dashboardService: dashboardService}
}

// Create issues a fresh session ID. The client sends it back in the
// X-Session-ID header on every subsequent request.
func (h *SessionHandler) Create(c *gin.Context) {
	response.Created(c, "Session created", gin.H{
		"sessionId": uuid.New().String(),
	})
}

// End drops all server-side state of the calling session
func (h *SessionHandler) End(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	h.wizardService.DropSession(sessionID)
	h.dashboardService.DropSession(sessionID)
	response.NoContent(c)
}
