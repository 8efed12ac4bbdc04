package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pilotapp/crm-console/internal/application/service"
	"github.com/pilotapp/crm-console/internal/presentation/http/dto/response"
	"github.com/pilotapp/crm-console/internal/presentation/http/middleware"
)

// QuestionHandler manages the checklist question set
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// List returns the question definitions
func (h *QuestionHandler) List(c *gin.Context) {
	questions, err := h.questionService.List(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Questions retrieved successfully", questions)
}

// Form returns the checklist form model with default unanswered entries
func (h *QuestionHandler) Form(c *gin.Context) {
	form, err := h.questionService.Form(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Checklist form retrieved successfully", form)
}

// Add creates a new question; the ID is assigned upstream
func (h *QuestionHandler) Add(c *gin.Context) {
	var req struct {
		Question string `json:"question"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	question, err := h.questionService.Add(c.Request.Context(), middleware.GetSessionID(c), req.Question)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Question created successfully", question)
}

// Refresh refetches the question set from upstream
func (h *QuestionHandler) Refresh(c *gin.Context) {
	questions, err := h.questionService.Refresh(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Questions refreshed successfully", questions)
}
