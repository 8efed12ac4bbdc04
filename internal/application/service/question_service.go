package service

import (
	"context"
	"strings"

	"github.com/pilotapp/crm-console/internal/domain/entity"
	"github.com/pilotapp/crm-console/internal/domain/enum"
	domainGw "github.com/pilotapp/crm-console/internal/domain/gateway"
	"github.com/pilotapp/crm-console/pkg/apperror"
	"github.com/pilotapp/crm-console/pkg/logger"
)

// QuestionService manages the onboarding checklist's question set: the shared
// definitions fetched from upstream, per-session caching, and growing the set
// with staff-added questions.
type QuestionService struct {
	gateway domainGw.QuestionGateway
	store   *FlowStore
	log     logger.Logger
}

// NewQuestionService creates a new question service
func NewQuestionService(gateway domainGw.QuestionGateway, store *FlowStore, log logger.Logger) *QuestionService {
	return &QuestionService{gateway: gateway, store: store, log: log}
}

// List returns the question definitions, fetching from upstream on the
// session's first use and serving the cached copy afterwards
func (s *QuestionService) List(ctx context.Context, sessionID string) ([]entity.QuestionDefinition, error) {
	if cached := s.store.State(sessionID).QuestionDefinitions; len(cached) > 0 {
		return cached, nil
	}

	questions, err := s.gateway.List(ctx)
	if err != nil {
		return nil, err
	}
	s.store.SetQuestionDefinitions(sessionID, questions)
	return questions, nil
}

// Refresh drops the session's cached copy and refetches from upstream
func (s *QuestionService) Refresh(ctx context.Context, sessionID string) ([]entity.QuestionDefinition, error) {
	questions, err := s.gateway.List(ctx)
	if err != nil {
		return nil, err
	}
	s.store.SetQuestionDefinitions(sessionID, questions)
	return questions, nil
}

// Add persists a new question. The id is assigned upstream; the saved
// definition is appended to the session cache so an open checklist form picks
// it up without a refetch.
func (s *QuestionService) Add(ctx context.Context, sessionID, question string) (*entity.QuestionDefinition, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "question", Message: "Question text is required."},
		})
	}

	// make sure the cache exists before appending to it
	if _, err := s.List(ctx, sessionID); err != nil {
		return nil, err
	}

	saved, err := s.gateway.Create(ctx, &entity.QuestionDefinition{Question: question})
	if err != nil {
		return nil, err
	}

	s.store.AppendQuestionDefinition(sessionID, *saved)
	s.log.Info("checklist question added", "session", sessionID, "questionId", saved.ID)
	return saved, nil
}

// FormQuestion is one row of the checklist form model. Answer is nil until
// the question is answered.
type FormQuestion struct {
	ID       string       `json:"id"`
	Question string       `json:"question"`
	Answer   *enum.Answer `json:"answer"`
}

// Form builds the checklist form model: every known question with an
// unanswered default. Newly added questions appear immediately.
func (s *QuestionService) Form(ctx context.Context, sessionID string) ([]FormQuestion, error) {
	questions, err := s.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	form := make([]FormQuestion, 0, len(questions))
	for _, q := range questions {
		form = append(form, FormQuestion{ID: q.ID, Question: q.Question})
	}
	return form, nil
}
