package entity

import "github.com/pilotapp/crm-console/internal/domain/enum"

// Checklist is one onboarding checklist saved for a customer. Answers maps
// question IDs to ternary answers; the question ID set is defined by the
// question definitions at runtime, not fixed at compile time. A question
// absent from the map is unanswered.
type Checklist struct {
	ID           string                 `json:"id,omitempty"`
	CustomerID   string                 `json:"customerId,omitempty"`
	CustomerName string                 `json:"customerName,omitempty"`
	Answers      map[string]enum.Answer `json:"answers"`
}

// QuestionDefinition is one globally shared checklist question. Definitions
// are append-only: new questions can be added at runtime, existing ones are
// never edited or removed.
type QuestionDefinition struct {
	ID       string `json:"id,omitempty"`
	Question string `json:"question"`
}
