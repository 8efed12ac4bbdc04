package entity

// FlowState is the in-progress state of one customer creation wizard run.
// It lives in process memory scoped to a session, never in the backend.
// Question definitions are a reusable cache and survive resets; everything
// else is cleared exactly once when the run finishes, is abandoned, or the
// first step is cancelled.
type FlowState struct {
	CustomerData        *Customer            `json:"customerData"`
	ContactList         []Contact            `json:"contactDataList"`
	ChecklistData       *Checklist           `json:"checklistData"`
	QuestionDefinitions []QuestionDefinition `json:"checklistQuestions"`
}
