package service

import (
	"sync"
	"time"

	"github.com/pilotapp/crm-console/internal/domain/entity"
	"github.com/pilotapp/crm-console/internal/domain/enum"
	"github.com/pilotapp/crm-console/pkg/apperror"
)

// FlowStore holds the in-progress wizard state of every active session. It is
// purely in-memory: state is lost on restart and never persisted upstream.
// There is exactly one logical writer per session, so a plain mutex with
// last-write-wins semantics is sufficient; readers always see the latest
// snapshot.
type FlowStore struct {
	sessions    map[string]*sessionEntry
	mu          sync.RWMutex
	ttl         time.Duration
	cleanupTick time.Duration
}

type sessionEntry struct {
	state    entity.FlowState
	lastSeen time.Time
}

// NewFlowStore creates a flow store. Sessions untouched for ttl are evicted
// by a background sweep every cleanupTick.
func NewFlowStore(ttl, cleanupTick time.Duration) *FlowStore {
	fs := &FlowStore{
		sessions:    make(map[string]*sessionEntry),
		ttl:         ttl,
		cleanupTick: cleanupTick,
	}
	go fs.cleanupLoop()
	return fs
}

// entry returns the session's state, creating it on first touch. Callers must
// hold the write lock.
func (fs *FlowStore) entry(sessionID string) *sessionEntry {
	e, ok := fs.sessions[sessionID]
	if !ok {
		e = &sessionEntry{}
		fs.sessions[sessionID] = e
	}
	e.lastSeen = time.Now()
	return e
}

// SetCustomerData records the customer saved by the wizard's first step
func (fs *FlowStore) SetCustomerData(sessionID string, customer *entity.Customer) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.entry(sessionID).state.CustomerData = customer
}

// AddContactData appends a saved contact to the session's accumulated list
func (fs *FlowStore) AddContactData(sessionID string, contact entity.Contact) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	e := fs.entry(sessionID)
	e.state.ContactList = append(e.state.ContactList, contact)
}

// UpdateContactData replaces the contact at index
func (fs *FlowStore) UpdateContactData(sessionID string, index int, contact entity.Contact) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	e := fs.entry(sessionID)
	if index < 0 || index >= len(e.state.ContactList) {
		return apperror.NewBadRequestError("Contact index out of range")
	}
	e.state.ContactList[index] = contact
	return nil
}

// RemoveContactData removes the contact at index
func (fs *FlowStore) RemoveContactData(sessionID string, index int) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	e := fs.entry(sessionID)
	if index < 0 || index >= len(e.state.ContactList) {
		return apperror.NewBadRequestError("Contact index out of range")
	}
	e.state.ContactList = append(e.state.ContactList[:index], e.state.ContactList[index+1:]...)
	return nil
}

// ResetContactList drops the accumulated contacts, used when a new customer
// is saved so a previous run's contacts cannot leak into the new one
func (fs *FlowStore) ResetContactList(sessionID string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.entry(sessionID).state.ContactList = nil
}

// SetChecklistData records the checklist saved by the final step
func (fs *FlowStore) SetChecklistData(sessionID string, checklist *entity.Checklist) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.entry(sessionID).state.ChecklistData = checklist
}

// SetQuestionDefinitions caches the fetched question definitions
func (fs *FlowStore) SetQuestionDefinitions(sessionID string, questions []entity.QuestionDefinition) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.entry(sessionID).state.QuestionDefinitions = questions
}

// AppendQuestionDefinition extends the cached question list after an add
func (fs *FlowStore) AppendQuestionDefinition(sessionID string, question entity.QuestionDefinition) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	e := fs.entry(sessionID)
	e.state.QuestionDefinitions = append(e.state.QuestionDefinitions, question)
}

// State returns a detached snapshot of the session's flow state; mutating it
// never writes through to the store
func (fs *FlowStore) State(sessionID string) entity.FlowState {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	e := fs.entry(sessionID)

	snapshot := e.state
	if e.state.CustomerData != nil {
		customer := *e.state.CustomerData
		customer.Comments = append([]entity.CommentItem(nil), customer.Comments...)
		snapshot.CustomerData = &customer
	}
	if e.state.ChecklistData != nil {
		checklist := *e.state.ChecklistData
		if checklist.Answers != nil {
			answers := make(map[string]enum.Answer, len(checklist.Answers))
			for id, a := range checklist.Answers {
				answers[id] = a
			}
			checklist.Answers = answers
		}
		snapshot.ChecklistData = &checklist
	}
	snapshot.ContactList = append([]entity.Contact(nil), e.state.ContactList...)
	snapshot.QuestionDefinitions = append([]entity.QuestionDefinition(nil), e.state.QuestionDefinitions...)
	return snapshot
}

// Reset clears customer, contact and checklist state unconditionally. Cached
// question definitions survive: they are shared reference data, not wizard
// output, and refetching them on every run would be wasted traffic.
func (fs *FlowStore) Reset(sessionID string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	e := fs.entry(sessionID)
	e.state.CustomerData = nil
	e.state.ContactList = nil
	e.state.ChecklistData = nil
}

func (fs *FlowStore) cleanupLoop() {
	ticker := time.NewTicker(fs.cleanupTick)
	defer ticker.Stop()

	for range ticker.C {
		fs.cleanup()
	}
}

func (fs *FlowStore) cleanup() {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	cutoff := time.Now().Add(-fs.ttl)
	for id, e := range fs.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(fs.sessions, id)
		}
	}
}
