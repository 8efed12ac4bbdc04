package enum

// Step is one step of the customer creation wizard
type Step string

const (
	StepCustomer  Step = "customer"
	StepContact   Step = "contact"
	StepAFRData   Step = "afrdata"
	StepChecklist Step = "checklist"
)

// IsValid reports whether the value is a known wizard step
func (s Step) IsValid() bool {
	switch s {
	case StepCustomer, StepContact, StepAFRData, StepChecklist:
		return true
	}
	return false
}

func (s Step) String() string {
	return string(s)
}

// FlowMode distinguishes the sequential wizard from the standalone dashboards
type FlowMode string

const (
	// ModeWizard is the Customer, Contact, AFR Data, Checklist sequence
	// entered from "Add Customer"
	ModeWizard FlowMode = "wizard"
	// ModeStandalone is a single entity form entered from its own dashboard
	ModeStandalone FlowMode = "standalone"
)

// IsValid reports whether the value is a known flow mode
func (m FlowMode) IsValid() bool {
	return m == ModeWizard || m == ModeStandalone
}

func (m FlowMode) String() string {
	return string(m)
}
