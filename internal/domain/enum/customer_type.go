package enum

// CustomerType represents the sales stage of a customer
type CustomerType string

const (
	CustomerTypeLead      CustomerType = "Lead"
	CustomerTypeProspect  CustomerType = "Prospect"
	CustomerTypeDummyDemx CustomerType = "Dummy Demx"
	CustomerTypeLiveDemc  CustomerType = "Live Demc"
)

// IsValid reports whether the value is a known customer type
func (t CustomerType) IsValid() bool {
	switch t {
	case CustomerTypeLead, CustomerTypeProspect, CustomerTypeDummyDemx, CustomerTypeLiveDemc:
		return true
	}
	return false
}

func (t CustomerType) String() string {
	return string(t)
}
