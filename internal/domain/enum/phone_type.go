package enum

// PhoneType represents the kind of phone number attached to a contact
type PhoneType string

const (
	PhoneTypeWork   PhoneType = "Work"
	PhoneTypeMobile PhoneType = "Mobile"
	PhoneTypeHome   PhoneType = "Home"
	PhoneTypeOther  PhoneType = "Other"
)

// IsValid reports whether the value is a known phone type
func (p PhoneType) IsValid() bool {
	switch p {
	case PhoneTypeWork, PhoneTypeMobile, PhoneTypeHome, PhoneTypeOther:
		return true
	}
	return false
}

func (p PhoneType) String() string {
	return string(p)
}
