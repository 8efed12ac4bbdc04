package entity

import "github.com/pilotapp/crm-console/internal/domain/enum"

// PhoneNumber is one typed phone number on a contact
type PhoneNumber struct {
	Type   enum.PhoneType `json:"type"`
	Number string         `json:"number"`
}

// Contact represents a person at a customer. CustomerID holds the owning
// customer's customerCode; CustomerName is a denormalized display snapshot
// attached at save time.
type Contact struct {
	ID           string        `json:"id,omitempty"`
	CustomerID   string        `json:"customerId,omitempty"`
	CustomerName string        `json:"customerName,omitempty"`
	FirstName    string        `json:"firstName"`
	LastName     string        `json:"lastName"`
	EmailAddress string        `json:"emailAddress"`
	IsPrimary    bool          `json:"isPrimary"`
	PhoneNumbers []PhoneNumber `json:"phoneNumbers"`
}
