package mockapi

import (
	"encoding/json"
	"strconv"

	"gorm.io/datatypes"
)

// The mock backend speaks the flat json-server contract the console's
// gateways expect: raw objects and arrays, no envelope, ids as strings.
// Nested values (comments, phone numbers, answers) live in JSON columns.

// CustomerRecord is the customers table
type CustomerRecord struct {
	ID                         uint           `gorm:"primaryKey" json:"-"`
	AirlineName                string         `json:"airlineName"`
	CustomerCode               string         `gorm:"index" json:"customerCode"`
	IataCode                   string         `json:"iataCode"`
	BusinessRegistrationNumber string         `json:"businessRegistrationNumber"`
	CountryRegion              string         `json:"countryRegion"`
	FleetSize                  string         `json:"fleetSize"`
	Industry                   string         `json:"industry"`
	CustomerType               string         `json:"customerType"`
	Comments                   datatypes.JSON `json:"comments"`
}

// ContactRecord is the contacts table; CustomerID holds the owning
// customer's customerCode
type ContactRecord struct {
	ID           uint           `gorm:"primaryKey" json:"-"`
	CustomerID   string         `gorm:"index" json:"customerId"`
	CustomerName string         `json:"customerName"`
	FirstName    string         `json:"firstName"`
	LastName     string         `json:"lastName"`
	EmailAddress string         `json:"emailAddress"`
	IsPrimary    bool           `json:"isPrimary"`
	PhoneNumbers datatypes.JSON `json:"phoneNumbers"`
}

// AFRDataRecord is the afrdata table
type AFRDataRecord struct {
	ID                        uint   `gorm:"primaryKey" json:"-"`
	CustomerID                string `gorm:"index" json:"customerId"`
	FlightsTotal              string `json:"flightsTotal"`
	Organization              string `json:"organization"`
	FlightsWithAFR            string `json:"flightsWithAFR"`
	FlightsWithCaptainCode    string `json:"flightsWithCaptainCode"`
	PercentageWithCaptainCode string `json:"percentageWithCaptainCode"`
	PilotAppSuitable          bool   `json:"pilotAppSuitable"`
}

// ChecklistRecord is the checklists table; Answers maps question id to
// true/false/"NA"
type ChecklistRecord struct {
	ID           uint           `gorm:"primaryKey" json:"-"`
	CustomerID   string         `gorm:"index" json:"customerId"`
	CustomerName string         `json:"customerName"`
	Answers      datatypes.JSON `json:"answers"`
}

// QuestionRecord is the checklistQuestions table. IDs keep the historical
// "q"+n format and are assigned here, never by clients.
type QuestionRecord struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Question string `json:"question"`
}

// withID marshals a record and overlays the string form of its numeric id
func withID(record any, id uint) (map[string]json.RawMessage, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	var out map[string]json.RawMessage
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	out["id"] = json.RawMessage(strconv.Quote(strconv.FormatUint(uint64(id), 10)))
	return out, nil
}
