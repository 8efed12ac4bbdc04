package entity

import (
	"time"

	"github.com/pilotapp/crm-console/internal/domain/enum"
)

// CommentItem is one timestamped comment on a customer record
type CommentItem struct {
	Comment string    `json:"comment"`
	Time    time.Time `json:"time"`
}

// Customer represents an airline customer of the PilotApp product. The ID is
// assigned by the backend on create; customerCode is the user-supplied
// business key every child entity references. Customers are immutable once
// created in this console.
type Customer struct {
	ID                         string            `json:"id,omitempty"`
	AirlineName                string            `json:"airlineName"`
	CustomerCode               string            `json:"customerCode"`
	IataCode                   string            `json:"iataCode"`
	BusinessRegistrationNumber string            `json:"businessRegistrationNumber"`
	CountryRegion              string            `json:"countryRegion"`
	FleetSize                  string            `json:"fleetSize"`
	Industry                   enum.Industry     `json:"industry"`
	CustomerType               enum.CustomerType `json:"customerType"`
	Comments                   []CommentItem     `json:"comments"`
}

// DisplayLabel is the customer selector label, "Airline Name (CODE)"
func (c *Customer) DisplayLabel() string {
	return c.AirlineName + " (" + c.CustomerCode + ")"
}
