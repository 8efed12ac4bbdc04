package entity

// AFRData holds automated flight report coverage figures for one customer.
// The count fields are free-text numeric strings entered by staff; they are
// stored verbatim and never parsed.
type AFRData struct {
	ID                        string `json:"id,omitempty"`
	CustomerID                string `json:"customerId,omitempty"`
	FlightsTotal              string `json:"flightsTotal"`
	Organization              string `json:"organization"`
	FlightsWithAFR            string `json:"flightsWithAFR"`
	FlightsWithCaptainCode    string `json:"flightsWithCaptainCode"`
	PercentageWithCaptainCode string `json:"percentageWithCaptainCode"`
	PilotAppSuitable          bool   `json:"pilotAppSuitable"`
}
