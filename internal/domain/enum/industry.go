package enum

// Industry represents the industry segment a customer operates in
type Industry string

const (
	IndustryAirline   Industry = "Airline"
	IndustryAerospace Industry = "Aerospace"
	IndustryLogistics Industry = "Logistics"
	IndustryMRO       Industry = "MRO"
	IndustryAirport   Industry = "Airport"
	IndustryOther     Industry = "Other"
)

// IsValid reports whether the value is a known industry
func (i Industry) IsValid() bool {
	switch i {
	case IndustryAirline, IndustryAerospace, IndustryLogistics,
		IndustryMRO, IndustryAirport, IndustryOther:
		return true
	}
	return false
}

func (i Industry) String() string {
	return string(i)
}
