package domain

// ServiceOption is one bookable ancillary service, keyed by the single
// character entered at the prompt.
type ServiceOption struct {
	Code string
	Name string
}

// ServiceOptions is the fixed ancillary catalog, in menu order.
var ServiceOptions = []ServiceOption{
	{Code: "m", Name: "Meal"},
	{Code: "d", Name: "Drink"},
	{Code: "b", Name: "Extra Baggage"},
	{Code: "w", Name: "WiFi"},
}

func ServiceByCode(code string) (string, bool) {
	for _, opt := range ServiceOptions {
		if opt.Code == code {
			return opt.Name, true
		}
	}
	return "", false
}

// Seat grid shown at booking time. Display only: seats are not tracked, the
// same seat may appear on any number of bookings.
const SeatRows = 10

var SeatColumns = []string{"A", "B", "C", "D", "E", "F"}
