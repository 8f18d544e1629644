package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrUnparsable reports a legacy booking line whose free text broke the
// label-and-comma format, so its structured fields cannot be recovered.
var ErrUnparsable = errors.New("cannot parse booking description")

// NoServices is the rendered marker for a booking without services.
const NoServices = "none"

type Booking struct {
	ID       string
	Flight   Flight
	Seat     string
	Services []string

	// raw holds a legacy description line that failed to parse on load. Such
	// bookings can still be listed and removed, but not edited.
	raw string
}

func NewBooking(flight Flight, seat string, services []string) Booking {
	return Booking{ID: uuid.NewString(), Flight: flight, Seat: seat, Services: services}
}

// Editable reports whether the booking carries structured fields. Only a
// legacy entry kept verbatim after a failed parse is not editable.
func (b Booking) Editable() bool { return b.raw == "" }

// Line renders the canonical one-line description. Field order and labels
// must stay in sync with ParseLine.
func (b Booking) Line() string {
	if b.raw != "" {
		return b.raw
	}
	services := NoServices
	if len(b.Services) > 0 {
		services = strings.Join(b.Services, ", ")
	}
	return fmt.Sprintf("%s, Seat: %s, Services: %s", b.Flight, b.Seat, services)
}

var lineLabels = []string{"Flight Number: ", "Date: ", "From: ", "To: ", "Seat: ", "Services: "}

// ParseLine reverse-parses a rendered booking line by stripping the known
// labels and splitting on commas. It exists to import files written by older
// versions that stored bookings as display text, and it is fragile by
// construction: a comma inside a free-text field shifts every later field.
func ParseLine(line string) (Booking, error) {
	s := line
	for _, label := range lineLabels {
		s = strings.ReplaceAll(s, label, "")
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 4 {
		return Booking{}, ErrUnparsable
	}

	b := Booking{
		ID:     uuid.NewString(),
		Flight: Flight{Number: parts[0], Date: parts[1], From: parts[2], To: parts[3]},
	}
	if len(parts) > 4 {
		b.Seat = parts[4]
	}
	if len(parts) > 5 && !(len(parts) == 6 && parts[5] == NoServices) {
		b.Services = parts[5:]
	}
	return b, nil
}

type bookingJSON struct {
	ID       string   `json:"id"`
	Flight   Flight   `json:"flight"`
	Seat     string   `json:"seat,omitempty"`
	Services []string `json:"services,omitempty"`
}

func (b Booking) MarshalJSON() ([]byte, error) {
	if b.raw != "" {
		return json.Marshal(b.raw)
	}
	return json.Marshal(bookingJSON{ID: b.ID, Flight: b.Flight, Seat: b.Seat, Services: b.Services})
}

// UnmarshalJSON accepts both the structured object form and the legacy string
// form. A legacy string is parsed into structured fields; when that fails the
// line is kept verbatim instead of failing the whole store load.
func (b *Booking) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var line string
		if err := json.Unmarshal(data, &line); err != nil {
			return err
		}
		parsed, err := ParseLine(line)
		if err != nil {
			*b = Booking{raw: line}
			return nil
		}
		*b = parsed
		return nil
	}

	var aux bookingJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*b = Booking{ID: aux.ID, Flight: aux.Flight, Seat: aux.Seat, Services: aux.Services}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
