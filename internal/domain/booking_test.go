package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlight() Flight {
	return Flight{Number: "PAR123", Date: "01/01/2026", From: "NYC", To: "Paris"}
}

func TestBookingLine(t *testing.T) {
	b := NewBooking(testFlight(), "5C", []string{"Meal", "WiFi"})
	assert.Equal(t,
		"Flight Number: PAR123, Date: 01/01/2026, From: NYC, To: Paris, Seat: 5C, Services: Meal, WiFi",
		b.Line())
}

func TestBookingLine_NoServices(t *testing.T) {
	b := NewBooking(testFlight(), "5C", nil)
	assert.Equal(t,
		"Flight Number: PAR123, Date: 01/01/2026, From: NYC, To: Paris, Seat: 5C, Services: none",
		b.Line())
}

func TestNewBooking_AssignsID(t *testing.T) {
	b := NewBooking(testFlight(), "", nil)
	assert.NotEmpty(t, b.ID)
	assert.True(t, b.Editable())
}

func TestParseLine_RoundTrip(t *testing.T) {
	b := NewBooking(testFlight(), "5C", []string{"Meal", "WiFi"})

	parsed, err := ParseLine(b.Line())
	require.NoError(t, err)
	assert.Equal(t, b.Flight, parsed.Flight)
	assert.Equal(t, b.Seat, parsed.Seat)
	assert.Equal(t, b.Services, parsed.Services)
}

func TestParseLine_NoServicesMarker(t *testing.T) {
	parsed, err := ParseLine("Flight Number: PAR123, Date: 01/01/2026, From: NYC, To: Paris, Seat: 5C, Services: none")
	require.NoError(t, err)
	assert.Empty(t, parsed.Services)
	assert.Equal(t, "5C", parsed.Seat)
}

func TestParseLine_LegacyFourFields(t *testing.T) {
	// Lines written before seats and services existed.
	parsed, err := ParseLine("Flight Number: PAR123, Date: 01/01/2026, From: NYC, To: Paris")
	require.NoError(t, err)
	assert.Equal(t, testFlight(), parsed.Flight)
	assert.Empty(t, parsed.Seat)
	assert.Empty(t, parsed.Services)
}

func TestParseLine_Unparsable(t *testing.T) {
	_, err := ParseLine("not a booking line at all")
	assert.ErrorIs(t, err, ErrUnparsable)
}

func TestBookingJSON_StructuredRoundTrip(t *testing.T) {
	b := NewBooking(testFlight(), "5C", []string{"Meal", "WiFi"})

	data, err := json.Marshal(b)
	require.NoError(t, err)

	var decoded Booking
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, b, decoded)
}

func TestBookingJSON_LegacyString(t *testing.T) {
	var b Booking
	require.NoError(t, json.Unmarshal([]byte(`"Flight Number: PAR123, Date: 01/01/2026, From: NYC, To: Paris"`), &b))

	assert.True(t, b.Editable())
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, testFlight(), b.Flight)
}

func TestBookingJSON_LegacyUnparsableKeptVerbatim(t *testing.T) {
	var b Booking
	require.NoError(t, json.Unmarshal([]byte(`"total garbage"`), &b))

	assert.False(t, b.Editable())
	assert.Equal(t, "total garbage", b.Line())

	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, `"total garbage"`, string(data))
}
