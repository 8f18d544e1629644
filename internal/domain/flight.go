package domain

import (
	"fmt"
	"math/rand"
	"strings"
)

type Flight struct {
	Number string `json:"number"`
	Date   string `json:"date"`
	From   string `json:"from"`
	To     string `json:"to"`
}

func (f Flight) String() string {
	return fmt.Sprintf("Flight Number: %s, Date: %s, From: %s, To: %s", f.Number, f.Date, f.From, f.To)
}

// GenerateNumber derives a cosmetic flight number from the destination: its
// first three characters upper-cased plus a random three-digit suffix. A
// destination shorter than three characters yields a shorter prefix. Numbers
// are not unique across bookings.
func GenerateNumber(destination string) string {
	prefix := []rune(destination)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return fmt.Sprintf("%s%d", strings.ToUpper(string(prefix)), rand.Intn(900)+100)
}
