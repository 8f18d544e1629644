package cli

import (
	"fmt"
	"strings"

	"github.com/ivmart/flightbook/internal/domain"
)

// selectSeat shows the fixed seat grid and returns whatever the user typed.
// The entry is not validated against the grid and taken seats are not
// tracked; the display is purely informational.
func (a *App) selectSeat() string {
	fmt.Fprintln(a.out, "\nAvailable seats:")
	for row := 1; row <= domain.SeatRows; row++ {
		var line strings.Builder
		for _, col := range domain.SeatColumns {
			fmt.Fprintf(&line, "%d%s ", row, col)
		}
		fmt.Fprintf(a.out, "%s\n", strings.TrimRight(line.String(), " "))
	}
	return strings.TrimSpace(a.prompt("Enter a seat (leave blank for none): "))
}

// selectServices repeatedly reads single-character service codes until an
// empty line. Unknown codes re-prompt; choosing the same code twice adds the
// service twice.
func (a *App) selectServices() []string {
	fmt.Fprintln(a.out, "\nAvailable services:")
	for _, opt := range domain.ServiceOptions {
		fmt.Fprintf(a.out, "%s) %s\n", opt.Code, opt.Name)
	}

	var services []string
	for {
		code := strings.ToLower(strings.TrimSpace(a.prompt("Add a service (leave blank to finish): ")))
		if code == "" {
			return services
		}
		name, ok := domain.ServiceByCode(code)
		if !ok {
			fmt.Fprintln(a.out, "Unknown service code. Please try again.")
			continue
		}
		services = append(services, name)
	}
}
