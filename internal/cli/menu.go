// Package cli implements the interactive terminal transport: the main menu
// dispatcher and the prompt-driven flows, over a plain line-based
// reader/writer pair so sessions can be scripted in tests.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ivmart/flightbook/internal/domain"
	"github.com/ivmart/flightbook/internal/repository"
	"github.com/ivmart/flightbook/internal/service/auth"
	"github.com/ivmart/flightbook/internal/service/booking"
)

type App struct {
	in       *bufio.Reader
	out      io.Writer
	auth     auth.AuthUseCase
	bookings booking.BookingUseCase
	accounts repository.AccountRepository
	session  *domain.Session
	eof      bool
}

func New(in io.Reader, out io.Writer, authSvc auth.AuthUseCase, bookingSvc booking.BookingUseCase, accounts repository.AccountRepository) *App {
	return &App{
		in:       bufio.NewReader(in),
		out:      out,
		auth:     authSvc,
		bookings: bookingSvc,
		accounts: accounts,
	}
}

// Run drives the menu loop until the user exits. End of input is treated the
// same as the exit command so a piped session still saves the store.
func (a *App) Run(ctx context.Context) error {
	for {
		a.clearScreen()
		a.printMenu()

		choice, err := a.readLine("Enter your choice: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return a.accounts.Save(ctx)
			}
			return err
		}

		switch strings.ToLower(strings.TrimSpace(choice)) {
		case "1":
			a.register(ctx)
			a.pause()
		case "2":
			a.login(ctx)
			a.pause()
		case "3":
			a.bookFlight(ctx)
			a.pause()
		case "4":
			a.viewBookings(ctx)
			a.pause()
		case "5":
			a.logout()
			a.pause()
		case "6":
			a.manageBookings(ctx)
		case "x":
			if err := a.accounts.Save(ctx); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "User data saved. Goodbye")
			return nil
		default:
			fmt.Fprintln(a.out, "Invalid choice. Please try again.")
			a.pause()
		}
	}
}

func (a *App) printMenu() {
	fmt.Fprintln(a.out, "\n--- Menu ---")
	fmt.Fprintln(a.out, "1) Register")
	fmt.Fprintln(a.out, "2) Login")
	fmt.Fprintln(a.out, "3) Book a Flight (Must be logged in)")
	fmt.Fprintln(a.out, "4) View Booked Flights (Must be logged in)")
	fmt.Fprintln(a.out, "5) Logout")
	fmt.Fprintln(a.out, "6) Manage Booked Flights (Must be logged in)")
	fmt.Fprintln(a.out, "x) Exit and Save")
}

func (a *App) register(ctx context.Context) {
	username := a.prompt("Enter a new username: ")
	password := a.prompt("Enter a new password: ")

	if _, err := a.auth.Register(ctx, username, password); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			fmt.Fprintln(a.out, "Username already exists. Please choose a different one.")
			return
		}
		fmt.Fprintf(a.out, "Registration failed: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Account created successfully! Welcome, %s!\n", username)
}

func (a *App) login(ctx context.Context) {
	username := a.prompt("Enter your username: ")
	password := a.prompt("Enter your password: ")

	sess, err := a.auth.Login(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUnknownUser):
			fmt.Fprintln(a.out, "Username not found. Please register first.")
		case errors.Is(err, repository.ErrWrongPassword):
			fmt.Fprintln(a.out, "Incorrect password. Please try again.")
		default:
			fmt.Fprintf(a.out, "Login failed: %v\n", err)
		}
		return
	}
	a.session = sess
	fmt.Fprintf(a.out, "Welcome back, %s!\n", username)
}

func (a *App) bookFlight(ctx context.Context) {
	if a.session == nil {
		fmt.Fprintln(a.out, "You must log in first to book a flight.")
		return
	}

	from := a.prompt("Enter the departure location (From): ")
	to := a.prompt("Enter the destination location (To): ")
	date := a.prompt("Enter the date of travel (DD/MM/YYYY): ")
	seat := a.selectSeat()
	services := a.selectServices()

	b, err := a.bookings.Create(ctx, a.session, booking.CreateInput{
		From:     from,
		To:       to,
		Date:     date,
		Seat:     seat,
		Services: services,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Booking failed: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Flight %s booked successfully!\n", b.Line())
}

func (a *App) viewBookings(ctx context.Context) {
	lines, err := a.bookings.List(ctx, a.session)
	if err != nil {
		fmt.Fprintln(a.out, "You must log in first to view booked flights.")
		return
	}
	fmt.Fprintln(a.out, "Your booked flights:")
	for _, line := range lines {
		fmt.Fprintln(a.out, line)
	}
}

func (a *App) logout() {
	if a.session == nil {
		fmt.Fprintln(a.out, "You are not logged in.")
		return
	}
	fmt.Fprintf(a.out, "Goodbye, %s!\n", a.session.Username)
	a.session = nil
}

// manageBookings runs the list / select / act state machine. Remove and a
// completed edit end the flow; everything else returns to the list view.
func (a *App) manageBookings(ctx context.Context) {
	if a.session == nil {
		fmt.Fprintln(a.out, "You must log in first to manage booked flights.")
		a.pause()
		return
	}
	if len(a.session.Bookings) == 0 {
		fmt.Fprintln(a.out, "You have no booked flights to manage.")
		a.pause()
		return
	}

	for {
		fmt.Fprintln(a.out, "\n--- Manage Booked Flights ---")
		for i, b := range a.session.Bookings {
			fmt.Fprintf(a.out, "%d) %s\n", i+1, b.Line())
		}
		fmt.Fprintln(a.out, "0) Go back")

		raw := a.prompt("Select a flight number to manage, or 0 to return: ")
		if a.eof {
			return
		}
		choice, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			fmt.Fprintln(a.out, "Invalid input. Please enter a valid number.")
			continue
		}
		if choice == 0 {
			return
		}
		if choice < 1 || choice > len(a.session.Bookings) {
			fmt.Fprintln(a.out, "Invalid flight number.")
			continue
		}

		index := choice - 1
		selected := a.session.Bookings[index]
		fmt.Fprintf(a.out, "You selected: %s\n", selected.Line())
		fmt.Fprintln(a.out, "a) Remove this flight")
		fmt.Fprintln(a.out, "b) Edit this flight")
		fmt.Fprintln(a.out, "c) Go back")

		switch strings.ToLower(strings.TrimSpace(a.prompt("Choose an action: "))) {
		case "a":
			removed, err := a.bookings.Remove(ctx, a.session, index)
			if err != nil {
				fmt.Fprintf(a.out, "Remove failed: %v\n", err)
				continue
			}
			fmt.Fprintf(a.out, "Removed flight: %s\n", removed.Line())
			a.pause()
			return
		case "b":
			if a.editBooking(ctx, index, selected) {
				a.pause()
				return
			}
		case "c":
			continue
		default:
			fmt.Fprintln(a.out, "Invalid action.")
		}
	}
}

// editBooking reports whether the edit completed. A parse failure or an edit
// error sends the user back to the list view instead.
func (a *App) editBooking(ctx context.Context, index int, current domain.Booking) bool {
	if !current.Editable() {
		fmt.Fprintln(a.out, "Could not parse flight details. Cannot edit.")
		a.pause()
		return false
	}

	fmt.Fprintln(a.out, "\nEnter new values (leave blank to keep current):")
	input := booking.EditInput{
		Date: strings.TrimSpace(a.prompt(fmt.Sprintf("New date [%s]: ", current.Flight.Date))),
		From: strings.TrimSpace(a.prompt(fmt.Sprintf("New departure location [%s]: ", current.Flight.From))),
		To:   strings.TrimSpace(a.prompt(fmt.Sprintf("New destination [%s]: ", current.Flight.To))),
		Seat: strings.TrimSpace(a.prompt(fmt.Sprintf("New seat [%s]: ", current.Seat))),
	}
	if strings.EqualFold(strings.TrimSpace(a.prompt("Replace services? (y/N): ")), "y") {
		input.ReplaceServices = true
		input.Services = a.selectServices()
	}

	if _, err := a.bookings.Edit(ctx, a.session, index, input); err != nil {
		if errors.Is(err, domain.ErrUnparsable) {
			fmt.Fprintln(a.out, "Could not parse flight details. Cannot edit.")
		} else {
			fmt.Fprintf(a.out, "Edit failed: %v\n", err)
		}
		a.pause()
		return false
	}
	fmt.Fprintln(a.out, "Flight updated.")
	return true
}

func (a *App) readLine(promptText string) (string, error) {
	fmt.Fprint(a.out, promptText)
	line, err := a.in.ReadString('\n')
	if err != nil {
		a.eof = true
		if line == "" {
			return "", err
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// prompt reads one line, swallowing read errors: an interrupted flow finishes
// with empty answers and the main loop then sees the EOF itself.
func (a *App) prompt(promptText string) string {
	line, err := a.readLine(promptText)
	if err != nil {
		return ""
	}
	return line
}

func (a *App) pause() {
	fmt.Fprint(a.out, "\nPress Enter to continue")
	_, _ = a.in.ReadString('\n')
}

func (a *App) clearScreen() {
	fmt.Fprint(a.out, "\033[2J\033[H")
}
