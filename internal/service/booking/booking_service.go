package booking

import (
	"context"
	"errors"

	"github.com/ivmart/flightbook/internal/domain"
	"github.com/ivmart/flightbook/internal/repository"
)

var (
	ErrNotLoggedIn = errors.New("not logged in")
	ErrOutOfRange  = errors.New("booking index out of range")
)

type BookingUseCase interface {
	Create(ctx context.Context, sess *domain.Session, input CreateInput) (domain.Booking, error)
	List(ctx context.Context, sess *domain.Session) ([]string, error)
	Remove(ctx context.Context, sess *domain.Session, index int) (domain.Booking, error)
	Edit(ctx context.Context, sess *domain.Session, index int, input EditInput) (domain.Booking, error)
}

type CreateInput struct {
	From     string
	To       string
	Date     string
	Seat     string
	Services []string
}

// EditInput carries replacement values for one booking. An empty string keeps
// the current value, matching the blank-keeps-old prompt contract.
type EditInput struct {
	Date            string
	From            string
	To              string
	Seat            string
	ReplaceServices bool
	Services        []string
}

type Service struct {
	accounts repository.AccountRepository
}

func NewService(accounts repository.AccountRepository) *Service {
	return &Service{accounts: accounts}
}

// Create books a flight for the session's account and writes the updated list
// back into the store before returning.
func (s *Service) Create(ctx context.Context, sess *domain.Session, input CreateInput) (domain.Booking, error) {
	if sess == nil {
		return domain.Booking{}, ErrNotLoggedIn
	}

	flight := domain.Flight{
		Number: domain.GenerateNumber(input.To),
		Date:   input.Date,
		From:   input.From,
		To:     input.To,
	}
	b := domain.NewBooking(flight, input.Seat, input.Services)

	sess.Bookings = append(sess.Bookings, b)
	if err := s.accounts.UpdateBookings(ctx, sess.Username, sess.Bookings); err != nil {
		return domain.Booking{}, err
	}
	return b, nil
}

// List renders the session's bookings in stored order.
func (s *Service) List(ctx context.Context, sess *domain.Session) ([]string, error) {
	if sess == nil {
		return nil, ErrNotLoggedIn
	}
	lines := make([]string, len(sess.Bookings))
	for i, b := range sess.Bookings {
		lines[i] = b.Line()
	}
	return lines, nil
}

// Remove deletes the booking at index (zero-based) and writes the list back.
func (s *Service) Remove(ctx context.Context, sess *domain.Session, index int) (domain.Booking, error) {
	if sess == nil {
		return domain.Booking{}, ErrNotLoggedIn
	}
	if index < 0 || index >= len(sess.Bookings) {
		return domain.Booking{}, ErrOutOfRange
	}

	removed := sess.Bookings[index]
	sess.Bookings = append(sess.Bookings[:index], sess.Bookings[index+1:]...)
	if err := s.accounts.UpdateBookings(ctx, sess.Username, sess.Bookings); err != nil {
		return domain.Booking{}, err
	}
	return removed, nil
}

// Edit replaces the booking at index in place. The flight number is
// regenerated only when the destination changes; otherwise it is retained.
func (s *Service) Edit(ctx context.Context, sess *domain.Session, index int, input EditInput) (domain.Booking, error) {
	if sess == nil {
		return domain.Booking{}, ErrNotLoggedIn
	}
	if index < 0 || index >= len(sess.Bookings) {
		return domain.Booking{}, ErrOutOfRange
	}

	current := sess.Bookings[index]
	if !current.Editable() {
		return domain.Booking{}, domain.ErrUnparsable
	}

	flight := current.Flight
	if input.Date != "" {
		flight.Date = input.Date
	}
	if input.From != "" {
		flight.From = input.From
	}
	if input.To != "" && input.To != flight.To {
		flight.To = input.To
		flight.Number = domain.GenerateNumber(flight.To)
	}

	updated := current
	updated.Flight = flight
	if input.Seat != "" {
		updated.Seat = input.Seat
	}
	if input.ReplaceServices {
		updated.Services = input.Services
	}

	sess.Bookings[index] = updated
	if err := s.accounts.UpdateBookings(ctx, sess.Username, sess.Bookings); err != nil {
		return domain.Booking{}, err
	}
	return updated, nil
}

var _ BookingUseCase = (*Service)(nil)
