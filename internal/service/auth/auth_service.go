package auth

import (
	"context"

	"github.com/ivmart/flightbook/internal/domain"
	"github.com/ivmart/flightbook/internal/repository"
)

type AuthUseCase interface {
	Register(ctx context.Context, username, password string) (*domain.Account, error)
	Login(ctx context.Context, username, password string) (*domain.Session, error)
}

type Service struct {
	accounts repository.AccountRepository
}

func NewService(accounts repository.AccountRepository) *Service {
	return &Service{accounts: accounts}
}

// Register creates a new account with an empty booking list. Usernames and
// passwords are taken as entered; uniqueness is the only check.
func (s *Service) Register(ctx context.Context, username, password string) (*domain.Account, error) {
	return s.accounts.Register(ctx, username, password)
}

// Login authenticates and opens a session holding a working copy of the
// account's bookings.
func (s *Service) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	bookings, err := s.accounts.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return &domain.Session{Username: username, Bookings: bookings}, nil
}

var _ AuthUseCase = (*Service)(nil)
