package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ivmart/flightbook/internal/domain"
	"github.com/ivmart/flightbook/internal/repository"
)

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Register(ctx context.Context, username, password string) (*domain.Account, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) Authenticate(ctx context.Context, username, password string) ([]domain.Booking, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockAccountRepository) UpdateBookings(ctx context.Context, username string, bookings []domain.Booking) error {
	args := m.Called(ctx, username, bookings)
	return args.Error(0)
}

func (m *MockAccountRepository) Load(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountRepository) Save(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestLogin_Success(t *testing.T) {
	repo := &MockAccountRepository{}
	service := NewService(repo)
	ctx := context.Background()

	stored := []domain.Booking{
		domain.NewBooking(domain.Flight{Number: "PAR123", Date: "01/01/2026", From: "NYC", To: "Paris"}, "5C", []string{"Meal"}),
	}
	repo.On("Authenticate", ctx, "alice", "secret").Return(stored, nil).Once()

	sess, err := service.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", sess.Username)
	assert.Equal(t, stored, sess.Bookings)

	repo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := &MockAccountRepository{}
	service := NewService(repo)
	ctx := context.Background()

	repo.On("Authenticate", ctx, "alice", "wrong").Return(nil, repository.ErrWrongPassword).Once()

	sess, err := service.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, repository.ErrWrongPassword)
	assert.Nil(t, sess)

	repo.AssertExpectations(t)
}

func TestLogin_UnknownUser(t *testing.T) {
	repo := &MockAccountRepository{}
	service := NewService(repo)
	ctx := context.Background()

	repo.On("Authenticate", ctx, "nobody", "x").Return(nil, repository.ErrUnknownUser).Once()

	sess, err := service.Login(ctx, "nobody", "x")
	assert.ErrorIs(t, err, repository.ErrUnknownUser)
	assert.Nil(t, sess)
}

func TestRegister_Delegates(t *testing.T) {
	repo := &MockAccountRepository{}
	service := NewService(repo)
	ctx := context.Background()

	acc := &domain.Account{Username: "alice", Password: "secret", Bookings: []domain.Booking{}}
	repo.On("Register", ctx, "alice", "secret").Return(acc, nil).Once()

	got, err := service.Register(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, acc, got)

	repo.AssertExpectations(t)
}

func TestRegister_Duplicate(t *testing.T) {
	repo := &MockAccountRepository{}
	service := NewService(repo)
	ctx := context.Background()

	repo.On("Register", ctx, "alice", "secret").Return(nil, repository.ErrDuplicateUsername).Once()

	_, err := service.Register(ctx, "alice", "secret")
	assert.ErrorIs(t, err, repository.ErrDuplicateUsername)
}
