package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/ivmart/flightbook/internal/domain"
)

var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrUnknownUser       = errors.New("username not found")
	ErrWrongPassword     = errors.New("incorrect password")
)

type AccountRepository interface {
	Register(ctx context.Context, username, password string) (*domain.Account, error)
	Authenticate(ctx context.Context, username, password string) ([]domain.Booking, error)
	UpdateBookings(ctx context.Context, username string, bookings []domain.Booking) error
	Load(ctx context.Context) error
	Save(ctx context.Context) error
}

// FileAccountRepository keeps every account in memory and persists the whole
// username-to-account map to a single JSON file. The file is the only durable
// state; there is no partial-write protection and no cross-process safety.
type FileAccountRepository struct {
	path string

	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

func NewFileAccountRepository(path string) *FileAccountRepository {
	return &FileAccountRepository{path: path, accounts: make(map[string]*domain.Account)}
}

// Load reads the store file. An absent file is not an error: the store simply
// starts empty. A present but malformed file is.
func (r *FileAccountRepository) Load(ctx context.Context) error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read store %s: %w", r.path, err)
	}

	accounts := make(map[string]*domain.Account)
	if err := json.Unmarshal(data, &accounts); err != nil {
		return fmt.Errorf("parse store %s: %w", r.path, err)
	}
	for username, acc := range accounts {
		acc.Username = username
		if acc.Bookings == nil {
			acc.Bookings = []domain.Booking{}
		}
	}

	r.mu.Lock()
	r.accounts = accounts
	r.mu.Unlock()
	return nil
}

// Save overwrites the store file with the full map.
func (r *FileAccountRepository) Save(ctx context.Context) error {
	r.mu.RLock()
	data, err := json.MarshalIndent(r.accounts, "", "    ")
	r.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write store %s: %w", r.path, err)
	}
	return nil
}

func (r *FileAccountRepository) Register(ctx context.Context, username, password string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[username]; ok {
		return nil, ErrDuplicateUsername
	}
	acc := &domain.Account{Username: username, Password: password, Bookings: []domain.Booking{}}
	r.accounts[username] = acc
	return acc, nil
}

// Authenticate returns a snapshot of the account's bookings so callers can
// mutate their working copy without reaching into the store.
func (r *FileAccountRepository) Authenticate(ctx context.Context, username, password string) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, ok := r.accounts[username]
	if !ok {
		return nil, ErrUnknownUser
	}
	if acc.Password != password {
		return nil, ErrWrongPassword
	}

	bookings := make([]domain.Booking, len(acc.Bookings))
	copy(bookings, acc.Bookings)
	return bookings, nil
}

func (r *FileAccountRepository) UpdateBookings(ctx context.Context, username string, bookings []domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	acc, ok := r.accounts[username]
	if !ok {
		return ErrUnknownUser
	}
	acc.Bookings = bookings
	return nil
}

var _ AccountRepository = (*FileAccountRepository)(nil)
