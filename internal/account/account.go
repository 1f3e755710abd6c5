// Package account keeps the in-memory user profiles: who is logged in
// and how much canteen balance they carry.
package account

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/Abdulla-Nurislam/shiny-canteen/internal/enum"
)

// Errors returned by the account store.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotFound           = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Demo identity handed to anyone who logs in without registering
// first. Authentication is a stub: the point of the flow is producing
// a profile with a balance, not verifying anyone.
const (
	demoFullName = "Алексей Иванов"
	demoPhone    = "+7 (777) 123-45-67"
)

// Profile is the user as the rest of the service sees it. Balance is
// the prepaid canteen balance checkout validates against.
type Profile struct {
	ID           uuid.UUID       `json:"id"`
	FullName     string          `json:"full_name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Role         string          `json:"role"`
	Balance      decimal.Decimal `json:"balance"`
	RegisteredAt time.Time       `json:"registered_at"`
}

type record struct {
	profile        Profile
	hashedPassword []byte
}

// Store is the in-memory account registry.
type Store struct {
	mu             sync.Mutex
	byEmail        map[string]*record
	byID           map[uuid.UUID]*record
	defaultBalance decimal.Decimal
}

// NewStore creates an account store. New profiles start with
// defaultBalance.
func NewStore(defaultBalance decimal.Decimal) *Store {
	return &Store{
		byEmail:        make(map[string]*record),
		byID:           make(map[uuid.UUID]*record),
		defaultBalance: defaultBalance,
	}
}

// Register creates an account with a bcrypt-hashed password.
func (s *Store) Register(fullName, email, phone, password, role string) (Profile, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Profile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return Profile{}, ErrEmailTaken
	}

	rec := &record{
		profile: Profile{
			ID:           uuid.New(),
			FullName:     fullName,
			Email:        email,
			Phone:        phone,
			Role:         role,
			Balance:      s.defaultBalance,
			RegisteredAt: time.Now(),
		},
		hashedPassword: hash,
	}
	s.byEmail[email] = rec
	s.byID[rec.profile.ID] = rec
	return rec.profile, nil
}

// Login authenticates an email/password pair. Registered accounts get
// a real password check; any other email is accepted as-is and a demo
// customer profile is provisioned for it on the spot.
func (s *Store) Login(email, password string) (Profile, error) {
	s.mu.Lock()
	rec, exists := s.byEmail[email]
	s.mu.Unlock()

	if exists {
		if err := bcrypt.CompareHashAndPassword(rec.hashedPassword, []byte(password)); err != nil {
			return Profile{}, ErrInvalidCredentials
		}
		return rec.profile, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check under the lock: a concurrent login for the same email
	// may have provisioned the profile already.
	if rec, exists := s.byEmail[email]; exists {
		return rec.profile, nil
	}

	rec = &record{
		profile: Profile{
			ID:           uuid.New(),
			FullName:     demoFullName,
			Email:        email,
			Phone:        demoPhone,
			Role:         enum.UserRoleCustomer,
			Balance:      s.defaultBalance,
			RegisteredAt: time.Now(),
		},
	}
	s.byEmail[email] = rec
	s.byID[rec.profile.ID] = rec
	return rec.profile, nil
}

// Get returns the profile for an id.
func (s *Store) Get(id uuid.UUID) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[id]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return rec.profile, nil
}

// Debit subtracts amount from the profile's balance and returns the
// updated profile. The checkout validator decides whether the balance
// covers the amount; Debit just applies the outcome.
func (s *Store) Debit(id uuid.UUID, amount decimal.Decimal) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[id]
	if !ok {
		return Profile{}, ErrNotFound
	}
	rec.profile.Balance = rec.profile.Balance.Sub(amount)
	return rec.profile, nil
}
