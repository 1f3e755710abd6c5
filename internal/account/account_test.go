package account_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Abdulla-Nurislam/shiny-canteen/internal/account"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/enum"
)

func newStore() *account.Store {
	return account.NewStore(decimal.NewFromInt(5000))
}

func TestRegisterAndLogin(t *testing.T) {
	store := newStore()

	profile, err := store.Register("Мария Петрова", "maria@canteen.local", "+7 (777) 555-00-11", "secret", enum.UserRoleCustomer)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if profile.Balance.StringFixed(2) != "5000.00" {
		t.Errorf("balance: got %s, want 5000.00", profile.Balance.StringFixed(2))
	}
	if profile.Role != enum.UserRoleCustomer {
		t.Errorf("role: got %s", profile.Role)
	}

	got, err := store.Login("maria@canteen.local", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != profile.ID {
		t.Errorf("login returned a different profile")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := newStore()

	if _, err := store.Register("Мария", "maria@canteen.local", "", "secret", enum.UserRoleCustomer); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := store.Register("Другая Мария", "maria@canteen.local", "", "other", enum.UserRoleCustomer)
	if !errors.Is(err, account.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	store := newStore()
	store.Register("Мария", "maria@canteen.local", "", "secret", enum.UserRoleCustomer)

	_, err := store.Login("maria@canteen.local", "wrong")
	if !errors.Is(err, account.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_ProvisionsDemoProfile(t *testing.T) {
	store := newStore()

	profile, err := store.Login("guest@example.com", "anything")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if profile.FullName != "Алексей Иванов" {
		t.Errorf("full name: got %s", profile.FullName)
	}
	if profile.Email != "guest@example.com" {
		t.Errorf("email: got %s", profile.Email)
	}
	if profile.Role != enum.UserRoleCustomer {
		t.Errorf("role: got %s", profile.Role)
	}

	// A second login for the same email returns the same profile
	// instead of provisioning again.
	again, err := store.Login("guest@example.com", "different-password")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if again.ID != profile.ID {
		t.Errorf("second login provisioned a new profile")
	}
}

func TestGet_Unknown(t *testing.T) {
	store := newStore()

	_, err := store.Get(uuid.New())
	if !errors.Is(err, account.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDebit(t *testing.T) {
	store := newStore()
	profile, _ := store.Register("Мария", "maria@canteen.local", "", "secret", enum.UserRoleCustomer)

	updated, err := store.Debit(profile.ID, decimal.NewFromInt(918))
	if err != nil {
		t.Fatalf("debit: %v", err)
	}
	if updated.Balance.StringFixed(2) != "4082.00" {
		t.Errorf("balance after debit: got %s, want 4082.00", updated.Balance.StringFixed(2))
	}

	stored, _ := store.Get(profile.ID)
	if !stored.Balance.Equal(updated.Balance) {
		t.Errorf("stored balance diverges: %s vs %s", stored.Balance, updated.Balance)
	}
}

func TestDebit_Unknown(t *testing.T) {
	store := newStore()

	_, err := store.Debit(uuid.New(), decimal.NewFromInt(100))
	if !errors.Is(err, account.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
