// Package session ties a logged-in user to their cart and order
// ledger for the lifetime of the session.
package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Abdulla-Nurislam/shiny-canteen/internal/cart"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/order"
)

// Session is one user's ordering state.
type Session struct {
	Cart   *cart.Cart
	Orders *order.Ledger
}

// Manager hands out sessions by user id, creating them lazily on first
// use and dropping them on logout.
type Manager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	taxRate  decimal.Decimal
}

// NewManager creates a session manager. Carts it creates use taxRate.
func NewManager(taxRate decimal.Decimal) *Manager {
	return &Manager{
		sessions: make(map[uuid.UUID]*Session),
		taxRate:  taxRate,
	}
}

// Get returns the session for a user, creating it if needed.
func (m *Manager) Get(userID uuid.UUID) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok {
		s = &Session{
			Cart:   cart.New(m.taxRate),
			Orders: order.NewLedger(),
		}
		m.sessions[userID] = s
	}
	return s
}

// Drop discards a user's session. The cart does not survive logout.
func (m *Manager) Drop(userID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
