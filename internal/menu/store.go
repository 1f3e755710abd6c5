package menu

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Abdulla-Nurislam/shiny-canteen/internal/enum"
)

// Errors returned by the catalog store.
var (
	ErrNotFound      = errors.New("menu item not found")
	ErrInvalidStatus = errors.New("invalid item status")
)

// ItemParams carries the admin-supplied fields for create and update.
// The store owns ID and CreatedAt.
type ItemParams struct {
	Name         string
	Description  string
	Price        decimal.Decimal
	Category     string
	Image        string
	IsVegetarian bool
	IsVegan      bool
	Allergens    []string
	Nutrition    Nutrition
	PrepTime     int
	Status       string
}

// Store is the authoritative in-memory catalog. Items are kept in
// insertion order so that equal-key sorts stay deterministic across
// the query engine's stable sort.
type Store struct {
	mu    sync.RWMutex
	items []Item
	index map[uuid.UUID]int
}

// NewStore creates an empty catalog store.
func NewStore() *Store {
	return &Store{index: make(map[uuid.UUID]int)}
}

// ValidStatus reports whether s is one of the known lifecycle statuses.
func ValidStatus(s string) bool {
	switch s {
	case enum.ItemStatusActive, enum.ItemStatusInactive, enum.ItemStatusOutOfStock:
		return true
	}
	return false
}

// Create adds a new item and returns the stored copy.
func (s *Store) Create(p ItemParams) (Item, error) {
	if !ValidStatus(p.Status) {
		return Item{}, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	it := Item{
		ID:           uuid.New(),
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Category:     p.Category,
		Image:        p.Image,
		IsVegetarian: p.IsVegetarian,
		IsVegan:      p.IsVegan,
		Allergens:    append([]string(nil), p.Allergens...),
		Nutrition:    p.Nutrition,
		PrepTime:     p.PrepTime,
		Status:       p.Status,
		CreatedAt:    time.Now(),
	}
	s.index[it.ID] = len(s.items)
	s.items = append(s.items, it)
	return it.clone(), nil
}

// Update replaces the admin-editable fields of an existing item.
// ID and CreatedAt never change.
func (s *Store) Update(id uuid.UUID, p ItemParams) (Item, error) {
	if !ValidStatus(p.Status) {
		return Item{}, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return Item{}, ErrNotFound
	}

	it := &s.items[i]
	it.Name = p.Name
	it.Description = p.Description
	it.Price = p.Price
	it.Category = p.Category
	it.Image = p.Image
	it.IsVegetarian = p.IsVegetarian
	it.IsVegan = p.IsVegan
	it.Allergens = append([]string(nil), p.Allergens...)
	it.Nutrition = p.Nutrition
	it.PrepTime = p.PrepTime
	it.Status = p.Status
	return it.clone(), nil
}

// Delete removes an item from the catalog entirely.
func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return ErrNotFound
	}

	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j].ID] = j
	}
	return nil
}

// Get returns a copy of a single item.
func (s *Store) Get(id uuid.UUID) (Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return Item{}, ErrNotFound
	}
	return s.items[i].clone(), nil
}

// List returns a snapshot of the whole catalog in insertion order.
func (s *Store) List() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, len(s.items))
	for i, it := range s.items {
		out[i] = it.clone()
	}
	return out
}

// ListActive returns the customer-visible subset of the catalog.
func (s *Store) ListActive() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Item
	for _, it := range s.items {
		if it.Status == enum.ItemStatusActive {
			out = append(out, it.clone())
		}
	}
	return out
}

// Categories returns the distinct categories present in the catalog,
// in first-seen order. Feeds the admin filter panel.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, it := range s.items {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	return out
}
