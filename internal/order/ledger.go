package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Abdulla-Nurislam/shiny-canteen/internal/cart"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/enum"
)

// Kitchen estimate for a fresh order, in minutes. There is no dynamic
// kitchen-load estimation; every order gets the same default.
const defaultEstimatedMinutes = 10

// Errors returned by the ledger.
var (
	ErrNotFound    = errors.New("order not found")
	ErrFinalStatus = errors.New("order is already completed")
)

// Ledger owns the session's orders. Ids are strictly increasing within
// the session; records are immutable apart from status advancement.
type Ledger struct {
	nextID int64
	orders []Order
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{nextID: 1}
}

// Commit converts cart lines into a new order with status PREPARING.
// The lines are snapshotted by value so the record is immune to later
// cart or catalog mutation.
func (l *Ledger) Commit(lines []cart.Line, total decimal.Decimal) Order {
	o := Order{
		ID:               l.nextID,
		Number:           fmt.Sprintf("CTN-%03d", l.nextID),
		Lines:            snapshotLines(lines),
		Total:            total,
		Status:           enum.OrderStatusPreparing,
		OrderTime:        time.Now(),
		EstimatedMinutes: defaultEstimatedMinutes,
	}
	l.nextID++
	l.orders = append(l.orders, o)
	return o
}

// History returns the session's orders newest-first.
func (l *Ledger) History() []Order {
	out := make([]Order, len(l.orders))
	for i, o := range l.orders {
		out[len(l.orders)-1-i] = o
	}
	return out
}

// Get returns a single order by id.
func (l *Ledger) Get(id int64) (Order, error) {
	for _, o := range l.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}

// Advance moves an order to its next status. The machine only runs
// forward; advancing a completed order fails. Nothing in the service
// calls this on its own — it is the hook for whatever eventually
// drives kitchen progress.
func (l *Ledger) Advance(id int64) (Order, error) {
	for i := range l.orders {
		if l.orders[i].ID != id {
			continue
		}
		next := nextStatus(l.orders[i].Status)
		if next == "" {
			return Order{}, ErrFinalStatus
		}
		l.orders[i].Status = next
		return l.orders[i], nil
	}
	return Order{}, ErrNotFound
}

// snapshotLines deep-copies cart lines, including each item's allergen
// slice, so no backing array is shared with the live cart.
func snapshotLines(lines []cart.Line) []cart.Line {
	out := make([]cart.Line, len(lines))
	for i, ln := range lines {
		cp := ln
		if ln.Item.Allergens != nil {
			cp.Item.Allergens = append([]string(nil), ln.Item.Allergens...)
		}
		out[i] = cp
	}
	return out
}
