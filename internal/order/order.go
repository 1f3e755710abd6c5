// Package order turns committed carts into immutable order records and
// keeps the session's order history.
package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Abdulla-Nurislam/shiny-canteen/internal/cart"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/enum"
)

// Order is a committed cart. Lines are a by-value snapshot taken at
// commit time; later catalog edits never alter a placed order. Only
// Status moves after creation, and only forward.
type Order struct {
	ID               int64           `json:"id"`
	Number           string          `json:"number"`
	Lines            []cart.Line     `json:"lines"`
	Total            decimal.Decimal `json:"total"`
	Status           string          `json:"status"`
	OrderTime        time.Time       `json:"order_time"`
	EstimatedMinutes int             `json:"estimated_minutes"`
}

// ValidStatusTransition reports whether an order may move from one
// status to the next. The machine is strictly forward:
// PREPARING → READY → COMPLETED.
func ValidStatusTransition(from, to string) bool {
	switch from {
	case enum.OrderStatusPreparing:
		return to == enum.OrderStatusReady
	case enum.OrderStatusReady:
		return to == enum.OrderStatusCompleted
	}
	return false
}

// nextStatus returns the successor status, or "" when the order is in
// its final state.
func nextStatus(s string) string {
	switch s {
	case enum.OrderStatusPreparing:
		return enum.OrderStatusReady
	case enum.OrderStatusReady:
		return enum.OrderStatusCompleted
	}
	return ""
}
