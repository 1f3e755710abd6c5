package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Abdulla-Nurislam/shiny-canteen/internal/account"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/middleware"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/order"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/session"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/ws"
)

// BalanceStore defines the account methods needed to place orders.
// Satisfied by *account.Store; narrow interface for testability.
type BalanceStore interface {
	Get(id uuid.UUID) (account.Profile, error)
	Debit(id uuid.UUID, amount decimal.Decimal) (account.Profile, error)
}

// OrderHandler handles checkout and order history.
type OrderHandler struct {
	accounts BalanceStore
	sessions *session.Manager
	hub      *ws.Hub
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(accounts BalanceStore, sessions *session.Manager, hub *ws.Hub) *OrderHandler {
	return &OrderHandler{accounts: accounts, sessions: sessions, hub: hub}
}

// RegisterRoutes registers order endpoints on the given Chi router.
// Expected to be mounted behind authentication.
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.Checkout)
	r.Get("/", h.History)
}

// --- Response types ---

type orderResponse struct {
	ID               int64              `json:"id"`
	Number           string             `json:"number"`
	Lines            []cartLineResponse `json:"lines"`
	Total            string             `json:"total"`
	Status           string             `json:"status"`
	OrderTime        time.Time          `json:"order_time"`
	EstimatedMinutes int                `json:"estimated_minutes"`
}

type checkoutResponse struct {
	Order   orderResponse `json:"order"`
	Balance string        `json:"balance"`
}

type insufficientBalanceResponse struct {
	Error     string `json:"error"`
	Shortfall string `json:"shortfall"`
}

func toOrderResponse(o order.Order) orderResponse {
	resp := orderResponse{
		ID:               o.ID,
		Number:           o.Number,
		Lines:            make([]cartLineResponse, len(o.Lines)),
		Total:            o.Total.StringFixed(2),
		Status:           o.Status,
		OrderTime:        o.OrderTime,
		EstimatedMinutes: o.EstimatedMinutes,
	}
	for i, l := range o.Lines {
		resp.Lines[i] = cartLineResponse{
			Item:     toItemResponse(l.Item),
			Quantity: l.Quantity,
			Total:    l.Total().StringFixed(2),
		}
	}
	return resp
}

// --- Handlers ---

// Checkout commits the caller's cart into a new order. The whole cart
// is paid from the prepaid balance or not at all. An empty cart is a
// no-op, not an error.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	sess := h.sessions.Get(claims.UserID)
	if sess.Cart.Empty() {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	profile, err := h.accounts.Get(claims.UserID)
	if err != nil {
		log.Printf("ERROR: checkout: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	total := sess.Cart.Total()
	decision := order.CanCheckout(total, profile.Balance)
	if !decision.OK {
		writeJSON(w, http.StatusBadRequest, insufficientBalanceResponse{
			Error:     "insufficient balance",
			Shortfall: decision.Shortfall.StringFixed(2),
		})
		return
	}

	o := sess.Orders.Commit(sess.Cart.Lines(), total)

	profile, err = h.accounts.Debit(claims.UserID, total)
	if err != nil {
		log.Printf("ERROR: debit after checkout: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	sess.Cart.Clear()

	if h.hub != nil {
		if payload, err := json.Marshal(toOrderResponse(o)); err == nil {
			h.hub.BroadcastToUser(claims.UserID, ws.Event{Type: "ORDER_PLACED", Payload: payload})
		}
	}

	writeJSON(w, http.StatusCreated, checkoutResponse{
		Order:   toOrderResponse(o),
		Balance: profile.Balance.StringFixed(2),
	})
}

// History returns the caller's orders, newest first.
func (h *OrderHandler) History(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	orders := h.sessions.Get(claims.UserID).Orders.History()
	resp := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp[i] = toOrderResponse(o)
	}
	writeJSON(w, http.StatusOK, resp)
}
