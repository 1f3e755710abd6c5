package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Abdulla-Nurislam/shiny-canteen/internal/cart"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/menu"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/middleware"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/session"
)

// CartHandler handles the session cart endpoints.
type CartHandler struct {
	catalog  CatalogStore
	sessions *session.Manager
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(catalog CatalogStore, sessions *session.Manager) *CartHandler {
	return &CartHandler{catalog: catalog, sessions: sessions}
}

// RegisterRoutes registers cart endpoints on the given Chi router.
// Expected to be mounted behind authentication.
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Get)
	r.Post("/items", h.AddItem)
	r.Put("/items/{id}", h.SetQuantity)
	r.Delete("/items/{id}", h.RemoveItem)
}

// --- Request / Response types ---

type addItemRequest struct {
	ItemID string `json:"item_id"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type cartLineResponse struct {
	Item     itemResponse `json:"item"`
	Quantity int          `json:"quantity"`
	Total    string       `json:"total"`
}

type cartResponse struct {
	Lines     []cartLineResponse `json:"lines"`
	ItemCount int                `json:"item_count"`
	Subtotal  string             `json:"subtotal"`
	Tax       string             `json:"tax"`
	Total     string             `json:"total"`
}

func toCartResponse(c *cart.Cart) cartResponse {
	lines := c.Lines()
	resp := cartResponse{
		Lines:     make([]cartLineResponse, len(lines)),
		ItemCount: c.ItemCount(),
		Subtotal:  c.Subtotal().StringFixed(2),
		Tax:       c.Tax().StringFixed(2),
		Total:     c.Total().StringFixed(2),
	}
	for i, l := range lines {
		resp.Lines[i] = cartLineResponse{
			Item:     toItemResponse(l.Item),
			Quantity: l.Quantity,
			Total:    l.Total().StringFixed(2),
		}
	}
	return resp
}

// --- Handlers ---

// Get returns the caller's cart with its running totals.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	writeJSON(w, http.StatusOK, toCartResponse(h.sessions.Get(claims.UserID).Cart))
}

// AddItem puts one portion of a menu item into the cart.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid item_id"})
		return
	}

	item, err := h.catalog.Get(itemID)
	if err != nil {
		if errors.Is(err, menu.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
			return
		}
		log.Printf("ERROR: add to cart: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	sess := h.sessions.Get(claims.UserID)
	if _, err := sess.Cart.Add(item); err != nil {
		if errors.Is(err, cart.ErrItemUnavailable) {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "item is not available"})
			return
		}
		log.Printf("ERROR: add to cart: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, toCartResponse(sess.Cart))
}

// SetQuantity sets a line's quantity; zero or below removes the line.
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid item ID"})
		return
	}

	var req setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	sess := h.sessions.Get(claims.UserID)
	sess.Cart.SetQuantity(itemID, req.Quantity)
	writeJSON(w, http.StatusOK, toCartResponse(sess.Cart))
}

// RemoveItem deletes a line from the cart.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid item ID"})
		return
	}

	sess := h.sessions.Get(claims.UserID)
	sess.Cart.Remove(itemID)
	writeJSON(w, http.StatusOK, toCartResponse(sess.Cart))
}
