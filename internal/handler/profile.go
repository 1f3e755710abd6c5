package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Abdulla-Nurislam/shiny-canteen/internal/account"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/middleware"
)

// ProfileHandler serves the caller's own profile and balance.
type ProfileHandler struct {
	store AccountStore
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(store AccountStore) *ProfileHandler {
	return &ProfileHandler{store: store}
}

// RegisterRoutes registers profile endpoints on the given Chi router.
// Expected to be mounted behind authentication.
func (h *ProfileHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Get)
}

// Get returns the authenticated user's profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	profile, err := h.store.Get(claims.UserID)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "profile not found"})
			return
		}
		log.Printf("ERROR: get profile: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(profile))
}
