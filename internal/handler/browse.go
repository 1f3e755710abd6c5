package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// BrowseHandler serves the customer-facing menu. It runs the same
// query engine as the admin list but only ever over the active subset
// of the catalog: customers never see inactive or out-of-stock items,
// and the status facet is not theirs to choose.
type BrowseHandler struct {
	store    CatalogStore
	pageSize int
}

// NewBrowseHandler creates a new BrowseHandler.
func NewBrowseHandler(store CatalogStore, pageSize int) *BrowseHandler {
	return &BrowseHandler{store: store, pageSize: pageSize}
}

// RegisterRoutes registers the customer menu endpoint.
func (h *BrowseHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
}

// List returns the active menu, filtered and sorted per query params.
func (h *BrowseHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := queryFromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	// The snapshot is already active-only; a status facet would only
	// hide items, so drop it.
	q.Statuses = nil

	writeJSON(w, http.StatusOK, listPage(h.store.ListActive(), q, h.pageSize, pageFromRequest(r)))
}
