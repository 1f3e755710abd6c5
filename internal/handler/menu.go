package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Abdulla-Nurislam/shiny-canteen/internal/enum"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/menu"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/page"
)

// CatalogStore defines the catalog methods needed by menu handlers.
// Satisfied by *menu.Store; narrow interface for testability.
type CatalogStore interface {
	List() []menu.Item
	ListActive() []menu.Item
	Get(id uuid.UUID) (menu.Item, error)
	Create(p menu.ItemParams) (menu.Item, error)
	Update(id uuid.UUID, p menu.ItemParams) (menu.Item, error)
	Delete(id uuid.UUID) error
	Categories() []string
}

// MenuHandler handles the admin catalog endpoints.
type MenuHandler struct {
	store    CatalogStore
	pageSize int
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(store CatalogStore, pageSize int) *MenuHandler {
	return &MenuHandler{store: store, pageSize: pageSize}
}

// RegisterRoutes registers admin catalog endpoints on the given Chi
// router. Expected to be mounted behind the ADMIN role guard.
func (h *MenuHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// --- Request / Response types ---

type itemRequest struct {
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Price        string         `json:"price"`
	Category     string         `json:"category"`
	Image        string         `json:"image"`
	IsVegetarian bool           `json:"is_vegetarian"`
	IsVegan      bool           `json:"is_vegan"`
	Allergens    []string       `json:"allergens"`
	Nutrition    menu.Nutrition `json:"nutrition"`
	PrepTime     int            `json:"prep_time"`
	Status       string         `json:"status"`
}

type itemResponse struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Price        string         `json:"price"`
	Category     string         `json:"category"`
	Image        string         `json:"image"`
	IsVegetarian bool           `json:"is_vegetarian"`
	IsVegan      bool           `json:"is_vegan"`
	Allergens    []string       `json:"allergens"`
	Nutrition    menu.Nutrition `json:"nutrition"`
	PrepTime     int            `json:"prep_time"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
}

type listResponse struct {
	Items      []itemResponse `json:"items"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	TotalItems int            `json:"total_items"`
	Pages      []int          `json:"pages"`
	Categories []string       `json:"categories"`
}

func toItemResponse(it menu.Item) itemResponse {
	return itemResponse{
		ID:           it.ID,
		Name:         it.Name,
		Description:  it.Description,
		Price:        it.Price.StringFixed(2),
		Category:     it.Category,
		Image:        it.Image,
		IsVegetarian: it.IsVegetarian,
		IsVegan:      it.IsVegan,
		Allergens:    it.Allergens,
		Nutrition:    it.Nutrition,
		PrepTime:     it.PrepTime,
		Status:       it.Status,
		CreatedAt:    it.CreatedAt,
	}
}

// --- Helpers ---

var errNegativePrice = errors.New("negative price")

func parsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if d.IsNegative() {
		return decimal.Decimal{}, errNegativePrice
	}
	return d, nil
}

// queryFromRequest builds a catalog query from the request's URL
// parameters. Facet params repeat: ?category=Супы&category=Выпечка.
func queryFromRequest(r *http.Request) (menu.Query, error) {
	params := r.URL.Query()

	q := menu.Query{
		Search:     params.Get("search"),
		Categories: params["category"],
		Statuses:   params["status"],
		Dietary:    params["dietary"],
		Sort:       params.Get("sort"),
	}
	if q.Sort == "" {
		q.Sort = enum.SortDateNew
	}
	if !menu.ValidSort(q.Sort) {
		return menu.Query{}, errors.New("invalid sort")
	}
	for _, s := range q.Statuses {
		if !menu.ValidStatus(s) {
			return menu.Query{}, errors.New("invalid status")
		}
	}
	for _, d := range q.Dietary {
		if d != enum.DietaryVegetarian && d != enum.DietaryVegan {
			return menu.Query{}, errors.New("invalid dietary tag")
		}
	}
	return q, nil
}

// pageFromRequest reads the requested page number, defaulting to 1.
func pageFromRequest(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// listPage runs the query over a snapshot and paginates the result.
// The requested page is clamped to the last page so a stale page
// number after a filter change never lands beyond the result.
func listPage(snapshot []menu.Item, q menu.Query, pageSize, pageNum int) listResponse {
	filtered := q.Apply(snapshot)

	totalPages := (len(filtered) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if pageNum > totalPages {
		pageNum = totalPages
	}

	p := page.Paginate(filtered, pageSize, pageNum)

	items := make([]itemResponse, len(p.Items))
	for i, it := range p.Items {
		items[i] = toItemResponse(it)
	}

	return listResponse{
		Items:      items,
		Page:       p.Number,
		TotalPages: p.TotalPages,
		TotalItems: p.TotalItems,
		Pages:      page.Numbers(p.Number, p.TotalPages),
	}
}

func paramsFromRequest(req itemRequest) (menu.ItemParams, string) {
	if req.Name == "" {
		return menu.ItemParams{}, "name is required"
	}
	if req.Price == "" {
		return menu.ItemParams{}, "price is required"
	}
	price, err := parsePrice(req.Price)
	if err != nil {
		if errors.Is(err, errNegativePrice) {
			return menu.ItemParams{}, "price must be >= 0"
		}
		return menu.ItemParams{}, "invalid price"
	}
	if req.Category == "" {
		return menu.ItemParams{}, "category is required"
	}
	status := req.Status
	if status == "" {
		status = enum.ItemStatusActive
	}
	if !menu.ValidStatus(status) {
		return menu.ItemParams{}, "invalid status"
	}

	return menu.ItemParams{
		Name:         req.Name,
		Description:  req.Description,
		Price:        price,
		Category:     req.Category,
		Image:        req.Image,
		IsVegetarian: req.IsVegetarian,
		IsVegan:      req.IsVegan,
		Allergens:    req.Allergens,
		Nutrition:    req.Nutrition,
		PrepTime:     req.PrepTime,
		Status:       status,
	}, ""
}

// --- Handlers ---

// List returns a filtered, sorted, paginated view of the full catalog.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := queryFromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	resp := listPage(h.store.List(), q, h.pageSize, pageFromRequest(r))
	resp.Categories = h.store.Categories()
	writeJSON(w, http.StatusOK, resp)
}

// Get returns a single item by ID.
func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid item ID"})
		return
	}

	item, err := h.store.Get(id)
	if err != nil {
		if errors.Is(err, menu.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
			return
		}
		log.Printf("ERROR: get item: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// Create adds a new item to the catalog.
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	params, msg := paramsFromRequest(req)
	if msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	item, err := h.store.Create(params)
	if err != nil {
		log.Printf("ERROR: create item: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(item))
}

// Update modifies an existing item.
func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid item ID"})
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	params, msg := paramsFromRequest(req)
	if msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	item, err := h.store.Update(id, params)
	if err != nil {
		if errors.Is(err, menu.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
			return
		}
		log.Printf("ERROR: update item: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// Delete removes an item from the catalog.
func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid item ID"})
		return
	}

	if err := h.store.Delete(id); err != nil {
		if errors.Is(err, menu.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
			return
		}
		log.Printf("ERROR: delete item: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
