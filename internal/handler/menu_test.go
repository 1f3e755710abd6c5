package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Abdulla-Nurislam/shiny-canteen/internal/enum"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/handler"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/menu"
)

const testPageSize = 6

// --- Helpers ---

func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeObject(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func setupMenuRouter(store *menu.Store) *chi.Mux {
	h := handler.NewMenuHandler(store, testPageSize)
	r := chi.NewRouter()
	r.Route("/admin/menu", h.RegisterRoutes)
	return r
}

func seedItem(t *testing.T, store *menu.Store, name, category, price, status string) menu.Item {
	t.Helper()
	item, err := store.Create(menu.ItemParams{
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Category: category,
		Status:   status,
	})
	if err != nil {
		t.Fatalf("seed item %q: %v", name, err)
	}
	return item
}

func itemNames(t *testing.T, resp map[string]interface{}) []string {
	t.Helper()
	raw, ok := resp["items"].([]interface{})
	if !ok {
		t.Fatalf("items missing in response: %v", resp)
	}
	names := make([]string, len(raw))
	for i, v := range raw {
		names[i] = v.(map[string]interface{})["name"].(string)
	}
	return names
}

// --- List tests ---

func TestMenuList_Empty(t *testing.T) {
	store := menu.NewStore()
	router := setupMenuRouter(store)

	rr := doRequest(t, router, "GET", "/admin/menu/", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	resp := decodeObject(t, rr)
	if len(itemNames(t, resp)) != 0 {
		t.Errorf("expected empty list, got %v", itemNames(t, resp))
	}
	if resp["total_pages"].(float64) != 1 {
		t.Errorf("total_pages: got %v, want 1", resp["total_pages"])
	}
	if resp["page"].(float64) != 1 {
		t.Errorf("page: got %v, want 1", resp["page"])
	}
}

func TestMenuList_IncludesAllStatuses(t *testing.T) {
	store := menu.NewStore()
	seedItem(t, store, "Суп гороховый", "Супы", "650", enum.ItemStatusActive)
	seedItem(t, store, "Компот", "Напитки", "150", enum.ItemStatusInactive)

	router := setupMenuRouter(store)
	rr := doRequest(t, router, "GET", "/admin/menu/?sort=name-asc", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}

	names := itemNames(t, decodeObject(t, rr))
	if len(names) != 2 {
		t.Fatalf("expected 2 items, got %v", names)
	}
}

func TestMenuList_FilterByCategory(t *testing.T) {
	store := menu.NewStore()
	seedItem(t, store, "Суп гороховый", "Супы", "650", enum.ItemStatusActive)
	seedItem(t, store, "Булочка с маком", "Выпечка", "200", enum.ItemStatusActive)
	seedItem(t, store, "Борщ", "Супы", "700", enum.ItemStatusActive)

	router := setupMenuRouter(store)
	rr := doRequest(t, router, "GET", "/admin/menu/?category=Супы&sort=price-asc", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}

	names := itemNames(t, decodeObject(t, rr))
	if len(names) != 2 || names[0] != "Суп гороховый" || names[1] != "Борщ" {
		t.Errorf("unexpected items: %v", names)
	}
}

func TestMenuList_SearchIsCaseInsensitive(t *testing.T) {
	store := menu.NewStore()
	seedItem(t, store, "Каша манная", "Гарниры", "400", enum.ItemStatusActive)
	seedItem(t, store, "Рис отварной", "Гарниры", "700", enum.ItemStatusActive)

	router := setupMenuRouter(store)
	rr := doRequest(t, router, "GET", "/admin/menu/?search=каша", nil)

	names := itemNames(t, decodeObject(t, rr))
	if len(names) != 1 || names[0] != "Каша манная" {
		t.Errorf("unexpected items: %v", names)
	}
}

func TestMenuList_Pagination(t *testing.T) {
	store := menu.NewStore()
	for _, name := range []string{"А", "Б", "В", "Г", "Д", "Е", "Ж", "З"} {
		seedItem(t, store, name, "Тест", "100", enum.ItemStatusActive)
	}

	router := setupMenuRouter(store)

	rr := doRequest(t, router, "GET", "/admin/menu/?sort=date-old", nil)
	resp := decodeObject(t, rr)
	if resp["total_pages"].(float64) != 2 {
		t.Fatalf("total_pages: got %v, want 2", resp["total_pages"])
	}
	if resp["total_items"].(float64) != 8 {
		t.Fatalf("total_items: got %v, want 8", resp["total_items"])
	}
	if got := itemNames(t, resp); len(got) != testPageSize {
		t.Fatalf("page 1 size: got %d, want %d", len(got), testPageSize)
	}

	rr = doRequest(t, router, "GET", "/admin/menu/?sort=date-old&page=2", nil)
	names := itemNames(t, decodeObject(t, rr))
	if len(names) != 2 || names[0] != "Ж" || names[1] != "З" {
		t.Errorf("page 2: got %v, want [Ж З]", names)
	}
}

func TestMenuList_PageClampedToLast(t *testing.T) {
	store := menu.NewStore()
	seedItem(t, store, "Компот", "Напитки", "150", enum.ItemStatusActive)

	router := setupMenuRouter(store)
	rr := doRequest(t, router, "GET", "/admin/menu/?page=99", nil)

	resp := decodeObject(t, rr)
	if resp["page"].(float64) != 1 {
		t.Errorf("page: got %v, want 1 (clamped)", resp["page"])
	}
	if len(itemNames(t, resp)) != 1 {
		t.Errorf("expected the single item on the clamped page")
	}
}

func TestMenuList_InvalidSort(t *testing.T) {
	store := menu.NewStore()
	router := setupMenuRouter(store)

	rr := doRequest(t, router, "GET", "/admin/menu/?sort=bogus", nil)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestMenuList_InvalidStatusFacet(t *testing.T) {
	store := menu.NewStore()
	router := setupMenuRouter(store)

	rr := doRequest(t, router, "GET", "/admin/menu/?status=BOGUS", nil)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestMenuList_Categories(t *testing.T) {
	store := menu.NewStore()
	seedItem(t, store, "Суп гороховый", "Супы", "650", enum.ItemStatusActive)
	seedItem(t, store, "Булочка с маком", "Выпечка", "200", enum.ItemStatusActive)

	router := setupMenuRouter(store)
	rr := doRequest(t, router, "GET", "/admin/menu/?category=Супы", nil)

	resp := decodeObject(t, rr)
	cats, ok := resp["categories"].([]interface{})
	if !ok || len(cats) != 2 {
		t.Fatalf("categories: got %v, want both catalog categories", resp["categories"])
	}
}

// --- Create tests ---

func TestMenuCreate_Valid(t *testing.T) {
	store := menu.NewStore()
	router := setupMenuRouter(store)

	body := map[string]interface{}{
		"name":     "Сосиска в тесте",
		"price":    "300",
		"category": "Выпечка",
	}
	rr := doRequest(t, router, "POST", "/admin/menu/", body)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusCreated, rr.Body.String())
	}

	resp := decodeObject(t, rr)
	if resp["name"] != "Сосиска в тесте" {
		t.Errorf("name: got %v", resp["name"])
	}
	if resp["price"] != "300.00" {
		t.Errorf("price: got %v, want 300.00", resp["price"])
	}
	if resp["status"] != enum.ItemStatusActive {
		t.Errorf("status should default to ACTIVE, got %v", resp["status"])
	}

	if len(store.List()) != 1 {
		t.Errorf("item not stored")
	}
}

func TestMenuCreate_MissingName(t *testing.T) {
	store := menu.NewStore()
	router := setupMenuRouter(store)

	rr := doRequest(t, router, "POST", "/admin/menu/", map[string]interface{}{
		"price":    "100",
		"category": "Тест",
	})

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestMenuCreate_NegativePrice(t *testing.T) {
	store := menu.NewStore()
	router := setupMenuRouter(store)

	rr := doRequest(t, router, "POST", "/admin/menu/", map[string]interface{}{
		"name":     "Тест",
		"price":    "-5",
		"category": "Тест",
	})

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestMenuCreate_InvalidStatus(t *testing.T) {
	store := menu.NewStore()
	router := setupMenuRouter(store)

	rr := doRequest(t, router, "POST", "/admin/menu/", map[string]interface{}{
		"name":     "Тест",
		"price":    "100",
		"category": "Тест",
		"status":   "GONE",
	})

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

// --- Get / Update / Delete tests ---

func TestMenuGet_NotFound(t *testing.T) {
	store := menu.NewStore()
	router := setupMenuRouter(store)

	rr := doRequest(t, router, "GET", "/admin/menu/"+uuid.NewString(), nil)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestMenuGet_InvalidID(t *testing.T) {
	store := menu.NewStore()
	router := setupMenuRouter(store)

	rr := doRequest(t, router, "GET", "/admin/menu/not-a-uuid", nil)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestMenuUpdate_Valid(t *testing.T) {
	store := menu.NewStore()
	item := seedItem(t, store, "Компот", "Напитки", "150", enum.ItemStatusActive)

	router := setupMenuRouter(store)
	rr := doRequest(t, router, "PUT", "/admin/menu/"+item.ID.String(), map[string]interface{}{
		"name":     "Компот",
		"price":    "180",
		"category": "Напитки",
		"status":   enum.ItemStatusOutOfStock,
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	resp := decodeObject(t, rr)
	if resp["price"] != "180.00" {
		t.Errorf("price: got %v, want 180.00", resp["price"])
	}
	if resp["status"] != enum.ItemStatusOutOfStock {
		t.Errorf("status: got %v, want %s", resp["status"], enum.ItemStatusOutOfStock)
	}
	if resp["id"] != item.ID.String() {
		t.Errorf("id changed across update")
	}
}

func TestMenuUpdate_NotFound(t *testing.T) {
	store := menu.NewStore()
	router := setupMenuRouter(store)

	rr := doRequest(t, router, "PUT", "/admin/menu/"+uuid.NewString(), map[string]interface{}{
		"name":     "Тест",
		"price":    "100",
		"category": "Тест",
	})

	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestMenuDelete(t *testing.T) {
	store := menu.NewStore()
	item := seedItem(t, store, "Компот", "Напитки", "150", enum.ItemStatusActive)

	router := setupMenuRouter(store)
	rr := doRequest(t, router, "DELETE", "/admin/menu/"+item.ID.String(), nil)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusNoContent)
	}

	rr = doRequest(t, router, "GET", "/admin/menu/"+item.ID.String(), nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("deleted item still retrievable: %d", rr.Code)
	}
}
