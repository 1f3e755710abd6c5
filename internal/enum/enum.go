package enum

// ── State machines ──

const (
	OrderStatusPreparing = "PREPARING"
	OrderStatusReady     = "READY"
	OrderStatusCompleted = "COMPLETED"
)

const (
	ItemStatusActive     = "ACTIVE"
	ItemStatusInactive   = "INACTIVE"
	ItemStatusOutOfStock = "OUT_OF_STOCK"
)

// ── Configurable labels ──

const (
	UserRoleAdmin    = "ADMIN"
	UserRoleCustomer = "CUSTOMER"
)

const (
	DietaryVegetarian = "VEGETARIAN"
	DietaryVegan      = "VEGAN"
)

const (
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortDateNew   = "date-new"
	SortDateOld   = "date-old"
)
