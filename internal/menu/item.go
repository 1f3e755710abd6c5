package menu

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Nutrition holds the per-portion nutrition facts shown on dish cards.
type Nutrition struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// Item is a single dish or drink in the canteen catalog.
// Price is in whole currency units (tenge); Status drives both the
// admin lifecycle and customer visibility.
type Item struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category"`
	Image        string          `json:"image"`
	IsVegetarian bool            `json:"is_vegetarian"`
	IsVegan      bool            `json:"is_vegan"`
	Allergens    []string        `json:"allergens"`
	Nutrition    Nutrition       `json:"nutrition"`
	PrepTime     int             `json:"prep_time"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

// clone returns a value copy safe to hand out of the store.
func (it Item) clone() Item {
	cp := it
	if it.Allergens != nil {
		cp.Allergens = append([]string(nil), it.Allergens...)
	}
	return cp
}
