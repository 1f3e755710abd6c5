package order

import "github.com/shopspring/decimal"

// Decision is the checkout verdict. When OK is false, Shortfall is the
// amount the customer must top up to cover the cart; callers surface
// it, they do not treat it as an error.
type Decision struct {
	OK        bool            `json:"ok"`
	Shortfall decimal.Decimal `json:"shortfall"`
}

// CanCheckout decides whether a cart with the given total may become
// an order on the given balance. The cart is paid in full or not at
// all; there is no partial checkout. Empty carts are guarded at the
// calling boundary before the balance check.
func CanCheckout(total, balance decimal.Decimal) Decision {
	if total.GreaterThan(balance) {
		return Decision{Shortfall: total.Sub(balance)}
	}
	return Decision{OK: true, Shortfall: decimal.Zero}
}
