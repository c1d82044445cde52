package cart

import (
	"github.com/shopspring/decimal"

	"github.com/noah-isme/kasir/internal/catalog"
)

// LineItem tracks quantity and the current unit price for one scanned product
// code. The unit price is a working value: the checkout engine resets it to
// the base price before every rule pass, so it never carries state between
// recomputations. It can only sit at or below the base price.
type LineItem struct {
	product   catalog.Product
	quantity  int
	unitPrice decimal.Decimal
}

// NewLineItem starts a line at quantity 1 and the product's base price.
func NewLineItem(p catalog.Product) *LineItem {
	return &LineItem{product: p, quantity: 1, unitPrice: p.Price}
}

// Increment adds one unit.
func (li *LineItem) Increment() { li.quantity++ }

// Quantity reports how many units have been scanned.
func (li *LineItem) Quantity() int { return li.quantity }

// UnitPrice returns the current, possibly discounted, unit price.
func (li *LineItem) UnitPrice() decimal.Decimal { return li.unitPrice }

// SetUnitPrice overwrites the working unit price. Pricing rules only ever
// lower it via a min clamp.
func (li *LineItem) SetUnitPrice(p decimal.Decimal) { li.unitPrice = p }

// ResetUnitPrice restores the base price, discarding prior rule effects.
func (li *LineItem) ResetUnitPrice() { li.unitPrice = li.product.Price }

// TotalAmount is unit price times quantity. Pure; no rounding is applied
// here, the engine rounds once when summing the cart.
func (li *LineItem) TotalAmount() decimal.Decimal {
	return li.unitPrice.Mul(decimal.NewFromInt(int64(li.quantity)))
}

// Code forwards the product code.
func (li *LineItem) Code() string { return li.product.Code }

// Name forwards the product name.
func (li *LineItem) Name() string { return li.product.Name }

// BasePrice forwards the undiscounted catalog price.
func (li *LineItem) BasePrice() decimal.Decimal { return li.product.Price }
