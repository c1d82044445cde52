package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/noah-isme/kasir/internal/cart"
)

// Rule inspects the cart and may lower the unit price of its target line
// item. Every implementation clamps with min(current, candidate), so a rule
// pass can never raise a price no matter how rules are ordered or how many
// target the same product.
type Rule interface {
	Apply(items []*cart.LineItem)
}

func findTarget(items []*cart.LineItem, code string) *cart.LineItem {
	for _, it := range items {
		if it.Code() == code {
			return it
		}
	}
	return nil
}

// BogoRule makes every second unit of the target product free by spreading
// the charge for the paid units across the whole quantity.
type BogoRule struct {
	ProductCode string
}

// Apply recomputes the unit price as base × paid / quantity. Quantity 1 has
// no free unit and is a no-op.
func (r BogoRule) Apply(items []*cart.LineItem) {
	item := findTarget(items, r.ProductCode)
	if item == nil {
		return
	}
	free := item.Quantity() / 2
	if free == 0 {
		return
	}
	paid := int64(item.Quantity() - free)
	candidate := item.BasePrice().
		Mul(decimal.NewFromInt(paid)).
		Div(decimal.NewFromInt(int64(item.Quantity())))
	item.SetUnitPrice(decimal.Min(item.UnitPrice(), candidate))
}

// BulkRule drops the unit price to a flat discounted price once the quantity
// threshold is met.
type BulkRule struct {
	ProductCode string
	MinQuantity int
	NewPrice    decimal.Decimal
}

// Apply sets the unit price to min(current, NewPrice) when the threshold is
// met.
func (r BulkRule) Apply(items []*cart.LineItem) {
	item := findTarget(items, r.ProductCode)
	if item == nil || item.Quantity() < r.MinQuantity {
		return
	}
	item.SetUnitPrice(decimal.Min(item.UnitPrice(), r.NewPrice))
}

// FractionRule charges a fixed fraction of the base price (two thirds unless
// configured otherwise) once the quantity threshold is met. The division
// happens in decimal arithmetic so no truncation occurs before the final
// monetary rounding at total time.
type FractionRule struct {
	ProductCode string
	MinQuantity int
	Numerator   int64
	Denominator int64
}

// Apply sets the unit price to min(current, base × numerator / denominator)
// when the threshold is met.
func (r FractionRule) Apply(items []*cart.LineItem) {
	item := findTarget(items, r.ProductCode)
	if item == nil || item.Quantity() < r.MinQuantity {
		return
	}
	candidate := item.BasePrice().
		Mul(decimal.NewFromInt(r.Numerator)).
		Div(decimal.NewFromInt(r.Denominator))
	item.SetUnitPrice(decimal.Min(item.UnitPrice(), candidate))
}
