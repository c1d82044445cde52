package checkout

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/kasir/internal/cart"
	"github.com/noah-isme/kasir/internal/catalog"
	"github.com/noah-isme/kasir/internal/pricing"
)

// Engine owns one checkout session: the scanned line items, kept in
// first-scan order, and the ordered list of active pricing rules. It is not
// safe for concurrent use; each scan runs to completion before the next.
type Engine struct {
	store   *catalog.Store
	rules   []pricing.Rule
	items   []*cart.LineItem
	total   decimal.Decimal
	session uuid.UUID
	log     zerolog.Logger
}

// New constructs an engine over a loaded catalog and rule list. The rules are
// injected so tests can run against a fixed set instead of the live
// configuration.
func New(store *catalog.Store, rules []pricing.Rule, log zerolog.Logger) *Engine {
	return &Engine{
		store:   store,
		rules:   rules,
		total:   decimal.Zero,
		session: uuid.New(),
		log:     log,
	}
}

// Scan adds one unit of the coded product to the cart and recomputes the
// total. Unknown or blank codes report false and leave the cart untouched;
// that is a normal negative result, not a failure.
func (e *Engine) Scan(code string) (decimal.Decimal, bool) {
	product, err := e.store.FindByCode(code)
	if err != nil {
		e.log.Debug().
			Str("session", e.session.String()).
			Str("code", code).
			Msg("scan rejected")
		return decimal.Decimal{}, false
	}

	item := e.findItem(product.Code)
	if item != nil {
		item.Increment()
	} else {
		item = cart.NewLineItem(product)
		e.items = append(e.items, item)
	}

	e.recalculate()
	e.log.Debug().
		Str("session", e.session.String()).
		Str("code", product.Code).
		Int("quantity", item.Quantity()).
		Str("total", e.total.StringFixed(2)).
		Msg("scanned")
	return e.total, true
}

// Total is the last computed total, rounded to two decimal places. Zero for
// an empty cart.
func (e *Engine) Total() decimal.Decimal { return e.total }

// Items returns the cart's line items in first-scan order, for receipt
// rendering.
func (e *Engine) Items() []*cart.LineItem {
	out := make([]*cart.LineItem, len(e.items))
	copy(out, e.items)
	return out
}

func (e *Engine) findItem(code string) *cart.LineItem {
	for _, it := range e.items {
		if it.Code() == code {
			return it
		}
	}
	return nil
}

// recalculate rebuilds every unit price from scratch. Rule outcomes depend on
// current quantities, so prior rule effects must be discarded before the
// pass. Rounding happens once, on the summed total.
func (e *Engine) recalculate() {
	for _, it := range e.items {
		it.ResetUnitPrice()
	}
	for _, rule := range e.rules {
		rule.Apply(e.items)
	}
	sum := decimal.Zero
	for _, it := range e.items {
		sum = sum.Add(it.TotalAmount())
	}
	e.total = sum.Round(2)
}
