package checkout_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/kasir/internal/catalog"
	"github.com/noah-isme/kasir/internal/checkout"
	"github.com/noah-isme/kasir/internal/pricing"
)

func newStore(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.NewStore([]catalog.Product{
		{Code: "GR1", Name: "Green Tea", Price: decimal.RequireFromString("3.11")},
		{Code: "SR1", Name: "Strawberries", Price: decimal.RequireFromString("5.00")},
		{Code: "CF1", Name: "Coffee", Price: decimal.RequireFromString("11.23")},
	})
	require.NoError(t, err)
	return store
}

func defaultRules() []pricing.Rule {
	return []pricing.Rule{
		pricing.BogoRule{ProductCode: "GR1"},
		pricing.BulkRule{ProductCode: "SR1", MinQuantity: 3, NewPrice: decimal.RequireFromString("4.50")},
		pricing.FractionRule{ProductCode: "CF1", MinQuantity: 3, Numerator: 2, Denominator: 3},
	}
}

func newEngine(t *testing.T) *checkout.Engine {
	t.Helper()
	return checkout.New(newStore(t), defaultRules(), zerolog.Nop())
}

func scanAll(t *testing.T, e *checkout.Engine, codes ...string) {
	t.Helper()
	for _, code := range codes {
		_, ok := e.Scan(code)
		require.True(t, ok, "scan %s", code)
	}
}

func TestScanScenarios(t *testing.T) {
	cases := []struct {
		name  string
		codes []string
		total string
	}{
		{"mixed basket with odd bogo quantity", []string{"GR1", "SR1", "GR1", "GR1", "CF1"}, "22.45"},
		{"bulk threshold met", []string{"SR1", "SR1", "GR1", "SR1"}, "16.61"},
		{"fraction threshold met", []string{"GR1", "CF1", "SR1", "CF1", "CF1"}, "30.57"},
		{"single item, no discount", []string{"GR1"}, "3.11"},
		{"bogo pair", []string{"GR1", "GR1"}, "3.11"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEngine(t)
			scanAll(t, e, tc.codes...)
			require.Equal(t, tc.total, e.Total().StringFixed(2))
		})
	}
}

func TestScanBogoQuantities(t *testing.T) {
	totals := []string{"3.11", "3.11", "6.22", "6.22"}
	e := newEngine(t)
	for i, want := range totals {
		total, ok := e.Scan("GR1")
		require.True(t, ok)
		require.Equal(t, want, total.StringFixed(2), "after %d scans", i+1)
	}
}

func TestScanBulkQuantities(t *testing.T) {
	totals := []string{"5.00", "10.00", "13.50", "18.00"}
	e := newEngine(t)
	for i, want := range totals {
		total, ok := e.Scan("SR1")
		require.True(t, ok)
		require.Equal(t, want, total.StringFixed(2), "after %d scans", i+1)
	}
}

func TestScanFractionQuantities(t *testing.T) {
	totals := []string{"11.23", "22.46", "22.46", "29.95"}
	e := newEngine(t)
	for i, want := range totals {
		total, ok := e.Scan("CF1")
		require.True(t, ok)
		require.Equal(t, want, total.StringFixed(2), "after %d scans", i+1)
	}
}

func TestScanUnknownCode(t *testing.T) {
	e := newEngine(t)
	scanAll(t, e, "GR1")
	before := e.Total()

	for _, code := range []string{"INVALID", "", "   "} {
		total, ok := e.Scan(code)
		require.False(t, ok, "scan %q", code)
		require.True(t, total.IsZero())
		require.True(t, e.Total().Equal(before), "total changed after rejected scan")
		require.Len(t, e.Items(), 1)
	}
}

func TestEmptyCartTotal(t *testing.T) {
	e := newEngine(t)
	require.Equal(t, "0.00", e.Total().StringFixed(2))
	require.Empty(t, e.Items())
}

func TestItemsKeepFirstScanOrder(t *testing.T) {
	e := newEngine(t)
	scanAll(t, e, "CF1", "GR1", "CF1", "SR1")

	items := e.Items()
	require.Len(t, items, 3)
	require.Equal(t, "CF1", items[0].Code())
	require.Equal(t, "GR1", items[1].Code())
	require.Equal(t, "SR1", items[2].Code())
	require.Equal(t, 2, items[0].Quantity())
}

// Repeated reset+apply cycles must land on the same result as a single
// recomputation at the final quantities.
func TestRepeatedScansDoNotDrift(t *testing.T) {
	incremental := newEngine(t)
	scanAll(t, incremental, "GR1", "GR1", "CF1", "CF1", "CF1", "SR1", "SR1", "SR1")

	reordered := newEngine(t)
	scanAll(t, reordered, "SR1", "CF1", "GR1", "SR1", "CF1", "GR1", "SR1", "CF1")

	require.Equal(t, incremental.Total().StringFixed(2), reordered.Total().StringFixed(2))
}

// Two rules targeting the same product must settle on the cheapest observed
// price regardless of their configured order.
func TestSameTargetRuleOrdering(t *testing.T) {
	bulk := pricing.BulkRule{ProductCode: "SR1", MinQuantity: 2, NewPrice: decimal.RequireFromString("4.50")}
	fraction := pricing.FractionRule{ProductCode: "SR1", MinQuantity: 3, Numerator: 2, Denominator: 3}

	bulkFirst := checkout.New(newStore(t), []pricing.Rule{bulk, fraction}, zerolog.Nop())
	fractionFirst := checkout.New(newStore(t), []pricing.Rule{fraction, bulk}, zerolog.Nop())

	scanAll(t, bulkFirst, "SR1", "SR1", "SR1")
	scanAll(t, fractionFirst, "SR1", "SR1", "SR1")

	// 2/3 of 5.00 beats the 4.50 bulk price.
	require.Equal(t, "10.00", bulkFirst.Total().StringFixed(2))
	require.Equal(t, "10.00", fractionFirst.Total().StringFixed(2))
}

func TestUnitPriceNeverAboveBase(t *testing.T) {
	e := newEngine(t)
	scanAll(t, e, "GR1", "SR1", "SR1", "SR1", "CF1", "CF1", "CF1", "GR1")

	for _, it := range e.Items() {
		require.True(t, it.UnitPrice().LessThanOrEqual(it.BasePrice()),
			"%s unit price %s above base %s", it.Code(), it.UnitPrice(), it.BasePrice())
	}
}
