package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// Product is a single catalog entry, immutable after load.
type Product struct {
	Code  string
	Name  string
	Price decimal.Decimal
}

// BasePrice is the undiscounted catalog price.
func (p Product) BasePrice() decimal.Decimal { return p.Price }

// Store is a read-only by-code product lookup. A reload of the backing
// document is simply a fresh Load and a swap of the returned store; no
// process-global cache exists.
type Store struct {
	byCode  map[string]Product
	ordered []Product
}

// NewStore builds a store from catalog entries. Codes must be unique and
// non-blank.
func NewStore(products []Product) (*Store, error) {
	byCode := make(map[string]Product, len(products))
	ordered := make([]Product, 0, len(products))
	for _, p := range products {
		code := strings.TrimSpace(p.Code)
		if code == "" {
			return nil, errors.New("catalog: product code must not be empty")
		}
		if _, exists := byCode[code]; exists {
			return nil, fmt.Errorf("catalog: duplicate product code %q", code)
		}
		p.Code = code
		byCode[code] = p
		ordered = append(ordered, p)
	}
	return &Store{byCode: byCode, ordered: ordered}, nil
}

// FindByCode looks up a product. Blank codes resolve to ErrNotFound.
func (s *Store) FindByCode(code string) (Product, error) {
	p, ok := s.byCode[strings.TrimSpace(code)]
	if !ok {
		return Product{}, fmt.Errorf("%w: %q", ErrNotFound, code)
	}
	return p, nil
}

// Products returns the entries in the order they were loaded.
func (s *Store) Products() []Product {
	out := make([]Product, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// Codes lists the product codes in load order.
func (s *Store) Codes() []string {
	codes := make([]string, 0, len(s.ordered))
	for _, p := range s.ordered {
		codes = append(codes, p.Code)
	}
	return codes
}
