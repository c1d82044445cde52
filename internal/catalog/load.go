package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"
)

type record struct {
	Code  string  `koanf:"code" validate:"required"`
	Name  string  `koanf:"name" validate:"required"`
	Price float64 `koanf:"price" validate:"required,gt=0"`
}

// Load reads and validates a catalog document:
//
//	products:
//	  - code: GR1
//	    name: Green Tea
//	    price: 3.11
//
// Any missing file, malformed document, or invalid record is an error; the
// caller treats it as fatal since it indicates a deployment defect.
func Load(path string) (*Store, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var records []record
	if err := k.Unmarshal("products", &records); err != nil {
		return nil, fmt.Errorf("catalog: decode %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("catalog: %s declares no products", path)
	}

	validate := validator.New()
	products := make([]Product, 0, len(records))
	for i, r := range records {
		if err := validate.Struct(r); err != nil {
			return nil, fmt.Errorf("catalog: product %d: %w", i, err)
		}
		products = append(products, Product{
			Code:  r.Code,
			Name:  r.Name,
			Price: decimal.NewFromFloat(r.Price),
		})
	}
	return NewStore(products)
}
