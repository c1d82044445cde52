package pricing

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"
)

// ErrUnknownRuleType indicates a rule document declared a type this build
// does not know. It is a configuration defect and fatal at load time.
var ErrUnknownRuleType = errors.New("unknown pricing rule type")

// Known rule type discriminators. The mapping to concrete rules is a closed
// switch; new kinds require a code change, not just configuration.
const (
	TypeBogo     = "bogo"
	TypeBulk     = "bulk"
	TypeFraction = "fraction"
)

type record struct {
	Type        string  `koanf:"type" validate:"required"`
	ProductCode string  `koanf:"product_code" validate:"required"`
	MinQuantity int     `koanf:"min_quantity"`
	NewPrice    float64 `koanf:"new_price"`
	Numerator   int64   `koanf:"numerator"`
	Denominator int64   `koanf:"denominator"`
}

// LoadRules reads an ordered rule document:
//
//	rules:
//	  - type: bogo
//	    product_code: GR1
//	  - type: bulk
//	    product_code: SR1
//	    min_quantity: 3
//	    new_price: 4.50
//
// Document order is application order. An empty rule list is valid; every
// scan then totals at base prices.
func LoadRules(path string) ([]Rule, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
		return nil, fmt.Errorf("pricing: read %s: %w", path, err)
	}

	var records []record
	if err := k.Unmarshal("rules", &records); err != nil {
		return nil, fmt.Errorf("pricing: decode %s: %w", path, err)
	}

	validate := validator.New()
	rules := make([]Rule, 0, len(records))
	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("pricing: rule %d: %w", i, err)
		}
		rule, err := buildRule(rec)
		if err != nil {
			return nil, fmt.Errorf("pricing: rule %d: %w", i, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func buildRule(rec record) (Rule, error) {
	switch rec.Type {
	case TypeBogo:
		return BogoRule{ProductCode: rec.ProductCode}, nil
	case TypeBulk:
		if rec.MinQuantity < 1 {
			return nil, errors.New("bulk rule needs min_quantity >= 1")
		}
		if rec.NewPrice <= 0 {
			return nil, errors.New("bulk rule needs new_price > 0")
		}
		return BulkRule{
			ProductCode: rec.ProductCode,
			MinQuantity: rec.MinQuantity,
			NewPrice:    decimal.NewFromFloat(rec.NewPrice),
		}, nil
	case TypeFraction:
		if rec.MinQuantity < 1 {
			return nil, errors.New("fraction rule needs min_quantity >= 1")
		}
		num, den := rec.Numerator, rec.Denominator
		if num == 0 && den == 0 {
			num, den = 2, 3
		}
		if num <= 0 || den <= 0 || num >= den {
			return nil, errors.New("fraction rule needs 0 < numerator < denominator")
		}
		return FractionRule{
			ProductCode: rec.ProductCode,
			MinQuantity: rec.MinQuantity,
			Numerator:   num,
			Denominator: den,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRuleType, rec.Type)
	}
}
