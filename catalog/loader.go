// Package catalog seeds a store from a YAML product catalog.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/JoschuaSch/Bestbuy/product"
	"github.com/JoschuaSch/Bestbuy/promotion"
)

//go:embed default.yaml
var defaultCatalog []byte

// Default builds the products of the built-in catalog.
func Default() ([]*product.Product, error) {
	f, err := Parse(defaultCatalog)
	if err != nil {
		return nil, err
	}
	return Build(f)
}

// LoadFile reads, parses and builds the catalog at path.
func LoadFile(path string) ([]*product.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Build(f)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	for i := range f.Products {
		if f.Products[i].Stock == "" {
			f.Products[i].Stock = string(product.KindLimited)
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// Build turns catalog entries into products. Promotions are created once and
// shared by every product that references them.
func Build(f *File) ([]*product.Product, error) {
	promos, err := buildPromotions(f.Promotions)
	if err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(f.Products))
	for i, entry := range f.Products {
		p, err := buildProduct(entry, promos)
		if err != nil {
			return nil, fmt.Errorf("product %d (%q): %w", i+1, entry.Name, err)
		}
		products = append(products, p)
	}
	return products, nil
}

func buildPromotions(entries []PromotionEntry) (map[string]*promotion.Promotion, error) {
	promos := make(map[string]*promotion.Promotion, len(entries))
	for _, entry := range entries {
		if entry.ID == "" {
			return nil, fmt.Errorf("promotion %q: id is required", entry.Name)
		}
		if _, dup := promos[entry.ID]; dup {
			return nil, fmt.Errorf("promotion %q: duplicate id", entry.ID)
		}

		percent := decimal.Zero
		if entry.Percent != "" {
			var err error
			if percent, err = decimal.NewFromString(entry.Percent); err != nil {
				return nil, fmt.Errorf("promotion %q: invalid percent %q: %w", entry.ID, entry.Percent, err)
			}
		}

		p, err := promotion.New(entry.Name, promotion.Kind(entry.Kind), percent)
		if err != nil {
			return nil, fmt.Errorf("promotion %q: %w", entry.ID, err)
		}
		promos[entry.ID] = p
	}
	return promos, nil
}

func buildProduct(entry ProductEntry, promos map[string]*promotion.Promotion) (*product.Product, error) {
	price, err := decimal.NewFromString(entry.Price)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", entry.Price, err)
	}

	attached := make([]*promotion.Promotion, 0, len(entry.Promotions))
	for _, id := range entry.Promotions {
		p, ok := promos[id]
		if !ok {
			return nil, fmt.Errorf("unknown promotion %q", id)
		}
		attached = append(attached, p)
	}

	switch product.Kind(entry.Stock) {
	case product.KindLimited:
		return product.NewLimited(entry.Name, price, entry.Quantity, entry.MaxQuantity, attached...)
	case product.KindUnlimited:
		return product.NewUnlimited(entry.Name, price, attached...)
	default:
		return nil, fmt.Errorf("unknown stock kind %q", entry.Stock)
	}
}
