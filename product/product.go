// Package product models sellable catalog entries and their stock.
package product

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JoschuaSch/Bestbuy/commerce"
	"github.com/JoschuaSch/Bestbuy/promotion"
)

// Kind tells whether a product's stock is tracked.
type Kind string

const (
	// KindLimited products have finite stock that purchases consume.
	KindLimited Kind = "limited"
	// KindUnlimited products (licenses, services) never run out.
	KindUnlimited Kind = "unlimited"
)

// Unlimited is reported as the quantity of products that are not stock-limited.
const Unlimited = -1

// Product is a catalog entry. Limited products track quantity and become
// inactive when it reaches zero; unlimited products are always active and
// their quantity is never touched.
type Product struct {
	ID uuid.UUID

	name        string
	price       decimal.Decimal
	kind        Kind
	quantity    int
	maxQuantity int // accepted and reported, not enforced on purchase
	active      bool
	promotions  []*promotion.Promotion
}

// NewLimited creates a stock-limited product.
func NewLimited(name string, price decimal.Decimal, quantity, maxQuantity int, promos ...*promotion.Promotion) (*Product, error) {
	if err := commerce.FirstError(
		commerce.RequireName(name, ErrMsgNameRequired),
		commerce.RequireNonNegativeAmount(price, ErrMsgPriceNegative),
		commerce.RequireNonNegative(quantity, ErrMsgQuantityNegative),
	); err != nil {
		return nil, err
	}

	return &Product{
		ID:          uuid.New(),
		name:        name,
		price:       price,
		kind:        KindLimited,
		quantity:    quantity,
		maxQuantity: maxQuantity,
		active:      quantity > 0,
		promotions:  copyPromotions(promos),
	}, nil
}

// NewUnlimited creates a product whose stock is never exhausted.
func NewUnlimited(name string, price decimal.Decimal, promos ...*promotion.Promotion) (*Product, error) {
	if err := commerce.FirstError(
		commerce.RequireName(name, ErrMsgNameRequired),
		commerce.RequireNonNegativeAmount(price, ErrMsgPriceNegative),
	); err != nil {
		return nil, err
	}

	return &Product{
		ID:          uuid.New(),
		name:        name,
		price:       price,
		kind:        KindUnlimited,
		quantity:    Unlimited,
		maxQuantity: Unlimited,
		active:      true,
		promotions:  copyPromotions(promos),
	}, nil
}

func (p *Product) Name() string { return p.name }
func (p *Product) UnitPrice() decimal.Decimal { return p.price }
func (p *Product) Kind() Kind { return p.kind }
func (p *Product) IsStockLimited() bool { return p.kind == KindLimited }

// Quantity is the stock on hand, or Unlimited.
func (p *Product) Quantity() int {
	if !p.IsStockLimited() {
		return Unlimited
	}
	return p.quantity
}

// MaxQuantity is the per-order-line maximum given at construction, or
// Unlimited.
func (p *Product) MaxQuantity() int {
	if !p.IsStockLimited() {
		return Unlimited
	}
	return p.maxQuantity
}

// IsActive reports whether the product may be listed and sold.
func (p *Product) IsActive() bool {
	if !p.IsStockLimited() {
		return true
	}
	return p.active
}

// Quote prices quantity units without touching stock: the plain line total
// when no promotions are attached, otherwise the cheapest single promotion.
func (p *Product) Quote(quantity int) decimal.Decimal {
	return promotion.Best(p.promotions, p.price, quantity)
}

// CanSupply reports whether quantity units are available.
func (p *Product) CanSupply(quantity int) bool {
	return !p.IsStockLimited() || quantity <= p.quantity
}

// Buy sells quantity units and returns the price charged. Limited products
// fail with RESOURCE_EXHAUSTED, leaving stock unchanged, when quantity exceeds
// what is on hand.
func (p *Product) Buy(quantity int) (decimal.Decimal, error) {
	if err := commerce.RequirePositive(quantity, ErrMsgBuyQuantityPositive); err != nil {
		return decimal.Zero, err
	}
	if !p.CanSupply(quantity) {
		return decimal.Zero, commerce.NewResourceExhaustedf(ErrMsgInsufficientStock, p.name, p.quantity, quantity)
	}

	total := p.Quote(quantity)
	if p.IsStockLimited() {
		p.quantity -= quantity
		if p.quantity == 0 {
			p.active = false
		}
	}
	return total, nil
}

// SetQuantity overwrites the stock of a limited product. Setting zero
// deactivates it; a positive value does not reactivate it.
func (p *Product) SetQuantity(quantity int) error {
	if !p.IsStockLimited() {
		return commerce.NewFailedPreconditionf(ErrMsgUnlimitedStock, p.name)
	}
	if err := commerce.RequireNonNegative(quantity, ErrMsgQuantityNegative); err != nil {
		return err
	}
	p.quantity = quantity
	if p.quantity == 0 {
		p.active = false
	}
	return nil
}

// Activate puts a limited product back on sale. It needs stock on hand.
func (p *Product) Activate() error {
	if p.IsStockLimited() && p.quantity == 0 {
		return commerce.NewFailedPreconditionf(ErrMsgActivateEmpty, p.name)
	}
	p.active = true
	return nil
}

// Deactivate takes a limited product off sale.
func (p *Product) Deactivate() error {
	if !p.IsStockLimited() {
		return commerce.NewFailedPreconditionf(ErrMsgUnlimitedAlwaysActive, p.name)
	}
	p.active = false
	return nil
}

// Promotions returns a copy of the attached promotions in order.
func (p *Product) Promotions() []*promotion.Promotion {
	return copyPromotions(p.promotions)
}

// SetPromotions replaces the attached promotions.
func (p *Product) SetPromotions(promos ...*promotion.Promotion) {
	p.promotions = copyPromotions(promos)
}

// AddPromotion appends a promotion.
func (p *Product) AddPromotion(promo *promotion.Promotion) {
	if promo != nil {
		p.promotions = append(p.promotions, promo)
	}
}

// ClearPromotions detaches every promotion.
func (p *Product) ClearPromotions() {
	p.promotions = nil
}

func copyPromotions(promos []*promotion.Promotion) []*promotion.Promotion {
	out := make([]*promotion.Promotion, 0, len(promos))
	for _, promo := range promos {
		if promo != nil {
			out = append(out, promo)
		}
	}
	return out
}
