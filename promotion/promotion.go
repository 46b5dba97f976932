// Package promotion provides quantity-dependent pricing rules.
//
// A Promotion is immutable once constructed and may be shared by any number
// of products.
package promotion

import (
	"github.com/shopspring/decimal"

	"github.com/JoschuaSch/Bestbuy/commerce"
)

// Kind selects the discount rule a Promotion applies.
type Kind string

const (
	// KindPercentDiscount takes Percent off every unit.
	KindPercentDiscount Kind = "percent_discount"
	// KindSecondUnitDiscount takes Percent off exactly one unit once at least
	// two are bought.
	KindSecondUnitDiscount Kind = "second_unit_discount"
	// KindEveryOtherHalfPrice charges half price for every second unit.
	KindEveryOtherHalfPrice Kind = "every_other_half_price"
	// KindEveryThirdFree charges nothing for every third unit.
	KindEveryThirdFree Kind = "every_third_free"
)

// Valid reports whether k names a known rule.
func (k Kind) Valid() bool {
	switch k {
	case KindPercentDiscount, KindSecondUnitDiscount, KindEveryOtherHalfPrice, KindEveryThirdFree:
		return true
	default:
		return false
	}
}

// Promotion is a named pricing rule.
type Promotion struct {
	name    string
	kind    Kind
	percent decimal.Decimal
}

// New validates and creates a Promotion. percent is ignored by kinds that do
// not take a parameter.
func New(name string, kind Kind, percent decimal.Decimal) (*Promotion, error) {
	if err := commerce.RequireName(name, ErrMsgNameRequired); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, commerce.NewInvalidArgumentf(ErrMsgUnknownKind, kind)
	}
	if kind.takesPercent() {
		if err := commerce.RequirePercent(percent, ErrMsgPercentRange); err != nil {
			return nil, err
		}
	} else {
		percent = decimal.Zero
	}
	return &Promotion{name: name, kind: kind, percent: percent}, nil
}

func (k Kind) takesPercent() bool {
	return k == KindPercentDiscount || k == KindSecondUnitDiscount
}

// Name is the display label.
func (p *Promotion) Name() string { return p.name }

// Kind returns the discount rule.
func (p *Promotion) Kind() Kind { return p.kind }

// Percent returns the rule parameter, zero for parameterless kinds.
func (p *Promotion) Percent() decimal.Decimal { return p.percent }

func (p *Promotion) String() string { return p.name }

// Apply returns the total charged for quantity units at unitPrice under this
// promotion. It has no side effects.
func (p *Promotion) Apply(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	switch p.kind {
	case KindPercentDiscount:
		return commerce.LineTotal(commerce.PercentOff(unitPrice, p.percent), quantity)

	case KindSecondUnitDiscount:
		if quantity < 2 {
			return commerce.LineTotal(unitPrice, quantity)
		}
		return commerce.LineTotal(unitPrice, quantity-1).Add(commerce.PercentOff(unitPrice, p.percent))

	case KindEveryOtherHalfPrice:
		if quantity < 2 {
			return commerce.LineTotal(unitPrice, quantity)
		}
		fullPrice := (quantity + 1) / 2
		halfPrice := quantity / 2
		return commerce.LineTotal(unitPrice, fullPrice).
			Add(commerce.LineTotal(unitPrice.Div(commerce.Two), halfPrice))

	case KindEveryThirdFree:
		billable := 2*(quantity/3) + quantity%3
		return commerce.LineTotal(unitPrice, billable)

	default:
		return commerce.LineTotal(unitPrice, quantity)
	}
}

// Best returns the lowest total any single promotion in promos yields. With no
// promotions it is the plain line total. Promotions never stack.
func Best(promos []*Promotion, unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	if len(promos) == 0 {
		return commerce.LineTotal(unitPrice, quantity)
	}
	best := promos[0].Apply(unitPrice, quantity)
	for _, p := range promos[1:] {
		if total := p.Apply(unitPrice, quantity); total.LessThan(best) {
			best = total
		}
	}
	return best
}
