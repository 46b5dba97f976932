package product

import (
	"fmt"
	"strings"

	"github.com/JoschuaSch/Bestbuy/commerce"
)

// Show renders the product as one numbered listing line.
func (p *Product) Show(index int) string {
	return fmt.Sprintf("%d. %s", index, p.String())
}

func (p *Product) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s, Price: %s", p.name, commerce.FormatAmount(p.price))

	if p.IsStockLimited() {
		fmt.Fprintf(&b, ", Quantity: %d, Maximum per order: %d", p.quantity, p.maxQuantity)
	} else {
		b.WriteString(", Quantity: Unlimited")
	}

	b.WriteString(", Promotions: ")
	if len(p.promotions) == 0 {
		b.WriteString("None")
		return b.String()
	}
	names := make([]string, len(p.promotions))
	for i, promo := range p.promotions {
		names[i] = promo.Name()
	}
	b.WriteString(strings.Join(names, ", "))
	return b.String()
}
