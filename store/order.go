package store

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/JoschuaSch/Bestbuy/commerce"
	"github.com/JoschuaSch/Bestbuy/product"
)

// OrderItem is one line of a shopping list.
type OrderItem struct {
	Product  *product.Product
	Quantity int
}

func (item OrderItem) validate(index int) error {
	if item.Product == nil {
		return commerce.NewInvalidArgumentf(ErrMsgLineNoProduct, index+1)
	}
	if err := commerce.RequirePositive(item.Quantity, product.ErrMsgBuyQuantityPositive); err != nil {
		return err
	}
	return nil
}

// ReceiptLine records what one order line charged.
type ReceiptLine struct {
	ProductID uuid.UUID
	Name      string
	Quantity  int
	Total     decimal.Decimal
}

// Receipt is the outcome of an atomic order.
type Receipt struct {
	ID    uuid.UUID
	Lines []ReceiptLine
	Total decimal.Decimal
}

// OrderAtomic places the order all-or-nothing. Every line, with repeated
// products aggregated, is checked against stock before any stock is taken,
// so a rejected order leaves the store untouched.
func (s *Store) OrderAtomic(items []OrderItem) (*Receipt, error) {
	// First pass: validate all lines against stock
	requested := make(map[*product.Product]int, len(items))
	for i, item := range items {
		if err := item.validate(i); err != nil {
			s.logger.Warn("atomic order rejected", zap.Int("line", i+1), zap.Error(err))
			return nil, err
		}
		requested[item.Product] += item.Quantity
		if !item.Product.CanSupply(requested[item.Product]) {
			err := commerce.NewResourceExhaustedf(product.ErrMsgInsufficientStock,
				item.Product.Name(), item.Product.Quantity(), requested[item.Product])
			s.logger.Warn("atomic order rejected", zap.Int("line", i+1), zap.Error(err))
			return nil, err
		}
	}

	// Second pass: buy every line
	receipt := &Receipt{
		ID:    uuid.New(),
		Lines: make([]ReceiptLine, 0, len(items)),
		Total: decimal.Zero,
	}
	for i, item := range items {
		lineTotal, err := s.buyLine(i, item)
		if err != nil {
			return nil, err
		}
		receipt.Lines = append(receipt.Lines, ReceiptLine{
			ProductID: item.Product.ID,
			Name:      item.Product.Name(),
			Quantity:  item.Quantity,
			Total:     lineTotal,
		})
		receipt.Total = receipt.Total.Add(lineTotal)
	}

	s.logger.Info("order placed",
		zap.String("order_id", receipt.ID.String()),
		zap.Int("lines", len(items)),
		zap.String("total", receipt.Total.String()))
	return receipt, nil
}
