// Package store holds the product collection and places orders against it.
package store

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/JoschuaSch/Bestbuy/product"
)

// Store is an ordered, non-deduplicated list of products. It is not safe for
// concurrent use.
type Store struct {
	products []*product.Product
	logger   *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for order events.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a store holding products in the given order.
func New(products []*product.Product, opts ...Option) *Store {
	s := &Store{
		products: append([]*product.Product(nil), products...),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddProduct appends p. Duplicates are allowed.
func (s *Store) AddProduct(p *product.Product) {
	s.products = append(s.products, p)
}

// RemoveProduct removes the first occurrence of p. Removing a product that is
// not in the store is a no-op.
func (s *Store) RemoveProduct(p *product.Product) {
	for i, member := range s.products {
		if member == p {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return
		}
	}
}

// Products returns every member, active or not, in insertion order.
func (s *Store) Products() []*product.Product {
	return append([]*product.Product(nil), s.products...)
}

// Len is the number of members.
func (s *Store) Len() int {
	return len(s.products)
}

// AllProducts returns the active products in insertion order.
func (s *Store) AllProducts() []*product.Product {
	active := make([]*product.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active
}

// TotalQuantity sums the stock of every stock-limited member. Unlimited
// products have no countable stock and are skipped.
func (s *Store) TotalQuantity() int {
	total := 0
	for _, p := range s.products {
		if p.IsStockLimited() {
			total += p.Quantity()
		}
	}
	return total
}

// Order buys each item in turn and returns the summed price. It is not
// transactional: when a line fails, earlier lines stay bought and the error
// is returned unchanged.
func (s *Store) Order(items []OrderItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for i, item := range items {
		lineTotal, err := s.buyLine(i, item)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(lineTotal)
	}

	s.logger.Info("order placed",
		zap.Int("lines", len(items)),
		zap.String("total", total.String()))
	return total, nil
}

func (s *Store) buyLine(index int, item OrderItem) (decimal.Decimal, error) {
	if err := item.validate(index); err != nil {
		s.logger.Warn("order line rejected", zap.Int("line", index+1), zap.Error(err))
		return decimal.Zero, err
	}

	lineTotal, err := item.Product.Buy(item.Quantity)
	if err != nil {
		s.logger.Warn("order line rejected",
			zap.Int("line", index+1),
			zap.String("product", item.Product.Name()),
			zap.Int("quantity", item.Quantity),
			zap.Error(err))
		return decimal.Zero, err
	}

	s.logger.Debug("order line bought",
		zap.Int("line", index+1),
		zap.String("product", item.Product.Name()),
		zap.Int("quantity", item.Quantity),
		zap.String("line_total", lineTotal.String()))
	return lineTotal, nil
}
