// Command bestbuy runs the interactive store menu.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/JoschuaSch/Bestbuy/catalog"
	"github.com/JoschuaSch/Bestbuy/config"
	"github.com/JoschuaSch/Bestbuy/menu"
	"github.com/JoschuaSch/Bestbuy/product"
	"github.com/JoschuaSch/Bestbuy/store"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	products, err := loadProducts(cfg.CatalogPath)
	if err != nil {
		logger.Fatal("failed to load catalog",
			zap.String("path", cfg.CatalogPath),
			zap.Error(err))
	}

	s := store.New(products, store.WithLogger(logger))

	logger.Info("store ready",
		zap.Int("products", s.Len()),
		zap.Int("total_quantity", s.TotalQuantity()),
		zap.Bool("atomic_orders", cfg.AtomicOrders))

	m := menu.New(s, os.Stdin, os.Stdout,
		menu.WithLogger(logger),
		menu.WithAtomicOrders(cfg.AtomicOrders))
	if err := m.Run(); err != nil {
		logger.Fatal("failed to read input", zap.Error(err))
	}
}

func loadProducts(path string) ([]*product.Product, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}
