package features

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/JoschuaSch/Bestbuy/commerce"
	"github.com/JoschuaSch/Bestbuy/product"
	"github.com/JoschuaSch/Bestbuy/promotion"
	"github.com/JoschuaSch/Bestbuy/store"
)

type storeTestContext struct {
	store    *store.Store
	products map[string]*product.Product
	amount   decimal.Decimal
	receipt  *store.Receipt
	err      error
}

func (c *storeTestContext) reset() {
	c.store = store.New(nil)
	c.products = make(map[string]*product.Product)
	c.amount = decimal.Zero
	c.receipt = nil
	c.err = nil
}

func (c *storeTestContext) lookup(name string) (*product.Product, error) {
	p, ok := c.products[name]
	if !ok {
		return nil, fmt.Errorf("no product named %q in scenario", name)
	}
	return p, nil
}

func (c *storeTestContext) add(p *product.Product) {
	c.products[p.Name()] = p
	c.store.AddProduct(p)
}

func (c *storeTestContext) aLimitedProductPricedWithInStock(name, price string, quantity int) error {
	p, err := product.NewLimited(name, decimal.RequireFromString(price), quantity, quantity)
	if err != nil {
		return err
	}
	c.add(p)
	return nil
}

func (c *storeTestContext) anUnlimitedProductPriced(name, price string) error {
	p, err := product.NewUnlimited(name, decimal.RequireFromString(price))
	if err != nil {
		return err
	}
	c.add(p)
	return nil
}

func (c *storeTestContext) productHasAPromotion(name, preset string) error {
	p, err := c.lookup(name)
	if err != nil {
		return err
	}

	var promo *promotion.Promotion
	switch preset {
	case "second one half price":
		promo, err = promotion.SecondHalfPrice("Second one half price!")
	case "third one free":
		promo, err = promotion.ThirdOneFree("Third one free!")
	default:
		return fmt.Errorf("unknown promotion preset %q", preset)
	}
	if err != nil {
		return err
	}
	p.AddPromotion(promo)
	return nil
}

func (c *storeTestContext) productHasAPercentDiscount(name string, percent int) error {
	p, err := c.lookup(name)
	if err != nil {
		return err
	}
	promo, err := promotion.PercentDiscount(fmt.Sprintf("%d%% off!", percent), int64(percent))
	if err != nil {
		return err
	}
	p.AddPromotion(promo)
	return nil
}

func (c *storeTestContext) productHasASecondUnitDiscount(name string, percent int) error {
	p, err := c.lookup(name)
	if err != nil {
		return err
	}
	promo, err := promotion.SecondUnitDiscount(fmt.Sprintf("Second %d%% off!", percent), int64(percent))
	if err != nil {
		return err
	}
	p.AddPromotion(promo)
	return nil
}

func (c *storeTestContext) iCreateAPercentDiscount(percent int) error {
	_, c.err = promotion.PercentDiscount("Too generous", int64(percent))
	return nil
}

func (c *storeTestContext) iQuoteUnitsOf(quantity int, name string) error {
	p, err := c.lookup(name)
	if err != nil {
		return err
	}
	c.amount = p.Quote(quantity)
	return nil
}

func (c *storeTestContext) iBuyUnitsOf(quantity int, name string) error {
	p, err := c.lookup(name)
	if err != nil {
		return err
	}
	c.amount, c.err = p.Buy(quantity)
	return nil
}

func (c *storeTestContext) iActivate(name string) error {
	p, err := c.lookup(name)
	if err != nil {
		return err
	}
	c.err = p.Activate()
	return nil
}

func (c *storeTestContext) orderItems(table *godog.Table) ([]store.OrderItem, error) {
	if len(table.Rows) < 2 {
		return nil, errors.New("order table needs a header and at least one line")
	}
	items := make([]store.OrderItem, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		p, err := c.lookup(row.Cells[0].Value)
		if err != nil {
			return nil, err
		}
		quantity, err := strconv.Atoi(row.Cells[1].Value)
		if err != nil {
			return nil, fmt.Errorf("bad quantity %q: %w", row.Cells[1].Value, err)
		}
		items = append(items, store.OrderItem{Product: p, Quantity: quantity})
	}
	return items, nil
}

func (c *storeTestContext) iOrder(table *godog.Table) error {
	items, err := c.orderItems(table)
	if err != nil {
		return err
	}
	c.amount, c.err = c.store.Order(items)
	return nil
}

func (c *storeTestContext) iOrderAtomically(table *godog.Table) error {
	items, err := c.orderItems(table)
	if err != nil {
		return err
	}
	c.receipt, c.err = c.store.OrderAtomic(items)
	if c.receipt != nil {
		c.amount = c.receipt.Total
	}
	return nil
}

func (c *storeTestContext) theAmountIs(expected string) error {
	if c.err != nil {
		return fmt.Errorf("expected result but got error: %v", c.err)
	}
	want := decimal.RequireFromString(expected)
	if !c.amount.Equal(want) {
		return fmt.Errorf("expected %s, got %s", want, c.amount)
	}
	return nil
}

func (c *storeTestContext) theReceiptHasLines(lines int) error {
	if c.receipt == nil {
		return errors.New("no receipt")
	}
	if len(c.receipt.Lines) != lines {
		return fmt.Errorf("expected %d receipt lines, got %d", lines, len(c.receipt.Lines))
	}
	return nil
}

func (c *storeTestContext) productHasInStock(name string, quantity int) error {
	p, err := c.lookup(name)
	if err != nil {
		return err
	}
	if p.Quantity() != quantity {
		return fmt.Errorf("expected %d %s in stock, got %d", quantity, name, p.Quantity())
	}
	return nil
}

func (c *storeTestContext) productIsActive(name, state string) error {
	p, err := c.lookup(name)
	if err != nil {
		return err
	}
	if want := state == "active"; p.IsActive() != want {
		return fmt.Errorf("expected %s to be %s", name, state)
	}
	return nil
}

func (c *storeTestContext) theStoreHoldsUnitsInTotal(total int) error {
	if got := c.store.TotalQuantity(); got != total {
		return fmt.Errorf("expected total quantity %d, got %d", total, got)
	}
	return nil
}

func (c *storeTestContext) theStoreListsActiveProducts(count int) error {
	if got := len(c.store.AllProducts()); got != count {
		return fmt.Errorf("expected %d active products, got %d", count, got)
	}
	return nil
}

func (c *storeTestContext) theCommandFailsWithStatus(statusName string) error {
	if c.err == nil {
		return errors.New("expected command to fail but it succeeded")
	}
	code, ok := commerce.CodeOf(c.err)
	if !ok {
		return fmt.Errorf("expected CommandError, got %T", c.err)
	}
	if code.String() != statusName {
		return fmt.Errorf("expected status %s, got %s", statusName, code.String())
	}
	return nil
}

func (c *storeTestContext) theErrorMessageContains(substring string) error {
	if c.err == nil {
		return errors.New("expected error but command succeeded")
	}
	if !strings.Contains(strings.ToLower(c.err.Error()), strings.ToLower(substring)) {
		return fmt.Errorf("expected error message to contain %q, got %q", substring, c.err.Error())
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &storeTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a limited product "([^"]*)" priced ([\d.]+) with (\d+) in stock$`, tc.aLimitedProductPricedWithInStock)
	ctx.Step(`^an unlimited product "([^"]*)" priced ([\d.]+)$`, tc.anUnlimitedProductPriced)
	ctx.Step(`^"([^"]*)" has a "([^"]*)" promotion$`, tc.productHasAPromotion)
	ctx.Step(`^"([^"]*)" has a (\d+) percent discount$`, tc.productHasAPercentDiscount)
	ctx.Step(`^"([^"]*)" has a (\d+) percent second unit discount$`, tc.productHasASecondUnitDiscount)

	// When steps
	ctx.Step(`^I create a (\d+) percent discount$`, tc.iCreateAPercentDiscount)
	ctx.Step(`^I quote (\d+) units of "([^"]*)"$`, tc.iQuoteUnitsOf)
	ctx.Step(`^I buy (-?\d+) units of "([^"]*)"$`, tc.iBuyUnitsOf)
	ctx.Step(`^I activate "([^"]*)"$`, tc.iActivate)
	ctx.Step(`^I order:$`, tc.iOrder)
	ctx.Step(`^I order atomically:$`, tc.iOrderAtomically)

	// Then steps
	ctx.Step(`^the (?:quote|charge|order total) is ([\d.]+)$`, tc.theAmountIs)
	ctx.Step(`^the receipt has (\d+) lines$`, tc.theReceiptHasLines)
	ctx.Step(`^"([^"]*)" has (\d+) in stock$`, tc.productHasInStock)
	ctx.Step(`^"([^"]*)" is (active|inactive)$`, tc.productIsActive)
	ctx.Step(`^the store holds (\d+) units in total$`, tc.theStoreHoldsUnitsInTotal)
	ctx.Step(`^the store lists (\d+) active products$`, tc.theStoreListsActiveProducts)
	ctx.Step(`^the command fails with status "([^"]*)"$`, tc.theCommandFailsWithStatus)
	ctx.Step(`^the error message contains "([^"]*)"$`, tc.theErrorMessageContains)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"pricing.feature", "inventory.feature", "order.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
