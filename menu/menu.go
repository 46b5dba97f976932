// Package menu is the interactive text front end of the store.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/JoschuaSch/Bestbuy/commerce"
	"github.com/JoschuaSch/Bestbuy/store"
)

const (
	title       = "Store Menu"
	titleWidth  = 30
	listDivider = "----------------------------------------------------------"
	pickDivider = "**********************************************************"
)

// Menu reads choices line by line from an input and writes the screens to
// an output.
type Menu struct {
	store  *store.Store
	in     *bufio.Scanner
	out    io.Writer
	logger *zap.Logger
	atomic bool
}

// Option configures a Menu.
type Option func(*Menu)

// WithLogger sets the logger for diagnostics. It never receives user output.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Menu) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithAtomicOrders places orders with Store.OrderAtomic.
func WithAtomicOrders(atomic bool) Option {
	return func(m *Menu) {
		m.atomic = atomic
	}
}

func New(s *store.Store, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		store:  s,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run shows the menu until the user quits or the input ends.
func (m *Menu) Run() error {
	for {
		m.printf("\n%s\n", center(title, titleWidth, '.'))
		m.println("1. List all products in store")
		m.println("2. Show total amount in store")
		m.println("3. Make an order")
		m.println("4. Quit")

		option, ok := m.prompt("Please choose an option (1-4): ")
		if !ok {
			return m.in.Err()
		}
		m.logger.Debug("menu option selected", zap.String("option", option))

		switch option {
		case "1":
			m.listProducts()
		case "2":
			m.showTotalQuantity()
		case "3":
			if !m.makeOrder() {
				return m.in.Err()
			}
		case "4":
			m.println("Thanks for shopping! Hope to see you next time!")
			return nil
		default:
			m.println("\nInvalid option, please choose again.")
		}
	}
}

func (m *Menu) listProducts() {
	m.printf("\n\n%s\n", listDivider)
	for i, p := range m.store.AllProducts() {
		m.println(p.Show(i + 1))
	}
	m.printf("%s\n\n", listDivider)
}

func (m *Menu) showTotalQuantity() {
	m.printf("\n\n%s\n", listDivider)
	m.printf("Total quantity in store: %d\n", m.store.TotalQuantity())
	m.printf("%s\n\n", listDivider)
}

// makeOrder collects order lines until a blank entry, then places the order.
// It reports false when the input ended.
func (m *Menu) makeOrder() bool {
	var items []store.OrderItem
	for {
		m.printf("\n\n%s\n", pickDivider)
		products := m.store.AllProducts()
		for i, p := range products {
			m.println(p.Show(i + 1))
		}
		m.printf("%s\n\n", pickDivider)

		choice, ok := m.prompt("Choose the product number. Press Enter when you are finished, or want to return back: ")
		if !ok {
			return false
		}
		if choice == "" {
			break
		}

		number, err := strconv.Atoi(choice)
		if err != nil || number < 1 || number > len(products) {
			m.println("\n! Invalid product. Please enter a valid number. !")
			continue
		}
		p := products[number-1]

		answer, ok := m.prompt("Enter the quantity: ")
		if !ok {
			return false
		}
		quantity, err := strconv.Atoi(answer)
		if err != nil || quantity < 1 {
			m.println("Invalid quantity. Please enter a valid number.")
			continue
		}

		m.printf("\n\n%s\n", listDivider)
		if !p.CanSupply(quantity) {
			m.printf("Not enough %s in stock.\n", p.Name())
		} else {
			items = append(items, store.OrderItem{Product: p, Quantity: quantity})
			m.printf("%s with the quantity of %d added to the list.\n", p.Name(), quantity)
		}
		m.printf("%s\n\n", listDivider)
	}

	if len(items) > 0 {
		m.placeOrder(items)
	}
	return true
}

func (m *Menu) placeOrder(items []store.OrderItem) {
	total, err := m.order(items)
	if err != nil {
		m.logger.Warn("order failed", zap.Int("lines", len(items)), zap.Error(err))
		m.println(err.Error())
		return
	}

	m.printf("\n\n%s\n", listDivider)
	m.printf("Order made! Total cost: %s\n", commerce.FormatAmount(total))
	m.printf("%s\n\n", listDivider)
}

func (m *Menu) order(items []store.OrderItem) (decimal.Decimal, error) {
	if !m.atomic {
		return m.store.Order(items)
	}
	receipt, err := m.store.OrderAtomic(items)
	if err != nil {
		return decimal.Zero, err
	}
	return receipt.Total, nil
}

func (m *Menu) prompt(text string) (string, bool) {
	fmt.Fprint(m.out, text)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

func (m *Menu) println(line string) {
	fmt.Fprintln(m.out, line)
}

// center pads text on both sides with fill to width. An odd remainder goes to
// the right.
func center(text string, width int, fill rune) string {
	pad := width - len([]rune(text))
	if pad <= 0 {
		return text
	}
	left := pad / 2
	return strings.Repeat(string(fill), left) + text + strings.Repeat(string(fill), pad-left)
}
