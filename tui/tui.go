package tui

import (
	"fmt"
	"strings"

	"restaurant-pos/catalog"
	"restaurant-pos/models"
	"restaurant-pos/services"

	tea "github.com/charmbracelet/bubbletea"
)

// The terminal POS: menu grid on the left of the original screen
// becomes a category/item list, the cart sidebar becomes a summary
// block, the bill modal becomes a dedicated view.

type screen int

const (
	screenMenu screen = iota
	screenBill
)

type model struct {
	name string
	menu *catalog.Catalog

	cart      *services.Cart
	orderType string
	order     *models.Order

	categories []string // "all" plus the closed category set
	selCat     int
	selItem    int

	screen screen
	status string
}

func initialModel(name string, menu *catalog.Catalog) model {
	cats := []string{"all"}
	for _, c := range models.Categories() {
		cats = append(cats, string(c))
	}
	return model{
		name:       name,
		menu:       menu,
		cart:       services.NewCart(),
		orderType:  models.OrderTypeDineIn,
		categories: cats,
		status:     "Ready",
	}
}

func (m model) items() []models.MenuItem {
	cat := m.categories[m.selCat]
	if cat == "all" {
		return m.menu.Items()
	}
	return m.menu.ByCategory(models.Category(cat))
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.screen == screenBill {
		return m.updateBill(key)
	}
	return m.updateMenu(key)
}

func (m model) updateMenu(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.items()
	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "left":
		if m.selCat > 0 {
			m.selCat--
			m.selItem = 0
		}
	case "right":
		if m.selCat < len(m.categories)-1 {
			m.selCat++
			m.selItem = 0
		}
	case "up":
		if m.selItem > 0 {
			m.selItem--
		}
	case "down":
		if m.selItem < len(items)-1 {
			m.selItem++
		}
	case "enter", "+":
		if len(items) == 0 {
			break
		}
		it := items[m.selItem]
		if !it.Available {
			m.status = it.Name + " is currently unavailable"
			break
		}
		m.cart.AddItem(it)
		m.status = it.Name + " added to cart"
	case "-", "backspace":
		if len(items) == 0 {
			break
		}
		it := items[m.selItem]
		m.cart.RemoveItem(it.ID)
		m.status = it.Name + " removed"
	case "c":
		m.cart.Clear()
		m.status = "Cart cleared"
	case "t":
		if m.orderType == models.OrderTypeDineIn {
			m.orderType = models.OrderTypeTakeaway
		} else {
			m.orderType = models.OrderTypeDineIn
		}
		m.status = "Order type: " + services.OrderTypeLabel(m.orderType)
	case "b":
		order, err := services.CreateOrder(m.cart, m.orderType)
		if err != nil {
			m.status = "Cart is empty — add items before proceeding"
			break
		}
		m.order = order
		m.screen = screenBill
		m.status = "Choose a payment method"
	}
	return m, nil
}

func (m model) updateBill(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	pay := func(method string) (tea.Model, tea.Cmd) {
		bill, err := services.SettleBill(m.order, method)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = services.BuildPaymentConfirmation(bill)
		m.cart.Clear()
		m.order = nil
		m.screen = screenMenu
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "1":
		return pay(models.PaymentCash)
	case "2":
		return pay(models.PaymentCard)
	case "3":
		return pay(models.PaymentUPI)
	case "esc":
		// Back to the cart without paying; the order snapshot is
		// dropped, the cart stays as it was.
		m.order = nil
		m.screen = screenMenu
		m.status = "Back to menu"
	}
	return m, nil
}

func (m model) View() string {
	if m.screen == screenBill && m.order != nil {
		return m.viewBill()
	}
	return m.viewMenu()
}

func (m model) viewMenu() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s — POS", m.name)
	if n := m.cart.UnitCount(); n > 0 {
		fmt.Fprintf(b, "  [cart: %d]", n)
	}
	fmt.Fprintln(b)
	fmt.Fprintln(b)

	for i, cat := range m.categories {
		label := "All"
		if cat != "all" {
			c := models.Category(cat)
			label = c.Icon() + " " + c.Label()
		}
		if i == m.selCat {
			fmt.Fprintf(b, "[%s] ", label)
		} else {
			fmt.Fprintf(b, " %s  ", label)
		}
	}
	fmt.Fprintln(b)
	fmt.Fprintln(b)

	items := m.items()
	if len(items) == 0 {
		fmt.Fprintln(b, "  (no items in this category)")
	}
	for i, it := range items {
		marker := " "
		if i == m.selItem {
			marker = ">"
		}
		line := fmt.Sprintf("%s %s — %s", marker, it.Name, services.FormatAmount(it.Price))
		if qty := m.cart.Quantity(it.ID); qty > 0 {
			line += fmt.Sprintf("  ×%d", qty)
		}
		if !it.Available {
			line += "  (unavailable)"
		}
		fmt.Fprintln(b, line)
	}
	fmt.Fprintln(b)

	fmt.Fprintln(b, stripMarkdown(services.BuildCartSummary(m.cart)))
	fmt.Fprintf(b, "\nOrder type: %s\n", services.OrderTypeLabel(m.orderType))
	fmt.Fprintf(b, "\nStatus: %s\n", m.status)
	fmt.Fprintln(b, "\nControls: ←/→ category, ↑/↓ item, enter add, - remove, c clear, t order type, b bill, q quit")
	return b.String()
}

func (m model) viewBill() string {
	b := &strings.Builder{}
	card := services.BuildBillCard(m.name, m.order)
	fmt.Fprintln(b, stripMarkdown(card.Text))
	fmt.Fprintf(b, "\nStatus: %s\n", m.status)
	fmt.Fprintln(b, "\nPay with: 1 Cash, 2 Card, 3 UPI — esc back, q quit")
	return b.String()
}

// stripMarkdown drops the Telegram bold markers from shared card text.
func stripMarkdown(s string) string {
	return strings.ReplaceAll(s, "*", "")
}

// Run starts the terminal POS and blocks until the operator quits.
func Run(restaurantName string, menu *catalog.Catalog) error {
	p := tea.NewProgram(initialModel(restaurantName, menu))
	_, err := p.Run()
	return err
}
