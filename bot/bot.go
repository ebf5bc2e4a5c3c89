package bot

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"restaurant-pos/catalog"
	"restaurant-pos/config"
	"restaurant-pos/models"
	"restaurant-pos/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// session is the per-chat POS state: the cart being built, the chosen
// order type and, after checkout, the order awaiting payment. One
// chat, one actor: the sessions map is locked, the session itself
// never needs to be.
type session struct {
	cart      *services.Cart
	orderType string
	order     *models.Order
}

type Bot struct {
	api  *tgbotapi.BotAPI
	cfg  *config.Config
	menu *catalog.Catalog

	sessions   map[int64]*session
	sessionsMu sync.RWMutex
}

func New(cfg *config.Config, menu *catalog.Catalog) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:      api,
		cfg:      cfg,
		menu:     menu,
		sessions: make(map[int64]*session),
	}, nil
}

func (b *Bot) session(chatID int64) *session {
	b.sessionsMu.RLock()
	s := b.sessions[chatID]
	b.sessionsMu.RUnlock()
	if s != nil {
		return s
	}
	b.sessionsMu.Lock()
	defer b.sessionsMu.Unlock()
	if s = b.sessions[chatID]; s == nil {
		s = &session{cart: services.NewCart(), orderType: models.OrderTypeDineIn}
		b.sessions[chatID] = s
	}
	return s
}

func (b *Bot) setBotCommands() error {
	cmds := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "Open the menu"},
		tgbotapi.BotCommand{Command: "menu", Description: "Browse the menu"},
		tgbotapi.BotCommand{Command: "cart", Description: "Show your order"},
		tgbotapi.BotCommand{Command: "clear", Description: "Clear your order"},
	)
	_, err := b.api.Request(cmds)
	return err
}

func (b *Bot) Start() {
	_ = b.setBotCommands()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.CallbackQuery != nil {
			b.handleCallback(update.CallbackQuery)
			continue
		}
		if update.Message == nil {
			continue
		}
		msg := update.Message
		text := strings.TrimSpace(msg.Text)

		switch text {
		case "/start":
			b.handleStart(msg.Chat.ID)
		case "/menu":
			b.sendCategories(msg.Chat.ID, 0)
		case "/cart":
			b.sendCart(msg.Chat.ID, 0)
		case "/clear":
			b.session(msg.Chat.ID).cart.Clear()
			b.send(msg.Chat.ID, "Cart cleared. All items have been removed from your order.")
		}
	}
}

func (b *Bot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("send error: %v", err)
	}
}

// sendOrEdit redraws a card: edits the triggering message in place for
// callbacks, sends a new message for commands (editMsgID == 0).
func (b *Bot) sendOrEdit(chatID int64, editMsgID int, text string, kb tgbotapi.InlineKeyboardMarkup) {
	if editMsgID != 0 {
		edit := tgbotapi.NewEditMessageText(chatID, editMsgID, text)
		edit.ParseMode = "Markdown"
		edit.ReplyMarkup = &kb
		if _, err := b.api.Send(edit); err != nil {
			log.Printf("edit error: %v", err)
		}
		return
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = kb
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("send error: %v", err)
	}
}

// toast answers a callback with a transient notification.
func (b *Bot) toast(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		log.Printf("callback answer error: %v", err)
	}
}

// alert answers a callback with a blocking popup (for hard errors like
// checkout on an empty cart).
func (b *Bot) alert(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallbackWithAlert(callbackID, text)); err != nil {
		log.Printf("callback answer error: %v", err)
	}
}

func (b *Bot) handleStart(chatID int64) {
	b.session(chatID) // warm up the session
	text := fmt.Sprintf("👨‍🍳 Welcome to *%s*!\nPick a category to start your order.", b.cfg.Restaurant.Name)
	b.sendOrEdit(chatID, 0, text, b.categoryKeyboard(chatID))
}

func (b *Bot) categoryKeyboard(chatID int64) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		{tgbotapi.NewInlineKeyboardButtonData("🍽 All items", "cat:all")},
	}
	cats := models.Categories()
	for i := 0; i < len(cats); i += 2 {
		row := []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(cats[i].Icon()+" "+cats[i].Label(), "cat:"+string(cats[i])),
		}
		if i+1 < len(cats) {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(cats[i+1].Icon()+" "+cats[i+1].Label(), "cat:"+string(cats[i+1])))
		}
		rows = append(rows, row)
	}
	cart := b.session(chatID).cart
	cartLabel := "🛒 Cart"
	if n := cart.UnitCount(); n > 0 {
		cartLabel = fmt.Sprintf("🛒 Cart (%d)", n)
	}
	rows = append(rows, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData(cartLabel, "cart"),
	})
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (b *Bot) sendCategories(chatID int64, editMsgID int) {
	text := fmt.Sprintf("📋 *%s — Menu*\nPick a category.", b.cfg.Restaurant.Name)
	b.sendOrEdit(chatID, editMsgID, text, b.categoryKeyboard(chatID))
}

func (b *Bot) menuKeyboard(chatID int64, cat string) tgbotapi.InlineKeyboardMarkup {
	var items []models.MenuItem
	if cat == "all" {
		items = b.menu.Items()
	} else {
		items = b.menu.ByCategory(models.Category(cat))
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, item := range items {
		if item.Available {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(
					fmt.Sprintf("%s — %s", item.Name, services.FormatAmount(item.Price)),
					"add:"+item.ID+":"+cat,
				),
			))
		} else {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🚫 "+item.Name+" — unavailable", "na:"+item.ID),
			))
		}
	}
	cart := b.session(chatID).cart
	if cart.Len() > 0 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🛒 View cart", "cart"),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅ Categories", "menu"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (b *Bot) sendCategoryMenu(chatID int64, editMsgID int, cat string) {
	label := "All items"
	if cat != "all" {
		c := models.Category(cat)
		label = c.Icon() + " " + c.Label()
	}
	text := fmt.Sprintf("📋 *%s*\nTap an item to add it to your order.", label)
	cart := b.session(chatID).cart
	if cart.Len() > 0 {
		text += "\n\n" + services.BuildCartSummary(cart)
	}
	b.sendOrEdit(chatID, editMsgID, text, b.menuKeyboard(chatID, cat))
}

func (b *Bot) cartKeyboard(chatID int64) tgbotapi.InlineKeyboardMarkup {
	s := b.session(chatID)
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, l := range s.cart.Lines() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➖", "remove:"+l.Item.ID),
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%s × %d", l.Item.Name, l.Qty), "noop"),
			tgbotapi.NewInlineKeyboardButtonData("➕", "add:"+l.Item.ID+":cart"),
		))
	}
	typeLabel := "🍽 Dine-In"
	if s.orderType == models.OrderTypeTakeaway {
		typeLabel = "🥡 Takeaway"
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(typeLabel+" (tap to switch)", "type"),
	))
	if s.cart.Len() > 0 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Clear", "clear"),
			tgbotapi.NewInlineKeyboardButtonData("💳 Proceed to bill", "checkout"),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅ Menu", "menu"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (b *Bot) sendCart(chatID int64, editMsgID int) {
	s := b.session(chatID)
	text := services.BuildCartSummary(s.cart)
	text += "\n\nOrder type: *" + services.OrderTypeLabel(s.orderType) + "*"
	b.sendOrEdit(chatID, editMsgID, text, b.cartKeyboard(chatID))
}

func (b *Bot) sendBill(chatID int64, editMsgID int) {
	s := b.session(chatID)
	if s.order == nil {
		b.sendCart(chatID, editMsgID)
		return
	}
	card := services.BuildBillCard(b.cfg.Restaurant.Name, s.order)
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, row := range card.Buttons {
		var btns []tgbotapi.InlineKeyboardButton
		for _, btn := range row {
			btns = append(btns, tgbotapi.NewInlineKeyboardButtonData(btn.Text, btn.CallbackData))
		}
		rows = append(rows, btns)
	}
	b.sendOrEdit(chatID, editMsgID, card.Text, tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (b *Bot) handleCallback(cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	msgID := cq.Message.MessageID
	data := cq.Data
	s := b.session(chatID)

	switch {
	case data == "menu":
		b.toast(cq.ID, "")
		b.sendCategories(chatID, msgID)
	case strings.HasPrefix(data, "cat:"):
		b.toast(cq.ID, "")
		b.sendCategoryMenu(chatID, msgID, strings.TrimPrefix(data, "cat:"))
	case strings.HasPrefix(data, "add:"):
		rest := strings.TrimPrefix(data, "add:")
		itemID, from := rest, "all"
		if i := strings.LastIndex(rest, ":"); i >= 0 {
			itemID, from = rest[:i], rest[i+1:]
		}
		item, ok := b.menu.Get(itemID)
		if !ok {
			b.toast(cq.ID, "This item is no longer on the menu.")
			return
		}
		s.cart.AddItem(item)
		b.toast(cq.ID, item.Name+" added to your order.")
		if from == "cart" {
			b.sendCart(chatID, msgID)
		} else {
			b.sendCategoryMenu(chatID, msgID, from)
		}
	case strings.HasPrefix(data, "na:"):
		// Unavailable items stay visible but cannot be added.
		b.toast(cq.ID, "Currently unavailable.")
	case strings.HasPrefix(data, "remove:"):
		s.cart.RemoveItem(strings.TrimPrefix(data, "remove:"))
		b.toast(cq.ID, "")
		b.sendCart(chatID, msgID)
	case data == "cart":
		b.toast(cq.ID, "")
		b.sendCart(chatID, msgID)
	case data == "clear":
		s.cart.Clear()
		b.toast(cq.ID, "Cart cleared.")
		b.sendCart(chatID, msgID)
	case data == "type":
		if s.orderType == models.OrderTypeDineIn {
			s.orderType = models.OrderTypeTakeaway
		} else {
			s.orderType = models.OrderTypeDineIn
		}
		b.toast(cq.ID, "Order type: "+services.OrderTypeLabel(s.orderType))
		b.sendCart(chatID, msgID)
	case data == "checkout":
		order, err := services.CreateOrder(s.cart, s.orderType)
		if err != nil {
			// ErrEmptyCart: abort, no state change, blocking notice.
			b.alert(cq.ID, "Your cart is empty. Please add items before proceeding.")
			return
		}
		s.order = order
		b.toast(cq.ID, "")
		b.sendBill(chatID, msgID)
	case strings.HasPrefix(data, "pay:"):
		if s.order == nil {
			b.toast(cq.ID, "No open bill.")
			return
		}
		bill, err := services.SettleBill(s.order, strings.TrimPrefix(data, "pay:"))
		if err != nil {
			b.toast(cq.ID, err.Error())
			return
		}
		b.toast(cq.ID, services.BuildPaymentConfirmation(bill))
		// Order accepted downstream: now the cart is cleared (the
		// factory never touches it).
		s.cart.Clear()
		s.order = nil
		b.sendCategories(chatID, msgID)
	case data == "noop":
		b.toast(cq.ID, "")
	default:
		b.toast(cq.ID, "")
	}
}
