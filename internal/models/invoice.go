package models

import "time"

// Collection names in the remote document store
const (
	CollectionDailySales      = "dailySales"
	CollectionProducts        = "products"
	CollectionExpenses        = "masrofat"
	CollectionReports         = "reports"
	CollectionDailyProfit     = "dailyProfit"
	CollectionCloseDayHistory = "closeDayHistory"
	CollectionCounters        = "counters"
)

// CartItem represents one sold line of an invoice. Color and Size are
// optional and select a node in the product variant hierarchy.
type CartItem struct {
	ProductID    string  `json:"originalProductId,omitempty"` // ProductID идентификатор исходного продукта
	Code         string  `json:"code"`                        // Code артикул продукта
	Name         string  `json:"name"`                        // Name название продукта
	Color        string  `json:"color,omitempty"`             // Color выбранный цвет (опционально)
	Size         string  `json:"size,omitempty"`              // Size выбранный размер (опционально)
	Section      string  `json:"section,omitempty"`
	MerchantName string  `json:"merchantName,omitempty"`
	Shop         string  `json:"shop,omitempty"`
	Type         string  `json:"type,omitempty"`
	Quantity     int     `json:"quantity"`
	BuyPrice     float64 `json:"buyPrice"`
	SellPrice    float64 `json:"sellPrice"`
	FinalPrice   float64 `json:"finalPrice"` // FinalPrice цена после скидки (если 0 — используется SellPrice)
}

// UnitPrice returns the effective selling price of the item.
func (i *CartItem) UnitPrice() float64 {
	if i.FinalPrice > 0 {
		return i.FinalPrice
	}
	return i.SellPrice
}

// Invoice represents a sale record, either confirmed remotely or held
// in the local mirror awaiting sync. QueueID links a mirror invoice to
// the queue operation that will create its remote counterpart.
type Invoice struct {
	Date          time.Time  `json:"date"`
	ID            string     `json:"id,omitempty"`      // ID идентификатор документа (удалённый, либо временный локальный)
	QueueID       string     `json:"queueId,omitempty"` // QueueID ссылка на операцию очереди (только для зеркальных копий)
	ClientName    string     `json:"clientName"`
	Phone         string     `json:"phone"`
	Shop          string     `json:"shop"`
	Employee      string     `json:"employee"`
	DiscountNotes string     `json:"discountNotes,omitempty"`
	Cart          []CartItem `json:"cart"`
	InvoiceNumber int64      `json:"invoiceNumber"`
	Total         float64    `json:"total"`
	Profit        float64    `json:"profit"`
	Discount      float64    `json:"discount"`
}

// InvoiceKey is the composite business key used to recognize the same
// invoice across local and remote copies when IDs differ. A structured
// key avoids collisions from separator characters inside field values.
type InvoiceKey struct {
	Shop   string
	Number int64
	Total  float64
}

// Key returns the business key of the invoice.
func (inv *Invoice) Key() InvoiceKey {
	return InvoiceKey{Number: inv.InvoiceNumber, Total: inv.Total, Shop: inv.Shop}
}

// Subtotal computes the invoice total over the cart.
func Subtotal(cart []CartItem) float64 {
	var total float64
	for i := range cart {
		total += cart[i].UnitPrice() * float64(cart[i].Quantity)
	}
	return total
}

// Profit computes the invoice profit over the cart.
func Profit(cart []CartItem) float64 {
	var profit float64
	for i := range cart {
		profit += (cart[i].UnitPrice() - cart[i].BuyPrice) * float64(cart[i].Quantity)
	}
	return profit
}
