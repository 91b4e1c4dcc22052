package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/dukkan-app/dukkan/internal/client/invoices"
	"github.com/dukkan-app/dukkan/internal/models"
)

// itemSpec is a repeatable --item flag value in the form
// CODE:NAME:QTY:BUY:SELL[:COLOR[:SIZE]].
type itemSpec []string

func (s *itemSpec) String() string { return strings.Join(*s, ",") }

func (s *itemSpec) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func (c *Cli) runSell(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("sell", flag.ContinueOnError)
	shop := fs.String("shop", "", "Shop name")
	employee := fs.String("employee", "", "Employee recording the sale")
	client := fs.String("client", "", "Client name")
	phone := fs.String("phone", "", "Client phone")
	discount := fs.Float64("discount", 0, "Discount amount")
	notes := fs.String("notes", "", "Discount notes")
	var items itemSpec
	fs.Var(&items, "item", "Cart item CODE:NAME:QTY:BUY:SELL[:COLOR[:SIZE]] (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *shop == "" {
		return fmt.Errorf("--shop is required")
	}
	if len(items) == 0 {
		return fmt.Errorf("at least one --item is required")
	}

	cart := make([]models.CartItem, 0, len(items))
	for _, spec := range items {
		item, err := parseItem(spec, *shop)
		if err != nil {
			return err
		}
		if err := c.stockService.ResolveReference(ctx, item); err != nil {
			fmt.Fprintf(c.out, "warning: could not resolve product %s: %v\n", item.Code, err)
		}
		cart = append(cart, *item)
	}

	res, err := c.invoiceService.Create(ctx, *shop, *employee, cart, invoices.ClientData{
		Name:          *client,
		Phone:         *phone,
		Discount:      *discount,
		DiscountNotes: *notes,
	})
	if err != nil {
		return fmt.Errorf("create invoice: %w", err)
	}

	if err := c.stockService.ApplySaleDelta(ctx, cart); err != nil {
		// Продажа уже записана; проблемы склада не отменяют её
		fmt.Fprintf(c.out, "warning: stock update incomplete: %v\n", err)
	}

	fmt.Fprintf(c.out, "Invoice #%d recorded, total %.2f\n", res.Invoice.InvoiceNumber, res.Invoice.Total)
	if res.Offline {
		fmt.Fprintf(c.out, "Saved offline, will sync when connection returns (queue id %s)\n", res.QueueID)
	}
	return nil
}

// parseItem parses CODE:NAME:QTY:BUY:SELL[:COLOR[:SIZE]].
func parseItem(spec, shop string) (*models.CartItem, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 5 || len(parts) > 7 {
		return nil, fmt.Errorf("bad item %q: want CODE:NAME:QTY:BUY:SELL[:COLOR[:SIZE]]", spec)
	}

	qty, err := strconv.Atoi(parts[2])
	if err != nil || qty <= 0 {
		return nil, fmt.Errorf("bad item %q: quantity must be a positive integer", spec)
	}
	buy, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return nil, fmt.Errorf("bad item %q: buy price: %w", spec, err)
	}
	sell, err := strconv.ParseFloat(parts[4], 64)
	if err != nil {
		return nil, fmt.Errorf("bad item %q: sell price: %w", spec, err)
	}

	item := &models.CartItem{
		Code:      parts[0],
		Name:      parts[1],
		Shop:      shop,
		Quantity:  qty,
		BuyPrice:  buy,
		SellPrice: sell,
	}
	if len(parts) > 5 {
		item.Color = parts[5]
	}
	if len(parts) > 6 {
		item.Size = parts[6]
	}
	return item, nil
}
