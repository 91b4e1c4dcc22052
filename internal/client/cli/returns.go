package cli

import (
	"context"
	"flag"
	"fmt"
)

func (c *Cli) runReturn(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("return", flag.ContinueOnError)
	invoiceID := fs.String("invoice", "", "Invoice document id")
	code := fs.String("code", "", "Product code of the returned line")
	color := fs.String("color", "", "Color of the returned line")
	size := fs.String("size", "", "Size of the returned line")
	qty := fs.Int("qty", 1, "Quantity to return")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *invoiceID == "" || *code == "" {
		return fmt.Errorf("--invoice and --code are required")
	}

	inv, returned, err := c.invoiceService.ReturnItem(ctx, *invoiceID, *code, *color, *size, *qty)
	if err != nil {
		return fmt.Errorf("return item: %w", err)
	}

	if err := c.stockService.RestoreStock(ctx, returned); err != nil {
		// Фактура уже исправлена; склад придётся поправить вручную
		fmt.Fprintf(c.out, "warning: stock not restored: %v\n", err)
	}

	if len(inv.Cart) == 0 {
		fmt.Fprintf(c.out, "Invoice #%d fully returned and removed\n", inv.InvoiceNumber)
	} else {
		fmt.Fprintf(c.out, "Returned %d x %s from invoice #%d, new total %.2f\n",
			*qty, *code, inv.InvoiceNumber, inv.Total)
	}
	return nil
}
