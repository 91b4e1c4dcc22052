package cli

import (
	"context"
	"flag"
	"fmt"
)

func (c *Cli) runInvoices(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("invoices", flag.ContinueOnError)
	shop := fs.String("shop", "", "Shop name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *shop == "" {
		return fmt.Errorf("--shop is required")
	}

	invs, err := c.invoiceService.ListForShop(ctx, *shop)
	if err != nil {
		return fmt.Errorf("list invoices: %w", err)
	}
	if len(invs) == 0 {
		fmt.Fprintln(c.out, "No invoices.")
		return nil
	}

	fmt.Fprintf(c.out, "%-8s %-12s %-20s %10s %8s  %s\n", "NUMBER", "DATE", "CLIENT", "TOTAL", "ITEMS", "STATUS")
	for i := range invs {
		inv := &invs[i]
		status := "confirmed"
		if inv.QueueID != "" {
			status = "pending sync"
		}
		fmt.Fprintf(c.out, "%-8d %-12s %-20s %10.2f %8d  %s\n",
			inv.InvoiceNumber,
			inv.Date.Format("02/01/2006"),
			inv.ClientName,
			inv.Total,
			len(inv.Cart),
			status,
		)
	}
	return nil
}
