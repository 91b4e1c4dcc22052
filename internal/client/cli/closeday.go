package cli

import (
	"context"
	"flag"
	"fmt"
)

func (c *Cli) runCloseDay(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("closeday", flag.ContinueOnError)
	shop := fs.String("shop", "", "Shop name")
	by := fs.String("by", "", "Operator closing the day")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *shop == "" || *by == "" {
		return fmt.Errorf("--shop and --by are required")
	}

	res, err := c.closeDayService.Close(ctx, *shop, *by)
	if err != nil {
		return fmt.Errorf("close day: %w", err)
	}

	r := res.Report
	fmt.Fprintf(c.out, "Day %s closed for %s by %s\n", r.ClosedAt, r.Shop, r.ClosedBy)
	fmt.Fprintf(c.out, "Sales:           %d invoices, total %.2f\n", len(r.Sales), r.TotalSales)
	fmt.Fprintf(c.out, "Expenses (net):  %.2f\n", r.TotalExpenses)
	if r.ReturnedProfit > 0 {
		fmt.Fprintf(c.out, "Returned profit: %.2f\n", r.ReturnedProfit)
	}
	if res.Offline {
		fmt.Fprintln(c.out, "Saved offline, rollup will reach the store on next sync.")
	}
	return nil
}
