package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dukkan-app/dukkan/internal/models"
)

func (c *Cli) runWatch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	shop := fs.String("shop", "", "Shop name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *shop == "" {
		return fmt.Errorf("--shop is required")
	}

	// Подключение восстановилось — сразу выталкиваем очередь
	c.syncService.WatchConnectivity(ctx)

	cancel, err := c.invoiceService.Watch(ctx, *shop, func(invs []models.Invoice) {
		fmt.Fprintf(c.out, "%d invoices for %s\n", len(invs), *shop)
	})
	if err != nil {
		return fmt.Errorf("watch invoices: %w", err)
	}
	defer cancel()

	fmt.Fprintf(c.out, "Watching %s, Ctrl-C to stop.\n", *shop)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	select {
	case <-stop:
	case <-ctx.Done():
	}
	return nil
}
