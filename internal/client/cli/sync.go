package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSync(ctx context.Context) error {
	fmt.Fprintln(c.out, "=== Synchronization ===")

	pending, err := c.syncService.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("read queue: %w", err)
	}
	if pending == 0 {
		fmt.Fprintln(c.out, "Queue is empty, nothing to sync.")
		return nil
	}
	fmt.Fprintf(c.out, "Flushing %d pending operations...\n", pending)

	if err := c.syncService.SyncWithRetry(ctx); err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	remaining, err := c.syncService.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("read queue: %w", err)
	}
	fmt.Fprintln(c.out)
	if remaining == 0 {
		fmt.Fprintln(c.out, "✓ Queue drained, all operations synced.")
	} else {
		fmt.Fprintf(c.out, "%d operations still pending, will retry later.\n", remaining)
	}
	return nil
}
