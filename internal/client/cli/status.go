package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runStatus(ctx context.Context) error {
	pending, err := c.syncService.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("read queue: %w", err)
	}

	state := "offline"
	if c.net.Online() {
		state = "online"
	}
	fmt.Fprintf(c.out, "Connectivity:       %s\n", state)
	fmt.Fprintf(c.out, "Pending operations: %d\n", pending)
	return nil
}
