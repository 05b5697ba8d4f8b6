package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSnippetDelete(ctx context.Context, id string, targets []string, refresh bool) error {
	results, err := c.dataService.Delete(ctx, id, targets)
	if results == nil && err != nil {
		return fmt.Errorf("failed to delete snippet: %w", err)
	}

	c.io.Printf("Deleting %s\n", id)
	c.printResults(results)
	if err != nil {
		return fmt.Errorf("snippet was not removed from every source")
	}
	return c.refresh(ctx, refresh)
}
