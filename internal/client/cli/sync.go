package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	result, err := c.syncService.Sync(ctx)
	if err != nil {
		return fmt.Errorf("synchronization failed: %s", describeError(err))
	}

	for _, o := range result.Sources {
		switch {
		case o.Skipped:
			c.io.Printf("- %-12s skipped (no folder selected)\n", o.SourceID)
		case o.Error != "":
			c.io.Printf("✗ %-12s %s (cached snippets kept)\n", o.SourceID, o.Error)
		default:
			mode := "delta"
			if o.Full {
				mode = "full"
			}
			c.io.Printf("✓ %-12s %d files, %d downloaded, %d snippets (%s)\n",
				o.SourceID, o.Files, o.Downloaded, o.Snippets, mode)
			if o.ParseErrors > 0 {
				c.io.Printf("  %d file(s) skipped: unreadable format\n", o.ParseErrors)
			}
		}
	}

	c.io.Println()
	c.io.Printf("Catalog: %d snippets (%d duplicates resolved)\n", result.SnippetCount, result.Stats.DuplicatesRemoved)
	return nil
}
