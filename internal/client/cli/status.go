package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/snipkeeper/internal/models"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Sync Status ===")
	c.io.Println()

	status, err := c.syncService.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	c.io.Printf("Phase:    %s\n", status.Phase)
	if status.LastSyncAt.IsZero() {
		c.io.Println("Last sync: never")
		c.io.Println()
		c.io.Println("Run 'snipkeeper sync' to build the catalog.")
		return nil
	}

	c.io.Printf("Last sync: %s (%s ago)\n", status.LastSyncAt.Format(time.RFC3339), time.Since(status.LastSyncAt).Round(time.Second))
	c.io.Printf("Snippets: %d\n", status.SnippetCount)
	if status.DuplicatesRemoved > 0 {
		c.io.Printf("Duplicates resolved: %d\n", status.DuplicatesRemoved)
	}
	if status.Phase == models.PhaseFailed && status.LastError != "" {
		c.io.Printf("⚠️  Last pass failed: %s\n", status.LastError)
	}

	pending, warnings := 0, 0
	for _, o := range status.Sources {
		if o.Error != "" {
			pending++
		}
		if o.Warning != "" {
			warnings++
		}
	}
	if pending > 0 {
		c.io.Println()
		c.io.Printf("⚠️  %d source(s) reported errors:\n", pending)
		for _, o := range status.Sources {
			if o.Error != "" {
				c.io.Printf("   %s: %s\n", o.SourceID, o.Error)
			}
		}
	}
	if warnings > 0 {
		c.io.Println()
		c.io.Printf("%d source(s) reported warnings:\n", warnings)
		for _, o := range status.Sources {
			if o.Warning != "" {
				c.io.Printf("   %s: %s\n", o.SourceID, o.Warning)
			}
		}
	}
	return nil
}
