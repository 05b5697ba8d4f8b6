package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iudanet/snipkeeper/internal/client/data"
	"github.com/iudanet/snipkeeper/internal/client/sync"
	"github.com/iudanet/snipkeeper/internal/models"
)

// SnippetInput поля сниппета из флагов. nil означает «не менять».
type SnippetInput struct {
	Trigger      *string
	Content      *string
	ContentType  *string
	Description  *string
	File         string // File взять content из файла
	Tags         []string
	Variables    []string // Variables объявления name[=default]
	Targets      []string // Targets источники, в которые записывается изменение
	TagsSet      bool
	VariablesSet bool
	Sync         bool // Sync обновить каталог сразу после записи
}

func (c *Cli) runSnippetAdd(ctx context.Context, in SnippetInput) error {
	var s models.Snippet
	if err := c.applyInput(&s, in); err != nil {
		return err
	}

	if s.Trigger == "" {
		trigger, err := c.io.ReadInput("Trigger: ")
		if err != nil {
			return fmt.Errorf("failed to read trigger: %w", err)
		}
		s.Trigger = trigger
	}
	if s.Content == "" {
		content, err := c.io.ReadInput("Content: ")
		if err != nil {
			return fmt.Errorf("failed to read content: %w", err)
		}
		s.Content = content
	}

	created, results, err := c.dataService.Create(ctx, s, in.Targets)
	if created == nil {
		return fmt.Errorf("failed to create snippet: %w", err)
	}

	c.io.Printf("Snippet %s (%s)\n", created.ID, created.Trigger)
	c.printResults(results)
	if err != nil {
		return fmt.Errorf("snippet was not written to every source")
	}
	return c.refresh(ctx, in.Sync)
}

func (c *Cli) runSnippetEdit(ctx context.Context, id string, in SnippetInput) error {
	entry, err := c.dataService.Get(ctx, id)
	if err != nil {
		return err
	}

	s := entry.Snippet.Clone()
	if err := c.applyInput(&s, in); err != nil {
		return err
	}

	updated, results, err := c.dataService.Update(ctx, s, in.Targets)
	if updated == nil {
		return fmt.Errorf("failed to update snippet: %w", err)
	}
	if results == nil && err == nil {
		c.io.Println("Nothing changed.")
		return nil
	}

	c.io.Printf("Snippet %s (%s)\n", updated.ID, updated.Trigger)
	c.printResults(results)
	if err != nil {
		return fmt.Errorf("snippet was not written to every source")
	}
	return c.refresh(ctx, in.Sync)
}

func (c *Cli) applyInput(s *models.Snippet, in SnippetInput) error {
	if in.Trigger != nil {
		s.Trigger = *in.Trigger
	}
	if in.Content != nil {
		s.Content = *in.Content
	}
	if in.File != "" {
		content, err := os.ReadFile(filepath.Clean(in.File))
		if err != nil {
			return fmt.Errorf("failed to read content file: %w", err)
		}
		s.Content = strings.TrimRight(string(content), "\n")
	}
	if in.ContentType != nil {
		ct, ok := models.ParseContentType(*in.ContentType)
		if !ok {
			return fmt.Errorf("unknown content type %q (plaintext, markdown, html, latex)", *in.ContentType)
		}
		s.ContentType = ct
	}
	if in.Description != nil {
		s.Description = *in.Description
	}
	if in.TagsSet {
		s.Tags = in.Tags
	}
	if in.VariablesSet {
		vars, err := parseVariables(in.Variables)
		if err != nil {
			return err
		}
		s.Variables = vars
	}
	return nil
}

func (c *Cli) printResults(results data.Results) {
	for _, r := range results {
		if r.Err != nil {
			c.io.Printf("✗ %-12s %s\n", r.SourceID, describeError(r.Err))
			continue
		}
		path := ""
		if r.File != nil {
			path = r.File.Path
		}
		c.io.Printf("✓ %-12s %s\n", r.SourceID, path)
	}
}

// refresh пересобирает каталог, чтобы изменение сразу стало видно
func (c *Cli) refresh(ctx context.Context, enabled bool) error {
	if !enabled {
		c.io.Println("Run 'snipkeeper sync' to refresh the catalog.")
		return nil
	}

	result, err := c.syncService.Sync(ctx)
	if errors.Is(err, sync.ErrSyncInProgress) {
		c.io.Println("Another sync is running; the change will appear after it completes.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("snippet saved, but catalog refresh failed: %s", describeError(err))
	}
	c.io.Printf("Catalog refreshed: %d snippets\n", result.SnippetCount)
	return nil
}
