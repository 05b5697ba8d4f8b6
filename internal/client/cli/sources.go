package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/snipkeeper/internal/models"
)

func (c *Cli) runSourcesList(ctx context.Context) error {
	sources, err := c.sources.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list sources: %w", err)
	}

	c.io.Println("=== Sources (highest priority first) ===")
	c.io.Println()
	for _, s := range sources {
		folder := s.Folder
		if folder == "" {
			folder = "(not selected)"
		}
		marker := ""
		if s.IsDefault() {
			marker = " [default]"
		}
		c.io.Printf("%d. %s%s\n", s.Priority, s.ID, marker)
		c.io.Printf("   Name:   %s\n", s.Name)
		c.io.Printf("   Kind:   %s\n", s.Kind)
		c.io.Printf("   Folder: %s\n", folder)
	}
	return nil
}

func (c *Cli) runSourcesAdd(ctx context.Context, src models.Source) error {
	added, err := c.sources.Add(ctx, src)
	if err != nil {
		return fmt.Errorf("failed to add source: %w", err)
	}

	c.io.Printf("✓ Source %s (%s) added with priority %d\n", added.ID, added.Kind, added.Priority)
	c.io.Println()
	c.io.Printf("Next: 'snipkeeper sources signin %s' and 'snipkeeper sources select-folder %s <folder>'\n", added.ID, added.ID)
	return nil
}

func (c *Cli) runSourcesRemove(ctx context.Context, id string) error {
	if err := c.sources.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to remove source: %w", err)
	}
	c.io.Printf("✓ Source %s removed. Run 'snipkeeper sync' to rebuild the catalog.\n", id)
	return nil
}

func (c *Cli) runSourcesMove(ctx context.Context, id string, position int) error {
	if err := c.sources.Move(ctx, id, position); err != nil {
		return fmt.Errorf("failed to move source: %w", err)
	}
	c.io.Printf("✓ Source %s moved to position %d\n", id, position)
	return nil
}

func (c *Cli) runSourcesSelectFolder(ctx context.Context, id, ref string) error {
	folder, err := c.sources.SelectFolder(ctx, id, ref)
	if err != nil {
		return fmt.Errorf("failed to select folder: %s", describeError(err))
	}
	c.io.Printf("✓ Source %s now uses folder %s (%s)\n", id, folder.Name, folder.ID)
	return nil
}

func (c *Cli) runSourcesSignIn(ctx context.Context, id string) error {
	user, err := c.sources.SignIn(ctx, id)
	if err != nil {
		return fmt.Errorf("sign in failed: %s", describeError(err))
	}
	name := user.Name
	if user.Email != "" {
		name = fmt.Sprintf("%s <%s>", user.Name, user.Email)
	}
	c.io.Printf("✓ Signed in to %s as %s\n", id, name)
	return nil
}

func (c *Cli) runResolveMode(ctx context.Context, mode string) error {
	if err := c.sources.SetResolveMode(ctx, models.ResolveMode(mode)); err != nil {
		return err
	}
	c.io.Printf("✓ Resolve mode set to %s\n", mode)
	return nil
}
