package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runFoldersList(ctx context.Context, sourceID string) error {
	session, folders, err := c.relay(sourceID)
	if err != nil {
		return err
	}

	return session.WithToken(ctx, func(token string) error {
		list, err := folders.ListFolders(ctx, token)
		if err != nil {
			return err
		}

		if len(list) == 0 {
			c.io.Println("No folders yet.")
			c.io.Printf("Use 'snipkeeper relay folders create %s <name>' to create one.\n", sourceID)
			return nil
		}

		c.io.Println("=== Shared Folders ===")
		c.io.Println()
		for _, f := range list {
			c.io.Printf("%s  %s  (created %s)\n", f.ID, f.Name, f.CreatedAt.Format(time.DateOnly))
		}
		return nil
	})
}

func (c *Cli) runFoldersCreate(ctx context.Context, sourceID, name string) error {
	session, folders, err := c.relay(sourceID)
	if err != nil {
		return err
	}

	return session.WithToken(ctx, func(token string) error {
		folder, err := folders.CreateFolder(ctx, token, name)
		if err != nil {
			return fmt.Errorf("failed to create folder: %w", err)
		}
		c.io.Printf("✓ Folder %s created (%s)\n", folder.Name, folder.ID)
		c.io.Printf("Use 'snipkeeper sources select-folder %s %s' to sync it.\n", sourceID, folder.ID)
		return nil
	})
}

func (c *Cli) runFoldersShare(ctx context.Context, sourceID, folderID, username string) error {
	session, folders, err := c.relay(sourceID)
	if err != nil {
		return err
	}

	return session.WithToken(ctx, func(token string) error {
		if err := folders.AddMember(ctx, token, folderID, username); err != nil {
			return fmt.Errorf("failed to share folder: %w", err)
		}
		c.io.Printf("✓ %s can now read and write folder %s\n", username, folderID)
		return nil
	})
}
