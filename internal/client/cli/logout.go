package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogout(ctx context.Context, sourceID string) error {
	session, _, err := c.relay(sourceID)
	if err != nil {
		return err
	}

	if err := session.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	c.io.Println("✓ Signed out. Cached snippets of this source stay available offline.")
	return nil
}
