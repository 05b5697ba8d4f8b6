package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/snipkeeper/internal/client/auth"
)

func (c *Cli) runLogin(ctx context.Context, sourceID string) error {
	session, _, err := c.relay(sourceID)
	if err != nil {
		return err
	}

	c.io.Println("=== Folder Server Login ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	tokens, err := session.Login(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("✓ Signed in as %s\n", tokens.Username)
	c.io.Printf("Session expires: %s\n", tokens.ExpiresAt.Format(time.RFC3339))
	return nil
}

func (c *Cli) runWhoAmI(ctx context.Context, sourceID string) error {
	session, _, err := c.relay(sourceID)
	if err != nil {
		return err
	}

	tokens, err := session.Tokens(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrNotSignedIn) {
			c.io.Println("Status: Not signed in")
			c.io.Printf("Run 'snipkeeper relay login %s' to sign in.\n", sourceID)
			return nil
		}
		return err
	}

	c.io.Printf("Status:   Signed in as %s (%s)\n", tokens.Username, tokens.UserID)
	remaining := time.Until(tokens.ExpiresAt)
	if remaining > 0 {
		c.io.Printf("Access token valid for %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("Access token expired; it is refreshed on the next request.")
	}
	return nil
}
