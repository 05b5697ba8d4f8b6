package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runRegister(ctx context.Context, sourceID string) error {
	session, _, err := c.relay(sourceID)
	if err != nil {
		return err
	}

	c.io.Println("=== Folder Server Registration ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password (min 12 chars): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	result, err := session.Register(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("User ID: %s\n", result.UserID)
	c.io.Println()
	c.io.Printf("Run 'snipkeeper relay login %s' to sign in.\n", sourceID)
	return nil
}
