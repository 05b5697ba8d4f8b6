package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/iudanet/snipkeeper/internal/client/storage"
)

var detailTemplate = template.Must(template.New("snippet").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(snippetTemplate))

func (c *Cli) runGet(ctx context.Context, id string) error {
	entry, err := c.dataService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrEntryNotFound) {
			return fmt.Errorf("snippet %s not found (run 'snipkeeper sync' if it was just added)", id)
		}
		return err
	}

	if err := detailTemplate.Execute(c.io, entry); err != nil {
		return fmt.Errorf("failed to render snippet: %w", err)
	}
	return nil
}
