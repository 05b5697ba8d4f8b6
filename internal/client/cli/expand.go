package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/snipkeeper/internal/client/expand"
)

// ExpandOptions параметры команды expand
type ExpandOptions struct {
	Trigger string
	ID      string   // ID раскрыть конкретного кандидата вместо победителя
	Vars    []string // Vars значения переменных name=value
	Verbose bool
}

func (c *Cli) runExpand(ctx context.Context, opts ExpandOptions) error {
	args, err := parseVars(opts.Vars)
	if err != nil {
		return err
	}

	var exp *expand.Expansion
	switch {
	case opts.ID != "":
		exp, err = c.expander.ExpandID(ctx, opts.ID, args)
	case opts.Trigger != "":
		exp, err = c.expander.Expand(ctx, opts.Trigger, args)
	default:
		return fmt.Errorf("trigger or --id is required")
	}
	if err != nil {
		return fmt.Errorf("failed to expand: %w", err)
	}

	if opts.Verbose {
		c.io.Printf("# %s from %s", exp.Entry.Snippet.ID, exp.Entry.SourceID)
		if exp.Alternatives > 0 {
			c.io.Printf(" (%d alternative(s), see 'snipkeeper list --trigger %s')", exp.Alternatives, exp.Entry.Snippet.Trigger)
		}
		c.io.Println()
	}

	if _, err := c.io.Write([]byte(exp.Text)); err != nil {
		return err
	}
	c.io.Println()
	return nil
}
