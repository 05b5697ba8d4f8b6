package cli

import (
	"context"
	"fmt"
	"strings"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"

	"github.com/iudanet/snipkeeper/internal/models"
)

// ListOptions фильтры команды list
type ListOptions struct {
	Where   string // Where выражение expr, например `"mail" in tags && source == "team"`
	Trigger string // Trigger показать всех кандидатов одного trigger в порядке выбора
}

// filterEnv переменные, доступные в выражении --where
func filterEnv(e models.CatalogEntry) map[string]any {
	vars := make([]string, len(e.Snippet.Variables))
	for i, v := range e.Snippet.Variables {
		vars[i] = v.Name
	}
	tags := e.Snippet.Tags
	if tags == nil {
		tags = []string{}
	}
	return map[string]any{
		"id":          e.Snippet.ID,
		"trigger":     e.Snippet.Trigger,
		"content":     e.Snippet.Content,
		"type":        string(e.Snippet.ContentType),
		"description": e.Snippet.Description,
		"tags":        tags,
		"variables":   vars,
		"source":      e.SourceID,
		"priority":    e.Priority,
		"duplicates":  len(e.Duplicates),
	}
}

// compileFilter проверяет выражение по типам полей каталога
func compileFilter(where string) (*exprvm.Program, error) {
	program, err := exprlang.Compile(where,
		exprlang.Env(filterEnv(models.CatalogEntry{})),
		exprlang.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid --where expression: %w", err)
	}
	return program, nil
}

func (c *Cli) runList(ctx context.Context, opts ListOptions) error {
	if opts.Trigger != "" {
		return c.runListCandidates(ctx, opts.Trigger)
	}

	var program *exprvm.Program
	if strings.TrimSpace(opts.Where) != "" {
		var err error
		program, err = compileFilter(opts.Where)
		if err != nil {
			return err
		}
	}

	entries, err := c.dataService.List(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Snippets ===")
	c.io.Println()

	shown := 0
	for _, e := range entries {
		if program != nil {
			out, err := exprlang.Run(program, filterEnv(e))
			if err != nil {
				return fmt.Errorf("failed to evaluate filter on %s: %w", e.Snippet.ID, err)
			}
			if match, _ := out.(bool); !match {
				continue
			}
		}
		shown++
		c.printEntryLine(shown, e)
	}

	if shown == 0 {
		c.io.Println("No snippets found.")
		c.io.Println()
		c.io.Println("Use 'snipkeeper add' to create one, or 'snipkeeper sync' to pull sources.")
		return nil
	}

	c.io.Println()
	c.io.Printf("%d snippet(s)\n", shown)
	return nil
}

// runListCandidates показывает всех претендентов на trigger, победитель первым
func (c *Cli) runListCandidates(ctx context.Context, trigger string) error {
	candidates, err := c.expander.Candidates(ctx, trigger)
	if err != nil {
		return err
	}

	c.io.Printf("=== Candidates for %s ===\n", trigger)
	c.io.Println()
	for i, e := range candidates {
		c.printEntryLine(i+1, e)
	}
	if len(candidates) > 1 {
		c.io.Println()
		c.io.Println("Use 'snipkeeper expand --id <id>' to pick a specific candidate.")
	}
	return nil
}

func (c *Cli) printEntryLine(n int, e models.CatalogEntry) {
	c.io.Printf("%d. %s  [%s]\n", n, e.Snippet.Trigger, e.SourceID)
	c.io.Printf("   ID:   %s\n", e.Snippet.ID)
	if e.Snippet.Description != "" {
		c.io.Printf("   Desc: %s\n", e.Snippet.Description)
	}
	if len(e.Snippet.Tags) > 0 {
		c.io.Printf("   Tags: %s\n", strings.Join(e.Snippet.Tags, ", "))
	}
	if len(e.Duplicates) > 0 {
		others := make([]string, len(e.Duplicates))
		for i, d := range e.Duplicates {
			others[i] = d.SourceID
		}
		c.io.Printf("   Also in: %s\n", strings.Join(others, ", "))
	}
}
