package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/snipkeeper/internal/client/notify"
)

// ErrNoListener адрес Redis для событий не настроен
var ErrNoListener = errors.New("notifications are not configured (set notify.redis_url)")

// runEvents печатает события каталога, опубликованные любым процессом
func (c *Cli) runEvents(ctx context.Context) error {
	if c.listener == nil {
		return ErrNoListener
	}

	c.io.Println("Listening for catalog events. Press Ctrl+C to stop.")
	err := c.listener.Listen(ctx, c.printEvent)
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("event stream closed: %w", err)
	}
	return nil
}

func (c *Cli) printEvent(ev notify.Event) {
	at := ev.At.Local().Format(time.TimeOnly)
	switch ev.Type {
	case notify.EventCatalogChanged:
		c.io.Printf("[%s] catalog updated: %d snippets\n", at, ev.SnippetCount)
	case notify.EventSyncFailed:
		c.io.Printf("[%s] sync failed: %s\n", at, ev.Error)
	default:
		c.io.Printf("[%s] %s\n", at, ev.Type)
	}
}
