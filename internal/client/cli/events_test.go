package cli

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/snipkeeper/internal/client/notify"
)

type listenerFunc func(ctx context.Context, fn func(notify.Event)) error

func (f listenerFunc) Listen(ctx context.Context, fn func(notify.Event)) error { return f(ctx, fn) }

func TestCli_runEvents_NotConfigured(t *testing.T) {
	c, _ := newTestCli("")
	assert.ErrorIs(t, c.runEvents(context.Background()), ErrNoListener)
}

func TestCli_runEvents_PrintsEvents(t *testing.T) {
	c, out := newTestCli("")
	at := time.Date(2026, 4, 2, 9, 30, 0, 0, time.Local)
	c.listener = listenerFunc(func(ctx context.Context, fn func(notify.Event)) error {
		fn(notify.Event{At: at, Type: notify.EventCatalogChanged, SnippetCount: 4})
		fn(notify.Event{At: at, Type: notify.EventSyncFailed, Error: "team: unauthorized"})
		return nil
	})

	require.NoError(t, c.runEvents(context.Background()))

	text := out.String()
	assert.Contains(t, text, "[09:30:00] catalog updated: 4 snippets")
	assert.Contains(t, text, "[09:30:00] sync failed: team: unauthorized")
}

func TestCli_runEvents_StreamError(t *testing.T) {
	c, _ := newTestCli("")
	c.listener = listenerFunc(func(ctx context.Context, fn func(notify.Event)) error {
		return errors.New("connection reset")
	})

	err := c.runEvents(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestCli_runEvents_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	broadcaster := notify.NewRedisBroadcasterWithClient(client, "snipkeeper:test", slog.New(slog.DiscardHandler))

	c, out := newTestCli("")
	c.listener = broadcaster

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.runEvents(ctx) }()

	require.Eventually(t, func() bool {
		return len(mr.PubSubChannels("snipkeeper:test")) == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, broadcaster.Publish(context.Background(), notify.Event{
		At:           time.Now(),
		Type:         notify.EventCatalogChanged,
		SnippetCount: 3,
	}))
	time.Sleep(100 * time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.Contains(t, out.String(), "catalog updated: 3 snippets")
}
