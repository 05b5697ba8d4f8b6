package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultChannel канал Redis по умолчанию
const DefaultChannel = "snipkeeper:catalog"

// RedisBroadcaster публикует события в канал Redis, чтобы другие процессы
// на машине (расширение браузера, IDE плагин) перечитали каталог.
type RedisBroadcaster struct {
	client  *redis.Client
	logger  *slog.Logger
	channel string
}

// NewRedisBroadcaster connects to redisURL and checks the connection.
func NewRedisBroadcaster(ctx context.Context, redisURL, channel string, logger *slog.Logger) (*RedisBroadcaster, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewRedisBroadcasterWithClient(client, channel, logger), nil
}

// NewRedisBroadcasterWithClient wraps an existing client.
func NewRedisBroadcasterWithClient(client *redis.Client, channel string, logger *slog.Logger) *RedisBroadcaster {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisBroadcaster{client: client, channel: channel, logger: logger}
}

// Publish implements Broadcaster.
func (r *RedisBroadcaster) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := r.client.Publish(ctx, r.channel, data).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", r.channel, err)
	}
	return nil
}

// Listen delivers events from the channel to fn until ctx is done.
func (r *RedisBroadcaster) Listen(ctx context.Context, fn func(Event)) error {
	sub := r.client.Subscribe(ctx, r.channel)
	defer func() {
		_ = sub.Close()
	}()

	// Ждём подтверждения подписки, иначе ранние сообщения теряются
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe to %s: %w", r.channel, err)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				r.logger.Warn("Skipping malformed event", "channel", r.channel, "error", err)
				continue
			}
			fn(event)
		}
	}
}

// Close closes the redis client.
func (r *RedisBroadcaster) Close() error {
	return r.client.Close()
}
