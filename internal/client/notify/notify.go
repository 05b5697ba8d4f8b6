// Package notify оповещает потребителей каталога после фиксации синхронизации.
package notify

import (
	"context"
	"errors"
	"time"
)

//go:generate moq -out broadcaster_mock.go . Broadcaster

// EventType тип события
type EventType string

const (
	// EventCatalogChanged каталог перезаписан и готов к чтению
	EventCatalogChanged EventType = "catalog_changed"
	// EventSyncFailed проход завершился ошибкой, прежний каталог остался в силе
	EventSyncFailed EventType = "sync_failed"
)

// Event широковещательное сообщение
type Event struct {
	At           time.Time `json:"at"`
	Type         EventType `json:"type"`
	Error        string    `json:"error,omitempty"`
	SnippetCount int       `json:"snippet_count"`
}

// Broadcaster доставляет события подписчикам
type Broadcaster interface {
	// Publish delivers an event. Delivery is best-effort.
	Publish(ctx context.Context, event Event) error
}

// Multi рассылает событие нескольким получателям
type Multi []Broadcaster

// Publish sends to every broadcaster and joins their errors.
func (m Multi) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, b := range m {
		if b == nil {
			continue
		}
		if err := b.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
