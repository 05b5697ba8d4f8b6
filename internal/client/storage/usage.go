package storage

import "context"

//go:generate moq -out usage_mock.go . SettingsStorage UsageStorage

// UsageStorage считает использования сниппетов для режима usage-first
type UsageStorage interface {
	// IncrementUsage bumps the counter and returns the new value.
	IncrementUsage(ctx context.Context, snippetID string) (int, error)

	// UsageCounts returns all counters.
	UsageCounts(ctx context.Context) (map[string]int, error)
}
