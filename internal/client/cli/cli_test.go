package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/snipkeeper/internal/client/adapter"
	"github.com/iudanet/snipkeeper/internal/client/iocli"
	"github.com/iudanet/snipkeeper/internal/client/sync"
	"github.com/iudanet/snipkeeper/internal/models"
)

// newTestCli собирает Cli с буфером вывода и заданным вводом
func newTestCli(input string) (*Cli, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &Cli{
		io:     iocli.NewStreams(strings.NewReader(input), out),
		logger: slog.New(slog.DiscardHandler),
	}, out
}

func mustTime(t *testing.T, v string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, v)
	require.NoError(t, err)
	return ts
}

func TestParseVars(t *testing.T) {
	vars, err := parseVars([]string{"name=Bob", " city =Paris", "empty=", "eq=a=b"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "Bob", "city": "Paris", "empty": "", "eq": "a=b"}, vars)

	_, err = parseVars([]string{"novalue"})
	assert.Error(t, err)

	_, err = parseVars([]string{"=x"})
	assert.Error(t, err)
}

func TestParseVariables(t *testing.T) {
	vars, err := parseVariables([]string{"name", "greeting=Hi"})
	require.NoError(t, err)
	assert.Equal(t, []models.Variable{{Name: "name"}, {Name: "greeting", Default: "Hi"}}, vars)

	vars, err = parseVariables(nil)
	require.NoError(t, err)
	assert.Nil(t, vars)

	_, err = parseVariables([]string{" =x"})
	assert.Error(t, err)
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "auth error names source",
			err:  &adapter.AuthError{SourceID: "drive", Kind: "gdrive", Err: errors.New("token revoked")},
			want: "snipkeeper sources signin drive",
		},
		{
			name: "not configured",
			err:  fmt.Errorf("team: %w", adapter.ErrNotConfigured),
			want: "select-folder",
		},
		{
			name: "read only",
			err:  adapter.ErrReadOnly,
			want: "--to",
		},
		{
			name: "other errors unchanged",
			err:  errors.New("boom"),
			want: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, describeError(tt.err), tt.want)
		})
	}
}

func TestCli_Close_RunsClosersInReverse(t *testing.T) {
	var order []string
	c := &Cli{closers: []func() error{
		func() error { order = append(order, "state"); return nil },
		func() error { order = append(order, "catalog"); return errors.New("catalog busy") },
	}}

	err := c.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog busy")
	assert.Equal(t, []string{"catalog", "state"}, order)
}

func TestCli_runSync(t *testing.T) {
	c, out := newTestCli("")
	c.syncService = &sync.ServiceMock{
		SyncFunc: func(ctx context.Context) (*sync.SyncResult, error) {
			return &sync.SyncResult{
				Sources: []models.SourceOutcome{
					{SourceID: "local", Files: 3, Downloaded: 1, Snippets: 4, Full: true},
					{SourceID: "team", Error: "connection refused"},
					{SourceID: "drive", Skipped: true},
					{SourceID: "notes", Files: 2, Downloaded: 2, Snippets: 1, ParseErrors: 1},
				},
				SnippetCount: 5,
			}, nil
		},
	}

	require.NoError(t, c.runSync(context.Background()))

	text := out.String()
	assert.Contains(t, text, "local")
	assert.Contains(t, text, "(full)")
	assert.Contains(t, text, "connection refused (cached snippets kept)")
	assert.Contains(t, text, "skipped (no folder selected)")
	assert.Contains(t, text, "1 file(s) skipped")
	assert.Contains(t, text, "Catalog: 5 snippets")
}

func TestCli_runSync_Error(t *testing.T) {
	c, _ := newTestCli("")
	c.syncService = &sync.ServiceMock{
		SyncFunc: func(ctx context.Context) (*sync.SyncResult, error) {
			return nil, sync.ErrSyncInProgress
		},
	}

	err := c.runSync(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sync already in progress")
}

func TestCli_runStatus(t *testing.T) {
	t.Run("never synced", func(t *testing.T) {
		c, out := newTestCli("")
		c.syncService = &sync.ServiceMock{
			StatusFunc: func(ctx context.Context) (*models.SyncStatus, error) {
				return &models.SyncStatus{Phase: models.PhaseIdle}, nil
			},
		}

		require.NoError(t, c.runStatus(context.Background()))
		assert.Contains(t, out.String(), "Last sync: never")
	})

	t.Run("failed pass with source errors", func(t *testing.T) {
		c, out := newTestCli("")
		c.syncService = &sync.ServiceMock{
			StatusFunc: func(ctx context.Context) (*models.SyncStatus, error) {
				return &models.SyncStatus{
					LastSyncAt:   mustTime(t, "2026-03-01T10:00:00Z"),
					Phase:        models.PhaseFailed,
					LastError:    "commit failed",
					SnippetCount: 12,
					Sources:      []models.SourceOutcome{{SourceID: "team", Error: "unauthorized"}},
				}, nil
			},
		}

		require.NoError(t, c.runStatus(context.Background()))
		text := out.String()
		assert.Contains(t, text, "Snippets: 12")
		assert.Contains(t, text, "Last pass failed: commit failed")
		assert.Contains(t, text, "team: unauthorized")
	})

	t.Run("warnings", func(t *testing.T) {
		c, out := newTestCli("")
		c.syncService = &sync.ServiceMock{
			StatusFunc: func(ctx context.Context) (*models.SyncStatus, error) {
				return &models.SyncStatus{
					LastSyncAt: mustTime(t, "2026-03-01T10:00:00Z"),
					Phase:      models.PhaseIdle,
					Sources:    []models.SourceOutcome{{SourceID: "team", Warning: "cursor not saved"}},
				}, nil
			},
		}

		require.NoError(t, c.runStatus(context.Background()))
		assert.Contains(t, out.String(), "1 source(s) reported warnings")
		assert.Contains(t, out.String(), "team: cursor not saved")
	})
}
