package cli

import (
	"context"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/snipkeeper/internal/client/data"
	"github.com/iudanet/snipkeeper/internal/client/expand"
	"github.com/iudanet/snipkeeper/internal/client/sync"
	"github.com/iudanet/snipkeeper/internal/models"
)

func execute(t *testing.T, c *Cli, args ...string) error {
	t.Helper()
	root := &cobra.Command{Use: "snipkeeper", SilenceUsage: true, SilenceErrors: true}
	root.AddCommand(Commands(func() *Cli { return c })...)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

func TestCommands_Add(t *testing.T) {
	c, _ := newTestCli("")
	mockData := &data.ServiceMock{
		CreateFunc: func(ctx context.Context, snippet models.Snippet, targets []string) (*models.Snippet, data.Results, error) {
			return &snippet, data.Results{{SourceID: "team"}}, nil
		},
	}
	c.dataService = mockData
	c.syncService = &sync.ServiceMock{}

	err := execute(t, c, "add",
		"--trigger", ";sig",
		"--content", "Regards, {{name}}",
		"--type", "markdown",
		"--tag", "mail,work",
		"--variable", "name=Ann",
		"--to", "team",
		"--no-sync",
	)
	require.NoError(t, err)

	require.Len(t, mockData.CreateCalls(), 1)
	call := mockData.CreateCalls()[0]
	assert.Equal(t, ";sig", call.Snippet.Trigger)
	assert.Equal(t, "Regards, {{name}}", call.Snippet.Content)
	assert.Equal(t, models.ContentMarkdown, call.Snippet.ContentType)
	assert.Equal(t, []string{"mail", "work"}, call.Snippet.Tags)
	assert.Equal(t, []models.Variable{{Name: "name", Default: "Ann"}}, call.Snippet.Variables)
	assert.Equal(t, []string{"team"}, call.Targets)
}

func TestCommands_EditKeepsUnsetFields(t *testing.T) {
	c, _ := newTestCli("")
	mockData := &data.ServiceMock{
		GetFunc: func(ctx context.Context, id string) (*models.CatalogEntry, error) {
			return &models.CatalogEntry{
				SourceID: "local",
				Snippet:  models.Snippet{ID: id, Trigger: ";sig", Content: "Regards", Tags: []string{"mail"}},
			}, nil
		},
		UpdateFunc: func(ctx context.Context, snippet models.Snippet, targets []string) (*models.Snippet, data.Results, error) {
			return &snippet, data.Results{{SourceID: "local"}}, nil
		},
	}
	c.dataService = mockData
	syncMock := &sync.ServiceMock{
		SyncFunc: func(ctx context.Context) (*sync.SyncResult, error) {
			return &sync.SyncResult{SnippetCount: 1}, nil
		},
	}
	c.syncService = syncMock

	require.NoError(t, execute(t, c, "edit", "snip-1", "--description", "Signature"))

	call := mockData.UpdateCalls()[0]
	assert.Equal(t, "Signature", call.Snippet.Description)
	assert.Equal(t, "Regards", call.Snippet.Content)
	assert.Equal(t, []string{"mail"}, call.Snippet.Tags)
	assert.Nil(t, call.Targets)
	assert.Len(t, syncMock.SyncCalls(), 1, "edit refreshes the catalog by default")
}

func TestCommands_Delete(t *testing.T) {
	c, _ := newTestCli("")
	mockData := &data.ServiceMock{
		DeleteFunc: func(ctx context.Context, id string, targets []string) (data.Results, error) {
			return data.Results{{SourceID: "team"}, {SourceID: "local"}}, nil
		},
	}
	c.dataService = mockData
	c.syncService = &sync.ServiceMock{
		SyncFunc: func(ctx context.Context) (*sync.SyncResult, error) {
			return &sync.SyncResult{}, nil
		},
	}

	require.NoError(t, execute(t, c, "delete", "snip-1", "--from", "team", "--from", "local"))
	call := mockData.DeleteCalls()[0]
	assert.Equal(t, "snip-1", call.ID)
	assert.Equal(t, []string{"team", "local"}, call.Targets)
}

func TestCommands_Expand(t *testing.T) {
	c, _ := newTestCli("")
	mockExpander := &ExpanderMock{
		ExpandFunc: func(ctx context.Context, trigger string, args map[string]string) (*expand.Expansion, error) {
			return &expand.Expansion{Text: "ok"}, nil
		},
	}
	c.expander = mockExpander

	require.NoError(t, execute(t, c, "expand", ";hi", "--var", "name=Bob", "--var", "city=Oslo, Norway"))

	call := mockExpander.ExpandCalls()[0]
	assert.Equal(t, ";hi", call.Trigger)
	assert.Equal(t, map[string]string{"name": "Bob", "city": "Oslo, Norway"}, call.Args)
}

func TestCommands_Sources(t *testing.T) {
	c, _ := newTestCli("")
	mockSources := &SourceManagerMock{
		AddFunc: func(ctx context.Context, src models.Source) (*models.Source, error) {
			return &src, nil
		},
		MoveFunc: func(ctx context.Context, id string, position int) error {
			return nil
		},
	}
	c.sources = mockSources

	require.NoError(t, execute(t, c, "sources", "add", "team", "relay", "--name", "Team folder"))
	assert.Equal(t, models.Source{ID: "team", Kind: "relay", Name: "Team folder"}, mockSources.AddCalls()[0].Src)

	require.NoError(t, execute(t, c, "sources", "move", "team", "2"))
	assert.Equal(t, 2, mockSources.MoveCalls()[0].Position)

	assert.Error(t, execute(t, c, "sources", "move", "team", "first"))
	assert.Len(t, mockSources.MoveCalls(), 1)

	assert.Error(t, execute(t, c, "sources", "add", "only-id"))
}

func TestCommands_List(t *testing.T) {
	c, out := newTestCli("")
	c.dataService = &data.ServiceMock{
		ListFunc: func(ctx context.Context) ([]models.CatalogEntry, error) {
			return catalogFixture(), nil
		},
	}

	require.NoError(t, execute(t, c, "list", "--where", `source == "local"`))
	assert.Contains(t, out.String(), "1 snippet(s)")
}
