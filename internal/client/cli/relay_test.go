package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/snipkeeper/internal/client/auth"
	"github.com/iudanet/snipkeeper/internal/client/iocli"
	"github.com/iudanet/snipkeeper/pkg/api"
)

// relayCli подключает к Cli сессию и клиент папок
func relayCli(input string, session auth.Service, folders RelayFolders) (*Cli, func() string) {
	c, out := newTestCli(input)
	c.relay = func(sourceID string) (auth.Service, RelayFolders, error) {
		return session, folders, nil
	}
	return c, out.String
}

// tokenOnce ведёт себя как Session.WithToken без сервера
func tokenOnce(ctx context.Context, fn func(token string) error) error {
	return fn("access-token")
}

func TestCli_runRegister(t *testing.T) {
	session := &auth.ServiceMock{
		RegisterFunc: func(ctx context.Context, username, password string) (*api.RegisterResponse, error) {
			return &api.RegisterResponse{UserID: "user-1"}, nil
		},
	}
	c, out := relayCli("ann\nlong-password-1\nlong-password-1\n", session, nil)

	require.NoError(t, c.runRegister(context.Background(), "team"))

	require.Len(t, session.RegisterCalls(), 1)
	assert.Equal(t, "ann", session.RegisterCalls()[0].Username)
	assert.Equal(t, "long-password-1", session.RegisterCalls()[0].Password)
	assert.Contains(t, out(), "User ID: user-1")
	assert.Contains(t, out(), "snipkeeper relay login team")
}

func TestCli_runRegister_PasswordMismatch(t *testing.T) {
	session := &auth.ServiceMock{}
	c, _ := relayCli("ann\nlong-password-1\nlong-password-2\n", session, nil)

	err := c.runRegister(context.Background(), "team")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "passwords do not match")
	assert.Empty(t, session.RegisterCalls())
}

func TestCli_runRegister_PromptsWithIO(t *testing.T) {
	answers := map[string]string{
		"Username: ":                "ann",
		"Password (min 12 chars): ": "long-password-1",
		"Confirm password: ":        "long-password-1",
	}
	mockIO := &iocli.IOMock{
		PrintlnFunc: func(a ...any) {},
		PrintfFunc:  func(format string, a ...any) {},
		ReadInputFunc: func(prompt string) (string, error) {
			return answers[prompt], nil
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			return answers[prompt], nil
		},
	}
	session := &auth.ServiceMock{
		RegisterFunc: func(ctx context.Context, username, password string) (*api.RegisterResponse, error) {
			return &api.RegisterResponse{UserID: "user-1"}, nil
		},
	}
	c := &Cli{io: mockIO, relay: func(string) (auth.Service, RelayFolders, error) { return session, nil, nil }}

	require.NoError(t, c.runRegister(context.Background(), "team"))
	assert.Len(t, mockIO.ReadPasswordCalls(), 2, "password must be read without echo")
	assert.Len(t, mockIO.ReadInputCalls(), 1)
}

func TestCli_runLogin(t *testing.T) {
	expires := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	session := &auth.ServiceMock{
		LoginFunc: func(ctx context.Context, username, password string) (*auth.Tokens, error) {
			return &auth.Tokens{Username: username, UserID: "user-1", ExpiresAt: expires}, nil
		},
	}
	c, out := relayCli("ann\nsecret-password\n", session, nil)

	require.NoError(t, c.runLogin(context.Background(), "team"))
	assert.Contains(t, out(), "Signed in as ann")
	assert.Contains(t, out(), "2026-05-01T12:00:00Z")
}

func TestCli_runLogin_Failure(t *testing.T) {
	session := &auth.ServiceMock{
		LoginFunc: func(ctx context.Context, username, password string) (*auth.Tokens, error) {
			return nil, errors.New("invalid credentials")
		},
	}
	c, _ := relayCli("ann\nwrong\n", session, nil)

	err := c.runLogin(context.Background(), "team")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestCli_runWhoAmI(t *testing.T) {
	t.Run("signed out", func(t *testing.T) {
		session := &auth.ServiceMock{
			TokensFunc: func(ctx context.Context) (*auth.Tokens, error) {
				return nil, auth.ErrNotSignedIn
			},
		}
		c, out := relayCli("", session, nil)

		require.NoError(t, c.runWhoAmI(context.Background(), "team"))
		assert.Contains(t, out(), "Not signed in")
	})

	t.Run("signed in", func(t *testing.T) {
		session := &auth.ServiceMock{
			TokensFunc: func(ctx context.Context) (*auth.Tokens, error) {
				return &auth.Tokens{Username: "ann", UserID: "user-1", ExpiresAt: time.Now().Add(time.Hour)}, nil
			},
		}
		c, out := relayCli("", session, nil)

		require.NoError(t, c.runWhoAmI(context.Background(), "team"))
		assert.Contains(t, out(), "Signed in as ann (user-1)")
		assert.Contains(t, out(), "valid for")
	})
}

func TestCli_runLogout(t *testing.T) {
	session := &auth.ServiceMock{
		LogoutFunc: func(ctx context.Context) error { return nil },
	}
	c, out := relayCli("", session, nil)

	require.NoError(t, c.runLogout(context.Background(), "team"))
	assert.Len(t, session.LogoutCalls(), 1)
	assert.Contains(t, out(), "Signed out")
}

func TestCli_RelayFactoryError(t *testing.T) {
	c, _ := newTestCli("")
	c.relay = func(string) (auth.Service, RelayFolders, error) {
		return nil, nil, errors.New("relay server url is not configured")
	}

	assert.Error(t, c.runLogin(context.Background(), "team"))
	assert.Error(t, c.runFoldersList(context.Background(), "team"))
}

func TestCli_runFolders(t *testing.T) {
	session := &auth.ServiceMock{WithTokenFunc: tokenOnce}

	t.Run("list", func(t *testing.T) {
		folders := &RelayFoldersMock{
			ListFoldersFunc: func(ctx context.Context, accessToken string) ([]api.Folder, error) {
				assert.Equal(t, "access-token", accessToken)
				return []api.Folder{{ID: "f-1", Name: "Team"}}, nil
			},
		}
		c, out := relayCli("", session, folders)

		require.NoError(t, c.runFoldersList(context.Background(), "team"))
		assert.Contains(t, out(), "f-1  Team")
	})

	t.Run("list empty", func(t *testing.T) {
		folders := &RelayFoldersMock{
			ListFoldersFunc: func(ctx context.Context, accessToken string) ([]api.Folder, error) {
				return nil, nil
			},
		}
		c, out := relayCli("", session, folders)

		require.NoError(t, c.runFoldersList(context.Background(), "team"))
		assert.Contains(t, out(), "No folders yet.")
	})

	t.Run("create", func(t *testing.T) {
		folders := &RelayFoldersMock{
			CreateFolderFunc: func(ctx context.Context, accessToken, name string) (*api.Folder, error) {
				return &api.Folder{ID: "f-2", Name: name}, nil
			},
		}
		c, out := relayCli("", session, folders)

		require.NoError(t, c.runFoldersCreate(context.Background(), "team", "Support"))
		assert.Contains(t, out(), "Folder Support created (f-2)")
		assert.Contains(t, out(), "select-folder team f-2")
	})

	t.Run("share", func(t *testing.T) {
		folders := &RelayFoldersMock{
			AddMemberFunc: func(ctx context.Context, accessToken, folderID, username string) error {
				return nil
			},
		}
		c, out := relayCli("", session, folders)

		require.NoError(t, c.runFoldersShare(context.Background(), "team", "f-2", "bob"))
		call := folders.AddMemberCalls()[0]
		assert.Equal(t, "f-2", call.FolderID)
		assert.Equal(t, "bob", call.Username)
		assert.Contains(t, out(), "bob can now read and write folder f-2")
	})

	t.Run("share failure", func(t *testing.T) {
		folders := &RelayFoldersMock{
			AddMemberFunc: func(ctx context.Context, accessToken, folderID, username string) error {
				return errors.New("user not found")
			},
		}
		c, _ := relayCli("", session, folders)

		err := c.runFoldersShare(context.Background(), "team", "f-2", "ghost")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "user not found")
	})
}
