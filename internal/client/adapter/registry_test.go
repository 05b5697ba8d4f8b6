package adapter

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/snipkeeper/internal/models"
)

func TestRegistry_CreateUnknownKind(t *testing.T) {
	r := NewRegistry(Dependencies{})

	a, err := r.Create(models.Source{ID: "x", Kind: "dropbox"})
	assert.Nil(t, a)

	var upe *UnsupportedProviderError
	require.True(t, errors.As(err, &upe))
	assert.Equal(t, "dropbox", upe.Kind)
}

func TestRegistry_RegisterAndCreate(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := NewRegistry(Dependencies{Logger: logger, Settings: map[string]string{"relay.url": "http://x"}})

	var gotSource models.Source
	var gotDeps Dependencies
	r.Register(" Relay ", func(source models.Source, deps Dependencies) (Adapter, error) {
		gotSource = source
		gotDeps = deps
		return &AdapterMock{KindFunc: func() string { return "relay" }}, nil
	})

	assert.True(t, r.Supports("RELAY"))
	assert.Equal(t, []string{"relay"}, r.Kinds())

	a, err := r.Create(models.Source{ID: "team", Kind: "relay"})
	require.NoError(t, err)
	assert.Equal(t, "relay", a.Kind())
	assert.Equal(t, "team", gotSource.ID)
	assert.Equal(t, "http://x", gotDeps.Setting("relay.url", ""))
	assert.NotNil(t, gotDeps.Logger)
}

func TestRegistry_ConstructorError(t *testing.T) {
	r := NewRegistry(Dependencies{})
	boom := errors.New("boom")
	r.Register("s3", func(models.Source, Dependencies) (Adapter, error) { return nil, boom })

	_, err := r.Create(models.Source{ID: "org", Kind: "s3"})
	assert.ErrorIs(t, err, boom)
}

func TestRegistry_Unregister(t *testing.T) {
	r := NewRegistry(Dependencies{})
	r.Register("git", func(models.Source, Dependencies) (Adapter, error) { return &AdapterMock{}, nil })
	r.Register("", func(models.Source, Dependencies) (Adapter, error) { return &AdapterMock{}, nil })
	r.Register("nil", nil)

	assert.Equal(t, []string{"git"}, r.Kinds())

	r.Unregister("GIT")
	assert.False(t, r.Supports("git"))
	assert.Empty(t, r.Kinds())
}

func TestCanUpload(t *testing.T) {
	readOnly := &AdapterMock{CapabilitiesFunc: func() Capabilities { return Capabilities{} }}
	_, ok := CanUpload(readOnly)
	assert.False(t, ok)

	// заявленная возможность без реализации Uploader не считается
	liar := &AdapterMock{CapabilitiesFunc: func() Capabilities { return Capabilities{Upload: true} }}
	_, ok = CanUpload(liar)
	assert.False(t, ok)
}

func TestAuthError(t *testing.T) {
	inner := errors.New("token revoked")
	err := error(&AuthError{SourceID: "me", Kind: "gdrive", Err: inner})

	assert.True(t, IsAuthError(err))
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "token revoked")
	assert.False(t, IsAuthError(inner))
}

func TestDependencies_Setting(t *testing.T) {
	d := Dependencies{Settings: map[string]string{"a": "1", "empty": ""}}
	assert.Equal(t, "1", d.Setting("a", "x"))
	assert.Equal(t, "x", d.Setting("empty", "x"))
	assert.Equal(t, "x", d.Setting("missing", "x"))
}
