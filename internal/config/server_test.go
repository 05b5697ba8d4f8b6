package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServer_Defaults(t *testing.T) {
	v := NewServerViper()
	v.Set("jwt.secret", "0123456789abcdef")

	cfg, err := LoadServer(v)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddress)
	assert.Equal(t, "snipkeeper-server.db", cfg.DatabasePath)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, int64(4<<20), cfg.MaxFileSize)
	assert.Equal(t, 10, cfg.RateLimit.AuthRequests)
}

func TestLoadServer_Env(t *testing.T) {
	t.Setenv("SNIPKEEPER_SERVER_JWT_SECRET", "from-env-secret-value")
	t.Setenv("SNIPKEEPER_SERVER_HTTP_ADDRESS", "127.0.0.1:9999")
	t.Setenv("SNIPKEEPER_SERVER_JWT_ACCESS_TTL", "5m")

	cfg, err := LoadServer(NewServerViper())
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9999", cfg.HTTPAddress)
	assert.Equal(t, "from-env-secret-value", cfg.JWTSecret)
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenTTL)
}

func TestLoadServer_Validation(t *testing.T) {
	tests := []struct {
		set  map[string]any
		name string
	}{
		{name: "missing secret", set: map[string]any{}},
		{name: "short secret", set: map[string]any{"jwt.secret": "short"}},
		{name: "empty database", set: map[string]any{"jwt.secret": "0123456789abcdef", "database.path": " "}},
		{name: "zero ttl", set: map[string]any{"jwt.secret": "0123456789abcdef", "jwt.access_ttl": "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewServerViper()
			for k, val := range tt.set {
				v.Set(k, val)
			}
			_, err := LoadServer(v)
			assert.Error(t, err)
		})
	}
}
