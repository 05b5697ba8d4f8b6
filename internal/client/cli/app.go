package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/user"

	"github.com/iudanet/snipkeeper/internal/client/adapter"
	"github.com/iudanet/snipkeeper/internal/client/adapter/gdrive"
	"github.com/iudanet/snipkeeper/internal/client/adapter/gitrepo"
	"github.com/iudanet/snipkeeper/internal/client/adapter/local"
	"github.com/iudanet/snipkeeper/internal/client/adapter/relay"
	"github.com/iudanet/snipkeeper/internal/client/adapter/s3"
	"github.com/iudanet/snipkeeper/internal/client/api"
	"github.com/iudanet/snipkeeper/internal/client/auth"
	"github.com/iudanet/snipkeeper/internal/client/data"
	"github.com/iudanet/snipkeeper/internal/client/expand"
	"github.com/iudanet/snipkeeper/internal/client/format"
	"github.com/iudanet/snipkeeper/internal/client/iocli"
	"github.com/iudanet/snipkeeper/internal/client/notify"
	"github.com/iudanet/snipkeeper/internal/client/sources"
	"github.com/iudanet/snipkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/snipkeeper/internal/client/storage/sqlite"
	"github.com/iudanet/snipkeeper/internal/client/sync"
	"github.com/iudanet/snipkeeper/internal/config"
	"github.com/iudanet/snipkeeper/internal/crypto"
	"github.com/iudanet/snipkeeper/internal/models"
	"github.com/iudanet/snipkeeper/internal/validation"
)

// Open собирает клиент: хранилища в cfg.DataDir, реестр адаптеров,
// оповещения и сервисы. Закрывать через Close.
func Open(ctx context.Context, cfg config.ClientConfig, io iocli.IO, logger *slog.Logger) (_ *Cli, err error) {
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	c := &Cli{io: io, logger: logger}
	defer func() {
		if err != nil {
			_ = c.Close()
		}
	}()

	state, err := boltdb.New(ctx, cfg.Path("state.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}
	c.closers = append(c.closers, state.Close)

	catalog, err := sqlite.New(ctx, cfg.Path("catalog.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	c.closers = append(c.closers, catalog.Close)

	key, err := crypto.LoadOrCreateKey(cfg.Path("vault.key"))
	if err != nil {
		return nil, fmt.Errorf("failed to load vault key: %w", err)
	}
	vault, err := auth.NewVault(state, key)
	if err != nil {
		return nil, err
	}

	registry := adapter.NewRegistry(adapter.Dependencies{
		Credentials: vault,
		Prompt:      io,
		Logger:      logger,
		Settings:    cfg.Providers,
		Retry:       cfg.Retry,
	})
	local.Register(registry)
	relay.Register(registry)
	gdrive.Register(registry)
	s3.Register(registry)
	gitrepo.Register(registry)

	c.events = notify.NewDispatcher()
	broadcaster := notify.Multi{c.events}
	if cfg.NotifyURL != "" {
		redis, err := notify.NewRedisBroadcaster(ctx, cfg.NotifyURL, cfg.NotifyChannel, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect notifications: %w", err)
		}
		c.closers = append(c.closers, redis.Close)
		broadcaster = append(broadcaster, redis)
		c.listener = redis
	}

	manager := sources.NewManager(sources.Config{
		Settings:      state,
		Cursors:       state,
		Catalog:       catalog,
		Credentials:   vault,
		Adapters:      registry,
		Logger:        logger,
		DefaultFolder: cfg.Path("snippets"),
		DefaultMode:   cfg.ResolveMode,
	})
	settings, err := manager.Init(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sources: %w", err)
	}

	c.sources = manager
	c.syncService = sync.NewService(registry, state, catalog, format.NewRegistry(), broadcaster, logger,
		sync.WithConcurrency(cfg.Concurrency))
	c.dataService = data.NewService(registry, state, catalog, logger, data.WithActor(currentUser()))
	c.expander = expand.NewEngine(catalog, state, state, logger, cfg.ResolveMode)
	c.relay = relayFactory(cfg, vault, logger)

	c.watch = WatchOptions{
		Interval: cfg.SyncInterval,
		Debounce: cfg.WatchDebounce,
	}
	if src, ok := settings.Source(models.DefaultSourceID); ok {
		c.watch.LocalFolder = src.Folder
	}

	return c, nil
}

// relayFactory открывает сессию сервера папок для источника
func relayFactory(cfg config.ClientConfig, creds adapter.CredentialStore, logger *slog.Logger) RelayFactory {
	return func(sourceID string) (auth.Service, RelayFolders, error) {
		if err := validation.ValidateSourceID(sourceID); err != nil {
			return nil, nil, err
		}
		url := cfg.Providers[relay.SettingURL]
		if url == "" {
			return nil, nil, relay.ErrNoServer
		}
		client := api.NewClient(url, cfg.Retry)
		return auth.NewSession(client, creds, sourceID, logger), client, nil
	}
}

func currentUser() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}
	return u.Username
}
