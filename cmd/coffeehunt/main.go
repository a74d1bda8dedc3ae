// Command coffeehunt is a terminal storefront for a coffee shop.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driven/storefront"
	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/oauth"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/ports/driven"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/services"
	"github.com/custodia-labs/coffeehunt-cli/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cli.SetVersion(version)
	cli.SetBuilder(build)

	err := cli.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// build wires the adapters and services for one command run.
func build(opts cli.Options) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	session, closeSession, err := openSession(opts)
	if err != nil {
		return nil, err
	}

	s := &cli.Services{
		Account:       services.NewAccountService(session, oauth.NewReceiver(os.Stderr), settings.Account),
		Settings:      settingsService,
		ConfigWatcher: configStore,
		OpenURL:       oauth.OpenBrowser,
		Close:         closeSession,
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	s.Gatherer = registry

	client, err := storefront.NewClient(settings.Storefront, storefront.WithRegisterer(registry))
	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		// Storefront commands report the missing settings themselves.
		logger.Debug("Storefront not configured, skipping client")
		return s, nil
	case err != nil:
		closeSession() //nolint:errcheck
		return nil, fmt.Errorf("creating storefront client: %w", err)
	}

	logger.Debug("Storefront endpoint: %s", client.Endpoint())

	s.Search = services.NewSearchService(client, settings.UI.PageSize)
	s.Cart = services.NewCartService(client, session)
	s.Layout = services.NewLayoutService(client, settings.Storefront)
	s.Catalog = services.NewCatalogService(client)
	return s, nil
}

// openSession opens the session store: in memory when ephemeral, SQLite otherwise.
func openSession(opts cli.Options) (driven.SessionStore, func() error, error) {
	if opts.Ephemeral {
		return memory.NewSessionStore(), func() error { return nil }, nil
	}
	store, err := sqlite.NewStore(opts.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening session store: %w", err)
	}
	return store, store.Close, nil
}
