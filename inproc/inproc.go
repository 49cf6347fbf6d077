// Package inproc wires a ready-to-use dispatcher from configuration: it
// builds the logger, loads static-subscription manifests, and bootstraps the
// dispatcher before handing it back as a contract interface.
package inproc

import (
	"context"
	"fmt"
	"os"

	"github.com/next-trace/scg-event-dispatch/config"
	cdisp "github.com/next-trace/scg-event-dispatch/contract/dispatch"
	"github.com/next-trace/scg-event-dispatch/eventdispatch"
	"github.com/next-trace/scg-event-dispatch/manifest"
)

// New constructs a dispatcher from environment configuration and returns it
// as a contract.Dispatcher along with a cleanup function that closes it.
// handlers backs late-bound subscriptions and may be nil when only direct
// subscriptions are used.
func New(ctx context.Context, handlers *eventdispatch.HandlerSet) (cdisp.Dispatcher, func(), error) { //nolint:ireturn
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	return NewWith(ctx, cfg, handlers)
}

// NewWith is New with an explicit Config. Static bindings rejected during
// bootstrap are logged and do not fail construction; the dispatcher is ready
// once every manifest entry has been attempted.
func NewWith(ctx context.Context, cfg config.Config, handlers *eventdispatch.HandlerSet) (cdisp.Dispatcher, func(), error) { //nolint:ireturn
	logger := cfg.Logger(os.Stderr)

	var resolver cdisp.HandlerResolver
	if handlers != nil {
		resolver = handlers
	}

	d := eventdispatch.New(resolver, logger)

	if cfg.ManifestPath != "" {
		bindings, err := loadManifests(cfg)
		if err != nil {
			_ = d.Close()
			return nil, nil, err
		}

		if err := d.Bootstrap(ctx, bindings); err != nil {
			logger.Warn("bootstrap completed with rejected bindings", "err", err)
		}
	}

	cleanup := func() { _ = d.Close() }

	return d, cleanup, nil
}

func loadManifests(cfg config.Config) ([]cdisp.StaticBinding, error) {
	info, err := os.Stat(cfg.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("manifest path: %w", err)
	}

	if info.IsDir() {
		return manifest.LoadDir(cfg.ManifestPath, cfg.Applications...)
	}

	return manifest.Load(cfg.ManifestPath, cfg.Applications...)
}
