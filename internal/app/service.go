package app

import (
	"context"
	"os"
	"path/filepath"

	"docswitch/internal/adapters"
	"docswitch/internal/core"
	"docswitch/internal/ports"
	"docswitch/internal/types"
)

type Service struct {
	VersionSource ports.VersionSourcePort
	Sitemap       ports.SitemapPort
	BannerState   ports.BannerStatePort
}

// Config carries the transport and state settings shared by the default
// adapters. Zero values fall back to the adapters' defaults.
type Config struct {
	Username         string
	APIKey           string
	HTTPTimeoutSec   int
	HTTPRetries      int
	HTTPRetryDelayMs int
	BannerStatePath  string
}

func NewService(cfg Config) Service {
	statePath := cfg.BannerStatePath
	if statePath == "" {
		statePath = defaultBannerStatePath()
	}
	return Service{
		VersionSource: adapters.NewVersionHTTPAdapter(cfg.Username, cfg.APIKey, cfg.HTTPTimeoutSec, cfg.HTTPRetries, cfg.HTTPRetryDelayMs),
		Sitemap:       adapters.NewSitemapHTTPAdapter(cfg.Username, cfg.APIKey, cfg.HTTPTimeoutSec, cfg.HTTPRetries, cfg.HTTPRetryDelayMs),
		BannerState:   adapters.NewBannerStateFileAdapter(statePath),
	}
}

// loadVersions fetches the version manifest and rejects structurally
// invalid ones before any lookup runs against them.
func (s Service) loadVersions(ctx context.Context, siteBase string) ([]types.Version, error) {
	versions, err := s.VersionSource.ListVersions(ctx, siteBase)
	if err != nil {
		return nil, err
	}
	if err := core.ValidateManifest(ctx, versions); err != nil {
		return nil, err
	}
	return versions, nil
}

func defaultBannerStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".docswitch", "banner-state.yml")
	}
	return filepath.Join(home, ".config", "docswitch", "banner-state.yml")
}
