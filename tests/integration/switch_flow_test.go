package integration

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docswitch/internal/adapters"
	"docswitch/internal/app"
	"docswitch/tests/testutil"
)

const fixtureSiteBase = "https://docs.example.com/project/"

// fixtureService wires the file adapters against the committed fixtures.
// The sitemap adapter serves the 1.0 sitemap, so 1.0 acts as the switch
// target throughout.
func fixtureService(t *testing.T) app.Service {
	t.Helper()
	root := testutil.RepoRoot(t)
	return app.Service{
		VersionSource: adapters.NewVersionFileAdapter(filepath.Join(root, "fixtures", "versions.json")),
		Sitemap:       adapters.NewSitemapFileAdapter(filepath.Join(root, "fixtures", "sitemap-1.0.xml")),
		BannerState:   adapters.NewBannerStateFileAdapter(filepath.Join(t.TempDir(), "banner-state.yml")),
	}
}

func TestSwitchFlowFromFixtures(t *testing.T) {
	service := fixtureService(t)

	t.Run("matching page switches to the same page", func(t *testing.T) {
		result, err := service.Switch(t.Context(), app.SwitchRequest{
			SiteBase:        fixtureSiteBase,
			CurrentLocation: fixtureSiteBase + "0.1/guide/install/",
			TargetVersion:   "latest",
		})
		require.NoError(t, err)
		assert.Equal(t, fixtureSiteBase+"1.0/guide/install/", result.TargetURL)
		assert.False(t, result.Fallback)
		assert.Equal(t, "0.1", result.CurrentVersion)
		assert.Equal(t, "1.0", result.TargetVersion)
	})

	t.Run("fragment survives the switch", func(t *testing.T) {
		result, err := service.Switch(t.Context(), app.SwitchRequest{
			SiteBase:        fixtureSiteBase,
			CurrentLocation: fixtureSiteBase + "0.1/guide/install/#prerequisites",
			TargetVersion:   "1.0",
		})
		require.NoError(t, err)
		assert.Equal(t, fixtureSiteBase+"1.0/guide/install/#prerequisites", result.TargetURL)
		assert.False(t, result.Fallback)
	})

	t.Run("missing page falls back to the target root", func(t *testing.T) {
		result, err := service.Switch(t.Context(), app.SwitchRequest{
			SiteBase:        fixtureSiteBase,
			CurrentLocation: fixtureSiteBase + "0.1/guide/legacy/",
			TargetVersion:   "latest",
		})
		require.NoError(t, err)
		assert.Equal(t, fixtureSiteBase+"1.0/", result.TargetURL)
		assert.True(t, result.Fallback)
	})

	t.Run("list sorted flags the newest version", func(t *testing.T) {
		result, err := service.List(t.Context(), app.ListRequest{
			SiteBase: fixtureSiteBase,
			Sorted:   true,
		})
		require.NoError(t, err)
		require.Len(t, result.Versions, 3)
		assert.Equal(t, "1.0", result.Versions[0].Version)
		assert.True(t, result.Versions[0].Latest)
		assert.Equal(t, fixtureSiteBase+"1.0/", result.Versions[0].BaseURL)
		assert.Equal(t, "0.2", result.Versions[1].Version)
		assert.Equal(t, "0.1", result.Versions[2].Version)
	})

	t.Run("check finds a page by relative path", func(t *testing.T) {
		result, err := service.Check(t.Context(), app.CheckRequest{
			SiteBase: fixtureSiteBase,
			Version:  "latest",
			Page:     "reference/cli/",
		})
		require.NoError(t, err)
		assert.Equal(t, "1.0", result.Version)
		assert.Equal(t, fixtureSiteBase+"1.0/reference/cli/", result.PageURL)
		assert.True(t, result.Exists)
	})

	t.Run("check reports a missing page", func(t *testing.T) {
		result, err := service.Check(t.Context(), app.CheckRequest{
			SiteBase: fixtureSiteBase,
			Version:  "1.0",
			Page:     "guide/legacy/",
		})
		require.NoError(t, err)
		assert.False(t, result.Exists)
	})
}

func TestOutdatedFlowFromFixtures(t *testing.T) {
	service := fixtureService(t)

	location := fixtureSiteBase + "0.1/guide/install/"

	result, err := service.Outdated(t.Context(), app.OutdatedRequest{
		SiteBase:        fixtureSiteBase,
		CurrentLocation: location,
	})
	require.NoError(t, err)
	assert.Equal(t, "0.1", result.CurrentVersion)
	assert.True(t, result.Outdated)
	assert.True(t, result.ShowBanner)

	// Dismissing persists through the banner state file.
	result, err = service.Outdated(t.Context(), app.OutdatedRequest{
		SiteBase:        fixtureSiteBase,
		CurrentLocation: location,
		Dismiss:         true,
	})
	require.NoError(t, err)
	assert.True(t, result.Dismissed)
	assert.False(t, result.ShowBanner)

	result, err = service.Outdated(t.Context(), app.OutdatedRequest{
		SiteBase:        fixtureSiteBase,
		CurrentLocation: location,
	})
	require.NoError(t, err)
	assert.True(t, result.Dismissed)
	assert.False(t, result.ShowBanner)
}

func TestSwitchFlowOverHTTP(t *testing.T) {
	// The handler closes over the map, so entries added after startup are
	// served; the sitemap needs the server's own URL in its locations.
	pages := map[string]string{}
	server := testutil.ServeDocsSite(t, pages)
	siteBase := server.URL + "/project/"

	pages["/project/versions.json"] = `[
		{"version": "1.0", "title": "1.0", "aliases": ["latest"]},
		{"version": "0.1", "title": "0.1", "aliases": []}
	]`
	pages["/project/1.0/sitemap.xml"] = fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>%s1.0/</loc></url>
  <url><loc>%s1.0/guide/install/</loc></url>
</urlset>`, siteBase, siteBase)

	service := app.NewService(app.Config{
		HTTPTimeoutSec:   5,
		HTTPRetries:      1,
		HTTPRetryDelayMs: 50,
		BannerStatePath:  filepath.Join(t.TempDir(), "banner-state.yml"),
	})

	result, err := service.Switch(t.Context(), app.SwitchRequest{
		SiteBase:        siteBase,
		CurrentLocation: siteBase + "0.1/guide/install/#setup",
		TargetVersion:   "latest",
	})
	require.NoError(t, err)
	assert.Equal(t, siteBase+"1.0/guide/install/#setup", result.TargetURL)
	assert.False(t, result.Fallback)

	result, err = service.Switch(t.Context(), app.SwitchRequest{
		SiteBase:        siteBase,
		CurrentLocation: siteBase + "0.1/guide/removed/",
		TargetVersion:   "1.0",
	})
	require.NoError(t, err)
	assert.Equal(t, siteBase+"1.0/", result.TargetURL)
	assert.True(t, result.Fallback)
}
