package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"docswitch/internal/core"
	"docswitch/internal/shared"
)

// Check probes whether one page exists in one version's inventory. Page may
// be an absolute URL or a path relative to the version base.
func (s Service) Check(ctx context.Context, req CheckRequest) (CheckResult, error) {
	siteBase := shared.NormalizeBaseURL(req.SiteBase)
	if siteBase == "" {
		return CheckResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("site base URL is required")
	}
	if strings.TrimSpace(req.Version) == "" {
		return CheckResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("version is required")
	}

	versions, err := s.loadVersions(ctx, siteBase)
	if err != nil {
		return CheckResult{}, err
	}
	version, ok := core.FindVersion(versions, req.Version)
	if !ok {
		return CheckResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("unknown version: %s", req.Version))
	}
	versionBase := core.VersionBaseURL(siteBase, version)

	pageURL := strings.TrimSpace(req.Page)
	if !strings.Contains(pageURL, "://") {
		pageURL = shared.JoinURL(versionBase, pageURL)
	}

	pages, err := s.Sitemap.PageURLs(ctx, versionBase)
	if err != nil {
		return CheckResult{}, err
	}
	inventory := core.NewSitemapInventory(pages)

	return CheckResult{
		Version: version.Version,
		PageURL: pageURL,
		Exists:  inventory.Contains(core.StripFragment(pageURL)),
	}, nil
}
