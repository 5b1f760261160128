package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"docswitch/internal/core"
	"docswitch/internal/shared"
	"docswitch/internal/types"
)

// List returns the site's deployed versions. With Sorted the entries are
// ordered newest first and the newest one is flagged.
func (s Service) List(ctx context.Context, req ListRequest) (ListResult, error) {
	siteBase := shared.NormalizeBaseURL(req.SiteBase)
	if siteBase == "" {
		return ListResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("site base URL is required")
	}
	versions, err := s.loadVersions(ctx, siteBase)
	if err != nil {
		return ListResult{}, err
	}

	ordered := versions
	var latest types.Version
	if req.Sorted {
		ordered = core.SortVersions(versions)
		if len(ordered) > 0 {
			latest = ordered[0]
		}
	}

	result := ListResult{}
	for _, v := range ordered {
		result.Versions = append(result.Versions, VersionSummary{
			Version: v.Version,
			Title:   v.DisplayTitle(),
			Aliases: v.Aliases,
			BaseURL: core.VersionBaseURL(siteBase, v),
			Latest:  req.Sorted && v.Version == latest.Version,
		})
	}
	return result, nil
}
