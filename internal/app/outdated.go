package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"docswitch/internal/core"
	"docswitch/internal/shared"
)

// Outdated decides whether the page at CurrentLocation belongs to an
// outdated version and whether the warning banner should still be shown,
// honoring a previous dismissal. With Dismiss set, the current version's
// banner is recorded as dismissed.
func (s Service) Outdated(ctx context.Context, req OutdatedRequest) (OutdatedResult, error) {
	siteBase := shared.NormalizeBaseURL(req.SiteBase)
	if siteBase == "" {
		return OutdatedResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("site base URL is required")
	}
	if strings.TrimSpace(req.CurrentLocation) == "" {
		return OutdatedResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("current location is required")
	}

	versions, err := s.loadVersions(ctx, siteBase)
	if err != nil {
		return OutdatedResult{}, err
	}
	current, ok := core.CurrentVersion(versions, siteBase, req.CurrentLocation)
	if !ok {
		return OutdatedResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("current location is outside every known version")
	}

	defaultID := strings.TrimSpace(req.DefaultVersion)
	if defaultID == "" {
		defaultID = "latest"
	}
	if _, ok := core.FindVersion(versions, defaultID); !ok {
		// The conventional alias is not deployed; the newest version is
		// the reference instead.
		latest, ok := core.LatestVersion(versions)
		if !ok {
			return OutdatedResult{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("version manifest is empty")
		}
		defaultID = latest.Version
	}

	outdated, err := core.IsOutdated(current, defaultID, req.IgnorePattern)
	if err != nil {
		return OutdatedResult{}, err
	}

	if req.Dismiss && outdated {
		if err := s.BannerState.SetDismissed(current.Version); err != nil {
			return OutdatedResult{}, err
		}
	}
	dismissed, err := s.BannerState.Dismissed(current.Version)
	if err != nil {
		return OutdatedResult{}, err
	}

	result := OutdatedResult{
		CurrentVersion: current.Version,
		DefaultVersion: defaultID,
		Outdated:       outdated,
		Dismissed:      dismissed,
		ShowBanner:     outdated && !dismissed,
	}
	log.Ctx(ctx).Debug().
		Str("current", current.Version).
		Str("default", defaultID).
		Bool("outdated", outdated).
		Bool("dismissed", dismissed).
		Msg("outdated check completed")
	return result, nil
}
