package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"docswitch/internal/core"
	"docswitch/internal/shared"
)

// Switch computes where a reader viewing CurrentLocation should land after
// picking TargetVersion from the version menu. When the equivalent page is
// unknown in the target version, the target's base URL is used and the
// result is marked as a fallback.
func (s Service) Switch(ctx context.Context, req SwitchRequest) (SwitchResult, error) {
	siteBase := shared.NormalizeBaseURL(req.SiteBase)
	if siteBase == "" {
		return SwitchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("site base URL is required")
	}
	if strings.TrimSpace(req.CurrentLocation) == "" {
		return SwitchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("current location is required")
	}
	if strings.TrimSpace(req.TargetVersion) == "" {
		return SwitchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("target version is required")
	}

	versions, err := s.loadVersions(ctx, siteBase)
	if err != nil {
		return SwitchResult{}, err
	}
	target, ok := core.FindVersion(versions, req.TargetVersion)
	if !ok {
		return SwitchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("unknown version: %s", req.TargetVersion))
	}
	current, ok := core.CurrentVersion(versions, siteBase, req.CurrentLocation)
	if !ok {
		return SwitchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("current location is outside every known version")
	}
	currentBase, _ := core.CurrentVersionBase(versions, siteBase, req.CurrentLocation)
	targetBase := core.VersionBaseURL(siteBase, target)

	pages, err := s.Sitemap.PageURLs(ctx, targetBase)
	if err != nil {
		return SwitchResult{}, err
	}
	inventory := core.NewSitemapInventory(pages)

	result := SwitchResult{
		CurrentVersion: current.Version,
		TargetVersion:  target.Version,
	}
	if resolved, ok := core.CorrespondingURL(inventory, targetBase, req.CurrentLocation, currentBase); ok {
		result.TargetURL = resolved.String()
	} else {
		result.TargetURL = targetBase
		result.Fallback = true
	}
	log.Ctx(ctx).Debug().
		Str("current", current.Version).
		Str("target", target.Version).
		Bool("fallback", result.Fallback).
		Int("pages", inventory.Len()).
		Msg("version switch resolved")
	return result, nil
}
