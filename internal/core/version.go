package core

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	debversion "github.com/knqyf263/go-deb-version"

	"docswitch/internal/types"
)

// FindVersion locates a version by identifier in a manifest list. The
// canonical identifiers of all entries are scanned before any alias, so an
// alias can never shadow a canonical id.
func FindVersion(versions []types.Version, identifier string) (types.Version, bool) {
	for _, v := range versions {
		if v.Version == identifier {
			return v, true
		}
	}
	for _, v := range versions {
		if v.HasAlias(identifier) {
			return v, true
		}
	}
	return types.Version{}, false
}

// VersionBaseURL returns the absolute base URL a version is served under.
// Every page URL of that version starts with this exact string.
func VersionBaseURL(siteBase string, v types.Version) string {
	return strings.TrimRight(siteBase, "/") + "/" + v.Version + "/"
}

// CurrentVersion identifies which deployed version a location belongs to by
// longest matching base-URL prefix. Alias deployments are checked too, so a
// reader browsing under ".../latest/" still resolves to the aliased entry.
func CurrentVersion(versions []types.Version, siteBase string, location string) (types.Version, bool) {
	var best types.Version
	bestLen := -1
	for _, v := range versions {
		bases := []string{VersionBaseURL(siteBase, v)}
		for _, alias := range v.Aliases {
			bases = append(bases, strings.TrimRight(siteBase, "/")+"/"+alias+"/")
		}
		for _, base := range bases {
			if strings.HasPrefix(location, base) && len(base) > bestLen {
				best = v
				bestLen = len(base)
			}
		}
	}
	return best, bestLen >= 0
}

// CurrentVersionBase returns the base prefix under which the location is
// actually being served, which for an alias deployment differs from the
// version's canonical base.
func CurrentVersionBase(versions []types.Version, siteBase string, location string) (string, bool) {
	var best string
	for _, v := range versions {
		bases := []string{VersionBaseURL(siteBase, v)}
		for _, alias := range v.Aliases {
			bases = append(bases, strings.TrimRight(siteBase, "/")+"/"+alias+"/")
		}
		for _, base := range bases {
			if strings.HasPrefix(location, base) && len(base) > len(best) {
				best = base
			}
		}
	}
	return best, best != ""
}

// IsOutdated decides whether viewing the given version warrants the
// "outdated version" banner relative to the default version. A version
// whose id or any alias matches the case-insensitive ignore pattern is
// treated as non-outdated, scanning identifiers linearly.
func IsOutdated(v types.Version, defaultID string, ignorePattern string) (bool, error) {
	if v.Version == defaultID || v.HasAlias(defaultID) {
		return false, nil
	}
	if strings.TrimSpace(ignorePattern) == "" {
		return true, nil
	}
	pattern, err := regexp.Compile("(?i)" + ignorePattern)
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid ignore pattern").
			WithCause(err)
	}
	if pattern.MatchString(v.Version) {
		return false, nil
	}
	for _, alias := range v.Aliases {
		if pattern.MatchString(alias) {
			return false, nil
		}
	}
	return true, nil
}

// versionOrder memoizes parsed version identifiers so a sort does not
// re-parse the same id for every comparison. Docs sites are loose about id
// shapes, so PEP 440 is tried first and Debian ordering is the fallback
// for ids PEP 440 rejects.
type versionOrder struct {
	pep map[string]*pep440.Version
	deb map[string]*debversion.Version
}

func newVersionOrder() *versionOrder {
	return &versionOrder{
		pep: map[string]*pep440.Version{},
		deb: map[string]*debversion.Version{},
	}
}

func (o *versionOrder) pepVersion(value string) *pep440.Version {
	if parsed, ok := o.pep[value]; ok {
		return parsed
	}
	parsed, err := pep440.Parse(value)
	if err != nil {
		o.pep[value] = nil
		return nil
	}
	o.pep[value] = &parsed
	return &parsed
}

func (o *versionOrder) debVersion(value string) *debversion.Version {
	if parsed, ok := o.deb[value]; ok {
		return parsed
	}
	parsed, err := debversion.NewVersion(value)
	if err != nil {
		o.deb[value] = nil
		return nil
	}
	o.deb[value] = &parsed
	return &parsed
}

// compare returns -1, 0, or 1 ordering two version identifiers. Ids that
// parse under neither scheme sort below parseable ids, falling back to
// plain string comparison among themselves.
func (o *versionOrder) compare(a string, b string) int {
	if pa, pb := o.pepVersion(a), o.pepVersion(b); pa != nil && pb != nil {
		return pa.Compare(*pb)
	}
	da, db := o.debVersion(a), o.debVersion(b)
	switch {
	case da != nil && db != nil:
		return da.Compare(*db)
	case da != nil:
		return 1
	case db != nil:
		return -1
	default:
		return strings.Compare(a, b)
	}
}

// SortVersions orders a manifest list newest first, without mutating the
// input.
func SortVersions(versions []types.Version) []types.Version {
	order := newVersionOrder()
	sorted := make([]types.Version, len(versions))
	copy(sorted, versions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return order.compare(sorted[i].Version, sorted[j].Version) > 0
	})
	return sorted
}

// LatestVersion returns the newest version of a manifest list.
func LatestVersion(versions []types.Version) (types.Version, bool) {
	if len(versions) == 0 {
		return types.Version{}, false
	}
	return SortVersions(versions)[0], true
}
