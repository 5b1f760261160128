package core

import (
	"net/url"
	"strings"
)

// CorrespondingURL maps the page at currentLocation, served under
// currentBase, into the URL space of the version served under targetBase,
// and validates the result against that version's sitemap inventory.
//
// Only the leftmost occurrence of currentBase is replaced, so a URL whose
// base string happens to reappear later (in a fragment or query value) is
// not corrupted. The fragment is ignored for the existence check but kept
// in the returned URL.
//
// The caller guarantees that currentLocation starts with currentBase; when
// it does not, the replacement is a no-op and the inventory check fails,
// which reports "no corresponding page" as it should.
func CorrespondingURL(targetSitemap SitemapInventory, targetBase string, currentLocation string, currentBase string) (*url.URL, bool) {
	candidate := strings.Replace(currentLocation, currentBase, targetBase, 1)
	if !targetSitemap.Contains(StripFragment(candidate)) {
		return nil, false
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return nil, false
	}
	return parsed, true
}
