package core

import "strings"

// SitemapInventory is the set of pages known to exist in one deployed
// version, keyed by fragment-free absolute URL. Each key retains the
// observed location variants in discovery order; membership only needs the
// keys, the variants are kept for disambiguation by callers that want them.
//
// An inventory is built once from a discovered URL list and never mutated
// afterwards, so it is safe to share across goroutines.
type SitemapInventory struct {
	pages map[string][]string
}

// NewSitemapInventory builds an inventory from a list of absolute page
// URLs. Duplicate entries collapse; blank entries are skipped.
func NewSitemapInventory(urls []string) SitemapInventory {
	pages := map[string][]string{}
	for _, raw := range urls {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		key := StripFragment(trimmed)
		if !containsString(pages[key], trimmed) {
			pages[key] = append(pages[key], trimmed)
		}
	}
	return SitemapInventory{pages: pages}
}

// Contains reports whether the given fragment-free absolute URL is a known
// page of the version. Matching is exact-string; no trailing-slash or other
// semantic equivalence is applied.
func (s SitemapInventory) Contains(url string) bool {
	_, ok := s.pages[url]
	return ok
}

// Variants returns the observed location variants for a known page, in
// discovery order, or nil for an unknown page.
func (s SitemapInventory) Variants(url string) []string {
	return s.pages[url]
}

// Len returns the number of distinct pages in the inventory.
func (s SitemapInventory) Len() int {
	return len(s.pages)
}

// StripFragment removes a "#..." suffix from a URL string. Fragments name
// in-page anchors, not distinct pages, so they never participate in
// inventory membership.
func StripFragment(url string) string {
	if i := strings.Index(url, "#"); i >= 0 {
		return url[:i]
	}
	return url
}

func containsString(values []string, value string) bool {
	for _, entry := range values {
		if entry == value {
			return true
		}
	}
	return false
}
