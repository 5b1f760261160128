package types

import "strings"

// Version describes one deployed snapshot of the documentation site as
// published in the site's version manifest (versions.json): a canonical
// identifier, a display title, and zero or more alias identifiers such as
// "latest" or "stable".
type Version struct {
	Version string   `json:"version"`
	Title   string   `json:"title"`
	Aliases []string `json:"aliases"`
}

// DisplayTitle returns the title, falling back to the canonical identifier
// when the manifest left the title empty.
func (v Version) DisplayTitle() string {
	if strings.TrimSpace(v.Title) != "" {
		return v.Title
	}
	return v.Version
}

// HasAlias reports whether the given identifier is one of the version's
// aliases. The canonical identifier itself is not an alias.
func (v Version) HasAlias(identifier string) bool {
	for _, alias := range v.Aliases {
		if alias == identifier {
			return true
		}
	}
	return false
}
