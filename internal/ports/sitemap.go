package ports

import "context"

// SitemapPort discovers the absolute page URLs of one deployed version from
// its published sitemap.
type SitemapPort interface {
	PageURLs(ctx context.Context, versionBase string) ([]string, error)
}
