package adapters

import (
	"compress/gzip"
	"context"
	"encoding/xml"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"docswitch/internal/ports"
	"docswitch/internal/shared"
)

const sitemapFile = "sitemap.xml"
const sitemapGzipFile = "sitemap.xml.gz"

// SitemapHTTPAdapter discovers a version's page inventory from its
// published sitemap. When sitemap.xml is absent it falls back to the
// gzipped variant, and it follows one level of <sitemapindex>
// indirection.
type SitemapHTTPAdapter struct {
	Username string
	APIKey   string
	cfg      httpRetryConfig
}

func NewSitemapHTTPAdapter(username string, apiKey string, timeoutSec int, retries int, retryDelayMs int) SitemapHTTPAdapter {
	return SitemapHTTPAdapter{
		Username: username,
		APIKey:   apiKey,
		cfg:      normalizeHTTPConfig(timeoutSec, retries, retryDelayMs),
	}
}

func (a SitemapHTTPAdapter) PageURLs(ctx context.Context, versionBase string) ([]string, error) {
	if strings.TrimSpace(versionBase) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("version base URL is empty")
	}
	data, err := a.fetchSitemap(ctx, versionBase)
	if err != nil {
		return nil, err
	}
	doc, err := parseSitemap(data)
	if err != nil {
		return nil, err
	}
	if !doc.index {
		evt := log.Ctx(ctx).Debug().Str("base", versionBase).Int("pages", len(doc.locations))
		if !doc.lastModified.IsZero() {
			evt = evt.Time("last_modified", doc.lastModified)
		}
		evt.Msg("sitemap fetched")
		return doc.locations, nil
	}

	// Sitemap index: gather the child sitemaps, one level deep.
	var pages []string
	for _, childURL := range doc.locations {
		childData, err := a.fetchURL(ctx, childURL)
		if err != nil {
			return nil, err
		}
		child, err := parseSitemap(childData)
		if err != nil {
			return nil, err
		}
		if child.index {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("nested sitemap index is not supported")
		}
		pages = append(pages, child.locations...)
	}
	log.Ctx(ctx).Debug().Str("base", versionBase).Int("sitemaps", len(doc.locations)).Int("pages", len(pages)).Msg("sitemap index fetched")
	return pages, nil
}

// fetchSitemap tries sitemap.xml and falls back to sitemap.xml.gz on 404.
func (a SitemapHTTPAdapter) fetchSitemap(ctx context.Context, versionBase string) ([]byte, error) {
	data, err := a.fetchURL(ctx, shared.JoinURL(versionBase, sitemapFile))
	if err == nil {
		return data, nil
	}
	if errbuilder.CodeOf(err) != errbuilder.CodeNotFound {
		return nil, err
	}
	return a.fetchURL(ctx, shared.JoinURL(versionBase, sitemapGzipFile))
}

func (a SitemapHTTPAdapter) fetchURL(ctx context.Context, url string) ([]byte, error) {
	resp, err := doRequest(ctx, url, a.Username, a.APIKey, a.cfg)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("sitemap not found").
			WithCause(shared.HTTPStatusError(resp.StatusCode, url))
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("sitemap request failed").
			WithCause(shared.HTTPStatusError(resp.StatusCode, url))
	}

	var reader io.Reader = resp.Body
	if strings.HasSuffix(url, ".gz") {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid gzip sitemap").
				WithCause(err)
		}
		defer gz.Close()
		reader = gz
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read sitemap").
			WithCause(err)
	}
	return data, nil
}

type sitemapDocument struct {
	XMLName  xml.Name
	URLs     []sitemapEntry `xml:"url"`
	Sitemaps []sitemapEntry `xml:"sitemap"`
}

type sitemapEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

type parsedSitemap struct {
	index        bool
	locations    []string
	lastModified time.Time
}

// parseSitemap handles both <urlset> and <sitemapindex> documents,
// dropping entries with a blank <loc>.
func parseSitemap(data []byte) (parsedSitemap, error) {
	var doc sitemapDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return parsedSitemap{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid sitemap format").
			WithCause(err)
	}
	switch doc.XMLName.Local {
	case "urlset":
		return parsedSitemap{locations: entryLocations(doc.URLs), lastModified: latestModification(doc.URLs)}, nil
	case "sitemapindex":
		return parsedSitemap{index: true, locations: entryLocations(doc.Sitemaps)}, nil
	default:
		return parsedSitemap{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unrecognized sitemap root element")
	}
}

func entryLocations(entries []sitemapEntry) []string {
	var locations []string
	for _, entry := range entries {
		loc := strings.TrimSpace(entry.Loc)
		if loc == "" {
			continue
		}
		locations = append(locations, loc)
	}
	return locations
}

// latestModification returns the newest <lastmod> across the entries.
func latestModification(entries []sitemapEntry) time.Time {
	var latest time.Time
	for _, entry := range entries {
		if parsed := parseTimeFlexible(entry.LastMod); parsed.After(latest) {
			latest = parsed
		}
	}
	return latest
}

var _ ports.SitemapPort = SitemapHTTPAdapter{}
