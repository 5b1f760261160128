package adapters

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"docswitch/internal/ports"
)

// SitemapFileAdapter parses a sitemap from a local file, for offline and CI
// use. The versionBase argument of PageURLs is ignored; the path is fixed
// at construction. Sitemap index files are not supported from disk since
// their <loc> entries point at remote resources.
type SitemapFileAdapter struct {
	Path string
}

func NewSitemapFileAdapter(path string) SitemapFileAdapter {
	return SitemapFileAdapter{Path: path}
}

func (a SitemapFileAdapter) PageURLs(_ context.Context, _ string) ([]string, error) {
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("sitemap file not found").
			WithCause(err)
	}
	if strings.HasSuffix(a.Path, ".gz") {
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid gzip sitemap").
				WithCause(err)
		}
		defer gz.Close()
		data, err = io.ReadAll(gz)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to read gzip sitemap").
				WithCause(err)
		}
	}
	doc, err := parseSitemap(data)
	if err != nil {
		return nil, err
	}
	if doc.index {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("sitemap index is not supported from a local file")
	}
	return doc.locations, nil
}

var _ ports.SitemapPort = SitemapFileAdapter{}
