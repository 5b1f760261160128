package adapters

import (
	"context"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"docswitch/internal/ports"
	"docswitch/internal/types"
)

// VersionFileAdapter reads a version manifest from disk, for offline and CI
// use. The siteBase argument of ListVersions is ignored; the manifest path
// is fixed at construction.
type VersionFileAdapter struct {
	Path   string
	cached []types.Version
	loaded bool
}

func NewVersionFileAdapter(path string) *VersionFileAdapter {
	return &VersionFileAdapter{Path: path}
}

func (a *VersionFileAdapter) ListVersions(_ context.Context, _ string) ([]types.Version, error) {
	if a.loaded {
		return a.cached, nil
	}
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("version manifest file not found").
			WithCause(err)
	}
	versions, err := decodeVersionManifest(data)
	if err != nil {
		return nil, err
	}
	a.cached = versions
	a.loaded = true
	return versions, nil
}

var _ ports.VersionSourcePort = (*VersionFileAdapter)(nil)
